package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	_ "github.com/joho/godotenv/autoload"
)

// Exports the stored document from the command line, useful for batch runs
// and for checking PDF output on machines without the UI.
func main() {
	format := flag.String("format", "pdf", "export format: pdf or text")
	templateFlag := flag.String("template", "", "template id (defaults to the stored selection)")
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	cfg := config.Load()

	store, err := repository.NewStore(cfg.DataDir)
	if err != nil {
		fail("open data dir: %v", err)
	}
	doc := store.LoadDocument()

	templateID := store.LoadTemplate()
	if *templateFlag != "" {
		templateID, err = render.Parse(*templateFlag)
		if err != nil {
			fail("%v", err)
		}
	}

	exporter := usecase.NewExporter(infra.NewChromedpRenderer())

	var result *usecase.ExportResult
	switch *format {
	case "pdf":
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err = exporter.ExportPDF(ctx, doc, templateID)
		if err != nil {
			fail("export pdf: %v", err)
		}
	case "text":
		result = exporter.ExportText(doc)
	default:
		fail("unknown format %q", *format)
	}

	outFile := filepath.Join(*outDir, result.Filename)
	if err := os.WriteFile(outFile, result.Data, 0o644); err != nil {
		fail("write %s: %v", outFile, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", outFile, len(result.Data))
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
