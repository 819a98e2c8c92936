package main

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renders the stored document to HTML so template changes can be eyeballed
// in a browser without starting the server or Chrome.
func main() {
	dataDir := "resume-data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	templateID := string(render.DefaultTemplate)
	if len(os.Args) > 2 {
		templateID = os.Args[2]
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "document.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	doc := model.Repair(raw)

	id, err := render.Parse(templateID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	renderer, _ := render.Get(id)

	html, err := renderer.Render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outFile := filepath.Join(dataDir, "preview_"+templateID+".html")
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write preview: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
