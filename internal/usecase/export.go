package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// ErrExportBusy rejects a PDF export while another is still in flight.
var ErrExportBusy = errors.New("an export is already in progress")

// PDFRenderer turns a rendered HTML page into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ExportResult is a finished downloadable artifact.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter drives both export paths. PDF export goes through the selected
// template renderer and headless Chrome; text export serializes the document
// directly. A failed export never touches the document.
type Exporter struct {
	renderer PDFRenderer

	mu   sync.Mutex
	busy bool
}

func NewExporter(renderer PDFRenderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// Busy reports whether a PDF export is currently in flight.
func (e *Exporter) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// ExportPDF renders doc through the template and packages it as a single A4
// PDF. At most one PDF export runs at a time; re-entrant requests fail with
// ErrExportBusy. The produced bytes are verified to parse as a PDF before
// being returned, so a truncated or blank file is never handed out.
func (e *Exporter) ExportPDF(ctx context.Context, doc model.Document, id render.TemplateID) (*ExportResult, error) {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return nil, ErrExportBusy
	}
	e.busy = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}()

	renderer, ok := render.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", id)
	}
	html, err := renderer.Render(doc)
	if err != nil {
		return nil, err
	}
	data, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, err
	}
	if err := verifyPDF(data); err != nil {
		return nil, err
	}
	return &ExportResult{
		Filename:    BaseFilename(doc.PersonalInfo.Name) + "_Resume.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// ExportText serializes the document to the plain-text outline. It bypasses
// the visual renderers entirely.
func (e *Exporter) ExportText(doc model.Document) *ExportResult {
	return &ExportResult{
		Filename:    BaseFilename(doc.PersonalInfo.Name) + "_Resume.txt",
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(RenderText(doc)),
	}
}

// BaseFilename derives the download base name: whitespace in the person's
// name collapses to underscores; an empty name falls back to "Resume".
func BaseFilename(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Resume"
	}
	return strings.Join(fields, "_")
}

// RenderText writes the fixed plain-text outline: contact lines, then
// SUMMARY, EXPERIENCE, EDUCATION and SKILLS blocks. Internships, projects
// and custom sections are intentionally not part of this quick-outline
// format.
func RenderText(doc model.Document) string {
	p := doc.PersonalInfo
	var b strings.Builder

	b.WriteString(p.Name + "\n")
	b.WriteString(p.Email + " | " + p.Phone + "\n")
	if p.LinkedIn != "" {
		b.WriteString(p.LinkedIn + "\n")
	}
	if p.Website != "" {
		b.WriteString(p.Website + "\n")
	}
	b.WriteString("\n")

	b.WriteString("--- SUMMARY ---\n")
	b.WriteString(doc.Summary + "\n\n")

	b.WriteString("--- EXPERIENCE ---\n")
	for _, e := range doc.Experience {
		if strings.TrimSpace(e.Company) == "" && strings.TrimSpace(e.Role) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s at %s (%s)\n", e.Role, e.Company, e.Date)
		for _, bullet := range e.BulletPoints {
			if strings.TrimSpace(bullet) == "" {
				continue
			}
			fmt.Fprintf(&b, "  • %s\n", bullet)
		}
	}
	b.WriteString("\n")

	b.WriteString("--- EDUCATION ---\n")
	for _, e := range doc.Education {
		if strings.TrimSpace(e.Institution) == "" && strings.TrimSpace(e.Degree) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s - %s (%s)\n", e.Degree, e.Institution, e.Date)
	}
	b.WriteString("\n")

	b.WriteString("--- SKILLS ---\n")
	b.WriteString(strings.Join(model.RenderSkills(doc.Skills), ", ") + "\n")

	return b.String()
}

// verifyPDF parses the produced bytes; anything Chrome emitted that does not
// read back as a one-or-more page PDF is rejected.
func verifyPDF(data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("produced PDF failed verification: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("produced PDF failed verification: %w", err)
	}
	if reader.NumPage() < 1 {
		return errors.New("produced PDF has no pages")
	}
	return nil
}
