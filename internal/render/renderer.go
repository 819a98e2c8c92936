package render

import (
	"fmt"

	"resume-builder/internal/model"
)

// TemplateID selects one of the visual resume templates.
type TemplateID string

const (
	TemplateClassic   TemplateID = "classic"
	TemplateModern    TemplateID = "modern"
	TemplateCompact   TemplateID = "compact"
	TemplateATSSimple TemplateID = "ats-simple"
	TemplateATSPro    TemplateID = "ats-pro"
)

// DefaultTemplate is used when no selection has been persisted yet.
const DefaultTemplate = TemplateClassic

// Renderer is a pure transform from a document to a self-contained printable
// HTML page sized for A4. Implementations must accept any document without
// erroring on empty fields, cover every schema field, preserve stored order,
// and suppress sections whose lists hold no identifiable entries.
type Renderer interface {
	ID() TemplateID
	Render(doc model.Document) (string, error)
}

var registry = map[TemplateID]Renderer{
	TemplateClassic:   classicRenderer{},
	TemplateModern:    modernRenderer{},
	TemplateCompact:   compactRenderer{},
	TemplateATSSimple: atsSimpleRenderer{},
	TemplateATSPro:    atsProRenderer{},
}

// Registry returns the full template-id to renderer mapping.
func Registry() map[TemplateID]Renderer {
	return registry
}

// Get looks up the renderer for id.
func Get(id TemplateID) (Renderer, bool) {
	r, ok := registry[id]
	return r, ok
}

// All lists the available template ids in display order.
func All() []TemplateID {
	return []TemplateID{TemplateClassic, TemplateModern, TemplateCompact, TemplateATSSimple, TemplateATSPro}
}

// Parse validates a raw template selector.
func Parse(s string) (TemplateID, error) {
	id := TemplateID(s)
	if _, ok := registry[id]; !ok {
		return "", fmt.Errorf("unknown template %q", s)
	}
	return id, nil
}
