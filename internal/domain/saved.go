package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// SavedResume is a named, timestamped snapshot of a document plus the
// template it was being edited with. The snapshot is an independent deep
// copy: later edits to the live document never reach it.
type SavedResume struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Template     string         `json:"template"`
	LastModified time.Time      `json:"lastModified"`
	Document     model.Document `json:"document"`
}

// NewSavedResume captures a snapshot of doc under the given name.
func NewSavedResume(name, template string, doc model.Document) SavedResume {
	return SavedResume{
		ID:           uuid.New(),
		Name:         name,
		Template:     template,
		LastModified: time.Now(),
		Document:     doc.Clone(),
	}
}
