package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

const (
	documentFile = "document.json"
	templateFile = "template.json"
	resumesFile  = "resumes.json"
)

// Store is the local-device persistence adapter: the document, the active
// template selection and the saved-resume list live as JSON files under one
// data directory. Loads never fail — corrupt or missing state falls back to
// defaults — and writes are atomic (temp file + rename).
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// LoadDocument returns the persisted document, repaired field by field when
// the stored payload is damaged, or a default document when nothing usable
// exists. It never returns an error.
func (s *Store) LoadDocument() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(filepath.Join(s.dir, documentFile))
	if err != nil {
		return model.DefaultDocument()
	}
	return model.Repair(raw)
}

func (s *Store) SaveDocument(doc model.Document) error {
	return s.writeJSON(documentFile, doc)
}

type templateSelection struct {
	Template string `json:"template"`
}

// LoadTemplate returns the persisted template selection, or the default when
// none is stored or the stored value no longer names a registered template.
func (s *Store) LoadTemplate() render.TemplateID {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(filepath.Join(s.dir, templateFile))
	if err != nil {
		return render.DefaultTemplate
	}
	var sel templateSelection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return render.DefaultTemplate
	}
	id, err := render.Parse(sel.Template)
	if err != nil {
		return render.DefaultTemplate
	}
	return id
}

func (s *Store) SaveTemplate(id render.TemplateID) error {
	return s.writeJSON(templateFile, templateSelection{Template: string(id)})
}

// ListResumes returns all saved snapshots; a corrupt file yields an empty
// list rather than an error.
func (s *Store) ListResumes() []domain.SavedResume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readResumes()
}

// SaveResume captures an independent snapshot of doc under name. Saving under
// an existing name replaces that snapshot in place, keeping its id.
func (s *Store) SaveResume(name string, template render.TemplateID, doc model.Document) (domain.SavedResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := domain.NewSavedResume(name, string(template), doc)
	list := s.readResumes()
	replaced := false
	for i, existing := range list {
		if existing.Name == name {
			saved.ID = existing.ID
			list[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, saved)
	}
	if err := s.writeJSONLocked(resumesFile, list); err != nil {
		return domain.SavedResume{}, err
	}
	return saved, nil
}

// DuplicateResume copies an existing snapshot under a new id and name.
func (s *Store) DuplicateResume(id uuid.UUID) (domain.SavedResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.readResumes()
	for _, existing := range list {
		if existing.ID == id {
			dup := domain.NewSavedResume(existing.Name+" (Copy)", existing.Template, existing.Document)
			list = append(list, dup)
			if err := s.writeJSONLocked(resumesFile, list); err != nil {
				return domain.SavedResume{}, err
			}
			return dup, nil
		}
	}
	return domain.SavedResume{}, fmt.Errorf("saved resume %s not found", id)
}

func (s *Store) readResumes() []domain.SavedResume {
	raw, err := os.ReadFile(filepath.Join(s.dir, resumesFile))
	if err != nil {
		return []domain.SavedResume{}
	}
	var list []domain.SavedResume
	if err := json.Unmarshal(raw, &list); err != nil {
		return []domain.SavedResume{}
	}
	return list
}

func (s *Store) writeJSON(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSONLocked(name, v)
}

func (s *Store) writeJSONLocked(name string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	dest := filepath.Join(s.dir, name)
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
