package usecase

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// DocumentStore is what the editor needs from persistence.
type DocumentStore interface {
	SaveDocument(model.Document) error
	SaveTemplate(render.TemplateID) error
}

// Editor owns the live document and the active template selection. It is the
// single mutation entry point: every change replaces the relevant value
// wholesale (never in place) and schedules a debounced save, so auto-save
// and change detection stay reliable. No other component may mutate the
// document.
type Editor struct {
	mu       sync.Mutex
	doc      model.Document
	template render.TemplateID

	store DocumentStore
	saver *repository.Debouncer
}

func NewEditor(initial model.Document, template render.TemplateID, store DocumentStore, saveDelay time.Duration) *Editor {
	return &Editor{
		doc:      model.Normalize(initial),
		template: template,
		store:    store,
		saver:    repository.NewDebouncer(saveDelay),
	}
}

// Document returns an independent copy of the live document.
func (e *Editor) Document() model.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Clone()
}

func (e *Editor) Template() render.TemplateID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.template
}

// Update funnels every mutation: mutate receives a private copy, and its
// return value becomes the new document. The write to storage is debounced;
// rapid successive edits coalesce into one.
func (e *Editor) Update(mutate func(model.Document) model.Document) model.Document {
	e.mu.Lock()
	next := mutate(e.doc.Clone())
	e.doc = next
	snapshot := next.Clone()
	e.mu.Unlock()

	e.saver.Schedule(func() {
		if err := e.store.SaveDocument(snapshot); err != nil {
			slog.Warn("auto-save failed", "error", err)
		}
	})
	return snapshot
}

// SetDocument replaces the whole document, normalizing structure first.
func (e *Editor) SetDocument(doc model.Document) model.Document {
	normalized := model.Normalize(doc)
	return e.Update(func(model.Document) model.Document { return normalized })
}

// Reset starts a fresh resume from the default document.
func (e *Editor) Reset() model.Document {
	return e.Update(func(model.Document) model.Document { return model.DefaultDocument() })
}

// SetTemplate changes the active template. The selection is small and
// persisted immediately, outside the document debounce.
func (e *Editor) SetTemplate(id render.TemplateID) error {
	e.mu.Lock()
	e.template = id
	e.mu.Unlock()
	return e.store.SaveTemplate(id)
}

func (e *Editor) SetPersonalInfo(p model.PersonalInfo) model.Document {
	return e.Update(func(d model.Document) model.Document {
		d.PersonalInfo = p
		return d
	})
}

func (e *Editor) SetSummary(summary string) model.Document {
	return e.Update(func(d model.Document) model.Document {
		d.Summary = summary
		return d
	})
}

// SetSkillsFromInput stores the split of the raw comma-separated input,
// preserving empty tokens for the editing round-trip.
func (e *Editor) SetSkillsFromInput(raw string) model.Document {
	skills := model.SplitSkills(raw)
	return e.Update(func(d model.Document) model.Document {
		d.Skills = skills
		return d
	})
}

// AddExperience appends a blank entry with a fresh id and returns it.
func (e *Editor) AddExperience() model.Experience {
	entry := model.Experience{ID: model.NewID(), BulletPoints: []string{}}
	e.Update(func(d model.Document) model.Document {
		d.Experience = append(d.Experience, entry)
		return d
	})
	return entry
}

// UpdateExperience replaces the entry with a matching id; it reports whether
// a match was found.
func (e *Editor) UpdateExperience(entry model.Experience) bool {
	found := false
	e.Update(func(d model.Document) model.Document {
		for i := range d.Experience {
			if d.Experience[i].ID == entry.ID {
				d.Experience[i] = entry
				found = true
				break
			}
		}
		return d
	})
	return found
}

// RemoveExperience filters the entry out. Sibling ids are untouched: removal
// never renumbers.
func (e *Editor) RemoveExperience(id string) {
	e.Update(func(d model.Document) model.Document {
		d.Experience = filterExperience(d.Experience, id)
		return d
	})
}

func (e *Editor) AddInternship() model.Experience {
	entry := model.Experience{ID: model.NewID(), BulletPoints: []string{}}
	e.Update(func(d model.Document) model.Document {
		d.Internships = append(d.Internships, entry)
		return d
	})
	return entry
}

func (e *Editor) UpdateInternship(entry model.Experience) bool {
	found := false
	e.Update(func(d model.Document) model.Document {
		for i := range d.Internships {
			if d.Internships[i].ID == entry.ID {
				d.Internships[i] = entry
				found = true
				break
			}
		}
		return d
	})
	return found
}

func (e *Editor) RemoveInternship(id string) {
	e.Update(func(d model.Document) model.Document {
		d.Internships = filterExperience(d.Internships, id)
		return d
	})
}

func (e *Editor) AddProject() model.Project {
	entry := model.Project{ID: model.NewID(), BulletPoints: []string{}}
	e.Update(func(d model.Document) model.Document {
		d.Projects = append(d.Projects, entry)
		return d
	})
	return entry
}

func (e *Editor) UpdateProject(entry model.Project) bool {
	found := false
	e.Update(func(d model.Document) model.Document {
		for i := range d.Projects {
			if d.Projects[i].ID == entry.ID {
				d.Projects[i] = entry
				found = true
				break
			}
		}
		return d
	})
	return found
}

func (e *Editor) RemoveProject(id string) {
	e.Update(func(d model.Document) model.Document {
		out := d.Projects[:0:0]
		for _, p := range d.Projects {
			if p.ID != id {
				out = append(out, p)
			}
		}
		d.Projects = out
		return d
	})
}

func (e *Editor) AddEducation() model.Education {
	entry := model.Education{ID: model.NewID()}
	e.Update(func(d model.Document) model.Document {
		d.Education = append(d.Education, entry)
		return d
	})
	return entry
}

func (e *Editor) UpdateEducation(entry model.Education) bool {
	found := false
	e.Update(func(d model.Document) model.Document {
		for i := range d.Education {
			if d.Education[i].ID == entry.ID {
				d.Education[i] = entry
				found = true
				break
			}
		}
		return d
	})
	return found
}

func (e *Editor) RemoveEducation(id string) {
	e.Update(func(d model.Document) model.Document {
		out := d.Education[:0:0]
		for _, entry := range d.Education {
			if entry.ID != id {
				out = append(out, entry)
			}
		}
		d.Education = out
		return d
	})
}

func (e *Editor) AddCustomSection(title string) model.CustomSection {
	entry := model.CustomSection{ID: model.NewID(), Title: title, BulletPoints: []string{}}
	e.Update(func(d model.Document) model.Document {
		d.CustomSections = append(d.CustomSections, entry)
		return d
	})
	return entry
}

func (e *Editor) UpdateCustomSection(entry model.CustomSection) bool {
	found := false
	e.Update(func(d model.Document) model.Document {
		for i := range d.CustomSections {
			if d.CustomSections[i].ID == entry.ID {
				d.CustomSections[i] = entry
				found = true
				break
			}
		}
		return d
	})
	return found
}

func (e *Editor) RemoveCustomSection(id string) {
	e.Update(func(d model.Document) model.Document {
		out := d.CustomSections[:0:0]
		for _, c := range d.CustomSections {
			if c.ID != id {
				out = append(out, c)
			}
		}
		d.CustomSections = out
		return d
	})
}

// ApplyGeneratedSummary merges AI-suggested prose as a normal update.
// Last write wins; the user may have edited meanwhile and that is fine.
func (e *Editor) ApplyGeneratedSummary(summary string) model.Document {
	return e.SetSummary(strings.TrimSpace(summary))
}

// ApplyGeneratedBullets replaces one experience entry's bullet points with
// the AI suggestions; it reports whether the entry still exists.
func (e *Editor) ApplyGeneratedBullets(experienceID string, bullets []string) bool {
	found := false
	e.Update(func(d model.Document) model.Document {
		for i := range d.Experience {
			if d.Experience[i].ID == experienceID {
				d.Experience[i].BulletPoints = append([]string{}, bullets...)
				found = true
				break
			}
		}
		return d
	})
	return found
}

// Flush forces any pending debounced save to run now. Called on shutdown.
func (e *Editor) Flush() {
	e.saver.Flush()
}

func filterExperience(list []model.Experience, id string) []model.Experience {
	out := list[:0:0]
	for _, entry := range list {
		if entry.ID != id {
			out = append(out, entry)
		}
	}
	return out
}
