package repository

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// recorder collects callback invocations across goroutines.
type recorder struct {
	mu   sync.Mutex
	runs []string
}

func (r *recorder) inc(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, tag)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.runs...)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestDocumentRoundTrip(t *testing.T) {
	s := newTestStore(t)

	doc := model.DefaultDocument()
	doc.PersonalInfo.Name = "Jane Doe"
	doc.Skills = []string{"Go", "SQL"}
	require.NoError(t, s.SaveDocument(doc))

	got := s.LoadDocument()
	assert.Equal(t, doc, got)
}

func TestLoadDocumentMissingFile(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, model.DefaultDocument(), s.LoadDocument())
}

func TestLoadDocumentCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "document.json"), []byte("{{{"), 0o644))
	assert.Equal(t, model.DefaultDocument(), s.LoadDocument())
}

func TestTemplateRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, render.DefaultTemplate, s.LoadTemplate())

	require.NoError(t, s.SaveTemplate(render.TemplateATSPro))
	assert.Equal(t, render.TemplateATSPro, s.LoadTemplate())
}

func TestLoadTemplateUnknownFallsBack(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.json"), []byte(`{"template":"retired"}`), 0o644))
	assert.Equal(t, render.DefaultTemplate, s.LoadTemplate())
}

func TestSaveResumeSnapshotIsIndependent(t *testing.T) {
	s := newTestStore(t)

	doc := model.DefaultDocument()
	doc.Experience = []model.Experience{{ID: "e1", Company: "Acme", BulletPoints: []string{"a"}}}

	saved, err := s.SaveResume("draft", render.TemplateClassic, doc)
	require.NoError(t, err)

	doc.Experience[0].Company = "Changed"
	doc.Experience[0].BulletPoints[0] = "changed"

	list := s.ListResumes()
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)
	assert.Equal(t, "Acme", list[0].Document.Experience[0].Company)
	assert.Equal(t, "a", list[0].Document.Experience[0].BulletPoints[0])
}

func TestSaveResumeSameNameReplacesKeepingID(t *testing.T) {
	s := newTestStore(t)

	first, err := s.SaveResume("draft", render.TemplateClassic, model.DefaultDocument())
	require.NoError(t, err)

	doc := model.DefaultDocument()
	doc.Summary = "updated"
	second, err := s.SaveResume("draft", render.TemplateModern, doc)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	list := s.ListResumes()
	require.Len(t, list, 1)
	assert.Equal(t, "updated", list[0].Document.Summary)
	assert.Equal(t, string(render.TemplateModern), list[0].Template)
}

func TestDuplicateResume(t *testing.T) {
	s := newTestStore(t)

	orig, err := s.SaveResume("draft", render.TemplateClassic, model.DefaultDocument())
	require.NoError(t, err)

	dup, err := s.DuplicateResume(orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft (Copy)", dup.Name)
	assert.NotEqual(t, orig.ID, dup.ID)

	assert.Len(t, s.ListResumes(), 2)
}

func TestDuplicateMissingResume(t *testing.T) {
	s := newTestStore(t)
	_, err := s.DuplicateResume(uuid.New())
	assert.Error(t, err)
}

func TestListResumesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "resumes.json"), []byte("broken"), 0o644))
	list := s.ListResumes()
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)

	var rec recorder
	d.Schedule(func() { rec.inc("a") })
	d.Schedule(func() { rec.inc("b") })
	d.Schedule(func() { rec.inc("c") })

	require.Eventually(t, func() bool { return rec.count() > 0 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"c"}, rec.values())
}

func TestDebouncerFlushRunsPendingOnce(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var rec recorder
	d.Schedule(func() { rec.inc("pending") })
	d.Flush()

	assert.Equal(t, []string{"pending"}, rec.values())

	d.Flush()
	assert.Equal(t, []string{"pending"}, rec.values())
}

func TestDebouncerStopCancels(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)

	var rec recorder
	d.Schedule(func() { rec.inc("never") })
	d.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, rec.count())
}
