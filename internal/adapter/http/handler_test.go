package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

type stubPDF struct {
	data []byte
	err  error
}

func (s *stubPDF) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return s.data, s.err
}

func newTestApp(t *testing.T) (*fiber.App, *usecase.Editor) {
	t.Helper()

	store, err := repository.NewStore(t.TempDir())
	require.NoError(t, err)

	editor := usecase.NewEditor(store.LoadDocument(), store.LoadTemplate(), store, time.Millisecond)
	exporter := usecase.NewExporter(&stubPDF{err: context.Canceled})

	app := fiber.New()
	NewHandler(editor, exporter, store, nil).Register(app)
	return app, editor
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestGetDocument(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/document", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Document model.Document `json:"document"`
		Template string         `json:"template"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "classic", body.Template)
	assert.NotNil(t, body.Document.Experience)
}

func TestPutPersonalInfo(t *testing.T) {
	app, editor := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/document/personal-info", model.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane Doe", editor.Document().PersonalInfo.Name)
}

func TestSectionLifecycle(t *testing.T) {
	app, editor := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/document/experience", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry model.Experience
	decodeBody(t, resp, &entry)
	require.NotEmpty(t, entry.ID)

	entry.Company = "Acme"
	entry.Role = "Engineer"
	resp, err = app.Test(jsonRequest(http.MethodPut, "/document/experience/"+entry.ID, entry))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme", editor.Document().Experience[0].Company)

	resp, err = app.Test(jsonRequest(http.MethodDelete, "/document/experience/"+entry.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, editor.Document().Experience)
}

func TestUpdateUnknownEntry(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/document/experience/missing", model.Experience{Company: "X"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownSection(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/document/awards", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPutTemplate(t *testing.T) {
	app, editor := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/template", map[string]string{"template": "modern"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "modern", string(editor.Template()))

	resp, err = app.Test(jsonRequest(http.MethodPut, "/template", map[string]string{"template": "fancy"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPreviewReturnsHTML(t *testing.T) {
	app, editor := newTestApp(t)
	editor.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/preview", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Jane Doe")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestValidatePersonalInfo(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/validate/personal-info", model.PersonalInfo{Email: "bad", Phone: "123-4567"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Please enter a valid email address", body["email"])
	assert.Empty(t, body["phone"])
}

func TestExportTextDownload(t *testing.T) {
	app, editor := newTestApp(t)
	editor.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/export/text", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `Jane_Doe_Resume.txt`)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "--- SUMMARY ---")
}

func TestExportPDFRendererFailure(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/export/pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestResumesSaveAndDuplicate(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/resumes", map[string]string{"name": "draft"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &saved)
	require.NotEmpty(t, saved.ID)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/resumes/"+saved.ID+"/duplicate", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/resumes", nil))
	require.NoError(t, err)

	var list []struct {
		Name string `json:"name"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "draft (Copy)", list[1].Name)
}

func TestSaveResumeRequiresName(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/resumes", map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAIUnavailableWithoutClient(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/ai/summary", map[string]string{"jobDescription": "Go role"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

type fakeEnricher struct {
	summary string
	bullets []string
}

func (f *fakeEnricher) GenerateSummary(ctx context.Context, doc model.Document, jobDescription string) (string, error) {
	return f.summary, nil
}

func (f *fakeEnricher) GenerateBulletPoints(ctx context.Context, entry model.Experience, jobDescription string) ([]string, error) {
	return f.bullets, nil
}

func TestAISummaryApplies(t *testing.T) {
	store, err := repository.NewStore(t.TempDir())
	require.NoError(t, err)
	editor := usecase.NewEditor(model.DefaultDocument(), "classic", store, time.Millisecond)

	app := fiber.New()
	NewHandler(editor, usecase.NewExporter(&stubPDF{}), store, &fakeEnricher{summary: "Polished."}).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/ai/summary", map[string]string{"jobDescription": "Go role"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Polished.", editor.Document().Summary)
}

func TestAIBulletsRequiresExistingEntry(t *testing.T) {
	store, err := repository.NewStore(t.TempDir())
	require.NoError(t, err)
	editor := usecase.NewEditor(model.DefaultDocument(), "classic", store, time.Millisecond)

	app := fiber.New()
	NewHandler(editor, usecase.NewExporter(&stubPDF{}), store, &fakeEnricher{bullets: []string{"Led X"}}).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/ai/bullets", map[string]string{"experienceId": "missing"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	entry := editor.AddExperience()
	entry.Company = "Acme"
	require.True(t, editor.UpdateExperience(entry))

	resp, err = app.Test(jsonRequest(http.MethodPost, "/ai/bullets", map[string]string{"experienceId": entry.ID}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Led X"}, editor.Document().Experience[0].BulletPoints)
}
