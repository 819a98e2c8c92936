package http

import (
	"context"
	"errors"
	"log/slog"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Enricher is the optional AI surface. A nil Enricher means the feature is
// not configured; every other part of the application keeps working.
type Enricher interface {
	GenerateSummary(ctx context.Context, doc model.Document, jobDescription string) (string, error)
	GenerateBulletPoints(ctx context.Context, entry model.Experience, jobDescription string) ([]string, error)
}

type Handler struct {
	editor   *usecase.Editor
	exporter *usecase.Exporter
	store    *repository.Store
	enricher Enricher
}

func NewHandler(editor *usecase.Editor, exporter *usecase.Exporter, store *repository.Store, enricher Enricher) *Handler {
	return &Handler{editor: editor, exporter: exporter, store: store, enricher: enricher}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)

	app.Get("/document", h.GetDocument)
	app.Put("/document", h.PutDocument)
	app.Post("/document/reset", h.ResetDocument)
	app.Put("/document/personal-info", h.PutPersonalInfo)
	app.Put("/document/summary", h.PutSummary)
	app.Put("/document/skills", h.PutSkills)

	app.Post("/document/:section", h.AddEntry)
	app.Put("/document/:section/:id", h.UpdateEntry)
	app.Delete("/document/:section/:id", h.RemoveEntry)

	app.Get("/templates", h.ListTemplates)
	app.Put("/template", h.PutTemplate)
	app.Get("/preview", h.Preview)

	app.Post("/validate/personal-info", h.ValidatePersonalInfo)

	app.Post("/export/pdf", h.ExportPDF)
	app.Post("/export/text", h.ExportText)

	app.Get("/resumes", h.ListResumes)
	app.Post("/resumes", h.SaveResume)
	app.Post("/resumes/:id/duplicate", h.DuplicateResume)

	app.Post("/ai/summary", h.GenerateSummary)
	app.Post("/ai/bullets", h.GenerateBullets)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"document": h.editor.Document(),
		"template": h.editor.Template(),
	})
}

func (h *Handler) PutDocument(c *fiber.Ctx) error {
	var doc model.Document
	if err := c.BodyParser(&doc); err != nil {
		return badRequest(c, "invalid document payload")
	}
	return c.JSON(h.editor.SetDocument(doc))
}

func (h *Handler) ResetDocument(c *fiber.Ctx) error {
	return c.JSON(h.editor.Reset())
}

func (h *Handler) PutPersonalInfo(c *fiber.Ctx) error {
	var info model.PersonalInfo
	if err := c.BodyParser(&info); err != nil {
		return badRequest(c, "invalid personal info payload")
	}
	return c.JSON(h.editor.SetPersonalInfo(info))
}

func (h *Handler) PutSummary(c *fiber.Ctx) error {
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid summary payload")
	}
	return c.JSON(h.editor.SetSummary(req.Summary))
}

func (h *Handler) PutSkills(c *fiber.Ctx) error {
	var req struct {
		Skills string `json:"skills"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid skills payload")
	}
	return c.JSON(h.editor.SetSkillsFromInput(req.Skills))
}

// AddEntry appends a blank entry to the named list section and returns it
// so the client can start editing by id right away.
func (h *Handler) AddEntry(c *fiber.Ctx) error {
	switch c.Params("section") {
	case "experience":
		return c.Status(fiber.StatusCreated).JSON(h.editor.AddExperience())
	case "internships":
		return c.Status(fiber.StatusCreated).JSON(h.editor.AddInternship())
	case "projects":
		return c.Status(fiber.StatusCreated).JSON(h.editor.AddProject())
	case "education":
		return c.Status(fiber.StatusCreated).JSON(h.editor.AddEducation())
	case "custom-sections":
		var req struct {
			Title string `json:"title"`
		}
		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return badRequest(c, "invalid section payload")
		}
		return c.Status(fiber.StatusCreated).JSON(h.editor.AddCustomSection(req.Title))
	default:
		return badRequest(c, "unknown section")
	}
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	id := c.Params("id")

	var ok bool
	switch c.Params("section") {
	case "experience", "internships":
		var entry model.Experience
		if err := c.BodyParser(&entry); err != nil {
			return badRequest(c, "invalid entry payload")
		}
		entry.ID = id
		if c.Params("section") == "experience" {
			ok = h.editor.UpdateExperience(entry)
		} else {
			ok = h.editor.UpdateInternship(entry)
		}
	case "projects":
		var entry model.Project
		if err := c.BodyParser(&entry); err != nil {
			return badRequest(c, "invalid entry payload")
		}
		entry.ID = id
		ok = h.editor.UpdateProject(entry)
	case "education":
		var entry model.Education
		if err := c.BodyParser(&entry); err != nil {
			return badRequest(c, "invalid entry payload")
		}
		entry.ID = id
		ok = h.editor.UpdateEducation(entry)
	case "custom-sections":
		var entry model.CustomSection
		if err := c.BodyParser(&entry); err != nil {
			return badRequest(c, "invalid entry payload")
		}
		entry.ID = id
		ok = h.editor.UpdateCustomSection(entry)
	default:
		return badRequest(c, "unknown section")
	}

	if !ok {
		return notFound(c, "entry not found")
	}
	return c.JSON(h.editor.Document())
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	id := c.Params("id")

	switch c.Params("section") {
	case "experience":
		h.editor.RemoveExperience(id)
	case "internships":
		h.editor.RemoveInternship(id)
	case "projects":
		h.editor.RemoveProject(id)
	case "education":
		h.editor.RemoveEducation(id)
	case "custom-sections":
		h.editor.RemoveCustomSection(id)
	default:
		return badRequest(c, "unknown section")
	}
	return c.JSON(h.editor.Document())
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": render.All(),
		"selected":  h.editor.Template(),
	})
}

func (h *Handler) PutTemplate(c *fiber.Ctx) error {
	var req struct {
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid template payload")
	}
	id, err := render.Parse(req.Template)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.editor.SetTemplate(id); err != nil {
		slog.Warn("persist template selection", "error", err)
	}
	return c.JSON(fiber.Map{"template": id})
}

// Preview renders the current document with the current template and
// returns the HTML, the same markup the PDF export prints.
func (h *Handler) Preview(c *fiber.Ctx) error {
	renderer, ok := render.Get(h.editor.Template())
	if !ok {
		renderer, _ = render.Get(render.DefaultTemplate)
	}
	html, err := renderer.Render(h.editor.Document())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ValidatePersonalInfo runs the field validators and returns per-field
// messages, empty string meaning the field is acceptable.
func (h *Handler) ValidatePersonalInfo(c *fiber.Ctx) error {
	var info model.PersonalInfo
	if err := c.BodyParser(&info); err != nil {
		return badRequest(c, "invalid personal info payload")
	}
	return c.JSON(fiber.Map{
		"email":    model.EmailError(info.Email),
		"phone":    model.PhoneError(info.Phone),
		"linkedin": model.URLError(info.LinkedIn),
		"website":  model.URLError(info.Website),
	})
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	RecordExport("pdf")
	result, err := h.exporter.ExportPDF(c.Context(), h.editor.Document(), h.editor.Template())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrExportBusy):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, infra.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		default:
			slog.Error("pdf export", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "PDF export failed"})
		}
	}
	return sendDownload(c, result)
}

func (h *Handler) ExportText(c *fiber.Ctx) error {
	RecordExport("text")
	return sendDownload(c, h.exporter.ExportText(h.editor.Document()))
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	return c.JSON(h.store.ListResumes())
}

// SaveResume snapshots the current document under a name. Saving under an
// existing name overwrites that entry in place.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return badRequest(c, "a resume name is required")
	}
	saved, err := h.store.SaveResume(req.Name, h.editor.Template(), h.editor.Document())
	if err != nil {
		slog.Error("save resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *Handler) DuplicateResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resume id")
	}
	copied, err := h.store.DuplicateResume(id)
	if err != nil {
		return notFound(c, "resume not found")
	}
	return c.Status(fiber.StatusCreated).JSON(copied)
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	if h.enricher == nil {
		return aiUnavailable(c)
	}
	var req struct {
		JobDescription string `json:"jobDescription"`
	}
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return badRequest(c, "invalid payload")
	}

	RecordEnrichment("summary")
	summary, err := h.enricher.GenerateSummary(c.Context(), h.editor.Document(), req.JobDescription)
	if err != nil {
		slog.Error("generate summary", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI request failed"})
	}

	doc := h.editor.ApplyGeneratedSummary(summary)
	return c.JSON(fiber.Map{"summary": summary, "document": doc})
}

func (h *Handler) GenerateBullets(c *fiber.Ctx) error {
	if h.enricher == nil {
		return aiUnavailable(c)
	}
	var req struct {
		ExperienceID   string `json:"experienceId"`
		JobDescription string `json:"jobDescription"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	var entry *model.Experience
	for _, exp := range h.editor.Document().Experience {
		if exp.ID == req.ExperienceID {
			e := exp
			entry = &e
			break
		}
	}
	if entry == nil {
		return notFound(c, "experience entry not found")
	}

	RecordEnrichment("bullets")
	bullets, err := h.enricher.GenerateBulletPoints(c.Context(), *entry, req.JobDescription)
	if err != nil {
		slog.Error("generate bullets", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI request failed"})
	}

	if len(bullets) > 0 {
		h.editor.ApplyGeneratedBullets(req.ExperienceID, bullets)
	}
	return c.JSON(fiber.Map{"bulletPoints": bullets, "document": h.editor.Document()})
}

func sendDownload(c *fiber.Ctx, result *usecase.ExportResult) error {
	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Data)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func aiUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": ai.ErrNotConfigured.Error()})
}
