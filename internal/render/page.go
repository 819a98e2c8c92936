package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

// page is the view model handed to every template. Building it applies the
// shared contract rules once: entries with blank identifying fields are
// dropped, empty bullet strings are dropped, empty skills are filtered, and
// order is preserved exactly as stored.
type page struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Website  string
	Contact  []string

	Summary string

	Experience  []entryView
	Internships []entryView
	Projects    []projectView
	Education   []educationView
	Custom      []customView

	Skills     []string
	SkillsLine string
}

type entryView struct {
	Company string
	Role    string
	Date    string
	Bullets []string
}

type projectView struct {
	Name      string
	Link      string
	LinkLabel string
	Bullets   []string
}

type educationView struct {
	Institution string
	Degree      string
	Date        string
}

type customView struct {
	Title   string
	Bullets []string
}

func buildPage(doc model.Document, skillSep string) page {
	p := doc.PersonalInfo
	skills := model.RenderSkills(doc.Skills)
	out := page{
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		LinkedIn:    p.LinkedIn,
		Website:     p.Website,
		Contact:     contactItems(p),
		Summary:     strings.TrimSpace(doc.Summary),
		Experience:  entryViews(doc.Experience),
		Internships: entryViews(doc.Internships),
		Projects:    projectViews(doc.Projects),
		Education:   educationViews(doc.Education),
		Custom:      customViews(doc.CustomSections),
		Skills:      skills,
		SkillsLine:  strings.Join(skills, skillSep),
	}
	return out
}

func contactItems(p model.PersonalInfo) []string {
	items := []string{}
	for _, s := range []string{p.Email, p.Phone, p.LinkedIn, p.Website} {
		if strings.TrimSpace(s) != "" {
			items = append(items, s)
		}
	}
	return items
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func nonEmpty(in []string) []string {
	out := []string{}
	for _, s := range in {
		if !blank(s) {
			out = append(out, s)
		}
	}
	return out
}

// entryViews drops entries whose identifying fields (company and role) are
// all blank. Entries with headers but empty bullets survive with an empty
// bullet list.
func entryViews(list []model.Experience) []entryView {
	out := []entryView{}
	for _, e := range list {
		if blank(e.Company) && blank(e.Role) {
			continue
		}
		out = append(out, entryView{
			Company: e.Company,
			Role:    e.Role,
			Date:    e.Date,
			Bullets: nonEmpty(e.BulletPoints),
		})
	}
	return out
}

func projectViews(list []model.Project) []projectView {
	out := []projectView{}
	for _, p := range list {
		if blank(p.Name) {
			continue
		}
		out = append(out, projectView{
			Name:      p.Name,
			Link:      p.Link,
			LinkLabel: linkLabel(p.Link),
			Bullets:   nonEmpty(p.BulletPoints),
		})
	}
	return out
}

func educationViews(list []model.Education) []educationView {
	out := []educationView{}
	for _, e := range list {
		if blank(e.Institution) && blank(e.Degree) {
			continue
		}
		out = append(out, educationView{Institution: e.Institution, Degree: e.Degree, Date: e.Date})
	}
	return out
}

func customViews(list []model.CustomSection) []customView {
	out := []customView{}
	for _, c := range list {
		if blank(c.Title) {
			continue
		}
		out = append(out, customView{Title: c.Title, Bullets: nonEmpty(c.BulletPoints)})
	}
	return out
}

// linkLabel produces a tidy domain-only label for a project link, falling
// back to the raw value when the URL does not parse.
func linkLabel(raw string) string {
	if blank(raw) {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
