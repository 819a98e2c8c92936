package model

import "github.com/google/uuid"

// Go models for the resume document. This is the single source every
// renderer and exporter derives from; nothing here carries computed state.

// PersonalInfo is the fixed-key contact block. Every key is always present;
// empty strings are valid content.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one work history entry. Internships share the same shape.
// Date is a free-text range string, never a parsed date.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Date         string   `json:"date"`
	BulletPoints []string `json:"bulletPoints"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Link         string   `json:"link"`
	BulletPoints []string `json:"bulletPoints"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Date        string `json:"date"`
}

// CustomSection is an open-ended labeled bullet group added by the user.
type CustomSection struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	BulletPoints []string `json:"bulletPoints"`
}

// Document is the root resume aggregate. All eight root fields are required:
// a document missing any of them is invalid and must be repaired to defaults.
// Mutation happens only by replacing the whole value immutably, never in
// place, so change detection and the debounced auto-save stay reliable.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Internships    []Experience    `json:"internships"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	CustomSections []CustomSection `json:"customSections"`
}

// NewID returns a unique, stable list-item id. Ids are generated once at
// entry creation and never reused or renumbered.
func NewID() string {
	return uuid.New().String()
}

// DefaultDocument returns a fresh, complete document: every root key present,
// every list non-nil and empty.
func DefaultDocument() Document {
	return Document{
		PersonalInfo:   PersonalInfo{},
		Summary:        "",
		Experience:     []Experience{},
		Internships:    []Experience{},
		Projects:       []Project{},
		Education:      []Education{},
		Skills:         []string{},
		CustomSections: []CustomSection{},
	}
}

// Clone returns a deep copy. Saved snapshots and values handed out to
// callers are clones so the live document stays single-owner.
func (d Document) Clone() Document {
	out := d
	out.Experience = cloneExperience(d.Experience)
	out.Internships = cloneExperience(d.Internships)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.BulletPoints = cloneStrings(p.BulletPoints)
		out.Projects[i] = p
	}
	out.Education = make([]Education, len(d.Education))
	copy(out.Education, d.Education)
	out.Skills = cloneStrings(d.Skills)
	out.CustomSections = make([]CustomSection, len(d.CustomSections))
	for i, c := range d.CustomSections {
		c.BulletPoints = cloneStrings(c.BulletPoints)
		out.CustomSections[i] = c
	}
	return out
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		e.BulletPoints = cloneStrings(e.BulletPoints)
		out[i] = e
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Normalize makes a document structurally sound without touching content:
// nil lists become empty and entries missing an id get one assigned. Existing
// ids are never rewritten.
func Normalize(d Document) Document {
	out := d.Clone()
	if out.Experience == nil {
		out.Experience = []Experience{}
	}
	if out.Internships == nil {
		out.Internships = []Experience{}
	}
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	if out.Education == nil {
		out.Education = []Education{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.CustomSections == nil {
		out.CustomSections = []CustomSection{}
	}
	for i := range out.Experience {
		if out.Experience[i].ID == "" {
			out.Experience[i].ID = NewID()
		}
		if out.Experience[i].BulletPoints == nil {
			out.Experience[i].BulletPoints = []string{}
		}
	}
	for i := range out.Internships {
		if out.Internships[i].ID == "" {
			out.Internships[i].ID = NewID()
		}
		if out.Internships[i].BulletPoints == nil {
			out.Internships[i].BulletPoints = []string{}
		}
	}
	for i := range out.Projects {
		if out.Projects[i].ID == "" {
			out.Projects[i].ID = NewID()
		}
		if out.Projects[i].BulletPoints == nil {
			out.Projects[i].BulletPoints = []string{}
		}
	}
	for i := range out.Education {
		if out.Education[i].ID == "" {
			out.Education[i].ID = NewID()
		}
	}
	for i := range out.CustomSections {
		if out.CustomSections[i].ID == "" {
			out.CustomSections[i].ID = NewID()
		}
		if out.CustomSections[i].BulletPoints == nil {
			out.CustomSections[i].BulletPoints = []string{}
		}
	}
	return out
}
