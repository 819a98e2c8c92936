package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

// modernRenderer is the sans-serif layout with an accent sidebar rule and
// left-aligned header.
type modernRenderer struct{}

func (modernRenderer) ID() TemplateID { return TemplateModern }

func (modernRenderer) Render(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := modernTpl.Execute(&buf, buildPage(doc, " · ")); err != nil {
		return "", fmt.Errorf("modern: execute template: %w", err)
	}
	return buf.String(), nil
}

var modernTpl = template.Must(template.New("modern").Parse(modernHTML))

const modernHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #222; width: 210mm; min-height: 297mm; margin: 0 auto; padding: 16mm 18mm; box-sizing: border-box; font-size: 10.5pt; line-height: 1.5; }
header { border-left: 4px solid #2563eb; padding-left: 12px; margin-bottom: 18px; }
h1 { font-size: 24pt; margin: 0; font-weight: 700; }
.contact { color: #555; font-size: 9.5pt; margin-top: 4px; }
.contact span + span:before { content: "  ·  "; color: #2563eb; }
h2 { font-size: 10.5pt; text-transform: uppercase; letter-spacing: 1.5px; color: #2563eb; margin: 18px 0 6px; }
.entry { margin-bottom: 10px; }
.head { display: flex; justify-content: space-between; align-items: baseline; }
.role { font-weight: 600; }
.company { color: #444; }
.date { color: #777; font-size: 9pt; }
ul { margin: 3px 0 0; padding-left: 16px; }
li { margin-bottom: 2px; }
a { color: #2563eb; text-decoration: none; }
</style>
</head>
<body>
<header>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{range .Contact}}<span>{{.}}</span>{{end}}</div>{{end}}
</header>
{{if .Summary}}
<h2>Profile</h2>
<p>{{.Summary}}</p>
{{end}}
{{if .Experience}}
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
<div class="head"><span><span class="role">{{.Role}}</span>{{if and .Role .Company}} — {{end}}<span class="company">{{.Company}}</span></span><span class="date">{{.Date}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Internships}}
<h2>Internships</h2>
{{range .Internships}}
<div class="entry">
<div class="head"><span><span class="role">{{.Role}}</span>{{if and .Role .Company}} — {{end}}<span class="company">{{.Company}}</span></span><span class="date">{{.Date}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Projects}}
<h2>Projects</h2>
{{range .Projects}}
<div class="entry">
<div class="head"><span class="role">{{.Name}}</span>{{if .Link}}<span class="date"><a href="{{.Link}}">{{.LinkLabel}}</a></span>{{end}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry">
<div class="head"><span><span class="role">{{.Degree}}</span>{{if and .Degree .Institution}} — {{end}}<span class="company">{{.Institution}}</span></span><span class="date">{{.Date}}</span></div>
</div>
{{end}}
{{end}}
{{if .Skills}}
<h2>Skills</h2>
<p>{{.SkillsLine}}</p>
{{end}}
{{range .Custom}}
<h2>{{.Title}}</h2>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}
</body>
</html>
`
