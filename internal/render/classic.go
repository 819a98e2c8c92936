package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

// classicRenderer is the traditional serif layout: centered header, ruled
// section headings.
type classicRenderer struct{}

func (classicRenderer) ID() TemplateID { return TemplateClassic }

func (classicRenderer) Render(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := classicTpl.Execute(&buf, buildPage(doc, " • ")); err != nil {
		return "", fmt.Errorf("classic: execute template: %w", err)
	}
	return buf.String(), nil
}

var classicTpl = template.Must(template.New("classic").Parse(classicHTML))

const classicHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
body { font-family: Georgia, "Times New Roman", serif; color: #1a1a1a; width: 210mm; min-height: 297mm; margin: 0 auto; padding: 18mm 16mm; box-sizing: border-box; font-size: 11pt; line-height: 1.45; }
header { text-align: center; margin-bottom: 14px; }
h1 { font-size: 22pt; margin: 0 0 4px; letter-spacing: 1px; }
.contact { font-size: 9.5pt; color: #444; }
.contact span + span:before { content: " | "; color: #999; }
h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: 2px; border-bottom: 1px solid #1a1a1a; padding-bottom: 2px; margin: 16px 0 8px; }
.entry { margin-bottom: 10px; }
.entry-head { display: flex; justify-content: space-between; }
.role { font-weight: bold; }
.company { font-style: italic; }
.date { color: #555; font-size: 9.5pt; }
ul { margin: 4px 0 0; padding-left: 18px; }
li { margin-bottom: 2px; }
.skills { font-size: 10.5pt; }
a { color: #1a1a1a; }
</style>
</head>
<body>
<header>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{range .Contact}}<span>{{.}}</span>{{end}}</div>{{end}}
</header>
{{if .Summary}}
<section>
<h2>Summary</h2>
<p>{{.Summary}}</p>
</section>
{{end}}
{{if .Experience}}
<section>
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
<div class="entry-head"><span><span class="role">{{.Role}}</span>{{if and .Role .Company}}, {{end}}<span class="company">{{.Company}}</span></span><span class="date">{{.Date}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
</section>
{{end}}
{{if .Internships}}
<section>
<h2>Internships</h2>
{{range .Internships}}
<div class="entry">
<div class="entry-head"><span><span class="role">{{.Role}}</span>{{if and .Role .Company}}, {{end}}<span class="company">{{.Company}}</span></span><span class="date">{{.Date}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
</section>
{{end}}
{{if .Projects}}
<section>
<h2>Projects</h2>
{{range .Projects}}
<div class="entry">
<div class="entry-head"><span class="role">{{.Name}}</span>{{if .Link}}<span class="date"><a href="{{.Link}}">{{.LinkLabel}}</a></span>{{end}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
</section>
{{end}}
{{if .Education}}
<section>
<h2>Education</h2>
{{range .Education}}
<div class="entry">
<div class="entry-head"><span><span class="role">{{.Degree}}</span>{{if and .Degree .Institution}}, {{end}}<span class="company">{{.Institution}}</span></span><span class="date">{{.Date}}</span></div>
</div>
{{end}}
</section>
{{end}}
{{if .Skills}}
<section>
<h2>Skills</h2>
<p class="skills">{{.SkillsLine}}</p>
</section>
{{end}}
{{range .Custom}}
<section>
<h2>{{.Title}}</h2>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>
{{end}}
</body>
</html>
`
