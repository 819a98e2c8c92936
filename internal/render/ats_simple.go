package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

// atsSimpleRenderer favors machine readability: single column, default
// system font, no decoration, plain uppercase headings.
type atsSimpleRenderer struct{}

func (atsSimpleRenderer) ID() TemplateID { return TemplateATSSimple }

func (atsSimpleRenderer) Render(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := atsSimpleTpl.Execute(&buf, buildPage(doc, ", ")); err != nil {
		return "", fmt.Errorf("ats-simple: execute template: %w", err)
	}
	return buf.String(), nil
}

var atsSimpleTpl = template.Must(template.New("ats-simple").Parse(atsSimpleHTML))

const atsSimpleHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
body { font-family: Arial, Helvetica, sans-serif; color: #000; width: 210mm; min-height: 297mm; margin: 0 auto; padding: 20mm 20mm; box-sizing: border-box; font-size: 11pt; line-height: 1.4; }
h1 { font-size: 16pt; margin: 0 0 2px; }
.contact { margin-bottom: 12px; }
h2 { font-size: 12pt; text-transform: uppercase; margin: 14px 0 6px; }
.entry { margin-bottom: 8px; }
.head { font-weight: bold; }
.sub { }
ul { margin: 3px 0 0; padding-left: 18px; }
a { color: #000; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{range $i, $c := .Contact}}{{if $i}} | {{end}}{{$c}}{{end}}</div>{{end}}
{{if .Summary}}
<h2>Summary</h2>
<p>{{.Summary}}</p>
{{end}}
{{if .Experience}}
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
<div class="head">{{.Role}}{{if and .Role .Company}} at {{end}}{{.Company}}</div>
{{if .Date}}<div class="sub">{{.Date}}</div>{{end}}
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Internships}}
<h2>Internships</h2>
{{range .Internships}}
<div class="entry">
<div class="head">{{.Role}}{{if and .Role .Company}} at {{end}}{{.Company}}</div>
{{if .Date}}<div class="sub">{{.Date}}</div>{{end}}
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Projects}}
<h2>Projects</h2>
{{range .Projects}}
<div class="entry">
<div class="head">{{.Name}}</div>
{{if .Link}}<div class="sub"><a href="{{.Link}}">{{.LinkLabel}}</a></div>{{end}}
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry">
<div class="head">{{.Degree}}{{if and .Degree .Institution}} - {{end}}{{.Institution}}</div>
{{if .Date}}<div class="sub">{{.Date}}</div>{{end}}
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
