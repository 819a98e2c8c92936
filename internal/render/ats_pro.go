package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

// atsProRenderer stays parser-friendly like ats-simple but adds restrained
// typographic structure: small caps headings with a hairline rule and a
// pipe-separated skill line.
type atsProRenderer struct{}

func (atsProRenderer) ID() TemplateID { return TemplateATSPro }

func (atsProRenderer) Render(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := atsProTpl.Execute(&buf, buildPage(doc, " | ")); err != nil {
		return "", fmt.Errorf("ats-pro: execute template: %w", err)
	}
	return buf.String(), nil
}

var atsProTpl = template.Must(template.New("ats-pro").Parse(atsProHTML))

const atsProHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
body { font-family: Calibri, Arial, sans-serif; color: #000; width: 210mm; min-height: 297mm; margin: 0 auto; padding: 18mm 18mm; box-sizing: border-box; font-size: 10.5pt; line-height: 1.4; }
h1 { font-size: 18pt; margin: 0; letter-spacing: 0.5px; }
.contact { margin: 2px 0 12px; color: #222; }
h2 { font-size: 11pt; font-variant: small-caps; letter-spacing: 1px; border-bottom: 1px solid #888; padding-bottom: 1px; margin: 14px 0 6px; }
.entry { margin-bottom: 8px; }
.row { display: flex; justify-content: space-between; }
.head { font-weight: bold; }
.date { color: #333; }
ul { margin: 3px 0 0; padding-left: 18px; }
li { margin-bottom: 1px; }
a { color: #000; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{range $i, $c := .Contact}}{{if $i}} | {{end}}{{$c}}{{end}}</div>{{end}}
{{if .Summary}}
<h2>Professional Summary</h2>
<p>{{.Summary}}</p>
{{end}}
{{if .Experience}}
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
<div class="row"><span class="head">{{.Role}}{{if and .Role .Company}}, {{end}}{{.Company}}</span><span class="date">{{.Date}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Internships}}
<h2>Internships</h2>
{{range .Internships}}
<div class="entry">
<div class="row"><span class="head">{{.Role}}{{if and .Role .Company}}, {{end}}{{.Company}}</span><span class="date">{{.Date}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Projects}}
<h2>Projects</h2>
{{range .Projects}}
<div class="entry">
<div class="row"><span class="head">{{.Name}}</span>{{if .Link}}<span class="date"><a href="{{.Link}}">{{.LinkLabel}}</a></span>{{end}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry">
<div class="row"><span class="head">{{.Degree}}{{if and .Degree .Institution}} - {{end}}{{.Institution}}</span><span class="date">{{.Date}}</span></div>
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
