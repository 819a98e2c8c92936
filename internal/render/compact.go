package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

// compactRenderer squeezes the most content onto the page: small type, tight
// margins, inline entry headers.
type compactRenderer struct{}

func (compactRenderer) ID() TemplateID { return TemplateCompact }

func (compactRenderer) Render(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := compactTpl.Execute(&buf, buildPage(doc, ", ")); err != nil {
		return "", fmt.Errorf("compact: execute template: %w", err)
	}
	return buf.String(), nil
}

var compactTpl = template.Must(template.New("compact").Parse(compactHTML))

const compactHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
body { font-family: Arial, sans-serif; color: #111; width: 210mm; min-height: 297mm; margin: 0 auto; padding: 10mm 12mm; box-sizing: border-box; font-size: 9.5pt; line-height: 1.35; }
header { display: flex; justify-content: space-between; align-items: baseline; border-bottom: 2px solid #111; padding-bottom: 4px; margin-bottom: 8px; }
h1 { font-size: 16pt; margin: 0; }
.contact { font-size: 8.5pt; color: #333; text-align: right; }
h2 { font-size: 9.5pt; text-transform: uppercase; margin: 10px 0 4px; background: #f0f0f0; padding: 2px 4px; }
.entry { margin-bottom: 5px; }
.head { font-size: 9.5pt; }
.role { font-weight: bold; }
.date { color: #666; float: right; }
ul { margin: 2px 0 0; padding-left: 14px; }
li { margin-bottom: 1px; }
a { color: #111; }
</style>
</head>
<body>
<header>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{range $i, $c := .Contact}}{{if $i}} | {{end}}{{$c}}{{end}}</div>{{end}}
</header>
{{if .Summary}}<h2>Summary</h2><p>{{.Summary}}</p>{{end}}
{{if .Experience}}
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
<div class="head"><span class="date">{{.Date}}</span><span class="role">{{.Role}}</span>{{if and .Role .Company}} @ {{end}}{{.Company}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Internships}}
<h2>Internships</h2>
{{range .Internships}}
<div class="entry">
<div class="head"><span class="date">{{.Date}}</span><span class="role">{{.Role}}</span>{{if and .Role .Company}} @ {{end}}{{.Company}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Projects}}
<h2>Projects</h2>
{{range .Projects}}
<div class="entry">
<div class="head"><span class="role">{{.Name}}</span>{{if .Link}} (<a href="{{.Link}}">{{.LinkLabel}}</a>){{end}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}
{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry"><div class="head"><span class="date">{{.Date}}</span><span class="role">{{.Degree}}</span>{{if and .Degree .Institution}}, {{end}}{{.Institution}}</div></div>
{{end}}
{{end}}
{{if .Skills}}<h2>Skills</h2><p>{{.SkillsLine}}</p>{{end}}
{{range .Custom}}
<h2>{{.Title}}</h2>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}
</body>
</html>
`
