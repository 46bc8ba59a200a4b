package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/compligenie/compligenie/internal/policy"
)

// HTML renders the document as a single self-contained page suitable for
// printing to PDF. Partner branding controls colors, the header logo and
// the footer line.
type HTML struct {
	tmpl *template.Template
}

// NewHTML parses the document template once and reuses it per render.
func NewHTML() *HTML {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	return &HTML{tmpl: template.Must(template.New("policy").Funcs(funcs).Parse(documentHTML))}
}

type htmlData struct {
	Doc      *policy.PolicyDocument
	Branding Branding
}

const (
	defaultPrimaryColor   = "#1a365d"
	defaultSecondaryColor = "#2c5282"
)

func (h *HTML) Render(doc *policy.PolicyDocument, branding *Branding) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: nil document")
	}
	data := htmlData{Doc: doc}
	if branding != nil {
		data.Branding = *branding
	}
	if data.Branding.PrimaryColor == "" {
		data.Branding.PrimaryColor = defaultPrimaryColor
	}
	if data.Branding.SecondaryColor == "" {
		data.Branding.SecondaryColor = defaultSecondaryColor
	}
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func (*HTML) ContentType() string   { return "text/html; charset=utf-8" }
func (*HTML) FileExtension() string { return "html" }

const documentHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.Title}}</title>
<style>
  body { font-family: Georgia, serif; margin: 3em auto; max-width: 52em; color: #1a1a1a; line-height: 1.5; }
  header { border-bottom: 3px solid {{.Branding.PrimaryColor}}; padding-bottom: 1em; margin-bottom: 2em; }
  header img { max-height: 60px; }
  h1 { color: {{.Branding.PrimaryColor}}; margin-bottom: 0.2em; }
  h2 { color: {{.Branding.SecondaryColor}}; margin-top: 1.6em; }
  h3 { color: {{.Branding.SecondaryColor}}; }
  .meta { color: #555; font-size: 0.9em; }
  .special { border-left: 4px solid {{.Branding.PrimaryColor}}; padding-left: 1em; }
  section p { white-space: pre-line; }
  footer { border-top: 1px solid #ccc; margin-top: 3em; padding-top: 1em; color: #777; font-size: 0.85em; }
</style>
</head>
<body>
<header>
{{- if .Branding.LogoURL}}
  <img src="{{.Branding.LogoURL}}" alt="{{.Branding.CompanyName}}">
{{- end}}
  <h1>{{.Doc.Title}}</h1>
  <p class="meta">{{.Doc.CompanyName}} &middot; Effective {{.Doc.EffectiveDate}}</p>
</header>
{{- range $i, $s := .Doc.Sections}}
<section{{if $s.IsSpecialCategory}} class="special"{{end}}>
  <h2>{{add $i 1}}. {{$s.Title}}</h2>
  <p>{{$s.Content}}</p>
{{- range $j, $sub := $s.Subsections}}
  <h3>{{add $i 1}}.{{add $j 1}} {{$sub.Title}}</h3>
  <p>{{$sub.Content}}</p>
{{- end}}
</section>
{{- end}}
<footer>
{{- if .Branding.FooterText}}
  <p>{{.Branding.FooterText}}</p>
{{- end}}
{{- if .Branding.CompanyName}}
  <p>Prepared by {{.Branding.CompanyName}}{{if .Branding.CompanyEmail}} &middot; {{.Branding.CompanyEmail}}{{end}}{{if .Branding.CompanyPhone}} &middot; {{.Branding.CompanyPhone}}{{end}}</p>
{{- end}}
{{- if .Branding.CompanyWebsite}}
  <p>{{.Branding.CompanyWebsite}}</p>
{{- end}}
</footer>
</body>
</html>
`
