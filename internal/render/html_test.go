package render

import (
	"strings"
	"testing"

	"github.com/compligenie/compligenie/internal/policy"
)

func sampleDocument() *policy.PolicyDocument {
	return &policy.PolicyDocument{
		Title:         "Artificial Intelligence Usage Policy",
		CompanyName:   "Acme Corp",
		EffectiveDate: "March 14, 2025",
		Sections: []policy.PolicySection{
			{Title: "Purpose and Scope", Content: "First section body."},
			{
				Title:   "AI Tool-Specific Usage Guidelines",
				Content: "Second section body.",
				Subsections: []policy.PolicySubsection{
					{Title: "Text Generation Tools", Content: "Sub body."},
				},
			},
			{Title: "AI Transparency Requirements", Content: "Special body.", IsSpecialCategory: true},
		},
	}
}

func TestHTMLNumbersSections(t *testing.T) {
	out, err := NewHTML().Render(sampleDocument(), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<h2>1. Purpose and Scope</h2>",
		"<h2>2. AI Tool-Specific Usage Guidelines</h2>",
		"<h3>2.1 Text Generation Tools</h3>",
		"<h2>3. AI Transparency Requirements</h2>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(html, `class="special"`) {
		t.Error("special category section not marked")
	}
	if !strings.Contains(html, "Effective March 14, 2025") {
		t.Error("effective date missing from header")
	}
}

func TestHTMLAppliesBranding(t *testing.T) {
	b := &Branding{
		PrimaryColor: "#ff0000",
		LogoURL:      "https://cdn.partner.example/logo.png",
		CompanyName:  "Partner LLC",
		CompanyEmail: "hello@partner.example",
		FooterText:   "Confidential",
	}
	out, err := NewHTML().Render(sampleDocument(), b)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "#ff0000") {
		t.Error("primary color not applied")
	}
	if !strings.Contains(html, defaultSecondaryColor) {
		t.Error("unset secondary color should fall back to the default")
	}
	if !strings.Contains(html, "logo.png") || !strings.Contains(html, "Prepared by Partner LLC") {
		t.Error("branding header/footer missing")
	}
	if !strings.Contains(html, "Confidential") {
		t.Error("footer text missing")
	}
}

func TestHTMLEscapesContent(t *testing.T) {
	doc := sampleDocument()
	doc.Sections[0].Content = `<script>alert("x")</script>`
	out, err := NewHTML().Render(doc, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>alert") {
		t.Error("section content not escaped")
	}
}

func TestForFormatSelection(t *testing.T) {
	r, err := For("")
	if err != nil {
		t.Fatalf("default format: %v", err)
	}
	if r.FileExtension() != "html" {
		t.Errorf("default extension = %q", r.FileExtension())
	}
	j, err := For("JSON")
	if err != nil {
		t.Fatalf("json format: %v", err)
	}
	if j.ContentType() != "application/json" {
		t.Errorf("json content type = %q", j.ContentType())
	}
	if _, err := For("docx"); err == nil {
		t.Error("unsupported format should be rejected")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	out, err := JSON{}.Render(sampleDocument(), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `"title": "Artificial Intelligence Usage Policy"`) {
		t.Errorf("json output malformed: %s", out[:80])
	}
	if _, err := (JSON{}).Render(nil, nil); err == nil {
		t.Error("nil document should be rejected")
	}
}
