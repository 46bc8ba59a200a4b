// Package render turns an assembled policy document into downloadable
// bytes. Renderers are selected by requested format; partner branding is
// applied where the output format supports it.
package render

import (
	"fmt"
	"strings"

	"github.com/compligenie/compligenie/internal/policy"
)

// Branding carries the white-label fields a partner may set. Zero values
// fall back to the stock look.
type Branding struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
	CompanyPhone   string `json:"company_phone,omitempty"`
	CompanyEmail   string `json:"company_email,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	FooterText     string `json:"footer_text,omitempty"`
}

// Renderer produces one output format.
type Renderer interface {
	Render(doc *policy.PolicyDocument, branding *Branding) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// For returns the renderer for a format name. Supported formats are
// "html" and "json"; empty defaults to HTML.
func For(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "html":
		return NewHTML(), nil
	case "json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}
