package render

import (
	"encoding/json"
	"fmt"

	"github.com/compligenie/compligenie/internal/policy"
)

// JSON renders the document as indented JSON. Branding does not apply to
// the JSON format.
type JSON struct{}

func (JSON) Render(doc *policy.PolicyDocument, _ *Branding) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: nil document")
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode document: %w", err)
	}
	return append(out, '\n'), nil
}

func (JSON) ContentType() string   { return "application/json" }
func (JSON) FileExtension() string { return "json" }
