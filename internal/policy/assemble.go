package policy

import (
	"fmt"
	"math"
	"time"
)

// DefaultTitle is used when the caller supplies no document title.
const DefaultTitle = "Artificial Intelligence Usage Policy"

// Clock supplies the current time for effective-date stamping. Tests pin it
// for byte-identical output; it is the only place wall-clock time enters
// document generation.
var Clock = time.Now

// Assemble wraps composed sections with document-level metadata. It never
// reorders sections. A zero-section input or a section with an empty title
// is a programming error in the composer and is rejected loudly rather than
// handed to a renderer that cannot recover from it.
func Assemble(in ComposeInput, frameworks []string, title string, sections []PolicySection) (*PolicyDocument, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("assemble: composer produced zero sections")
	}
	for i, s := range sections {
		if s.Title == "" {
			return nil, fmt.Errorf("assemble: section %d has an empty title", i+1)
		}
		for j, sub := range s.Subsections {
			if sub.Title == "" {
				return nil, fmt.Errorf("assemble: section %d subsection %d has an empty title", i+1, j+1)
			}
		}
	}
	if title == "" {
		title = DefaultTitle
	}
	return &PolicyDocument{
		Title:                title,
		CompanyName:          in.CompanyName,
		EffectiveDate:        Clock().Format("January 2, 2006"),
		Industry:             in.Industry,
		State:                in.State,
		AITools:              append([]string(nil), in.AITools...),
		EmployeeCount:        in.EmployeeCount,
		ComplianceFrameworks: append([]string(nil), frameworks...),
		Sections:             sections,
	}, nil
}

// EstimatePages approximates the rendered page count: fixed front and back
// matter, two pages per section, half a page per listed tool, and three
// extra pages for each specially rendered AI-compliance section.
func EstimatePages(sectionCount, toolCount, specialCount int) int {
	estimate := 5 + 2*float64(sectionCount) + 0.5*float64(toolCount) + 3*float64(specialCount)
	return int(math.Ceil(estimate))
}

// EstimateDocumentPages applies the page formula to an assembled document.
func EstimateDocumentPages(doc *PolicyDocument) int {
	special := 0
	for _, s := range doc.Sections {
		if s.IsSpecialCategory {
			special++
		}
	}
	return EstimatePages(len(doc.Sections), len(doc.AITools), special)
}

// Generate runs the full pipeline for one request: validate, resolve
// registry entries, merge customizations, apply the state overlay and
// compliance priority, compose, and assemble. It returns the document
// together with the effective template that drove it.
func Generate(req GenerationRequest) (*PolicyDocument, *EffectiveTemplate, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	base := LookupIndustry(req.Industry)
	tpl := Merge(base, req.TemplateCustomizations)
	tpl.AddFrameworks(req.CustomComplianceFrameworks)
	tpl.ApplyPriority(req.CompliancePriority)
	tpl.SetStateCompliance(LookupState(req.State))

	in := ComposeInput{
		CompanyName:   req.CompanyName,
		Industry:      req.Industry,
		State:         req.State,
		EmployeeCount: req.EmployeeCount,
		AITools:       req.AITools,
	}
	opts := EnhancedOptions{
		CompliancePriority: req.CompliancePriority,
		RiskTolerance:      req.RiskTolerance,
		IncludeBenchmarks:  req.IncludeBenchmarks,
	}
	var sections []PolicySection
	if opts.active() {
		sections = ComposeEnhanced(in, tpl, opts)
	} else {
		sections = Compose(in, tpl)
	}

	doc, err := Assemble(in, tpl.Frameworks(), DefaultTitle, sections)
	if err != nil {
		return nil, nil, err
	}
	return doc, tpl, nil
}

// Preview resolves the template pipeline far enough to return section
// titles and a page estimate without composing body text.
func Preview(req GenerationRequest) ([]string, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	base := LookupIndustry(req.Industry)
	tpl := Merge(base, req.TemplateCustomizations)
	tpl.AddFrameworks(req.CustomComplianceFrameworks)
	tpl.ApplyPriority(req.CompliancePriority)
	tpl.SetStateCompliance(LookupState(req.State))

	titles := PreviewSections(req.Industry, req.AITools, tpl)
	special := 0
	for _, t := range titles {
		if IsSpecialCategory(t) {
			special++
		}
	}
	return titles, EstimatePages(len(titles), len(req.AITools), special), nil
}
