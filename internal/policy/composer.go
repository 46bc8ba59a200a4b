package policy

import (
	"strconv"
	"strings"
)

// TemplateType classifies a request for section specialization.
type TemplateType string

const (
	TemplateStandard        TemplateType = "standard"
	TemplateLegalFocus      TemplateType = "legal_focus"
	TemplateHRFocus         TemplateType = "hr_focus"
	TemplateInsuranceFocus  TemplateType = "insurance_focus"
	TemplateConsultingFocus TemplateType = "consulting_focus"
)

// specialCategoryTitles is the fixed set of AI-compliance sections that the
// renderer styles distinctly. Membership here is the single source of the
// IsSpecialCategory flag.
var specialCategoryTitles = map[string]struct{}{
	"AI Transparency Requirements": {},
	"AI Bias Prevention Measures":  {},
	"AI Audit Trail Requirements":  {},
}

// IsSpecialCategory reports whether a section title belongs to the fixed
// AI-compliance set.
func IsSpecialCategory(title string) bool {
	_, ok := specialCategoryTitles[title]
	return ok
}

// toolCategory is one entry of the central alias table driving
// tool-conditional subsections. Matching is a case-insensitive substring
// test of each alias against each supplied tool name.
type toolCategory struct {
	Key     string
	Title   string
	Aliases []string
}

var toolCategories = []toolCategory{
	{
		Key:     "text-generation",
		Title:   "Text Generation Tools",
		Aliases: []string{"chatgpt", "gpt-", "claude", "gemini", "bard", "jasper", "writer"},
	},
	{
		Key:     "code-generation",
		Title:   "Code Generation Tools",
		Aliases: []string{"copilot", "codewhisperer", "codeium", "cursor", "tabnine", "code llama", "replit"},
	},
	{
		Key:     "image-generation",
		Title:   "Image Generation Tools",
		Aliases: []string{"dall-e", "dalle", "midjourney", "stable diffusion", "firefly", "imagen"},
	},
}

func categoryMatches(cat toolCategory, tools []string) bool {
	for _, tool := range tools {
		lower := strings.ToLower(tool)
		for _, alias := range cat.Aliases {
			if strings.Contains(lower, alias) {
				return true
			}
		}
	}
	return false
}

// ClassifyTemplate buckets a request into a template type by keyword
// matching against the industry string and the effective template's section
// toggles. Checks run in a fixed order; the first match wins.
func ClassifyTemplate(industry string, specificSections map[string]bool) TemplateType {
	lower := strings.ToLower(industry)
	switch {
	case strings.Contains(lower, "legal") || strings.Contains(lower, "law") ||
		specificSections["attorney_client_privilege"]:
		return TemplateLegalFocus
	case strings.Contains(lower, "human resources") || strings.Contains(lower, "staffing") ||
		strings.Contains(lower, "recruit") || lower == "hr":
		return TemplateHRFocus
	case strings.Contains(lower, "insurance") ||
		(specificSections["fraud_detection"] && strings.Contains(lower, "financ")):
		return TemplateInsuranceFocus
	case strings.Contains(lower, "consult") || strings.Contains(lower, "advisory") ||
		specificSections["client_confidentiality"]:
		return TemplateConsultingFocus
	default:
		return TemplateStandard
	}
}

// ComposeInput carries the company facts handed to the composer.
type ComposeInput struct {
	CompanyName   string
	Industry      string
	State         string
	EmployeeCount int
	AITools       []string
}

// EnhancedOptions trigger the enhanced-mode positional insertions.
type EnhancedOptions struct {
	CompliancePriority string
	RiskTolerance      string
	IncludeBenchmarks  bool
}

func (o EnhancedOptions) active() bool {
	return o.CompliancePriority == PriorityStrict || o.RiskTolerance == ToleranceLow || o.IncludeBenchmarks
}

// Compose produces the ordered section sequence for one document: the fixed
// twelve-section curriculum plus at most one specialized section. It is a
// pure function of its inputs.
func Compose(in ComposeInput, tpl *EffectiveTemplate) []PolicySection {
	frameworks := tpl.Frameworks()
	ai := tpl.AICompliance()
	tt := ClassifyTemplate(in.Industry, tpl.SpecificSections())

	vars := map[string]string{
		"company":           in.CompanyName,
		"industry":          in.Industry,
		"state":             in.State,
		"employees":         strconv.Itoa(in.EmployeeCount),
		"tools":             toolsPhrase(in.AITools),
		"frameworks":        frameworksPhrase(frameworks),
		"auditFrequency":    string(tpl.AuditFrequency()),
		"riskLevel":         string(tpl.RiskLevel()),
		"sensitivity":       string(tpl.DataSensitivity()),
		"transparencyLevel": ai.TransparencyLevel,
		"biasFrequency":     ai.BiasTestingFrequency,
		"retention":         retentionWording(frameworks),
	}
	if phrase := emphasisText[tt]; phrase != "" {
		vars["emphasis"] = " " + phrase
	} else {
		vars["emphasis"] = ""
	}
	if sc, ok := tpl.StateCompliance(); ok {
		stateVars := map[string]string{
			"state":           in.State,
			"stateFrameworks": strings.Join(sc.Frameworks, ", "),
			"stateAISpecific": strings.Join(sc.AISpecific, "; "),
		}
		vars["stateRequirements"] = " " + expand(sectionText["compliance.state"], stateVars)
	} else {
		vars["stateRequirements"] = ""
	}

	text := func(key string) string { return expand(sectionText[key], vars) }

	usage := PolicySection{
		Title:   "AI Tool-Specific Usage Guidelines",
		Content: text("usage.body"),
	}
	for _, cat := range toolCategories {
		if categoryMatches(cat, in.AITools) {
			usage.Subsections = append(usage.Subsections, PolicySubsection{
				Title:   cat.Title,
				Content: text("usage." + cat.Key),
			})
		}
	}
	if len(usage.Subsections) == 0 {
		usage.Content += "\n\n" + text("usage.generic")
	}

	sections := []PolicySection{
		{
			Title:   "Purpose and Scope",
			Content: text("purpose.body"),
			Subsections: []PolicySubsection{
				{Title: "Policy Objectives", Content: text("purpose.objectives")},
				{Title: "Definitions", Content: text("purpose.definitions")},
			},
		},
		{
			Title:   "Approved AI Tools and Technologies",
			Content: text("tools.body"),
			Subsections: []PolicySubsection{
				{Title: "Tool-Specific Guidelines", Content: text("tools.guidelines")},
			},
		},
		usage,
		{
			Title:   "Data Security and Privacy",
			Content: text("security.body"),
			Subsections: []PolicySubsection{
				{Title: "Data Classification and Handling Procedures", Content: text("security.classification")},
				{Title: "Incident Response Procedures", Content: text("security.incidents")},
			},
		},
		{
			Title:   "Acceptable Use Guidelines",
			Content: text("acceptable.body"),
			Subsections: []PolicySubsection{
				{Title: "Quality Assurance and Review Requirements", Content: text("acceptable.quality")},
				{Title: "Ethical AI Usage Guidelines", Content: text("acceptable.ethics")},
			},
		},
		{
			Title:   "Compliance and Regulatory Requirements",
			Content: text("compliance.body"),
			Subsections: []PolicySubsection{
				{Title: "Regulatory Compliance Procedures", Content: text("compliance.procedures")},
				{Title: "Industry-Specific Requirements", Content: industrySpecificClauses(frameworks)},
			},
		},
		{
			Title:   "Intellectual Property and Attribution",
			Content: text("ip.body"),
			Subsections: []PolicySubsection{
				{Title: "IP Protection Procedures", Content: text("ip.protection")},
				{Title: "Third-Party IP Respect", Content: text("ip.thirdparty")},
			},
		},
		{
			Title:   "Monitoring and Enforcement",
			Content: text("monitoring.body"),
			Subsections: []PolicySubsection{
				{Title: "Monitoring Procedures and Employee Rights", Content: text("monitoring.procedures")},
				{Title: "Violation Response and Remediation", Content: text("monitoring.violations")},
			},
		},
		{
			Title:   "Training and Support",
			Content: text("training.body"),
			Subsections: []PolicySubsection{
				{Title: "Training Requirements and Certification", Content: text("training.certification")},
				{Title: "Support Resources and Escalation", Content: text("training.support")},
			},
		},
		{
			Title:   "AI Transparency Requirements",
			Content: text("transparency.body"),
			Subsections: []PolicySubsection{
				{Title: "General Transparency Principles", Content: text("transparency.general")},
				{Title: "Industry-Specific Transparency Requirements", Content: transparencyIndustryText[transparencyFamily(in.Industry)]},
			},
		},
		{
			Title:   "AI Bias Prevention Measures",
			Content: text("bias.body"),
			Subsections: []PolicySubsection{
				{Title: "Bias Detection and Mitigation Procedures", Content: text("bias.detection")},
				{Title: "Fair AI Implementation Standards", Content: text("bias.fairness")},
			},
		},
		{
			Title:   "AI Audit Trail Requirements",
			Content: text("audittrail.body"),
			Subsections: []PolicySubsection{
				{Title: "Detailed Logging Requirements", Content: text("audittrail.logging")},
				{Title: "Retention and Access Controls", Content: text("audittrail.retention")},
			},
		},
	}

	if specialized, ok := specializedSections[tt]; ok {
		sections = append(sections, specialized)
	}

	for i := range sections {
		sections[i].IsSpecialCategory = IsSpecialCategory(sections[i].Title)
	}
	return sections
}

// ComposeEnhanced runs the standard composer, then inserts the
// enhanced-mode sections at their fixed positions. Insertion order is part
// of the contract: with both the strict-priority and low-risk-tolerance
// triggers firing, the compliance framework lands at index 1 and risk
// mitigation at index 2.
func ComposeEnhanced(in ComposeInput, tpl *EffectiveTemplate, opts EnhancedOptions) []PolicySection {
	sections := Compose(in, tpl)
	if opts.CompliancePriority == PriorityStrict {
		sections = insertSection(sections, 1, enhancedSections["compliance_framework"])
	}
	if opts.RiskTolerance == ToleranceLow {
		sections = insertSection(sections, 2, enhancedSections["risk_mitigation"])
	}
	if opts.IncludeBenchmarks {
		benchmarks := enhancedSections["benchmarks"]
		benchmarks.Content = expand(benchmarks.Content, map[string]string{
			"company":        in.CompanyName,
			"industry":       in.Industry,
			"auditFrequency": string(tpl.AuditFrequency()),
		})
		sections = append(sections, benchmarks)
	}
	return sections
}

func insertSection(sections []PolicySection, index int, section PolicySection) []PolicySection {
	if index < 0 {
		index = 0
	}
	if index > len(sections) {
		index = len(sections)
	}
	section.IsSpecialCategory = IsSpecialCategory(section.Title)
	out := make([]PolicySection, 0, len(sections)+1)
	out = append(out, sections[:index]...)
	out = append(out, section)
	out = append(out, sections[index:]...)
	return out
}

// curriculumTitles is the fixed section order of the standard composition.
var curriculumTitles = []string{
	"Purpose and Scope",
	"Approved AI Tools and Technologies",
	"AI Tool-Specific Usage Guidelines",
	"Data Security and Privacy",
	"Acceptable Use Guidelines",
	"Compliance and Regulatory Requirements",
	"Intellectual Property and Attribution",
	"Monitoring and Enforcement",
	"Training and Support",
	"AI Transparency Requirements",
	"AI Bias Prevention Measures",
	"AI Audit Trail Requirements",
}

// PreviewSections returns the section titles a full composition would
// produce, plus tool-conditional extras, without generating any body text.
// Used for page-count estimation.
func PreviewSections(industry string, aiTools []string, tpl *EffectiveTemplate) []string {
	titles := append([]string(nil), curriculumTitles...)
	sectionToggles := tpl.SpecificSections()
	tt := ClassifyTemplate(industry, sectionToggles)
	if specialized, ok := specializedSections[tt]; ok {
		titles = append(titles, specialized.Title)
	} else if sectionToggles["client_confidentiality"] {
		titles = append(titles, specializedSections[TemplateConsultingFocus].Title)
	}
	for _, cat := range toolCategories {
		if cat.Key == "code-generation" && categoryMatches(cat, aiTools) {
			titles = append(titles, "Code Generation Best Practices")
		}
	}
	return titles
}

func toolsPhrase(tools []string) string {
	if len(tools) == 0 {
		return "AI tools"
	}
	return strings.Join(tools, ", ")
}

func frameworksPhrase(frameworks []string) string {
	if len(frameworks) == 0 {
		return "applicable data protection regulations"
	}
	return strings.Join(frameworks, ", ")
}
