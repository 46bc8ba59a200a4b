package policy

import (
	"fmt"
	"strings"
)

// Sensitivity classifies how much regulated data an industry handles.
type Sensitivity string

const (
	SensitivityLow      Sensitivity = "low"
	SensitivityMedium   Sensitivity = "medium"
	SensitivityHigh     Sensitivity = "high"
	SensitivityCritical Sensitivity = "critical"
)

// RiskLevel expresses the compliance risk posture of a template.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// AuditFrequency expresses how often AI usage audits are required.
type AuditFrequency string

const (
	AuditWeekly     AuditFrequency = "weekly"
	AuditMonthly    AuditFrequency = "monthly"
	AuditQuarterly  AuditFrequency = "quarterly"
	AuditSemiAnnual AuditFrequency = "semi-annual"
	AuditAnnual     AuditFrequency = "annual"
)

// Compliance priorities accepted on generation requests.
const (
	PriorityBalanced = "balanced"
	PriorityStrict   = "strict"
	PriorityFlexible = "flexible"
)

// Risk tolerances accepted on generation requests.
const (
	ToleranceLow    = "low"
	ToleranceMedium = "medium"
	ToleranceHigh   = "high"
)

// AICompliance describes the AI-specific sub-policy of a template.
type AICompliance struct {
	TransparencyLevel    string `json:"transparencyLevel"`
	BiasTestingFrequency string `json:"biasTestingFrequency"`
	AuditRetention       string `json:"auditRetention"`
}

// IndustryTemplate is a registry entry describing the default compliance
// posture for one business sector. Entries are immutable; LookupIndustry
// returns a deep copy.
type IndustryTemplate struct {
	ComplianceFrameworks []string        `json:"complianceFrameworks"`
	DataSensitivity      Sensitivity     `json:"dataSensitivity"`
	SpecificSections     map[string]bool `json:"specificSections"`
	RiskLevel            RiskLevel       `json:"riskLevel"`
	AuditFrequency       AuditFrequency  `json:"auditFrequency"`
	AICompliance         AICompliance    `json:"aiCompliance"`
}

// Clone returns an independent copy of the template.
func (t IndustryTemplate) Clone() IndustryTemplate {
	out := t
	out.ComplianceFrameworks = append([]string(nil), t.ComplianceFrameworks...)
	if t.SpecificSections != nil {
		out.SpecificSections = make(map[string]bool, len(t.SpecificSections))
		for k, v := range t.SpecificSections {
			out.SpecificSections[k] = v
		}
	}
	return out
}

// StateCompliance is a registry entry describing jurisdiction-specific
// requirements layered onto a template.
type StateCompliance struct {
	Frameworks      []string `json:"frameworks"`
	AISpecific      []string `json:"aiSpecific"`
	RetentionPeriod string   `json:"retentionPeriod"`
}

// Clone returns an independent copy of the state overlay.
func (s StateCompliance) Clone() StateCompliance {
	out := s
	out.Frameworks = append([]string(nil), s.Frameworks...)
	out.AISpecific = append([]string(nil), s.AISpecific...)
	return out
}

// PolicySubsection is a titled block nested one level under a section.
type PolicySubsection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PolicySection is one numbered section of a generated policy document.
// IsSpecialCategory is true only for the three AI-compliance sections; the
// renderer applies distinct styling to them.
type PolicySection struct {
	Title             string             `json:"title"`
	Content           string             `json:"content"`
	Subsections       []PolicySubsection `json:"subsections,omitempty"`
	IsSpecialCategory bool               `json:"isSpecialCategory"`
}

// PolicyDocument is the fully assembled document handed to the renderer.
// Section order is meaningful: sections are numbered 1..N in rendering, so
// the composer's output order must be preserved exactly.
type PolicyDocument struct {
	Title                string          `json:"title"`
	CompanyName          string          `json:"companyName"`
	EffectiveDate        string          `json:"effectiveDate"`
	Industry             string          `json:"industry"`
	State                string          `json:"state"`
	AITools              []string        `json:"aiTools"`
	EmployeeCount        int             `json:"employeeCount"`
	ComplianceFrameworks []string        `json:"complianceFrameworks"`
	Sections             []PolicySection `json:"sections"`
}

// GenerationRequest carries the caller-supplied inputs for one document.
type GenerationRequest struct {
	CompanyName                string         `json:"company_name"`
	Industry                   string         `json:"industry"`
	State                      string         `json:"state"`
	EmployeeCount              int            `json:"employee_count"`
	AITools                    []string       `json:"ai_tools"`
	TemplateCustomizations     map[string]any `json:"template_customizations,omitempty"`
	CompliancePriority         string         `json:"compliance_priority,omitempty"`
	RiskTolerance              string         `json:"risk_tolerance,omitempty"`
	IncludeBenchmarks          bool           `json:"include_benchmarks,omitempty"`
	CustomComplianceFrameworks []string       `json:"custom_compliance_frameworks,omitempty"`
}

// Validate rejects malformed requests before composition begins. Unknown
// industries and states are not errors; they resolve to defaults.
func (r GenerationRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(r.CompanyName) == "" {
		problems = append(problems, "company_name is required")
	}
	if strings.TrimSpace(r.Industry) == "" {
		problems = append(problems, "industry is required")
	}
	if strings.TrimSpace(r.State) == "" {
		problems = append(problems, "state is required")
	}
	if r.EmployeeCount < 0 {
		problems = append(problems, "employee_count must not be negative")
	}
	switch r.CompliancePriority {
	case "", PriorityBalanced, PriorityStrict, PriorityFlexible:
	default:
		problems = append(problems, fmt.Sprintf("compliance_priority %q is not one of balanced, strict, flexible", r.CompliancePriority))
	}
	switch r.RiskTolerance {
	case "", ToleranceLow, ToleranceMedium, ToleranceHigh:
	default:
		problems = append(problems, fmt.Sprintf("risk_tolerance %q is not one of low, medium, high", r.RiskTolerance))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid generation request: %s", strings.Join(problems, "; "))
	}
	return nil
}
