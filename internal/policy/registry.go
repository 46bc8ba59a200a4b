package policy

import (
	"sort"
	"strings"
)

// The industry and state catalogs are process-wide static data. They are
// never mutated after init; lookups hand out deep copies so a caller can
// never poison a registry entry.

var industryCatalog = map[string]IndustryTemplate{
	"healthcare": {
		ComplianceFrameworks: []string{"HIPAA", "HITECH", "FDA 21 CFR Part 11"},
		DataSensitivity:      SensitivityCritical,
		SpecificSections: map[string]bool{
			"patient_data":       true,
			"clinical_decisions": true,
			"phi_handling":       true,
		},
		RiskLevel:      RiskCritical,
		AuditFrequency: AuditMonthly,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "monthly",
			AuditRetention:       "6 years",
		},
	},
	"finance": {
		ComplianceFrameworks: []string{"SOX", "FINRA", "GLBA", "PCI-DSS"},
		DataSensitivity:      SensitivityCritical,
		SpecificSections: map[string]bool{
			"trading_algorithms": true,
			"fraud_detection":    true,
			"credit_decisions":   true,
		},
		RiskLevel:      RiskCritical,
		AuditFrequency: AuditMonthly,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "monthly",
			AuditRetention:       "7 years",
		},
	},
	"education": {
		ComplianceFrameworks: []string{"FERPA", "COPPA"},
		DataSensitivity:      SensitivityHigh,
		SpecificSections: map[string]bool{
			"student_records":     true,
			"academic_integrity":  true,
			"minor_data_handling": true,
		},
		RiskLevel:      RiskHigh,
		AuditFrequency: AuditQuarterly,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "5 years",
		},
	},
	"retail": {
		ComplianceFrameworks: []string{"PCI-DSS", "CCPA", "GDPR"},
		DataSensitivity:      SensitivityMedium,
		SpecificSections: map[string]bool{
			"customer_analytics": true,
			"pricing_algorithms": true,
		},
		RiskLevel:      RiskMedium,
		AuditFrequency: AuditQuarterly,
		AICompliance: AICompliance{
			TransparencyLevel:    "medium",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "3 years",
		},
	},
	"manufacturing": {
		ComplianceFrameworks: []string{"ISO 9001", "ITAR", "OSHA"},
		DataSensitivity:      SensitivityMedium,
		SpecificSections: map[string]bool{
			"quality_control":  true,
			"safety_systems":   true,
			"supply_chain":     true,
		},
		RiskLevel:      RiskMedium,
		AuditFrequency: AuditQuarterly,
		AICompliance: AICompliance{
			TransparencyLevel:    "medium",
			BiasTestingFrequency: "semi-annual",
			AuditRetention:       "3 years",
		},
	},
	"technology": {
		ComplianceFrameworks: []string{"SOC 2", "GDPR", "CCPA"},
		DataSensitivity:      SensitivityHigh,
		SpecificSections: map[string]bool{
			"model_development": true,
			"data_pipelines":    true,
		},
		RiskLevel:      RiskMedium,
		AuditFrequency: AuditQuarterly,
		AICompliance: AICompliance{
			TransparencyLevel:    "medium",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "3 years",
		},
	},
	"legal": {
		ComplianceFrameworks: []string{"ABA Model Rules", "GDPR", "CCPA"},
		DataSensitivity:      SensitivityCritical,
		SpecificSections: map[string]bool{
			"client_confidentiality":    true,
			"attorney_client_privilege": true,
			"conflict_screening":        true,
		},
		RiskLevel:      RiskCritical,
		AuditFrequency: AuditMonthly,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "monthly",
			AuditRetention:       "7 years",
		},
	},
	"government": {
		ComplianceFrameworks: []string{"FedRAMP", "FISMA", "NIST AI RMF"},
		DataSensitivity:      SensitivityCritical,
		SpecificSections: map[string]bool{
			"public_records":        true,
			"citizen_services":      true,
			"procurement_decisions": true,
		},
		RiskLevel:      RiskCritical,
		AuditFrequency: AuditMonthly,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "monthly",
			AuditRetention:       "10 years",
		},
	},
	"insurance": {
		ComplianceFrameworks: []string{"NAIC Model Laws", "GLBA", "SOX"},
		DataSensitivity:      SensitivityHigh,
		SpecificSections: map[string]bool{
			"underwriting_models": true,
			"fraud_detection":     true,
			"claims_processing":   true,
		},
		RiskLevel:      RiskHigh,
		AuditFrequency: AuditQuarterly,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "6 years",
		},
	},
	"consulting": {
		ComplianceFrameworks: []string{"GDPR", "CCPA", "SOC 2"},
		DataSensitivity:      SensitivityHigh,
		SpecificSections: map[string]bool{
			"client_confidentiality": true,
			"deliverable_review":     true,
		},
		RiskLevel:      RiskMedium,
		AuditFrequency: AuditQuarterly,
		AICompliance: AICompliance{
			TransparencyLevel:    "medium",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "3 years",
		},
	},
	"real estate": {
		ComplianceFrameworks: []string{"Fair Housing Act", "RESPA", "CCPA"},
		DataSensitivity:      SensitivityMedium,
		SpecificSections: map[string]bool{
			"property_valuation":  true,
			"tenant_screening":    true,
		},
		RiskLevel:      RiskMedium,
		AuditFrequency: AuditSemiAnnual,
		AICompliance: AICompliance{
			TransparencyLevel:    "medium",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "3 years",
		},
	},
	"media": {
		ComplianceFrameworks: []string{"GDPR", "CCPA", "DMCA"},
		DataSensitivity:      SensitivityMedium,
		SpecificSections: map[string]bool{
			"content_generation": true,
			"source_attribution": true,
		},
		RiskLevel:      RiskMedium,
		AuditFrequency: AuditSemiAnnual,
		AICompliance: AICompliance{
			TransparencyLevel:    "high",
			BiasTestingFrequency: "semi-annual",
			AuditRetention:       "3 years",
		},
	},
}

var stateCatalog = map[string]StateCompliance{
	"CA": {
		Frameworks:      []string{"CCPA", "CPRA", "SB 1001 (Bot Disclosure)"},
		AISpecific:      []string{"Automated decision-making opt-out rights", "Bot interaction disclosure"},
		RetentionPeriod: "3 years",
	},
	"NY": {
		Frameworks:      []string{"SHIELD Act", "NYDFS 23 NYCRR 500"},
		AISpecific:      []string{"NYC Local Law 144 automated employment decision audits"},
		RetentionPeriod: "6 years",
	},
	"IL": {
		Frameworks:      []string{"BIPA", "PIPA"},
		AISpecific:      []string{"AI Video Interview Act notice and consent", "Biometric identifier consent"},
		RetentionPeriod: "3 years",
	},
	"CO": {
		Frameworks:      []string{"Colorado Privacy Act"},
		AISpecific:      []string{"SB 21-169 insurance algorithm fairness requirements", "Colorado AI Act high-risk system duties"},
		RetentionPeriod: "3 years",
	},
	"WA": {
		Frameworks:      []string{"My Health My Data Act", "WPA"},
		AISpecific:      []string{"Consumer health data AI processing limits"},
		RetentionPeriod: "3 years",
	},
	"TX": {
		Frameworks:      []string{"TDPSA"},
		AISpecific:      []string{"Data broker AI profiling registration"},
		RetentionPeriod: "3 years",
	},
	"VA": {
		Frameworks:      []string{"VCDPA"},
		AISpecific:      []string{"Profiling opt-out for decisions with legal effects"},
		RetentionPeriod: "3 years",
	},
	"CT": {
		Frameworks:      []string{"CTDPA"},
		AISpecific:      []string{"Automated profiling impact assessments"},
		RetentionPeriod: "3 years",
	},
	"UT": {
		Frameworks:      []string{"UCPA", "Utah AI Policy Act"},
		AISpecific:      []string{"Generative AI disclosure on request"},
		RetentionPeriod: "3 years",
	},
}

// DefaultIndustryTemplate is returned when an industry has no catalog entry.
// A lookup miss is the default-template path, never an error.
func DefaultIndustryTemplate() IndustryTemplate {
	return IndustryTemplate{
		ComplianceFrameworks: []string{"GDPR", "CCPA"},
		DataSensitivity:      SensitivityMedium,
		SpecificSections:     map[string]bool{},
		RiskLevel:            RiskMedium,
		AuditFrequency:       AuditSemiAnnual,
		AICompliance: AICompliance{
			TransparencyLevel:    "medium",
			BiasTestingFrequency: "quarterly",
			AuditRetention:       "3 years",
		},
	}
}

// DefaultStateCompliance is returned when a state has no catalog entry.
func DefaultStateCompliance() StateCompliance {
	return StateCompliance{
		Frameworks:      []string{"General State Privacy Laws"},
		AISpecific:      []string{"General AI disclosure requirements"},
		RetentionPeriod: "3 years",
	}
}

// LookupIndustry resolves an industry name case-insensitively against the
// catalog, falling back to the default template on a miss.
func LookupIndustry(name string) IndustryTemplate {
	key := strings.ToLower(strings.TrimSpace(name))
	if tpl, ok := industryCatalog[key]; ok {
		return tpl.Clone()
	}
	return DefaultIndustryTemplate()
}

// LookupState resolves a state code case-insensitively against the catalog,
// falling back to the default state compliance on a miss.
func LookupState(code string) StateCompliance {
	key := strings.ToUpper(strings.TrimSpace(code))
	if sc, ok := stateCatalog[key]; ok {
		return sc.Clone()
	}
	return DefaultStateCompliance()
}

// Industries lists the catalog keys, for diagnostics and the CLI.
func Industries() []string {
	out := make([]string, 0, len(industryCatalog))
	for k := range industryCatalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// States lists the state catalog keys.
func States() []string {
	out := make([]string, 0, len(stateCatalog))
	for k := range stateCatalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
