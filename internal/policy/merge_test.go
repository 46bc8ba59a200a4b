package policy

import (
	"reflect"
	"testing"
)

func TestMergeEmptyCustomizationsIsIdempotent(t *testing.T) {
	base := LookupIndustry("healthcare")
	merged := Merge(base, nil)
	if !reflect.DeepEqual(merged, NewEffectiveTemplate(base)) {
		t.Fatal("merge with empty customizations should equal the base template")
	}
	again := Merge(base, map[string]any{})
	if !reflect.DeepEqual(again, NewEffectiveTemplate(base)) {
		t.Fatal("merge with empty map should equal the base template")
	}
}

func TestMergeListUnion(t *testing.T) {
	base := LookupIndustry("retail") // PCI-DSS, CCPA, GDPR
	merged := Merge(base, map[string]any{
		"complianceFrameworks": []string{"GDPR", "SOC 2"},
	})
	got := merged.Frameworks()
	want := []string{"PCI-DSS", "CCPA", "GDPR", "SOC 2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("frameworks union = %v, want %v", got, want)
	}
}

func TestMergeListUnionFromAnySlice(t *testing.T) {
	base := LookupIndustry("retail")
	merged := Merge(base, map[string]any{
		"complianceFrameworks": []any{"SOC 2", "CCPA"},
	})
	got := merged.Frameworks()
	want := []string{"PCI-DSS", "CCPA", "GDPR", "SOC 2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("frameworks union = %v, want %v", got, want)
	}
}

func TestMergeMapShallowMerge(t *testing.T) {
	base := LookupIndustry("healthcare")
	merged := Merge(base, map[string]any{
		"aiCompliance": map[string]any{"transparencyLevel": "maximum"},
		"specificSections": map[string]any{
			"patient_data":   false,
			"device_logging": true,
		},
	})
	ai := merged.AICompliance()
	if ai.TransparencyLevel != "maximum" {
		t.Errorf("transparencyLevel = %q, want maximum", ai.TransparencyLevel)
	}
	if ai.AuditRetention != "6 years" {
		t.Errorf("shallow merge dropped auditRetention: %q", ai.AuditRetention)
	}
	sections := merged.SpecificSections()
	if sections["patient_data"] {
		t.Error("customization should have overwritten patient_data to false")
	}
	if !sections["device_logging"] {
		t.Error("customization should have added device_logging")
	}
	if !sections["phi_handling"] {
		t.Error("shallow merge dropped base key phi_handling")
	}
}

func TestMergeScalarReplace(t *testing.T) {
	base := LookupIndustry("technology")
	merged := Merge(base, map[string]any{
		"auditFrequency": "weekly",
		"riskLevel":      "high",
	})
	if merged.AuditFrequency() != AuditWeekly {
		t.Errorf("auditFrequency = %q, want weekly", merged.AuditFrequency())
	}
	if merged.RiskLevel() != RiskHigh {
		t.Errorf("riskLevel = %q, want high", merged.RiskLevel())
	}
}

func TestMergeTypeMismatchTakesReplaceBranch(t *testing.T) {
	base := LookupIndustry("technology")
	merged := Merge(base, map[string]any{
		"complianceFrameworks": "ISO 42001",
	})
	got := merged.Frameworks()
	if !reflect.DeepEqual(got, []string{"ISO 42001"}) {
		t.Fatalf("scalar customization of a list field should replace outright, got %v", got)
	}
}

func TestMergeUnknownKeyAddedVerbatim(t *testing.T) {
	base := LookupIndustry("technology")
	merged := Merge(base, map[string]any{
		"reviewBoard": map[string]any{"chair": "CTO"},
	})
	raw, ok := merged.Field("reviewBoard")
	if !ok {
		t.Fatal("unknown customization key should be carried on the effective template")
	}
	board, _ := raw.(map[string]any)
	if board["chair"] != "CTO" {
		t.Errorf("unknown key value mangled: %#v", raw)
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := LookupIndustry("finance")
	before := base.Clone()
	merged := Merge(base, map[string]any{
		"complianceFrameworks": []string{"Basel III"},
		"specificSections":     map[string]any{"extra": true},
	})
	merged.AddFrameworks([]string{"MiFID II"})
	if !reflect.DeepEqual(base, before) {
		t.Fatalf("merge mutated the base template: %#v", base)
	}
}

func TestApplyPriorityStrict(t *testing.T) {
	base := LookupIndustry("retail") // quarterly / medium by default
	tpl := Merge(base, map[string]any{"auditFrequency": "annual"})
	tpl.ApplyPriority(PriorityStrict)
	if tpl.AuditFrequency() != AuditMonthly {
		t.Errorf("strict priority should force monthly audits, got %q", tpl.AuditFrequency())
	}
	if tpl.RiskLevel() != RiskCritical {
		t.Errorf("strict priority should force critical risk, got %q", tpl.RiskLevel())
	}
	if tpl.AICompliance().BiasTestingFrequency != "weekly" {
		t.Errorf("strict priority should force weekly bias testing, got %q", tpl.AICompliance().BiasTestingFrequency)
	}
}

func TestApplyPriorityFlexible(t *testing.T) {
	tpl := Merge(LookupIndustry("healthcare"), nil)
	tpl.ApplyPriority(PriorityFlexible)
	if tpl.AuditFrequency() != AuditAnnual {
		t.Errorf("flexible priority should force annual audits, got %q", tpl.AuditFrequency())
	}
	if tpl.AICompliance().BiasTestingFrequency != "annual" {
		t.Errorf("flexible priority should force annual bias testing, got %q", tpl.AICompliance().BiasTestingFrequency)
	}
}

func TestApplyPriorityBalancedLeavesValues(t *testing.T) {
	base := LookupIndustry("healthcare")
	tpl := Merge(base, nil)
	tpl.ApplyPriority(PriorityBalanced)
	if tpl.AuditFrequency() != base.AuditFrequency {
		t.Errorf("balanced priority changed audit frequency to %q", tpl.AuditFrequency())
	}
}

func TestStateOverlayLastWriteWins(t *testing.T) {
	tpl := Merge(LookupIndustry("technology"), nil)
	tpl.SetStateCompliance(LookupState("NY"))
	tpl.SetStateCompliance(LookupState("CA"))
	sc, ok := tpl.StateCompliance()
	if !ok {
		t.Fatal("state compliance not set")
	}
	if !containsString(sc.Frameworks, "CCPA") {
		t.Errorf("expected California overlay to win, got %v", sc.Frameworks)
	}
	if containsString(sc.Frameworks, "SHIELD Act") {
		t.Errorf("New York overlay should have been overwritten, got %v", sc.Frameworks)
	}
}
