package policy

import (
	"reflect"
	"testing"
)

func TestLookupIndustryKnown(t *testing.T) {
	tpl := LookupIndustry("Healthcare")
	if !containsString(tpl.ComplianceFrameworks, "HIPAA") {
		t.Fatalf("healthcare template missing HIPAA: %v", tpl.ComplianceFrameworks)
	}
	if tpl.RiskLevel != RiskCritical {
		t.Errorf("healthcare risk level = %q, want critical", tpl.RiskLevel)
	}
	if tpl.AICompliance.AuditRetention != "6 years" {
		t.Errorf("healthcare retention = %q, want 6 years", tpl.AICompliance.AuditRetention)
	}
}

func TestLookupIndustryMissReturnsDefault(t *testing.T) {
	tpl := LookupIndustry("nonexistent-xyz")
	want := DefaultIndustryTemplate()
	if !reflect.DeepEqual(tpl, want) {
		t.Fatalf("default template mismatch: got %#v want %#v", tpl, want)
	}
	if !reflect.DeepEqual(tpl.ComplianceFrameworks, []string{"GDPR", "CCPA"}) {
		t.Errorf("default frameworks = %v, want [GDPR CCPA]", tpl.ComplianceFrameworks)
	}
	if tpl.AuditFrequency != AuditSemiAnnual {
		t.Errorf("default audit frequency = %q, want semi-annual", tpl.AuditFrequency)
	}
}

func TestLookupStateMissReturnsDefault(t *testing.T) {
	sc := LookupState("ZZ")
	want := DefaultStateCompliance()
	if !reflect.DeepEqual(sc, want) {
		t.Fatalf("default state compliance mismatch: got %#v want %#v", sc, want)
	}
	if !reflect.DeepEqual(sc.Frameworks, []string{"General State Privacy Laws"}) {
		t.Errorf("default state frameworks = %v", sc.Frameworks)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	if !reflect.DeepEqual(LookupIndustry("LEGAL"), LookupIndustry("legal")) {
		t.Error("industry lookup should ignore case")
	}
	if !reflect.DeepEqual(LookupState("ca"), LookupState("CA")) {
		t.Error("state lookup should ignore case")
	}
	if reflect.DeepEqual(LookupState("ca"), DefaultStateCompliance()) {
		t.Error("lowercase ca should resolve to the California entry, not the default")
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	first := LookupIndustry("finance")
	first.ComplianceFrameworks[0] = "mutated"
	first.SpecificSections["injected"] = true

	second := LookupIndustry("finance")
	if second.ComplianceFrameworks[0] == "mutated" {
		t.Error("mutating a lookup result leaked into the registry frameworks")
	}
	if second.SpecificSections["injected"] {
		t.Error("mutating a lookup result leaked into the registry sections")
	}

	state := LookupState("CA")
	state.Frameworks[0] = "mutated"
	if LookupState("CA").Frameworks[0] == "mutated" {
		t.Error("mutating a state lookup result leaked into the registry")
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
