package policy

import (
	"fmt"
	"sort"
)

// FieldKind declares the merge semantics for one template field. Merge
// behavior is a property of the declared kind, never of a runtime type
// inspection, so a customization whose value does not match the declared
// kind predictably takes the replace branch.
type FieldKind int

const (
	// ScalarField values are replaced outright by customizations.
	ScalarField FieldKind = iota
	// ListField values union with list customizations, deduplicated.
	ListField
	// MapField values shallow-merge map customizations one level deep.
	MapField
)

var templateFieldKinds = map[string]FieldKind{
	"complianceFrameworks": ListField,
	"dataSensitivity":      ScalarField,
	"specificSections":     MapField,
	"riskLevel":            ScalarField,
	"auditFrequency":       ScalarField,
	"aiCompliance":         MapField,
}

// EffectiveTemplate is the merged configuration driving section text
// generation for one document: an industry template overlaid with caller
// customizations, a state overlay, and the compliance-priority adjustment.
type EffectiveTemplate struct {
	fields map[string]any
}

// NewEffectiveTemplate lifts an industry template into merge form.
func NewEffectiveTemplate(base IndustryTemplate) *EffectiveTemplate {
	sections := make(map[string]any, len(base.SpecificSections))
	for k, v := range base.SpecificSections {
		sections[k] = v
	}
	return &EffectiveTemplate{fields: map[string]any{
		"complianceFrameworks": append([]string(nil), base.ComplianceFrameworks...),
		"dataSensitivity":      string(base.DataSensitivity),
		"specificSections":     sections,
		"riskLevel":            string(base.RiskLevel),
		"auditFrequency":       string(base.AuditFrequency),
		"aiCompliance": map[string]any{
			"transparencyLevel":    base.AICompliance.TransparencyLevel,
			"biasTestingFrequency": base.AICompliance.BiasTestingFrequency,
			"auditRetention":       base.AICompliance.AuditRetention,
		},
	}}
}

// Merge combines a base industry template with caller customizations. The
// base is never mutated; customization keys apply one at a time in sorted
// order so repeated merges are reproducible. Merging an empty customization
// map yields a template equal to the base.
func Merge(base IndustryTemplate, customizations map[string]any) *EffectiveTemplate {
	et := NewEffectiveTemplate(base)
	keys := make([]string, 0, len(customizations))
	for k := range customizations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		et.apply(key, customizations[key])
	}
	return et
}

func (et *EffectiveTemplate) apply(key string, value any) {
	kind, declared := templateFieldKinds[key]
	if !declared {
		// Key absent in the base template: added verbatim.
		et.fields[key] = deepCopyValue(value)
		return
	}
	switch kind {
	case ListField:
		if list, ok := toStringList(value); ok {
			existing, _ := toStringList(et.fields[key])
			et.fields[key] = unionStrings(existing, list)
			return
		}
		et.fields[key] = deepCopyValue(value)
	case MapField:
		if overlay, ok := toAnyMap(value); ok {
			existing, _ := toAnyMap(et.fields[key])
			merged := make(map[string]any, len(existing)+len(overlay))
			for k, v := range existing {
				merged[k] = v
			}
			for k, v := range overlay {
				merged[k] = deepCopyValue(v)
			}
			et.fields[key] = merged
			return
		}
		et.fields[key] = deepCopyValue(value)
	default:
		et.fields[key] = deepCopyValue(value)
	}
}

// SetStateCompliance overwrites the state overlay. Exactly one state applies
// per document, so this is last-write-wins rather than a union.
func (et *EffectiveTemplate) SetStateCompliance(sc StateCompliance) {
	et.fields["stateCompliance"] = sc.Clone()
}

// StateCompliance returns the state overlay, if one has been set.
func (et *EffectiveTemplate) StateCompliance() (StateCompliance, bool) {
	sc, ok := et.fields["stateCompliance"].(StateCompliance)
	return sc, ok
}

// ApplyPriority forces audit posture for the strict and flexible compliance
// priorities. It runs after the customization merge, so an explicit
// auditFrequency customization is overwritten when a non-balanced priority
// is requested.
func (et *EffectiveTemplate) ApplyPriority(priority string) {
	switch priority {
	case PriorityStrict:
		et.fields["auditFrequency"] = string(AuditMonthly)
		et.fields["riskLevel"] = string(RiskCritical)
		et.setAICompliance("biasTestingFrequency", string(AuditWeekly))
	case PriorityFlexible:
		et.fields["auditFrequency"] = string(AuditAnnual)
		et.setAICompliance("biasTestingFrequency", string(AuditAnnual))
	}
}

func (et *EffectiveTemplate) setAICompliance(key, value string) {
	ai, ok := toAnyMap(et.fields["aiCompliance"])
	if !ok {
		ai = map[string]any{}
	}
	ai[key] = value
	et.fields["aiCompliance"] = ai
}

// Frameworks returns the effective compliance frameworks, normalized to a
// string list even when a customization replaced the field with a scalar.
func (et *EffectiveTemplate) Frameworks() []string {
	if list, ok := toStringList(et.fields["complianceFrameworks"]); ok {
		return list
	}
	if et.fields["complianceFrameworks"] == nil {
		return nil
	}
	return []string{fmt.Sprint(et.fields["complianceFrameworks"])}
}

// AddFrameworks unions additional frameworks into the effective set.
func (et *EffectiveTemplate) AddFrameworks(frameworks []string) {
	if len(frameworks) == 0 {
		return
	}
	et.fields["complianceFrameworks"] = unionStrings(et.Frameworks(), frameworks)
}

// DataSensitivity returns the effective data sensitivity.
func (et *EffectiveTemplate) DataSensitivity() Sensitivity {
	return Sensitivity(stringField(et.fields["dataSensitivity"]))
}

// RiskLevel returns the effective risk level.
func (et *EffectiveTemplate) RiskLevel() RiskLevel {
	return RiskLevel(stringField(et.fields["riskLevel"]))
}

// AuditFrequency returns the effective audit cadence.
func (et *EffectiveTemplate) AuditFrequency() AuditFrequency {
	return AuditFrequency(stringField(et.fields["auditFrequency"]))
}

// SpecificSections returns the effective section toggles.
func (et *EffectiveTemplate) SpecificSections() map[string]bool {
	raw, ok := toAnyMap(et.fields["specificSections"])
	if !ok {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(raw))
	for k, v := range raw {
		if b, isBool := v.(bool); isBool {
			out[k] = b
			continue
		}
		out[k] = v != nil
	}
	return out
}

// AICompliance returns the effective AI sub-policy.
func (et *EffectiveTemplate) AICompliance() AICompliance {
	raw, ok := toAnyMap(et.fields["aiCompliance"])
	if !ok {
		return AICompliance{}
	}
	return AICompliance{
		TransparencyLevel:    stringField(raw["transparencyLevel"]),
		BiasTestingFrequency: stringField(raw["biasTestingFrequency"]),
		AuditRetention:       stringField(raw["auditRetention"]),
	}
}

// Field returns the raw value for a key, including customization keys that
// have no declared template field.
func (et *EffectiveTemplate) Field(key string) (any, bool) {
	v, ok := et.fields[key]
	return v, ok
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

func toStringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out, true
	default:
		return nil, false
	}
}

func toAnyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]bool:
		out := make(map[string]any, len(m))
		for k, b := range m {
			out[k] = b
		}
		return out, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func unionStrings(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, s := range base {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range extra {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
