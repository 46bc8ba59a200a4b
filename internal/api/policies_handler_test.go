package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/compligenie/compligenie/internal/policy"
)

func validGeneratePayload() map[string]any {
	return map[string]any{
		"company_name":   "Acme Corp",
		"industry":       "technology",
		"state":          "CA",
		"employee_count": 50,
		"ai_tools":       []string{"ChatGPT", "GitHub Copilot"},
	}
}

func TestGenerateDownloadsHTML(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/policies/generate", validGeneratePayload(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "ai-policy-acme-corp.html") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "Acme Corp") {
		t.Error("rendered document missing company name")
	}
}

func TestGenerateJSONFormat(t *testing.T) {
	env := newTestEnv(t)
	payload := validGeneratePayload()
	payload["format"] = "json"
	rec := env.do(t, http.MethodPost, "/api/policies/generate", payload, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body)
	}
	var doc policy.PolicyDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if len(doc.Sections) != 12 {
		t.Errorf("document has %d sections, want 12", len(doc.Sections))
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	payload := validGeneratePayload()
	payload["format"] = "docx"
	if rec := env.do(t, http.MethodPost, "/api/policies/generate", payload, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("unsupported format status = %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/api/policies/generate", map[string]any{"industry": "technology"}, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid request status = %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/api/policies/generate", validGeneratePayload(), map[string]string{"X-API-Key": "pk_bogus"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("bogus api key status = %d", rec.Code)
	}
}

func TestGenerateCreditsPartnerAndAppliesBranding(t *testing.T) {
	env := newTestEnv(t)
	p, apiKey := env.registerPartner(t)

	stored, err := env.store.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("load partner: %v", err)
	}
	stored.Branding = json.RawMessage(`{"primary_color":"#bada55","company_name":"Smith & Jones LLP","footer_text":"Prepared for clients"}`)
	if err := env.store.Update(context.Background(), stored); err != nil {
		t.Fatalf("set branding: %v", err)
	}

	rec := env.do(t, http.MethodPost, "/api/policies/generate", validGeneratePayload(), map[string]string{"X-API-Key": apiKey})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "#bada55") {
		t.Error("partner branding color not applied")
	}

	credited, err := env.store.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("reload partner: %v", err)
	}
	if credited.PoliciesTotal != 1 {
		t.Errorf("policies_total = %d, want 1", credited.PoliciesTotal)
	}
	// Starter tier keeps 20% of $10.00.
	if credited.PendingPayoutCents != 200 {
		t.Errorf("pending payout = %d, want 200", credited.PendingPayoutCents)
	}
}

func TestGenerateDocumentReturnsJSONWithNarrative(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/policies/generate/document", validGeneratePayload(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp documentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Document == nil || len(resp.Document.Sections) != 12 {
		t.Fatalf("document shape wrong: %+v", resp.Document)
	}
	if resp.EstimatedPages == 0 {
		t.Error("estimated pages missing")
	}
	// The test provider is the deterministic local one.
	if !strings.HasPrefix(resp.Narrative, "[local] ") {
		t.Errorf("narrative = %q", resp.Narrative)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/policies/preview", validGeneratePayload(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp previewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Sections) == 0 || resp.Sections[0] != "Purpose and Scope" {
		t.Errorf("preview sections = %v", resp.Sections)
	}
	if resp.EstimatedPages == 0 {
		t.Error("estimated pages missing")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":          "acme-corp",
		"Smith & Jones LLP":  "smith-jones-llp",
		"  ":                 "policy",
		"Déjà Vu Consulting": "d-j-vu-consulting",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
