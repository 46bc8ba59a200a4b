package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/compligenie/compligenie/internal/billing"
	"github.com/compligenie/compligenie/internal/llm"
	"github.com/compligenie/compligenie/internal/mail"
	"github.com/compligenie/compligenie/internal/partner"
)

type testEnv struct {
	server  *Server
	store   *partner.Store
	billing *billing.Mock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := partner.Open(filepath.Join(t.TempDir(), "partners.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	mock := billing.NewMock()
	srv, err := NewServer(store, mock, mail.LogSender{}, llm.NewLocalProvider(), Config{
		PublicBaseURL: "https://app.test",
		Narrative:     true,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return &testEnv{server: srv, store: store, billing: mock}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

// registerPartner drives the registration endpoint and returns the
// created partner plus its API key.
func (e *testEnv) registerPartner(t *testing.T) (partner.Partner, string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/partners/register", map[string]string{
		"company_name": "Smith & Jones LLP",
		"email":        "ops@smithjones.example",
		"contact_name": "Dana Smith",
		"partner_type": "legal",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Partner   partner.Partner `json:"partner"`
		APIKey    string          `json:"api_key"`
		APISecret string          `json:"api_secret"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.Partner, resp.APIKey
}

func TestHealthAndLogsEndpoints(t *testing.T) {
	env := newTestEnv(t)
	if rec := env.do(t, http.MethodGet, "/healthz", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d", rec.Code)
	}
	rec := env.do(t, http.MethodGet, "/v1/logs", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logs status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("logs payload: %v", err)
	}
	if _, ok := body["logs"]; !ok {
		t.Error("logs payload missing logs key")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/metrics", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/industries", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("industries status = %d", rec.Code)
	}
	var body struct {
		Industries []string `json:"industries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Industries) < 10 {
		t.Errorf("industry catalog unexpectedly small: %v", body.Industries)
	}

	rec = env.do(t, http.MethodGet, "/api/states", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("states status = %d", rec.Code)
	}
}

func TestNewServerRequiresStore(t *testing.T) {
	if _, err := NewServer(nil, billing.NewMock(), mail.LogSender{}, nil, Config{}); err == nil {
		t.Error("nil store should be rejected")
	}
}

// activatePartner completes billing onboarding for a registered partner
// through the webhook path, mirroring the production flow.
func (e *testEnv) activatePartner(t *testing.T, p partner.Partner) {
	t.Helper()
	if err := e.billing.CompleteOnboarding(p.BillingAccountID); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	payload := map[string]any{
		"type":            billing.EventAccountUpdated,
		"account_id":      p.BillingAccountID,
		"charges_enabled": true,
		"payouts_enabled": true,
	}
	rec := e.do(t, http.MethodPost, "/api/partners/webhooks/billing", payload, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("webhook status = %d: %s", rec.Code, rec.Body)
	}
	got, err := e.store.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("reload partner: %v", err)
	}
	if !got.OnboardingCompleted || got.Status != partner.StatusActive {
		t.Fatalf("partner not activated: %+v", got)
	}
}
