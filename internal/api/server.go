package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/compligenie/compligenie/internal/billing"
	"github.com/compligenie/compligenie/internal/common"
	"github.com/compligenie/compligenie/internal/llm"
	"github.com/compligenie/compligenie/internal/mail"
	"github.com/compligenie/compligenie/internal/metrics"
	"github.com/compligenie/compligenie/internal/partner"
)

type Server struct {
	router   chi.Router
	store    *partner.Store
	billing  billing.Service
	mailer   mail.Sender
	provider llm.Provider
	cfg      Config
}

// Config controls server behavior that is not derivable from its
// collaborators.
type Config struct {
	// PublicBaseURL is the externally reachable base used to build
	// billing onboarding return links.
	PublicBaseURL string
	// WebhookSecret verifies billing webhook signatures.
	WebhookSecret string
	// Narrative attaches an LLM-written executive summary to document
	// responses.
	Narrative bool
}

// Merge overlays non-zero values from the override onto the base
// configuration.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.PublicBaseURL) != "" {
		result.PublicBaseURL = strings.TrimSpace(override.PublicBaseURL)
	}
	if strings.TrimSpace(override.WebhookSecret) != "" {
		result.WebhookSecret = strings.TrimSpace(override.WebhookSecret)
	}
	if override.Narrative {
		result.Narrative = true
	}
	return result
}

func NewServer(store *partner.Store, billingSvc billing.Service, mailer mail.Sender, provider llm.Provider, cfg Config) (*Server, error) {
	logger := common.Logger()
	if store == nil {
		return nil, fmt.Errorf("partner store required")
	}
	if billingSvc == nil {
		billingSvc = billing.NewMock()
		logger.Warn("api: no billing provider configured, using mock")
	}
	if mailer == nil {
		mailer = mail.LogSender{}
	}
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName, "narrative", cfg.Narrative)
	srv := &Server{
		router:   chi.NewRouter(),
		store:    store,
		billing:  billingSvc,
		mailer:   mailer,
		provider: provider,
		cfg:      cfg,
	}
	srv.routes()
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(metrics.Middleware)
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Get("/v1/logs", s.handleLogs)
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler())

	s.router.Route("/api/policies", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/generate/document", s.handleGenerateDocument)
		r.Post("/preview", s.handlePreview)
	})
	s.router.Get("/api/industries", s.handleIndustries)
	s.router.Get("/api/states", s.handleStates)

	s.router.Route("/api/partners", func(r chi.Router) {
		r.Post("/register", s.handlePartnerRegister)
		r.Get("/me", s.handlePartnerMe)
		r.Post("/{partnerID}/onboarding", s.handlePartnerOnboarding)
		r.Get("/{partnerID}/earnings", s.handlePartnerEarnings)
		r.Post("/{partnerID}/payout", s.handlePartnerPayout)
		r.Post("/webhooks/billing", s.handleBillingWebhook)
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"logs": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
