package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/compligenie/compligenie/internal/common"
	"github.com/compligenie/compligenie/internal/llm"
	"github.com/compligenie/compligenie/internal/metrics"
	"github.com/compligenie/compligenie/internal/partner"
	"github.com/compligenie/compligenie/internal/policy"
	"github.com/compligenie/compligenie/internal/render"
)

// handleGenerate produces a downloadable document in the requested
// format. Partner callers authenticate with X-API-Key and get their
// branding applied plus a revenue-share credit.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	renderer, err := render.For(req.Format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := s.partnerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}

	doc, _, err := policy.Generate(req.GenerationRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	branding := brandingFor(caller)
	out, err := renderer.Render(doc, branding)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.PolicyGenerated(strings.ToLower(req.Industry))
	s.creditPartner(r, caller)
	logger.Info("api: policy generated",
		"industry", req.Industry, "state", req.State,
		"sections", len(doc.Sections), "format", renderer.FileExtension())

	filename := fmt.Sprintf("ai-policy-%s.%s", slugify(req.CompanyName), renderer.FileExtension())
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleGenerateDocument returns the assembled document as JSON along
// with a page estimate and, when enabled, a narrative summary.
func (s *Server) handleGenerateDocument(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	caller, err := s.partnerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	doc, _, err := policy.Generate(req.GenerationRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp := documentResponse{
		Document:       doc,
		EstimatedPages: policy.EstimateDocumentPages(doc),
	}
	if (s.cfg.Narrative || req.IncludeNarrative) && s.provider != nil {
		titles := make([]string, 0, len(doc.Sections))
		for _, sec := range doc.Sections {
			titles = append(titles, sec.Title)
		}
		narrative, err := s.provider.Chat(r.Context(), llm.NarrativePrompt(doc.CompanyName, doc.Industry, titles))
		if err != nil {
			logger.Warn("api: narrative generation failed, omitting", "error", err)
		} else {
			resp.Narrative = narrative
		}
	}
	metrics.PolicyGenerated(strings.ToLower(req.Industry))
	s.creditPartner(r, caller)
	writeJSON(w, http.StatusOK, resp)
}

// handlePreview returns section titles and a page estimate without
// assembling the document.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	titles, pages, err := policy.Preview(req.GenerationRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{Sections: titles, EstimatedPages: pages})
}

func (s *Server) handleIndustries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"industries": policy.Industries()})
}

func (s *Server) handleStates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"states": policy.States()})
}

// partnerFromRequest resolves the optional X-API-Key header. A missing
// header means an anonymous caller; an unknown key is rejected.
func (s *Server) partnerFromRequest(r *http.Request) (*partner.Partner, error) {
	key := strings.TrimSpace(r.Header.Get("X-API-Key"))
	if key == "" {
		return nil, nil
	}
	p, err := s.store.GetByAPIKey(r.Context(), key)
	if errors.Is(err, partner.ErrNotFound) {
		return nil, fmt.Errorf("invalid api key")
	}
	if err != nil {
		return nil, err
	}
	if p.Status == partner.StatusSuspended {
		return nil, fmt.Errorf("partner account suspended")
	}
	return p, nil
}

func (s *Server) creditPartner(r *http.Request, caller *partner.Partner) {
	if caller == nil {
		return
	}
	if _, err := s.store.RecordGeneration(r.Context(), caller.ID, partner.BasePolicyPriceCents); err != nil {
		common.Logger().Error("api: recording partner generation failed", "partner", caller.ID, "error", err)
	}
}

func brandingFor(caller *partner.Partner) *render.Branding {
	if caller == nil || len(caller.Branding) == 0 {
		return nil
	}
	var b render.Branding
	if err := json.Unmarshal(caller.Branding, &b); err != nil {
		common.Logger().Warn("api: partner branding unreadable, ignoring", "partner", caller.ID, "error", err)
		return nil
	}
	return &b
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "policy"
	}
	return slug
}
