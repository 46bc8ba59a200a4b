package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/compligenie/compligenie/internal/billing"
	"github.com/compligenie/compligenie/internal/common"
	outmail "github.com/compligenie/compligenie/internal/mail"
	"github.com/compligenie/compligenie/internal/metrics"
	"github.com/compligenie/compligenie/internal/partner"
)

func (s *Server) handlePartnerRegister(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateRegistration(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := s.store.GetByEmail(r.Context(), req.Email); err == nil {
		writeError(w, http.StatusConflict, fmt.Errorf("email already registered"))
		return
	} else if !errors.Is(err, partner.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	apiKey, apiSecret := partner.NewCredentials(req.PartnerType)
	p := &partner.Partner{
		ID:          partner.NewID(),
		CompanyName: strings.TrimSpace(req.CompanyName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		ContactName: strings.TrimSpace(req.ContactName),
		PartnerType: strings.ToLower(strings.TrimSpace(req.PartnerType)),
		APIKey:      apiKey,
		APISecret:   apiSecret,
	}
	acct, err := s.billing.CreateConnectAccount(r.Context(), p.Email, p.CompanyName)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Errorf("provision billing account: %w", err))
		return
	}
	p.BillingAccountID = acct.ID
	if err := s.store.Create(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	welcome := outmail.Welcome(p.ContactName, p.CompanyName)
	welcome.To = p.Email
	if err := s.mailer.Send(r.Context(), welcome); err != nil {
		logger.Warn("api: welcome mail failed", "partner", p.ID, "error", err)
	}
	creds := outmail.Credentials(p.ContactName, apiKey, apiSecret)
	creds.To = p.Email
	if err := s.mailer.Send(r.Context(), creds); err != nil {
		logger.Warn("api: credentials mail failed", "partner", p.ID, "error", err)
	}

	logger.Info("api: partner registered", "partner", p.ID, "type", p.PartnerType)
	writeJSON(w, http.StatusCreated, registerResponse{
		Partner:   p,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
}

func validateRegistration(req registerRequest) error {
	var problems []string
	if strings.TrimSpace(req.CompanyName) == "" {
		problems = append(problems, "company_name is required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		problems = append(problems, "email is invalid")
	}
	if strings.TrimSpace(req.ContactName) == "" {
		problems = append(problems, "contact_name is required")
	}
	switch strings.ToLower(strings.TrimSpace(req.PartnerType)) {
	case "legal", "hr", "insurance", "consulting":
	default:
		problems = append(problems, "partner_type must be one of legal, hr, insurance, consulting")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid registration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// handlePartnerOnboarding mints a single-use billing onboarding link.
func (s *Server) handlePartnerOnboarding(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetByID(r.Context(), chi.URLParam(r, "partnerID"))
	if errors.Is(err, partner.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if p.BillingAccountID == "" {
		writeError(w, http.StatusConflict, fmt.Errorf("partner has no billing account"))
		return
	}
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	link, err := s.billing.CreateAccountLink(r.Context(), p.BillingAccountID,
		base+"/partners/onboarding/refresh", base+"/partners/onboarding/complete")
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, onboardingResponse{URL: link.URL, ExpiresAt: link.ExpiresAt})
}

// handlePartnerMe returns the authenticated partner's own record.
func (s *Server) handlePartnerMe(w http.ResponseWriter, r *http.Request) {
	caller, err := s.partnerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if caller == nil {
		writeError(w, http.StatusUnauthorized, fmt.Errorf("api key required"))
		return
	}
	writeJSON(w, http.StatusOK, caller)
}

func (s *Server) handlePartnerEarnings(w http.ResponseWriter, r *http.Request) {
	p, err := s.authorizedPartner(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, partner.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, earningsResponse{
		PartnerID:           p.ID,
		Tier:                string(p.Tier),
		RevenueSharePercent: p.RevenueSharePercent,
		PoliciesTotal:       p.PoliciesTotal,
		PoliciesMonthly:     p.PoliciesMonthly,
		TotalRevenueCents:   p.TotalRevenueCents,
		MonthlyRevenueCents: p.MonthlyRevenueCents,
		PendingPayoutCents:  p.PendingPayoutCents,
	})
}

// handlePartnerPayout transfers pending revenue share to the partner's
// billing account.
func (s *Server) handlePartnerPayout(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	p, err := s.authorizedPartner(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, partner.ErrNotFound)
		return
	}
	var req payoutRequest
	if r.Body != nil {
		// An empty body means a full payout.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if !p.OnboardingCompleted {
		writeError(w, http.StatusConflict, fmt.Errorf("billing onboarding not completed"))
		return
	}
	amount := req.AmountCents
	if amount == 0 {
		amount = p.PendingPayoutCents
	}
	if amount <= 0 || amount > p.PendingPayoutCents {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid payout amount %d (pending %d)", amount, p.PendingPayoutCents))
		return
	}
	acct, err := s.billing.RetrieveAccount(r.Context(), p.BillingAccountID)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	if !acct.PayoutsEnabled {
		writeError(w, http.StatusConflict, fmt.Errorf("billing account cannot receive payouts yet"))
		return
	}
	transfer, err := s.billing.CreatePayout(r.Context(), p.BillingAccountID, amount, "revenue share payout")
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	updated, err := s.store.ApplyPayout(r.Context(), p.ID, amount)
	if err != nil {
		// The transfer went through; the ledger must be reconciled by hand.
		logger.Error("api: payout ledger update failed", "partner", p.ID, "transfer", transfer.ID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.PayoutCompleted(amount)
	logger.Info("api: payout completed", "partner", p.ID, "transfer", transfer.ID, "amount_cents", amount)
	writeJSON(w, http.StatusOK, payoutResponse{
		TransferID:         transfer.ID,
		AmountCents:        amount,
		PendingPayoutCents: updated.PendingPayoutCents,
	})
}

// authorizedPartner requires an API key matching the partnerID in the
// route.
func (s *Server) authorizedPartner(r *http.Request) (*partner.Partner, error) {
	caller, err := s.partnerFromRequest(r)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, fmt.Errorf("api key required")
	}
	if id := chi.URLParam(r, "partnerID"); id != "" && id != caller.ID {
		return nil, fmt.Errorf("api key does not match partner")
	}
	return caller, nil
}

// handleBillingWebhook processes provider callbacks. account.updated
// events activate partners whose onboarding finished.
func (s *Server) handleBillingWebhook(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	event, err := s.billing.ParseWebhook(payload, r.Header.Get("Billing-Signature"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if event.Type != billing.EventAccountUpdated {
		logger.Debug("api: ignoring billing event", "type", event.Type)
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}
	p, err := s.store.GetByBillingAccount(r.Context(), event.AccountID)
	if errors.Is(err, partner.ErrNotFound) {
		logger.Warn("api: billing event for unknown account", "account", event.AccountID)
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if event.PayoutsEnabled && !p.OnboardingCompleted {
		p.OnboardingCompleted = true
		p.Status = partner.StatusActive
		if err := s.store.Update(r.Context(), p); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		logger.Info("api: partner activated via billing webhook", "partner", p.ID)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
