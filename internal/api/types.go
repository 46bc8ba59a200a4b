package api

import (
	"github.com/compligenie/compligenie/internal/policy"
)

type generateRequest struct {
	policy.GenerationRequest
	// Format selects the download encoding: "html" (default) or "json".
	Format string `json:"format,omitempty"`
	// IncludeNarrative asks for an executive summary in document
	// responses. The server-wide narrative setting enables it for every
	// request.
	IncludeNarrative bool `json:"include_narrative,omitempty"`
}

type documentResponse struct {
	Document       *policy.PolicyDocument `json:"document"`
	EstimatedPages int                    `json:"estimated_pages"`
	Narrative      string                 `json:"narrative,omitempty"`
}

type previewResponse struct {
	Sections       []string `json:"sections"`
	EstimatedPages int      `json:"estimated_pages"`
}

type registerRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	ContactName string `json:"contact_name"`
	PartnerType string `json:"partner_type"`
}

type registerResponse struct {
	Partner   any    `json:"partner"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

type onboardingResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

type earningsResponse struct {
	PartnerID           string `json:"partner_id"`
	Tier                string `json:"tier"`
	RevenueSharePercent int64  `json:"revenue_share_percent"`
	PoliciesTotal       int    `json:"policies_total"`
	PoliciesMonthly     int    `json:"policies_monthly"`
	TotalRevenueCents   int64  `json:"total_revenue_cents"`
	MonthlyRevenueCents int64  `json:"monthly_revenue_cents"`
	PendingPayoutCents  int64  `json:"pending_payout_cents"`
}

type payoutRequest struct {
	// AmountCents of zero pays out the full pending balance.
	AmountCents int64 `json:"amount_cents"`
}

type payoutResponse struct {
	TransferID         string `json:"transfer_id"`
	AmountCents        int64  `json:"amount_cents"`
	PendingPayoutCents int64  `json:"pending_payout_cents"`
}
