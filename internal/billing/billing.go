// Package billing abstracts the payment provider used for partner
// onboarding and revenue-share payouts. The production deployment talks
// to a Stripe Connect style API; tests and local development use the
// in-memory Mock.
package billing

import (
	"context"
	"errors"
)

// Account is a connected payout account belonging to a partner.
type Account struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// AccountLink is a single-use onboarding URL for a connected account.
type AccountLink struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// Transfer is a completed revenue-share payout to a connected account.
type Transfer struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// WebhookEvent is the subset of provider webhook payloads the service
// reacts to.
type WebhookEvent struct {
	Type           string `json:"type"`
	AccountID      string `json:"account_id"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// EventAccountUpdated signals that a connected account changed state,
// typically completing onboarding.
const EventAccountUpdated = "account.updated"

// ErrUnknownAccount is returned for operations on account IDs the
// provider has never issued.
var ErrUnknownAccount = errors.New("billing: unknown account")

// Service is the payment-provider surface the rest of the service
// depends on.
type Service interface {
	// CreateConnectAccount provisions a payout account for a partner.
	CreateConnectAccount(ctx context.Context, email, companyName string) (*Account, error)
	// CreateAccountLink mints an onboarding URL for an existing account.
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error)
	// RetrieveAccount fetches the current state of a connected account.
	RetrieveAccount(ctx context.Context, accountID string) (*Account, error)
	// CreatePayout transfers accrued revenue share to a connected account.
	CreatePayout(ctx context.Context, accountID string, amountCents int64, description string) (*Transfer, error)
	// ParseWebhook validates and decodes a provider webhook payload.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
