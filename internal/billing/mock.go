package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Mock is a deterministic in-memory Service used by tests and by local
// deployments that have no payment provider configured.
type Mock struct {
	mu        sync.Mutex
	seq       int
	accounts  map[string]*Account
	transfers []Transfer
}

// NewMock returns an empty mock provider.
func NewMock() *Mock {
	return &Mock{accounts: make(map[string]*Account)}
}

func (m *Mock) CreateConnectAccount(_ context.Context, email, companyName string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	acct := &Account{
		ID:    fmt.Sprintf("acct_mock_%04d", m.seq),
		Email: email,
	}
	m.accounts[acct.ID] = acct
	_ = companyName
	return cloneAccount(acct), nil
}

func (m *Mock) CreateAccountLink(_ context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[accountID]; !ok {
		return nil, ErrUnknownAccount
	}
	_ = refreshURL
	return &AccountLink{
		URL:       "https://billing.mock/onboard/" + accountID + "?return=" + returnURL,
		ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
	}, nil
}

func (m *Mock) RetrieveAccount(_ context.Context, accountID string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return cloneAccount(acct), nil
}

func (m *Mock) CreatePayout(_ context.Context, accountID string, amountCents int64, description string) (*Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrUnknownAccount
	}
	if !acct.PayoutsEnabled {
		return nil, fmt.Errorf("billing: payouts not enabled for %s", accountID)
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("billing: invalid payout amount %d", amountCents)
	}
	m.seq++
	tr := Transfer{
		ID:          fmt.Sprintf("tr_mock_%04d", m.seq),
		AccountID:   accountID,
		AmountCents: amountCents,
		Currency:    "usd",
		Description: description,
	}
	m.transfers = append(m.transfers, tr)
	return &tr, nil
}

// ParseWebhook decodes the payload as a WebhookEvent. The mock accepts
// any signature.
func (m *Mock) ParseWebhook(payload []byte, _ string) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("billing: decode webhook: %w", err)
	}
	if ev.Type == "" {
		return nil, fmt.Errorf("billing: webhook missing type")
	}
	return &ev, nil
}

// CompleteOnboarding flips an account to fully enabled, simulating the
// partner finishing the hosted onboarding flow.
func (m *Mock) CompleteOnboarding(accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.accounts[accountID]
	if !ok {
		return ErrUnknownAccount
	}
	acct.ChargesEnabled = true
	acct.PayoutsEnabled = true
	return nil
}

// Transfers returns a copy of every payout the mock has issued.
func (m *Mock) Transfers() []Transfer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Transfer, len(m.transfers))
	copy(out, m.transfers)
	return out
}

func cloneAccount(a *Account) *Account {
	cp := *a
	return &cp
}
