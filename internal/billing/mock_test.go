package billing

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockAccountLifecycle(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	acct, err := m.CreateConnectAccount(ctx, "ops@partner.example", "Partner LLC")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if !strings.HasPrefix(acct.ID, "acct_mock_") {
		t.Errorf("account id = %q", acct.ID)
	}
	if acct.PayoutsEnabled {
		t.Error("new account should not have payouts enabled")
	}

	link, err := m.CreateAccountLink(ctx, acct.ID, "https://app.example/refresh", "https://app.example/return")
	if err != nil {
		t.Fatalf("create link: %v", err)
	}
	if !strings.Contains(link.URL, acct.ID) {
		t.Errorf("link url = %q", link.URL)
	}

	if err := m.CompleteOnboarding(acct.ID); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	got, err := m.RetrieveAccount(ctx, acct.ID)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if !got.ChargesEnabled || !got.PayoutsEnabled {
		t.Errorf("onboarded account not enabled: %+v", got)
	}
}

func TestMockPayout(t *testing.T) {
	m := NewMock()
	ctx := context.Background()
	acct, _ := m.CreateConnectAccount(ctx, "ops@partner.example", "Partner LLC")

	if _, err := m.CreatePayout(ctx, acct.ID, 500, "monthly share"); err == nil {
		t.Error("payout before onboarding should fail")
	}
	if err := m.CompleteOnboarding(acct.ID); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	tr, err := m.CreatePayout(ctx, acct.ID, 500, "monthly share")
	if err != nil {
		t.Fatalf("payout: %v", err)
	}
	if tr.AmountCents != 500 || tr.Currency != "usd" {
		t.Errorf("transfer = %+v", tr)
	}
	if len(m.Transfers()) != 1 {
		t.Errorf("transfer not recorded")
	}
	if _, err := m.CreatePayout(ctx, "acct_missing", 100, ""); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("payout to unknown account: err = %v", err)
	}
}

func TestMockParseWebhook(t *testing.T) {
	m := NewMock()
	payload := []byte(`{"type":"account.updated","account_id":"acct_mock_0001","charges_enabled":true,"payouts_enabled":true}`)
	ev, err := m.ParseWebhook(payload, "sig_ignored")
	if err != nil {
		t.Fatalf("parse webhook: %v", err)
	}
	if ev.Type != EventAccountUpdated || ev.AccountID != "acct_mock_0001" || !ev.PayoutsEnabled {
		t.Errorf("event = %+v", ev)
	}
	if _, err := m.ParseWebhook([]byte(`{notjson`), ""); err == nil {
		t.Error("malformed payload should fail")
	}
	if _, err := m.ParseWebhook([]byte(`{}`), ""); err == nil {
		t.Error("payload without a type should fail")
	}
}
