package partner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no partner matches a lookup.
var ErrNotFound = errors.New("partner not found")

// Store wraps a pooled sqlx.DB connection to the partner ledger.
type Store struct {
	db *sqlx.DB
}

// Open constructs a Store backed by the SQLite database at the provided
// path. The schema is migrated on first use.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("partner store path required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve partner store path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", abs)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open partner store: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS partners (
	id TEXT PRIMARY KEY,
	company_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	contact_name TEXT NOT NULL,
	partner_type TEXT NOT NULL,
	billing_account_id TEXT NOT NULL DEFAULT '',
	onboarding_completed INTEGER NOT NULL DEFAULT 0,
	policies_total INTEGER NOT NULL DEFAULT 0,
	policies_monthly INTEGER NOT NULL DEFAULT 0,
	last_policy_at TIMESTAMP,
	total_revenue_cents INTEGER NOT NULL DEFAULT 0,
	monthly_revenue_cents INTEGER NOT NULL DEFAULT 0,
	pending_payout_cents INTEGER NOT NULL DEFAULT 0,
	last_payout_at TIMESTAMP,
	status TEXT NOT NULL DEFAULT 'pending',
	tier TEXT NOT NULL DEFAULT 'starter',
	revenue_share_percent INTEGER NOT NULL DEFAULT 20,
	api_key TEXT NOT NULL UNIQUE,
	api_secret TEXT NOT NULL,
	branding BLOB,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_partners_billing_account ON partners(billing_account_id);
`

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate partner schema: %w", err)
	}
	return nil
}

// Create inserts a new partner row.
func (s *Store) Create(ctx context.Context, p *Partner) error {
	if s == nil || s.db == nil {
		return errors.New("partner store not initialised")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.Tier == "" {
		p.Tier = TierStarter
	}
	if p.RevenueSharePercent == 0 {
		p.RevenueSharePercent = p.Tier.RevenueSharePercent()
	}
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO partners (
			id, company_name, email, contact_name, partner_type,
			billing_account_id, onboarding_completed,
			policies_total, policies_monthly, last_policy_at,
			total_revenue_cents, monthly_revenue_cents, pending_payout_cents, last_payout_at,
			status, tier, revenue_share_percent,
			api_key, api_secret, branding, created_at, updated_at
		) VALUES (
			:id, :company_name, :email, :contact_name, :partner_type,
			:billing_account_id, :onboarding_completed,
			:policies_total, :policies_monthly, :last_policy_at,
			:total_revenue_cents, :monthly_revenue_cents, :pending_payout_cents, :last_payout_at,
			:status, :tier, :revenue_share_percent,
			:api_key, :api_secret, :branding, :created_at, :updated_at
		)`, p)
	if err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// Update persists every mutable field of the partner row.
func (s *Store) Update(ctx context.Context, p *Partner) error {
	if s == nil || s.db == nil {
		return errors.New("partner store not initialised")
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	res, err := s.db.NamedExecContext(ctx, `
		UPDATE partners SET
			company_name = :company_name,
			email = :email,
			contact_name = :contact_name,
			partner_type = :partner_type,
			billing_account_id = :billing_account_id,
			onboarding_completed = :onboarding_completed,
			policies_total = :policies_total,
			policies_monthly = :policies_monthly,
			last_policy_at = :last_policy_at,
			total_revenue_cents = :total_revenue_cents,
			monthly_revenue_cents = :monthly_revenue_cents,
			pending_payout_cents = :pending_payout_cents,
			last_payout_at = :last_payout_at,
			status = :status,
			tier = :tier,
			revenue_share_percent = :revenue_share_percent,
			branding = :branding,
			updated_at = :updated_at
		WHERE id = :id`, p)
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID fetches one partner by identifier.
func (s *Store) GetByID(ctx context.Context, id string) (*Partner, error) {
	return s.getWhere(ctx, `id = ?`, id)
}

// GetByAPIKey resolves the partner owning an API key.
func (s *Store) GetByAPIKey(ctx context.Context, apiKey string) (*Partner, error) {
	return s.getWhere(ctx, `api_key = ?`, apiKey)
}

// GetByEmail fetches one partner by registered email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*Partner, error) {
	return s.getWhere(ctx, `email = ?`, email)
}

// GetByBillingAccount resolves the partner owning a billing account, used
// by webhook handling.
func (s *Store) GetByBillingAccount(ctx context.Context, accountID string) (*Partner, error) {
	return s.getWhere(ctx, `billing_account_id = ?`, accountID)
}

func (s *Store) getWhere(ctx context.Context, where string, arg any) (*Partner, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("partner store not initialised")
	}
	var p Partner
	err := s.db.GetContext(ctx, &p, `SELECT * FROM partners WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select partner: %w", err)
	}
	return &p, nil
}

// List returns all partners ordered by creation time.
func (s *Store) List(ctx context.Context) ([]Partner, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("partner store not initialised")
	}
	partners := []Partner{}
	if err := s.db.SelectContext(ctx, &partners, `SELECT * FROM partners ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("select partners: %w", err)
	}
	return partners, nil
}

// RecordGeneration credits one generated policy to a partner: counters,
// revenue share at the partner's current percentage, and a tier upgrade
// when the new monthly volume earns one. Returns the updated partner.
func (s *Store) RecordGeneration(ctx context.Context, partnerID string, grossCents int64) (*Partner, error) {
	p, err := s.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	share := grossCents * p.RevenueSharePercent / 100
	now := time.Now().UTC()

	p.PoliciesTotal++
	p.PoliciesMonthly++
	p.LastPolicyAt = &now
	p.TotalRevenueCents += share
	p.MonthlyRevenueCents += share
	p.PendingPayoutCents += share

	if earned := TierForMonthlyVolume(p.PoliciesMonthly); earned != p.Tier {
		p.Tier = earned
		p.RevenueSharePercent = earned.RevenueSharePercent()
	}

	if err := s.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyPayout debits a completed payout from the partner balance.
func (s *Store) ApplyPayout(ctx context.Context, partnerID string, amountCents int64) (*Partner, error) {
	p, err := s.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if amountCents <= 0 {
		return nil, errors.New("payout amount must be positive")
	}
	if amountCents > p.PendingPayoutCents {
		return nil, errors.New("payout exceeds pending balance")
	}
	now := time.Now().UTC()
	p.PendingPayoutCents -= amountCents
	p.LastPayoutAt = &now
	if err := s.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ResetMonthlyCounters zeroes the per-month usage columns. Run at the top
// of each billing month.
func (s *Store) ResetMonthlyCounters(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("partner store not initialised")
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE partners SET policies_monthly = 0, monthly_revenue_cents = 0`); err != nil {
		return fmt.Errorf("reset monthly counters: %w", err)
	}
	return nil
}
