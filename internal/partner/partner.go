package partner

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status tracks a partner through billing onboarding.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Tier sets the revenue share a partner earns per generated policy.
type Tier string

const (
	TierStarter    Tier = "starter"    // up to 50 policies/month
	TierGrowth     Tier = "growth"     // 51-200 policies/month
	TierEnterprise Tier = "enterprise" // 200+ policies/month
)

// BasePolicyPriceCents is the gross price of one generated policy.
const BasePolicyPriceCents int64 = 1000

// RevenueSharePercent returns the partner's cut for a tier.
func (t Tier) RevenueSharePercent() int64 {
	switch t {
	case TierGrowth:
		return 30
	case TierEnterprise:
		return 40
	default:
		return 20
	}
}

// TierForMonthlyVolume returns the tier earned by a monthly policy count.
func TierForMonthlyVolume(policies int) Tier {
	switch {
	case policies > 200:
		return TierEnterprise
	case policies > 50:
		return TierGrowth
	default:
		return TierStarter
	}
}

// Partner is one reseller account. Branding is stored as an opaque JSON
// record and passed through to the renderer untouched.
type Partner struct {
	ID          string `db:"id" json:"id"`
	CompanyName string `db:"company_name" json:"company_name"`
	Email       string `db:"email" json:"email"`
	ContactName string `db:"contact_name" json:"contact_name"`
	PartnerType string `db:"partner_type" json:"partner_type"` // legal, hr, insurance, consulting

	BillingAccountID    string `db:"billing_account_id" json:"billing_account_id,omitempty"`
	OnboardingCompleted bool   `db:"onboarding_completed" json:"onboarding_completed"`

	PoliciesTotal   int        `db:"policies_total" json:"policies_total"`
	PoliciesMonthly int        `db:"policies_monthly" json:"policies_monthly"`
	LastPolicyAt    *time.Time `db:"last_policy_at" json:"last_policy_at,omitempty"`

	TotalRevenueCents   int64      `db:"total_revenue_cents" json:"total_revenue_cents"`
	MonthlyRevenueCents int64      `db:"monthly_revenue_cents" json:"monthly_revenue_cents"`
	PendingPayoutCents  int64      `db:"pending_payout_cents" json:"pending_payout_cents"`
	LastPayoutAt        *time.Time `db:"last_payout_at" json:"last_payout_at,omitempty"`

	Status              Status `db:"status" json:"status"`
	Tier                Tier   `db:"tier" json:"tier"`
	RevenueSharePercent int64  `db:"revenue_share_percent" json:"revenue_share_percent"`

	APIKey    string `db:"api_key" json:"-"`
	APISecret string `db:"api_secret" json:"-"`

	Branding json.RawMessage `db:"branding" json:"branding,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// NewID mints a partner identifier.
func NewID() string {
	return "partner_" + uuid.NewString()
}

// NewCredentials mints an API key/secret pair. The key prefix encodes the
// partner type for easy identification in logs and support tickets.
func NewCredentials(partnerType string) (apiKey, apiSecret string) {
	prefix := strings.ToLower(strings.TrimSpace(partnerType))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		prefix = "gen"
	}
	return "pk_" + prefix + "_" + randomToken(16), "sk_" + randomToken(32)
}

func randomToken(bytes int) string {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure means the process cannot mint credentials at all.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
