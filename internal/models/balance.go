package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Holding is a single (currency, amount) pair as reported by a provider.
type Holding struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// Balance is the latest fetched total of one currency at one provider.
type Balance struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_balances_user_provider_currency" json:"user_id"`
	Provider  Provider        `gorm:"type:varchar(32);not null;uniqueIndex:idx_balances_user_provider_currency" json:"provider"`
	Currency  string          `gorm:"type:varchar(32);not null;uniqueIndex:idx_balances_user_provider_currency" json:"currency"`
	Amount    decimal.Decimal `gorm:"type:decimal(38,18);not null;default:0" json:"amount"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Balance) TableName() string {
	return "balances"
}

func (b *Balance) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// MergeHoldings sums holdings that share a currency, keeping first-seen order.
// A provider may report several wallets for one currency; the stored row is their total.
func MergeHoldings(holdings []Holding) []Holding {
	index := make(map[string]int, len(holdings))
	merged := make([]Holding, 0, len(holdings))

	for _, h := range holdings {
		if i, ok := index[h.Currency]; ok {
			merged[i].Amount = merged[i].Amount.Add(h.Amount)
			continue
		}
		index[h.Currency] = len(merged)
		merged = append(merged, h)
	}

	return merged
}

// NewBalances stamps provider holdings as Balance rows for a user.
func NewBalances(userID uuid.UUID, provider Provider, holdings []Holding, now time.Time) []*Balance {
	rows := make([]*Balance, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, &Balance{
			UserID:    userID,
			Provider:  provider,
			Currency:  h.Currency,
			Amount:    h.Amount,
			UpdatedAt: now,
		})
	}
	return rows
}
