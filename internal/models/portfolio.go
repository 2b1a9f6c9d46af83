package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatedBalance is one currency summed across every connected provider.
type AggregatedBalance struct {
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Providers   []Provider      `json:"exchanges"`
	PriceUSD    decimal.Decimal `json:"price_usd"`
	USDValue    decimal.Decimal `json:"usd_value"`
}

// PortfolioSummary is the priced, cross-provider view of a user's holdings.
type PortfolioSummary struct {
	Balances        []AggregatedBalance `json:"balances"`
	TotalUSD        decimal.Decimal     `json:"total_usd"`
	TotalUSDDisplay string              `json:"total_usd_display"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// PriceQuotes maps tickers to USD prices and display names. Tickers the
// oracle could not price are absent from Prices.
type PriceQuotes struct {
	Prices map[string]decimal.Decimal `json:"prices"`
	Names  map[string]string          `json:"names"`
}

func NewPriceQuotes() PriceQuotes {
	return PriceQuotes{
		Prices: make(map[string]decimal.Decimal),
		Names:  make(map[string]string),
	}
}

// PriceOf returns the USD price of a ticker, zero when unknown.
func (q PriceQuotes) PriceOf(currency string) decimal.Decimal {
	if price, ok := q.Prices[currency]; ok {
		return price
	}
	return decimal.Zero
}

// ProviderStatus describes one provider connection as reported to the user.
type ProviderStatus struct {
	Connected      bool       `json:"connected"`
	LinkedAt       *time.Time `json:"linked_at,omitempty"`
	SourceFilename string     `json:"source_filename,omitempty"`
	ImportedAt     *time.Time `json:"imported_at,omitempty"`
}

// ConnectionStatus has an entry for every supported provider.
type ConnectionStatus map[Provider]ProviderStatus
