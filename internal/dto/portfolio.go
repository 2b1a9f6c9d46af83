package dto

import (
	"cryptofolio/internal/models"

	"github.com/shopspring/decimal"
)

// Portfolio Request DTOs

// PricesRequest represents the request payload for a price lookup
type PricesRequest struct {
	Currencies []string `json:"currencies" validate:"required,min=1,max=200,dive,ticker"`
}

// Portfolio Response DTOs

// BalancesResponse lists the stored, non-zero balances of connected providers
type BalancesResponse struct {
	Balances []*models.Balance `json:"balances"`
	Count    int               `json:"count"`
}

// PriceEntry is one priced ticker
type PriceEntry struct {
	Name     string          `json:"name"`
	PriceUSD decimal.Decimal `json:"price_usd"`
}

// PricesResponse maps tickers to prices. Unknown tickers are listed separately.
type PricesResponse struct {
	Prices  map[string]PriceEntry `json:"prices"`
	Unknown []string              `json:"unknown,omitempty"`
}

// NewPricesResponse keeps the caller's ticker order for the unknown list.
func NewPricesResponse(tickers []string, quotes models.PriceQuotes) PricesResponse {
	resp := PricesResponse{Prices: make(map[string]PriceEntry, len(quotes.Prices))}
	for _, ticker := range tickers {
		price, ok := quotes.Prices[ticker]
		if !ok {
			resp.Unknown = append(resp.Unknown, ticker)
			continue
		}
		resp.Prices[ticker] = PriceEntry{Name: quotes.Names[ticker], PriceUSD: price}
	}
	return resp
}

// AccountDeletedResponse confirms that all connections and balances were purged
type AccountDeletedResponse struct {
	Message string `json:"message"`
}
