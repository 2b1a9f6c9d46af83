package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"cryptofolio/internal/models"
	"cryptofolio/internal/repositories"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// portfolioService implements PortfolioServiceInterface
type portfolioService struct {
	credentialRepo repositories.CredentialRepositoryInterface
	balanceRepo    repositories.BalanceRepositoryInterface
	oracle         PriceOracle
	now            func() time.Time
	logger         *slog.Logger
}

func NewPortfolioService(
	credentialRepo repositories.CredentialRepositoryInterface,
	balanceRepo repositories.BalanceRepositoryInterface,
	oracle PriceOracle,
	logger *slog.Logger,
) PortfolioServiceInterface {
	return &portfolioService{
		credentialRepo: credentialRepo,
		balanceRepo:    balanceRepo,
		oracle:         oracle,
		now:            time.Now,
		logger:         logger,
	}
}

// GetBalances returns the non-zero rows of providers the user is currently
// connected to.
func (s *portfolioService) GetBalances(ctx context.Context, userID uuid.UUID) ([]*models.Balance, error) {
	credentials, err := s.credentialRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	providers := make([]models.Provider, 0, len(credentials))
	for _, credential := range credentials {
		providers = append(providers, credential.Provider)
	}

	balances, err := s.balanceRepo.ListByUserAndProviders(ctx, userID, providers)
	if err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}

	return slices.DeleteFunc(balances, func(b *models.Balance) bool {
		return b.Amount.IsZero()
	}), nil
}

// GetPortfolio aggregates the user's balances per currency and values them in
// USD. Prices the oracle cannot supply count as zero.
func (s *portfolioService) GetPortfolio(ctx context.Context, userID uuid.UUID) (*models.PortfolioSummary, error) {
	balances, err := s.GetBalances(ctx, userID)
	if err != nil {
		return nil, err
	}

	quotes := s.oracle.GetQuotes(ctx, Currencies(balances))
	aggregated := AggregateBalances(balances, quotes)

	total := decimal.Zero
	for _, item := range aggregated {
		total = total.Add(item.USDValue)
	}

	return &models.PortfolioSummary{
		Balances:        aggregated,
		TotalUSD:        total,
		TotalUSDDisplay: FormatUSD(total),
		GeneratedAt:     s.now().UTC(),
	}, nil
}

func (s *portfolioService) GetPrices(ctx context.Context, tickers []string) models.PriceQuotes {
	return s.oracle.GetQuotes(ctx, tickers)
}

// AggregateBalances sums rows per currency across providers. Zero rows and
// zero totals are dropped. The result is sorted by USD value descending, then
// by currency.
func AggregateBalances(balances []*models.Balance, quotes models.PriceQuotes) []models.AggregatedBalance {
	index := make(map[string]int)
	aggregated := make([]models.AggregatedBalance, 0)

	for _, balance := range balances {
		if balance.Amount.IsZero() {
			continue
		}

		i, ok := index[balance.Currency]
		if !ok {
			i = len(aggregated)
			index[balance.Currency] = i
			aggregated = append(aggregated, models.AggregatedBalance{
				Currency:    balance.Currency,
				Name:        quotes.Names[balance.Currency],
				TotalAmount: decimal.Zero,
				Providers:   []models.Provider{},
			})
		}

		item := &aggregated[i]
		item.TotalAmount = item.TotalAmount.Add(balance.Amount)
		if !slices.Contains(item.Providers, balance.Provider) {
			item.Providers = append(item.Providers, balance.Provider)
		}
	}

	aggregated = slices.DeleteFunc(aggregated, func(item models.AggregatedBalance) bool {
		return item.TotalAmount.IsZero()
	})

	for i := range aggregated {
		price := quotes.PriceOf(aggregated[i].Currency)
		aggregated[i].PriceUSD = price
		aggregated[i].USDValue = aggregated[i].TotalAmount.Mul(price)
	}

	sort.SliceStable(aggregated, func(i, j int) bool {
		if cmp := aggregated[i].USDValue.Cmp(aggregated[j].USDValue); cmp != 0 {
			return cmp > 0
		}
		return aggregated[i].Currency < aggregated[j].Currency
	})

	return aggregated
}

// Currencies returns the distinct tickers of balances in first-seen order.
func Currencies(balances []*models.Balance) []string {
	tickers := make([]string, 0, len(balances))
	for _, balance := range balances {
		if !slices.Contains(tickers, balance.Currency) {
			tickers = append(tickers, balance.Currency)
		}
	}
	return tickers
}

// FormatUSD renders an amount as a dollar string rounded to cents, e.g. "$1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
