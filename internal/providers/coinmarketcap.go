package providers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strings"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/gregjones/httpcache"
	"github.com/shopspring/decimal"
)

var _ services.PriceOracle = (*CoinMarketCapOracle)(nil)

const (
	coinMarketCapQuotesPath = "/v1/cryptocurrency/quotes/latest"
	usdTicker               = "USD"
)

// tickerRebrands maps tickers still reported by exchanges to the symbol the
// quote API lists them under.
var tickerRebrands = map[string]string{
	"MATIC": "POL",
}

type coinMarketCapResponse struct {
	Data map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Quote  map[string]struct {
			Price *decimal.Decimal `json:"price"`
		} `json:"quote"`
	} `json:"data"`
}

// CoinMarketCapOracle quotes USD prices. Responses go through an in-memory
// HTTP cache and calls are skipped while the circuit breaker is open.
type CoinMarketCapOracle struct {
	config  *config.PricesConfig
	api     *apiClient
	breaker services.CircuitBreakerInterface
	metrics services.MetricsRecorderInterface
	logger  *slog.Logger
}

// NewCoinMarketCapOracle builds the oracle. A nil transport uses http.DefaultTransport
// underneath the cache.
func NewCoinMarketCapOracle(
	cfg *config.PricesConfig,
	transport http.RoundTripper,
	breaker services.CircuitBreakerInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *CoinMarketCapOracle {
	cache := httpcache.NewMemoryCacheTransport()
	if transport != nil {
		cache.Transport = transport
	}

	client := newHTTPClient(cache, cfg.Timeout, map[string]string{
		"Accept":            "application/json",
		"X-CMC_PRO_API_KEY": cfg.CoinMarketCapAPIKey,
	})

	return &CoinMarketCapOracle{
		config: cfg,
		api: &apiClient{
			provider: models.Provider("coinmarketcap"),
			baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
			client:   client,
			limiter:  newLimiter(0),
			logger:   logger,
		},
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// GetQuotes returns prices and names for the given tickers. USD is always 1.
// Any remote failure yields whatever was resolved locally; it never errors.
func (o *CoinMarketCapOracle) GetQuotes(ctx context.Context, tickers []string) models.PriceQuotes {
	quotes := models.NewPriceQuotes()

	// query symbol -> tickers that asked for it
	requested := make(map[string][]string)
	for _, raw := range tickers {
		ticker := strings.ToUpper(strings.TrimSpace(raw))
		if ticker == "" {
			continue
		}
		if ticker == usdTicker {
			quotes.Prices[usdTicker] = decimal.NewFromInt(1)
			quotes.Names[usdTicker] = "US Dollar"
			continue
		}

		symbol := ticker
		if rebrand, ok := tickerRebrands[ticker]; ok {
			symbol = rebrand
		}
		if !slices.Contains(requested[symbol], ticker) {
			requested[symbol] = append(requested[symbol], ticker)
		}
	}

	if len(requested) == 0 {
		return quotes
	}

	if o.breaker != nil && o.breaker.IsOpen() {
		o.logger.WarnContext(ctx, "price lookup skipped, circuit breaker open")
		o.record("skipped")
		return quotes
	}

	response, err := o.fetch(ctx, sortedKeys(requested))
	if err != nil {
		o.logger.WarnContext(ctx, "price lookup failed", slog.String("error", err.Error()))
		if o.breaker != nil {
			o.breaker.RecordFailure()
			if o.breaker.IsOpen() {
				o.count("circuit_breaker.open", map[string]string{"service": "coinmarketcap"})
			}
		}
		o.record("failed")
		return quotes
	}

	if o.breaker != nil {
		o.breaker.RecordSuccess()
	}
	o.record("success")

	for symbol, entry := range response.Data {
		usd, ok := entry.Quote[usdTicker]
		if !ok || usd.Price == nil {
			continue
		}
		for _, ticker := range requested[strings.ToUpper(symbol)] {
			quotes.Prices[ticker] = *usd.Price
			if entry.Name != "" {
				quotes.Names[ticker] = entry.Name
			}
		}
	}

	return quotes
}

func (o *CoinMarketCapOracle) fetch(ctx context.Context, symbols []string) (*coinMarketCapResponse, error) {
	params := url.Values{}
	params.Set("symbol", strings.Join(symbols, ","))
	params.Set("convert", usdTicker)
	params.Set("skip_invalid", "true")

	req, err := o.api.buildRequest(ctx, http.MethodGet, coinMarketCapQuotesPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, body, err := o.api.do(req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, o.api.failure(models.ErrRemoteUnavailable, resp.StatusCode, body)
	}

	var decoded coinMarketCapResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, o.api.unavailable(resp.StatusCode, "decode quotes response", err)
	}

	return &decoded, nil
}

func (o *CoinMarketCapOracle) record(status string) {
	o.count("price_lookup_total", map[string]string{"status": status})
}

func (o *CoinMarketCapOracle) count(name string, tags map[string]string) {
	if o.metrics != nil {
		o.metrics.IncrementCounter(name, tags)
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
