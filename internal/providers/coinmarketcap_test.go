package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quotesBody = `{
	"status": {"error_code": 0},
	"data": {
		"BTC": {"name": "Bitcoin", "symbol": "BTC", "quote": {"USD": {"price": 64250.125}}},
		"POL": {"name": "Polygon Ecosystem Token", "symbol": "POL", "quote": {"USD": {"price": 0.41}}}
	}
}`

func newTestOracle(t *testing.T, handler http.HandlerFunc, breaker services.CircuitBreakerInterface) *CoinMarketCapOracle {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewCoinMarketCapOracle(&config.PricesConfig{
		CoinMarketCapAPIKey: "cmc-key",
		APIBaseURL:          server.URL,
		Timeout:             time.Second,
	}, nil, breaker, nil, discardLogger())
}

func TestCoinMarketCapOracle_GetQuotes(t *testing.T) {
	var calls atomic.Int32
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, coinMarketCapQuotesPath, r.URL.Path)
		assert.Equal(t, "cmc-key", r.Header.Get("X-CMC_PRO_API_KEY"))
		assert.Equal(t, "BTC,POL,XYZ", r.URL.Query().Get("symbol"))
		assert.Equal(t, "USD", r.URL.Query().Get("convert"))
		assert.Equal(t, "true", r.URL.Query().Get("skip_invalid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quotesBody))
	}, nil)

	quotes := oracle.GetQuotes(context.Background(), []string{"matic", "BTC", "USD", "XYZ", "btc"})

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "64250.125", quotes.Prices["BTC"].String())
	assert.Equal(t, "Bitcoin", quotes.Names["BTC"])
	assert.Equal(t, "0.41", quotes.Prices["MATIC"].String())
	assert.Equal(t, "Polygon Ecosystem Token", quotes.Names["MATIC"])
	assert.Equal(t, "1", quotes.Prices["USD"].String())
	assert.Equal(t, "US Dollar", quotes.Names["USD"])

	_, priced := quotes.Prices["XYZ"]
	assert.False(t, priced)
	assert.True(t, quotes.PriceOf("XYZ").IsZero())
}

func TestCoinMarketCapOracle_USDOnlySkipsRemote(t *testing.T) {
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected remote call")
	}, nil)

	quotes := oracle.GetQuotes(context.Background(), []string{"usd", " "})

	assert.Len(t, quotes.Prices, 1)
	assert.Equal(t, "1", quotes.PriceOf("USD").String())
}

func TestCoinMarketCapOracle_FailureReturnsLocalQuotes(t *testing.T) {
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":{"error_message":"quota"}}`, http.StatusTooManyRequests)
	}, nil)

	quotes := oracle.GetQuotes(context.Background(), []string{"BTC", "USD"})

	assert.Len(t, quotes.Prices, 1)
	assert.Equal(t, "1", quotes.PriceOf("USD").String())
	assert.Empty(t, quotes.Names["BTC"])
}

func TestCoinMarketCapOracle_OpenBreakerSkipsRemote(t *testing.T) {
	var calls atomic.Int32
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		Name:            "coinmarketcap",
		MaxFailures:     1,
		ResetTimeout:    time.Hour,
		HalfOpenMaxSucc: 1,
	}, nil)

	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, breaker)

	first := oracle.GetQuotes(context.Background(), []string{"ETH"})
	require.True(t, breaker.IsOpen())
	assert.Empty(t, first.Prices)

	second := oracle.GetQuotes(context.Background(), []string{"ETH"})
	assert.Empty(t, second.Prices)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCoinMarketCapOracle_CachesResponses(t *testing.T) {
	var calls atomic.Int32
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "max-age=60")
		_, _ = w.Write([]byte(quotesBody))
	}, nil)

	for i := 0; i < 3; i++ {
		quotes := oracle.GetQuotes(context.Background(), []string{"BTC"})
		require.Equal(t, "64250.125", quotes.Prices["BTC"].String())
	}

	assert.Equal(t, int32(1), calls.Load())
}
