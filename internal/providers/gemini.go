package providers

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/shopspring/decimal"
)

var _ services.ProviderAdapter = (*GeminiAdapter)(nil)

const geminiBalancesPath = "/v1/balances"

// NonceSource hands out strictly increasing nonces per API key, seeded by
// wall-clock milliseconds.
type NonceSource struct {
	mu   sync.Mutex
	last map[string]int64
	now  func() time.Time
}

func NewNonceSource() *NonceSource {
	return &NonceSource{
		last: make(map[string]int64),
		now:  time.Now,
	}
}

// Next returns max(now_ms, last+1) for the key.
func (n *NonceSource) Next(apiKey string) int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	nonce := n.now().UnixMilli()
	if last, ok := n.last[apiKey]; ok && nonce <= last {
		nonce = last + 1
	}
	n.last[apiKey] = nonce

	return nonce
}

// SignedRequest is the header material of one authenticated Gemini call.
type SignedRequest struct {
	Payload   string
	Signature string
}

// SignGeminiRequest encodes {request, nonce, ...extra} as base64 JSON and
// signs the base64 string with HMAC-SHA384 keyed by the API secret.
func SignGeminiRequest(path string, nonce int64, extra map[string]any, apiSecret string) (SignedRequest, error) {
	body := make(map[string]any, len(extra)+2)
	for key, value := range extra {
		body[key] = value
	}
	body["request"] = path
	body["nonce"] = nonce

	raw, err := json.Marshal(body)
	if err != nil {
		return SignedRequest{}, fmt.Errorf("marshal gemini payload: %w", err)
	}

	payload := base64.StdEncoding.EncodeToString(raw)

	mac := hmac.New(sha512.New384, []byte(apiSecret))
	mac.Write([]byte(payload))

	return SignedRequest{
		Payload:   payload,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}, nil
}

type geminiBalance struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// GeminiAdapter reads balances with a user's API key pair.
type GeminiAdapter struct {
	api    *apiClient
	nonces *NonceSource
}

func NewGeminiAdapter(cfg *config.GeminiConfig, transport http.RoundTripper, nonces *NonceSource, logger *slog.Logger) *GeminiAdapter {
	if nonces == nil {
		nonces = NewNonceSource()
	}

	client := newHTTPClient(transport, defaultHTTPTimeout, map[string]string{
		"Accept": "application/json",
	})

	return &GeminiAdapter{
		api: &apiClient{
			provider: models.ProviderGemini,
			baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
			client:   client,
			limiter:  newLimiter(cfg.RequestsPerSecond),
			logger:   logger,
		},
		nonces: nonces,
	}
}

func (a *GeminiAdapter) Provider() models.Provider {
	return models.ProviderGemini
}

// Validate performs a signed balances call. 400, 401 and 403 mean the key
// pair is not accepted.
func (a *GeminiAdapter) Validate(ctx context.Context, payload models.CredentialPayload) (bool, error) {
	keys, ok := payload.(*models.APIKeyPayload)
	if !ok {
		return false, models.ErrPayloadMismatch
	}

	resp, body, err := a.post(ctx, geminiBalancesPath, keys, nil)
	if err != nil {
		return false, err
	}

	switch {
	case isSuccess(resp.StatusCode):
		return true, nil
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, a.api.failure(models.ErrRemoteUnavailable, resp.StatusCode, body)
	}
}

func (a *GeminiAdapter) FetchBalances(ctx context.Context, payload models.CredentialPayload) ([]models.Holding, error) {
	keys, ok := payload.(*models.APIKeyPayload)
	if !ok {
		return nil, models.ErrPayloadMismatch
	}

	resp, body, err := a.post(ctx, geminiBalancesPath, keys, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, a.api.failure(models.ErrRemoteUnavailable, resp.StatusCode, body)
	}

	var balances []geminiBalance
	if err := json.Unmarshal(body, &balances); err != nil {
		return nil, a.api.unavailable(resp.StatusCode, "decode balances response", err)
	}

	holdings := make([]models.Holding, 0, len(balances))
	for _, b := range balances {
		currency := strings.ToUpper(strings.TrimSpace(b.Currency))
		if currency == "" {
			continue
		}

		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			return nil, a.api.unavailable(resp.StatusCode, fmt.Sprintf("invalid amount for %s", currency), err)
		}

		holdings = append(holdings, models.Holding{Currency: currency, Amount: amount})
	}

	return holdings, nil
}

func (a *GeminiAdapter) post(ctx context.Context, path string, keys *models.APIKeyPayload, extra map[string]any) (*http.Response, []byte, error) {
	signed, err := SignGeminiRequest(path, a.nonces.Next(keys.APIKey), extra, keys.APISecret)
	if err != nil {
		return nil, nil, err
	}

	req, err := a.api.buildRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Content-Length", "0")
	req.Header.Set("X-GEMINI-APIKEY", keys.APIKey)
	req.Header.Set("X-GEMINI-PAYLOAD", signed.Payload)
	req.Header.Set("X-GEMINI-SIGNATURE", signed.Signature)
	req.Header.Set("Cache-Control", "no-cache")

	return a.api.do(req)
}
