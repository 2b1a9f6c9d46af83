package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/shopspring/decimal"
)

var (
	_ services.ProviderAdapter = (*CoinbaseAdapter)(nil)
	_ services.TokenRefresher  = (*CoinbaseAdapter)(nil)
	_ services.OAuthExchanger  = (*CoinbaseAdapter)(nil)
)

const (
	coinbaseAPIVersion     = "2024-05-01"
	coinbaseTokenPath      = "/oauth/token"
	coinbaseUserPath       = "/v2/user"
	coinbaseAccountsPath   = "/v2/accounts?limit=100"
	coinbaseMaxPages       = 50
	defaultCodeTokenExpiry = time.Hour
)

type coinbaseTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    *int64 `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

type coinbaseAccountsResponse struct {
	Pagination struct {
		NextURI string `json:"next_uri"`
	} `json:"pagination"`
	Data []struct {
		Currency struct {
			Code string `json:"code"`
		} `json:"currency"`
		Balance struct {
			Amount string `json:"amount"`
		} `json:"balance"`
	} `json:"data"`
}

// CoinbaseAdapter talks to the Coinbase v2 API on behalf of a user holding OAuth tokens.
type CoinbaseAdapter struct {
	config *config.CoinbaseConfig
	api    *apiClient
	now    func() time.Time
}

// NewCoinbaseAdapter builds the adapter. A nil transport uses http.DefaultTransport.
func NewCoinbaseAdapter(cfg *config.CoinbaseConfig, transport http.RoundTripper, logger *slog.Logger) *CoinbaseAdapter {
	client := newHTTPClient(transport, defaultHTTPTimeout, map[string]string{
		"Accept":     "application/json",
		"CB-VERSION": coinbaseAPIVersion,
	})

	return &CoinbaseAdapter{
		config: cfg,
		api: &apiClient{
			provider: models.ProviderCoinbase,
			baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
			client:   client,
			limiter:  newLimiter(cfg.RequestsPerSecond),
			logger:   logger,
		},
		now: time.Now,
	}
}

func (a *CoinbaseAdapter) Provider() models.Provider {
	return models.ProviderCoinbase
}

// AuthorizeURL returns the consent page URL the user is redirected to.
func (a *CoinbaseAdapter) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", a.config.ClientID)
	params.Set("redirect_uri", a.config.RedirectURI)
	params.Set("state", state)
	if a.config.Scopes != "" {
		params.Set("scope", a.config.Scopes)
	}

	return a.config.AuthorizeURL + "?" + params.Encode()
}

// ExchangeCode swaps an authorization code for tokens. A rejected code is
// reported as ErrInvalidCredentials.
func (a *CoinbaseAdapter) ExchangeCode(ctx context.Context, code string) (*models.OAuthTokenPayload, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: authorization code is empty", models.ErrInvalidCredentials)
	}

	tokens, err := a.requestToken(ctx, map[string]string{
		"grant_type":    "authorization_code",
		"code":          code,
		"client_id":     a.config.ClientID,
		"client_secret": a.config.ClientSecret,
		"redirect_uri":  a.config.RedirectURI,
	}, models.ErrInvalidCredentials)
	if err != nil {
		return nil, err
	}

	lifetime := defaultCodeTokenExpiry
	if tokens.ExpiresIn != nil {
		lifetime = time.Duration(*tokens.ExpiresIn) * time.Second
	}
	expiresAt := a.now().UTC().Add(lifetime)

	return &models.OAuthTokenPayload{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    &expiresAt,
	}, nil
}

// Refresh trades the refresh token for a new access token. The old refresh
// token is kept when none is returned; a missing expires_in leaves ExpiresAt nil.
func (a *CoinbaseAdapter) Refresh(ctx context.Context, token *models.OAuthTokenPayload) (*models.OAuthTokenPayload, error) {
	if token == nil || !token.HasRefreshToken() {
		return nil, fmt.Errorf("%w: no refresh token", models.ErrRefreshDenied)
	}

	tokens, err := a.requestToken(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": token.RefreshToken,
		"client_id":     a.config.ClientID,
		"client_secret": a.config.ClientSecret,
	}, models.ErrRefreshDenied)
	if err != nil {
		return nil, err
	}

	refreshed := &models.OAuthTokenPayload{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	if tokens.ExpiresIn != nil {
		expiresAt := a.now().UTC().Add(time.Duration(*tokens.ExpiresIn) * time.Second)
		refreshed.ExpiresAt = &expiresAt
	}

	return refreshed, nil
}

func (a *CoinbaseAdapter) requestToken(ctx context.Context, body map[string]string, rejected error) (*coinbaseTokenResponse, error) {
	req, err := a.api.buildRequest(ctx, http.MethodPost, coinbaseTokenPath, body)
	if err != nil {
		return nil, err
	}

	resp, respBody, err := a.api.do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case isSuccess(resp.StatusCode):
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, a.api.failure(rejected, resp.StatusCode, respBody)
	default:
		return nil, a.api.failure(models.ErrRemoteUnavailable, resp.StatusCode, respBody)
	}

	var tokens coinbaseTokenResponse
	if err := json.Unmarshal(respBody, &tokens); err != nil {
		return nil, a.api.unavailable(resp.StatusCode, "decode token response", err)
	}
	if tokens.AccessToken == "" {
		return nil, a.api.failure(rejected, resp.StatusCode, []byte("token response has no access_token"))
	}

	return &tokens, nil
}

// Validate calls the user endpoint with the access token. 401 and 403 mean
// the token is not accepted.
func (a *CoinbaseAdapter) Validate(ctx context.Context, payload models.CredentialPayload) (bool, error) {
	token, ok := payload.(*models.OAuthTokenPayload)
	if !ok {
		return false, models.ErrPayloadMismatch
	}

	resp, body, err := a.get(ctx, coinbaseUserPath, token.AccessToken)
	if err != nil {
		return false, err
	}

	switch {
	case isSuccess(resp.StatusCode):
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, a.api.failure(models.ErrRemoteUnavailable, resp.StatusCode, body)
	}
}

// FetchBalances lists every account of the user, following pagination.
func (a *CoinbaseAdapter) FetchBalances(ctx context.Context, payload models.CredentialPayload) ([]models.Holding, error) {
	token, ok := payload.(*models.OAuthTokenPayload)
	if !ok {
		return nil, models.ErrPayloadMismatch
	}

	var holdings []models.Holding
	path := coinbaseAccountsPath

	for page := 0; path != "" && page < coinbaseMaxPages; page++ {
		resp, body, err := a.get(ctx, path, token.AccessToken)
		if err != nil {
			return nil, err
		}
		if !isSuccess(resp.StatusCode) {
			return nil, a.api.failure(models.ErrRemoteUnavailable, resp.StatusCode, body)
		}

		var accounts coinbaseAccountsResponse
		if err := json.Unmarshal(body, &accounts); err != nil {
			return nil, a.api.unavailable(resp.StatusCode, "decode accounts response", err)
		}

		for _, account := range accounts.Data {
			code := strings.ToUpper(strings.TrimSpace(account.Currency.Code))
			if code == "" {
				continue
			}

			amount, err := decimal.NewFromString(account.Balance.Amount)
			if err != nil {
				return nil, a.api.unavailable(resp.StatusCode, fmt.Sprintf("invalid amount for %s", code), err)
			}

			holdings = append(holdings, models.Holding{Currency: code, Amount: amount})
		}

		path = accounts.Pagination.NextURI
	}

	return holdings, nil
}

func (a *CoinbaseAdapter) get(ctx context.Context, path, accessToken string) (*http.Response, []byte, error) {
	req, err := a.api.buildRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return a.api.do(req)
}
