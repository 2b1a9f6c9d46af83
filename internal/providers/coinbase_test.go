package providers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CoinbaseAdapterSuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	adapter *CoinbaseAdapter
	now     time.Time
	token   *models.OAuthTokenPayload
}

func (s *CoinbaseAdapterSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.adapter = NewCoinbaseAdapter(&config.CoinbaseConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app.example.com/callback",
		APIBaseURL:   s.server.URL,
		AuthorizeURL: "https://login.example.com/oauth2/auth",
		Scopes:       "wallet:accounts:read",
	}, nil, discardLogger())
	s.adapter.now = func() time.Time { return s.now }

	s.token = &models.OAuthTokenPayload{AccessToken: "access-1", RefreshToken: "refresh-1"}
}

func (s *CoinbaseAdapterSuite) TearDownTest() {
	s.server.Close()
}

func TestCoinbaseAdapterSuite(t *testing.T) {
	suite.Run(t, new(CoinbaseAdapterSuite))
}

func (s *CoinbaseAdapterSuite) decodeBody(r *http.Request) map[string]string {
	raw, err := io.ReadAll(r.Body)
	s.Require().NoError(err)
	body := map[string]string{}
	s.Require().NoError(json.Unmarshal(raw, &body))
	return body
}

func (s *CoinbaseAdapterSuite) TestFetchBalances_FollowsPagination() {
	s.mux.HandleFunc("/v2/accounts", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer access-1", r.Header.Get("Authorization"))
		s.Equal(coinbaseAPIVersion, r.Header.Get("CB-VERSION"))

		if r.URL.Query().Get("starting_after") == "" {
			_, _ = w.Write([]byte(`{
				"pagination": {"next_uri": "/v2/accounts?starting_after=abc"},
				"data": [
					{"currency": {"code": "btc"}, "balance": {"amount": "0.5"}},
					{"currency": {"code": "ETH"}, "balance": {"amount": "2.25"}}
				]
			}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"pagination": {"next_uri": null},
			"data": [{"currency": {"code": "SOL"}, "balance": {"amount": "10"}}]
		}`))
	})

	holdings, err := s.adapter.FetchBalances(context.Background(), s.token)

	s.Require().NoError(err)
	s.Require().Len(holdings, 3)
	s.Equal("BTC", holdings[0].Currency)
	s.Equal("0.5", holdings[0].Amount.String())
	s.Equal("ETH", holdings[1].Currency)
	s.Equal("SOL", holdings[2].Currency)
}

func (s *CoinbaseAdapterSuite) TestFetchBalances_ErrorStatus() {
	s.mux.HandleFunc("/v2/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.adapter.FetchBalances(context.Background(), s.token)

	s.ErrorIs(err, models.ErrRemoteUnavailable)
	var providerErr *models.ProviderError
	s.Require().ErrorAs(err, &providerErr)
	s.Equal(http.StatusBadGateway, providerErr.StatusCode)
}

func (s *CoinbaseAdapterSuite) TestFetchBalances_WrongPayload() {
	_, err := s.adapter.FetchBalances(context.Background(), &models.APIKeyPayload{})
	s.ErrorIs(err, models.ErrPayloadMismatch)
}

func (s *CoinbaseAdapterSuite) TestValidate() {
	status := http.StatusOK
	s.mux.HandleFunc("/v2/user", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer access-1", r.Header.Get("Authorization"))
		w.WriteHeader(status)
	})

	ok, err := s.adapter.Validate(context.Background(), s.token)
	s.NoError(err)
	s.True(ok)

	status = http.StatusUnauthorized
	ok, err = s.adapter.Validate(context.Background(), s.token)
	s.NoError(err)
	s.False(ok)

	status = http.StatusInternalServerError
	ok, err = s.adapter.Validate(context.Background(), s.token)
	s.ErrorIs(err, models.ErrRemoteUnavailable)
	s.False(ok)
}

func (s *CoinbaseAdapterSuite) TestRefresh_RetainsRefreshTokenAndSetsExpiry() {
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		body := s.decodeBody(r)
		s.Equal("refresh_token", body["grant_type"])
		s.Equal("refresh-1", body["refresh_token"])
		s.Equal("client-id", body["client_id"])
		s.Equal("client-secret", body["client_secret"])

		_, _ = w.Write([]byte(`{"access_token": "access-2", "expires_in": 7200}`))
	})

	refreshed, err := s.adapter.Refresh(context.Background(), s.token)

	s.Require().NoError(err)
	s.Equal("access-2", refreshed.AccessToken)
	s.Equal("refresh-1", refreshed.RefreshToken)
	s.Require().NotNil(refreshed.ExpiresAt)
	s.True(s.now.Add(2 * time.Hour).Equal(*refreshed.ExpiresAt))
}

func (s *CoinbaseAdapterSuite) TestRefresh_MissingExpiresInLeavesExpiryUnset() {
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token": "access-2", "refresh_token": "refresh-2"}`))
	})

	refreshed, err := s.adapter.Refresh(context.Background(), s.token)

	s.Require().NoError(err)
	s.Equal("refresh-2", refreshed.RefreshToken)
	s.Nil(refreshed.ExpiresAt)
}

func (s *CoinbaseAdapterSuite) TestRefresh_Rejected() {
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	})

	_, err := s.adapter.Refresh(context.Background(), s.token)

	s.ErrorIs(err, models.ErrRefreshDenied)
}

func (s *CoinbaseAdapterSuite) TestRefresh_NoRefreshToken() {
	_, err := s.adapter.Refresh(context.Background(), &models.OAuthTokenPayload{AccessToken: "a"})
	s.ErrorIs(err, models.ErrRefreshDenied)
}

func (s *CoinbaseAdapterSuite) TestExchangeCode_DefaultsExpiryToOneHour() {
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		body := s.decodeBody(r)
		s.Equal("authorization_code", body["grant_type"])
		s.Equal("the-code", body["code"])
		s.Equal("https://app.example.com/callback", body["redirect_uri"])

		_, _ = w.Write([]byte(`{"access_token": "access", "refresh_token": "refresh"}`))
	})

	tokens, err := s.adapter.ExchangeCode(context.Background(), "the-code")

	s.Require().NoError(err)
	s.Equal("access", tokens.AccessToken)
	s.Equal("refresh", tokens.RefreshToken)
	s.Require().NotNil(tokens.ExpiresAt)
	s.True(s.now.Add(time.Hour).Equal(*tokens.ExpiresAt))
}

func (s *CoinbaseAdapterSuite) TestExchangeCode_Rejected() {
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := s.adapter.ExchangeCode(context.Background(), "bad-code")
	s.ErrorIs(err, models.ErrInvalidCredentials)

	_, err = s.adapter.ExchangeCode(context.Background(), " ")
	s.ErrorIs(err, models.ErrInvalidCredentials)
}

func TestCoinbaseAdapter_AuthorizeURL(t *testing.T) {
	adapter := NewCoinbaseAdapter(&config.CoinbaseConfig{
		ClientID:     "client-id",
		RedirectURI:  "https://app.example.com/callback",
		AuthorizeURL: "https://login.example.com/oauth2/auth",
		Scopes:       "wallet:accounts:read,wallet:user:read",
	}, nil, discardLogger())

	raw := adapter.AuthorizeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "login.example.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Equal(t, "https://app.example.com/callback", query.Get("redirect_uri"))
	assert.Equal(t, "wallet:accounts:read,wallet:user:read", query.Get("scope"))
}
