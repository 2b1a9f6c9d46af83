package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthTokenPayload_IsExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "no expiry recorded", expiresAt: nil, want: false},
		{name: "expires in one hour", expiresAt: at(time.Hour), want: false},
		{name: "expires in six minutes", expiresAt: at(6 * time.Minute), want: false},
		{name: "expires inside buffer", expiresAt: at(4 * time.Minute), want: true},
		{name: "already expired", expiresAt: at(-time.Minute), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &OAuthTokenPayload{AccessToken: "a", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, p.IsExpired(now, 5*time.Minute))
		})
	}
}

func TestDecodeCredentialPayload_SelectsVariantByTag(t *testing.T) {
	expires := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		provider Provider
		payload  CredentialPayload
	}{
		{
			name:     "coinbase tokens",
			provider: ProviderCoinbase,
			payload:  &OAuthTokenPayload{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: &expires},
		},
		{
			name:     "gemini api key",
			provider: ProviderGemini,
			payload:  &APIKeyPayload{APIKey: "key", APISecret: "secret"},
		},
		{
			name:     "ledger import",
			provider: ProviderLedger,
			payload:  &FileImportPayload{SourceFilename: "export.csv", ImportedAt: expires, Content: "a,b\n1,2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCredentialPayload(tt.payload)
			require.NoError(t, err)

			decoded, err := DecodeCredentialPayload(tt.provider, data)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, decoded)
			assert.Equal(t, tt.provider, decoded.Provider())
		})
	}
}

func TestDecodeCredentialPayload_UnknownProvider(t *testing.T) {
	_, err := DecodeCredentialPayload(Provider("kraken"), []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestCredential_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		cred    Credential
		wantErr error
	}{
		{
			name: "matching payload",
			cred: Credential{UserID: userID, Provider: ProviderGemini, Payload: &APIKeyPayload{APIKey: "k"}},
		},
		{
			name:    "payload for another provider",
			cred:    Credential{UserID: userID, Provider: ProviderCoinbase, Payload: &APIKeyPayload{APIKey: "k"}},
			wantErr: ErrPayloadMismatch,
		},
		{
			name:    "missing payload",
			cred:    Credential{UserID: userID, Provider: ProviderLedger},
			wantErr: ErrPayloadMismatch,
		},
		{
			name:    "unsupported provider",
			cred:    Credential{UserID: userID, Provider: "kraken", Payload: &APIKeyPayload{}},
			wantErr: ErrUnsupportedProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cred.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider(" Coinbase ")
	require.NoError(t, err)
	assert.Equal(t, ProviderCoinbase, p)
	assert.Equal(t, "Coinbase", p.DisplayName())

	_, err = ParseProvider("binance")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestMergeHoldings(t *testing.T) {
	merged := MergeHoldings([]Holding{
		{Currency: "BTC", Amount: decimal.RequireFromString("0.5")},
		{Currency: "ETH", Amount: decimal.RequireFromString("2")},
		{Currency: "BTC", Amount: decimal.RequireFromString("0.25")},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, "BTC", merged[0].Currency)
	assert.True(t, merged[0].Amount.Equal(decimal.RequireFromString("0.75")))
	assert.Equal(t, "ETH", merged[1].Currency)
}

func TestParseError_MatchesSentinel(t *testing.T) {
	err := error(&ParseError{Line: 3, Reason: "invalid amount"})
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "line 3")
}

func TestProviderError_MatchesKind(t *testing.T) {
	err := error(&ProviderError{Provider: ProviderGemini, StatusCode: 502, Kind: ErrRemoteUnavailable})
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.NotErrorIs(t, err, ErrRefreshDenied)
	assert.Contains(t, err.Error(), "status 502")
}
