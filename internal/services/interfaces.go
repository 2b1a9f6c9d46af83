package services

import (
	"context"
	"time"

	"cryptofolio/internal/models"

	"github.com/google/uuid"
)

// ProviderAdapter is the common surface of every balance source.
type ProviderAdapter interface {
	Provider() models.Provider
	// Validate reports whether the provider accepts the payload. A rejection
	// is (false, nil); an error means the answer could not be obtained.
	Validate(ctx context.Context, payload models.CredentialPayload) (bool, error)
	FetchBalances(ctx context.Context, payload models.CredentialPayload) ([]models.Holding, error)
}

// TokenRefresher is implemented by providers whose access tokens expire.
type TokenRefresher interface {
	Refresh(ctx context.Context, token *models.OAuthTokenPayload) (*models.OAuthTokenPayload, error)
}

// OAuthExchanger is implemented by providers linked through an OAuth consent flow.
type OAuthExchanger interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*models.OAuthTokenPayload, error)
}

// PriceOracle quotes USD prices. It never fails; unknown tickers are absent from the result.
type PriceOracle interface {
	GetQuotes(ctx context.Context, tickers []string) models.PriceQuotes
}

type TokenRefreshServiceInterface interface {
	EnsureAccessToken(ctx context.Context, userID uuid.UUID) (*models.OAuthTokenPayload, error)
}

type ReconciliationServiceInterface interface {
	Sync(ctx context.Context, userID uuid.UUID, provider models.Provider) error
	SyncAll(ctx context.Context, userID uuid.UUID) (map[models.Provider]error, error)
}

type ConnectionServiceInterface interface {
	Connect(ctx context.Context, userID uuid.UUID, payload models.CredentialPayload) error
	ConnectOAuth(ctx context.Context, userID uuid.UUID, code string) error
	AuthorizeURL(state string) (string, error)
	Unlink(ctx context.Context, userID uuid.UUID, provider models.Provider) error
	Status(ctx context.Context, userID uuid.UUID) (models.ConnectionStatus, error)
	PurgeUser(ctx context.Context, userID uuid.UUID) error
	Wait()
}

type PortfolioServiceInterface interface {
	GetBalances(ctx context.Context, userID uuid.UUID) ([]*models.Balance, error)
	GetPortfolio(ctx context.Context, userID uuid.UUID) (*models.PortfolioSummary, error)
	GetPrices(ctx context.Context, tickers []string) models.PriceQuotes
}

type ExportServiceInterface interface {
	ExportWorkbook(ctx context.Context, userID uuid.UUID) (string, []byte, error)
}

type SyncSchedulerInterface interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) error
}

// IdentityServiceInterface verifies access tokens issued by the identity provider
type IdentityServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	UserIDFromClaims(claims *models.IdentityClaims) (uuid.UUID, error)
}

type SyncLoggerInterface interface {
	LogSyncStarted(ctx context.Context, userID uuid.UUID, provider models.Provider)
	LogSyncCompleted(ctx context.Context, userID uuid.UUID, provider models.Provider, currencies int, durationMs int64)
	LogSyncFailed(ctx context.Context, userID uuid.UUID, provider models.Provider, errorMsg string)
	LogTokenRefreshed(ctx context.Context, userID uuid.UUID, provider models.Provider, expiresAt *time.Time)
	LogTokenRefreshFailed(ctx context.Context, userID uuid.UUID, provider models.Provider, reason string)
	LogConnectionLinked(ctx context.Context, userID uuid.UUID, provider models.Provider)
	LogConnectionUnlinked(ctx context.Context, userID uuid.UUID, provider models.Provider, removedBalances int64)
	LogUserPurged(ctx context.Context, userID uuid.UUID, removedCredentials, removedBalances int64)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
