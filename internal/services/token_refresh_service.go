package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"
	"cryptofolio/internal/repositories"

	"github.com/google/uuid"
)

// tokenRefreshService implements TokenRefreshServiceInterface for one OAuth provider
type tokenRefreshService struct {
	credentialRepo repositories.CredentialRepositoryInterface
	adapter        ProviderAdapter
	refresher      TokenRefresher
	syncLogger     SyncLoggerInterface
	metrics        MetricsRecorderInterface
	expiryBuffer   time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// NewTokenRefreshService keeps the stored access token of adapter's provider usable.
func NewTokenRefreshService(
	credentialRepo repositories.CredentialRepositoryInterface,
	adapter ProviderAdapter,
	refresher TokenRefresher,
	syncConfig *config.SyncConfig,
	syncLogger SyncLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TokenRefreshServiceInterface {
	return &tokenRefreshService{
		credentialRepo: credentialRepo,
		adapter:        adapter,
		refresher:      refresher,
		syncLogger:     syncLogger,
		metrics:        metrics,
		expiryBuffer:   syncConfig.ExpiryBuffer,
		now:            time.Now,
		logger:         logger,
	}
}

// EnsureAccessToken returns a token the provider currently accepts. A token
// that is near expiry or fails validation is refreshed at most once and the
// result is written back before it is returned.
func (s *tokenRefreshService) EnsureAccessToken(ctx context.Context, userID uuid.UUID) (*models.OAuthTokenPayload, error) {
	provider := s.adapter.Provider()

	credential, err := s.credentialRepo.Get(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return nil, models.ErrNotConnected
		}
		return nil, fmt.Errorf("failed to load %s credential: %w", provider, err)
	}

	token, err := credential.OAuthToken()
	if err != nil {
		return nil, err
	}

	if !token.IsExpired(s.now(), s.expiryBuffer) {
		valid, err := s.adapter.Validate(ctx, token)
		if err == nil && valid {
			return token, nil
		}

		if !token.HasRefreshToken() {
			s.recordRefresh(provider, "reconnect_required")
			return nil, models.ErrReconnectRequired
		}

		attrs := []any{slog.String("provider", provider.String()), slog.String("user_id", userID.String())}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		s.logger.InfoContext(ctx, "access token rejected, refreshing", attrs...)
	} else if !token.HasRefreshToken() {
		s.recordRefresh(provider, "reconnect_required")
		return nil, models.ErrReconnectRequired
	}

	return s.refresh(ctx, credential, token)
}

func (s *tokenRefreshService) refresh(ctx context.Context, credential *models.Credential, token *models.OAuthTokenPayload) (*models.OAuthTokenPayload, error) {
	provider := credential.Provider

	refreshed, err := s.refresher.Refresh(ctx, token)
	if err != nil {
		s.recordRefresh(provider, "failed")
		s.syncLogger.LogTokenRefreshFailed(ctx, credential.UserID, provider, err.Error())
		return nil, fmt.Errorf("%w: %w", models.ErrRefreshFailed, err)
	}

	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = token.RefreshToken
	}

	credential.Payload = refreshed
	if err := s.credentialRepo.Upsert(ctx, credential); err != nil {
		s.recordRefresh(provider, "persist_failed")
		s.logger.ErrorContext(ctx, "failed to store refreshed token",
			slog.String("provider", provider.String()),
			slog.String("user_id", credential.UserID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	s.recordRefresh(provider, "refreshed")
	s.syncLogger.LogTokenRefreshed(ctx, credential.UserID, provider, refreshed.ExpiresAt)

	return refreshed, nil
}

func (s *tokenRefreshService) recordRefresh(provider models.Provider, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("token_refresh_total", map[string]string{
		"provider": provider.String(),
		"outcome":  outcome,
	})
}
