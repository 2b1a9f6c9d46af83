package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"
	"cryptofolio/internal/repositories"

	"github.com/google/uuid"
)

const defaultInitialSyncTimeout = 60 * time.Second

// connectionService implements ConnectionServiceInterface
type connectionService struct {
	credentialRepo     repositories.CredentialRepositoryInterface
	balanceRepo        repositories.BalanceRepositoryInterface
	adapters           map[models.Provider]ProviderAdapter
	oauth              OAuthExchanger
	reconciler         ReconciliationServiceInterface
	syncLogger         SyncLoggerInterface
	metrics            MetricsRecorderInterface
	initialSyncTimeout time.Duration
	pending            sync.WaitGroup
	logger             *slog.Logger
}

// NewConnectionService manages the credential lifecycle. oauth may be nil when
// no OAuth provider is configured.
func NewConnectionService(
	credentialRepo repositories.CredentialRepositoryInterface,
	balanceRepo repositories.BalanceRepositoryInterface,
	adapters []ProviderAdapter,
	oauth OAuthExchanger,
	reconciler ReconciliationServiceInterface,
	syncConfig *config.SyncConfig,
	syncLogger SyncLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ConnectionServiceInterface {
	timeout := syncConfig.InitialSyncTimeout
	if timeout <= 0 {
		timeout = defaultInitialSyncTimeout
	}

	return &connectionService{
		credentialRepo:     credentialRepo,
		balanceRepo:        balanceRepo,
		adapters:           indexAdapters(adapters),
		oauth:              oauth,
		reconciler:         reconciler,
		syncLogger:         syncLogger,
		metrics:            metrics,
		initialSyncTimeout: timeout,
		logger:             logger,
	}
}

// Connect validates the payload with its provider, stores it and starts an
// initial sync that outlives ctx. The initial sync's outcome is only logged.
func (s *connectionService) Connect(ctx context.Context, userID uuid.UUID, payload models.CredentialPayload) error {
	if payload == nil {
		return models.ErrPayloadMismatch
	}

	provider := payload.Provider()
	adapter, ok := s.adapters[provider]
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedProvider, provider)
	}

	valid, err := adapter.Validate(ctx, payload)
	if err != nil {
		s.recordConnection(provider, "rejected")
		return err
	}
	if !valid {
		s.recordConnection(provider, "rejected")
		return models.ErrInvalidCredentials
	}

	credential := &models.Credential{
		UserID:   userID,
		Provider: provider,
		Payload:  payload,
	}
	if err := s.credentialRepo.Upsert(ctx, credential); err != nil {
		if errors.Is(err, models.ErrPayloadMismatch) {
			return err
		}
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	s.recordConnection(provider, "linked")
	s.syncLogger.LogConnectionLinked(ctx, userID, provider)

	s.startInitialSync(ctx, userID, provider)

	return nil
}

// ConnectOAuth exchanges an authorization code for tokens and connects them.
func (s *connectionService) ConnectOAuth(ctx context.Context, userID uuid.UUID, code string) error {
	if s.oauth == nil {
		return fmt.Errorf("%w: no OAuth provider configured", models.ErrUnsupportedProvider)
	}

	token, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return err
	}

	return s.Connect(ctx, userID, token)
}

func (s *connectionService) AuthorizeURL(state string) (string, error) {
	if s.oauth == nil {
		return "", fmt.Errorf("%w: no OAuth provider configured", models.ErrUnsupportedProvider)
	}
	return s.oauth.AuthorizeURL(state), nil
}

// Unlink removes the provider's balances before its credential so no balance
// row survives its connection.
func (s *connectionService) Unlink(ctx context.Context, userID uuid.UUID, provider models.Provider) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedProvider, provider)
	}

	exists, err := s.credentialRepo.Exists(ctx, userID, provider)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}
	if !exists {
		return models.ErrNotFound
	}

	removed, err := s.balanceRepo.DeleteByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	if err := s.credentialRepo.Delete(ctx, userID, provider); err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	s.recordConnection(provider, "unlinked")
	s.syncLogger.LogConnectionUnlinked(ctx, userID, provider, removed)

	return nil
}

// Status reports every supported provider, connected or not.
func (s *connectionService) Status(ctx context.Context, userID uuid.UUID) (models.ConnectionStatus, error) {
	credentials, err := s.credentialRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	status := make(models.ConnectionStatus, len(models.AllProviders()))
	for _, provider := range models.AllProviders() {
		status[provider] = models.ProviderStatus{}
	}

	for _, credential := range credentials {
		linkedAt := credential.CreatedAt
		entry := models.ProviderStatus{
			Connected: true,
			LinkedAt:  &linkedAt,
		}

		if file, ok := credential.Payload.(*models.FileImportPayload); ok {
			importedAt := file.ImportedAt
			entry.SourceFilename = file.SourceFilename
			entry.ImportedAt = &importedAt
		}

		status[credential.Provider] = entry
	}

	return status, nil
}

// PurgeUser deletes every balance and then every credential of the user.
func (s *connectionService) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	removedBalances, err := s.balanceRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	removedCredentials, err := s.credentialRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	s.syncLogger.LogUserPurged(ctx, userID, removedCredentials, removedBalances)

	return nil
}

// Wait blocks until every initial sync started by Connect has finished.
func (s *connectionService) Wait() {
	s.pending.Wait()
}

func (s *connectionService) startInitialSync(ctx context.Context, userID uuid.UUID, provider models.Provider) {
	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.initialSyncTimeout)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()

		if err := s.reconciler.Sync(syncCtx, userID, provider); err != nil {
			s.logger.WarnContext(syncCtx, "initial sync after connect failed",
				slog.String("provider", provider.String()),
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (s *connectionService) recordConnection(provider models.Provider, action string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("connections_total", map[string]string{
		"provider": provider.String(),
		"action":   action,
	})
}
