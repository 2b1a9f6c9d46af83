package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cryptofolio/internal/models"
	"cryptofolio/internal/repositories"

	"github.com/google/uuid"
)

// reconciliationService implements ReconciliationServiceInterface
type reconciliationService struct {
	credentialRepo repositories.CredentialRepositoryInterface
	balanceRepo    repositories.BalanceRepositoryInterface
	adapters       map[models.Provider]ProviderAdapter
	tokens         TokenRefreshServiceInterface
	syncLogger     SyncLoggerInterface
	metrics        MetricsRecorderInterface
	now            func() time.Time
	logger         *slog.Logger
}

// NewReconciliationService creates the balance sync engine. tokens may be nil
// when no registered adapter implements TokenRefresher.
func NewReconciliationService(
	credentialRepo repositories.CredentialRepositoryInterface,
	balanceRepo repositories.BalanceRepositoryInterface,
	adapters []ProviderAdapter,
	tokens TokenRefreshServiceInterface,
	syncLogger SyncLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReconciliationServiceInterface {
	return &reconciliationService{
		credentialRepo: credentialRepo,
		balanceRepo:    balanceRepo,
		adapters:       indexAdapters(adapters),
		tokens:         tokens,
		syncLogger:     syncLogger,
		metrics:        metrics,
		now:            time.Now,
		logger:         logger,
	}
}

// Sync fetches the current holdings of one provider and writes them as a
// single snapshot. Overlapping syncs for the same key are last-write-wins.
func (s *reconciliationService) Sync(ctx context.Context, userID uuid.UUID, provider models.Provider) error {
	adapter, ok := s.adapters[provider]
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedProvider, provider)
	}

	started := s.now()
	s.syncLogger.LogSyncStarted(ctx, userID, provider)

	payload, err := s.resolvePayload(ctx, userID, adapter)
	if err != nil {
		return s.failed(ctx, userID, provider, err)
	}

	holdings, err := adapter.FetchBalances(ctx, payload)
	if err != nil {
		return s.failed(ctx, userID, provider, err)
	}

	merged := models.MergeHoldings(holdings)
	rows := models.NewBalances(userID, provider, merged, s.now().UTC())

	if err := s.balanceRepo.UpsertBatch(ctx, rows); err != nil {
		return s.failed(ctx, userID, provider, fmt.Errorf("%w: %w", models.ErrPersistence, err))
	}

	elapsed := s.now().Sub(started)
	s.syncLogger.LogSyncCompleted(ctx, userID, provider, len(rows), elapsed.Milliseconds())
	if s.metrics != nil {
		s.metrics.IncrementCounter("sync_total", map[string]string{"provider": provider.String(), "status": "success"})
		s.metrics.RecordProcessingTime("sync_duration."+provider.String(), elapsed)
		s.metrics.RecordGauge("synced_currencies", float64(len(rows)), map[string]string{"provider": provider.String()})
	}

	return nil
}

// SyncAll syncs every provider the user is connected to. One provider failing
// does not stop the others; the returned map has an entry per attempted provider.
func (s *reconciliationService) SyncAll(ctx context.Context, userID uuid.UUID) (map[models.Provider]error, error) {
	credentials, err := s.credentialRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	results := make(map[models.Provider]error, len(credentials))
	for _, credential := range credentials {
		results[credential.Provider] = s.Sync(ctx, userID, credential.Provider)
	}

	return results, nil
}

// resolvePayload loads the stored credential; refreshable providers go
// through the token refresh protocol instead.
func (s *reconciliationService) resolvePayload(ctx context.Context, userID uuid.UUID, adapter ProviderAdapter) (models.CredentialPayload, error) {
	if _, refreshable := adapter.(TokenRefresher); refreshable && s.tokens != nil {
		return s.tokens.EnsureAccessToken(ctx, userID)
	}

	credential, err := s.credentialRepo.Get(ctx, userID, adapter.Provider())
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return nil, models.ErrNotConnected
		}
		return nil, fmt.Errorf("failed to load %s credential: %w", adapter.Provider(), err)
	}

	return credential.Payload, nil
}

func (s *reconciliationService) failed(ctx context.Context, userID uuid.UUID, provider models.Provider, err error) error {
	s.syncLogger.LogSyncFailed(ctx, userID, provider, err.Error())
	if s.metrics != nil {
		s.metrics.IncrementCounter("sync_total", map[string]string{"provider": provider.String(), "status": "failed"})
	}
	return err
}

func indexAdapters(adapters []ProviderAdapter) map[models.Provider]ProviderAdapter {
	index := make(map[models.Provider]ProviderAdapter, len(adapters))
	for _, adapter := range adapters {
		index[adapter.Provider()] = adapter
	}
	return index
}
