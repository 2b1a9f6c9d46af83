package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"
	"cryptofolio/internal/repositories"

	"github.com/google/uuid"
)

const defaultSyncInterval = 15 * time.Minute

// SyncScheduler periodically syncs every stored connection. A failing
// connection is logged and retried on the next pass.
type SyncScheduler struct {
	credentialRepo  repositories.CredentialRepositoryInterface
	reconciler      ReconciliationServiceInterface
	metrics         MetricsRecorderInterface
	interval        time.Duration
	maxWorkers      int
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewSyncScheduler(
	credentialRepo repositories.CredentialRepositoryInterface,
	reconciler ReconciliationServiceInterface,
	syncConfig *config.SyncConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SyncSchedulerInterface {
	maxWorkers := syncConfig.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	interval := syncConfig.Interval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &SyncScheduler{
		credentialRepo:  credentialRepo,
		reconciler:      reconciler,
		metrics:         metrics,
		interval:        interval,
		maxWorkers:      maxWorkers,
		workerSemaphore: make(chan struct{}, maxWorkers),
		logger:          logger,
	}
}

// Start runs a pass every interval until ctx is cancelled. The pass in
// flight is allowed to finish.
func (s *SyncScheduler) Start(ctx context.Context) {
	s.logger.Info("starting sync scheduler",
		slog.Duration("interval", s.interval),
		slog.Int("max_workers", s.maxWorkers),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync scheduler stopped")
			return

		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				s.logger.Error("scheduled sync pass failed",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// RunOnce syncs every stored (user, provider) pair with at most maxWorkers
// syncs in flight. A worker slot is taken before each goroutine starts, and
// dispatch stops once ctx is done. Only a failure to list connections is returned.
func (s *SyncScheduler) RunOnce(ctx context.Context) error {
	credentials, err := s.credentialRepo.ListAll(ctx)
	if err != nil {
		s.record("failed")
		return fmt.Errorf("failed to list connections: %w", err)
	}

	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)

dispatch:
	for _, credential := range credentials {
		select {
		case s.workerSemaphore <- struct{}{}:
		case <-ctx.Done():
			break dispatch
		}
		if ctx.Err() != nil {
			<-s.workerSemaphore
			break dispatch
		}

		wg.Add(1)
		go func(userID uuid.UUID, provider models.Provider) {
			defer wg.Done()
			defer func() { <-s.workerSemaphore }()

			syncCtx := models.WithCorrelationID(ctx, "scheduler-"+uuid.NewString())
			if err := s.reconciler.Sync(syncCtx, userID, provider); err != nil {
				failed.Add(1)
				s.logger.Warn("scheduled sync failed",
					slog.String("user_id", userID.String()),
					slog.String("provider", provider.String()),
					slog.String("error", err.Error()),
				)
			}
		}(credential.UserID, credential.Provider)
	}

	wg.Wait()

	status := "success"
	if failed.Load() > 0 {
		status = "partial"
	}
	s.record(status)

	s.logger.Info("scheduled sync pass completed",
		slog.Int("connections", len(credentials)),
		slog.Int64("failed", failed.Load()),
	)

	return nil
}

func (s *SyncScheduler) record(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("scheduler_runs_total", map[string]string{"status": status})
}
