package services

import (
	"context"
	"log/slog"
	"time"

	"cryptofolio/internal/models"

	"github.com/google/uuid"
)

// SyncLogger emits structured events for connection and sync activity.
// Credential material is never logged.
type SyncLogger struct {
	logger *slog.Logger
}

func NewSyncLogger(logger *slog.Logger) SyncLoggerInterface {
	return &SyncLogger{
		logger: logger,
	}
}

func (sl *SyncLogger) LogSyncStarted(ctx context.Context, userID uuid.UUID, provider models.Provider) {
	sl.logger.InfoContext(ctx, "balance sync started",
		slog.String("event_type", "sync_started"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogSyncCompleted(ctx context.Context, userID uuid.UUID, provider models.Provider, currencies int, durationMs int64) {
	sl.logger.InfoContext(ctx, "balance sync completed",
		slog.String("event_type", "sync_completed"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.Int("currencies", currencies),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogSyncFailed(ctx context.Context, userID uuid.UUID, provider models.Provider, errorMsg string) {
	sl.logger.WarnContext(ctx, "balance sync failed",
		slog.String("event_type", "sync_failed"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.String("error", errorMsg),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogTokenRefreshed(ctx context.Context, userID uuid.UUID, provider models.Provider, expiresAt *time.Time) {
	attrs := []slog.Attr{
		slog.String("event_type", "token_refreshed"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	}

	if expiresAt != nil {
		attrs = append(attrs, slog.Time("expires_at", *expiresAt))
	}

	sl.logger.LogAttrs(ctx, slog.LevelInfo, "oauth token refreshed", attrs...)
}

func (sl *SyncLogger) LogTokenRefreshFailed(ctx context.Context, userID uuid.UUID, provider models.Provider, reason string) {
	sl.logger.WarnContext(ctx, "oauth token refresh failed",
		slog.String("event_type", "token_refresh_failed"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.String("reason", reason),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogConnectionLinked(ctx context.Context, userID uuid.UUID, provider models.Provider) {
	sl.logger.InfoContext(ctx, "provider connected",
		slog.String("event_type", "connection_linked"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogConnectionUnlinked(ctx context.Context, userID uuid.UUID, provider models.Provider, removedBalances int64) {
	sl.logger.InfoContext(ctx, "provider disconnected",
		slog.String("event_type", "connection_unlinked"),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider.String()),
		slog.Int64("removed_balances", removedBalances),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogUserPurged(ctx context.Context, userID uuid.UUID, removedCredentials, removedBalances int64) {
	sl.logger.InfoContext(ctx, "user data purged",
		slog.String("event_type", "user_purged"),
		slog.String("user_id", userID.String()),
		slog.Int64("removed_credentials", removedCredentials),
		slog.Int64("removed_balances", removedBalances),
		slog.String("correlation_id", models.CorrelationID(ctx)),
	)
}
