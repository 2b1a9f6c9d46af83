package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"cryptofolio/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncLogger_WritesStructuredEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSyncLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	userID := uuid.New()
	ctx := models.WithCorrelationID(context.Background(), "trace-1")
	expiresAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	logger.LogTokenRefreshed(ctx, userID, models.ProviderCoinbase, &expiresAt)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "oauth token refreshed", entry["msg"])
	assert.Equal(t, "token_refreshed", entry["event_type"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, "coinbase", entry["provider"])
	assert.Equal(t, "trace-1", entry["correlation_id"])
	assert.Equal(t, "2026-01-01T00:00:00Z", entry["expires_at"])
}

func TestSyncLogger_SyncFailedIsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSyncLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger.LogSyncFailed(context.Background(), uuid.New(), models.ProviderGemini, "provider request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "", entry["correlation_id"])
	assert.Equal(t, "provider request failed", entry["error"])
}
