package services

import (
	"io"
	"log/slog"

	"cryptofolio/internal/services/service_mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// refreshableAdapter satisfies both ProviderAdapter and TokenRefresher.
type refreshableAdapter struct {
	*service_mocks.MockProviderAdapter
	*service_mocks.MockTokenRefresher
}
