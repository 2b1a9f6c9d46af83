package handlers

import (
	"errors"
	"log/slog"

	apierrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"

	"github.com/labstack/echo/v4"
)

// serviceErrorCodes is checked in order; the first sentinel matched by errors.Is wins.
// ErrRefreshFailed precedes ErrRemoteUnavailable because refresh failures may wrap both.
var serviceErrorCodes = []struct {
	target error
	code   apierrors.ErrorCode
}{
	{models.ErrAuthRequired, apierrors.AuthMissingToken},
	{models.ErrUnsupportedProvider, apierrors.ConnectionUnsupportedProvider},
	{models.ErrNotConnected, apierrors.ConnectionNotConnected},
	{models.ErrNotFound, apierrors.ConnectionNotFound},
	{models.ErrInvalidCredentials, apierrors.ConnectionInvalidCredentials},
	{models.ErrReconnectRequired, apierrors.ConnectionReconnectRequired},
	{models.ErrRefreshFailed, apierrors.ProviderRefreshFailed},
	{models.ErrRemoteUnavailable, apierrors.ProviderUnavailable},
	{models.ErrParse, apierrors.ImportParseError},
	{models.ErrNoBalances, apierrors.PortfolioNoBalances},
	{models.ErrPersistence, apierrors.SystemDatabaseError},
}

// errorCodeFor maps a service error to its API error code.
func errorCodeFor(err error) (apierrors.ErrorCode, bool) {
	for _, entry := range serviceErrorCodes {
		if errors.Is(err, entry.target) {
			return entry.code, true
		}
	}
	return "", false
}

// describeServiceError returns the client-safe message for a service error.
func describeServiceError(err error) string {
	code, ok := errorCodeFor(err)
	if !ok {
		code = apierrors.SystemInternalError
	}
	return apierrors.GetErrorMessage(code)
}

// sendServiceError writes the response for an error returned by a service.
// Parse failures keep their detail since it points at the offending CSV line.
func sendServiceError(c echo.Context, err error) error {
	code, ok := errorCodeFor(err)
	if !ok {
		return SendSystemError(c, err)
	}

	switch code {
	case apierrors.ImportParseError:
		return SendError(c, code, apierrors.WithDetails(err.Error()))
	case apierrors.SystemDatabaseError:
		slog.ErrorContext(c.Request().Context(), "persistence failed",
			slog.String("trace_id", getTraceID(c)),
			slog.Any("error", err),
		)
	}

	return SendError(c, code)
}
