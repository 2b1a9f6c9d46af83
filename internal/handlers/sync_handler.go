package handlers

import (
	"net/http"

	"cryptofolio/internal/dto"
	"cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/labstack/echo/v4"
)

// SyncHandler triggers on-demand balance reconciliation
type SyncHandler struct {
	reconciliationService services.ReconciliationServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(reconciliationService services.ReconciliationServiceInterface) *SyncHandler {
	return &SyncHandler{reconciliationService: reconciliationService}
}

// SyncAll refreshes balances from every connected provider
// @Summary Sync all providers
// @Description Failures are reported per provider; one failing provider does not stop the others
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SyncResponse "Per-provider outcome"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /sync [post]
func (h *SyncHandler) SyncAll(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	results, err := h.reconciliationService.SyncAll(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSyncResponse(results, describeServiceError))
}

// SyncProvider refreshes balances from one provider
// @Summary Sync one provider
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Param provider path string true "coinbase, gemini or ledger"
// @Success 200 {object} dto.SyncResponse "Provider synced"
// @Failure 400 {object} errors.ErrorResponse "CONNECTION_005 - Unsupported provider"
// @Failure 409 {object} errors.ErrorResponse "CONNECTION_001 / CONNECTION_004 - Not connected or reconnect required"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_001 / PROVIDER_002 - Provider failure"
// @Router /sync/{provider} [post]
func (h *SyncHandler) SyncProvider(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	provider, err := models.ParseProvider(c.Param("provider"))
	if err != nil {
		return SendError(c, errors.ConnectionUnsupportedProvider, errors.WithDetails(c.Param("provider")))
	}

	if err := h.reconciliationService.Sync(c.Request().Context(), userID, provider); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSyncResponse(map[models.Provider]error{provider: nil}, describeServiceError))
}
