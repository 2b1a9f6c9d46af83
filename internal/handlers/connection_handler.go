package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"cryptofolio/internal/dto"
	"cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	oauthStateCookie = "coinbase_oauth_state"
	oauthStateMaxAge = 10 * time.Minute
)

// ConnectionHandler handles linking and unlinking of provider connections
type ConnectionHandler struct {
	connectionService services.ConnectionServiceInterface
	maxUploadBytes    int64
	secureCookies     bool
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connectionService services.ConnectionServiceInterface, maxUploadBytes int64, secureCookies bool) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
		maxUploadBytes:    maxUploadBytes,
		secureCookies:     secureCookies,
	}
}

// GetStatus reports the connection state of every supported provider
// @Summary Connection status
// @Description List every supported provider with its connection state
// @Tags Connections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ConnectionStatusResponse "Connection status per provider"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /connections [get]
func (h *ConnectionHandler) GetStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	status, err := h.connectionService.Status(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewConnectionStatusResponse(status))
}

// AuthorizeCoinbase returns the coinbase consent URL and stores the state in a cookie
// @Summary Coinbase consent URL
// @Tags Connections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AuthorizeURLResponse "Consent URL"
// @Failure 400 {object} errors.ErrorResponse "CONNECTION_005 - OAuth is not configured"
// @Router /connections/coinbase/authorize [get]
func (h *ConnectionHandler) AuthorizeCoinbase(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	state := uuid.NewString()
	url, err := h.connectionService.AuthorizeURL(state)
	if err != nil {
		return sendServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int(oauthStateMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, dto.AuthorizeURLResponse{URL: url, State: state})
}

// CoinbaseCallback completes the OAuth flow by exchanging the authorization code
// @Summary Coinbase OAuth callback
// @Description Exchange the authorization code for tokens and link the coinbase account
// @Tags Connections
// @Security BearerAuth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State returned by the authorize endpoint"
// @Success 201 {object} dto.ConnectionResponse "Coinbase connected"
// @Failure 400 {object} errors.ErrorResponse "CONNECTION_006 - State mismatch"
// @Failure 422 {object} errors.ErrorResponse "CONNECTION_003 - Authorization code rejected"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_002 - Coinbase unreachable"
// @Router /connections/coinbase/callback [get]
func (h *ConnectionHandler) CoinbaseCallback(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if reason := c.QueryParam("error"); reason != "" {
		return SendError(c, errors.ConnectionInvalidCredentials, errors.WithDetails(reason))
	}

	code := c.QueryParam("code")
	if code == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("code is required"))
	}

	state := c.QueryParam("state")
	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || cookie.Value != state {
		return SendError(c, errors.ConnectionInvalidState)
	}
	h.clearStateCookie(c)

	if err := h.connectionService.ConnectOAuth(c.Request().Context(), userID, code); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ConnectionResponse{
		Provider: models.ProviderCoinbase,
		Message:  "Coinbase connected successfully",
	})
}

// ConnectGemini links a gemini API key pair after testing it against the exchange
// @Summary Connect gemini
// @Tags Connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConnectGeminiRequest true "Gemini API key pair"
// @Success 201 {object} dto.ConnectionResponse "Gemini connected"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "CONNECTION_003 - Gemini rejected the key"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_002 - Gemini unreachable"
// @Router /connections/gemini [post]
func (h *ConnectionHandler) ConnectGemini(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ConnectGeminiRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)))
	}

	payload := &models.APIKeyPayload{
		APIKey:    strings.TrimSpace(req.APIKey),
		APISecret: strings.TrimSpace(req.APISecret),
	}
	if err := h.connectionService.Connect(c.Request().Context(), userID, payload); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ConnectionResponse{
		Provider: models.ProviderGemini,
		Message:  "Gemini connected successfully",
	})
}

// UploadLedger imports a Ledger Live operations CSV export
// @Summary Upload ledger export
// @Tags Connections
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Ledger Live operations CSV"
// @Success 201 {object} dto.ConnectionResponse "Ledger imported"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_002 - Missing or empty file"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_003 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001 - File could not be parsed"
// @Router /connections/ledger [post]
func (h *ConnectionHandler) UploadLedger(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ImportMissingFile)
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("file must be a .csv export"))
	}
	if file.Size == 0 {
		return SendError(c, errors.ImportMissingFile, errors.WithDetails("file is empty"))
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return SendError(c, errors.ImportFileTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return SendSystemError(c, err)
	}

	payload := &models.FileImportPayload{
		SourceFilename: filepath.Base(file.Filename),
		ImportedAt:     time.Now().UTC(),
		Content:        string(content),
	}
	if err := h.connectionService.Connect(c.Request().Context(), userID, payload); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ConnectionResponse{
		Provider: models.ProviderLedger,
		Message:  "Ledger export imported successfully",
	})
}

// Unlink removes a provider connection together with its balances
// @Summary Unlink provider
// @Tags Connections
// @Security BearerAuth
// @Produce json
// @Param provider path string true "coinbase, gemini or ledger"
// @Success 200 {object} dto.ConnectionResponse "Provider unlinked"
// @Failure 400 {object} errors.ErrorResponse "CONNECTION_005 - Unsupported provider"
// @Failure 404 {object} errors.ErrorResponse "CONNECTION_002 - Provider was not connected"
// @Router /connections/{provider} [delete]
func (h *ConnectionHandler) Unlink(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	provider, err := models.ParseProvider(c.Param("provider"))
	if err != nil {
		return SendError(c, errors.ConnectionUnsupportedProvider, errors.WithDetails(c.Param("provider")))
	}

	if err := h.connectionService.Unlink(c.Request().Context(), userID, provider); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ConnectionResponse{
		Provider: provider,
		Message:  provider.DisplayName() + " disconnected successfully",
	})
}

func (h *ConnectionHandler) clearStateCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
