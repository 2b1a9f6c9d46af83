package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"cryptofolio/internal/dto"
	"cryptofolio/internal/errors"
	"cryptofolio/internal/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PortfolioHandler serves balances, the priced portfolio view, exports and account deletion
type PortfolioHandler struct {
	portfolioService  services.PortfolioServiceInterface
	exportService     services.ExportServiceInterface
	connectionService services.ConnectionServiceInterface
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(
	portfolioService services.PortfolioServiceInterface,
	exportService services.ExportServiceInterface,
	connectionService services.ConnectionServiceInterface,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService:  portfolioService,
		exportService:     exportService,
		connectionService: connectionService,
	}
}

// GetBalances returns the stored non-zero balances of connected providers
// @Summary List balances
// @Tags Portfolio
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BalancesResponse "Balances"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /balances [get]
func (h *PortfolioHandler) GetBalances(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	balances, err := h.portfolioService.GetBalances(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BalancesResponse{Balances: balances, Count: len(balances)})
}

// GetPortfolio returns holdings aggregated across providers and valued in USD
// @Summary Portfolio summary
// @Tags Portfolio
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.PortfolioSummary "Aggregated portfolio"
// @Router /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.portfolioService.GetPortfolio(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetPrices quotes USD prices for the requested tickers
// @Summary Price lookup
// @Tags Portfolio
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PricesRequest true "Tickers to price"
// @Success 200 {object} dto.PricesResponse "Prices"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /prices [post]
func (h *PortfolioHandler) GetPrices(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.PricesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)))
	}

	tickers := normalizeTickers(req.Currencies)
	quotes := h.portfolioService.GetPrices(c.Request().Context(), tickers)

	return c.JSON(http.StatusOK, dto.NewPricesResponse(tickers, quotes))
}

// Export downloads the portfolio as an xlsx workbook
// @Summary Export portfolio
// @Tags Portfolio
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Failure 404 {object} errors.ErrorResponse "PORTFOLIO_001 - Nothing to export"
// @Router /export [get]
func (h *PortfolioHandler) Export(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filename, data, err := h.exportService.ExportWorkbook(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// DeleteAccount removes every connection and balance of the authenticated user
// @Summary Delete account data
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountDeletedResponse "Account data purged"
// @Router /account [delete]
func (h *PortfolioHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.connectionService.PurgeUser(c.Request().Context(), userID); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountDeletedResponse{
		Message: "All connections and balances were deleted",
	})
}

// normalizeTickers upper-cases and de-duplicates tickers, keeping request order.
func normalizeTickers(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	tickers := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToUpper(strings.TrimSpace(t))
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tickers = append(tickers, t)
	}
	return tickers
}
