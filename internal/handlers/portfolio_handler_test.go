package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cryptofolio/internal/dto"
	apierrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PortfolioHandlerSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	portfolioService  *service_mocks.MockPortfolioServiceInterface
	exportService     *service_mocks.MockExportServiceInterface
	connectionService *service_mocks.MockConnectionServiceInterface
	handler           *PortfolioHandler
	echo              *echo.Echo
	testUserID        uuid.UUID
}

func (s *PortfolioHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.portfolioService = service_mocks.NewMockPortfolioServiceInterface(s.ctrl)
	s.exportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.connectionService = service_mocks.NewMockConnectionServiceInterface(s.ctrl)
	s.handler = NewPortfolioHandler(s.portfolioService, s.exportService, s.connectionService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.testUserID = uuid.New()
}

func (s *PortfolioHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPortfolioHandlerSuite(t *testing.T) {
	suite.Run(t, new(PortfolioHandlerSuite))
}

func (s *PortfolioHandlerSuite) TestGetBalances() {
	amount := decimal.NewFromFloat(gofakeit.Float64Range(0.01, 100))
	balances := []*models.Balance{{
		ID:        uuid.New(),
		UserID:    s.testUserID,
		Provider:  models.ProviderGemini,
		Currency:  "ETH",
		Amount:    amount,
		UpdatedAt: time.Now().UTC(),
	}}
	s.portfolioService.EXPECT().GetBalances(gomock.Any(), s.testUserID).Return(balances, nil)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/balances", nil, s.testUserID)

	s.Require().NoError(s.handler.GetBalances(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BalancesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Count)
	s.Equal("ETH", resp.Balances[0].Currency)
	s.True(amount.Equal(resp.Balances[0].Amount))
}

func (s *PortfolioHandlerSuite) TestGetPortfolio() {
	summary := &models.PortfolioSummary{
		Balances: []models.AggregatedBalance{{
			Currency:    "BTC",
			Name:        "Bitcoin",
			TotalAmount: decimal.RequireFromString("0.8"),
			Providers:   []models.Provider{models.ProviderCoinbase, models.ProviderGemini},
			PriceUSD:    decimal.NewFromInt(50000),
			USDValue:    decimal.NewFromInt(40000),
		}},
		TotalUSD:        decimal.NewFromInt(40000),
		TotalUSDDisplay: "$40,000.00",
		GeneratedAt:     time.Now().UTC(),
	}
	s.portfolioService.EXPECT().GetPortfolio(gomock.Any(), s.testUserID).Return(summary, nil)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/portfolio", nil, s.testUserID)

	s.Require().NoError(s.handler.GetPortfolio(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp models.PortfolioSummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("$40,000.00", resp.TotalUSDDisplay)
	s.Equal([]models.Provider{models.ProviderCoinbase, models.ProviderGemini}, resp.Balances[0].Providers)
}

func (s *PortfolioHandlerSuite) TestGetPrices_NormalizesTickers() {
	quotes := models.NewPriceQuotes()
	quotes.Prices["BTC"] = decimal.NewFromInt(50000)
	quotes.Names["BTC"] = "Bitcoin"

	s.portfolioService.EXPECT().
		GetPrices(gomock.Any(), []string{"BTC", "XYZ"}).
		Return(quotes)

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/prices", dto.PricesRequest{
		Currencies: []string{"btc", " BTC ", "xyz"},
	}, s.testUserID)

	s.Require().NoError(s.handler.GetPrices(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.PricesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Bitcoin", resp.Prices["BTC"].Name)
	s.Equal([]string{"XYZ"}, resp.Unknown)
}

func (s *PortfolioHandlerSuite) TestGetPrices_Validation() {
	testCases := map[string][]string{
		"empty list":     {},
		"invalid ticker": {"BTC/USD"},
	}

	for name, currencies := range testCases {
		s.Run(name, func() {
			c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/prices", dto.PricesRequest{Currencies: currencies}, s.testUserID)

			s.Require().NoError(s.handler.GetPrices(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(apierrors.ValidationGeneral), decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *PortfolioHandlerSuite) TestExport_SendsWorkbook() {
	data := []byte("PK\x03\x04workbook")
	s.exportService.EXPECT().
		ExportWorkbook(gomock.Any(), s.testUserID).
		Return("master_portfolio_05-01-2024_12-00.xlsx", data, nil)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/export", nil, s.testUserID)

	s.Require().NoError(s.handler.Export(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="master_portfolio_05-01-2024_12-00.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal(data, rec.Body.Bytes())
}

func (s *PortfolioHandlerSuite) TestExport_NoBalances() {
	s.exportService.EXPECT().ExportWorkbook(gomock.Any(), s.testUserID).Return("", nil, models.ErrNoBalances)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/export", nil, s.testUserID)

	s.Require().NoError(s.handler.Export(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.PortfolioNoBalances), decodeError(s.T(), rec).Error.Code)
}

func (s *PortfolioHandlerSuite) TestDeleteAccount() {
	s.connectionService.EXPECT().PurgeUser(gomock.Any(), s.testUserID).Return(nil)

	c, rec := newJSONContext(s.echo, http.MethodDelete, "/api/v1/account", nil, s.testUserID)

	s.Require().NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestDeleteAccount_Unauthenticated() {
	c, rec := newJSONContext(s.echo, http.MethodDelete, "/api/v1/account", nil, uuid.Nil)

	s.Require().NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
