package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cryptofolio/internal/models"
	"cryptofolio/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ExportServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	portfolio *service_mocks.MockPortfolioServiceInterface
	service   *exportService
	userID    uuid.UUID
}

func (s *ExportServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.portfolio = service_mocks.NewMockPortfolioServiceInterface(s.ctrl)

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter("exports_total", gomock.Any()).AnyTimes()

	s.service = NewExportService(s.portfolio, metrics, discardLogger()).(*exportService)
	s.service.now = func() time.Time { return time.Date(2025, 2, 3, 14, 5, 0, 0, time.UTC) }
	s.userID = uuid.New()
}

func (s *ExportServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) TestExportWorkbook_MasterAndProviderSheets() {
	s.portfolio.EXPECT().GetBalances(gomock.Any(), s.userID).Return([]*models.Balance{
		balance(models.ProviderCoinbase, "BTC", "0.5"),
		balance(models.ProviderCoinbase, "PEPE", "1000"),
		balance(models.ProviderGemini, "BTC", "0.3"),
	}, nil)
	s.portfolio.EXPECT().GetPrices(gomock.Any(), []string{"BTC", "PEPE"}).
		Return(quotes(map[string]string{"BTC": "50000"}, map[string]string{"BTC": "Bitcoin"}))

	filename, data, err := s.service.ExportWorkbook(context.Background(), s.userID)
	s.Require().NoError(err)
	s.Equal("master_portfolio_02-03-2025_14-05.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	s.Equal([]string{"Master", "Coinbase", "Gemini"}, f.GetSheetList())

	cell := func(sheet, axis string) string {
		value, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
		s.Require().NoError(err)
		return value
	}

	s.Equal("Symbol", cell("Master", "A1"))
	s.Equal("Balance at 02/03/2025, 14:05", cell("Master", "D1"))
	s.Equal("Exchanges with Asset", cell("Master", "F1"))

	s.Equal("BTC", cell("Master", "A2"))
	s.Equal("Bitcoin", cell("Master", "B2"))
	s.Equal("0.8", cell("Master", "C2"))
	s.Equal("40000", cell("Master", "D2"))
	s.Equal("'coinbase', 'gemini'", cell("Master", "F2"))

	s.Equal("PEPE", cell("Master", "A3"))
	s.Equal(unknownName, cell("Master", "B3"))

	s.Equal("Total Balance:", cell("Master", "C5"))
	s.Equal("40000", cell("Master", "D5"))

	s.Equal("", cell("Coinbase", "F1"))
	s.Equal("BTC", cell("Coinbase", "A2"))
	s.Equal("25000", cell("Coinbase", "D2"))
	s.Equal("Total Balance:", cell("Coinbase", "C5"))

	s.Equal("BTC", cell("Gemini", "A2"))
	s.Equal("15000", cell("Gemini", "D4"))
}

func (s *ExportServiceSuite) TestExportWorkbook_NoBalances() {
	s.portfolio.EXPECT().GetBalances(gomock.Any(), s.userID).Return([]*models.Balance{}, nil)

	_, _, err := s.service.ExportWorkbook(context.Background(), s.userID)
	s.ErrorIs(err, models.ErrNoBalances)
}
