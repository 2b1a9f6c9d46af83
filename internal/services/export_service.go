package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"cryptofolio/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	masterSheet     = "Master"
	unknownName     = "Name Not Found"
	usdNumberFormat = "$#,##0.00"
)

// exportService implements ExportServiceInterface
type exportService struct {
	portfolio PortfolioServiceInterface
	metrics   MetricsRecorderInterface
	now       func() time.Time
	logger    *slog.Logger
}

func NewExportService(portfolio PortfolioServiceInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ExportServiceInterface {
	return &exportService{
		portfolio: portfolio,
		metrics:   metrics,
		now:       time.Now,
		logger:    logger,
	}
}

// ExportWorkbook builds an xlsx workbook with a Master sheet of aggregated
// holdings followed by one sheet per connected provider.
func (s *exportService) ExportWorkbook(ctx context.Context, userID uuid.UUID) (string, []byte, error) {
	balances, err := s.portfolio.GetBalances(ctx, userID)
	if err != nil {
		s.record("failed")
		return "", nil, err
	}
	if len(balances) == 0 {
		s.record("empty")
		return "", nil, models.ErrNoBalances
	}

	quotes := s.portfolio.GetPrices(ctx, Currencies(balances))
	generatedAt := s.now().UTC()

	data, err := buildWorkbook(balances, quotes, generatedAt)
	if err != nil {
		s.record("failed")
		s.logger.ErrorContext(ctx, "failed to build workbook",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return "", nil, err
	}

	s.record("success")
	filename := fmt.Sprintf("master_portfolio_%s.xlsx", generatedAt.Format("01-02-2006_15-04"))

	return filename, data, nil
}

func (s *exportService) record(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("exports_total", map[string]string{"status": status})
}

type columnWidth struct {
	col   string
	width float64
}

type sheetRow struct {
	currency string
	amount   decimal.Decimal
	value    decimal.Decimal
	price    decimal.Decimal
	venues   []models.Provider
}

func buildWorkbook(balances []*models.Balance, quotes models.PriceQuotes, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	stamp := generatedAt.Format("01/02/2006, 15:04")

	if err := f.SetSheetName("Sheet1", masterSheet); err != nil {
		return nil, fmt.Errorf("failed to name master sheet: %w", err)
	}

	aggregated := AggregateBalances(balances, quotes)
	masterRows := make([]sheetRow, 0, len(aggregated))
	for _, item := range aggregated {
		masterRows = append(masterRows, sheetRow{
			currency: item.Currency,
			amount:   item.TotalAmount,
			value:    item.USDValue,
			price:    item.PriceUSD,
			venues:   item.Providers,
		})
	}
	if err := writeSheet(f, masterSheet, stamp, masterRows, quotes, true); err != nil {
		return nil, err
	}

	var providers []models.Provider
	perProvider := make(map[models.Provider][]sheetRow)
	for _, balance := range balances {
		if _, ok := perProvider[balance.Provider]; !ok {
			providers = append(providers, balance.Provider)
		}
		price := quotes.PriceOf(balance.Currency)
		perProvider[balance.Provider] = append(perProvider[balance.Provider], sheetRow{
			currency: balance.Currency,
			amount:   balance.Amount,
			value:    balance.Amount.Mul(price),
			price:    price,
		})
	}

	for _, provider := range providers {
		rows := perProvider[provider]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].value.GreaterThan(rows[j].value)
		})

		sheet := provider.DisplayName()
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to add %s sheet: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, stamp, rows, quotes, false); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet, stamp string, rows []sheetRow, quotes models.PriceQuotes, master bool) error {
	header := []interface{}{"Symbol", "Name", "Amount", "Balance at " + stamp, "Price at " + stamp}
	lastCol := "E"
	if master {
		header = append(header, "Exchanges with Asset")
		lastCol = "F"
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	total := decimal.Zero
	for i, row := range rows {
		name := quotes.Names[row.currency]
		if name == "" {
			name = unknownName
		}

		values := []interface{}{
			row.currency,
			name,
			row.amount.InexactFloat64(),
			row.value.InexactFloat64(),
			row.price.InexactFloat64(),
		}
		if master {
			values = append(values, quoteProviders(row.venues))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row: %w", sheet, err)
		}

		total = total.Add(row.value)
	}

	// one blank row, then the total
	totalRow := len(rows) + 3
	totalCells := []interface{}{nil, nil, "Total Balance:", total.InexactFloat64()}
	cell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &totalCells); err != nil {
		return fmt.Errorf("failed to write %s total: %w", sheet, err)
	}

	return formatSheet(f, sheet, lastCol, totalRow, master)
}

func formatSheet(f *excelize.File, sheet, lastCol string, totalRow int, master bool) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return err
	}
	currencyFormat := usdNumberFormat
	usdStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &currencyFormat,
	})
	if err != nil {
		return err
	}

	widths := []columnWidth{{"A", 10}, {"B", 20}, {"C", 15}, {"D", 25}, {"E", 25}}
	if master {
		widths = append(widths, columnWidth{"F", 25})
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheet, "D2", fmt.Sprintf("E%d", totalRow), usdStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", lastCol, totalRow), totalStyle)
}

func quoteProviders(providers []models.Provider) string {
	quoted := make([]string, 0, len(providers))
	for _, provider := range providers {
		quoted = append(quoted, "'"+provider.String()+"'")
	}
	return strings.Join(quoted, ", ")
}
