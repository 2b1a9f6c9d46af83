package providers

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/shopspring/decimal"
)

var _ services.ProviderAdapter = (*LedgerAdapter)(nil)

const (
	ledgerColumnType   = "operation type"
	ledgerColumnTicker = "currency ticker"
	ledgerColumnAmount = "operation amount"

	ledgerOperationIn  = "IN"
	ledgerOperationOut = "OUT"
)

// ParseLedgerCSV totals a Ledger Live operations export per ticker. IN rows
// add, OUT rows subtract, every other operation type is ignored. Tickers with
// an underscore (token sub-accounts) are skipped. Totals keep first-seen order
// and may be zero.
func ParseLedgerCSV(content []byte) ([]models.Holding, error) {
	if countNonEmptyLines(content) < 2 {
		return nil, &models.ParseError{Reason: "file must contain a header and at least one row"}
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &models.ParseError{Line: 1, Reason: fmt.Sprintf("unreadable header: %v", err)}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}

	typeIdx, okType := columns[ledgerColumnType]
	tickerIdx, okTicker := columns[ledgerColumnTicker]
	amountIdx, okAmount := columns[ledgerColumnAmount]
	if !okType || !okTicker || !okAmount {
		return nil, &models.ParseError{
			Line:   1,
			Reason: "header must contain Operation Type, Currency Ticker and Operation Amount",
		}
	}
	width := max(typeIdx, tickerIdx, amountIdx) + 1

	totals := make(map[string]decimal.Decimal)
	var order []string

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			line := 0
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &models.ParseError{Line: line, Reason: err.Error()}
		}
		line, _ := reader.FieldPos(0)
		if len(record) < width {
			return nil, &models.ParseError{Line: line, Reason: "missing columns"}
		}

		var sign int64
		switch strings.ToUpper(strings.TrimSpace(record[typeIdx])) {
		case ledgerOperationIn:
			sign = 1
		case ledgerOperationOut:
			sign = -1
		default:
			continue
		}

		ticker := strings.ToUpper(strings.TrimSpace(record[tickerIdx]))
		if ticker == "" || strings.Contains(ticker, "_") {
			continue
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[amountIdx]))
		if err != nil {
			return nil, &models.ParseError{Line: line, Reason: fmt.Sprintf("invalid amount %q", record[amountIdx])}
		}

		if _, seen := totals[ticker]; !seen {
			order = append(order, ticker)
		}
		totals[ticker] = totals[ticker].Add(amount.Mul(decimal.NewFromInt(sign)))
	}

	holdings := make([]models.Holding, 0, len(order))
	for _, ticker := range order {
		holdings = append(holdings, models.Holding{Currency: ticker, Amount: totals[ticker]})
	}

	return holdings, nil
}

func countNonEmptyLines(content []byte) int {
	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// LedgerAdapter serves uploaded exports. It makes no network calls; every
// sync re-derives totals from the stored file content.
type LedgerAdapter struct{}

func NewLedgerAdapter() *LedgerAdapter {
	return &LedgerAdapter{}
}

func (a *LedgerAdapter) Provider() models.Provider {
	return models.ProviderLedger
}

// Validate reports parse failures as errors matching ErrParse so callers can
// show the offending line.
func (a *LedgerAdapter) Validate(ctx context.Context, payload models.CredentialPayload) (bool, error) {
	if _, err := a.FetchBalances(ctx, payload); err != nil {
		return false, err
	}
	return true, nil
}

func (a *LedgerAdapter) FetchBalances(_ context.Context, payload models.CredentialPayload) ([]models.Holding, error) {
	file, ok := payload.(*models.FileImportPayload)
	if !ok {
		return nil, models.ErrPayloadMismatch
	}
	return ParseLedgerCSV([]byte(file.Content))
}
