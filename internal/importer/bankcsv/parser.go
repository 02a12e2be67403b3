package bankcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/budzet/internal/encoding"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// dateLayouts are the date formats seen in Polish bank exports.
var dateLayouts = []string{"2006-01-02", "02.01.2006", "02-01-2006", "2006.01.02", "02/01/2006"}

// Parser reads Polish bank CSV exports and produces income and expense
// params without a category. It auto-detects the delimiter and which bank
// format is being used by matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ledger.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for _, comma := range []rune{';', ',', '\t'} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, colMap, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, fmt.Errorf("no matching bank format found: expected date, description and amount columns")
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// colIndex maps normalised column names to their index in the row.
type colIndex map[string]int

func normaliseHeader(cell string) string {
	name := strings.TrimSpace(cell)
	name = strings.TrimPrefix(name, "#")

	return strings.ToLower(strings.TrimSpace(name))
}

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := normaliseHeader(cell); name != "" {
				if _, dup := cols[name]; !dup {
					cols[name] = i
				}
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]ledger.CreateParams, error) {
	dateIdx := cols[p.DateCol]

	var txs []ledger.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		desc := description(p, cols, row)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, kind, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		txs = append(txs, ledger.CreateParams{
			Date:        date,
			Kind:        kind,
			Description: desc,
			Amount:      amount,
		})
	}

	return txs, nil
}

func description(p *Profile, cols colIndex, row []string) string {
	parts := make([]string, 0, len(p.DescCols))

	for _, col := range p.DescCols {
		if v := strings.Join(strings.Fields(cellValue(row, cols[col])), " "); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " ")
}

// parseDate tries to parse a date from the given cell index.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount extracts the absolute amount and kind from a row based on the profile's amount mode.
func parseAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, ledger.Kind, bool) {
	switch p.AmountMode {
	case amountSingle:
		return parseSingleAmount(row, cols[p.AmountCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.DebitCol], cols[p.CreditCol])
	}

	return decimal.Zero, "", false
}

// parseSingleAmount handles a single signed amount column.
func parseSingleAmount(row []string, idx int) (decimal.Decimal, ledger.Kind, bool) {
	amount, ok := cellAmount(row, idx)
	if !ok {
		return decimal.Zero, "", false
	}

	if amount.IsNegative() {
		return amount.Neg(), ledger.KindExpense, true
	}

	return amount, ledger.KindIncome, true
}

// parseSplitAmount handles separate debit/credit columns.
func parseSplitAmount(row []string, debitIdx, creditIdx int) (decimal.Decimal, ledger.Kind, bool) {
	if amount, ok := cellAmount(row, debitIdx); ok {
		return amount.Abs(), ledger.KindExpense, true
	}

	if amount, ok := cellAmount(row, creditIdx); ok {
		return amount.Abs(), ledger.KindIncome, true
	}

	return decimal.Zero, "", false
}

// cellAmount parses a non-zero amount such as "-1 234,56" or "12.50 PLN".
func cellAmount(row []string, idx int) (decimal.Decimal, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Zero, false
	}

	amount, err := ledger.ParseAmount(s)
	if err != nil || amount.IsZero() {
		return decimal.Zero, false
	}

	return amount, true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
