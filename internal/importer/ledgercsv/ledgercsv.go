// Package ledgercsv reads and writes the application's own CSV export.
package ledgercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	enc "github.com/MrJamesThe3rd/budzet/internal/encoding"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// Record is one exported ledger row.
type Record struct {
	Date              string `csv:"date"`
	Kind              string `csv:"kind"`
	Category          string `csv:"category"`
	Description       string `csv:"description"`
	Amount            string `csv:"amount"`
	Currency          string `csv:"currency"`
	ExcludeFromWeekly bool   `csv:"exclude_from_weekly"`
}

func FromTransaction(tx ledger.Transaction) Record {
	return Record{
		Date:              tx.Date.Format(ledger.DateLayout),
		Kind:              string(tx.Kind),
		Category:          tx.Category,
		Description:       tx.Description,
		Amount:            ledger.FormatAmount(tx.Amount),
		Currency:          tx.Currency,
		ExcludeFromWeekly: tx.ExcludeFromWeekly,
	}
}

// Write encodes txs as comma-separated UTF-8 with a header row.
func Write(w io.Writer, txs []ledger.Transaction) error {
	records := make([]Record, 0, len(txs))
	for _, tx := range txs {
		records = append(records, FromTransaction(tx))
	}

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		return fmt.Errorf("writing ledger csv: %w", err)
	}

	return nil
}

// Parser reads files produced by Write. Categories are kept as exported.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ledger.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	var records []Record
	if err := gocsv.UnmarshalCSV(gocsv.DefaultCSVReader(utf8r), &records); err != nil {
		return nil, fmt.Errorf("reading ledger csv: %w", err)
	}

	params := make([]ledger.CreateParams, 0, len(records))

	for i, rec := range records {
		row := i + 2

		date, err := ledger.ParseDate(strings.TrimSpace(rec.Date))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid date %q", row, rec.Date)
		}

		kind := ledger.Kind(strings.TrimSpace(rec.Kind))
		if !kind.Valid() {
			return nil, fmt.Errorf("row %d: %w: %q", row, ledger.ErrInvalidKind, rec.Kind)
		}

		amount, err := ledger.ParseAmount(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		params = append(params, ledger.CreateParams{
			Date:              date,
			Kind:              kind,
			Category:          strings.TrimSpace(rec.Category),
			Description:       strings.TrimSpace(rec.Description),
			Amount:            amount,
			ExcludeFromWeekly: rec.ExcludeFromWeekly,
		})
	}

	return params, nil
}
