// Package export renders the ledger as printable reports, charts and CSV.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MrJamesThe3rd/budzet/internal/importer/ledgercsv"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// Ledger is the read side of the ledger service used by exports.
type Ledger interface {
	Between(ctx context.Context, start, end time.Time) ([]*ledger.Transaction, error)
	Liabilities(ctx context.Context) ([]ledger.Liability, error)
}

// Meta is the static information printed in report headers and footers.
type Meta struct {
	AppName          string
	Version          string
	Currency         string
	CashSavingsLabel string
	MonthNames       [12]string
}

type Service struct {
	ledger Ledger
	meta   Meta
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(l Ledger, meta Meta, opts ...Option) *Service {
	s := &Service{ledger: l, meta: meta, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MonthReport writes the PDF report for one calendar month.
func (s *Service) MonthReport(ctx context.Context, year int, month time.Month, w io.Writer) error {
	start, end := ledger.MonthBounds(year, month)
	name := s.meta.MonthNames[month-1]

	return s.report(ctx, reportTitles{
		Title: fmt.Sprintf("Raport miesięczny: %s %d", name, year),
		Chart: fmt.Sprintf("Wydatki %s %d", name, year),
	}, start, end, w)
}

// YearReport writes the PDF report for a whole year.
func (s *Service) YearReport(ctx context.Context, year int, w io.Writer) error {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return s.report(ctx, reportTitles{
		Title: fmt.Sprintf("Raport roczny %d", year),
		Chart: fmt.Sprintf("Wydatki %d", year),
	}, start, end, w)
}

// MonthSummary folds one month into a Summary.
func (s *Service) MonthSummary(ctx context.Context, year int, month time.Month) (Summary, error) {
	start, end := ledger.MonthBounds(year, month)

	rows, err := s.rows(ctx, start, end)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(rows, s.meta.CashSavingsLabel), nil
}

// MonthChart renders the bar chart for one month.
func (s *Service) MonthChart(ctx context.Context, year int, month time.Month) ([]byte, error) {
	summary, err := s.MonthSummary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return Chart(summary, fmt.Sprintf("Wydatki %s %d", s.meta.MonthNames[month-1], year))
}

// CSV writes every transaction between start and end, both inclusive, in the
// format the ledger importer reads back.
func (s *Service) CSV(ctx context.Context, start, end time.Time, w io.Writer) error {
	rows, err := s.rows(ctx, start, end)
	if err != nil {
		return err
	}

	return ledgercsv.Write(w, rows)
}

func (s *Service) rows(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	txs, err := s.ledger.Between(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	rows := make([]ledger.Transaction, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, *tx)
	}

	return rows, nil
}

// MonthReportName is the suggested file name of a month report.
func MonthReportName(year int, month time.Month) string {
	return fmt.Sprintf("budzet_%d_%02d.pdf", year, month)
}

// YearReportName is the suggested file name of a year report.
func YearReportName(year int) string {
	return fmt.Sprintf("bilans_%d.pdf", year)
}

// CSVName is the suggested file name of a CSV export of [start, end].
func CSVName(start, end time.Time) string {
	return fmt.Sprintf("budzet_%s_%s.csv", start.Format("20060102"), end.Format("20060102"))
}
