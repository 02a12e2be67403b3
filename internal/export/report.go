package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

const (
	registerRowsPerPage = 37
	descriptionMaxRunes = 35
)

var kindLabels = map[ledger.Kind]string{
	ledger.KindIncome:             "Wpływ",
	ledger.KindExpense:            "Wydatek",
	ledger.KindSavings:            "Oszcz.",
	ledger.KindLiabilityRepayment: "Spłata",
}

type reportTitles struct {
	Title string
	Chart string
}

func (s *Service) report(ctx context.Context, titles reportTitles, start, end time.Time, w io.Writer) error {
	rows, err := s.rows(ctx, start, end)
	if err != nil {
		return err
	}

	liabilities, err := s.ledger.Liabilities(ctx)
	if err != nil {
		return fmt.Errorf("listing liabilities: %w", err)
	}

	summary := Summarize(rows, s.meta.CashSavingsLabel)

	png, err := Chart(summary, titles.Chart)
	if err != nil && !errors.Is(err, ErrNoChartData) {
		return err
	}

	pdf := s.newDocument(titles.Title)

	s.summaryPage(pdf, titles.Title, summary, liabilities)
	s.registerPages(pdf, rows)
	chartPage(pdf, png)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	return nil
}

func (s *Service) summaryPage(pdf *fpdf.Fpdf, title string, summary Summary, liabilities []ledger.Liability) {
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 20)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, "Data: "+s.now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	amountHeader := fmt.Sprintf("Kwota (%s)", s.meta.Currency)

	heading(pdf, "PRZYCHODY:")
	table(pdf, []string{"Źródło", amountHeader}, []float64{80, 40}, breakdownRows(summary.Income), fillIncome, 7)
	pdf.Ln(6)

	heading(pdf, "WYDATKI:")
	table(pdf, []string{"Kategoria", amountHeader}, []float64{80, 40}, breakdownRows(summary.Expenses), fillExpense, 7)
	pdf.Ln(6)

	if summary.Repayments.Len() > 0 {
		remaining := make(map[string]string, len(liabilities))
		for _, l := range liabilities {
			remaining[l.Name] = ledger.FormatAmount(l.Remaining())
		}

		var rows [][]string

		for _, e := range summary.Repayments.Entries() {
			left, ok := remaining[e.Label]
			if !ok {
				left = ledger.FormatAmount(decimal.Zero)
			}

			rows = append(rows, []string{e.Label, ledger.FormatAmount(e.Amount), left})
		}

		rows = append(rows, []string{"SUMA", ledger.FormatAmount(summary.Repayments.Total()), ""})

		heading(pdf, "SPŁATA ZOBOWIĄZAŃ:")
		table(pdf, []string{"Komu", "Wpłacono", "Pozostało"}, []float64{60, 40, 40}, rows, fillLiability, 7)
		pdf.Ln(6)
	}

	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Oszczędności (gotówka): %s %s", ledger.FormatAmount(summary.CashSavings), s.meta.Currency), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Wpłaty na cele: %s %s", ledger.FormatAmount(summary.GoalSavings), s.meta.Currency), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Bilans: %s %s", ledger.FormatAmount(summary.Net()), s.meta.Currency), "", 1, "L", false, 0, "")
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
}

func breakdownRows(b aggregate.Breakdown) [][]string {
	rows := make([][]string, 0, b.Len()+1)
	for _, e := range b.Entries() {
		rows = append(rows, []string{e.Label, ledger.FormatAmount(e.Amount)})
	}

	return append(rows, []string{"SUMA", ledger.FormatAmount(b.Total())})
}

// registerPages lists every row, registerRowsPerPage per page, each page
// repeating the header.
func (s *Service) registerPages(pdf *fpdf.Fpdf, rows []ledger.Transaction) {
	headers := []string{"Data", "Typ", "Kategoria", "Opis", "Kwota"}
	widths := []float64{25, 22, 40, 58, 25}

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, "REJESTR SZCZEGÓŁOWY", "", 1, "L", false, 0, "")

	for start := 0; ; start += registerRowsPerPage {
		end := min(start+registerRowsPerPage, len(rows))

		cells := make([][]string, 0, end-start)
		for _, tx := range rows[start:end] {
			cells = append(cells, registerRow(tx))
		}

		pdf.SetFont(fontFamily, "", 8)
		table(pdf, headers, widths, cells, fillRegister, 6)

		if end >= len(rows) {
			break
		}

		pdf.AddPage()
	}
}

func registerRow(tx ledger.Transaction) []string {
	kind, ok := kindLabels[tx.Kind]
	if !ok {
		kind = string(tx.Kind)
	}

	desc := []rune(tx.Description)
	if len(desc) > descriptionMaxRunes {
		desc = desc[:descriptionMaxRunes]
	}

	return []string{
		tx.Date.Format(ledger.DateLayout),
		kind,
		tx.Category,
		string(desc),
		ledger.FormatAmount(tx.Amount),
	}
}

func chartPage(pdf *fpdf.Fpdf, png []byte) {
	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 12, "WIZUALIZACJA FINANSÓW", "", 1, "L", false, 0, "")

	if png == nil {
		pdf.SetFont(fontFamily, "", 12)
		pdf.CellFormat(0, 10, "Brak danych", "", 1, "C", false, 0, "")

		return
	}

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(png))
	pdf.ImageOptions("chart", marginLeft, pdf.GetY()+5, 170, 0, false, opts, 0, "")
}
