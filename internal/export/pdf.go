package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2/roboto"
)

const (
	fontFamily = "roboto"
	marginLeft = 20.0
)

// newDocument returns an A4 portrait document with a Unicode font and the
// "date | page | app" footer.
func (s *Service) newDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator(s.meta.AppName+" "+s.meta.Version, true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", roboto.Roboto)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", roboto.Roboto)
	pdf.SetMargins(marginLeft, 20, marginLeft)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	printed := s.now().Format("2006-01-02")
	app := fmt.Sprintf("%s %s", s.meta.AppName, s.meta.Version)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetTextColor(128, 128, 128)

		pdf.CellFormat(0, 10, "Data: "+printed, "", 0, "L", false, 0, "")
		pdf.SetX(marginLeft)
		pdf.CellFormat(0, 10, fmt.Sprintf("Strona %d z {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetX(marginLeft)
		pdf.CellFormat(0, 10, app, "", 0, "R", false, 0, "")

		pdf.SetTextColor(0, 0, 0)
	})

	return pdf
}

type rgb struct{ r, g, b int }

var (
	fillIncome    = rgb{96, 96, 96}
	fillExpense   = rgb{178, 34, 34}
	fillLiability = rgb{51, 51, 153}
	fillRegister  = rgb{211, 211, 211}
)

// table draws a bordered table with a filled header row. A header fill other
// than the light register grey gets white header text.
func table(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string, fill rgb, rowHeight float64) {
	pdf.SetFillColor(fill.r, fill.g, fill.b)

	if fill != fillRegister {
		pdf.SetTextColor(255, 255, 255)
	}

	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)

	for _, row := range rows {
		for i, cell := range row {
			align := "L"
			if i > 0 && i == len(row)-1 {
				align = "R"
			}

			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, align, false, 0, "")
		}

		pdf.Ln(-1)
	}
}
