package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/MrJamesThe3rd/budzet/internal/shopping"
)

// UnassignedStore heads the items bought anywhere.
const UnassignedStore = "POZOSTAŁE"

const (
	shopMargin    = 10.0
	shopColumns   = 4
	shopColGap    = 2.0
	shopRowHeight = 5.0
	shopBoxSize   = 2.8
	shopFontSize  = 9.0
)

// shoppingLayout flows store groups top to bottom through four columns,
// starting a new page when the last column is full.
type shoppingLayout struct {
	pdf      *fpdf.Fpdf
	colWidth float64
	top      float64
	bottom   float64
	col      int
	y        float64
}

func (l *shoppingLayout) x() float64 {
	return shopMargin + float64(l.col)*l.colWidth
}

func (l *shoppingLayout) reserve(height float64) {
	if l.y+height <= l.bottom {
		return
	}

	l.col++
	l.y = l.top

	if l.col >= shopColumns {
		l.pdf.AddPage()
		l.pdf.SetFont(fontFamily, "", shopFontSize)
		l.col = 0
	}
}

// ShoppingList writes a printable checklist of the list grouped by store.
func (s *Service) ShoppingList(list shopping.List, items []shopping.Item, w io.Writer) error {
	pdf := s.newDocument(list.Name)
	pdf.SetMargins(shopMargin, shopMargin, shopMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	l := &shoppingLayout{
		pdf:      pdf,
		colWidth: (pageW - 2*shopMargin) / shopColumns,
		top:      shopMargin + 8,
		bottom:   pageH - 20,
	}
	l.y = l.top

	pdf.SetFont(fontFamily, "B", 10)
	title := strings.ToUpper(list.Name)
	pdf.Text(shopMargin, shopMargin+3, title)
	pdf.Line(shopMargin, shopMargin+4, shopMargin+pdf.GetStringWidth(title), shopMargin+4)

	inner := l.colWidth - shopColGap

	for _, group := range shopping.GroupByStore(items, UnassignedStore) {
		l.reserve(2 * shopRowHeight)

		pdf.SetFont(fontFamily, "B", shopFontSize)
		store := strings.ToUpper(group.Store)
		pdf.Text(l.x(), l.y+3, store)
		pdf.SetLineWidth(0.2)
		pdf.Line(l.x(), l.y+3.6, l.x()+pdf.GetStringWidth(store), l.y+3.6)
		l.y += shopRowHeight + 1

		pdf.SetFont(fontFamily, "", shopFontSize)

		for _, item := range group.Items {
			l.reserve(shopRowHeight)
			shoppingRow(pdf, l.x(), l.y, inner, item)
			l.y += shopRowHeight
		}

		l.y += 1
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	return nil
}

// shoppingRow prints "PRODUCT ....... qty [ ]" inside a column of width.
func shoppingRow(pdf *fpdf.Fpdf, x, y, width float64, item shopping.Item) {
	right := x + width
	baseline := y + 3

	pdf.SetLineWidth(0.3)
	pdf.Rect(right-shopBoxSize, y+0.6, shopBoxSize, shopBoxSize, "D")

	if item.Checked {
		pdf.Line(right-shopBoxSize, y+0.6, right, y+0.6+shopBoxSize)
		pdf.Line(right-shopBoxSize, y+0.6+shopBoxSize, right, y+0.6)
	}

	qty := strings.ToLower(item.Quantity)
	qtyRight := right - shopBoxSize - 1
	qtyX := qtyRight - pdf.GetStringWidth(qty)
	pdf.Text(qtyX, baseline, qty)

	product := []rune(strings.ToUpper(item.Product))
	maxWidth := qtyX - x - 1.5

	for len(product) > 0 && pdf.GetStringWidth(string(product)) > maxWidth {
		product = product[:len(product)-1]
	}

	pdf.Text(x, baseline, string(product))

	dotsStart := x + pdf.GetStringWidth(string(product)) + 0.5
	if space := qtyX - 0.5 - dotsStart; space > 0 {
		if n := int(space / pdf.GetStringWidth(".")); n > 0 {
			pdf.Text(dotsStart, baseline, strings.Repeat(".", n))
		}
	}
}

// ShoppingListName is the suggested file name of a shopping list PDF.
func ShoppingListName(list shopping.List) string {
	safe := strings.NewReplacer("/", "_", " ", "_").Replace(list.Name)
	return fmt.Sprintf("zakupy_%s_%s.pdf", safe, list.CreatedAt.Format("150405"))
}
