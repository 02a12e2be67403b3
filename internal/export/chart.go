package export

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoChartData is returned when every charted amount is zero or negative.
var ErrNoChartData = errors.New("nothing to chart")

var (
	colorIncome    = drawing.ColorFromHex("27ae60")
	colorExpense   = drawing.ColorFromHex("e74c3c")
	colorRepayment = drawing.ColorFromHex("8e44ad")
	colorSavings   = drawing.ColorFromHex("2980b9")
)

// Chart draws a PNG bar chart: income, expenses from smallest to largest,
// liability repayments and cash savings.
func Chart(s Summary, title string) ([]byte, error) {
	bars := chartBars(s)
	if len(bars) == 0 {
		return nil, ErrNoChartData
	}

	highest := 0.0
	for _, b := range bars {
		highest = max(highest, b.Value)
	}

	graph := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 20}},
		Width:      max(1024, 110*len(bars)),
		Height:     600,
		BarWidth:   60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: highest * 1.1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}

	return buf.Bytes(), nil
}

func chartBars(s Summary) []chart.Value {
	var bars []chart.Value

	add := func(label string, amount float64, color drawing.Color) {
		if amount <= 0 {
			return
		}

		bars = append(bars, chart.Value{
			Label: label,
			Value: amount,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	add("PRZYCHODY", s.Income.Total().InexactFloat64(), colorIncome)

	expenses := s.Expenses.Entries()
	sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].Amount.LessThan(expenses[j].Amount) })

	for _, e := range expenses {
		add(e.Label, e.Amount.InexactFloat64(), colorExpense)
	}

	add("Spłata długów", s.Repayments.Total().InexactFloat64(), colorRepayment)
	add("Oszcz. gotówka", s.CashSavings.InexactFloat64(), colorSavings)

	return bars
}
