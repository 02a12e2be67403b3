package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budzet/internal/export"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type exportState int

const (
	exportStateOptions exportState = iota
	exportStateTimeframe
	exportStateExporting
	exportStateResult
)

type exportKind string

const (
	exportMonthReport exportKind = "month"
	exportYearReport  exportKind = "year"
	exportMonthChart  exportKind = "chart"
	exportCSV         exportKind = "csv"
)

// ExportModel writes PDF reports, the expense chart or a CSV file to disk.
type ExportModel struct {
	CommonModel
	exportService *export.Service
	monthNames    [12]string
	currency      string

	state           exportState
	err             error
	form            *huh.Form
	fields          *exportFields
	timeframePicker TimeframePicker
	spinner         spinner.Model

	path    string
	summary string
}

type exportFields struct {
	kind   exportKind
	period string
	dir    string
}

func NewExportModel(svc *export.Service, monthNames [12]string, currency string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	m := ExportModel{
		exportService:   svc,
		monthNames:      monthNames,
		currency:        currency,
		timeframePicker: NewTimeframePicker(TimeframeThisWeek),
		spinner:         s,
	}
	m.buildOptionsForm()

	return m
}

func (m ExportModel) Title() string { return "Eksport" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: wróć do menu"
	case exportStateExporting:
		return "Eksportowanie..."
	}

	return "Esc: wróć | Enter: zatwierdź"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tfMsg, ok := msg.(TimeframeSelectedMsg); ok {
		m.state = exportStateExporting
		m.err = nil

		return m, tea.Batch(m.spinner.Tick, m.runCSVCmd(tfMsg.Start, tfMsg.End, m.fields.dir))
	}

	switch m.state {
	case exportStateOptions:
		return m.updateOptions(msg)
	case exportStateTimeframe:
		return m.updateTimeframe(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	f := *m.fields

	if f.kind == exportCSV {
		m.state = exportStateTimeframe
		m.timeframePicker.Reset()

		return m, nil
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runReportCmd(f))
}

func (m ExportModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
		return m, Back
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.path = result.path
		m.summary = result.summary

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m *ExportModel) buildOptionsForm() {
	now := time.Now()
	m.fields = &exportFields{
		kind:   exportMonthReport,
		period: now.Format(ledger.MonthLayout),
		dir:    "./exports",
	}
	f := m.fields

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[exportKind]().
				Title("Co wyeksportować?").
				Options(
					huh.NewOption("Raport miesięczny (PDF)", exportMonthReport),
					huh.NewOption("Bilans roczny (PDF)", exportYearReport),
					huh.NewOption("Wykres wydatków (PNG)", exportMonthChart),
					huh.NewOption("Transakcje (CSV)", exportCSV),
				).
				Value(&f.kind),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(func() string {
					if f.kind == exportYearReport {
						return "Rok (RRRR)"
					}

					return "Miesiąc (RRRR-MM)"
				}, &f.kind).
				Value(&f.period).
				Validate(func(s string) error {
					_, _, err := parsePeriod(f.kind, s)
					return err
				}),
		).WithHideFunc(func() bool { return f.kind == exportCSV }),
		huh.NewGroup(
			huh.NewInput().
				Title("Katalog docelowy").
				Description("Zostanie utworzony, jeśli nie istnieje").
				Placeholder("./exports").
				Value(&f.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

// parsePeriod reads "YYYY-MM", or for year reports also "YYYY". month is
// zero for year reports.
func parsePeriod(kind exportKind, s string) (int, time.Month, error) {
	s = strings.TrimSpace(s)

	if kind == exportYearReport {
		if t, err := time.Parse(ledger.MonthLayout, s); err == nil {
			return t.Year(), 0, nil
		}

		year, err := strconv.Atoi(s)
		if err != nil || year < 1900 || year > 9999 {
			return 0, 0, errors.New("rok w formacie RRRR")
		}

		return year, 0, nil
	}

	t, err := time.Parse(ledger.MonthLayout, s)
	if err != nil {
		return 0, 0, errors.New("miesiąc w formacie RRRR-MM")
	}

	return t.Year(), t.Month(), nil
}

func (m ExportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case exportStateOptions:
		return style.Render(m.form.View())

	case exportStateTimeframe:
		return style.Render(m.timeframePicker.View())

	case exportStateExporting:
		return style.Render(fmt.Sprintf("%s Eksportowanie...", m.spinner.View()))

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Błąd: %v", m.err)))
	}

	header := okStyle.Bold(true).Render("Zapisano " + m.path)

	if m.summary == "" {
		return style.Render(header)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.summary))
}

type exportResultMsg struct {
	path    string
	summary string
	err     error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runReportCmd(f exportFields) tea.Cmd {
	year, month, _ := parsePeriod(f.kind, f.period)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		var (
			buf     bytes.Buffer
			name    string
			summary string
			err     error
		)

		switch f.kind {
		case exportYearReport:
			name = export.YearReportName(year)
			err = m.exportService.YearReport(ctx, year, &buf)
		case exportMonthChart:
			var png []byte

			name = strings.TrimSuffix(export.MonthReportName(year, month), ".pdf") + ".png"
			png, err = m.exportService.MonthChart(ctx, year, month)
			buf.Write(png)
		default:
			name = export.MonthReportName(year, month)
			if err = m.exportService.MonthReport(ctx, year, month, &buf); err == nil {
				summary, err = m.monthSummary(ctx, year, month)
			}
		}

		if err != nil {
			if errors.Is(err, export.ErrNoChartData) {
				err = errors.New("brak wydatków do pokazania na wykresie")
			}

			return exportResultMsg{err: err}
		}

		path, err := writeExport(f.dir, name, buf.Bytes())

		return exportResultMsg{path: path, summary: summary, err: err}
	}
}

func (m ExportModel) monthSummary(ctx context.Context, year int, month time.Month) (string, error) {
	s, err := m.exportService.MonthSummary(ctx, year, month)
	if err != nil {
		return "", err
	}

	return s.Text(fmt.Sprintf("%s %d", m.monthNames[month-1], year), m.currency), nil
}

func (m ExportModel) runCSVCmd(start, end time.Time, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		var buf bytes.Buffer
		if err := m.exportService.CSV(ctx, start, end, &buf); err != nil {
			return exportResultMsg{err: err}
		}

		path, err := writeExport(dir, export.CSVName(start, end), buf.Bytes())

		return exportResultMsg{path: path, err: err}
	}
}

func writeExport(dir, name string, data []byte) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path, nil
}
