package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/importer"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

const (
	importTimeout = 2 * time.Minute
	// conflictRows is how many duplicates fit on screen at once.
	conflictRows = 8
)

type importStep int

const (
	importStepFormat importStep = iota
	importStepFile
	importStepWorking
	importStepDuplicates
	importStepDone
)

// ImportModel reads a CSV file into the ledger. When some rows already
// exist nothing is written until the user decides which duplicates to keep.
type ImportModel struct {
	CommonModel
	ledger   *ledger.Service
	importer *importer.Service

	step    importStep
	form    *huh.Form
	format  *importer.Format
	picker  filepicker.Model
	spinner spinner.Model
	file    string

	pending    []ledger.CreateParams
	duplicates []ledger.Conflict
	keep       []bool
	cursor     int

	written int
	err     error
}

func NewImportModel(l *ledger.Service, imp *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	m := ImportModel{
		ledger:   l,
		importer: imp,
		picker:   fp,
		spinner:  s,
		format:   new(importer.Format),
	}
	m.form = newFormatForm(m.format)

	return m
}

func newFormatForm(format *importer.Format) *huh.Form {
	*format = importer.FormatBank

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[importer.Format]().
				Title("Format pliku").
				Options(
					huh.NewOption(formatLabel(importer.FormatBank), importer.FormatBank),
					huh.NewOption(formatLabel(importer.FormatLedger), importer.FormatLedger),
				).
				Value(format),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	if m.step == importStepDuplicates {
		return "↑/↓: wybór | Spacja: zachowaj | a/n: wszystkie/żadne | Enter: zapisz | Esc: anuluj"
	}

	return "Esc: wróć | Enter: wybierz"
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.back()
		}

	case parsedMsg:
		return m.handleParsed(msg)

	case writtenMsg:
		m.step = importStepDone
		m.written = msg.count
		m.err = msg.err

		return m, nil
	}

	switch m.step {
	case importStepFormat:
		return m.updateFormat(msg)
	case importStepFile:
		return m.updateFile(msg)
	case importStepWorking:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case importStepDuplicates:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateDuplicates(keyMsg)
		}
	}

	return m, nil
}

func (m ImportModel) back() (tea.Model, tea.Cmd) {
	switch m.step {
	case importStepFormat:
		return m, Back
	case importStepWorking:
		return m, nil
	}

	m.step = importStepFormat
	m.pending, m.duplicates, m.keep = nil, nil, nil
	m.err = nil
	m.form = newFormatForm(m.format)

	return m, m.form.Init()
}

func (m ImportModel) updateFormat(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.step = importStepFile

	return m, m.picker.Init()
}

func (m ImportModel) updateFile(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.file = path
		m.step = importStepWorking

		return m, tea.Batch(m.spinner.Tick, m.parseCmd(*m.format, path))
	}

	return m, cmd
}

func (m ImportModel) handleParsed(msg parsedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.step = importStepDone
		m.err = msg.err

		return m, nil
	}

	if len(msg.result.Conflicts) == 0 {
		m.step = importStepDone
		m.written = len(msg.result.Imported)

		return m, nil
	}

	m.step = importStepDuplicates
	m.pending = msg.result.New
	m.duplicates = msg.result.Conflicts
	m.keep = make([]bool, len(msg.result.Conflicts))
	m.cursor = 0

	return m, nil
}

func (m ImportModel) updateDuplicates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.duplicates)-1 {
			m.cursor++
		}
	case " ":
		m.keep[m.cursor] = !m.keep[m.cursor]
	case "a", "n":
		for i := range m.keep {
			m.keep[i] = msg.String() == "a"
		}
	case "enter":
		m.step = importStepWorking
		return m, tea.Batch(m.spinner.Tick, m.writeCmd(m.selectedRows()))
	}

	return m, nil
}

// selectedRows is the rows without a match plus the duplicates marked to keep.
func (m ImportModel) selectedRows() []ledger.CreateParams {
	rows := append([]ledger.CreateParams(nil), m.pending...)

	for i, c := range m.duplicates {
		if m.keep[i] {
			rows = append(rows, c.Incoming)
		}
	}

	return rows
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.step {
	case importStepFormat:
		return style.Render(m.form.View())
	case importStepFile:
		return style.Render(fmt.Sprintf("%s\n\n%s", headerStyle.Render(formatLabel(*m.format)), m.picker.View()))
	case importStepWorking:
		return style.Render(fmt.Sprintf("%s Przetwarzanie %s...", m.spinner.View(), m.file))
	case importStepDuplicates:
		return style.Render(m.viewDuplicates())
	}

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Błąd: %v", m.err)) + "\n\n(Esc: wróć)")
	}

	return style.Render(okStyle.Render(fmt.Sprintf("Zaimportowano %d transakcji.", m.written)) + "\n\n(Esc: wróć)")
}

func (m ImportModel) viewDuplicates() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("Znaleziono %d duplikatów", len(m.duplicates))))
	fmt.Fprintf(&b, "%s\n\n", faintStyle.Render(importSummary(m.pending)))

	first, last := visibleWindow(m.cursor, len(m.duplicates), conflictRows)
	for i := first; i < last; i++ {
		b.WriteString(m.duplicateLine(i))
	}

	kept := 0
	for _, k := range m.keep {
		if k {
			kept++
		}
	}

	fmt.Fprintf(&b, "\nDo zapisu: %d nowych + %d duplikatów\n", len(m.pending), kept)

	return b.String()
}

func (m ImportModel) duplicateLine(i int) string {
	in, existing := m.duplicates[i].Incoming, m.duplicates[i].Existing

	mark := "[ ]"
	if m.keep[i] {
		mark = "[x]"
	}

	line := fmt.Sprintf("%s %s %10s  %s", mark, FormatDate(in.Date), FormatAmount(in.Amount), in.Description)
	if i == m.cursor {
		line = activeStyle("> " + line)
	} else {
		line = "  " + line
	}

	return fmt.Sprintf("%s\n      %s\n", line,
		faintStyle.Render(fmt.Sprintf("już jest: #%d %s %s", existing.ID, kindLabel(existing.Kind), existing.Category)))
}

// visibleWindow returns the [first, last) slice of n rows that keeps cursor
// on screen when only size rows fit.
func visibleWindow(cursor, n, size int) (int, int) {
	if n <= size {
		return 0, n
	}

	first := cursor - size/2
	first = max(first, 0)
	first = min(first, n-size)

	return first, first + size
}

// importSummary describes the rows that will be written regardless of the
// duplicate selection.
func importSummary(rows []ledger.CreateParams) string {
	if len(rows) == 0 {
		return "Brak nowych transakcji w pliku."
	}

	count := make(map[ledger.Kind]int)
	total := make(map[ledger.Kind]decimal.Decimal)
	first, last := rows[0].Date, rows[0].Date

	for _, r := range rows {
		count[r.Kind]++
		total[r.Kind] = total[r.Kind].Add(r.Amount)

		if r.Date.Before(first) {
			first = r.Date
		}

		if r.Date.After(last) {
			last = r.Date
		}
	}

	var parts []string

	for _, k := range []ledger.Kind{ledger.KindIncome, ledger.KindExpense, ledger.KindSavings, ledger.KindLiabilityRepayment} {
		if count[k] > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d (%s)", kindLabel(k), count[k], FormatAmount(total[k])))
		}
	}

	return fmt.Sprintf("Nowe %s - %s: %s", FormatDate(first), FormatDate(last), strings.Join(parts, ", "))
}

func formatLabel(f importer.Format) string {
	switch f {
	case importer.FormatBank:
		return "Wyciąg bankowy"
	case importer.FormatLedger:
		return "Eksport budżetu"
	}

	return string(f)
}

// Messages

type parsedMsg struct {
	result *ledger.ImportResult
	err    error
}

type writtenMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(format importer.Format, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parsedMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		rows, err := m.importer.Import(ctx, format, f)
		if err != nil {
			return parsedMsg{err: err}
		}

		result, err := m.ledger.ImportBatch(ctx, rows)

		return parsedMsg{result: result, err: err}
	}
}

func (m ImportModel) writeCmd(rows []ledger.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		txs, err := m.ledger.CreateBatch(ctx, rows)

		return writtenMsg{count: len(txs), err: err}
	}
}
