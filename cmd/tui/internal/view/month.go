package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

const searchDebounce = 300 * time.Millisecond

type monthState int

const (
	monthStateBrowse monthState = iota
	monthStateSearch
	monthStateEdit
	monthStateDelete
)

// MonthModel shows one month's totals and rows, and edits or deletes rows.
type MonthModel struct {
	CommonModel
	ledger     *ledger.Service
	aggregator *aggregate.Aggregator
	marker     string

	state  monthState
	year   int
	month  time.Month
	table  table.Model
	search textinput.Model
	form   *huh.Form

	view       *aggregate.MonthView
	locked     bool
	categories []string
	// categoryIdx 0 shows every row; i > 0 filters on categories[i-1].
	categoryIdx int

	// searchSeq drops debounce ticks superseded by later keystrokes.
	searchSeq int

	loading bool
	err     error
	status  string

	// fields lives on the heap so the form's bindings survive model copies.
	fields *rowFields
}

type rowFields struct {
	date     string
	category string
	desc     string
	amount   string
	confirm  bool
}

func NewMonthModel(l *ledger.Service, agg *aggregate.Aggregator, marker string) MonthModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Rodzaj", Width: 12},
		{Title: "Kategoria", Width: 20},
		{Title: "Kwota", Width: 12},
		{Title: "Opis", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "tekst, kwota lub data"
	search.Prompt = "Szukaj: "
	search.Width = 40

	now := time.Now()

	return MonthModel{
		ledger:     l,
		aggregator: agg,
		marker:     marker,
		year:       now.Year(),
		month:      now.Month(),
		table:      t,
		search:     search,
		loading:    true,
	}
}

func (m MonthModel) Title() string { return "Miesiąc" }

func (m MonthModel) ShortHelp() string {
	switch m.state {
	case monthStateSearch:
		return "Enter: szukaj | Esc: anuluj"
	case monthStateEdit, monthStateDelete:
		return "Esc: anuluj"
	}

	return "←/→: miesiąc | /: szukaj | c: kategoria | e: edytuj | x: usuń | L: blokada | r: odśwież | Esc: wróć"
}

func (m MonthModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MonthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.view = msg.view
		m.locked = msg.locked
		m.categories = msg.categories

		if m.categoryIdx > len(m.categories) {
			m.categoryIdx = 0
		}

		m.refreshTable()

		return m, nil

	case monthSavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Błąd: %v", msg.err)
		}

		m.state = monthStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case searchTickMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-16, 5))

		return m, nil
	}

	switch m.state {
	case monthStateBrowse:
		return m.updateBrowse(msg)
	case monthStateSearch:
		return m.updateSearch(msg)
	case monthStateEdit, monthStateDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m MonthModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.search.Value() != "" {
				m.search.SetValue("")
				return m, m.loadCmd()
			}

			return m, Back
		case "left", "h":
			m.shiftMonth(-1)
			return m, m.loadCmd()
		case "right", "l":
			m.shiftMonth(1)
			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = monthStateSearch
			m.table.Blur()

			return m, m.search.Focus()
		case "c":
			m.categoryIdx = (m.categoryIdx + 1) % (len(m.categories) + 1)
			return m, m.loadCmd()
		case "e":
			return m.enterEdit()
		case "x":
			return m.enterDelete()
		case "L":
			return m, m.toggleLockCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *MonthModel) shiftMonth(delta int) {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year, m.month = first.Year(), first.Month()
	m.status = ""
}

func (m MonthModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = monthStateBrowse
			m.search.Blur()
			m.search.SetValue("")
			m.table.Focus()
			m.searchSeq++

			return m, m.loadCmd()
		case tea.KeyEnter:
			m.state = monthStateBrowse
			m.search.Blur()
			m.table.Focus()
			m.searchSeq++

			return m, m.loadCmd()
		}
	}

	before := m.search.Value()

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	seq := m.searchSeq

	return m, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	}))
}

func (m MonthModel) selected() *ledger.Transaction {
	if m.view == nil {
		return nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.view.Rows) {
		return nil
	}

	return m.view.Rows[idx]
}

func (m MonthModel) enterEdit() (tea.Model, tea.Cmd) {
	tx := m.selected()
	if tx == nil {
		return m, nil
	}

	m.fields = &rowFields{
		date:     FormatDate(tx.Date),
		category: tx.Category,
		desc:     tx.Description,
		amount:   FormatAmount(tx.Amount),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Data").
				Value(&m.fields.date).
				Validate(validateDate),
			huh.NewInput().
				Key("category").
				Title("Kategoria").
				Value(&m.fields.category).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("kategoria nie może być pusta")
					}

					return nil
				}),
			huh.NewInput().
				Key("description").
				Title("Opis").
				Value(&m.fields.desc),
			huh.NewInput().
				Key("amount").
				Title("Kwota").
				Value(&m.fields.amount).
				Validate(validateAmount),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = monthStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m MonthModel) enterDelete() (tea.Model, tea.Cmd) {
	tx := m.selected()
	if tx == nil {
		return m, nil
	}

	m.fields = &rowFields{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Usunąć %s %s %s?", FormatDate(tx.Date), tx.Category, FormatAmount(tx.Amount))).
				Affirmative("Tak").
				Negative("Nie").
				Value(&m.fields.confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = monthStateDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m MonthModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = monthStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == monthStateDelete {
		return m, m.deleteCmd()
	}

	return m, m.saveCmd()
}

func (m MonthModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Błąd: %v", m.err)) + "\n\n(Esc: wróć, r: odśwież)")
	}

	if m.loading || m.view == nil {
		return lipgloss.NewStyle().Padding(2).Render("Wczytywanie...")
	}

	title := fmt.Sprintf("%s %d", m.view.Name, m.view.Year)
	if m.locked {
		title += " " + errorStyle.Render("[zablokowany]")
	}

	filter := "wszystkie"
	if m.categoryIdx > 0 {
		filter = m.categories[m.categoryIdx-1]
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(title),
		m.summaryLine(),
		fmt.Sprintf("[c] Kategoria: %s | [/] Szukaj: %s", activeStyle(filter), activeStyle(m.search.Value())),
	)

	if m.state == monthStateSearch {
		header = lipgloss.JoinVertical(lipgloss.Left, header, m.search.View())
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if (m.state == monthStateEdit || m.state == monthStateDelete) && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m MonthModel) summaryLine() string {
	v := m.view
	amount := func(label, d string) string {
		return fmt.Sprintf("%s: %s %s", label, d, m.marker)
	}

	return strings.Join([]string{
		amount("Saldo pocz.", FormatAmount(v.OpeningBalance)),
		amount("Wpływy", okStyle.Render(FormatAmount(v.Income))),
		amount("Wydatki", errorStyle.Render(FormatAmount(v.Expense))),
		amount("Oszczędności", FormatAmount(v.Savings)),
		amount("Spłaty", FormatAmount(v.Liability)),
		amount("Saldo końc.", headerStyle.Render(FormatAmount(v.ClosingBalance))),
		amount("Gotówka", FormatAmount(v.TotalCashSavings)),
	}, " | ")
}

func (m *MonthModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.view.Rows))
	for _, tx := range m.view.Rows {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			kindLabel(tx.Kind),
			tx.Category,
			FormatAmount(tx.Amount),
			tx.Description,
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func kindLabel(k ledger.Kind) string {
	switch k {
	case ledger.KindIncome:
		return "wpływ"
	case ledger.KindExpense:
		return "wydatek"
	case ledger.KindSavings:
		return "oszczędność"
	case ledger.KindLiabilityRepayment:
		return "spłata"
	}

	return string(k)
}

func validateDate(s string) error {
	if _, err := ledger.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("data w formacie RRRR-MM-DD")
	}

	return nil
}

func validateAmount(s string) error {
	d, err := ledger.ParseAmount(s)
	if err != nil {
		return fmt.Errorf("nieprawidłowa kwota")
	}

	if !d.IsPositive() {
		return fmt.Errorf("kwota musi być dodatnia")
	}

	return nil
}

// Messages

type monthLoadedMsg struct {
	view       *aggregate.MonthView
	locked     bool
	categories []string
	err        error
}

type searchTickMsg struct {
	seq int
}

type monthSavedMsg struct {
	status string
	err    error
}

func (m MonthModel) loadCmd() tea.Cmd {
	req := aggregate.MonthRequest{
		Year:   m.year,
		Month:  m.month,
		Search: strings.TrimSpace(m.search.Value()),
	}

	if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
		req.Category = m.categories[m.categoryIdx-1]
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		view, err := m.aggregator.Month(ctx, req)
		if err != nil {
			return monthLoadedMsg{err: err}
		}

		locked, err := m.ledger.IsMonthLocked(ctx, req.Year, req.Month)
		if err != nil {
			return monthLoadedMsg{err: err}
		}

		categories, err := m.ledger.Categories(ctx)
		if err != nil {
			return monthLoadedMsg{err: err}
		}

		return monthLoadedMsg{view: view, locked: locked, categories: categories}
	}
}

func (m MonthModel) saveCmd() tea.Cmd {
	tx := m.selected()
	if tx == nil {
		return nil
	}

	id := tx.ID
	date, _ := ledger.ParseDate(strings.TrimSpace(m.fields.date))
	amount, _ := ledger.ParseAmount(m.fields.amount)
	params := ledger.UpdateParams{
		Date:        date,
		Category:    strings.TrimSpace(m.fields.category),
		Description: strings.TrimSpace(m.fields.desc),
		Amount:      amount,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ledger.Update(ctx, id, params); err != nil {
			return monthSavedMsg{err: err}
		}

		return monthSavedMsg{status: "Zapisano."}
	}
}

func (m MonthModel) deleteCmd() tea.Cmd {
	tx := m.selected()
	if tx == nil || !m.fields.confirm {
		return func() tea.Msg { return monthSavedMsg{} }
	}

	id := tx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ledger.Delete(ctx, id); err != nil {
			return monthSavedMsg{err: err}
		}

		return monthSavedMsg{status: "Usunięto."}
	}
}

func (m MonthModel) toggleLockCmd() tea.Cmd {
	year, month, locked := m.year, m.month, m.locked

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if locked {
			if err := m.ledger.UnlockMonth(ctx, year, month); err != nil {
				return monthSavedMsg{err: err}
			}

			return monthSavedMsg{status: "Miesiąc odblokowany."}
		}

		if err := m.ledger.LockMonth(ctx, year, month); err != nil {
			return monthSavedMsg{err: err}
		}

		return monthSavedMsg{status: "Miesiąc zablokowany."}
	}
}
