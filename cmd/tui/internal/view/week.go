package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type weekState int

const (
	weekStateBrowse weekState = iota
	weekStateSetup
)

// WeekModel shows the weekly limit status and edits the week's settings.
type WeekModel struct {
	CommonModel
	ledger     *ledger.Service
	aggregator *aggregate.Aggregator
	marker     string

	state  weekState
	offset int
	dash   *aggregate.Dashboard
	bar    progress.Model

	// cursor points into the week's breakdown; category is the drilled-in one.
	cursor   int
	category string

	form     *huh.Form
	settings *weekFields

	loading bool
	err     error
	status  string
}

type weekFields struct {
	enabled    bool
	amount     string
	categories []string
	settings   ledger.WeekSettings
}

func NewWeekModel(l *ledger.Service, agg *aggregate.Aggregator, marker string) WeekModel {
	return WeekModel{
		ledger:     l,
		aggregator: agg,
		marker:     marker,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		loading:    true,
	}
}

func (m WeekModel) Title() string { return "Tydzień" }

func (m WeekModel) ShortHelp() string {
	if m.state == weekStateSetup {
		return "Esc: anuluj"
	}

	if m.category != "" {
		return "↑/↓: kategoria | Enter/Esc: pokaż wszystkie | ←/→: tydzień"
	}

	return "←/→: tydzień | ↑/↓ Enter: kategoria | s: ustawienia | r: odśwież | Esc: wróć"
}

func (m WeekModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m WeekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.dash = msg.dash
			m.cursor = min(m.cursor, max(len(m.week().Breakdown)-1, 0))
		}

		return m, nil

	case weekSettingsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		return m.enterSetup(msg.settings, msg.categories)

	case weekSavedMsg:
		m.state = weekStateBrowse
		m.form = nil
		m.status = "Zapisano ustawienia tygodnia."

		if msg.err != nil {
			m.status = fmt.Sprintf("Błąd: %v", msg.err)
		}

		return m, m.loadCmd()
	}

	if m.state == weekStateSetup {
		return m.updateSetup(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.category != "" {
				m.category = ""
				return m, m.loadCmd()
			}

			return m, Back
		case "left", "h":
			m.offset--
			m.category, m.cursor = "", 0

			return m, m.loadCmd()
		case "right", "l":
			m.offset++
			m.category, m.cursor = "", 0

			return m, m.loadCmd()
		case "up", "k":
			m.cursor = max(m.cursor-1, 0)
			return m, nil
		case "down", "j":
			m.cursor = min(m.cursor+1, max(len(m.week().Breakdown)-1, 0))
			return m, nil
		case "enter":
			return m.toggleCategory()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			return m, m.loadSettingsCmd()
		}
	}

	return m, nil
}

// week is the loaded weekly panel; a disabled system yields an empty
// disabled view.
func (m WeekModel) week() *aggregate.WeekView {
	if m.dash == nil || m.dash.Week == nil {
		return &aggregate.WeekView{State: aggregate.StateDisabled}
	}

	return m.dash.Week
}

func (m WeekModel) toggleCategory() (tea.Model, tea.Cmd) {
	breakdown := m.week().Breakdown
	if m.cursor >= len(breakdown) {
		return m, nil
	}

	selected := breakdown[m.cursor].Category
	if m.category == selected {
		m.category = ""
	} else {
		m.category = selected
	}

	return m, m.loadCmd()
}

func (m WeekModel) enterSetup(settings ledger.WeekSettings, categories []string) (tea.Model, tea.Cmd) {
	m.settings = &weekFields{
		enabled:    settings.Enabled,
		amount:     FormatAmount(settings.Amount),
		categories: settings.Categories,
		settings:   settings,
	}
	f := m.settings

	options := huh.NewOptions(categories...)
	for i := range options {
		for _, c := range settings.Categories {
			if options[i].Value == c {
				options[i] = options[i].Selected(true)
			}
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Limit tygodniowy włączony?").
				Value(&f.enabled),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Limit na tydzień od %s", FormatDate(settings.Monday))).
				Value(&f.amount).
				Validate(func(s string) error {
					d, err := ledger.ParseAmount(s)
					if err != nil || d.IsNegative() {
						return fmt.Errorf("nieprawidłowa kwota")
					}

					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Kategorie wliczane do limitu").
				Options(options...).
				Value(&f.categories),
		).WithHideFunc(func() bool { return !f.enabled }),
	).WithWidth(50).WithShowHelp(false)

	m.state = weekStateSetup

	return m, m.form.Init()
}

func (m WeekModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = weekStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m WeekModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Błąd: %v", m.err)) + "\n\n(Esc: wróć, r: odśwież)")
	}

	if m.state == weekStateSetup && m.form != nil {
		return style.Render(headerStyle.Render("Ustawienia tygodnia") + "\n\n" + m.form.View())
	}

	if m.loading || m.dash == nil {
		return style.Render("Wczytywanie...")
	}

	v := m.week()

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("Tydzień %s - %s", FormatDate(v.Monday), FormatDate(v.Sunday))))

	switch v.State {
	case aggregate.StateDisabled:
		b.WriteString("\nLimit tygodniowy jest wyłączony. Naciśnij s, aby go włączyć.\n")
	case aggregate.StateUnconfigured:
		b.WriteString("\nTen tydzień nie ma ustawionego limitu. Naciśnij s, aby go ustawić.\n")
	default:
		m.viewConfigured(&b, v)
	}

	b.WriteString("\n")

	for _, line := range balanceLines(m.dash, m.marker) {
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + faintStyle.Render(m.status) + "\n")
	}

	return style.Render(b.String())
}

// balanceLines shows the month balance with the current week's unspent
// limit held back, and the real balance next to it when anything is held.
func balanceLines(d *aggregate.Dashboard, marker string) []string {
	month := fmt.Sprintf("%s %d", d.Month.Name, d.Month.Year)
	lines := []string{fmt.Sprintf("Saldo (%s): %s %s", month, headerStyle.Render(FormatAmount(d.DisplayBalance)), marker)}

	if d.Reserved.IsPositive() {
		lines = append(lines,
			faintStyle.Render(fmt.Sprintf("Realne saldo: %s %s", FormatAmount(d.RealBalance), marker)),
			faintStyle.Render(fmt.Sprintf("Zarezerwowane na bieżący tydzień: %s %s", FormatAmount(d.Reserved), marker)),
		)
	}

	return lines
}

func (m WeekModel) viewConfigured(b *strings.Builder, v *aggregate.WeekView) {
	remaining := fmt.Sprintf("%s %s (%d%%)", FormatAmount(v.Remaining), m.marker, v.Percent)
	if v.OverLimit {
		remaining = errorStyle.Render(remaining)
	} else {
		remaining = okStyle.Render(remaining)
	}

	fmt.Fprintf(b, "\nLimit:   %s %s\n", FormatAmount(v.Limit), m.marker)
	fmt.Fprintf(b, "Wydano:  %s %s\n", FormatAmount(v.Spent), m.marker)
	fmt.Fprintf(b, "Zostało: %s\n\n", remaining)
	b.WriteString(m.bar.ViewAs(float64(v.Progress) / 100))
	b.WriteString("\n")

	if v.PreviousConfigured {
		fmt.Fprintf(b, "\nZaoszczędzone w poprzednim tygodniu: %s %s\n", FormatAmount(v.PreviousSaved), m.marker)
	}

	if v.Rollover.IsPositive() {
		fmt.Fprintf(b, "Zaoszczędzone w %s: %s %s\n", v.RolloverMonthName, FormatAmount(v.Rollover), m.marker)
	}

	if len(v.Breakdown) > 0 {
		b.WriteString("\nWydatki wg kategorii:\n")
	}

	for i, share := range v.Breakdown {
		line := fmt.Sprintf("%-20s %10s %s %3d%%", share.Category, FormatAmount(share.Amount), m.marker, share.Percent)

		switch {
		case i == m.cursor:
			b.WriteString(activeStyle("> "+line) + "\n")
		case share.Category == m.category:
			b.WriteString("* " + line + "\n")
		default:
			b.WriteString("  " + line + "\n")
		}
	}

	if m.category == "" {
		return
	}

	fmt.Fprintf(b, "\n%s\n", headerStyle.Render(fmt.Sprintf("%s w tym tygodniu", m.category)))

	if len(m.dash.Rows) == 0 {
		b.WriteString(faintStyle.Render("  brak wydatków") + "\n")
	}

	for _, tx := range m.dash.Rows {
		fmt.Fprintf(b, "  %s %10s %s  %s\n", FormatDate(tx.Date), FormatAmount(tx.Amount), m.marker, tx.Description)
	}
}

// Messages

type weekLoadedMsg struct {
	dash *aggregate.Dashboard
	err  error
}

type weekSettingsMsg struct {
	settings   ledger.WeekSettings
	categories []string
	err        error
}

type weekSavedMsg struct {
	err error
}

func (m WeekModel) loadCmd() tea.Cmd {
	now := time.Now()
	req := aggregate.DashboardRequest{
		Year:         now.Year(),
		Month:        now.Month(),
		WeekView:     true,
		WeekOffset:   m.offset,
		WeekCategory: m.category,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		dash, err := m.aggregator.Dashboard(ctx, req)

		return weekLoadedMsg{dash: dash, err: err}
	}
}

func (m WeekModel) loadSettingsCmd() tea.Cmd {
	if m.dash == nil {
		return nil
	}

	monday := m.week().Monday
	if m.dash.Week == nil {
		monday = ledger.MondayOf(time.Now().AddDate(0, 0, 7*m.offset))
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		settings, err := m.ledger.WeekSettings(ctx, monday)
		if err != nil {
			return weekSettingsMsg{err: err}
		}

		categories, err := m.ledger.Categories(ctx)
		if err != nil {
			return weekSettingsMsg{err: err}
		}

		return weekSettingsMsg{settings: settings, categories: categories}
	}
}

func (m WeekModel) saveCmd() tea.Cmd {
	f := *m.settings
	settings := f.settings
	settings.Enabled = f.enabled
	settings.Amount, _ = ledger.ParseAmount(f.amount)
	settings.Categories = f.categories

	if settings.Categories == nil {
		settings.Categories = []string{}
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return weekSavedMsg{err: m.ledger.SaveWeekSettings(ctx, settings)}
	}
}
