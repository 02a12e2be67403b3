package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/budzet/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/budzet/internal/app"
	"github.com/MrJamesThe3rd/budzet/internal/config"
	"github.com/MrJamesThe3rd/budzet/internal/logging"
)

type model struct {
	app *app.App

	currentView View
	needsSetup  bool

	monthView  view.MonthModel
	weekView   view.WeekModel
	addView    view.AddModel
	importView view.ImportModel
	reviewView view.ReviewModel
	exportView view.ExportModel
}

type View int

const (
	ViewMenu View = iota
	ViewMonth
	ViewWeek
	ViewAdd
	ViewImport
	ViewReview
	ViewExport
)

func newModel(a *app.App) model {
	return model{app: a, currentView: ViewMenu}
}

type setupCheckMsg bool

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.DbCtx()
		defer cancel()

		needs, err := m.app.Ledger.NeedsWeekSetup(ctx)
		if err != nil {
			slog.Warn("checking weekly setup", "error", err)
		}

		return setupCheckMsg(needs)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	a := m.app
	marker := a.Config.Ledger.CurrencyMarker

	switch msg := msg.(type) {
	case setupCheckMsg:
		m.needsSetup = bool(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMonth
				m.monthView = view.NewMonthModel(a.Ledger, a.Aggregator, marker)

				return m, m.monthView.Init()
			case "2":
				m.currentView = ViewWeek
				m.weekView = view.NewWeekModel(a.Ledger, a.Aggregator, marker)

				return m, m.weekView.Init()
			case "3":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(a.Ledger)

				return m, m.addView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(a.Ledger, a.Importer)

				return m, m.importView.Init()
			case "5":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(a.Ledger, a.Matching)

				return m, m.reviewView.Init()
			case "6":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(a.Export, a.Aggregator.Config().MonthNames, marker)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, m.Init()
	}

	switch m.currentView {
	case ViewMonth:
		var newModel tea.Model
		newModel, cmd = m.monthView.Update(msg)
		m.monthView = newModel.(view.MonthModel)
	case ViewWeek:
		var newModel tea.Model
		newModel, cmd = m.weekView.Update(msg)
		m.weekView = newModel.(view.WeekModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

// screen is what every view exposes to the menu frame.
type screen interface {
	View() string
	Title() string
	ShortHelp() string
}

func (m model) active() screen {
	switch m.currentView {
	case ViewMonth:
		return m.monthView
	case ViewWeek:
		return m.weekView
	case ViewAdd:
		return m.addView
	case ViewImport:
		return m.importView
	case ViewReview:
		return m.reviewView
	case ViewExport:
		return m.exportView
	}

	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).PaddingLeft(1)
	helpStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(1)
)

func (m model) View() string {
	if s := m.active(); s != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(s.Title()),
			s.View(),
			helpStyle.Render(s.ShortHelp()),
		)
	}

	notice := ""
	if m.needsSetup {
		notice = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).
			Render("Ten tydzień nie ma jeszcze limitu (2, potem s).") + "\n\n"
	}

	return lipgloss.NewStyle().Padding(2).Render(
		fmt.Sprintf("%s %s\n\n", m.app.Config.App.Name, m.app.Config.App.Version) +
			notice +
			"1. Miesiąc\n" +
			"2. Tydzień\n" +
			"3. Nowa transakcja\n" +
			"4. Import CSV\n" +
			"5. Przegląd kategorii\n" +
			"6. Eksport\n\n" +
			"q. Wyjście",
	)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	slog.SetDefault(logging.New(logFile, cfg.LogLevel(), cfg.Log.Format))

	a, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(newModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		return err
	}

	return nil
}
