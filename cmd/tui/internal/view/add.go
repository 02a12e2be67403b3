package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type addState int

const (
	addStateLoading addState = iota
	addStateForm
	addStateResult
)

// AddModel records a single transaction of any kind.
type AddModel struct {
	CommonModel
	ledger *ledger.Service

	state  addState
	form   *huh.Form
	fields *addFields
	// suggestions holds the catalog names offered for each kind.
	suggestions map[ledger.Kind][]string

	status string
	err    error
}

type addFields struct {
	kind        ledger.Kind
	date        string
	category    string
	desc        string
	amount      string
	excludeWeek bool
	withdraw    bool
}

func NewAddModel(l *ledger.Service) AddModel {
	return AddModel{ledger: l}
}

func (m AddModel) Title() string { return "Nowa transakcja" }

func (m AddModel) ShortHelp() string {
	if m.state == addStateResult {
		return "Enter: kolejna | Esc: wróć"
	}

	return "Tab: dalej | Esc: wróć"
}

func (m AddModel) Init() tea.Cmd {
	return m.loadCatalogCmd()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.state = addStateResult
			m.err = msg.err

			return m, nil
		}

		m.suggestions = msg.suggestions

		return m.newForm()

	case addSavedMsg:
		m.state = addStateResult
		m.err = msg.err

		if msg.err == nil {
			tx := msg.tx
			m.status = fmt.Sprintf("Zapisano: %s %s %s %s",
				FormatDate(tx.Date), kindLabel(tx.Kind), tx.Category, FormatAmount(tx.Amount))
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == addStateResult && msg.Type == tea.KeyEnter {
			return m, m.loadCatalogCmd()
		}
	}

	if m.state != addStateForm {
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

func (m AddModel) newForm() (tea.Model, tea.Cmd) {
	m.fields = &addFields{
		kind: ledger.KindExpense,
		date: FormatDate(time.Now()),
	}
	f := m.fields

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.Kind]().
				Title("Rodzaj").
				Options(
					huh.NewOption("Wydatek", ledger.KindExpense),
					huh.NewOption("Wpływ", ledger.KindIncome),
					huh.NewOption("Oszczędności", ledger.KindSavings),
					huh.NewOption("Spłata zobowiązania", ledger.KindLiabilityRepayment),
				).
				Value(&f.kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Data").
				Value(&f.date).
				Validate(validateDate),
			huh.NewInput().
				TitleFunc(func() string { return categoryTitle(f.kind) }, &f.kind).
				SuggestionsFunc(func() []string { return m.suggestions[f.kind] }, &f.kind).
				Value(&f.category).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" && f.kind != ledger.KindExpense {
						return errors.New("pole wymagane")
					}

					return nil
				}),
			huh.NewInput().
				Title("Opis").
				Value(&f.desc),
			huh.NewInput().
				Title("Kwota").
				Placeholder("12,50").
				Value(&f.amount).
				Validate(validateAmount),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Pominąć w limicie tygodniowym?").
				Value(&f.excludeWeek),
		).WithHideFunc(func() bool { return f.kind != ledger.KindExpense }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Wypłata z oszczędności?").
				Value(&f.withdraw),
		).WithHideFunc(func() bool { return f.kind != ledger.KindSavings }),
	).WithWidth(50).WithShowHelp(false)

	m.state = addStateForm
	m.err = nil
	m.status = ""

	return m, m.form.Init()
}

func categoryTitle(kind ledger.Kind) string {
	switch kind {
	case ledger.KindIncome:
		return "Osoba"
	case ledger.KindSavings:
		return "Cel oszczędności"
	case ledger.KindLiabilityRepayment:
		return "Wierzyciel"
	}

	return "Kategoria"
}

func (m AddModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case addStateLoading:
		return style.Render("Wczytywanie...")
	case addStateForm:
		return style.Render(m.form.View())
	}

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Błąd: %v", m.err)) + "\n\n(Enter: spróbuj ponownie, Esc: wróć)")
	}

	return style.Render(okStyle.Render(m.status) + "\n\n(Enter: kolejna, Esc: wróć)")
}

// Messages

type catalogLoadedMsg struct {
	suggestions map[ledger.Kind][]string
	err         error
}

type addSavedMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m AddModel) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := m.ledger.Categories(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		people, err := m.ledger.People(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		targets, err := m.ledger.SavingsTargets(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		creditors, err := m.creditors(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		return catalogLoadedMsg{suggestions: map[ledger.Kind][]string{
			ledger.KindExpense:            categories,
			ledger.KindIncome:             people,
			ledger.KindSavings:            targets,
			ledger.KindLiabilityRepayment: creditors,
		}}
	}
}

// creditors merges the open liabilities with names repaid in the past.
func (m AddModel) creditors(ctx context.Context) ([]string, error) {
	liabilities, err := m.ledger.Liabilities(ctx)
	if err != nil {
		return nil, err
	}

	historical, err := m.ledger.HistoricalCreditors(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	var names []string

	for _, l := range liabilities {
		if !seen[l.Name] {
			seen[l.Name] = true
			names = append(names, l.Name)
		}
	}

	for _, name := range historical {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names, nil
}

func (m AddModel) saveCmd() tea.Cmd {
	f := *m.fields
	date, _ := ledger.ParseDate(strings.TrimSpace(f.date))
	amount, _ := ledger.ParseAmount(f.amount)
	category := strings.TrimSpace(f.category)
	desc := strings.TrimSpace(f.desc)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var (
			tx  *ledger.Transaction
			err error
		)

		switch f.kind {
		case ledger.KindIncome:
			tx, err = m.ledger.AddIncome(ctx, date, category, desc, amount)
		case ledger.KindSavings:
			tx, err = m.ledger.AddSavings(ctx, date, category, desc, amount, f.withdraw)
		case ledger.KindLiabilityRepayment:
			tx, err = m.ledger.AddRepayment(ctx, date, category, desc, amount)
		default:
			if category == "" {
				category = m.ledger.Labels().Fallback
			}

			tx, err = m.ledger.AddExpense(ctx, date, category, desc, amount, f.excludeWeek)
		}

		return addSavedMsg{tx: tx, err: err}
	}
}
