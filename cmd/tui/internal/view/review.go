package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
	"github.com/MrJamesThe3rd/budzet/internal/matching"
)

type reviewState int

const (
	reviewStateTimeframe reviewState = iota
	reviewStateReviewing
)

// ReviewModel walks through expenses still filed under the fallback category,
// assigns a category to each and teaches the matcher the description.
type ReviewModel struct {
	CommonModel
	ledger   *ledger.Service
	matching *matching.Service

	state           reviewState
	timeframePicker TimeframePicker

	queue     []*ledger.Transaction
	current   *ledger.Transaction
	category  textinput.Model
	reviewed  int
	total     int
	loading   bool
	status    string
	statusErr bool
}

func NewReviewModel(l *ledger.Service, m *matching.Service) ReviewModel {
	ti := textinput.New()
	ti.Prompt = "Kategoria: "
	ti.Width = 40

	return ReviewModel{
		ledger:          l,
		matching:        m,
		timeframePicker: NewTimeframePicker(TimeframeThisWeek),
		category:        ti,
	}
}

func (m ReviewModel) Title() string { return "Przegląd kategorii" }

func (m ReviewModel) ShortHelp() string {
	if m.state == reviewStateReviewing {
		return "Enter: zapisz | Ctrl+S: pomiń | Esc: wróć"
	}

	return "Enter: wybierz | Esc: wróć"
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.state = reviewStateReviewing
		m.loading = true

		return m, m.loadCmd(msg.Start, msg.End)

	case reviewLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Błąd wczytywania: %v", msg.err), true)
			return m, nil
		}

		m.queue = msg.txs
		m.total = len(msg.txs)
		m.reviewed = 0

		if m.total == 0 {
			m.setStatus(fmt.Sprintf("Brak wydatków w kategorii %q.", m.ledger.Labels().Fallback), false)
			return m, nil
		}

		cmd := m.next()

		return m, cmd

	case suggestionMsg:
		if m.current != nil && m.current.ID == msg.id {
			m.category.SetValue(msg.category)
			m.category.CursorEnd()
		}

		return m, nil

	case reviewSavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Błąd zapisu: %v", msg.err), true)
			return m, nil
		}

		m.reviewed++
		m.setStatus("", false)
		cmd := m.next()

		return m, cmd
	}

	if m.state == reviewStateTimeframe {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.timeframePicker, cmd = m.timeframePicker.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.loading {
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.state = reviewStateTimeframe
			m.current = nil
			m.queue = nil
			m.timeframePicker.Reset()

			return m, nil
		case "ctrl+s":
			cmd := m.next()
			return m, cmd
		case "enter":
			if m.current == nil {
				return m, nil
			}

			category := strings.TrimSpace(m.category.Value())
			if category == "" {
				m.setStatus("Kategoria nie może być pusta.", true)
				return m, nil
			}

			return m, m.saveCmd(m.current, category)
		}
	}

	var cmd tea.Cmd
	m.category, cmd = m.category.Update(msg)

	return m, cmd
}

func (m *ReviewModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// next pops the queue and asks the matcher for a category suggestion.
func (m *ReviewModel) next() tea.Cmd {
	if len(m.queue) == 0 {
		m.current = nil
		m.setStatus(fmt.Sprintf("Przejrzano %d z %d wydatków.", m.reviewed, m.total), false)

		return nil
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	m.category.SetValue("")
	m.category.Focus()

	return tea.Batch(textinput.Blink, m.suggestCmd(m.current))
}

func (m ReviewModel) View() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.state == reviewStateTimeframe {
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	}

	if m.loading {
		return style.Render("Wczytywanie wydatków...")
	}

	status := ""
	if m.status != "" {
		status = faintStyle.Render(m.status)
		if m.statusErr {
			status = errorStyle.Render(m.status)
		}
	}

	if m.current == nil {
		return style.Render(status + "\n\n(Esc: wróć)")
	}

	tx := m.current
	progress := fmt.Sprintf("Wydatek %d z %d", m.total-len(m.queue), m.total)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(progress),
		"",
		fmt.Sprintf("Data:  %s", FormatDate(tx.Date)),
		fmt.Sprintf("Kwota: %s", FormatAmount(tx.Amount)),
		fmt.Sprintf("Opis:  %s", tx.Description),
		"",
		m.category.View(),
		"",
		status,
	))
}

// Messages

type reviewLoadedMsg struct {
	txs []*ledger.Transaction
	err error
}

type suggestionMsg struct {
	id       int64
	category string
}

type reviewSavedMsg struct {
	err error
}

func (m ReviewModel) loadCmd(start, end time.Time) tea.Cmd {
	fallback := m.ledger.Labels().Fallback

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledger.Between(ctx, start, end)
		if err != nil {
			return reviewLoadedMsg{err: err}
		}

		var queue []*ledger.Transaction

		for _, tx := range txs {
			if tx.Kind == ledger.KindExpense && tx.Category == fallback {
				queue = append(queue, tx)
			}
		}

		return reviewLoadedMsg{txs: queue}
	}
}

func (m ReviewModel) suggestCmd(tx *ledger.Transaction) tea.Cmd {
	id, desc := tx.ID, tx.Description

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		category, err := m.matching.Suggest(ctx, desc)
		if err != nil || category == "" {
			return nil
		}

		return suggestionMsg{id: id, category: category}
	}
}

func (m ReviewModel) saveCmd(tx *ledger.Transaction, category string) tea.Cmd {
	params := ledger.UpdateParams{
		Date:        tx.Date,
		Category:    category,
		Description: tx.Description,
		Amount:      tx.Amount,
	}
	id, desc := tx.ID, tx.Description

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ledger.Update(ctx, id, params); err != nil {
			return reviewSavedMsg{err: err}
		}

		known, err := m.ledger.Categories(ctx)
		if err != nil {
			return reviewSavedMsg{err: err}
		}

		if !slices.Contains(known, category) {
			if err := m.ledger.AddCategory(ctx, category); err != nil {
				return reviewSavedMsg{err: err}
			}
		}

		if desc != "" {
			if err := m.matching.Learn(ctx, desc, category); err != nil {
				return reviewSavedMsg{err: err}
			}
		}

		return reviewSavedMsg{}
	}
}
