package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// Timeframe represents a predefined or custom date range selection.
type Timeframe int

const (
	TimeframeThisWeek Timeframe = iota
	TimeframeLastWeek
	TimeframeThisMonth
	TimeframeLastMonth
	TimeframeThisYear
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisWeek:
		return "Ten tydzień"
	case TimeframeLastWeek:
		return "Poprzedni tydzień"
	case TimeframeThisMonth:
		return "Ten miesiąc"
	case TimeframeLastMonth:
		return "Poprzedni miesiąc"
	case TimeframeThisYear:
		return "Ten rok"
	case TimeframeCustom:
		return "Własny zakres"
	}

	return "Nieznany"
}

// DateRange returns the whole days covered by tf relative to now. Custom has
// no fixed range and returns zero times.
func (t Timeframe) DateRange(now time.Time) (time.Time, time.Time) {
	switch t {
	case TimeframeThisWeek:
		return ledger.WeekBounds(now)
	case TimeframeLastWeek:
		return ledger.WeekBounds(now.AddDate(0, 0, -7))
	case TimeframeThisMonth:
		return ledger.MonthBounds(now.Year(), now.Month())
	case TimeframeLastMonth:
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return ledger.MonthBounds(prev.Year(), prev.Month())
	case TimeframeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}, time.Time{}
}

// TimeframeSelectedMsg is emitted when the user has selected a valid date range.
type TimeframeSelectedMsg struct {
	Start time.Time
	End   time.Time
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

// TimeframePicker is a reusable component for selecting a date range.
type TimeframePicker struct {
	state    timeframeState
	selected Timeframe
	minFrame Timeframe

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

// NewTimeframePicker creates a picker starting from the given minimum timeframe.
func NewTimeframePicker(minFrame Timeframe) TimeframePicker {
	si := textinput.New()
	si.Placeholder = "RRRR-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "Od: "

	ei := textinput.New()
	ei.Placeholder = "RRRR-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "Do: "

	return TimeframePicker{
		state:      timeframeStateSelect,
		selected:   minFrame,
		minFrame:   minFrame,
		startInput: si,
		endInput:   ei,
	}
}

// Init returns the initial command for the picker.
func (m TimeframePicker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the timeframe picker.
func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case timeframeStateSelect:
			return m.updateSelect(msg)
		case timeframeStateCustom:
			return m.updateCustom(msg)
		}
	}

	if m.state == timeframeStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > m.minFrame {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == TimeframeCustom {
			m.state = timeframeStateCustom
			m.startInput.Focus()
			m.focusIndex = 0
			return m, textinput.Blink
		}

		start, end := m.selected.DateRange(time.Now())

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Start: start, End: end}
		}
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()
		if m.focusIndex == 0 {
			m.startInput.Focus()
			return m, textinput.Blink
		}
		m.endInput.Focus()
		return m, textinput.Blink

	case "enter":
		start, err := ledger.ParseDate(m.startInput.Value())
		if err != nil {
			m.err = errors.New("nieprawidłowa data początkowa (RRRR-MM-DD)")
			return m, nil
		}

		end, err := ledger.ParseDate(m.endInput.Value())
		if err != nil {
			m.err = errors.New("nieprawidłowa data końcowa (RRRR-MM-DD)")
			return m, nil
		}

		if end.Before(start) {
			m.err = errors.New("data końcowa jest przed początkową")
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Start: start, End: end}
		}

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m TimeframePicker) updateInputs(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	var cmds []tea.Cmd
	var c tea.Cmd

	m.startInput, c = m.startInput.Update(msg)
	cmds = append(cmds, c)
	m.endInput, c = m.endInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

// View renders the timeframe picker.
func (m TimeframePicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = errorStyle.Render(fmt.Sprintf("\n\nBłąd: %v", m.err))
	}

	if m.state == timeframeStateCustom {
		return fmt.Sprintf(
			"Podaj zakres dat:\n\n%s\n%s\n\n(Enter: zatwierdź, Tab: przełącz, Esc: wróć)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	s := "Wybierz okres:\n\n"
	for i := m.minFrame; i <= TimeframeCustom; i++ {
		cursor := " "
		if m.selected == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %s\n", cursor, i.String())
	}
	s += "\n(Enter: wybierz, Esc: wróć)"

	return s + errStr
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *TimeframePicker) Reset() {
	m.state = timeframeStateSelect
	m.selected = m.minFrame
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
