package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// eventTypes are the appointment categories offered by the calendar.
var eventTypes = []string{"Consultation", "Vaccination", "Surgery", "Check-up", "Emergency"}

type apptState struct {
	month   time.Time // first day of the displayed month
	typeIdx int
}

func newApptState(now time.Time) apptState {
	return apptState{
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
	}
}

// calendarWeeks lays a month out as Sunday-first weeks. Zero entries
// are padding outside the month.
func calendarWeeks(month time.Time) [][]int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var weeks [][]int
	week := make([]int, 7)
	col := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func (m Model) handleApptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	as := &m.appts
	switch {
	case keyMatches(msg, m.keys.PrevMonth):
		as.month = as.month.AddDate(0, -1, 0)
	case keyMatches(msg, m.keys.NextMonth):
		as.month = as.month.AddDate(0, 1, 0)
	case keyMatches(msg, m.keys.EventType):
		as.typeIdx = (as.typeIdx + 1) % len(eventTypes)
	}
	return m, nil
}

func (m Model) renderAppointments(height int) string {
	st := m.theme.Styles()
	var b strings.Builder

	title := m.appts.month.Format("January 2006")
	b.WriteString("  " + st.AccentText.Bold(true).Render(title) +
		"   " + st.MutedText.Render("type: "+eventTypes[m.appts.typeIdx]) + "\n\n")

	b.WriteString("  " + st.MutedText.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	today := time.Now()
	isThisMonth := today.Year() == m.appts.month.Year() && today.Month() == m.appts.month.Month()
	for _, week := range calendarWeeks(m.appts.month) {
		b.WriteString("  ")
		for _, day := range week {
			if day == 0 {
				b.WriteString("    ")
				continue
			}
			cell := fmt.Sprintf(" %2d ", day)
			if isThisMonth && day == today.Day() {
				b.WriteString(st.Selected.Render(cell))
			} else {
				b.WriteString(st.Text.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  " + st.FaintText.Render("[ / ] change month   t change event type") + "\n")
	return b.String()
}
