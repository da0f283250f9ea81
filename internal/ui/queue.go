package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nisaljde/VetPulzNext/internal/store"
)

const (
	statusWaiting    = "waiting"
	statusInProgress = "in-progress"
	statusCompleted  = "completed"
)

// queueItem is one entry in the waiting room.
type queueItem struct {
	Token   int
	Patient string
	Owner   string
	Type    string
	Status  string
	Minutes int // minutes waited so far
}

type queueState struct {
	items    []queueItem
	selected int
}

// buildQueue seeds the waiting room from today's registered patients,
// one token per pet in registration order. The first patient is taken
// in immediately; the rest wait.
func buildQueue(st *store.Store) []queueItem {
	var items []queueItem
	token := 1
	for _, c := range st.Clients() {
		for _, p := range st.PetsByOwner(c.ID) {
			item := queueItem{
				Token:   token,
				Patient: patientLabel(p.Name),
				Owner:   c.Name,
				Type:    eventTypes[(token-1)%len(eventTypes)],
				Status:  statusWaiting,
			}
			if token == 1 {
				item.Status = statusInProgress
				item.Minutes = 15
			}
			items = append(items, item)
			token++
		}
	}
	return items
}

// advanceQueue is one clock tick: only patients still waiting accrue a
// minute. An in-progress patient's wait is frozen at the value it had
// when they were called in.
func advanceQueue(items []queueItem) {
	for i := range items {
		if items[i].Status == statusWaiting {
			items[i].Minutes++
		}
	}
}

// completeNext marks the in-progress patient done and calls in the
// next waiting token.
func completeNext(items []queueItem) {
	for i := range items {
		if items[i].Status == statusInProgress {
			items[i].Status = statusCompleted
			break
		}
	}
	for i := range items {
		if items[i].Status == statusWaiting {
			items[i].Status = statusInProgress
			return
		}
	}
}

// nowServing returns the token currently in progress, or zero when the
// room is idle.
func nowServing(items []queueItem) int {
	for _, it := range items {
		if it.Status == statusInProgress {
			return it.Token
		}
	}
	return 0
}

func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	qs := &m.queue
	switch {
	case keyMatches(msg, m.keys.Up):
		if qs.selected > 0 {
			qs.selected--
		}
	case keyMatches(msg, m.keys.Down):
		if qs.selected < len(qs.items)-1 {
			qs.selected++
		}
	case keyMatches(msg, m.keys.Edit):
		completeNext(qs.items)
	}
	return m, nil
}

func (m Model) renderQueue(height int) string {
	st := m.theme.Styles()
	var b strings.Builder

	serving := "Room idle"
	if token := nowServing(m.queue.items); token > 0 {
		serving = fmt.Sprintf("Now serving token %d", token)
	}
	b.WriteString("  " + st.AccentText.Bold(true).Render(serving) + "\n\n")

	header := "  " + padRight("TOKEN", 8) + padRight("PATIENT", 18) + padRight("CLIENT", 22) +
		padRight("TYPE", 14) + padRight("STATUS", 14) + padRight("WAIT", 8)
	b.WriteString(st.MutedText.Bold(true).Render(header) + "\n")

	if len(m.queue.items) == 0 {
		b.WriteString("\n  " + st.FaintText.Render("The waiting room is empty.") + "\n")
	}

	for i, it := range m.queue.items {
		status := st.StatusStyle(it.Status).Render(padRight(it.Status, 14))
		line := padRight(fmt.Sprintf("#%d", it.Token), 8) + padRight(it.Patient, 18) +
			padRight(it.Owner, 22) + padRight(it.Type, 14) + status +
			padRight(fmt.Sprintf("%dm", it.Minutes), 8)
		if i == m.queue.selected {
			b.WriteString(st.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n  " + st.FaintText.Render("enter marks the current patient done and calls the next token") + "\n")
	return b.String()
}
