package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nisaljde/VetPulzNext/internal/store"
)

// clientRow is one display row of the client directory: a single
// client/pet pairing. A client with multiple pets occupies multiple
// consecutive rows; First marks the row that carries the client's
// contact columns.
type clientRow struct {
	Client store.Client
	Pet    store.Pet
	First  bool
}

type deleteTarget struct {
	petID      string
	petName    string
	clientName string
	lastPet    bool
}

type clientsState struct {
	search   textinput.Model
	rows     []clientRow
	selected int
	confirm  *deleteTarget
}

func newClientsState() clientsState {
	ti := textinput.New()
	ti.Placeholder = "name, phone, or email"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 32
	return clientsState{search: ti}
}

// matchesFilter reports whether a client matches the search term by
// name, phone, or email. Matching is case-insensitive substring; an
// empty term matches everything.
func matchesFilter(c store.Client, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Phone), term) ||
		strings.Contains(strings.ToLower(c.Email), term)
}

// buildClientRows flattens the directory into display rows, one per
// client/pet pair, preserving store insertion order. Clients whose
// pets were all removed do not appear; the store drops them on the
// last pet's deletion.
func buildClientRows(st *store.Store, filter string) []clientRow {
	var rows []clientRow
	for _, c := range st.Clients() {
		if !matchesFilter(c, filter) {
			continue
		}
		for i, p := range st.PetsByOwner(c.ID) {
			rows = append(rows, clientRow{Client: c, Pet: p, First: i == 0})
		}
	}
	return rows
}

func (m *Model) reloadClients() {
	m.clients.rows = buildClientRows(m.store, m.clients.search.Value())
	if m.clients.selected >= len(m.clients.rows) {
		m.clients.selected = len(m.clients.rows) - 1
	}
	if m.clients.selected < 0 {
		m.clients.selected = 0
	}
}

func (m Model) handleClientsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cs := &m.clients

	// Delete confirmation modal captures all input.
	if cs.confirm != nil {
		switch {
		case keyMatches(msg, m.keys.Confirm):
			target := *cs.confirm
			cs.confirm = nil
			return m.deletePatient(target)
		default:
			cs.confirm = nil
			return m, nil
		}
	}

	// Live search: every keystroke re-filters the list.
	if cs.search.Focused() {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			cs.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		cs.search, cmd = cs.search.Update(msg)
		m.reloadClients()
		return m, cmd
	}

	switch {
	case keyMatches(msg, m.keys.Search):
		cs.search.Focus()
		return m, textinput.Blink
	case keyMatches(msg, m.keys.Up):
		if cs.selected > 0 {
			cs.selected--
		}
	case keyMatches(msg, m.keys.Down):
		if cs.selected < len(cs.rows)-1 {
			cs.selected++
		}
	case keyMatches(msg, m.keys.Top):
		cs.selected = 0
	case keyMatches(msg, m.keys.Bottom):
		if len(cs.rows) > 0 {
			cs.selected = len(cs.rows) - 1
		}
	case keyMatches(msg, m.keys.Register):
		m.openRegisterCreate()
	case keyMatches(msg, m.keys.Edit):
		if cs.selected < len(cs.rows) {
			row := cs.rows[cs.selected]
			m.openRegisterEdit(row.Client, row.Pet)
		}
	case keyMatches(msg, m.keys.Delete):
		if cs.selected < len(cs.rows) {
			row := cs.rows[cs.selected]
			cs.confirm = &deleteTarget{
				petID:      row.Pet.ID,
				petName:    row.Pet.Name,
				clientName: row.Client.Name,
				lastPet:    len(m.store.PetsByOwner(row.Client.ID)) == 1,
			}
		}
	}
	return m, nil
}

func (m Model) deletePatient(target deleteTarget) (tea.Model, tea.Cmd) {
	if err := m.store.DeletePet(target.petID); err != nil {
		return m.toast("Error", "Patient record no longer exists.", true)
	}
	m.reloadClients()
	m.queue.items = buildQueue(m.store)
	desc := fmt.Sprintf("Removed %s from the records.", patientLabel(target.petName))
	if target.lastPet {
		desc = fmt.Sprintf("Removed %s and client %s from the records.",
			patientLabel(target.petName), target.clientName)
	}
	return m.toast("Patient deleted", desc, false)
}

// entriesLabel reports how much of the directory the current filter
// shows. Every client/pet pair is one entry.
func entriesLabel(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d entries", shown, total)
}

func patientLabel(name string) string {
	if name == "" {
		return "unknown patient"
	}
	return name
}

// Column widths of the directory table.
const (
	colClient  = 24
	colPatient = 14
	colPID     = 9
	colBreed   = 26
	colGender  = 8
	colPhone   = 16
)

func (m Model) renderClients(height int) string {
	st := m.theme.Styles()
	var b strings.Builder

	search := m.clients.search.View()
	count := entriesLabel(len(m.clients.rows), len(m.store.Pets()))
	b.WriteString("  " + search + "  " + st.FaintText.Render(count) + "\n\n")

	header := "  " + padRight("CLIENT", colClient) + padRight("PATIENT", colPatient) +
		padRight("PID", colPID) + padRight("SPECIES / BREED", colBreed) +
		padRight("GENDER", colGender) + padRight("PHONE", colPhone)
	b.WriteString(st.MutedText.Bold(true).Render(header) + "\n")

	if len(m.clients.rows) == 0 {
		b.WriteString("\n  " + st.FaintText.Render("No matching records.") + "\n")
	}

	visible := height - 5
	start := 0
	if visible > 0 && m.clients.selected >= visible {
		start = m.clients.selected - visible + 1
	}
	for i := start; i < len(m.clients.rows); i++ {
		if visible > 0 && i-start >= visible {
			break
		}
		row := m.clients.rows[i]
		line := m.renderClientRow(row)
		if i == m.clients.selected {
			line = st.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	content := b.String()
	if m.clients.confirm != nil {
		return m.renderDeleteConfirm(content)
	}
	return content
}

func (m Model) renderClientRow(row clientRow) string {
	client := ""
	if row.First {
		client = row.Client.Title + " " + row.Client.Name
	}
	name := row.Pet.Name
	if name == "" {
		name = "Unknown"
	}
	breed := row.Pet.Species
	if row.Pet.Breed != "" {
		breed += " / " + row.Pet.Breed
	}
	phone := ""
	if row.First {
		phone = row.Client.Phone
	}
	return padRight(client, colClient) + padRight(name, colPatient) +
		padRight(row.Pet.PID, colPID) + padRight(breed, colBreed) +
		padRight(row.Pet.Gender, colGender) + padRight(phone, colPhone)
}

func (m Model) renderDeleteConfirm(background string) string {
	st := m.theme.Styles()
	target := m.clients.confirm

	body := fmt.Sprintf("Delete %s?", patientLabel(target.petName))
	warn := "This cannot be undone."
	if target.lastPet {
		warn = fmt.Sprintf("This is %s's last patient; the client record is removed too.", target.clientName)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Render(st.DangerText.Render(body) + "\n" +
			st.MutedText.Render(warn) + "\n\n" +
			st.Text.Render("y confirm   esc cancel"))

	return lipgloss.Place(m.width, lipgloss.Height(background), lipgloss.Center, lipgloss.Center, box)
}
