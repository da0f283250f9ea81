package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nisaljde/VetPulzNext/internal/auth"
)

type loginState struct {
	email    textinput.Model
	password textinput.Model
	focus    int // 0 email, 1 password
	errText  string
}

func newLoginState() loginState {
	email := newInput("you@vetcare.com", 64, 32)
	email.Prompt = "> "
	email.Focus()

	password := newInput("password", 64, 32)
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginState{email: email, password: password}
}

func (ls *loginState) setFocus(i int) {
	ls.focus = i
	if i == 0 {
		ls.email.Focus()
		ls.password.Blur()
	} else {
		ls.email.Blur()
		ls.password.Focus()
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ls := &m.login
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		ls.setFocus(1 - ls.focus)
		return m, textinput.Blink
	case tea.KeyEnter:
		if ls.focus == 0 {
			ls.setFocus(1)
			return m, textinput.Blink
		}
		user, ok := auth.Authenticate(ls.email.Value(), ls.password.Value())
		if !ok {
			ls.errText = "No account matches that email."
			return m, nil
		}
		m.user = &user
		m.currentView = ViewClients
		m.reloadClients()
		return m.toast("Welcome", "Signed in as "+user.Name+".", false)
	}

	var cmd tea.Cmd
	if ls.focus == 0 {
		ls.email, cmd = ls.email.Update(msg)
	} else {
		ls.password, cmd = ls.password.Update(msg)
	}
	ls.errText = ""
	return m, cmd
}

func (m Model) renderLogin() string {
	st := m.theme.Styles()
	var b strings.Builder

	b.WriteString(st.Logo.Render("vetpulz") + "  " + st.MutedText.Render(m.cfg.ClinicName) + "\n\n")
	b.WriteString(st.MutedText.Render("Email") + "\n")
	b.WriteString(m.login.email.View() + "\n\n")
	b.WriteString(st.MutedText.Render("Password") + "\n")
	b.WriteString(m.login.password.View() + "\n")
	if m.login.errText != "" {
		b.WriteString("\n" + st.DangerText.Render(m.login.errText) + "\n")
	}
	b.WriteString("\n" + st.FaintText.Render("tab switch field   enter sign in") + "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 3).
		Render(b.String())

	if !m.ready {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
