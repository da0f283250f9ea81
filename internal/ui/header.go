package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nisaljde/VetPulzNext/internal/notify"
)

func viewLabel(v View) string {
	switch v {
	case ViewClients:
		return "Clients"
	case ViewRegister:
		return "Registration"
	case ViewAppointments:
		return "Appointments"
	case ViewQueue:
		return "Waiting Room"
	default:
		return ""
	}
}

// renderHeader draws the top bar: logo, clinic name, record counts, and
// the signed-in user.
func (m Model) renderHeader() string {
	st := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Join(
		bg.Render(st.Logo, " vetpulz"),
		bg.Render(st.MutedText, m.cfg.ClinicName),
		bg.Sep(st.FaintText, "•"),
		bg.Render(st.Text, viewLabel(m.currentView)),
	)

	counts := fmt.Sprintf("%d clients  %d patients", len(m.store.Clients()), len(m.store.Pets()))
	right := bg.Render(st.FaintText, counts)
	if m.user != nil {
		right = bg.Join(right, bg.Sep(st.FaintText, "•"), bg.Render(st.AccentText, m.user.Name))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return bg.FillLine(left+bg.Spaces(gap)+right, m.width)
}

// renderCommandBar draws per-view key hints under the header.
func (m Model) renderCommandBar() string {
	st := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	var hints []string
	switch m.currentView {
	case ViewClients:
		hints = []string{"/ search", "n new", "enter edit", "d delete", "tab next view"}
	case ViewRegister:
		hints = []string{"tab fields", "←/→ options", "ctrl+n add pet", "ctrl+s save", "esc cancel"}
	case ViewAppointments:
		hints = []string{"[ / ] month", "t event type", "tab next view"}
	case ViewQueue:
		hints = []string{"j/k move", "enter next token", "tab next view"}
	}
	hints = append(hints, "T theme", "? help", "q quit")

	line := bg.Spaces(1)
	for i, h := range hints {
		if i > 0 {
			line += bg.Sep(st.FaintText, "│")
		}
		line += bg.Render(st.MutedText, h)
	}
	return bg.FillLine(line, m.width)
}

// renderStatusBar draws the bottom line, showing the latest toast when
// one is live.
func (m Model) renderStatusBar() string {
	st := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	toast, ok := m.toasts.Latest()
	if !ok {
		return bg.FillLine(bg.Spaces(1)+bg.Render(st.FaintText, "ready"), m.width)
	}
	style := st.SuccessText
	if toast.Severity == notify.SeverityDestructive {
		style = st.DangerText
	}
	line := bg.Spaces(1) + bg.Render(style, toast.Title) +
		bg.Sep(st.FaintText, "·") + bg.Render(st.Text, toast.Description)
	return bg.FillLine(line, m.width)
}
