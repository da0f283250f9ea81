package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHelp(background string) string {
	st := m.theme.Styles()

	section := func(title string, items ...[2]string) string {
		var b strings.Builder
		b.WriteString(st.AccentText.Bold(true).Render(title) + "\n")
		for _, it := range items {
			b.WriteString("  " + st.WarningText.Render(padRight(it[0], 12)) +
				st.Text.Render(it[1]) + "\n")
		}
		return b.String()
	}

	body := section("Views",
		[2]string{"c", "client directory"},
		[2]string{"a", "appointment calendar"},
		[2]string{"w", "waiting room"},
		[2]string{"tab", "cycle views"},
	) + "\n" + section("Clients",
		[2]string{"/", "live search by name, phone, or email"},
		[2]string{"n", "register a new client"},
		[2]string{"enter", "edit the selected record"},
		[2]string{"d", "delete the selected patient"},
	) + "\n" + section("Registration",
		[2]string{"tab", "move between fields"},
		[2]string{"←/→", "change title, species, breed, gender"},
		[2]string{"ctrl+n", "add another patient"},
		[2]string{"ctrl+x", "remove the current patient"},
		[2]string{"ctrl+s", "save"},
		[2]string{"esc", "discard"},
	) + "\n" + section("General",
		[2]string{"T", "cycle color theme"},
		[2]string{"q", "quit"},
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 3).
		Render(body + "\n" + st.FaintText.Render("press any key to close"))

	return lipgloss.Place(m.width, lipgloss.Height(background), lipgloss.Center, lipgloss.Center, box)
}
