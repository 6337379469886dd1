package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// viewCompletionPrompt renders the modal shown when an interval ends.
func (m Model) viewCompletionPrompt() string {
	prompt := m.display.prompt
	if prompt == nil {
		return ""
	}

	p := m.palette()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.getThemeColor())
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.ColorText))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.ColorHelp))

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(prompt.title),
		textStyle.Render(prompt.message),
		"",
		helpStyle.Render("[enter] continue  [esc] dismiss"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.getThemeColor()).
		Padding(0, 2).
		Render(body)
}
