package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// viewInline renders a compact block that fits below the shell prompt.
func (m Model) viewInline() string {
	p := m.palette()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.ColorHelp))
	modeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.getThemeColor())
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.getTimerColor())

	status := ""
	if !m.display.running {
		status = " " + m.theme.IconPaused
	}

	barWidth := m.width - 32
	if barWidth < 10 {
		barWidth = 10
	}

	line := fmt.Sprintf("%s %s  %s%s  %s  %s",
		m.theme.IconApp,
		modeStyle.Render(m.display.mode.Label()),
		timeStyle.Render(formatClock(m.display.seconds)),
		status,
		m.progressBar(barWidth).ViewAs(m.display.progress()),
		m.viewCycle(),
	)

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.statsLine()))
	b.WriteString("\n")
	if prompt := m.display.prompt; prompt != nil {
		b.WriteString(modeStyle.Render(prompt.title) + " " + prompt.message)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[enter] continue  [esc] dismiss  [q]uit"))
	} else {
		b.WriteString(helpStyle.Render(m.helpLine()))
	}
	b.WriteString("\n")
	return b.String()
}
