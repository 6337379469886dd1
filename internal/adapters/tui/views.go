package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// palette returns the colors for the active theme.
func (m Model) palette() config.Palette {
	return m.theme.Palette(m.display.theme)
}

// getThemeColor returns the color for the current mode.
func (m Model) getThemeColor() lipgloss.Color {
	p := m.palette()
	if m.display.mode.IsBreak() {
		return lipgloss.Color(p.ColorBreak)
	}
	return lipgloss.Color(p.ColorWork)
}

// getTimerColor returns the color for the timer, accounting for pause state.
func (m Model) getTimerColor() lipgloss.Color {
	if !m.display.running {
		return lipgloss.Color(m.palette().ColorPaused)
	}
	return m.getThemeColor()
}

// progressBar returns a bar with the gradient for the current mode.
func (m Model) progressBar(width int) progress.Model {
	p := m.palette()
	var bar progress.Model
	if m.display.mode.IsBreak() {
		bar = progress.New(progress.WithGradient(p.BreakGradientStart, p.BreakGradientEnd), progress.WithoutPercentage())
	} else {
		bar = progress.New(progress.WithGradient(p.WorkGradientStart, p.WorkGradientEnd), progress.WithoutPercentage())
	}
	bar.Width = width
	return bar
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inline {
		return m.viewInline()
	}
	if m.width == 0 {
		return "Loading..."
	}

	p := m.palette()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.ColorTitle)).MarginBottom(1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Pomodoro", m.theme.IconApp)))
	sections = append(sections, m.viewModeTabs())
	sections = append(sections, "")
	sections = append(sections, renderBigTime(formatClock(m.display.seconds), m.getTimerColor(), m.width))

	if !m.display.running {
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.ColorText)).
			Background(lipgloss.Color(p.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		sections = append(sections, "", badge)
	}

	barWidth := m.width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	sections = append(sections, "", m.progressBar(barWidth).ViewAs(m.display.progress()))
	sections = append(sections, "", m.viewCycle())
	sections = append(sections, helpStyle.Render(m.statsLine()))

	if m.display.HasPrompt() {
		sections = append(sections, "", m.viewCompletionPrompt())
	} else {
		sections = append(sections, "", helpStyle.Render(m.helpLine()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewModeTabs renders the three mode selectors with the active one highlighted.
func (m Model) viewModeTabs() string {
	p := m.palette()
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.ColorText)).
		Background(m.getThemeColor()).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(p.ColorHelp)).Padding(0, 1)

	tabs := make([]string, 0, len(domain.Modes))
	for i, mode := range domain.Modes {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		if mode == m.display.mode {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewCycle renders one dot per work interval in the current cycle.
func (m Model) viewCycle() string {
	filled := m.display.filledDots()
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette().ColorWork))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette().ColorPaused))

	dots := make([]string, domain.SessionsBeforeLongBreak)
	for i := range dots {
		if i < filled {
			dots[i] = on.Render("●")
		} else {
			dots[i] = off.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m Model) statsLine() string {
	return fmt.Sprintf("%s Today: %d  ·  Total: %s",
		m.theme.IconStats, m.display.todaySessions, FormatMinutes(m.display.totalMinutes))
}

func (m Model) helpLine() string {
	action := "start"
	if m.display.running {
		action = "pause"
	}
	return fmt.Sprintf("[space] %s  [r]eset  [1-3] mode  [t]heme (%s)  [q]uit", action, m.display.theme)
}
