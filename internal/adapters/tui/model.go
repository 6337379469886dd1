// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// Engine is the set of timer operations the UI can trigger.
type Engine interface {
	Toggle(ctx context.Context)
	Pause(ctx context.Context)
	Reset(ctx context.Context)
	SwitchMode(ctx context.Context, mode domain.Mode) error
	ToggleTheme(ctx context.Context)
}

// resolveTheme fills any empty palette colors with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	fillEmpty(&resolved.Dark, defaults.Dark)
	fillEmpty(&resolved.Light, defaults.Light)
	if resolved.IconApp == "" {
		resolved.IconApp = defaults.IconApp
	}
	if resolved.IconStats == "" {
		resolved.IconStats = defaults.IconStats
	}
	if resolved.IconPaused == "" {
		resolved.IconPaused = defaults.IconPaused
	}
	return resolved
}

func fillEmpty(p *config.Palette, defaults config.Palette) {
	rv := reflect.ValueOf(p).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
}

// Model represents the TUI state. All mutable state lives behind
// pointers so bubbletea's value copies share it.
type Model struct {
	ctx       context.Context
	engine    Engine
	display   *Display
	scheduler *Scheduler
	theme     config.ThemeConfig
	inline    bool
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, engine Engine, display *Display, scheduler *Scheduler, theme *config.ThemeConfig) Model {
	return Model{
		ctx:       ctx,
		engine:    engine,
		display:   display,
		scheduler: scheduler,
		theme:     resolveTheme(theme),
	}
}

// WithInline switches the model to the compact single-block layout.
func (m Model) WithInline(inline bool) Model {
	m.inline = inline
	if inline {
		m.width = getTerminalWidth()
	}
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scheduler.Flush(), m.titleCmd())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if quit := m.handleKey(msg); quit {
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.scheduler.Handle(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, tea.Batch(m.scheduler.Flush(), m.titleCmd())
}

// handleKey dispatches a key press. It returns true when the program
// should exit.
func (m Model) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		m.engine.Pause(m.ctx)
		return true
	}

	// The completion prompt is modal.
	if m.display.HasPrompt() {
		switch msg.String() {
		case "enter", "y":
			m.display.ConfirmPrompt()
		case "esc", "n":
			m.display.DismissPrompt()
		}
		return false
	}

	switch msg.String() {
	case " ", "s", "p":
		m.engine.Toggle(m.ctx)
	case "r":
		m.engine.Reset(m.ctx)
	case "1":
		_ = m.engine.SwitchMode(m.ctx, domain.ModeWork)
	case "2":
		_ = m.engine.SwitchMode(m.ctx, domain.ModeShortBreak)
	case "3":
		_ = m.engine.SwitchMode(m.ctx, domain.ModeLongBreak)
	case "tab":
		_ = m.engine.SwitchMode(m.ctx, nextTab(m.display.mode))
	case "t":
		m.engine.ToggleTheme(m.ctx)
	}
	return false
}

// titleCmd updates the terminal title when the clock changed.
func (m Model) titleCmd() tea.Cmd {
	if m.inline || !m.display.titleDirty {
		return nil
	}
	m.display.titleDirty = false
	return tea.SetWindowTitle(fmt.Sprintf("%s - Pomodoro", formatClock(m.display.seconds)))
}

// nextTab cycles through the modes in display order.
func nextTab(current domain.Mode) domain.Mode {
	for i, mode := range domain.Modes {
		if mode == current {
			return domain.Modes[(i+1)%len(domain.Modes)]
		}
	}
	return domain.ModeWork
}

// formatClock formats seconds as MM:SS.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatMinutes formats a minute total as "Xh Ym", or "Ym" under an hour.
func FormatMinutes(total int) string {
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
