package tui

import (
	"fmt"
	"io"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// Console is a ports.Presenter for one-shot commands. It prints the
// state changes a command causes instead of drawing a screen.
type Console struct {
	w io.Writer
}

var _ ports.Presenter = (*Console)(nil)

// NewConsole creates a console presenter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// RenderTime prints the remaining time.
func (c *Console) RenderTime(seconds int) {
	fmt.Fprintf(c.w, "Remaining: %s\n", formatClock(seconds))
}

// RenderProgress is a no-op; the remaining time line covers it.
func (c *Console) RenderProgress(remaining, total int) {}

// RenderModeSelection prints the mode label.
func (c *Console) RenderModeSelection(mode domain.Mode) {
	fmt.Fprintf(c.w, "Mode: %s\n", mode.Label())
}

// RenderRunningState prints a line when the timer pauses.
func (c *Console) RenderRunningState(running bool) {
	if !running {
		fmt.Fprintln(c.w, "Timer paused")
	}
}

// RenderStats prints today's count and the total work time.
func (c *Console) RenderStats(todaySessions, totalMinutes int) {
	fmt.Fprintf(c.w, "Today: %d sessions, total %s\n", todaySessions, FormatMinutes(totalMinutes))
}

// RenderCycleProgress is a no-op.
func (c *Console) RenderCycleProgress(completedWork int, mode domain.Mode) {}

// RenderTheme prints the theme name.
func (c *Console) RenderTheme(theme domain.Theme) {
	fmt.Fprintf(c.w, "Theme: %s\n", theme)
}

// ShowCompletionPrompt prints the prompt. One-shot commands never confirm.
func (c *Console) ShowCompletionPrompt(title, message string, onConfirm func()) {
	fmt.Fprintf(c.w, "%s %s\n", title, message)
}

// PlayNotificationSound is silent for one-shot commands.
func (c *Console) PlayNotificationSound() error {
	return nil
}
