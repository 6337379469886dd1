package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// Run starts the interactive timer and blocks until the user quits or ctx
// is cancelled. Inline mode skips the alternate screen.
func Run(ctx context.Context, model Model) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !model.inline {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// ShowStatus displays the persisted timer state without starting
// interactive mode.
func ShowStatus(w io.Writer, snap domain.StateSnapshot, stats domain.DailyStats, next domain.Mode) {
	fmt.Fprintln(w, "🍅 Pomodoro")
	fmt.Fprintf(w, "   Mode: %s\n", snap.Mode.Label())
	fmt.Fprintf(w, "   Remaining: %s\n", formatClock(snap.RemainingTime))
	fmt.Fprintf(w, "   Progress: %.0f%%\n", snap.Progress()*100)
	fmt.Fprintf(w, "   Cycle: %d of %d\n", snap.PomodoroCount%domain.SessionsBeforeLongBreak, domain.SessionsBeforeLongBreak)
	fmt.Fprintf(w, "   Next: %s\n", next.Label())
	fmt.Fprintf(w, "   Theme: %s\n", snap.Theme)

	ShowStats(w, stats)
}

// ShowStats displays today's count and the all-time total.
func ShowStats(w io.Writer, stats domain.DailyStats) {
	fmt.Fprintf(w, "\n📊 Stats:\n")
	fmt.Fprintf(w, "   Today: %d sessions\n", stats.TodaySessions)
	fmt.Fprintf(w, "   Total Work Time: %s\n", FormatMinutes(stats.TotalWorkMinutes))
}

// ShowError displays an error message.
func ShowError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
