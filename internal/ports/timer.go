package ports

import (
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// Presenter receives display events from the timer engine.
// This is a driving port (called by the application layer).
type Presenter interface {
	// RenderTime displays the remaining seconds.
	RenderTime(seconds int)

	// RenderProgress displays how much of the interval has elapsed.
	RenderProgress(remaining, total int)

	// RenderModeSelection highlights the active mode.
	RenderModeSelection(mode domain.Mode)

	// RenderRunningState switches the start/pause affordance.
	RenderRunningState(running bool)

	// RenderStats displays today's work sessions and the all-time minutes.
	RenderStats(todaySessions, totalMinutes int)

	// RenderCycleProgress displays the position within the four-session cycle.
	RenderCycleProgress(completedWork int, mode domain.Mode)

	// RenderTheme applies the color scheme.
	RenderTheme(theme domain.Theme)

	// ShowCompletionPrompt asks the user to continue. onConfirm runs only
	// if the user accepts.
	ShowCompletionPrompt(title, message string, onConfirm func())

	// PlayNotificationSound emits the completion alert.
	PlayNotificationSound() error
}

// TaskHandle identifies a scheduled recurring task.
type TaskHandle interface {
	// Cancel stops the task. After Cancel returns the callback is never
	// invoked again. Calling Cancel more than once is a no-op.
	Cancel()
}

// Scheduler runs callbacks on a fixed interval within the caller's
// execution context.
type Scheduler interface {
	// Every invokes fn once per interval until the handle is cancelled.
	Every(interval time.Duration, fn func()) TaskHandle
}
