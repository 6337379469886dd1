package tui

import (
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// Alerter plays the completion tone and shows desktop notifications.
type Alerter interface {
	PlaySound() error
	Notify(title, message string) error
}

// completionPrompt is the modal shown when an interval ends.
type completionPrompt struct {
	title     string
	message   string
	onConfirm func()
}

// Display holds what the timer engine last asked to be shown.
// It implements ports.Presenter; Model renders from it.
type Display struct {
	seconds       int
	remaining     int
	total         int
	mode          domain.Mode
	running       bool
	todaySessions int
	totalMinutes  int
	cycleCount    int
	cycleMode     domain.Mode
	theme         domain.Theme
	prompt        *completionPrompt
	titleDirty    bool

	alerter Alerter
}

var _ ports.Presenter = (*Display)(nil)

// NewDisplay creates a display showing the default state.
// A nil alerter disables sound and desktop notifications.
func NewDisplay(alerter Alerter) *Display {
	return &Display{
		seconds:   domain.ModeWork.TotalSeconds(),
		remaining: domain.ModeWork.TotalSeconds(),
		total:     domain.ModeWork.TotalSeconds(),
		mode:      domain.ModeWork,
		cycleMode: domain.ModeWork,
		theme:     domain.ThemeDark,
		alerter:   alerter,
	}
}

// RenderTime records the clock value and marks the window title for update.
func (d *Display) RenderTime(seconds int) {
	d.seconds = seconds
	d.titleDirty = true
}

// RenderProgress records the values the progress bar is drawn from.
func (d *Display) RenderProgress(remaining, total int) {
	d.remaining = remaining
	d.total = total
}

// RenderModeSelection highlights mode in the tab row.
func (d *Display) RenderModeSelection(mode domain.Mode) {
	d.mode = mode
}

// RenderRunningState switches the running/paused styling.
func (d *Display) RenderRunningState(running bool) {
	d.running = running
}

// RenderStats updates the today and total figures.
func (d *Display) RenderStats(todaySessions, totalMinutes int) {
	d.todaySessions = todaySessions
	d.totalMinutes = totalMinutes
}

// RenderCycleProgress updates the cycle dots.
func (d *Display) RenderCycleProgress(completedWork int, mode domain.Mode) {
	d.cycleCount = completedWork
	d.cycleMode = mode
}

// RenderTheme selects the dark or light palette.
func (d *Display) RenderTheme(theme domain.Theme) {
	d.theme = theme
}

// ShowCompletionPrompt opens the modal and raises a desktop notification.
func (d *Display) ShowCompletionPrompt(title, message string, onConfirm func()) {
	d.prompt = &completionPrompt{title: title, message: message, onConfirm: onConfirm}
	if d.alerter != nil {
		_ = d.alerter.Notify(title, message)
	}
}

// PlayNotificationSound plays the completion tone.
func (d *Display) PlayNotificationSound() error {
	if d.alerter == nil {
		return nil
	}
	return d.alerter.PlaySound()
}

// HasPrompt reports whether the completion modal is open.
func (d *Display) HasPrompt() bool {
	return d.prompt != nil
}

// ConfirmPrompt closes the modal and runs its confirm action.
func (d *Display) ConfirmPrompt() {
	p := d.prompt
	if p == nil {
		return
	}
	d.prompt = nil
	if p.onConfirm != nil {
		p.onConfirm()
	}
}

// DismissPrompt closes the modal without acting on it.
func (d *Display) DismissPrompt() {
	d.prompt = nil
}

// progress returns the elapsed fraction shown by the progress bar.
func (d *Display) progress() float64 {
	if d.total <= 0 {
		return 0
	}
	p := float64(d.total-d.remaining) / float64(d.total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// filledDots returns how many of the four cycle dots are lit.
// After the fourth work interval the full cycle stays lit through the
// long break and its prompt.
func (d *Display) filledDots() int {
	filled := d.cycleCount % domain.SessionsBeforeLongBreak
	if filled == 0 && d.cycleCount > 0 && (d.cycleMode.IsBreak() || d.prompt != nil) {
		return domain.SessionsBeforeLongBreak
	}
	return filled
}
