package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// tickInterval is the countdown resolution.
const tickInterval = time.Second

// autosaveEvery persists the snapshot whenever the remaining seconds are a
// multiple of this value.
const autosaveEvery = 5

// TimerService drives the countdown and the work/break cycle.
// All methods must be called from a single execution context; the
// scheduler is expected to deliver ticks in that same context.
type TimerService struct {
	state       *domain.TimerState
	persistence *PersistenceService
	presenter   ports.Presenter
	scheduler   ports.Scheduler
	logger      *log.Logger

	handle ports.TaskHandle
}

// NewTimerService creates a timer service. A nil logger discards output.
func NewTimerService(
	state *domain.TimerState,
	persistence *PersistenceService,
	presenter ports.Presenter,
	scheduler ports.Scheduler,
	logger *log.Logger,
) *TimerService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &TimerService{
		state:       state,
		persistence: persistence,
		presenter:   presenter,
		scheduler:   scheduler,
		logger:      logger,
	}
}

// State returns a snapshot of the current timer state.
func (s *TimerService) State() domain.StateSnapshot {
	return s.state.Snapshot()
}

// Start begins counting down. It is a no-op while already running.
func (s *TimerService) Start(ctx context.Context) {
	if s.state.IsRunning() {
		return
	}

	// A finished interval (restored, or its prompt dismissed) is never
	// completed a second time.
	if s.state.RemainingTime() <= 0 {
		next := domain.NextMode(s.state.Mode(), s.state.PomodoroCount())
		s.switchMode(ctx, next)
	}

	s.state.SetIsRunning(true)
	s.handle = s.scheduler.Every(tickInterval, func() { s.tick(ctx) })
	s.presenter.RenderRunningState(true)
}

// Pause stops the countdown and persists the snapshot.
// It is a no-op while idle.
func (s *TimerService) Pause(ctx context.Context) {
	if !s.state.IsRunning() {
		return
	}

	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	s.state.SetIsRunning(false)
	s.presenter.RenderRunningState(false)
	s.save(ctx)
}

// Toggle starts an idle timer or pauses a running one.
func (s *TimerService) Toggle(ctx context.Context) {
	if s.state.IsRunning() {
		s.Pause(ctx)
		return
	}
	s.Start(ctx)
}

// Reset pauses and restores the full duration of the current mode.
func (s *TimerService) Reset(ctx context.Context) {
	s.Pause(ctx)
	s.state.SetRemainingTime(s.state.TotalTime())
	s.renderClock()
	s.save(ctx)
}

// SwitchMode selects a mode and resets the remaining time to its full
// duration. The running flag is left as is.
func (s *TimerService) SwitchMode(ctx context.Context, mode domain.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w %q", domain.ErrInvalidMode, mode)
	}
	s.switchMode(ctx, mode)
	return nil
}

func (s *TimerService) switchMode(ctx context.Context, mode domain.Mode) {
	s.state.SetMode(mode)
	s.state.SetRemainingTime(mode.TotalSeconds())
	s.presenter.RenderModeSelection(mode)
	s.renderClock()
	s.save(ctx)
}

// ToggleTheme flips between the dark and light color schemes.
func (s *TimerService) ToggleTheme(ctx context.Context) {
	s.SetTheme(ctx, s.state.Theme().Toggle())
}

// SetTheme applies and persists a color scheme.
func (s *TimerService) SetTheme(ctx context.Context, theme domain.Theme) {
	s.state.SetTheme(theme)
	s.presenter.RenderTheme(theme)
	s.save(ctx)
}

// NextMode returns the mode that would follow the current interval.
func (s *TimerService) NextMode() domain.Mode {
	return s.state.Snapshot().NextMode()
}

// Restore loads the persisted snapshot and renders the whole display.
// It reports whether a snapshot was found. Unreadable data is logged and
// the defaults are kept.
func (s *TimerService) Restore(ctx context.Context) bool {
	loaded, err := s.persistence.LoadState(ctx)
	if err != nil {
		s.logger.Printf("restoring state: %v", err)
	}

	s.presenter.RenderModeSelection(s.state.Mode())
	s.presenter.RenderTheme(s.state.Theme())
	s.renderClock()
	s.presenter.RenderRunningState(s.state.IsRunning())
	s.renderStats(ctx)
	return loaded
}

func (s *TimerService) tick(ctx context.Context) {
	if !s.state.IsRunning() {
		return
	}

	remaining := s.state.RemainingTime()
	if remaining <= 0 {
		s.complete(ctx)
		return
	}

	remaining--
	s.state.SetRemainingTime(remaining)
	s.renderClock()

	if remaining == 0 {
		s.complete(ctx)
		return
	}
	if remaining%autosaveEvery == 0 {
		s.save(ctx)
	}
}

func (s *TimerService) complete(ctx context.Context) {
	s.Pause(ctx)

	if err := s.presenter.PlayNotificationSound(); err != nil {
		s.logger.Printf("notification sound: %v", err)
	}

	finished := s.state.Mode()
	if finished == domain.ModeWork {
		s.state.SetPomodoroCount(s.state.PomodoroCount() + 1)
		if err := s.persistence.SaveSession(ctx, domain.NewWorkSession(s.persistence.Now())); err != nil {
			s.logger.Printf("recording session: %v", err)
		}
		s.save(ctx)
	}
	next := domain.NextMode(finished, s.state.PomodoroCount())

	s.renderStats(ctx)
	s.presenter.RenderCycleProgress(s.state.PomodoroCount(), finished)

	title, message := completionText(finished, next)
	s.presenter.ShowCompletionPrompt(title, message, func() {
		s.switchMode(ctx, next)
		s.Start(ctx)
	})
}

// completionText returns the prompt shown when an interval ends.
func completionText(finished, next domain.Mode) (string, string) {
	const title = "Time's up!"
	switch {
	case finished.IsBreak():
		return title, "Break is over. Ready for another work session?"
	case next == domain.ModeLongBreak:
		return title, "Great job! Four pomodoros done. You've earned a long break."
	default:
		return title, "Work session finished. Time for a short break?"
	}
}

func (s *TimerService) renderClock() {
	remaining := s.state.RemainingTime()
	s.presenter.RenderTime(remaining)
	s.presenter.RenderProgress(remaining, s.state.TotalTime())
	s.presenter.RenderCycleProgress(s.state.PomodoroCount(), s.state.Mode())
}

func (s *TimerService) renderStats(ctx context.Context) {
	stats, err := s.persistence.Stats(ctx)
	if err != nil {
		s.logger.Printf("loading stats: %v", err)
	}
	s.presenter.RenderStats(stats.TodaySessions, stats.TotalWorkMinutes)
}

func (s *TimerService) save(ctx context.Context) {
	if err := s.persistence.SaveState(ctx); err != nil {
		s.logger.Printf("saving state: %v", err)
	}
}
