package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/pomodoro-cli/internal/domain"
)

func TestTimerService_SwitchMode(t *testing.T) {
	modes := []domain.Mode{domain.ModeWork, domain.ModeShortBreak, domain.ModeLongBreak}

	for _, mode := range modes {
		t.Run(string(mode), func(t *testing.T) {
			f := newTimerFixture(t)
			f.state.SetRemainingTime(17)

			require.NoError(t, f.timer.SwitchMode(f.ctx, mode))

			assert.Equal(t, mode, f.state.Mode())
			assert.Equal(t, mode.TotalSeconds(), f.state.RemainingTime())
			assert.Equal(t, mode, f.presenter.mode)
			assert.Equal(t, mode.TotalSeconds(), f.presenter.time)
			assert.Equal(t, 0.0, f.presenter.progress())
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		f := newTimerFixture(t)
		err := f.timer.SwitchMode(f.ctx, domain.Mode("nap"))
		assert.True(t, errors.Is(err, domain.ErrInvalidMode))
		assert.Equal(t, domain.ModeWork, f.state.Mode())
	})

	t.Run("keeps running flag", func(t *testing.T) {
		f := newTimerFixture(t)
		f.timer.Start(f.ctx)
		require.NoError(t, f.timer.SwitchMode(f.ctx, domain.ModeShortBreak))
		assert.True(t, f.state.IsRunning())
		assert.Equal(t, 1, f.scheduler.active())

		f.scheduler.advance(1)
		assert.Equal(t, 299, f.state.RemainingTime())
	})
}

func TestTimerService_StartIdempotent(t *testing.T) {
	f := newTimerFixture(t)

	f.timer.Start(f.ctx)
	f.timer.Start(f.ctx)

	assert.True(t, f.state.IsRunning())
	assert.True(t, f.presenter.running)
	assert.Len(t, f.scheduler.tasks, 1, "second Start must not schedule another tick")

	f.scheduler.advance(1)
	assert.Equal(t, 1499, f.state.RemainingTime(), "exactly one decrement per tick")
}

func TestTimerService_PauseIdempotent(t *testing.T) {
	f := newTimerFixture(t)

	f.timer.Pause(f.ctx)
	assert.False(t, f.state.IsRunning())
	_, ok, err := f.store.GetItem(f.ctx, StateKey)
	require.NoError(t, err)
	assert.False(t, ok, "pausing an idle timer persists nothing")

	f.timer.Start(f.ctx)
	f.scheduler.advance(3)
	f.timer.Pause(f.ctx)
	f.timer.Pause(f.ctx)

	assert.False(t, f.state.IsRunning())
	assert.Equal(t, 0, f.scheduler.active())

	f.scheduler.advance(10)
	assert.Equal(t, 1497, f.state.RemainingTime(), "no tick after pause")

	_, ok, err = f.store.GetItem(f.ctx, StateKey)
	require.NoError(t, err)
	assert.True(t, ok, "pause persists the snapshot")
}

func TestTimerService_Toggle(t *testing.T) {
	f := newTimerFixture(t)

	f.timer.Toggle(f.ctx)
	assert.True(t, f.state.IsRunning())

	f.timer.Toggle(f.ctx)
	assert.False(t, f.state.IsRunning())
}

func TestTimerService_Tick(t *testing.T) {
	f := newTimerFixture(t)
	require.NoError(t, f.timer.SwitchMode(f.ctx, domain.ModeShortBreak))
	f.state.SetRemainingTime(3)
	f.timer.Start(f.ctx)

	f.scheduler.advance(1)
	assert.Equal(t, 2, f.state.RemainingTime())
	assert.Equal(t, 2, f.presenter.time)
	assert.Equal(t, 0, f.presenter.prompts)

	f.scheduler.advance(1)
	assert.Equal(t, 1, f.state.RemainingTime())

	f.scheduler.advance(1)
	assert.Equal(t, 0, f.state.RemainingTime())
	assert.False(t, f.state.IsRunning())
	assert.Equal(t, 1, f.presenter.prompts, "completion fires exactly once")
	assert.Equal(t, 1, f.presenter.sounds)

	f.scheduler.advance(5)
	assert.Equal(t, 1, f.presenter.prompts)
	assert.Equal(t, 0, f.state.RemainingTime(), "remaining never goes negative")
}

func TestTimerService_TickAtZeroCompletes(t *testing.T) {
	f := newTimerFixture(t)
	f.timer.Start(f.ctx)
	f.state.SetRemainingTime(0)

	f.scheduler.advance(1)

	assert.Equal(t, 0, f.state.RemainingTime())
	assert.Equal(t, 1, f.state.PomodoroCount())
	assert.Equal(t, 1, f.presenter.prompts)
}

func TestTimerService_Autosave(t *testing.T) {
	f := newTimerFixture(t)
	f.timer.Start(f.ctx)

	f.scheduler.advance(4)
	_, ok, err := f.store.GetItem(f.ctx, StateKey)
	require.NoError(t, err)
	assert.False(t, ok, "1496 is not a multiple of five")

	f.scheduler.advance(1)
	raw, ok, err := f.store.GetItem(f.ctx, StateKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"mode":"work","remainingTime":1495,"pomodoroCount":0,"theme":"dark"}`, raw)
}

func TestTimerService_FullWorkInterval(t *testing.T) {
	f := newTimerFixture(t)
	f.timer.Start(f.ctx)

	f.scheduler.advance(1500)

	assert.Equal(t, 1, f.state.PomodoroCount())
	assert.Equal(t, domain.ModeWork, f.state.Mode(), "no auto-advance")
	assert.False(t, f.state.IsRunning())
	assert.Equal(t, 1, f.presenter.prompts)
	assert.Equal(t, "Time's up!", f.presenter.promptTitle)
	assert.Contains(t, f.presenter.promptMessage, "short break")

	sessions, err := f.persistence.LoadSessions(f.ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.ModeWork, sessions[0].Type)
	assert.Equal(t, 25, sessions[0].DurationMinutes)
	assert.Equal(t, 1, f.presenter.todaySessions)
	assert.Equal(t, 25, f.presenter.totalMinutes)

	require.NotNil(t, f.presenter.confirm)
	f.presenter.confirm()

	assert.Equal(t, domain.ModeShortBreak, f.state.Mode())
	assert.Equal(t, 300, f.state.RemainingTime())
	assert.True(t, f.state.IsRunning())
}

func TestTimerService_FourthWorkEarnsLongBreak(t *testing.T) {
	f := newTimerFixture(t)
	f.state.SetPomodoroCount(3)
	f.timer.Start(f.ctx)

	f.scheduler.advance(1500)

	assert.Equal(t, 4, f.state.PomodoroCount())
	assert.Contains(t, f.presenter.promptMessage, "long break")
	assert.Equal(t, domain.ModeLongBreak, f.timer.NextMode(), "suggestion while the prompt is open")

	f.presenter.confirm()
	assert.Equal(t, domain.ModeLongBreak, f.state.Mode())
	assert.Equal(t, 900, f.state.RemainingTime())
}

func TestTimerService_BreakLeadsToWork(t *testing.T) {
	f := newTimerFixture(t)
	require.NoError(t, f.timer.SwitchMode(f.ctx, domain.ModeLongBreak))
	f.state.SetPomodoroCount(4)
	f.timer.Start(f.ctx)

	f.scheduler.advance(900)

	assert.Equal(t, 4, f.state.PomodoroCount(), "breaks are not counted")
	sessions, err := f.persistence.LoadSessions(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions, "only work sessions are recorded")

	f.presenter.confirm()
	assert.Equal(t, domain.ModeWork, f.state.Mode())
	assert.Equal(t, 1500, f.state.RemainingTime())
}

func TestTimerService_StartAfterDismissedPrompt(t *testing.T) {
	f := newTimerFixture(t)
	f.state.SetRemainingTime(1)
	f.timer.Start(f.ctx)
	f.scheduler.advance(1)
	require.Equal(t, 1, f.state.PomodoroCount())

	// Prompt dismissed; the user presses start instead.
	f.timer.Start(f.ctx)

	assert.Equal(t, domain.ModeShortBreak, f.state.Mode())
	assert.Equal(t, 300, f.state.RemainingTime())
	assert.Equal(t, 1, f.state.PomodoroCount(), "the finished interval is not counted twice")
}

func TestTimerService_NotificationFailureIsNotFatal(t *testing.T) {
	f := newTimerFixture(t)
	f.presenter.soundErr = errors.New("no audio device")
	f.state.SetRemainingTime(1)
	f.timer.Start(f.ctx)

	f.scheduler.advance(1)

	assert.Equal(t, 1, f.state.PomodoroCount())
	assert.Equal(t, 1, f.presenter.prompts)
}

func TestTimerService_Reset(t *testing.T) {
	f := newTimerFixture(t)
	require.NoError(t, f.timer.SwitchMode(f.ctx, domain.ModeShortBreak))
	f.timer.Start(f.ctx)
	f.scheduler.advance(42)

	f.timer.Reset(f.ctx)

	assert.False(t, f.state.IsRunning())
	assert.Equal(t, 0, f.scheduler.active())
	assert.Equal(t, 300, f.state.RemainingTime())
	assert.Equal(t, 300, f.presenter.time)
	assert.Equal(t, 0.0, f.presenter.progress())
}

func TestTimerService_ToggleTheme(t *testing.T) {
	f := newTimerFixture(t)

	f.timer.ToggleTheme(f.ctx)
	assert.Equal(t, domain.ThemeLight, f.state.Theme())
	assert.Equal(t, domain.ThemeLight, f.presenter.theme)

	f.timer.ToggleTheme(f.ctx)
	assert.Equal(t, domain.ThemeDark, f.state.Theme())
}

func TestTimerService_NextMode(t *testing.T) {
	f := newTimerFixture(t)
	assert.Equal(t, domain.ModeShortBreak, f.timer.NextMode())

	f.state.SetPomodoroCount(3)
	assert.Equal(t, domain.ModeLongBreak, f.timer.NextMode())

	require.NoError(t, f.timer.SwitchMode(f.ctx, domain.ModeLongBreak))
	assert.Equal(t, domain.ModeWork, f.timer.NextMode())
}

func TestTimerService_NextModeMatchesStartAfterDismiss(t *testing.T) {
	f := newTimerFixture(t)
	f.state.SetPomodoroCount(3)
	f.timer.Start(f.ctx)
	f.scheduler.advance(1500)
	require.Equal(t, 0, f.state.RemainingTime())

	suggested := f.timer.NextMode()
	assert.Equal(t, domain.ModeLongBreak, suggested)

	f.timer.Start(f.ctx)
	assert.Equal(t, suggested, f.state.Mode())
}

func TestTimerService_Restore(t *testing.T) {
	t.Run("first run", func(t *testing.T) {
		f := newTimerFixture(t)

		loaded := f.timer.Restore(f.ctx)

		assert.False(t, loaded)
		assert.Equal(t, domain.ModeWork, f.presenter.mode)
		assert.Equal(t, 1500, f.presenter.time)
		assert.Equal(t, domain.ThemeDark, f.presenter.theme)
		assert.Equal(t, 0, f.presenter.todaySessions)
		assert.Equal(t, 0, f.presenter.totalMinutes)
		assert.Equal(t, 1, f.presenter.statsRenders)
	})

	t.Run("saved snapshot", func(t *testing.T) {
		f := newTimerFixture(t)
		require.NoError(t, f.store.SetItem(f.ctx, StateKey,
			`{"mode":"shortBreak","remainingTime":120,"pomodoroCount":2,"theme":"light"}`))

		loaded := f.timer.Restore(f.ctx)

		assert.True(t, loaded)
		assert.Equal(t, domain.ModeShortBreak, f.presenter.mode)
		assert.Equal(t, 120, f.presenter.time)
		assert.Equal(t, domain.ThemeLight, f.presenter.theme)
		assert.Equal(t, 2, f.presenter.cycleCount)
		assert.False(t, f.presenter.running)
	})

	t.Run("malformed snapshot keeps defaults", func(t *testing.T) {
		f := newTimerFixture(t)
		require.NoError(t, f.store.SetItem(f.ctx, StateKey, `{"mode":`))

		loaded := f.timer.Restore(f.ctx)

		assert.False(t, loaded)
		assert.Equal(t, domain.ModeWork, f.state.Mode())
		assert.Equal(t, 1500, f.state.RemainingTime())
	})
}

func TestTimerService_StorageFailureIsNotFatal(t *testing.T) {
	f := newTimerFixtureWithStore(failingStore{err: errDiskFull})

	f.timer.Restore(f.ctx)
	f.state.SetRemainingTime(1)
	f.timer.Start(f.ctx)
	f.scheduler.advance(1)

	assert.Equal(t, 1, f.state.PomodoroCount())
	assert.Equal(t, 1, f.presenter.prompts)
}
