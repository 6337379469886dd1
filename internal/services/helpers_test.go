package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/adapters/storage"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

func setupTestStorage(t *testing.T) (ports.KeyValueStore, func()) {
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	return store, func() { store.Close() }
}

// fakePresenter records the last value of each render call.
type fakePresenter struct {
	time          int
	remaining     int
	total         int
	mode          domain.Mode
	running       bool
	todaySessions int
	totalMinutes  int
	cycleCount    int
	cycleMode     domain.Mode
	theme         domain.Theme

	timeRenders  int
	statsRenders int
	sounds       int
	soundErr     error

	promptTitle   string
	promptMessage string
	confirm       func()
	prompts       int
}

func (p *fakePresenter) RenderTime(seconds int) {
	p.time = seconds
	p.timeRenders++
}

func (p *fakePresenter) RenderProgress(remaining, total int) {
	p.remaining = remaining
	p.total = total
}

func (p *fakePresenter) RenderModeSelection(mode domain.Mode) {
	p.mode = mode
}

func (p *fakePresenter) RenderRunningState(running bool) {
	p.running = running
}

func (p *fakePresenter) RenderTheme(theme domain.Theme) {
	p.theme = theme
}

func (p *fakePresenter) RenderStats(todaySessions, totalMinutes int) {
	p.todaySessions = todaySessions
	p.totalMinutes = totalMinutes
	p.statsRenders++
}

func (p *fakePresenter) RenderCycleProgress(completedWork int, mode domain.Mode) {
	p.cycleCount = completedWork
	p.cycleMode = mode
}

func (p *fakePresenter) ShowCompletionPrompt(title, message string, onConfirm func()) {
	p.promptTitle = title
	p.promptMessage = message
	p.confirm = onConfirm
	p.prompts++
}

func (p *fakePresenter) PlayNotificationSound() error {
	p.sounds++
	return p.soundErr
}

// progress mirrors what a progress indicator would display.
func (p *fakePresenter) progress() float64 {
	if p.total == 0 {
		return 0
	}
	return float64(p.total-p.remaining) / float64(p.total)
}

// manualScheduler fires tasks only when the test says so.
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

func (s *manualScheduler) Every(interval time.Duration, fn func()) ports.TaskHandle {
	task := &manualTask{fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// active returns the number of tasks that have not been cancelled.
func (s *manualScheduler) active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// advance fires every live task n times.
func (s *manualScheduler) advance(n int) {
	for i := 0; i < n; i++ {
		for _, t := range append([]*manualTask(nil), s.tasks...) {
			if !t.cancelled {
				t.fn()
			}
		}
	}
}

// failingStore returns err from every operation.
type failingStore struct {
	err error
}

func (f failingStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.err
}

func (f failingStore) SetItem(ctx context.Context, key, value string) error {
	return f.err
}

func (f failingStore) RemoveItem(ctx context.Context, key string) error {
	return f.err
}

func (f failingStore) Close() error {
	return nil
}

var errDiskFull = errors.New("disk full")

type timerFixture struct {
	ctx         context.Context
	store       ports.KeyValueStore
	state       *domain.TimerState
	persistence *PersistenceService
	presenter   *fakePresenter
	scheduler   *manualScheduler
	timer       *TimerService
}

var fixedNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func newTimerFixture(t *testing.T) *timerFixture {
	t.Helper()
	store, cleanup := setupTestStorage(t)
	t.Cleanup(cleanup)
	return newTimerFixtureWithStore(store)
}

func newTimerFixtureWithStore(store ports.KeyValueStore) *timerFixture {
	state := domain.NewTimerState()
	persistence := NewPersistenceService(store, state, nil)
	persistence.SetClock(func() time.Time { return fixedNow })
	presenter := &fakePresenter{}
	scheduler := &manualScheduler{}
	return &timerFixture{
		ctx:         context.Background(),
		store:       store,
		state:       state,
		persistence: persistence,
		presenter:   presenter,
		scheduler:   scheduler,
		timer:       NewTimerService(state, persistence, presenter, scheduler, nil),
	}
}
