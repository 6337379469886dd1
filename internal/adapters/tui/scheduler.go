package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// tickMsg is delivered once per interval for a scheduled task.
type tickMsg struct {
	id int
}

type scheduledTask struct {
	interval time.Duration
	fn       func()
}

// Scheduler implements ports.Scheduler on top of the bubbletea event loop.
// Callbacks run inside Update, so they never interleave with key handling.
// Commands produced by Every are collected and handed to the program by
// Flush after each message.
type Scheduler struct {
	nextID  int
	tasks   map[int]scheduledTask
	pending []tea.Cmd
}

var _ ports.Scheduler = (*Scheduler)(nil)

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[int]scheduledTask)}
}

// Every schedules fn to run once per interval until the handle is cancelled.
func (s *Scheduler) Every(interval time.Duration, fn func()) ports.TaskHandle {
	s.nextID++
	id := s.nextID
	s.tasks[id] = scheduledTask{interval: interval, fn: fn}
	s.pending = append(s.pending, tickCmd(id, interval))
	return &taskHandle{scheduler: s, id: id}
}

// Handle runs the task a tick belongs to and re-arms it. Ticks for
// cancelled tasks are dropped.
func (s *Scheduler) Handle(msg tickMsg) {
	task, ok := s.tasks[msg.id]
	if !ok {
		return
	}
	task.fn()
	if _, ok := s.tasks[msg.id]; ok {
		s.pending = append(s.pending, tickCmd(msg.id, task.interval))
	}
}

// Flush returns the commands queued since the last call.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of live tasks.
func (s *Scheduler) Active() int {
	return len(s.tasks)
}

type taskHandle struct {
	scheduler *Scheduler
	id        int
}

// Cancel removes the task. Safe to call more than once.
func (h *taskHandle) Cancel() {
	delete(h.scheduler.tasks, h.id)
}

// tickCmd creates a command that sends a tick message.
func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
