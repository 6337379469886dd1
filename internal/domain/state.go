package domain

// TimerState is the single source of truth for the running timer.
// Setters overwrite without validation; the timer service keeps
// RemainingTime within [0, Mode().TotalSeconds()].
type TimerState struct {
	mode          Mode
	remainingTime int
	pomodoroCount int
	isRunning     bool
	theme         Theme
}

// StatePatch carries a partial update. Nil fields are left untouched.
type StatePatch struct {
	Mode          *Mode
	RemainingTime *int
	PomodoroCount *int
	IsRunning     *bool
	Theme         *Theme
}

// StateSnapshot is a value copy of TimerState for read-only callers.
type StateSnapshot struct {
	Mode          Mode
	RemainingTime int
	PomodoroCount int
	IsRunning     bool
	Theme         Theme
}

// NewTimerState returns the default state: idle work interval, dark theme.
func NewTimerState() *TimerState {
	return &TimerState{
		mode:          ModeWork,
		remainingTime: ModeWork.TotalSeconds(),
		theme:         ThemeDark,
	}
}

// Mode returns the current interval mode.
func (s *TimerState) Mode() Mode {
	return s.mode
}

// RemainingTime returns the seconds left in the current interval.
func (s *TimerState) RemainingTime() int {
	return s.remainingTime
}

// PomodoroCount returns the number of completed work intervals.
func (s *TimerState) PomodoroCount() int {
	return s.pomodoroCount
}

// IsRunning reports whether the countdown is active.
func (s *TimerState) IsRunning() bool {
	return s.isRunning
}

// Theme returns the color scheme preference.
func (s *TimerState) Theme() Theme {
	return s.theme
}

// SetMode sets the interval mode without touching the remaining time.
func (s *TimerState) SetMode(m Mode) {
	s.mode = m
}

// SetRemainingTime sets the seconds left in the current interval.
func (s *TimerState) SetRemainingTime(n int) {
	s.remainingTime = n
}

// SetPomodoroCount sets the number of completed work intervals.
func (s *TimerState) SetPomodoroCount(n int) {
	s.pomodoroCount = n
}

// SetIsRunning sets the running flag.
func (s *TimerState) SetIsRunning(b bool) {
	s.isRunning = b
}

// SetTheme sets the color scheme preference.
func (s *TimerState) SetTheme(t Theme) {
	s.theme = t
}

// ApplyPartial merges the non-nil fields of p into the state.
func (s *TimerState) ApplyPartial(p StatePatch) {
	if p.Mode != nil {
		s.mode = *p.Mode
	}
	if p.RemainingTime != nil {
		s.remainingTime = *p.RemainingTime
	}
	if p.PomodoroCount != nil {
		s.pomodoroCount = *p.PomodoroCount
	}
	if p.IsRunning != nil {
		s.isRunning = *p.IsRunning
	}
	if p.Theme != nil {
		s.theme = *p.Theme
	}
}

// Snapshot returns a copy of the current values.
func (s *TimerState) Snapshot() StateSnapshot {
	return StateSnapshot{
		Mode:          s.mode,
		RemainingTime: s.remainingTime,
		PomodoroCount: s.pomodoroCount,
		IsRunning:     s.isRunning,
		Theme:         s.theme,
	}
}

// TotalTime returns the full duration of the current mode in seconds.
func (s *TimerState) TotalTime() int {
	return s.mode.TotalSeconds()
}

// Progress returns the elapsed fraction of the current interval (0.0 to 1.0).
func (s StateSnapshot) Progress() float64 {
	total := s.Mode.TotalSeconds()
	if total <= 0 {
		return 0
	}
	progress := float64(total-s.RemainingTime) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// NextMode returns the mode that follows the current interval. A work
// interval still in progress is counted as completed; a finished one
// (remaining 0) is already in the count.
func (s StateSnapshot) NextMode() Mode {
	count := s.PomodoroCount
	if s.Mode == ModeWork && s.RemainingTime > 0 {
		count++
	}
	return NextMode(s.Mode, count)
}

// ClampRemaining bounds n to the valid range for mode m.
func ClampRemaining(m Mode, n int) int {
	if n < 0 {
		return 0
	}
	if total := m.TotalSeconds(); n > total {
		return total
	}
	return n
}
