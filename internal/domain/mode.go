// Package domain contains the core entities of the Pomodoro timer.
// These types describe the timer state, the interval modes and the
// completed-session log, and are independent of any storage or UI.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrMalformedState     = errors.New("malformed persisted state")
	ErrMalformedSessions  = errors.New("malformed persisted session log")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Mode is the kind of interval the timer is counting down.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// SessionsBeforeLongBreak is the number of completed work intervals in one cycle.
const SessionsBeforeLongBreak = 4

// modeDurations is the fixed mode→seconds table.
var modeDurations = map[Mode]int{
	ModeWork:       25 * 60,
	ModeShortBreak: 5 * 60,
	ModeLongBreak:  15 * 60,
}

// Modes lists all modes in display order.
var Modes = []Mode{ModeWork, ModeShortBreak, ModeLongBreak}

// TotalSeconds returns the full duration of the mode in seconds.
// Unknown modes report 0.
func (m Mode) TotalSeconds() int {
	return modeDurations[m]
}

// IsValid reports whether m is one of the known modes.
func (m Mode) IsValid() bool {
	_, ok := modeDurations[m]
	return ok
}

// IsBreak reports whether m is a short or long break.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModeWork:
		return "Work"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// ValidateMode checks if a string is a valid mode.
func ValidateMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w %q: must be one of work, shortBreak, longBreak", ErrInvalidMode, s)
	}
	return m, nil
}

// NextMode returns the mode that follows a finished interval of mode m,
// given the completed-work count after that interval was recorded.
func NextMode(m Mode, completedWork int) Mode {
	if m != ModeWork {
		return ModeWork
	}
	if completedWork%SessionsBeforeLongBreak == 0 {
		return ModeLongBreak
	}
	return ModeShortBreak
}

// Theme is the color scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ValidateTheme checks if a string is a valid theme.
func ValidateTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w %q: must be dark or light", ErrInvalidTheme, s)
	}
	return t, nil
}
