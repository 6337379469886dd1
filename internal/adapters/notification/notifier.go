// Package notification provides desktop notification and sound utilities.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomodoro-cli/internal/config"
)

// Completion tone.
const (
	toneFrequency = 440.0
	toneDuration  = 500
)

// Notifier handles desktop notifications and the completion tone.
type Notifier struct {
	cfg *config.NotificationConfig

	// Hooks for tests.
	beep   func() error
	notify func(title, message string) error
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg: cfg,
		beep: func() error {
			return beeep.Beep(toneFrequency, toneDuration)
		},
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	return n.notify(title, message)
}

// PlaySound emits a short 440 Hz tone if sound is enabled.
func (n *Notifier) PlaySound() error {
	if n.cfg == nil || !n.cfg.Sound {
		return nil
	}
	return n.beep()
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
