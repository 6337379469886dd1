package notification

import (
	"errors"
	"testing"

	"github.com/xvierd/pomodoro-cli/internal/config"
)

func TestNotifier_Disabled(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: false, Sound: false})
	n.notify = func(title, message string) error {
		t.Error("notify called while disabled")
		return nil
	}
	n.beep = func() error {
		t.Error("beep called while sound is off")
		return nil
	}

	if err := n.Notify("Time's up!", "Break is over."); err != nil {
		t.Errorf("Notify() error = %v", err)
	}
	if err := n.PlaySound(); err != nil {
		t.Errorf("PlaySound() error = %v", err)
	}
	if n.IsEnabled() {
		t.Error("IsEnabled() = true")
	}
}

func TestNotifier_NilConfig(t *testing.T) {
	n := New(nil)
	if n.IsEnabled() {
		t.Error("IsEnabled() = true with nil config")
	}
	if err := n.PlaySound(); err != nil {
		t.Errorf("PlaySound() error = %v", err)
	}
}

func TestNotifier_Enabled(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true, Sound: true})

	var gotTitle string
	n.notify = func(title, message string) error {
		gotTitle = title
		return nil
	}
	beeps := 0
	n.beep = func() error {
		beeps++
		return errors.New("no audio device")
	}

	if err := n.Notify("Time's up!", "msg"); err != nil {
		t.Errorf("Notify() error = %v", err)
	}
	if gotTitle != "Time's up!" {
		t.Errorf("title = %q", gotTitle)
	}
	if err := n.PlaySound(); err == nil {
		t.Error("PlaySound() should surface the audio error")
	}
	if beeps != 1 {
		t.Errorf("beeps = %d, want 1", beeps)
	}
}
