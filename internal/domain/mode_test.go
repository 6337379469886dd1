package domain

import (
	"errors"
	"testing"
)

func TestMode_TotalSeconds(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{ModeWork, 1500},
		{ModeShortBreak, 300},
		{ModeLongBreak, 900},
		{Mode("nap"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.TotalSeconds(); got != tt.want {
				t.Errorf("TotalSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"work", ModeWork, false},
		{"shortBreak", ModeShortBreak, false},
		{"longBreak", ModeLongBreak, false},
		{"short_break", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ValidateMode(%q) error = %v, want ErrInvalidMode", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMode_Label(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeWork, "Work"},
		{ModeShortBreak, "Short Break"},
		{ModeLongBreak, "Long Break"},
		{Mode("unknown"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.m), func(t *testing.T) {
			if got := tt.m.Label(); got != tt.want {
				t.Errorf("Label() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextMode(t *testing.T) {
	for n := 1; n <= 12; n++ {
		want := ModeShortBreak
		if n%4 == 0 {
			want = ModeLongBreak
		}
		if got := NextMode(ModeWork, n); got != want {
			t.Errorf("NextMode(work, %d) = %v, want %v", n, got, want)
		}
	}

	for _, m := range []Mode{ModeShortBreak, ModeLongBreak} {
		if got := NextMode(m, 3); got != ModeWork {
			t.Errorf("NextMode(%v, 3) = %v, want work", m, got)
		}
	}
}

func TestTheme_Toggle(t *testing.T) {
	if got := ThemeDark.Toggle(); got != ThemeLight {
		t.Errorf("dark.Toggle() = %v, want light", got)
	}
	if got := ThemeLight.Toggle(); got != ThemeDark {
		t.Errorf("light.Toggle() = %v, want dark", got)
	}
}

func TestValidateTheme(t *testing.T) {
	if _, err := ValidateTheme("light"); err != nil {
		t.Errorf("ValidateTheme(light) error = %v", err)
	}
	if _, err := ValidateTheme("sepia"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("ValidateTheme(sepia) error = %v, want ErrInvalidTheme", err)
	}
}
