package cmd

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

var modeCmd = &cobra.Command{
	Use:   "mode <work|shortBreak|longBreak>",
	Short: "Switch the timer mode",
	Long: `Select a mode and reset the remaining time to its full duration.
Names are matched loosely, so "long", "lb" and "Long Break" all select the long break.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(args[0])
		if err != nil {
			return err
		}

		engine := loadEngine(context.Background(), tui.NewConsole(cmd.OutOrStdout()))
		return engine.SwitchMode(context.Background(), mode)
	},
}

// modeNames lists the identifiers and labels a mode can be selected by.
func modeNames() ([]string, []domain.Mode) {
	var names []string
	var modes []domain.Mode
	for _, m := range domain.Modes {
		names = append(names, strings.ToLower(string(m)), strings.ToLower(m.Label()))
		modes = append(modes, m, m)
	}
	return names, modes
}

// resolveMode maps user input to a mode, falling back to the best fuzzy
// match against mode identifiers and labels.
func resolveMode(input string) (domain.Mode, error) {
	mode, err := domain.ValidateMode(input)
	if err == nil {
		return mode, nil
	}

	names, modes := modeNames()
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(input)), names)
	if len(matches) == 0 {
		return "", err
	}
	return modes[matches[0].Index], nil
}
