package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Toggle or set the color theme",
	Long:      `Switch between the dark and light color schemes. Without an argument the current theme is toggled.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(domain.ThemeDark), string(domain.ThemeLight)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		engine := loadEngine(ctx, tui.NewConsole(cmd.OutOrStdout()))

		if len(args) == 0 {
			engine.ToggleTheme(ctx)
			return nil
		}

		theme, err := domain.ValidateTheme(args[0])
		if err != nil {
			return err
		}
		engine.SetTheme(ctx, theme)
		return nil
	},
}
