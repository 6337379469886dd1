package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
)

var (
	resetAll   bool
	resetForce bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the timer, or wipe all saved data",
	Long: `Pause the timer and restore the full duration of the current mode.
With --all, the saved timer state and the whole session history are deleted.
This cannot be undone. Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		if !resetAll {
			loadEngine(ctx, tui.NewConsole(out)).Reset(ctx)
			return nil
		}

		if !resetForce {
			fmt.Fprintf(out, "This will permanently delete the timer state and session history in: %s\n", dbPath)
			fmt.Fprint(out, "Are you sure? Type 'yes' to confirm: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := app.persistence.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}

		fmt.Fprintln(out, "All timer data deleted. Fresh start.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Also delete the session history")
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}
