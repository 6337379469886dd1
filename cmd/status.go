package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current status",
	Long:  `Display the saved timer state, the mode that comes next and today's statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		snap, err := app.stats.GetTimerState(ctx)
		if err != nil {
			// Unreadable state shows the defaults.
			app.logger.Printf("status: %v", err)
		}

		stats, err := app.stats.GetStats(ctx)
		if err != nil {
			app.logger.Printf("status: %v", err)
		}

		if jsonOutput {
			return outputStatusJSON(cmd.OutOrStdout(), snap, stats)
		}

		tui.ShowStatus(cmd.OutOrStdout(), snap, stats, snap.NextMode())
		return nil
	},
}

// outputStatusJSON outputs the status in JSON format
func outputStatusJSON(w io.Writer, snap domain.StateSnapshot, stats domain.DailyStats) error {
	result := map[string]interface{}{
		"mode":           string(snap.Mode),
		"remaining_time": snap.RemainingTime,
		"total_time":     snap.Mode.TotalSeconds(),
		"progress":       snap.Progress(),
		"pomodoro_count": snap.PomodoroCount,
		"next_mode":      string(snap.NextMode()),
		"theme":          string(snap.Theme),
		"today_stats": map[string]interface{}{
			"work_sessions":      stats.TodaySessions,
			"total_work_minutes": stats.TotalWorkMinutes,
		},
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}
