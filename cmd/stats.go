package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// statsDays is the length of the daily history shown by stats.
const statsDays = 7

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of session statistics",
	Long:  `Display today's completed pomodoros, the total work time and the last week of sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sessions, err := app.persistence.LoadSessions(ctx)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		now := app.persistence.Now()
		stats := domain.DailyStats{
			Date:             now,
			TodaySessions:    domain.CountWorkSessionsOn(sessions, now),
			TotalWorkMinutes: domain.SumWorkMinutes(sessions),
		}
		days := dailyCounts(sessions, now, statsDays)

		if jsonOutput {
			return outputStatsJSON(cmd.OutOrStdout(), stats, days)
		}

		fmt.Fprintln(cmd.OutOrStdout())
		renderDashboard(cmd.OutOrStdout(), stats, days, hourlyCounts(sessions))
		return nil
	},
}

// dayCount is the number of work sessions finished on one day.
type dayCount struct {
	Day   time.Time
	Count int
}

// dailyCounts returns one entry per day for the last n days, oldest first.
func dailyCounts(sessions []domain.Session, now time.Time, n int) []dayCount {
	days := make([]dayCount, n)
	for i := 0; i < n; i++ {
		day := now.AddDate(0, 0, i-n+1)
		days[i] = dayCount{Day: day, Count: domain.CountWorkSessionsOn(sessions, day)}
	}
	return days
}

// hourlyCounts buckets work sessions by the local hour they finished in.
func hourlyCounts(sessions []domain.Session) map[int]int {
	hours := make(map[int]int)
	for _, s := range sessions {
		if s.IsWorkSession() {
			hours[s.CompletedAt.Local().Hour()]++
		}
	}
	return hours
}

func outputStatsJSON(w io.Writer, stats domain.DailyStats, days []dayCount) error {
	history := make([]map[string]interface{}, 0, len(days))
	for _, d := range days {
		history = append(history, map[string]interface{}{
			"date":          d.Day.Format("2006-01-02"),
			"work_sessions": d.Count,
		})
	}

	result := map[string]interface{}{
		"today_sessions":     stats.TodaySessions,
		"total_work_minutes": stats.TotalWorkMinutes,
		"history":            history,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

func renderDashboard(w io.Writer, stats domain.DailyStats, days []dayCount, hourly map[int]int) {
	palette := app.config.Theme.Dark
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.ColorWork))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.ColorPaused))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.ColorBreak))
	barColor := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.ColorWork))

	// Header
	fmt.Fprintf(w, "  %s\n", titleStyle.Render(app.config.Theme.IconStats+" Pomodoro Stats"))
	fmt.Fprintf(w, "  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	fmt.Fprintf(w, "  Today: %s sessions   Total: %s\n\n",
		valueStyle.Render(fmt.Sprintf("%d", stats.TodaySessions)),
		valueStyle.Render(tui.FormatMinutes(stats.TotalWorkMinutes)),
	)

	if stats.TotalWorkMinutes == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("No completed sessions yet."))
		return
	}

	fmt.Fprintf(w, "  %s\n", dimStyle.Render(fmt.Sprintf("Last %d days", len(days))))
	maxCount := 0
	for _, d := range days {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	maxBarWidth := 30
	for _, d := range days {
		barWidth := 0
		if maxCount > 0 {
			barWidth = int(math.Round(float64(d.Count) / float64(maxCount) * float64(maxBarWidth)))
		}
		if barWidth < 1 && d.Count > 0 {
			barWidth = 1
		}
		fmt.Fprintf(w, "  %s %s %d\n",
			dimStyle.Render(d.Day.Format("Mon 02")),
			barColor.Render(buildBar(barWidth)),
			d.Count,
		)
	}
	fmt.Fprintln(w)

	renderHourlyProductivity(w, hourly, dimStyle, valueStyle)
}

// hourEntry pairs an hour with its session count for sorting.
type hourEntry struct {
	Hour  int
	Count int
}

func renderHourlyProductivity(w io.Writer, hourly map[int]int, dimStyle, valueStyle lipgloss.Style) {
	if len(hourly) == 0 {
		return
	}

	entries := make([]hourEntry, 0, len(hourly))
	for h, c := range hourly {
		entries = append(entries, hourEntry{Hour: h, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Hour < entries[j].Hour
	})

	fmt.Fprintf(w, "  %s\n", dimStyle.Render("Your most productive hours"))
	top := 3
	if len(entries) < top {
		top = len(entries)
	}
	for _, e := range entries[:top] {
		fmt.Fprintf(w, "  %s  %s pomodoros\n",
			dimStyle.Render(fmt.Sprintf("%02d:00", e.Hour)),
			valueStyle.Render(fmt.Sprintf("%d", e.Count)),
		)
	}
	fmt.Fprintln(w)
}

func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}
