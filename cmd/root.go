// Package cmd provides the CLI commands for the Pomodoro application.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	jsonOutput bool
	inlineMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Pomodoro - A terminal Pomodoro timer",
	Long: `Pomodoro is a terminal timer for the Pomodoro Technique: 25 minute
work intervals, a short break after each one and a long break after every
fourth. Progress and completed sessions are saved between runs.

Run "pomodoro" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.pomodoro/pomodoro.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomodoro CLI\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}

// runTimer opens the interactive timer on the saved snapshot.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	display := tui.NewDisplay(app.notifier)
	scheduler := tui.NewScheduler()
	engine := services.NewTimerService(app.state, app.persistence, display, scheduler, app.logger)
	engine.Restore(ctx)
	if app.store.Degraded() {
		app.logger.Printf("running without durable storage; progress is kept in memory only")
	}

	// The program has exited by the time this runs, so the engine is
	// no longer shared.
	defer engine.Pause(context.Background())

	model := tui.NewModel(ctx, engine, display, scheduler, &app.config.Theme).WithInline(inlineMode)
	return tui.Run(ctx, model)
}
