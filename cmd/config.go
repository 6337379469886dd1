package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit notification and MCP settings",
	Long: `Show where configuration, the database and the log live, and toggle
desktop notifications, the completion sound and the MCP server.
Colors and icons are edited directly in config.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		reader := bufio.NewReader(cmd.InOrStdin())

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		printConfig(out, configPath, app.config)

		fmt.Fprintln(out, "  What would you like to change?")
		fmt.Fprintln(out, "    [n] Toggle notifications")
		fmt.Fprintln(out, "    [s] Toggle sound")
		fmt.Fprintln(out, "    [m] Toggle MCP server")
		fmt.Fprintln(out, "    [q] Quit without saving")
		fmt.Fprint(out, "  Choose: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		if !applyConfigChoice(app.config, choice) {
			if choice == "q" || choice == "" {
				fmt.Fprintln(out, "  No changes made.")
				return nil
			}
			return fmt.Errorf("invalid choice %q", choice)
		}

		if err := config.SaveTo(configPath, app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintln(out, "  Saved.")
		return nil
	},
}

func printConfig(w io.Writer, configPath string, cfg *config.Config) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Current configuration:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    Config file:    %s\n", configPath)
	fmt.Fprintf(w, "    Database:       %s\n", dbPath)
	fmt.Fprintf(w, "    Log file:       %s\n", config.GetLogPath(cfg))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    Notifications:  %s\n", onOff(cfg.Notifications.Enabled))
	fmt.Fprintf(w, "    Sound:          %s\n", onOff(cfg.Notifications.Sound))
	fmt.Fprintf(w, "    MCP server:     %s\n", onOff(cfg.MCP.Enabled))
	fmt.Fprintln(w)
}

// applyConfigChoice toggles the setting picked in the menu. It reports
// whether anything changed.
func applyConfigChoice(cfg *config.Config, choice string) bool {
	switch choice {
	case "n":
		cfg.Notifications.Enabled = !cfg.Notifications.Enabled
	case "s":
		cfg.Notifications.Sound = !cfg.Notifications.Sound
	case "m":
		cfg.MCP.Enabled = !cfg.MCP.Enabled
	default:
		return false
	}
	return true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
