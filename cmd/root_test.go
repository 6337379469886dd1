package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/config"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// setupCLI points config, log and database at a fresh temp directory and
// returns the database path.
func setupCLI(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.HomeEnv, home)
	return filepath.Join(home, "data", "pomodoro.db")
}

// runCLI executes the root command against db with fresh flag values.
func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	dbPath, jsonOutput, inlineMode = "", false, false
	exportFormat = "csv"
	resetAll, resetForce = false, false

	stdout, _, err := executeCmd(rootCmd, append([]string{"--db", db}, args...)...)
	return stdout, err
}

// TestRootCmd_BareExecution verifies the root command exists. Running it
// bare opens the interactive timer, which needs a terminal.
func TestRootCmd_BareExecution(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "pomodoro" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pomodoro")
	}
}

// TestRootCmd_Help tests the --help flag
func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	if !bytes.Contains([]byte(stdout), []byte("pomodoro")) {
		t.Error("help output should contain 'pomodoro'")
	}
}

// TestRootCmd_Flags tests that global flags are registered
func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"db", "json", "inline"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}

	if f := rootCmd.PersistentFlags().ShorthandLookup("i"); f == nil || f.Name != "inline" {
		t.Error("-i should be shorthand for --inline")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"status", "stats", "mode", "theme", "reset", "export", "config", "mcp"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil || cmd == rootCmd {
				t.Errorf("subcommand %q not registered", name)
			}
		})
	}
}
