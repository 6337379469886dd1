package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session history",
	Long:  "Export your completed sessions in CSV, JSON or YAML format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := app.persistence.LoadSessions(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch sessions: %w", err)
		}
		return writeExport(cmd.OutOrStdout(), exportFormat, sessions)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json or yaml")
}

// exportRecord is one session as written by export.
type exportRecord struct {
	Type            string `json:"type" yaml:"type"`
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"`
	CompletedAt     string `json:"completed_at" yaml:"completed_at"`
}

func toExportRecords(sessions []domain.Session) []exportRecord {
	records := make([]exportRecord, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, exportRecord{
			Type:            string(s.Type),
			DurationMinutes: s.DurationMinutes,
			CompletedAt:     s.CompletedAt.UTC().Format(time.RFC3339),
		})
	}
	return records
}

func writeExport(w io.Writer, format string, sessions []domain.Session) error {
	records := toExportRecords(sessions)

	switch format {
	case "csv":
		return exportCSV(w, records)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode sessions: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode sessions: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q: must be csv, json or yaml", format)
	}
}

func exportCSV(w io.Writer, records []exportRecord) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"type", "duration_minutes", "completed_at"})

	for _, r := range records {
		_ = cw.Write([]string{r.Type, strconv.Itoa(r.DurationMinutes), r.CompletedAt})
	}

	cw.Flush()
	return cw.Error()
}
