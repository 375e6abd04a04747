package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/ics"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming hackathons as iCalendar",
	Long: `Write every upcoming hackathon as an all-day iCalendar event.

Example:
  hackhub export -f hackathons.ics
  hackhub export > hackathons.ics`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("file", "f", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	path, _ := cmd.Flags().GetString("file")
	events := core.NewStaticCatalog().Events()

	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		path = expandPath(path)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if err := ics.Export(w, events, time.Now()); err != nil {
		return fmt.Errorf("failed to export events: %w", err)
	}

	if path != "" {
		log.WithFields(map[string]any{"path": path, "events": len(events)}).Info("calendar exported")
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d events to %s\n", len(events), path)
	}
	return nil
}
