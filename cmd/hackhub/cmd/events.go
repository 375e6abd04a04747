package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/util"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	eventsTextWidth = 60
	eventsMaxWidth  = 100
	ruleWidth       = 49
)

var eventsCmd = &cobra.Command{
	Use:     "events",
	Aliases: []string{"upcoming", "ls"},
	Short:   "List upcoming hackathons",
	Long: `List every upcoming hackathon with its start date, description and tags.

Use -o yaml for machine-readable output.`,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	eventsCmd.Flags().Bool("full", false, "Print full descriptions instead of wrapping them")
}

// eventRecord is the yaml shape of an event.
type eventRecord struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	DaysLeft    int      `yaml:"days_left"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
}

func runEvents(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	full, _ := cmd.Flags().GetBool("full")
	events := core.NewStaticCatalog().Events()

	switch strings.ToLower(output) {
	case "yaml", "yml":
		return writeEventsYAML(cmd.OutOrStdout(), events)
	case "text", "":
		writeEventsText(cmd.OutOrStdout(), events, textWidth(cmd.OutOrStdout()), full)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (supported: text, yaml)", output)
	}
}

func writeEventsYAML(w io.Writer, events []core.Event) error {
	records := make([]eventRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, eventRecord{
			ID:          ev.ID,
			Title:       ev.Title,
			Date:        ev.Date,
			DaysLeft:    ev.DaysLeft,
			Tags:        ev.Tags,
			Description: ev.Description,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	return enc.Close()
}

// textWidth is the wrap width for descriptions: the terminal width minus the
// indent when writing to a terminal, eventsTextWidth otherwise.
func textWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return eventsTextWidth
	}
	cols, _, err := term.GetSize(int(file.Fd()))
	if err != nil || cols <= 20 {
		return eventsTextWidth
	}
	return min(cols-4, eventsMaxWidth)
}

func writeEventsText(w io.Writer, events []core.Event, width int, full bool) {
	fmt.Fprintln(w, "🚀 Upcoming hackathons:")
	fmt.Fprintln(w, util.Rule(ruleWidth))

	if len(events) == 0 {
		fmt.Fprintln(w, "\nNo upcoming events")
		return
	}

	for _, ev := range events {
		fmt.Fprintf(w, "\n  • %s (%s)\n", util.TruncateText(ev.Title, width), ev.ID)
		fmt.Fprintf(w, "    %s\n", ev.StartsLine())

		if ev.Description != "" {
			if full {
				fmt.Fprintf(w, "    %s\n", ev.Description)
			} else {
				for _, line := range util.WrapText(ev.Description, width) {
					fmt.Fprintf(w, "    %s\n", line)
				}
			}
		}

		if len(ev.Tags) > 0 {
			tags := make([]string, len(ev.Tags))
			for i, tag := range ev.Tags {
				tags[i] = "#" + tag
			}
			fmt.Fprintf(w, "    %s\n", strings.Join(tags, " "))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d events\n", len(events))
	fmt.Fprintln(w, "\nTip: Run 'hackhub ui' and press j to join one")
}
