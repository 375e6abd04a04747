package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theakshaypant/hackhub/internal/calendar"
	"github.com/theakshaypant/hackhub/internal/util"
)

const calendarCellWidth = 5

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Print the month calendar",
	Long:    `Print the sample month grid. Days marked with * have a hackathon.`,
	RunE:    runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	writeCalendar(cmd.OutOrStdout())
	return nil
}

func writeCalendar(w io.Writer) {
	days := calendar.Month()

	fmt.Fprintf(w, "📅 %s\n", calendar.Title)
	fmt.Fprintln(w, util.Rule(calendar.DaysPerWeek*calendarCellWidth))

	var flagged []string
	for _, week := range calendar.Weeks(days, calendar.DaysPerWeek) {
		var row strings.Builder
		for _, d := range week {
			mark := " "
			if d.Hackathon {
				mark = "*"
				flagged = append(flagged, fmt.Sprintf("%d", d.Number))
			}
			fmt.Fprintf(&row, "%3d%s ", d.Number, mark)
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s on days %s\n", calendar.MarkerLabel, strings.Join(flagged, ", "))
	fmt.Fprintf(w, "(%s)\n", calendar.Caption)
}
