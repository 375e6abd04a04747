package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/theme"
	"github.com/theakshaypant/hackhub/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive TUI",
	Long:  `Launch the interactive hub: home, calendar and upcoming views with login and join dialogs.`,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(log)
	defer store.Close()

	provider := theme.Load(store, log)
	log.WithFields(map[string]any{
		"theme":      string(provider.Mode()),
		"breakpoint": viper.GetInt("breakpoint"),
	}).Info("starting ui")

	// Create the TUI model
	m := tui.NewModel(core.NewStaticCatalog(), provider, log, viper.GetInt("breakpoint"))

	// Set up the program with mouse support and alt screen
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	log.Info("ui closed")
	return nil
}
