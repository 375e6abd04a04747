package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the colour theme",
	Long: `Show or change the persisted colour theme.

The same preference is toggled with 't' inside the UI.`,
	RunE: runThemeShow,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active theme",
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE:  runThemeToggle,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark)},
	RunE:      runThemeSet,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeSetCmd)
}

// withThemeProvider opens the configured store strictly: unlike the UI, a
// command whose whole purpose is the preference reports a broken store.
func withThemeProvider(fn func(*theme.Provider, core.Storage) error) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStoreStrict(storageOptions())
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(theme.Load(store, log), store)
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	return withThemeProvider(func(p *theme.Provider, _ core.Storage) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", p.Mode())
		return nil
	})
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	return withThemeProvider(func(p *theme.Provider, store core.Storage) error {
		mode := p.Toggle()
		if err := confirmStored(store, mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to %s\n", mode)
		return nil
	})
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	mode, err := theme.ParseMode(args[0])
	if err != nil {
		return err
	}

	return withThemeProvider(func(p *theme.Provider, store core.Storage) error {
		// Set skips the write when nothing changes; write anyway so a
		// missing key becomes explicit.
		if p.Mode() == mode {
			if err := store.Set(theme.StorageKey, string(mode)); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}
		} else {
			p.Set(mode)
		}
		if err := confirmStored(store, mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to %s\n", mode)
		return nil
	})
}

// confirmStored reads the key back since the provider only logs write failures.
func confirmStored(store core.Storage, mode theme.Mode) error {
	got, err := store.Get(theme.StorageKey)
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	if got != string(mode) {
		return fmt.Errorf("failed to save theme: stored value is %q", got)
	}
	return nil
}
