package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/logger"
	"github.com/theakshaypant/hackhub/internal/storage"
	"github.com/theakshaypant/hackhub/internal/tui"
)

var (
	cfgFile string
	profile string
)

// profileSettings are the keys a profile may override.
var profileSettings = []string{
	"storage.driver",
	"storage.path",
	"log.level",
	"log.file",
	"breakpoint",
	"ephemeral",
}

var rootCmd = &cobra.Command{
	Use:   "hackhub",
	Short: "Browse and join hackathons from your terminal",
	Long: `hackhub is a small hackathon hub for the terminal.

Browse featured and upcoming events, glance at the month calendar and
sign up without leaving the shell. Running hackhub with no subcommand
opens the interactive UI.`,
	RunE: runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hackhub/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "config profile to use (e.g., laptop, demo)")

	rootCmd.PersistentFlags().String("storage-driver", storage.DriverFile, "Preference store: file, sqlite or memory")
	rootCmd.PersistentFlags().String("storage-path", "", "Preference store location (default is $HOME/.config/hackhub/preferences.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Log file used while the UI is running (default is $HOME/.config/hackhub/hackhub.log)")
	rootCmd.PersistentFlags().Int("breakpoint", tui.DefaultBreakpoint, "Terminal width below which the sidebar collapses into a drawer")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep preferences in memory only")

	// Bind persistent flags to viper
	viper.BindPFlag("storage.driver", rootCmd.PersistentFlags().Lookup("storage-driver"))
	viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("storage-path"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("breakpoint", rootCmd.PersistentFlags().Lookup("breakpoint"))
	viper.BindPFlag("ephemeral", rootCmd.PersistentFlags().Lookup("ephemeral"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. HACKHUB_STORAGE_DRIVER
	viper.SetEnvPrefix("HACKHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	applyProfile()
}

func setDefaults() {
	dir := configDir()
	viper.SetDefault("storage.driver", storage.DriverFile)
	viper.SetDefault("storage.path", filepath.Join(dir, "preferences.yaml"))
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", filepath.Join(dir, "hackhub.log"))
	viper.SetDefault("breakpoint", tui.DefaultBreakpoint)
	viper.SetDefault("ephemeral", false)
}

func configDir() string {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return filepath.Join(home, ".config", "hackhub")
}

// applyProfile merges profile-specific settings over defaults
func applyProfile() {
	activeProfile := profile
	if activeProfile == "" {
		activeProfile = viper.GetString("default_profile")
	}
	if activeProfile == "" {
		return
	}

	profileKey := "profiles." + activeProfile
	if !viper.IsSet(profileKey) {
		fmt.Fprintf(os.Stderr, "Warning: profile '%s' not found in config\n", activeProfile)
		return
	}

	fmt.Fprintf(os.Stderr, "Using profile: %s\n", activeProfile)

	// Override each setting if present in profile,
	// but only if the user hasn't explicitly set it via CLI flag.
	for _, key := range profileSettings {
		profileSettingKey := profileKey + "." + key
		if viper.IsSet(profileSettingKey) && !isFlagExplicitlySet(key) {
			viper.Set(key, viper.Get(profileSettingKey))
		}
	}
}

// isFlagExplicitlySet maps a viper key such as "storage.driver" to its flag
// name and reports whether the flag was given on the command line.
func isFlagExplicitlySet(viperKey string) bool {
	flagName := strings.NewReplacer("_", "-", ".", "-").Replace(viperKey)
	f := rootCmd.PersistentFlags().Lookup(flagName)

	return f != nil && f.Changed
}

func storageOptions() storage.Options {
	if viper.GetBool("ephemeral") {
		return storage.Options{Driver: storage.DriverMemory}
	}
	return storage.Options{
		Driver: viper.GetString("storage.driver"),
		Path:   expandPath(viper.GetString("storage.path")),
	}
}

// openStore opens the configured preference store. A store that cannot be
// opened is replaced by one that fails every call, so the UI still starts
// and the theme falls back to light.
func openStore(log *logger.Logger) core.Storage {
	opts := storageOptions()
	store, err := openStoreStrict(opts)
	if err != nil {
		log.WithFields(map[string]any{
			"driver": opts.Driver,
			"path":   opts.Path,
		}).Error(err, "preference store unavailable")
		return storage.Unavailable{}
	}
	return store
}

func openStoreStrict(opts storage.Options) (core.Storage, error) {
	store, err := storage.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	return store, nil
}

// newLogger builds the process logger. The UI writes JSON lines to the log
// file since stderr is hidden behind the alt screen; every other command
// logs human-readable lines to stderr. The returned func closes the file.
func newLogger(toFile bool) (*logger.Logger, func(), error) {
	opts := logger.Options{Level: viper.GetString("log.level")}
	closeFn := func() {}

	if toFile {
		path := expandPath(viper.GetString("log.file"))
		f, err := logger.OpenFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v\n", path, err)
			return logger.Nop(), closeFn, nil
		}
		opts.Writer = f
		closeFn = func() { f.Close() }
	} else {
		opts.HumanReadable = true
	}

	log, err := logger.New(opts)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	return log, closeFn, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
