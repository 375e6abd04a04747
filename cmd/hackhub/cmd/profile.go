package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/theakshaypant/hackhub/internal/storage"
	"github.com/theakshaypant/hackhub/internal/tui"
	"gopkg.in/yaml.v3"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage configuration profiles",
	Long: `Manage configuration profiles for different machines and setups.

Profiles let you switch the preference store, logging and layout
breakpoint in one flag, e.g. a throwaway in-memory store for demos.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileShow,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileSetDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSetDefault,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a profile's settings",
	Long: `Edit a profile's settings using flags.

Example:
  hackhub profile edit laptop --storage-driver=sqlite --storage-path=~/.hackhub.db
  hackhub profile edit demo --ephemeral=true --breakpoint=120`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileEdit,
}

// profileFlag maps a profile flag to the config key it writes.
type profileFlag struct {
	flag string
	key  string
}

var profileFlags = []profileFlag{
	{"storage-driver", "storage.driver"},
	{"storage-path", "storage.path"},
	{"log-level", "log.level"},
	{"log-file", "log.file"},
	{"breakpoint", "breakpoint"},
	{"ephemeral", "ephemeral"},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileSetDefaultCmd)
	profileCmd.AddCommand(profileEditCmd)

	for _, c := range []*cobra.Command{profileAddCmd, profileEditCmd} {
		c.Flags().String("storage-driver", storage.DriverFile, "Preference store: file, sqlite or memory")
		c.Flags().String("storage-path", "", "Preference store location")
		c.Flags().String("log-level", "info", "Log level")
		c.Flags().String("log-file", "", "Log file used while the UI is running")
		c.Flags().Int("breakpoint", tui.DefaultBreakpoint, "Sidebar collapse width")
		c.Flags().Bool("ephemeral", false, "Keep preferences in memory only")
	}
}

func runProfileList(cmd *cobra.Command, args []string) error {
	profiles := viper.GetStringMap("profiles")
	defaultProfile := viper.GetString("default_profile")

	if len(profiles) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println("\nAdd one with: hackhub profile add <name> --storage-driver=<driver>")
		return nil
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Available profiles:")
	fmt.Println("─────────────────────────────────────────────────")

	for _, name := range names {
		marker := "  "
		if name == defaultProfile {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, name)
	}

	fmt.Println("─────────────────────────────────────────────────")
	if defaultProfile != "" {
		fmt.Printf("Default: %s\n", defaultProfile)
	}
	fmt.Println("\nUse 'hackhub profile show <name>' for details")

	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	var profileName string
	if len(args) > 0 {
		profileName = args[0]
	} else {
		profileName = viper.GetString("default_profile")
		if profileName == "" {
			return fmt.Errorf("no profile specified and no default profile set")
		}
	}

	profileKey := "profiles." + profileName
	if !viper.IsSet(profileKey) {
		return fmt.Errorf("profile '%s' not found", profileName)
	}

	fmt.Printf("Profile: %s\n", profileName)
	if profileName == viper.GetString("default_profile") {
		fmt.Println("(default)")
	}
	fmt.Println("─────────────────────────────────────────────────")

	fmt.Println("\n💾 Storage:")
	printSetting(profileKey, "storage.driver", "storage-driver")
	printSetting(profileKey, "storage.path", "storage-path")
	printSetting(profileKey, "ephemeral", "ephemeral")

	fmt.Println("\n📝 Logging:")
	printSetting(profileKey, "log.level", "log-level")
	printSetting(profileKey, "log.file", "log-file")

	fmt.Println("\n🖥️  Layout:")
	printSetting(profileKey, "breakpoint", "breakpoint")

	fmt.Println()
	return nil
}

func printSetting(profileKey, key, displayKey string) {
	if full := profileKey + "." + key; viper.IsSet(full) {
		fmt.Printf("  %s: %v\n", displayKey, viper.Get(full))
	}
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	// Check if profile already exists
	profileKey := "profiles." + profileName
	if viper.IsSet(profileKey) {
		return fmt.Errorf("profile '%s' already exists. Use 'hackhub profile edit %s' to modify it", profileName, profileName)
	}

	profile := make(map[string]interface{})
	applyProfileFlags(cmd.Flags(), profile)

	if err := validateProfile(profile); err != nil {
		return err
	}

	if err := saveProfileToConfig(profileName, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("✓ Profile '%s' created\n", profileName)
	fmt.Printf("\nUse it with: hackhub -p %s\n", profileName)
	fmt.Printf("Set as default: hackhub profile default %s\n", profileName)

	return nil
}

func runProfileSetDefault(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	profileKey := "profiles." + profileName
	if !viper.IsSet(profileKey) {
		return fmt.Errorf("profile '%s' not found", profileName)
	}

	if err := setDefaultProfileInConfig(profileName); err != nil {
		return fmt.Errorf("failed to set default profile: %w", err)
	}

	fmt.Printf("✓ Default profile set to '%s'\n", profileName)
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	profileKey := "profiles." + profileName
	if !viper.IsSet(profileKey) {
		return fmt.Errorf("profile '%s' not found. Use 'hackhub profile add %s' to create it", profileName, profileName)
	}

	// Start from the stored profile, not viper's merged view, so only
	// keys the profile actually sets are written back.
	config, err := readConfigFile()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	profile := make(map[string]interface{})
	if profiles, ok := config["profiles"].(map[string]interface{}); ok {
		if existing, ok := profiles[profileName].(map[string]interface{}); ok {
			profile = existing
		}
	}

	if !applyProfileFlags(cmd.Flags(), profile) {
		fmt.Println("No changes specified. Use flags to update settings:")
		fmt.Println("  hackhub profile edit", profileName, "--storage-driver=sqlite --breakpoint=120")
		return nil
	}

	if err := validateProfile(profile); err != nil {
		return err
	}

	if err := saveProfileToConfig(profileName, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("✓ Profile '%s' updated\n", profileName)
	return nil
}

// applyProfileFlags copies every changed flag into profile, nesting dotted
// keys. It reports whether anything changed.
func applyProfileFlags(flags *pflag.FlagSet, profile map[string]interface{}) bool {
	changed := false
	for _, pf := range profileFlags {
		if !flags.Changed(pf.flag) {
			continue
		}

		var val interface{}
		switch pf.flag {
		case "breakpoint":
			val, _ = flags.GetInt(pf.flag)
		case "ephemeral":
			val, _ = flags.GetBool(pf.flag)
		default:
			val, _ = flags.GetString(pf.flag)
		}

		setNested(profile, pf.key, val)
		changed = true
	}
	return changed
}

func validateProfile(profile map[string]interface{}) error {
	if driver, ok := getNested(profile, "storage.driver").(string); ok {
		switch strings.ToLower(driver) {
		case storage.DriverFile, storage.DriverSQLite, storage.DriverMemory:
		default:
			return fmt.Errorf("unknown storage driver: %s (supported: file, sqlite, memory)", driver)
		}
	}
	if bp, ok := getNested(profile, "breakpoint").(int); ok && bp <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %d", bp)
	}
	return nil
}

func setNested(m map[string]interface{}, key string, val interface{}) {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = val
}

func getNested(m map[string]interface{}, key string) interface{} {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]interface{})
		if !ok {
			return nil
		}
		m = next
	}
	return m[parts[len(parts)-1]]
}

// Config file manipulation functions

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(configDir(), "config.yaml")
}

func readConfigFile() (map[string]interface{}, error) {
	configPath := getConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]interface{}), nil
		}
		return nil, err
	}

	var config map[string]interface{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config == nil {
		config = make(map[string]interface{})
	}

	return config, nil
}

func writeConfigFile(config map[string]interface{}) error {
	configPath := getConfigPath()

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func saveProfileToConfig(name string, profile map[string]interface{}) error {
	config, err := readConfigFile()
	if err != nil {
		return err
	}

	profiles, ok := config["profiles"].(map[string]interface{})
	if !ok {
		profiles = make(map[string]interface{})
	}

	profiles[name] = profile
	config["profiles"] = profiles

	return writeConfigFile(config)
}

func setDefaultProfileInConfig(name string) error {
	config, err := readConfigFile()
	if err != nil {
		return err
	}

	config["default_profile"] = name

	return writeConfigFile(config)
}
