package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/logger"
	"github.com/theakshaypant/hackhub/internal/storage"
	"github.com/theakshaypant/hackhub/internal/theme"
	"gopkg.in/yaml.v3"
)

// resetConfig isolates viper and the config path for one test.
func resetConfig(t *testing.T) string {
	t.Helper()
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfgFile = path
	profile = ""
	t.Cleanup(func() {
		viper.Reset()
		cfgFile = ""
		profile = ""
	})
	return path
}

func TestWriteEventsText(t *testing.T) {
	var buf bytes.Buffer
	events := core.NewStaticCatalog().Events()
	writeEventsText(&buf, events, eventsTextWidth, false)
	out := buf.String()

	for _, ev := range events {
		assert.Contains(t, out, ev.Title)
		assert.Contains(t, out, ev.StartsLine())
		for _, tag := range ev.Tags {
			assert.Contains(t, out, "#"+tag)
		}
	}
	assert.Contains(t, out, "Total: 3 events")

	// a non-terminal writer wraps at the fixed width
	assert.Equal(t, eventsTextWidth, textWidth(&buf))

	buf.Reset()
	writeEventsText(&buf, nil, eventsTextWidth, false)
	assert.Contains(t, buf.String(), "No upcoming events")
}

func TestWriteEventsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEventsYAML(&buf, core.NewStaticCatalog().Events()))

	var records []eventRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)
	assert.Equal(t, "h3", records[2].ID)
	assert.Equal(t, "Climate Tech Sprint", records[2].Title)
	assert.Contains(t, buf.String(), "days_left:")
}

func TestWriteCalendar(t *testing.T) {
	var buf bytes.Buffer
	writeCalendar(&buf)
	out := buf.String()

	assert.Contains(t, out, "November 2025")
	assert.Contains(t, out, "on days 6, 12, 18, 24, 30")
	assert.Equal(t, 5, strings.Count(out, "*"))
}

func TestApplyProfileFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("storage-driver", "", "")
	flags.String("storage-path", "", "")
	flags.String("log-level", "", "")
	flags.String("log-file", "", "")
	flags.Int("breakpoint", 0, "")
	flags.Bool("ephemeral", false, "")

	profile := map[string]interface{}{}
	assert.False(t, applyProfileFlags(flags, profile))
	assert.Empty(t, profile)

	require.NoError(t, flags.Parse([]string{"--storage-driver=sqlite", "--breakpoint=120"}))
	assert.True(t, applyProfileFlags(flags, profile))

	assert.Equal(t, "sqlite", getNested(profile, "storage.driver"))
	assert.Equal(t, 120, getNested(profile, "breakpoint"))
	assert.Nil(t, getNested(profile, "storage.path"))
	assert.Nil(t, getNested(profile, "log.level"))
}

func TestValidateProfile(t *testing.T) {
	ok := map[string]interface{}{}
	setNested(ok, "storage.driver", "SQLite")
	assert.NoError(t, validateProfile(ok))

	bad := map[string]interface{}{}
	setNested(bad, "storage.driver", "redis")
	assert.ErrorContains(t, validateProfile(bad), "unknown storage driver")

	zero := map[string]interface{}{"breakpoint": 0}
	assert.Error(t, validateProfile(zero))
}

func TestProfileConfigRoundTrip(t *testing.T) {
	resetConfig(t)

	demo := map[string]interface{}{}
	setNested(demo, "storage.driver", storage.DriverMemory)
	setNested(demo, "breakpoint", 120)
	require.NoError(t, saveProfileToConfig("demo", demo))
	require.NoError(t, setDefaultProfileInConfig("demo"))

	config, err := readConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "demo", config["default_profile"])

	profiles, ok := config["profiles"].(map[string]interface{})
	require.True(t, ok)
	stored, ok := profiles["demo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, storage.DriverMemory, getNested(stored, "storage.driver"))
}

func TestApplyProfile(t *testing.T) {
	path := resetConfig(t)

	demo := map[string]interface{}{}
	setNested(demo, "storage.driver", storage.DriverSQLite)
	setNested(demo, "log.level", "debug")
	require.NoError(t, saveProfileToConfig("demo", demo))
	require.NoError(t, setDefaultProfileInConfig("demo"))

	setDefaults()
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
	applyProfile()

	assert.Equal(t, storage.DriverSQLite, viper.GetString("storage.driver"))
	assert.Equal(t, "debug", viper.GetString("log.level"))
	// untouched keys keep their defaults
	assert.Equal(t, 90, viper.GetInt("breakpoint"))
}

func TestIsFlagExplicitlySet(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("storage-driver")
	require.NotNil(t, f)
	t.Cleanup(func() { f.Changed = false })

	assert.False(t, isFlagExplicitlySet("storage.driver"))
	f.Changed = true
	assert.True(t, isFlagExplicitlySet("storage.driver"))
	assert.False(t, isFlagExplicitlySet("no.such_key"))
}

func TestStorageOptions(t *testing.T) {
	resetConfig(t)
	setDefaults()

	opts := storageOptions()
	assert.Equal(t, storage.DriverFile, opts.Driver)
	assert.True(t, strings.HasSuffix(opts.Path, filepath.Join("hackhub", "preferences.yaml")))

	viper.Set("ephemeral", true)
	assert.Equal(t, storage.Options{Driver: storage.DriverMemory}, storageOptions())
}

func TestOpenStoreFallsBack(t *testing.T) {
	resetConfig(t)
	viper.Set("storage.driver", "redis")

	store := openStore(nil)
	_, err := store.Get(theme.StorageKey)
	assert.ErrorIs(t, err, core.ErrUnavailable)
}

func TestOpenStoreLogsOpenedOptions(t *testing.T) {
	resetConfig(t)
	viper.Set("storage.driver", "redis")
	viper.Set("storage.path", "/var/lib/hackhub/prefs")

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	openStore(log)
	out := buf.String()
	assert.Contains(t, out, `"driver":"redis"`)
	assert.Contains(t, out, `"path":"/var/lib/hackhub/prefs"`)
	assert.Contains(t, out, "preference store unavailable")
}

func TestOpenStoreStrictUsesGivenOptions(t *testing.T) {
	resetConfig(t)
	viper.Set("storage.driver", "redis")

	store, err := openStoreStrict(storage.Options{
		Driver: storage.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "prefs.db"),
	})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(theme.StorageKey, "dark"))
	assert.NoError(t, confirmStored(store, theme.Dark))

	_, err = openStoreStrict(storage.Options{Driver: "redis"})
	assert.ErrorContains(t, err, "failed to open preference store")
}

func TestConfirmStored(t *testing.T) {
	store := storage.NewMemoryStore()
	assert.Error(t, confirmStored(store, theme.Dark))

	require.NoError(t, store.Set(theme.StorageKey, "dark"))
	assert.NoError(t, confirmStored(store, theme.Dark))
	assert.Error(t, confirmStored(store, theme.Light))
}

func TestExpandPath(t *testing.T) {
	assert.Equal(t, "/tmp/x", expandPath("/tmp/x"))
	assert.False(t, strings.HasPrefix(expandPath("~/x"), "~"))
}
