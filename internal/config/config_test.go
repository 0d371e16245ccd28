package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("explorer", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("tree", "", "")
	fs.String("theme", "", "")
	fs.Bool("watch", false, "")
	fs.Bool("mouse", true, "")
	fs.String("notifier", "", "")
	fs.String("phoenix-url", "", "")
	fs.String("phoenix-topic", "", "")
	fs.String("api-key", "", "")
	fs.String("log-file", "", "")
	fs.String("log-level", "", "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.True(t, cfg.Mouse)
	assert.False(t, cfg.Watch)
	assert.Equal(t, NotifierLog, cfg.Notifier.Kind)
	assert.Equal(t, DefaultTopic, cfg.Notifier.Phoenix.Topic)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnvThenFlags(t *testing.T) {
	path := writeConfig(t, `
tree: project.yaml
theme: light
notifier:
  kind: phoenix
  phoenix:
    url: ws://file/socket
log:
  level: debug
`)
	t.Setenv("EXPLORER_THEME", "dracula")
	t.Setenv("EXPLORER_NOTIFIER__PHOENIX__URL", "ws://env/socket")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--phoenix-url", "ws://flag/socket", "--log-level", "warn"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "project.yaml", cfg.Tree)
	assert.Equal(t, "dracula", cfg.Theme, "env beats file")
	assert.Equal(t, NotifierPhoenix, cfg.Notifier.Kind)
	assert.Equal(t, "ws://flag/socket", cfg.Notifier.Phoenix.URL, "flag beats env")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "mouse: false\ntheme: light\n")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "light", cfg.Theme)
}

func TestExplicitMissingConfigFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Notifier: NotifierConfig{Kind: NotifierPhoenix}, Log: LogConfig{Level: "info"}}
	assert.ErrorContains(t, cfg.Validate(), "notifier.phoenix.url")

	cfg.Notifier.Kind = "carrier-pigeon"
	assert.ErrorContains(t, cfg.Validate(), "unknown notifier kind")

	cfg.Notifier.Kind = NotifierLog
	cfg.Log.Level = "loud"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}

func TestSlogLevel(t *testing.T) {
	level, err := LogConfig{Level: "debug"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}
