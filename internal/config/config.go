// Package config loads explorer settings from defaults, explorer.yaml,
// EXPLORER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Notifier kinds
const (
	NotifierLog     = "log"
	NotifierPhoenix = "phoenix"
	NotifierBoth    = "both"
)

// Defaults
const (
	DefaultConfigFile = "explorer.yaml"
	DefaultTheme      = "dark"
	DefaultLogFile    = "explorer.log"
	DefaultLogLevel   = "info"
	DefaultTopic      = "explorer:lobby"
	EnvPrefix         = "EXPLORER_"
)

// Config is the resolved explorer configuration
type Config struct {
	Tree     string         `koanf:"tree"`
	Theme    string         `koanf:"theme"`
	Watch    bool           `koanf:"watch"`
	Mouse    bool           `koanf:"mouse"`
	Notifier NotifierConfig `koanf:"notifier"`
	Log      LogConfig      `koanf:"log"`
}

// NotifierConfig selects where file operations are sent
type NotifierConfig struct {
	Kind    string        `koanf:"kind"`
	Phoenix PhoenixConfig `koanf:"phoenix"`
}

// PhoenixConfig describes the remote channel
type PhoenixConfig struct {
	URL    string `koanf:"url"`
	Topic  string `koanf:"topic"`
	APIKey string `koanf:"api_key"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// flagKeys maps flag names onto nested config keys
var flagKeys = map[string]string{
	"log-file":      "log.file",
	"log-level":     "log.level",
	"notifier":      "notifier.kind",
	"phoenix-url":   "notifier.phoenix.url",
	"phoenix-topic": "notifier.phoenix.topic",
	"api-key":       "notifier.phoenix.api_key",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"theme":                  DefaultTheme,
		"watch":                  false,
		"mouse":                  true,
		"notifier.kind":          NotifierLog,
		"notifier.phoenix.topic": DefaultTopic,
		"log.file":               DefaultLogFile,
		"log.level":              DefaultLogLevel,
	}
}

// Load resolves the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := cfgFile != ""
	if cfgFile == "" {
		cfgFile = DefaultConfigFile
	}
	if _, err := os.Stat(cfgFile); err == nil {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
	}

	// EXPLORER_LOG__LEVEL -> log.level, EXPLORER_TREE -> tree
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	var errs []error
	switch c.Notifier.Kind {
	case NotifierLog:
	case NotifierPhoenix, NotifierBoth:
		if c.Notifier.Phoenix.URL == "" {
			errs = append(errs, errors.New("notifier.phoenix.url is required for the phoenix notifier"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notifier kind %q", c.Notifier.Kind))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses the configured log level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", l.Level)
	}
	return level, nil
}
