// Package cli provides the command-line interface for the explorer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rubber_duck/explorer/internal/config"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/fileops"
	"github.com/rubber_duck/explorer/internal/phoenix"
	"github.com/rubber_duck/explorer/internal/tree"
	"github.com/rubber_duck/explorer/internal/ui"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var cfgFile string

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "explorer [tree-file]",
		Short: "Browse a file tree and request file operations",
		Long: `explorer shows a folder tree loaded from a YAML or JSON document.

Folders open and close with a click or enter. Right click a file (or press m)
for a menu of copy, delete and rename; the request is logged and, when a
Phoenix endpoint is configured, pushed to the file service.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		RunE:          runExplorer,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	flags.String("theme", "", "Color theme (dark|light|dracula)")
	flags.Bool("watch", false, "Reload the tree when its file changes")
	flags.Bool("mouse", true, "Enable mouse support")
	flags.String("log-file", "", "Log file (default: ./"+config.DefaultLogFile+")")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("notifier", "", "Where file operations go (log|phoenix|both)")
	flags.String("phoenix-url", "", "Phoenix socket URL, e.g. ws://localhost:4000/socket")
	flags.String("phoenix-topic", "", "Phoenix channel topic")
	flags.String("api-key", "", "API key sent when connecting to Phoenix")

	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return ui.NewThemeManager().GetThemeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("notifier", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.NotifierLog, config.NotifierPhoenix, config.NotifierBoth}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Theme:    config.DefaultTheme,
		Mouse:    true,
		Notifier: config.NotifierConfig{Kind: config.NotifierLog},
		Log:      config.LogConfig{File: config.DefaultLogFile, Level: config.DefaultLogLevel},
	}
}

// treePath picks the positional argument over the configured tree
func treePath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Tree != "" {
		return cfg.Tree, nil
	}
	return "", errors.New("no tree file given (pass one as an argument or set tree in the config)")
}

// openLog creates the file logger. The terminal belongs to the TUI, so
// nothing is ever logged to stderr while it runs.
func openLog(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func runExplorer(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd.Context())
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	path, err := treePath(cfg, args)
	if err != nil {
		return err
	}
	root, err := tree.Load(path)
	if err != nil {
		return err
	}

	logger, closer, err := openLog(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	session := uuid.NewString()
	logger.Info("starting explorer", "tree", path, "session", session, "version", Version)

	var client *phoenix.Client
	if cfg.Notifier.Kind != config.NotifierLog {
		client = phoenix.NewClient(logger)
	}
	notifier, err := fileops.New(cfg.Notifier, client, session, logger)
	if err != nil {
		return err
	}
	ctrl := explorer.NewController(root, notifier,
		explorer.WithSessionID(session),
		explorer.WithLogger(logger),
	)

	opts := []ui.Option{
		ui.WithLogger(logger),
		ui.WithTheme(cfg.Theme),
	}
	if cfg.Watch {
		w, err := ui.NewWatcher(path, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		opts = append(opts, ui.WithWatcher(w))
	}
	if client != nil {
		opts = append(opts, ui.WithPhoenix(client, phoenix.Config{
			URL:    cfg.Notifier.Phoenix.URL,
			APIKey: cfg.Notifier.Phoenix.APIKey,
			Topic:  cfg.Notifier.Phoenix.Topic,
		}))
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(ui.NewModel(ctrl, opts...), programOpts...)
	if client != nil {
		client.SetProgram(p)
		defer client.Disconnect()()
	}

	if _, err := p.Run(); err != nil {
		logger.Error("explorer exited with error", "error", err)
		return err
	}
	logger.Info("explorer stopped", "session", session)
	return nil
}
