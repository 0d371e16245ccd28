// Package fileops implements the collaborators that receive copy, delete
// and rename requests from the explorer. None of them touch the file system.
package fileops

import (
	"fmt"
	"log/slog"

	"github.com/rubber_duck/explorer/internal/config"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/phoenix"
)

var verbs = map[explorer.Action]string{
	explorer.ActionCopy:   "Copying",
	explorer.ActionDelete: "Deleting",
	explorer.ActionRename: "Renaming",
}

// LogNotifier records each request as a diagnostic log line
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogNotifier{logger: logger}
}

// Notify implements explorer.Notifier
func (l *LogNotifier) Notify(n explorer.Notification) {
	verb, ok := verbs[n.Action]
	if !ok {
		verb = string(n.Action)
	}
	l.logger.Info(fmt.Sprintf("%s %s", verb, n.FileName), "action", n.Action, "path", n.Path)
}

// Pusher is the part of the Phoenix client the notifier needs
type Pusher interface {
	Push(event string, payload map[string]any) error
}

// PhoenixNotifier forwards requests to a Phoenix channel. Requests made
// while the channel is not joined are dropped.
type PhoenixNotifier struct {
	client  Pusher
	session string
	logger  *slog.Logger
}

// NewPhoenixNotifier creates a notifier pushing through client
func NewPhoenixNotifier(client Pusher, session string, logger *slog.Logger) *PhoenixNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PhoenixNotifier{client: client, session: session, logger: logger}
}

// Event returns the channel event name for an action
func Event(action explorer.Action) string {
	return "file:" + string(action)
}

// Payload builds the channel payload for a notification
func (p *PhoenixNotifier) Payload(n explorer.Notification) map[string]any {
	return map[string]any{
		"file_name": n.FileName,
		"path":      string(n.Path),
		"session":   p.session,
	}
}

// Notify implements explorer.Notifier
func (p *PhoenixNotifier) Notify(n explorer.Notification) {
	if err := p.client.Push(Event(n.Action), p.Payload(n)); err != nil {
		p.logger.Warn("file operation not forwarded", "action", n.Action, "file", n.FileName, "error", err)
	}
}

// Tee fans a notification out to several notifiers in order
type Tee []explorer.Notifier

// Notify implements explorer.Notifier
func (t Tee) Notify(n explorer.Notification) {
	for _, nt := range t {
		nt.Notify(n)
	}
}

// New builds the notifier selected by cfg. client may be nil when the kind
// is "log".
func New(cfg config.NotifierConfig, client *phoenix.Client, session string, logger *slog.Logger) (explorer.Notifier, error) {
	switch cfg.Kind {
	case config.NotifierLog:
		return NewLogNotifier(logger), nil
	case config.NotifierPhoenix, config.NotifierBoth:
		if client == nil {
			return nil, fmt.Errorf("notifier %q needs a phoenix client", cfg.Kind)
		}
		remote := NewPhoenixNotifier(client, session, logger)
		if cfg.Kind == config.NotifierPhoenix {
			return remote, nil
		}
		return Tee{NewLogNotifier(logger), remote}, nil
	default:
		return nil, fmt.Errorf("unknown notifier kind %q", cfg.Kind)
	}
}
