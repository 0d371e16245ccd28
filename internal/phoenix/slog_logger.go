package phoenix

import (
	"fmt"
	"log/slog"

	"github.com/nshafer/phx"
)

// SlogLogger implements phx.Logger on top of slog. The socket runs while the
// TUI owns the terminal, so nothing may reach stdout.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a phx.Logger writing to logger
func NewSlogLogger(logger *slog.Logger) phx.Logger {
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) log(level phx.LoggerLevel, kind, msg string) {
	if level >= phx.LogWarning {
		l.logger.Warn(msg, "kind", kind)
		return
	}
	l.logger.Debug(msg, "kind", kind)
}

// Print implements phx.Logger
func (l *SlogLogger) Print(level phx.LoggerLevel, kind string, v ...any) {
	l.log(level, kind, fmt.Sprint(v...))
}

// Println implements phx.Logger
func (l *SlogLogger) Println(level phx.LoggerLevel, kind string, v ...any) {
	l.log(level, kind, fmt.Sprint(v...))
}

// Printf implements phx.Logger
func (l *SlogLogger) Printf(level phx.LoggerLevel, kind string, format string, v ...any) {
	l.log(level, kind, fmt.Sprintf(format, v...))
}
