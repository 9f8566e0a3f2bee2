package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// TimeFormat is the timestamp layout used by the terminal handler
const TimeFormat = "15:04:05.000"

// NewTerminalHandler creates a tint handler writing to w at the given level.
// Colors are only emitted when w is attached to a terminal.
func NewTerminalHandler(w *os.File, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    !IsTerminal(w),
	})
}

// IsTerminal reports whether f is an interactive terminal, including Cygwin/MSYS ptys
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Since is a convenience attribute for elapsed durations
func Since(start time.Time) slog.Attr {
	return slog.Duration("duration", time.Since(start))
}
