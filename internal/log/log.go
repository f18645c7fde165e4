// ABOUTME: Leveled logging wrapper around slog for verbose mode output
// ABOUTME: Writes to stderr so log lines never mix with table or prompt output

package log

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

var level atomic.Int64

func init() {
	level.Store(int64(slog.LevelInfo))
}

// SetVerbose lowers the global level to debug when on, restores info when off.
func SetVerbose(on bool) {
	if on {
		level.Store(int64(slog.LevelDebug))
		return
	}
	level.Store(int64(slog.LevelInfo))
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	return slog.Level(level.Load()) <= slog.LevelDebug
}

// Debug logs a debug message if verbose mode is enabled.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > slog.LevelDebug {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > slog.LevelWarn {
		return
	}
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
