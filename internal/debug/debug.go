package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GOUI_DEBUG"

// discard is a slog.Handler that drops every record. Enabled returns false
// so callers skip formatting entirely.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	logger  atomic.Pointer[slog.Logger]
	mu      sync.Mutex
	logFile *os.File
	envOnce sync.Once
)

func init() {
	logger.Store(slog.New(discard{}))
}

// Init starts writing debug records to the file at path.
// If path is empty, uses "goui-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "goui-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger.Store(newLogger(f))
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// SetLogger replaces the debug logger. Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the active logger. On first use it honours GOUI_DEBUG.
func Logger() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			if err := Init(path); err != nil {
				fmt.Fprintf(os.Stderr, "goui: %v\n", err)
			}
		}
	})
	return logger.Load()
}

// Log writes a debug record with slog-style key/value pairs.
func Log(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Close closes the debug log file and restores the silent logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger.Store(slog.New(discard{}))
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
