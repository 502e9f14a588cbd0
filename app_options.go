package ui

import (
	"fmt"
	"log/slog"
)

// UIOption is a functional option for configuring a UI.
type UIOption func(*UI) error

// WithTheme sets the theme. A nil theme is an error.
func WithTheme(th *Theme) UIOption {
	return func(u *UI) error {
		if th == nil {
			return fmt.Errorf("nil theme")
		}
		if err := th.Validate(); err != nil {
			return fmt.Errorf("invalid theme: %w", err)
		}
		u.state.theme = th
		return nil
	}
}

// WithMeasurer sets the text measurer used by labels and text fields.
// Default is DefaultMeasurer.
func WithMeasurer(m TextMeasurer) UIOption {
	return func(u *UI) error {
		if m == nil {
			return fmt.Errorf("nil text measurer")
		}
		u.state.measurer = m
		return nil
	}
}

// WithLogger sets the logger frame phases and interaction changes are
// written to at debug level. Default is the debug package logger.
func WithLogger(l *slog.Logger) UIOption {
	return func(u *UI) error {
		if l == nil {
			return fmt.Errorf("nil logger")
		}
		u.state.logger = l
		return nil
	}
}

// WithQueueSize sets the capacity of the cross-goroutine update queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) UIOption {
	return func(u *UI) error {
		if size < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		u.queueSize = size
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that sees every key event before
// selection bindings, shortcuts and the tree. If it returns true, the
// event is consumed.
func WithGlobalKeyHandler(fn func(KeyEvent) bool) UIOption {
	return func(u *UI) error {
		u.state.globalKeyHandler = fn
		return nil
	}
}

// WithShortcut registers a keyboard shortcut.
func WithShortcut(chord KeyChord, fn Action) UIOption {
	return func(u *UI) error {
		return u.state.shortcuts.Register(chord, fn)
	}
}
