// Package debug provides optional file-based debug logging.
//
// When the GOUI_DEBUG environment variable is set to a file path, debug
// records are appended to that file as text-formatted slog records.
// Otherwise logging is a no-op and costs a single Enabled check.
package debug
