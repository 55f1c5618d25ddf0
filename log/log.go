package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Handler is the [slog.Handler] returned by [NewHandler] and
// [Config.NewHandler]. It is an alias, not a distinct type, so the result
// plugs directly into [slog.New].
type Handler = slog.Handler

// Level is a parsed, validated log severity, distinct from [slog.Level] so
// CLI flag values round-trip through string comparisons without importing
// log/slog at every call site.
type Level string

// Recognized [Level] values.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

// Recognized [Format] values.
const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs as space-separated key=value pairs.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs as human-readable text.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// GetAllLevelStrings returns every recognized level string, used for flag
// usage text and shell completion.
func GetAllLevelStrings() []string {
	return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
}

// GetAllFormatStrings returns every recognized format string, used for
// flag usage text and shell completion.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
}

// ParseLevel parses a log level string, case-insensitively. "warning" is
// accepted as a synonym for [LevelWarn].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case string(LevelError):
		return LevelError, nil
	case string(LevelWarn), "warning":
		return LevelWarn, nil
	case string(LevelInfo):
		return LevelInfo, nil
	case string(LevelDebug):
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))

	switch f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// slogLevel converts l to its [slog.Level] equivalent, defaulting to info
// for the zero value.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	}

	return slog.LevelInfo
}

// NewHandler creates a [Handler] that writes to w at the given level and
// format.
func NewHandler(w io.Writer, level Level, format Format) Handler {
	opts := &slog.HandlerOptions{Level: level.slogLevel()}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	// FormatLogfmt and FormatText both render as slog's default
	// key=value text layout; logfmt and "text" are not meaningfully
	// distinct for a handler with no custom formatting needs.
	return slog.NewTextHandler(w, opts)
}

// NewHandlerFromStrings parses levelStr and formatStr and creates the
// corresponding [Handler], wrapping any parse failure in
// [ErrInvalidArgument].
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (Handler, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, level, format), nil
}
