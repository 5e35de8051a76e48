package logger

import (
	"log/slog"
	"time"
)

// SlowCommand is how long a command may run before its completion logs as a warning.
const SlowCommand = 2 * time.Second

// LogCommand logs a finished command, at warn when it ran longer than SlowCommand.
func LogCommand(name string, duration time.Duration, err error, attrs ...any) {
	attrs = append([]any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.Duration("took", duration),
	}, attrs...)

	switch {
	case err != nil:
		slog.Error("Command failed", append(attrs, slog.Any("error", err), slog.String("status", "failed"))...)
	case duration > SlowCommand:
		slog.Warn("Command executed slowly", append(attrs, slog.String("status", "slow"))...)
	default:
		slog.Info("Command completed", append(attrs, slog.String("status", "success"))...)
	}
}

// LogRequest logs a finished HTTP request at a level matching its status.
func LogRequest(method, path string, status int, duration time.Duration, extra ...any) {
	attrs := []any{
		slog.String("type", "http"),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("took", duration),
	}
	attrs = append(attrs, extra...)

	switch {
	case status >= 500:
		slog.Error("Request failed", attrs...)
	case status >= 400:
		slog.Warn("Request rejected", attrs...)
	default:
		slog.Info("Request completed", attrs...)
	}
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
