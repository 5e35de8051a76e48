package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeDraw    LogType = "DRAW"
	TypeHTTP    LogType = "HTTP"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// attributes folded into the message line instead of printed as key=value
var internalAttrs = map[string]bool{
	"type":      true,
	"name":      true,
	"user_name": true,
	"status":    true,
	"error":     true,
}

type CustomHandler struct {
	level slog.Leveler
	out   io.Writer
	mu    *sync.Mutex
	color bool
	attrs []slog.Attr
	group string
}

// NewHandler writes colored lines to stdout.
func NewHandler(level slog.Leveler) *CustomHandler {
	return NewHandlerWithWriter(os.Stdout, level, true)
}

func NewHandlerWithWriter(out io.Writer, level slog.Leveler, color bool) *CustomHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		level: level,
		out:   out,
		mu:    &sync.Mutex{},
		color: color,
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	clone.group = name
	return &clone
}

func (h *CustomHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}
	return out
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkipLog(&r) {
		return nil
	}

	all := append([]slog.Attr{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		all = append(all, h.qualify([]slog.Attr{a})...)
		return true
	})

	levelColor, levelText := levelStyle(r.Level)
	message := r.Message

	if r.Level >= slog.LevelError {
		if details := findAttr(all, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}
	if cmd, user := findAttr(all, "name"), findAttr(all, "user_name"); cmd != "" && user != "" {
		message = fmt.Sprintf("%s [%s by %s]", message, cmd, user)
	}
	if status := findAttr(all, "status"); status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}

	var sb strings.Builder
	for _, a := range all {
		if internalAttrs[a.Key] {
			continue
		}
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := fmt.Sprintf("[Schweinchen] [%s] [%s] [%s] %s%s",
		ts.Format("15:04:05"), levelText, getLogType(all), message, sb.String())
	if h.color {
		line = fmt.Sprintf("%s[Schweinchen] [%s] [%s%s%s] [%s] %s%s%s",
			colorWhite, ts.Format("15:04:05"), levelColor, levelText, colorWhite,
			getLogType(all), message, sb.String(), colorReset)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

// disgo gateway chatter that would drown everything else at debug level
func shouldSkipLog(r *slog.Record) bool {
	skippedMessages := []string{
		"locking buckets",
		"unlocking buckets",
		"gateway event",
		"cleaning up bucket",
		"binary message received",
		"received gateway message",
		"sending gateway command",
		"new request",
		"new response",
		"rate limit response headers",
		"sending heartbeat",
	}

	msg := strings.ToLower(r.Message)
	for _, skip := range skippedMessages {
		if strings.Contains(msg, skip) {
			return true
		}
	}
	return false
}

func getLogType(attrs []slog.Attr) LogType {
	switch findAttr(attrs, "type") {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "draw":
		return TypeDraw
	case "http":
		return TypeHTTP
	case "error":
		return TypeError
	default:
		return TypeSystem
	}
}

func findAttr(attrs []slog.Attr, key string) string {
	for i := len(attrs) - 1; i >= 0; i-- {
		if attrs[i].Key == key {
			return attrs[i].Value.String()
		}
	}
	return ""
}
