package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		err      error
		contains []string
	}{
		{
			name:     "completed",
			duration: 40 * time.Millisecond,
			contains: []string{"[INFO] [CMD] Command completed [draw by alice] [Status: success]"},
		},
		{
			name:     "slow",
			duration: SlowCommand + time.Second,
			contains: []string{"[WARN] [CMD] Command executed slowly [draw by alice] [Status: slow]"},
		},
		{
			name:     "failed",
			duration: 40 * time.Millisecond,
			err:      errors.New("store down"),
			contains: []string{"[ERROR] [CMD] Command failed: store down [draw by alice] [Status: failed]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(NewHandlerWithWriter(&buf, slog.LevelDebug, false)))
			t.Cleanup(func() { slog.SetDefault(prev) })

			LogCommand("draw", tt.duration, tt.err, slog.String("user_name", "alice"))

			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("LogCommand() output = %q, want it to contain %q", out, want)
				}
			}
		})
	}
}
