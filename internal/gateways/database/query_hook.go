package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook logs every bun query under the db log type.
// Successful queries log at debug unless they take longer than Slow.
type QueryHook struct {
	Slow time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(slow time.Duration) *QueryHook {
	return &QueryHook{Slow: slow}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	took := time.Since(event.StartTime)
	attrs := []slog.Attr{
		slog.String("type", "db"),
		slog.String("operation", event.Operation()),
		slog.String("query", event.Query),
		slog.Duration("took", took),
	}

	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		slog.LogAttrs(ctx, slog.LevelError, "Query failed", append(attrs, slog.Any("error", event.Err))...)
		return
	}

	if event.Result != nil {
		if n, err := event.Result.RowsAffected(); err == nil {
			attrs = append(attrs, slog.Int64("affected_rows", n))
		}
	}

	level := slog.LevelDebug
	msg := "Query executed"
	if h.Slow > 0 && took > h.Slow {
		level = slog.LevelWarn
		msg = "Slow query"
	}
	slog.LogAttrs(ctx, level, msg, attrs...)
}
