package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"
	"github.com/kampfschwein/schweinchen-tcg/tcg/logger"
)

const commandTimeout = 10 * time.Second

// WrapWithLogging wraps a command handler with logging functionality
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()

		slog.Debug("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
			slog.String("channel_id", e.ChannelID().String()),
		)

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			logger.LogCommand(name, time.Since(start), err,
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
			)
			return err

		case <-time.After(commandTimeout):
			slog.Error("Command timed out",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_name", e.User().Username),
				slog.String("status", "timeout"),
				slog.Duration("timeout", commandTimeout),
			)
			return fmt.Errorf("command %s timed out after %s", name, commandTimeout)
		}
	}
}
