package main

import (
	"log/slog"
	"os"

	"github.com/kampfschwein/schweinchen-tcg/cmd"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		slog.Error("Exiting", slog.String("type", "error"), slog.Any("error", err))
		os.Exit(1)
	}
}
