package cmd

import (
	"log/slog"
	"os"

	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
	commit     = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "schweinchen",
	Short:         "Schweinchen card album: weighted pig card draws and per-user albums",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
}

func Execute(v, c string) error {
	version, commit = v, c
	rootCmd.Version = v
	return rootCmd.Execute()
}

// loadConfig reads the config and installs the log handler it asks for.
func loadConfig() (*tcg.Config, error) {
	cfg, err := tcg.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(logger.NewHandlerWithWriter(os.Stdout, cfg.Log.Level, cfg.Log.Color)))
	return cfg, nil
}
