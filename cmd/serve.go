package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/kampfschwein/schweinchen-tcg/backend"
	"github.com/kampfschwein/schweinchen-tcg/backend/handlers"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database/repositories"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/images"
	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/commands"
	"github.com/kampfschwein/schweinchen-tcg/tcg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var syncCommands bool

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "run the HTTP API and, when a token is configured, the Discord bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger.LogSystem("Starting Schweinchen TCG",
			slog.String("version", version),
			slog.String("commit", commit))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dbStart := time.Now()
		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			logger.LogError("Database connection failed", err, slog.Duration("attempted_for", time.Since(dbStart)))
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			logger.LogError("Failed to initialize database schema", err)
			return err
		}
		logger.LogSystem("Database ready", slog.Duration("took", time.Since(dbStart)))

		cat, err := cfg.BuildCatalog()
		if err != nil {
			return err
		}
		weights, err := cfg.DrawWeights()
		if err != nil {
			return err
		}
		drawOpts, err := cfg.DrawOptions()
		if err != nil {
			return err
		}

		repo := repositories.NewOwnershipRepository(db.BunDB())
		engine, err := draw.NewEngine(cat, weights, repo, drawOpts...)
		if err != nil {
			return err
		}
		aggregator := album.NewAggregator(cat, repo)

		resolver, err := images.New(ctx, cfg.Spaces)
		if err != nil {
			return err
		}

		server := backend.New(cfg.HTTP, &handlers.WebApp{
			Catalog: cat,
			Draw:    engine,
			Album:   aggregator,
			Images:  resolver,
			Ping:    db.Ping,
			Version: version,
		})

		g, gctx := errgroup.WithContext(ctx)
		g.Go(server.Start)
		g.Go(func() error {
			<-gctx.Done()
			return server.Shutdown(context.Background())
		})

		if cfg.Bot.Enabled() {
			b := tcg.New(*cfg, version, commit)
			b.Catalog = cat
			b.Draw = engine
			b.Album = aggregator
			b.Images = resolver

			if err := startBot(ctx, b); err != nil {
				stop()
				_ = g.Wait()
				return err
			}
			g.Go(func() error {
				<-gctx.Done()
				closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				b.Client.Close(closeCtx)
				return nil
			})
		} else {
			logger.LogSystem("No bot token configured, Discord bot disabled")
		}

		err = g.Wait()
		logger.LogSystem("Shut down")
		return err
	},
}

func startBot(ctx context.Context, b *tcg.Bot) error {
	h := handler.New()
	commands.Register(h, b)

	if err := b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		return fmt.Errorf("failed to setup bot: %w", err)
	}

	if syncCommands {
		logger.LogSystem("Syncing commands", slog.Any("guild_ids", b.Cfg.Bot.DevGuilds))
		if err := handler.SyncCommands(b.Client, commands.Commands, b.Cfg.Bot.DevGuilds); err != nil {
			logger.LogError("Failed to sync commands", err)
		}
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := b.Client.OpenGateway(openCtx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}
	return nil
}

func init() {
	serveCMD.Flags().BoolVar(&syncCommands, "sync-commands", false, "sync slash commands to discord on startup")
	rootCmd.AddCommand(serveCMD)
}
