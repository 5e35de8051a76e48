package backend

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kampfschwein/schweinchen-tcg/backend/config"
	"github.com/kampfschwein/schweinchen-tcg/backend/handlers"
	"github.com/kampfschwein/schweinchen-tcg/backend/middleware"
)

type Server struct {
	app *fiber.App
	cfg config.Config
}

func New(cfg config.Config, webApp *handlers.WebApp) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Schweinchen TCG",
		ErrorHandler:          middleware.CustomErrorHandler,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	if len(cfg.CORSOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
			AllowMethods: "GET,POST,OPTIONS",
		}))
	}

	if cfg.CardsDir != "" {
		if _, err := os.Stat(cfg.CardsDir); err == nil {
			app.Static("/cards", cfg.CardsDir, fiber.Static{MaxAge: cfg.CardsMaxAge})
		} else {
			slog.Warn("Card image directory missing, not serving /cards",
				slog.String("type", "http"),
				slog.String("dir", cfg.CardsDir),
			)
		}
	}

	setupRoutes(app, webApp)
	return &Server{app: app, cfg: cfg}
}

func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/healthz", handlers.HealthCheck(webApp))
	app.Get("/random/:username", handlers.RandomCard(webApp))

	api := app.Group("/api")
	api.Get("/album/:username", handlers.AlbumAPI(webApp))
	api.Post("/draw/:username", handlers.DrawAPI(webApp))
	api.Get("/odds", handlers.OddsAPI(webApp))
	api.Get("/cards", handlers.CardsAPI(webApp))
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Start blocks until the listener stops.
func (s *Server) Start() error {
	slog.Info("Starting HTTP server",
		slog.String("type", "http"),
		slog.String("address", s.cfg.Address),
	)
	return s.app.Listen(s.cfg.Address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownGrace())
	defer cancel()
	return s.app.ShutdownWithContext(ctx)
}
