package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	webmodels "github.com/kampfschwein/schweinchen-tcg/backend/models"
	"github.com/kampfschwein/schweinchen-tcg/backend/utils"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/images"
)

// Messages shown to album visitors. Clients match on them, keep them stable.
const (
	MsgMissingUsername = "Fehlender Benutzername"
	MsgLoadFailed      = "Fehler beim Abrufen der Karten"
	MsgSaveFailed      = "Fehler beim Speichern der Karte"
)

const defaultSearchLimit = 10

// WebApp represents the web application with all dependencies
type WebApp struct {
	Catalog *catalog.Catalog
	Draw    draw.Service
	Album   album.Service
	Images  images.Resolver
	Ping    func(ctx context.Context) error
	Version string
}

// DrawView is the JSON shape of a freshly drawn card.
type DrawView struct {
	catalog.Card
	RarityName     string `json:"rarity_name"`
	Color          string `json:"color"`
	GenerationSize int    `json:"generation_size"`
	ImageURL       string `json:"image_url"`
}

// toHTTPError maps domain failures onto status codes; failMsg is the 500 body for this route.
func toHTTPError(err error, failMsg string) error {
	switch {
	case domain.IsValidation(err):
		return fiber.NewError(http.StatusBadRequest, MsgMissingUsername)
	case domain.IsPersistence(err):
		return fiber.NewError(http.StatusInternalServerError, failMsg)
	default:
		return err
	}
}

func (w *WebApp) imageURL(ctx context.Context, key string) string {
	if w.Images == nil {
		return ""
	}
	url, err := w.Images.URL(ctx, key)
	if err != nil {
		// the album is still useful without artwork
		slog.Warn("Image URL unavailable",
			slog.String("type", "http"),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return ""
	}
	return url
}

func (w *WebApp) drawView(ctx context.Context, card catalog.Card) DrawView {
	return DrawView{
		Card:           card,
		RarityName:     card.Rarity.String(),
		Color:          webmodels.ColorHex(card.Rarity.Color()),
		GenerationSize: w.Catalog.GenerationSize(card.Generation),
		ImageURL:       w.imageURL(ctx, card.ImageKey(true)),
	}
}

// RandomCard draws a card and answers with its name as plain text.
// ?position=true appends "pos/size" within the card's generation.
func RandomCard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		card, err := webApp.Draw.Draw(c.UserContext(), c.Params("username"))
		if err != nil {
			return toHTTPError(err, MsgSaveFailed)
		}

		text := card.Name
		if c.QueryBool("position") {
			text = fmt.Sprintf("%s %d/%d", text, card.Position, webApp.Catalog.GenerationSize(card.Generation))
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(text)
	}
}

// DrawAPI is RandomCard with the JSON envelope.
func DrawAPI(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		card, err := webApp.Draw.Draw(c.UserContext(), c.Params("username"))
		if err != nil {
			return toHTTPError(err, MsgSaveFailed)
		}
		return utils.SendSuccess(c, webApp.drawView(c.UserContext(), card), "Card drawn")
	}
}

func AlbumAPI(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		a, err := webApp.Album.BuildAlbum(ctx, c.Params("username"))
		if err != nil {
			return toHTTPError(err, MsgLoadFailed)
		}

		view := webmodels.NewAlbumView(a, func(key string) string {
			return webApp.imageURL(ctx, key)
		})
		return utils.SendSuccess(c, view, "")
	}
}

func OddsAPI(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, webApp.Draw.Odds(), "")
	}
}

// CardsAPI lists the catalog, or fuzzy matches when ?q= is given.
func CardsAPI(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return utils.SendSuccess(c, webApp.Catalog.AllCards(), "")
		}

		limit := defaultSearchLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return utils.SendBadRequest(c, "invalid limit", map[string]string{"limit": raw})
			}
			limit = n
		}
		return utils.SendSuccess(c, webApp.Catalog.Search(query, limit), "")
	}
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := webmodels.NewHealthCheck(webApp.Version)
		if webApp.Ping != nil {
			health.AddComponent("database", webApp.Ping(c.UserContext()))
		}

		status := http.StatusOK
		if health.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(health)
	}
}
