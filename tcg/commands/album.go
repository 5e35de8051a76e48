package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/utils"
)

var Album = discord.SlashCommandCreate{
	Name:        "album",
	Description: "Show a card album, one page per generation",
	Options:     []discord.ApplicationCommandOption{userOption},
}

func AlbumHandler(b *tcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		a, err := b.Album.BuildAlbum(ctx, targetUsername(e))
		if err != nil {
			return utils.ErrorEmbed(e, loadErrorMessage(err))
		}
		if len(a.Pages) == 0 {
			return utils.ErrorEmbed(e, "The catalog is empty")
		}

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				p := a.Pages[page]
				embed.
					SetTitle(fmt.Sprintf("%s's album · Generation %d", a.Username, p.Generation)).
					SetDescription(albumPageDescription(p)).
					SetColor(utils.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d/%d cards in this generation • %d/%d total",
						page+1, len(a.Pages), p.Owned, len(p.Entries), a.Owned, a.Total), "")
			},
			Pages:      len(a.Pages),
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func loadErrorMessage(err error) string {
	if domain.IsValidation(err) {
		return "Missing username"
	}
	return "Could not load the album, try again later"
}
