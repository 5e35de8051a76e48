package commands

import (
	"context"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/utils"
)

var Draw = discord.SlashCommandCreate{
	Name:        "draw",
	Description: "Draw a random pig card",
	Options:     []discord.ApplicationCommandOption{userOption},
}

func DrawHandler(b *tcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		username := targetUsername(e)
		card, err := b.Draw.Draw(ctx, username)
		if err != nil {
			if domain.IsValidation(err) {
				return utils.ErrorEmbed(e, "Missing username")
			}
			return utils.ErrorEmbed(e, "Could not save your card, try again later")
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(username + " drew a card").
			SetDescription(drawDescription(card, b.Catalog.GenerationSize(card.Generation))).
			SetColor(card.Rarity.Color())
		if url := b.ImageURL(ctx, card.ImageKey(true)); url != "" {
			embed.SetThumbnail(url)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed.Build()},
		})
	}
}
