package commands

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/utils"
)

var Odds = discord.SlashCommandCreate{
	Name:        "odds",
	Description: "Show the draw chance of each rarity",
}

func OddsHandler(b *tcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		odds := b.Draw.Odds()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{discord.NewEmbedBuilder().
				SetTitle("Draw odds").
				SetDescription(oddsDescription(odds)).
				SetColor(utils.InfoColor).
				SetFooter(fmt.Sprintf("%d cards • total weight %d", len(odds.Cards), odds.TotalWeight), "").
				Build()},
		})
	}
}
