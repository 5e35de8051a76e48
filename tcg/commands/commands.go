package commands

import (
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/handlers"
)

var Commands = []discord.ApplicationCommandCreate{
	Draw,
	Album,
	Card,
	Odds,
}

func Register(h *handler.Mux, b *tcg.Bot) {
	h.Command("/draw", handlers.WrapWithLogging("draw", DrawHandler(b)))
	h.Command("/album", handlers.WrapWithLogging("album", AlbumHandler(b)))
	h.Command("/card", handlers.WrapWithLogging("card", CardHandler(b)))
	h.Autocomplete("/card", CardAutocomplete(b))
	h.Command("/odds", handlers.WrapWithLogging("odds", OddsHandler(b)))
}

var userOption = discord.ApplicationCommandOptionString{
	Name:        "user",
	Description: "Album owner, defaults to you",
	Required:    false,
}

// targetUsername is the "user" option when given, else the invoker's Discord username.
func targetUsername(e *handler.CommandEvent) string {
	if name := strings.TrimSpace(e.SlashCommandInteractionData().String("user")); name != "" {
		return name
	}
	return e.User().Username
}
