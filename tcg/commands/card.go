package commands

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/tcg"
	"github.com/kampfschwein/schweinchen-tcg/tcg/utils"
)

const maxChoices = 25

var Card = discord.SlashCommandCreate{
	Name:        "card",
	Description: "Look up a card and how many you own",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "name",
			Description:  "Card name, typos are fine",
			Required:     true,
			Autocomplete: true,
		},
	},
}

func CardHandler(b *tcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		query := e.SlashCommandInteractionData().String("name")
		matches := b.Catalog.Search(query, 1)
		if len(matches) == 0 {
			return utils.ErrorEmbed(e, "No card matches "+query)
		}
		card := matches[0]

		owned, err := ownedEntry(ctx, b.Album, e.User().Username, card)
		if err != nil {
			return utils.ErrorEmbed(e, loadErrorMessage(err))
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(card.Name).
			SetDescription(cardDescription(card, b.Catalog.GenerationSize(card.Generation), owned)).
			SetColor(card.Rarity.Color())
		if owned != nil {
			if url := b.ImageURL(ctx, owned.ImageKey); url != "" {
				embed.SetImage(url)
			}
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed.Build()},
		})
	}
}

// ownedEntry returns the user's album entry for card. Load failures are returned, never read as "not owned".
func ownedEntry(ctx context.Context, albums album.Service, username string, card catalog.Card) (*album.Entry, error) {
	entries, err := albums.Build(ctx, username)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].CardName == card.Name {
			return &entries[i], nil
		}
	}
	return nil, nil
}

func CardAutocomplete(b *tcg.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		focused := e.Data.Focused()
		if focused.Name != "name" {
			return nil
		}

		var query string
		if focused.Value != nil {
			if err := json.Unmarshal(focused.Value, &query); err != nil {
				return e.AutocompleteResult([]discord.AutocompleteChoice{})
			}
		}

		cards := b.Catalog.AllCards()
		if strings.TrimSpace(query) != "" {
			cards = b.Catalog.Search(query, maxChoices)
		}

		choices := make([]discord.AutocompleteChoice, 0, min(len(cards), maxChoices))
		for _, c := range cards[:min(len(cards), maxChoices)] {
			choices = append(choices, discord.AutocompleteChoiceString{Name: c.Name, Value: c.Name})
		}
		return e.AutocompleteResult(choices)
	}
}
