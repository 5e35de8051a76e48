package utils

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

const (
	ErrorColor   = 0xFF4D4D
	InfoColor    = 0x6016FF
	SuccessColor = 0x209020
)

// ErrorEmbed answers the interaction with an ephemeral error.
func ErrorEmbed(e *handler.CommandEvent, message string) error {
	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       ErrorColor,
		}},
		Flags: discord.MessageFlagEphemeral,
	})
}
