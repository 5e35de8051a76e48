package commands

import (
	"fmt"
	"strings"

	webmodels "github.com/kampfschwein/schweinchen-tcg/backend/models"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
)

func rarityStars(r catalog.Rarity) string {
	return strings.Repeat("⭐", int(r))
}

func drawDescription(card catalog.Card, generationSize int) string {
	return fmt.Sprintf("**%s**\n%s %s\nGeneration %d · %d/%d",
		card.Name, rarityStars(card.Rarity), card.Rarity, card.Generation, card.Position, generationSize)
}

// albumPageDescription renders one generation, one line per card in catalog order.
func albumPageDescription(page album.Page) string {
	var sb strings.Builder
	for _, e := range page.Entries {
		line := webmodels.DisplayText(e, len(page.Entries))
		if e.Owned {
			line = fmt.Sprintf("`%02d` %s %s · %s", e.Number, rarityStars(e.Rarity), line, e.FirstObtainedDisplay())
		} else {
			line = fmt.Sprintf("`%02d` %s", e.Number, line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func oddsDescription(odds draw.Odds) string {
	var sb strings.Builder
	for _, r := range odds.Rarities {
		fmt.Fprintf(&sb, "%s **%s** · %d cards · weight %d · %.2f%%\n",
			rarityStars(r.Rarity), r.Name, r.Cards, r.Weight, r.Probability*100)
	}
	return sb.String()
}

func cardDescription(card catalog.Card, generationSize int, entry *album.Entry) string {
	desc := drawDescription(card, generationSize)
	if entry == nil || !entry.Owned {
		return desc + "\nNot in your album yet."
	}
	return fmt.Sprintf("%s\nOwned %dx since %s.", desc, entry.Count, entry.FirstObtainedDisplay())
}
