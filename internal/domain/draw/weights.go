package draw

import (
	"fmt"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
)

// Weights maps a rarity tier to the relative weight of each card of that tier.
type Weights map[catalog.Rarity]int

func DefaultWeights() Weights {
	return Weights{
		catalog.Common:    40,
		catalog.Uncommon:  30,
		catalog.Rare:      15,
		catalog.Epic:      10,
		catalog.Legendary: 5,
	}
}

// Validate fails closed: every rarity used by the catalog needs a positive weight.
func (w Weights) Validate(cat *catalog.Catalog) error {
	for rarity, weight := range w {
		if weight <= 0 {
			return &domain.ConfigError{Reason: fmt.Sprintf("rarity %s has non-positive weight %d", rarity, weight)}
		}
	}
	for _, card := range cat.AllCards() {
		if _, ok := w[card.Rarity]; !ok {
			return &domain.ConfigError{
				Reason: fmt.Sprintf("card %q uses rarity %s", card.Name, card.Rarity),
				Err:    domain.ErrUnmappedRarity,
			}
		}
	}
	return nil
}
