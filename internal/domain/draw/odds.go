package draw

import "github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"

type RarityOdds struct {
	Rarity      catalog.Rarity `json:"rarity"`
	Name        string         `json:"name"`
	Weight      int            `json:"weight"`
	Cards       int            `json:"cards"`
	Probability float64        `json:"probability"`
}

type CardOdds struct {
	Card        catalog.Card `json:"card"`
	Weight      int          `json:"weight"`
	Probability float64      `json:"probability"`
}

type Odds struct {
	TotalWeight int          `json:"total_weight"`
	Rarities    []RarityOdds `json:"rarities"`
	Cards       []CardOdds   `json:"cards"`
}

// Odds reports the exact draw probability of each card and of each rarity tier.
// A tier's probability is the summed weight of its cards over the total weight.
func (e *Engine) Odds() Odds {
	odds := Odds{
		TotalWeight: e.total,
		Cards:       make([]CardOdds, 0, len(e.pool)),
	}

	tierWeight := make(map[catalog.Rarity]int)
	tierCards := make(map[catalog.Rarity]int)
	for _, entry := range e.pool {
		odds.Cards = append(odds.Cards, CardOdds{
			Card:        entry.card,
			Weight:      entry.weight,
			Probability: float64(entry.weight) / float64(e.total),
		})
		tierWeight[entry.card.Rarity] += entry.weight
		tierCards[entry.card.Rarity]++
	}

	for _, rarity := range catalog.Rarities {
		if tierCards[rarity] == 0 {
			continue
		}
		odds.Rarities = append(odds.Rarities, RarityOdds{
			Rarity:      rarity,
			Name:        rarity.String(),
			Weight:      e.weights[rarity],
			Cards:       tierCards[rarity],
			Probability: float64(tierWeight[rarity]) / float64(e.total),
		})
	}

	return odds
}
