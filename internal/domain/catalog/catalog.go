package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/sahilm/fuzzy"
)

var ErrCardNotFound = errors.New("card not found")

// Catalog holds the immutable card list. It is safe for concurrent reads.
type Catalog struct {
	generations []Generation
	cards       []Card
	byName      map[string]Card
}

// New resolves positions and numbers for the given generations and indexes cards by name.
func New(generations [][]Definition) (*Catalog, error) {
	c := &Catalog{
		generations: make([]Generation, 0, len(generations)),
		byName:      make(map[string]Card),
	}

	number := 0
	for genIdx, defs := range generations {
		gen := Generation{Number: genIdx + 1, Cards: make([]Card, 0, len(defs))}
		for pos, def := range defs {
			name := strings.TrimSpace(def.Name)
			if name == "" {
				return nil, &domain.ConfigError{Reason: fmt.Sprintf("generation %d card %d has no name", genIdx+1, pos+1)}
			}
			if !def.Rarity.Valid() {
				return nil, &domain.ConfigError{Reason: fmt.Sprintf("card %q has rarity %d outside 1..5", name, def.Rarity)}
			}
			if _, dup := c.byName[name]; dup {
				return nil, &domain.ConfigError{Reason: fmt.Sprintf("card %q is defined twice", name)}
			}

			number++
			card := Card{
				Name:       name,
				Rarity:     def.Rarity,
				Generation: genIdx + 1,
				Position:   pos + 1,
				Number:     number,
			}
			gen.Cards = append(gen.Cards, card)
			c.cards = append(c.cards, card)
			c.byName[name] = card
		}
		c.generations = append(c.generations, gen)
	}

	return c, nil
}

// Generations returns the generations in catalog order.
func (c *Catalog) Generations() []Generation {
	out := make([]Generation, len(c.generations))
	for i, g := range c.generations {
		out[i] = Generation{Number: g.Number, Cards: append([]Card(nil), g.Cards...)}
	}
	return out
}

// AllCards returns every card, generation order first, then position.
func (c *Catalog) AllCards() []Card {
	return append([]Card(nil), c.cards...)
}

func (c *Catalog) Len() int {
	return len(c.cards)
}

func (c *Catalog) Card(name string) (Card, bool) {
	card, ok := c.byName[name]
	return card, ok
}

func (c *Catalog) RarityOf(name string) (Rarity, error) {
	card, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCardNotFound, name)
	}
	return card.Rarity, nil
}

// GenerationSize is the number of cards in the given 1-based generation.
func (c *Catalog) GenerationSize(number int) int {
	if number < 1 || number > len(c.generations) {
		return 0
	}
	return len(c.generations[number-1].Cards)
}

// searchItems implements fuzzy.Source over card names
type searchItems []Card

func (s searchItems) String(i int) string {
	return strings.ToLower(s[i].Name)
}

func (s searchItems) Len() int {
	return len(s)
}

// Search fuzzy-matches card names, best match first. An exact name always wins.
func (c *Catalog) Search(query string, limit int) []Card {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, searchItems(c.cards))

	results := make([]Card, 0, len(matches))
	for _, m := range matches {
		card := c.cards[m.Index]
		if strings.ToLower(card.Name) == query {
			results = append([]Card{card}, results...)
			continue
		}
		results = append(results, card)
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
