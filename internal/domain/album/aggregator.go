package album

import (
	"context"
	"log/slog"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/ownership"
)

// Source reads a user's draws grouped by card. Usernames are passed already normalized.
type Source interface {
	TalliesByUsername(ctx context.Context, username string) ([]ownership.Tally, error)
}

type Service interface {
	Build(ctx context.Context, username string) ([]Entry, error)
	BuildAlbum(ctx context.Context, username string) (Album, error)
}

type Aggregator struct {
	catalog *catalog.Catalog
	source  Source
}

func NewAggregator(cat *catalog.Catalog, source Source) *Aggregator {
	return &Aggregator{
		catalog: cat,
		source:  source,
	}
}

// Build returns one entry per catalog card, in catalog order.
func (a *Aggregator) Build(ctx context.Context, username string) ([]Entry, error) {
	name := ownership.NormalizeUsername(username)
	if name == "" {
		return nil, &domain.ValidationError{Field: "username", Err: domain.ErrMissingUsername}
	}

	tallies, err := a.source.TalliesByUsername(ctx, name)
	if err != nil {
		if !domain.IsPersistence(err) {
			err = &domain.PersistenceError{Op: "load album", Username: name, Err: err}
		}
		slog.Error("Failed to load album",
			slog.String("type", "db"),
			slog.String("operation", "album"),
			slog.String("username", name),
			slog.Any("error", err),
		)
		return nil, err
	}

	owned := make(map[string]ownership.Tally, len(tallies))
	for _, t := range tallies {
		// The store groups by card, but legacy rows may still differ only by username case.
		if prev, ok := owned[t.CardName]; ok {
			t.Count += prev.Count
			if prev.FirstObtained.Before(t.FirstObtained) {
				t.FirstObtained = prev.FirstObtained
			}
		}
		owned[t.CardName] = t
	}

	cards := a.catalog.AllCards()
	entries := make([]Entry, len(cards))
	for i, card := range cards {
		entry := Entry{
			CardName:     card.Name,
			Rarity:       card.Rarity,
			DisplayIndex: i,
			Generation:   card.Generation,
			Position:     card.Position,
			Number:       card.Number,
		}
		if t, ok := owned[card.Name]; ok {
			first := t.FirstObtained
			entry.Owned = true
			entry.Count = t.Count
			entry.FirstObtained = &first
		}
		entry.ImageKey = card.ImageKey(entry.Owned)
		entries[i] = entry
	}

	return entries, nil
}

// BuildAlbum groups Build's entries into one page per generation.
func (a *Aggregator) BuildAlbum(ctx context.Context, username string) (Album, error) {
	entries, err := a.Build(ctx, username)
	if err != nil {
		return Album{}, err
	}

	album := Album{
		Username: ownership.NormalizeUsername(username),
		Total:    len(entries),
	}
	for _, gen := range a.catalog.Generations() {
		page := Page{Generation: gen.Number, Entries: make([]Entry, 0, len(gen.Cards))}
		for _, e := range entries {
			if e.Generation != gen.Number {
				continue
			}
			page.Entries = append(page.Entries, e)
			if e.Owned {
				page.Owned++
			}
		}
		album.Owned += page.Owned
		album.Pages = append(album.Pages, page)
	}

	return album, nil
}
