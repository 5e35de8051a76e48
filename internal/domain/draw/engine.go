package draw

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/ownership"
)

// Recorder persists draw events.
type Recorder interface {
	Record(ctx context.Context, rec ownership.Record) error
}

type Service interface {
	Draw(ctx context.Context, username string) (catalog.Card, error)
	Odds() Odds
}

type poolEntry struct {
	card       catalog.Card
	weight     int
	cumulative int
}

type Engine struct {
	pool     []poolEntry
	total    int
	weights  Weights
	recorder Recorder
	rng      RNG
	now      func() time.Time
}

type Option func(*Engine)

func WithRNG(rng RNG) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithClock sets the time source; the obtained date is the day of the returned time in its location.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine builds the weighted pool once. It fails with a ConfigError when the pool is
// empty or a card's rarity has no weight. A nil recorder is allowed for engines that only
// report Odds; Draw on such an engine fails with a ConfigError.
func NewEngine(cat *catalog.Catalog, weights Weights, recorder Recorder, opts ...Option) (*Engine, error) {
	if err := weights.Validate(cat); err != nil {
		return nil, err
	}

	cards := cat.AllCards()
	if len(cards) == 0 {
		return nil, &domain.ConfigError{Reason: "no card to draw", Err: domain.ErrEmptyPool}
	}

	e := &Engine{
		pool:     make([]poolEntry, 0, len(cards)),
		weights:  weights,
		recorder: recorder,
		rng:      DefaultRNG(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, card := range cards {
		w := weights[card.Rarity]
		e.total += w
		e.pool = append(e.pool, poolEntry{card: card, weight: w, cumulative: e.total})
	}

	return e, nil
}

func (e *Engine) TotalWeight() int {
	return e.total
}

// Pick selects the first card in catalog order whose cumulative weight exceeds threshold.
func (e *Engine) Pick(threshold int) (catalog.Card, error) {
	if threshold < 0 || threshold >= e.total {
		return catalog.Card{}, fmt.Errorf("threshold %d outside [0,%d)", threshold, e.total)
	}
	i := sort.Search(len(e.pool), func(i int) bool {
		return e.pool[i].cumulative > threshold
	})
	return e.pool[i].card, nil
}

// Draw selects a weighted random card and appends one ownership record for the user.
// No card is returned unless the record was stored.
func (e *Engine) Draw(ctx context.Context, username string) (catalog.Card, error) {
	name := ownership.NormalizeUsername(username)
	if name == "" {
		return catalog.Card{}, &domain.ValidationError{Field: "username", Err: domain.ErrMissingUsername}
	}

	if e.recorder == nil {
		return catalog.Card{}, &domain.ConfigError{Reason: "engine has no recorder"}
	}

	card, err := e.Pick(e.rng.Intn(e.total))
	if err != nil {
		return catalog.Card{}, err
	}

	rec := ownership.Record{
		Username:     name,
		CardName:     card.Name,
		ObtainedDate: ownership.Day(e.now()),
	}
	if err := e.recorder.Record(ctx, rec); err != nil {
		if !domain.IsPersistence(err) {
			err = &domain.PersistenceError{Op: "record draw", Username: name, Err: err}
		}
		slog.Error("Failed to record draw",
			slog.String("type", "draw"),
			slog.String("operation", "draw"),
			slog.String("username", name),
			slog.String("card", card.Name),
			slog.Any("error", err),
		)
		return catalog.Card{}, err
	}

	slog.Info("Card drawn",
		slog.String("type", "draw"),
		slog.String("username", name),
		slog.String("card", card.Name),
		slog.String("rarity", card.Rarity.String()),
	)
	return card, nil
}
