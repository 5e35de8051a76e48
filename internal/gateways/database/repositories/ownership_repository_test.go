package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/ownership"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	// One connection keeps the in-memory database alive for the whole test.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	_, err = db.NewCreateTable().
		Model((*models.OwnershipRecord)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		t.Fatalf("create table error = %v", err)
	}
	return db
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func Test_OwnershipRepository_TalliesByUsername(t *testing.T) {
	tests := []struct {
		name     string
		records  []ownership.Record
		username string
		want     map[string]ownership.Tally
	}{
		{
			name:     "unknown user has no tallies",
			records:  []ownership.Record{{Username: "alice", CardName: "Bananenschwein", ObtainedDate: day(1)}},
			username: "bob",
			want:     map[string]ownership.Tally{},
		},
		{
			name: "draws are grouped per card with the earliest date",
			records: []ownership.Record{
				{Username: "bob", CardName: "Vampirschwein", ObtainedDate: day(3)},
				{Username: "bob", CardName: "Vampirschwein", ObtainedDate: day(1)},
				{Username: "bob", CardName: "Vampirschwein", ObtainedDate: day(2)},
				{Username: "bob", CardName: "Zombieschwein", ObtainedDate: day(5)},
				{Username: "carol", CardName: "Vampirschwein", ObtainedDate: day(1)},
			},
			username: "bob",
			want: map[string]ownership.Tally{
				"Vampirschwein": {CardName: "Vampirschwein", Count: 3, FirstObtained: day(1)},
				"Zombieschwein": {CardName: "Zombieschwein", Count: 1, FirstObtained: day(5)},
			},
		},
		{
			name: "legacy mixed-case rows are matched",
			records: []ownership.Record{
				{Username: "Dave", CardName: "Matheschwein", ObtainedDate: day(4)},
				{Username: "dave", CardName: "Matheschwein", ObtainedDate: day(6)},
			},
			username: "dave",
			want: map[string]ownership.Tally{
				"Matheschwein": {CardName: "Matheschwein", Count: 2, FirstObtained: day(4)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewOwnershipRepository(newTestDB(t))
			ctx := context.Background()

			for _, rec := range tt.records {
				if err := repo.Record(ctx, rec); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}

			got, err := repo.TalliesByUsername(ctx, tt.username)
			if err != nil {
				t.Fatalf("TalliesByUsername() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("TalliesByUsername() returned %d tallies, want %d: %+v", len(got), len(tt.want), got)
			}
			for _, tally := range got {
				want, ok := tt.want[tally.CardName]
				if !ok {
					t.Errorf("unexpected tally %+v", tally)
					continue
				}
				if tally.Count != want.Count || !tally.FirstObtained.Equal(want.FirstObtained) {
					t.Errorf("tally %q = %+v, want %+v", tally.CardName, tally, want)
				}
			}
		})
	}
}

func Test_OwnershipRepository_ClosedDB(t *testing.T) {
	db := newTestDB(t)
	repo := NewOwnershipRepository(db)
	db.Close()

	err := repo.Record(context.Background(), ownership.Record{Username: "erin", CardName: "Bananenschwein", ObtainedDate: day(1)})
	if !domain.IsPersistence(err) {
		t.Errorf("Record() error = %v, want PersistenceError", err)
	}

	_, err = repo.TalliesByUsername(context.Background(), "erin")
	if !domain.IsPersistence(err) {
		t.Errorf("TalliesByUsername() error = %v, want PersistenceError", err)
	}
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func Test_OwnershipRepository_DrawDateInLocalZone(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "east of utc after midnight", now: time.Date(2025, 3, 10, 0, 30, 0, 0, time.FixedZone("CET", 3600))},
		{name: "east of utc midday", now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.FixedZone("CET", 3600))},
		{name: "west of utc late evening", now: time.Date(2025, 3, 10, 22, 0, 0, 0, time.FixedZone("PDT", -7*3600))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.Default()
			repo := NewOwnershipRepository(newTestDB(t))
			ctx := context.Background()

			engine, err := draw.NewEngine(cat, draw.DefaultWeights(), repo,
				draw.WithRNG(fixedRNG{val: 0}),
				draw.WithClock(func() time.Time { return tt.now }))
			if err != nil {
				t.Fatalf("NewEngine() error = %v", err)
			}
			card, err := engine.Draw(ctx, "Alice")
			if err != nil {
				t.Fatalf("Draw() error = %v", err)
			}

			entries, err := album.NewAggregator(cat, repo).Build(ctx, "alice")
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			for _, e := range entries {
				if e.CardName != card.Name {
					continue
				}
				if !e.Owned || e.Count != 1 {
					t.Fatalf("entry = %+v, want owned once", e)
				}
				if got := e.FirstObtainedDisplay(); got != "10.03.2025" {
					t.Errorf("FirstObtainedDisplay() = %q, want 10.03.2025", got)
				}
				return
			}
			t.Fatalf("no album entry for %q", card.Name)
		})
	}
}
