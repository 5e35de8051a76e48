package repositories

import (
	"context"
	"time"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/ownership"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

const defaultTimeout = 10 * time.Second

type OwnershipRepository interface {
	Record(ctx context.Context, rec ownership.Record) error
	TalliesByUsername(ctx context.Context, username string) ([]ownership.Tally, error)
}

type ownershipRepository struct {
	db *bun.DB
}

func NewOwnershipRepository(db *bun.DB) OwnershipRepository {
	return &ownershipRepository{db: db}
}

func (r *ownershipRepository) Record(ctx context.Context, rec ownership.Record) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := &models.OwnershipRecord{
		Username:     rec.Username,
		CardName:     rec.CardName,
		ObtainedDate: rec.ObtainedDate,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return &domain.PersistenceError{Op: "insert user card", Username: rec.Username, Err: err}
	}
	return nil
}

// TalliesByUsername matches case-insensitively so rows written before normalization still count.
func (r *ownershipRepository) TalliesByUsername(ctx context.Context, username string) ([]ownership.Tally, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []models.CardTally
	err := r.db.NewSelect().
		Model((*models.OwnershipRecord)(nil)).
		ColumnExpr("card_name").
		ColumnExpr("COUNT(*) AS count").
		ColumnExpr("MIN(obtained_date) AS first_obtained").
		Where("LOWER(username) = LOWER(?)", username).
		Group("card_name").
		Order("card_name").
		Scan(ctx, &rows)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "select user cards", Username: username, Err: err}
	}

	tallies := make([]ownership.Tally, len(rows))
	for i, row := range rows {
		tallies[i] = ownership.Tally{
			CardName:      row.CardName,
			Count:         row.Count,
			FirstObtained: row.FirstObtained,
		}
	}
	return tallies, nil
}
