package models

import (
	"time"

	"github.com/uptrace/bun"
)

// OwnershipRecord is one row per draw. Rows are never updated or deleted.
type OwnershipRecord struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,notnull"`
	CardName     string    `bun:"card_name,notnull"`
	ObtainedDate time.Time `bun:"obtained_date,notnull,type:date"`
}

// CardTally is the grouped read shape of user_cards.
type CardTally struct {
	CardName      string    `bun:"card_name"`
	Count         int       `bun:"count"`
	FirstObtained time.Time `bun:"first_obtained"`
}
