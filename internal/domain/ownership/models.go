package ownership

import (
	"strings"
	"time"
)

// Record is one draw event. Rows are only ever appended.
type Record struct {
	Username     string
	CardName     string
	ObtainedDate time.Time
}

// Tally is a user's records for one card, grouped.
type Tally struct {
	CardName      string
	Count         int
	FirstObtained time.Time
}

// NormalizeUsername is the canonical form stored and queried, so "Foo" and "foo" share one album.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Day is t's calendar day in its own location, as midnight UTC.
// DATE columns are written from the UTC instant, so a local midnight would land on the day before.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
