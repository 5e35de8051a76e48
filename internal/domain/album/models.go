package album

import (
	"time"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
)

// DisplayDateLayout is the day/month/year pattern the album pages show.
const DisplayDateLayout = "02.01.2006"

// Entry is the view-time state of one catalog card for one user.
type Entry struct {
	CardName      string         `json:"card_name"`
	Rarity        catalog.Rarity `json:"rarity"`
	Owned         bool           `json:"owned"`
	Count         int            `json:"count"`
	FirstObtained *time.Time     `json:"first_obtained,omitempty"`
	DisplayIndex  int            `json:"display_index"`
	Generation    int            `json:"generation"`
	Position      int            `json:"position"`
	Number        int            `json:"number"`
	ImageKey      string         `json:"image_key"`
}

func (e Entry) FirstObtainedDisplay() string {
	if e.FirstObtained == nil {
		return ""
	}
	return e.FirstObtained.Format(DisplayDateLayout)
}

type Page struct {
	Generation int     `json:"generation"`
	Entries    []Entry `json:"entries"`
	Owned      int     `json:"owned"`
}

type Album struct {
	Username string `json:"username"`
	Pages    []Page `json:"pages"`
	Owned    int    `json:"owned"`
	Total    int    `json:"total"`
}
