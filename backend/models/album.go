package models

import (
	"fmt"

	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
)

// EntryView is an album entry with everything a page needs to draw it.
type EntryView struct {
	album.Entry
	RarityName           string `json:"rarity_name"`
	Color                string `json:"color"`
	ImageURL             string `json:"image_url"`
	FirstObtainedDisplay string `json:"first_obtained_display,omitempty"`
	DisplayText          string `json:"display_text"`
}

type PageView struct {
	Generation int         `json:"generation"`
	Owned      int         `json:"owned"`
	Size       int         `json:"size"`
	Entries    []EntryView `json:"entries"`
}

type AlbumView struct {
	Username string     `json:"username"`
	Owned    int        `json:"owned"`
	Total    int        `json:"total"`
	Pages    []PageView `json:"pages"`
}

// DisplayText is the caption under a card: "3x Vampirschwein 1/12", or "??? 1/12" while missing.
func DisplayText(e album.Entry, generationSize int) string {
	if !e.Owned {
		return fmt.Sprintf("??? %d/%d", e.Position, generationSize)
	}
	return fmt.Sprintf("%dx %s %d/%d", e.Count, e.CardName, e.Position, generationSize)
}

func ColorHex(color int) string {
	return fmt.Sprintf("#%06X", color)
}

// NewAlbumView decorates an album; imageURL maps an entry's image key to a URL.
func NewAlbumView(a album.Album, imageURL func(key string) string) AlbumView {
	view := AlbumView{
		Username: a.Username,
		Owned:    a.Owned,
		Total:    a.Total,
		Pages:    make([]PageView, len(a.Pages)),
	}
	for i, page := range a.Pages {
		pv := PageView{
			Generation: page.Generation,
			Owned:      page.Owned,
			Size:       len(page.Entries),
			Entries:    make([]EntryView, len(page.Entries)),
		}
		for j, e := range page.Entries {
			pv.Entries[j] = EntryView{
				Entry:                e,
				RarityName:           e.Rarity.String(),
				Color:                ColorHex(e.Rarity.Color()),
				ImageURL:             imageURL(e.ImageKey),
				FirstObtainedDisplay: e.FirstObtainedDisplay(),
				DisplayText:          DisplayText(e, pv.Size),
			}
		}
		view.Pages[i] = pv
	}
	return view
}
