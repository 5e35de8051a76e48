package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

type Rarity int

const (
	Common Rarity = iota + 1
	Uncommon
	Rare
	Epic
	Legendary
)

// Rarities lists every tier in ascending order.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary}

var rarityNames = map[Rarity]string{
	Common:    "Common",
	Uncommon:  "Uncommon",
	Rare:      "Rare",
	Epic:      "Epic",
	Legendary: "Legendary",
}

// Frame colors used by the album pages.
var rarityColors = map[Rarity]int{
	Common:    0xA0A0A0,
	Uncommon:  0x209020,
	Rare:      0x2050FF,
	Epic:      0xA020F0,
	Legendary: 0xFFA500,
}

func (r Rarity) Valid() bool {
	return r >= Common && r <= Legendary
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

// ParseRarity accepts a tier name in any case or its number.
func ParseRarity(s string) (Rarity, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if r := Rarity(n); r.Valid() {
			return r, nil
		}
		return 0, fmt.Errorf("unknown rarity %q", s)
	}
	for r, name := range rarityNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

func (r Rarity) Color() int {
	return rarityColors[r]
}

// Definition is the static input for one card: what a deploy configures.
type Definition struct {
	Name   string `toml:"name" json:"name"`
	Rarity Rarity `toml:"rarity" json:"rarity"`
}

// Card is a catalog entry with its placement resolved.
type Card struct {
	Name       string `json:"name"`
	Rarity     Rarity `json:"rarity"`
	Generation int    `json:"generation"`
	Position   int    `json:"position"`
	Number     int    `json:"number"`
}

// ImageKey is the artwork file stem, e.g. "07" or "07_blurred" for cards not yet owned.
func (c Card) ImageKey(owned bool) string {
	if owned {
		return fmt.Sprintf("%02d", c.Number)
	}
	return fmt.Sprintf("%02d_blurred", c.Number)
}

type Generation struct {
	Number int    `json:"number"`
	Cards  []Card `json:"cards"`
}
