package catalog

// DefaultGenerations is the card set shipped with the album: three generations of twelve pigs.
var DefaultGenerations = [][]Definition{
	{
		{Name: "Vampirschwein", Rarity: Common},
		{Name: "Astronautenschwein", Rarity: Common},
		{Name: "Officer Schwein", Rarity: Common},
		{Name: "König Schweinchen", Rarity: Common},
		{Name: "Truckerschwein", Rarity: Common},
		{Name: "Doktor Schwein", Rarity: Common},
		{Name: "Captain Schweinchen", Rarity: Uncommon},
		{Name: "Magierschwein", Rarity: Uncommon},
		{Name: "Boss Schwein", Rarity: Rare},
		{Name: "Feuerwehr Schwein", Rarity: Rare},
		{Name: "Alien Schwein", Rarity: Epic},
		{Name: "Zukunft Schwein", Rarity: Legendary},
	},
	{
		{Name: "Bauer Schweinchen", Rarity: Common},
		{Name: "Spukschweinchen", Rarity: Common},
		{Name: "Pflanzenschwein", Rarity: Common},
		{Name: "Zombieschwein", Rarity: Common},
		{Name: "Sir Schweinchen", Rarity: Common},
		{Name: "Detektiv Schnüffelschwein", Rarity: Common},
		{Name: "Ninja Schwein", Rarity: Uncommon},
		{Name: "Schweinaldo", Rarity: Uncommon},
		{Name: "Agent Oink", Rarity: Rare},
		{Name: "Wrestlingschwein", Rarity: Rare},
		{Name: "Schnorchelschwein", Rarity: Epic},
		{Name: "Streamschwein", Rarity: Legendary},
	},
	{
		{Name: "Sergeant Grunzer", Rarity: Common},
		{Name: "Chefkoch Baconelli", Rarity: Common},
		{Name: "Engelschwein", Rarity: Common},
		{Name: "Teufelsschwein", Rarity: Common},
		{Name: "Gärtnerschwein", Rarity: Common},
		{Name: "Superschwein", Rarity: Common},
		{Name: "Schweinicus Maximus", Rarity: Uncommon},
		{Name: "Drachenschwein", Rarity: Uncommon},
		{Name: "Bacon Rockham", Rarity: Rare},
		{Name: "Oinktron 3000", Rarity: Rare},
		{Name: "Mutantenschwein", Rarity: Epic},
		{Name: "Schweinhorn", Rarity: Legendary},
	},
}

// Default builds the shipped catalog.
func Default() *Catalog {
	c, err := New(DefaultGenerations)
	if err != nil {
		panic("catalog: invalid default generations: " + err.Error())
	}
	return c
}
