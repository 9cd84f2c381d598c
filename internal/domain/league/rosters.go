package league

var defaultEast = []string{
	"New England Captains", "Atlanta Strikers", "New York Skies", "The Nashville Folk",
	"Miami Savages", "New York Freemen", "Detroit Veterans", "Charlotte Vipers",
	"Chicago Phantoms", "Toronto Speedsters", "Montreal Franks", "Pennsylvania Dutchman",
}

var defaultWest = []string{
	"San Francisco Money", "Salt Lake Spices", "Los Angeles Cheetahs", "California Goblins",
	"Denver Titans", "Oregon Tellers", "Seattle Ringers", "Dallas Hunchbacks",
	"Houston 29ers", "Phoenix Rosebuds", "Omaha Crows", "Minneapolis Hunters",
}

// Default returns the 24-team NHA league with its tier table. The result is a fresh copy.
func Default() League {
	return League{
		East:  append([]string(nil), defaultEast...),
		West:  append([]string(nil), defaultWest...),
		Tiers: DefaultTierTable(),
	}
}
