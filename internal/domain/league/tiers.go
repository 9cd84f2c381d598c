package league

// Classifier maps team names to tiers. Lookups are exact-name and never fail.
type Classifier struct {
	tiers map[string]Tier
}

var defaultTiers = TierTable{
	TierA: {"New York Skies", "New England Captains", "Salt Lake Spices", "Los Angeles Cheetahs"},
	TierB: {"Toronto Speedsters", "Detroit Veterans", "The Nashville Folk", "Miami Savages",
		"Dallas Hunchbacks", "San Francisco Money", "California Goblins", "Houston 29ers"},
	TierC: {"Charlotte Vipers", "Chicago Phantoms", "Oregon Tellers", "Denver Titans", "New York Freemen",
		"Seattle Ringers", "Atlanta Strikers", "Minneapolis Hunters"},
	TierD: {"Montreal Franks", "Pennsylvania Dutchman", "Phoenix Rosebuds", "Omaha Crows"},
}

var defaultClassifier = NewClassifier(defaultTiers)

// NewClassifier indexes a tier table. Entries under unknown tiers are ignored; a name
// listed under several tiers keeps the strongest one.
func NewClassifier(table TierTable) *Classifier {
	c := &Classifier{tiers: make(map[string]Tier)}
	for _, tier := range []Tier{TierD, TierC, TierB, TierA} {
		for _, name := range table[tier] {
			c.tiers[name] = tier
		}
	}
	return c
}

// DefaultClassifier returns the classifier for the NHA tier rosters.
func DefaultClassifier() *Classifier {
	return defaultClassifier
}

// DefaultTierTable returns a copy of the NHA tier rosters.
func DefaultTierTable() TierTable {
	out := make(TierTable, len(defaultTiers))
	for tier, names := range defaultTiers {
		out[tier] = append([]string(nil), names...)
	}
	return out
}

// TierOf returns the tier for team, or DefaultTier when it is not listed.
func (c *Classifier) TierOf(team string) Tier {
	if c == nil {
		return defaultClassifier.TierOf(team)
	}
	if tier, ok := c.tiers[team]; ok {
		return tier
	}
	return DefaultTier
}

// Strength is shorthand for TierOf(team).Strength().
func (c *Classifier) Strength(team string) int {
	return c.TierOf(team).Strength()
}
