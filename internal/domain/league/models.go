package league

// Conference identifies which side of the bracket a team plays on.
type Conference string

const (
	East Conference = "East"
	West Conference = "West"
)

// Tier is the static strength classification of a team (A strongest, D weakest).
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// DefaultTier is assigned to teams missing from every tier list.
const DefaultTier = TierC

// Strength returns the weight used for win probabilities.
func (t Tier) Strength() int {
	switch t {
	case TierA:
		return 4
	case TierB:
		return 3
	case TierD:
		return 1
	default:
		return 2
	}
}

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierA, TierB, TierC, TierD:
		return true
	}
	return false
}

// Team is a classified league member.
type Team struct {
	Name       string     `json:"name"`
	Conference Conference `json:"conference"`
	Tier       Tier       `json:"tier"`
}

// TierTable lists team names per tier.
type TierTable map[Tier][]string

// League declares both conference rosters explicitly. Roster order carries no meaning
// beyond display; conference membership comes from the list a team appears in.
type League struct {
	East  []string  `json:"east" yaml:"east"`
	West  []string  `json:"west" yaml:"west"`
	Tiers TierTable `json:"tiers,omitempty" yaml:"tiers,omitempty"`
}

// Size returns the total number of teams across both conferences.
func (l League) Size() int {
	return len(l.East) + len(l.West)
}

// Roster returns the teams of one conference.
func (l League) Roster(conf Conference) []string {
	switch conf {
	case East:
		return l.East
	case West:
		return l.West
	default:
		return nil
	}
}

// Names returns every team, East first, in roster order.
func (l League) Names() []string {
	names := make([]string, 0, l.Size())
	names = append(names, l.East...)
	return append(names, l.West...)
}

// ConferenceOf reports the conference a team was declared in.
func (l League) ConferenceOf(name string) (Conference, bool) {
	for _, n := range l.East {
		if n == name {
			return East, true
		}
	}
	for _, n := range l.West {
		if n == name {
			return West, true
		}
	}
	return "", false
}

// Classifier returns a classifier for the league's own tier table, or the default NHA
// table when the league does not carry one.
func (l League) Classifier() *Classifier {
	if len(l.Tiers) == 0 {
		return DefaultClassifier()
	}
	return NewClassifier(l.Tiers)
}

// Teams returns every team with its conference and tier resolved.
func (l League) Teams() []Team {
	c := l.Classifier()
	out := make([]Team, 0, l.Size())
	for _, n := range l.East {
		out = append(out, Team{Name: n, Conference: East, Tier: c.TierOf(n)})
	}
	for _, n := range l.West {
		out = append(out, Team{Name: n, Conference: West, Tier: c.TierOf(n)})
	}
	return out
}
