package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

func TestBuildStandingsOrdering(t *testing.T) {
	records := Records{
		"Denver Titans":    {Team: "Denver Titans", Conference: league.West, Wins: 5, Points: 15},
		"Atlanta Strikers": {Team: "Atlanta Strikers", Conference: league.East, Wins: 5, Points: 15},
		"Omaha Crows":      {Team: "Omaha Crows", Conference: league.West, Wins: 1, Points: 3},
		"New York Skies":   {Team: "New York Skies", Conference: league.East, Wins: 9, Points: 27},
	}

	got := BuildStandings(records)
	var names []string
	for _, r := range got {
		names = append(names, r.Team)
	}
	want := []string{"New York Skies", "Atlanta Strikers", "Denver Titans", "Omaha Crows"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("unexpected standings order (-want +got):\n%s", diff)
	}
}

func TestBuildStandingsIsSortedAfterSimulation(t *testing.T) {
	records, err := NewSeeded(8).SimulateRegularSeason(league.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := BuildStandings(records)
	for i := 0; i+1 < len(s); i++ {
		a, b := s[i], s[i+1]
		if a.Points < b.Points {
			t.Fatalf("row %d (%d pts) ranked above row %d (%d pts)", i, a.Points, i+1, b.Points)
		}
		if a.Points == b.Points && a.Team >= b.Team {
			t.Fatalf("tie at %d pts not broken by name: %q before %q", a.Points, a.Team, b.Team)
		}
	}
}

func TestBuildStandingsDoesNotMutateInput(t *testing.T) {
	records := Records{
		"A": {Team: "A", Conference: league.East, Wins: 1, Losses: 1, Points: 3},
		"B": {Team: "B", Conference: league.West, Wins: 2, Points: 6},
	}
	before := make(Records, len(records))
	for k, v := range records {
		before[k] = v
	}

	s := BuildStandings(records)
	s[0].Points = 999

	if diff := cmp.Diff(before, records); diff != "" {
		t.Fatalf("input records changed (-before +after):\n%s", diff)
	}
}

func TestStandingsConferenceAndSeeds(t *testing.T) {
	s := Standings{
		{Team: "E1", Conference: league.East, Points: 9},
		{Team: "W1", Conference: league.West, Points: 8},
		{Team: "E2", Conference: league.East, Points: 7},
		{Team: "W2", Conference: league.West, Points: 6},
	}
	if diff := cmp.Diff([]string{"E1", "E2"}, s.Seeds(league.East, 2)); diff != "" {
		t.Fatalf("east seeds (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"W1", "W2"}, s.Seeds(league.West, 8)); diff != "" {
		t.Fatalf("short conference should return all teams (-want +got):\n%s", diff)
	}
	if row, ok := s.Find(" w2 "); !ok || row.Team != "W2" {
		t.Fatalf("expected loose Find to locate W2, got %+v %v", row, ok)
	}
}
