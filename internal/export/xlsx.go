// Package export renders standings as spreadsheets and charts.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

// Sheet names in the standings workbook.
const (
	SheetLeague = "League"
	SheetEast   = "East"
	SheetWest   = "West"
)

var standingsHeader = []any{"Rank", "Team", "Conference", "Tier", "W", "L", "Pts", "Seed"}

// WriteStandingsXLSX writes a workbook with the full table on the League sheet and one
// sheet per conference. Seed is blank for teams that missed the playoffs.
func WriteStandingsXLSX(w io.Writer, season sim.Season) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetLeague); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetEast, SheetWest} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	c := season.League.Classifier()
	tables := []struct {
		sheet string
		rows  sim.Standings
	}{
		{SheetLeague, season.Standings},
		{SheetEast, season.Standings.Conference(league.East)},
		{SheetWest, season.Standings.Conference(league.West)},
	}
	for _, tbl := range tables {
		if err := writeTable(f, tbl.sheet, bold, tbl.rows, season, c); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, headerStyle int, rows sim.Standings, season sim.Season, c *league.Classifier) error {
	if err := f.SetSheetRow(sheet, "A1", &standingsHeader); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	for i, r := range rows {
		var seed any = ""
		if n, _ := season.SeedOf(r.Team); n > 0 {
			seed = n
		}
		row := []any{i + 1, r.Team, string(r.Conference), string(c.TierOf(r.Team)), r.Wins, r.Losses, r.Points, seed}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return f.SetColWidth(sheet, "B", "B", 28)
}
