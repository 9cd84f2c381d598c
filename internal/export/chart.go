package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

// ErrNoStandings is returned when there is nothing to chart.
var ErrNoStandings = errors.New("no standings to chart")

const (
	barWidth   = 24
	barSpacing = 10
	minWidth   = 800
)

var (
	eastColor = drawing.ColorFromHex("1f77b4")
	westColor = drawing.ColorFromHex("d62728")
)

// WriteStandingsPNG renders a bar chart of points in standings order.
func WriteStandingsPNG(w io.Writer, standings sim.Standings, title string) error {
	if len(standings) == 0 {
		return ErrNoStandings
	}

	maxPoints := 0
	bars := make([]chart.Value, len(standings))
	for i, r := range standings {
		color := eastColor
		if r.Conference == league.West {
			color = westColor
		}
		bars[i] = chart.Value{
			Label: r.Team,
			Value: float64(r.Points),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
		maxPoints = max(maxPoints, r.Points)
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      max(minWidth, 120+len(bars)*(barWidth+barSpacing)),
		Height:     560,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 160},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 90,
			FontSize:            8,
		},
		YAxis: chart.YAxis{
			Name: "Points",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(max(maxPoints, 1)) * 1.1,
			},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
