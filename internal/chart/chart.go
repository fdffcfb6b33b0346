// Package chart renders the analysis figures as PNG files using go-chart.
// Matplotlib-style subplot grids are not available, so each figure is
// written as its own file under the output directory.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"passrush/internal/sim"
	"passrush/internal/stats"
)

// renderer is satisfied by both chart.Chart and chart.BarChart.
type renderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// League palette used across every figure.
var (
	navy = drawing.ColorFromHex("013369")
	red  = drawing.ColorFromHex("D50A0A")
)

func barStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col.WithAlpha(180),
		StrokeColor: col,
		StrokeWidth: 1,
	}
}

// RenderAll writes every figure into dir with the given filename prefix and
// returns the written paths.
func RenderAll(dir, prefix string, plays []sim.Play) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}

	figures := []struct {
		name   string
		render func(plays []sim.Play) (renderer, error)
	}{
		{"completion_by_pressure", completionByPressure},
		{"yards_by_pressure", yardsByPressure},
		{"time_to_throw_dist", throwDistribution},
		{"completion_by_release", completionByRelease},
		{"alignment_success", alignmentSuccess},
		{"pressure_timing", timingSuccess},
	}

	var paths []string
	for _, fig := range figures {
		ch, err := fig.render(plays)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", fig.name, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, fig.name))
		if err := writePNG(path, ch); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, ch renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

func completionByPressure(plays []sim.Play) (renderer, error) {
	split := stats.PressureImpact(plays)
	return &chart.BarChart{
		Title:    "Completion Rate: Pressure vs No Pressure",
		Width:    640,
		Height:   480,
		BarWidth: 120,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: chart.PercentValueFormatter,
		},
		Bars: []chart.Value{
			{Label: "No Pressure", Value: split[0].CompletionRate, Style: barStyle(navy)},
			{Label: "Pressure", Value: split[1].CompletionRate, Style: barStyle(red)},
		},
	}, nil
}

func yardsByPressure(plays []sim.Play) (renderer, error) {
	split := stats.PressureImpact(plays)
	return &chart.BarChart{
		Title:    "Yards per Attempt: Pressure vs No Pressure",
		Width:    640,
		Height:   480,
		BarWidth: 120,
		Bars: []chart.Value{
			{Label: "No Pressure", Value: split[0].YardsPerAtt, Style: barStyle(navy)},
			{Label: "Pressure", Value: split[1].YardsPerAtt, Style: barStyle(red)},
		},
	}, nil
}

// throwDistribution draws binned release-time frequencies for both pressure
// groups as step-like series, with the league-average 2.5s reference line.
func throwDistribution(plays []sim.Play) (renderer, error) {
	const bins = 20
	const maxTime = 10.0
	width := maxTime / bins

	var counts [2][bins]float64
	for _, p := range plays {
		bin := int(p.TimeToThrow / width)
		if bin < 0 || bin >= bins {
			continue
		}
		if p.Pressure {
			counts[1][bin]++
		} else {
			counts[0][bin]++
		}
	}

	xs := make([]float64, bins)
	maxCount := 0.0
	for i := 0; i < bins; i++ {
		xs[i] = width * (float64(i) + 0.5)
		for g := 0; g < 2; g++ {
			if counts[g][i] > maxCount {
				maxCount = counts[g][i]
			}
		}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "No Pressure",
			XValues: xs,
			YValues: counts[0][:],
			Style:   chart.Style{StrokeColor: navy, StrokeWidth: 2, FillColor: navy.WithAlpha(60)},
		},
		chart.ContinuousSeries{
			Name:    "Pressure",
			XValues: xs,
			YValues: counts[1][:],
			Style:   chart.Style{StrokeColor: red, StrokeWidth: 2, FillColor: red.WithAlpha(60)},
		},
		chart.ContinuousSeries{
			Name:    "NFL Avg (2.5s)",
			XValues: []float64{2.5, 2.5},
			YValues: []float64{0, maxCount},
			Style:   chart.Style{StrokeColor: red, StrokeWidth: 2, StrokeDashArray: []float64{5, 5}},
		},
	}

	ch := &chart.Chart{
		Title:  "Time to Throw Distribution",
		Width:  800,
		Height: 480,
		XAxis:  chart.XAxis{Name: "Time to Throw (seconds)"},
		YAxis:  chart.YAxis{Name: "Frequency"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch, nil
}

// completionByRelease interleaves the no-pressure and pressure cells of
// each release window.
func completionByRelease(plays []sim.Play) (renderer, error) {
	rows := stats.ReleaseSummary(plays)
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		style, label := barStyle(navy), row.Bucket
		if row.Pressure {
			style, label = barStyle(red), ""
		}
		bars = append(bars, chart.Value{Label: label, Value: row.CompletionRate, Style: style})
	}
	return &chart.BarChart{
		Title:    "Completion Rate by Release Time (navy: clean, red: pressured)",
		Width:    900,
		Height:   480,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: chart.PercentValueFormatter,
		},
		Bars: bars,
	}, nil
}

func alignmentSuccess(plays []sim.Play) (renderer, error) {
	rows := stats.AlignmentEffectiveness(plays)
	type entry struct {
		label string
		rate  float64
	}
	entries := make([]entry, 0, len(rows))
	for _, row := range rows {
		// Sacks always count as incompletions, so the incompletion rate is
		// the sack-or-incompletion success rate.
		entries = append(entries, entry{string(row.Alignment), row.IncompletionRate})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].rate < entries[j].rate })

	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, chart.Value{Label: e.label, Value: e.rate, Style: barStyle(navy)})
	}
	return &chart.BarChart{
		Title:    "Defensive Alignment Success Rate",
		Width:    800,
		Height:   480,
		BarWidth: 90,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: chart.PercentValueFormatter,
		},
		Bars: bars,
	}, nil
}

func timingSuccess(plays []sim.Play) (renderer, error) {
	rows := stats.PressureTiming(plays)
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{Label: row.Bucket, Value: row.SuccessRate, Style: barStyle(red)})
	}
	return &chart.BarChart{
		Title:    "Optimal Pressure Timing",
		Width:    800,
		Height:   480,
		BarWidth: 90,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: chart.PercentValueFormatter,
		},
		Bars: bars,
	}, nil
}
