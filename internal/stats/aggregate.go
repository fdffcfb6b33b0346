// Package stats computes the descriptive summaries behind the pressure
// report: pressure splits, release-time buckets, alignment effectiveness,
// and pressure-timing buckets.
package stats

import (
	"sort"

	"passrush/internal/sim"
)

// PressureSplit summarizes outcomes for one side of the pressure split.
type PressureSplit struct {
	Pressure       bool
	CompletionRate float64
	YardsPerAtt    float64
	SackRate       float64
	IntRate        float64
	Plays          int
}

// Bucket is one interval of a bucketed summary, labeled for display.
type Bucket struct {
	Label string
	Lo    float64 // exclusive
	Hi    float64 // inclusive
}

// Contains reports whether v falls in the half-open interval (Lo, Hi].
func (b Bucket) Contains(v float64) bool {
	return v > b.Lo && v <= b.Hi
}

// ReleaseBucketDefs groups time-to-throw into the four standard windows.
var ReleaseBucketDefs = []Bucket{
	{Label: "Quick (<2.0s)", Lo: 0, Hi: 2.0},
	{Label: "Normal (2.0-2.5s)", Lo: 2.0, Hi: 2.5},
	{Label: "Extended (2.5-3.0s)", Lo: 2.5, Hi: 3.0},
	{Label: "Very Long (>3.0s)", Lo: 3.0, Hi: 10.0},
}

// PressureTimingBucketDefs groups time-to-pressure into the four windows
// used for rush-timing analysis.
var PressureTimingBucketDefs = []Bucket{
	{Label: "Immediate (<1.5s)", Lo: 0, Hi: 1.5},
	{Label: "Quick (1.5-2.5s)", Lo: 1.5, Hi: 2.5},
	{Label: "Delayed (2.5-3.5s)", Lo: 2.5, Hi: 3.5},
	{Label: "Late (>3.5s)", Lo: 3.5, Hi: 10.0},
}

// PressureImpact returns the no-pressure and pressure splits, in that order.
func PressureImpact(plays []sim.Play) [2]PressureSplit {
	var out [2]PressureSplit
	out[0].Pressure = false
	out[1].Pressure = true
	var comp, yards, sacks, ints [2]float64
	for _, p := range plays {
		i := 0
		if p.Pressure {
			i = 1
		}
		out[i].Plays++
		if p.Complete {
			comp[i]++
		}
		yards[i] += p.YardsGained
		if p.Sack {
			sacks[i]++
		}
		if p.Interception {
			ints[i]++
		}
	}
	for i := range out {
		n := float64(out[i].Plays)
		if n == 0 {
			continue
		}
		out[i].CompletionRate = comp[i] / n
		out[i].YardsPerAtt = yards[i] / n
		out[i].SackRate = sacks[i] / n
		out[i].IntRate = ints[i] / n
	}
	return out
}

// ReleaseRow is one (release bucket, pressure) cell of the release summary.
type ReleaseRow struct {
	Bucket         string
	Pressure       bool
	CompletionRate float64
	YardsPerAtt    float64
	Plays          int
}

// ReleaseSummary groups plays by release window and pressure. Rows come out
// in bucket order with the no-pressure cell before the pressure cell; empty
// cells are kept with zero counts. Plays outside every bucket are dropped.
func ReleaseSummary(plays []sim.Play) []ReleaseRow {
	type acc struct {
		comp, yards float64
		n           int
	}
	cells := make([]acc, len(ReleaseBucketDefs)*2)
	for _, p := range plays {
		for bi, b := range ReleaseBucketDefs {
			if !b.Contains(p.TimeToThrow) {
				continue
			}
			i := bi * 2
			if p.Pressure {
				i++
			}
			cells[i].n++
			if p.Complete {
				cells[i].comp++
			}
			cells[i].yards += p.YardsGained
			break
		}
	}

	rows := make([]ReleaseRow, 0, len(cells))
	for bi, b := range ReleaseBucketDefs {
		for _, pressure := range []bool{false, true} {
			i := bi * 2
			if pressure {
				i++
			}
			row := ReleaseRow{Bucket: b.Label, Pressure: pressure, Plays: cells[i].n}
			if cells[i].n > 0 {
				row.CompletionRate = cells[i].comp / float64(cells[i].n)
				row.YardsPerAtt = cells[i].yards / float64(cells[i].n)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// AlignmentRow summarizes pressure plays for one defensive alignment.
type AlignmentRow struct {
	Alignment        sim.Alignment
	SackRate         float64
	IncompletionRate float64
	IntRate          float64
	PressurePlays    int
}

// AlignmentEffectiveness ranks alignments by sack rate on plays where the
// pressure connected. Alignments with no pressure plays are omitted.
func AlignmentEffectiveness(plays []sim.Play) []AlignmentRow {
	type acc struct {
		sacks, incomp, ints float64
		n                   int
	}
	byAlign := map[sim.Alignment]*acc{}
	for _, p := range plays {
		if !p.Pressure {
			continue
		}
		a := byAlign[p.Alignment]
		if a == nil {
			a = &acc{}
			byAlign[p.Alignment] = a
		}
		a.n++
		if p.Sack {
			a.sacks++
		}
		if !p.Complete {
			a.incomp++
		}
		if p.Interception {
			a.ints++
		}
	}

	rows := make([]AlignmentRow, 0, len(byAlign))
	for _, align := range sim.Alignments {
		a, ok := byAlign[align]
		if !ok {
			continue
		}
		n := float64(a.n)
		rows = append(rows, AlignmentRow{
			Alignment:        align,
			SackRate:         a.sacks / n,
			IncompletionRate: a.incomp / n,
			IntRate:          a.ints / n,
			PressurePlays:    a.n,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SackRate > rows[j].SackRate })
	return rows
}

// TimingRow summarizes pressure plays for one rush-timing window.
type TimingRow struct {
	Bucket      string
	SuccessRate float64 // incompletion, sack, or interception
	SackRate    float64
	AvgYards    float64 // yards allowed per pressure play
	Pressures   int
}

// PressureTiming groups pressure plays by how fast the rush arrived.
func PressureTiming(plays []sim.Play) []TimingRow {
	type acc struct {
		success, sacks, yards float64
		n                     int
	}
	cells := make([]acc, len(PressureTimingBucketDefs))
	for _, p := range plays {
		if !p.Pressure {
			continue
		}
		for bi, b := range PressureTimingBucketDefs {
			if !b.Contains(p.TimeToPressure) {
				continue
			}
			cells[bi].n++
			if p.PressureSuccess() {
				cells[bi].success++
			}
			if p.Sack {
				cells[bi].sacks++
			}
			cells[bi].yards += p.YardsGained
			break
		}
	}

	rows := make([]TimingRow, 0, len(cells))
	for bi, b := range PressureTimingBucketDefs {
		row := TimingRow{Bucket: b.Label, Pressures: cells[bi].n}
		if cells[bi].n > 0 {
			n := float64(cells[bi].n)
			row.SuccessRate = cells[bi].success / n
			row.SackRate = cells[bi].sacks / n
			row.AvgYards = cells[bi].yards / n
		}
		rows = append(rows, row)
	}
	return rows
}

// CompletionSamples splits completion indicators by pressure for the
// significance test: index 0 is no pressure, 1 is pressure.
func CompletionSamples(plays []sim.Play) (noPressure, pressure []float64) {
	for _, p := range plays {
		v := 0.0
		if p.Complete {
			v = 1.0
		}
		if p.Pressure {
			pressure = append(pressure, v)
		} else {
			noPressure = append(noPressure, v)
		}
	}
	return noPressure, pressure
}
