package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passrush/internal/sim"
)

// fixture builds a small deterministic play set with known aggregates.
func fixture() []sim.Play {
	return []sim.Play{
		// clean pocket: 2 of 3 complete, 10 total yards
		{PlayID: 1, TimeToThrow: 1.5, Complete: true, YardsGained: 6, Alignment: sim.AlignNickel},
		{PlayID: 2, TimeToThrow: 2.2, Complete: true, YardsGained: 4, Alignment: sim.Align43},
		{PlayID: 3, TimeToThrow: 2.8, Complete: false, Alignment: sim.AlignDime},
		// pressured: 1 completion, 1 sack, 1 interception, 1 plain incompletion
		{PlayID: 4, TimeToThrow: 1.2, TimeToPressure: 1.0, Pressure: true, Complete: true, YardsGained: 8, Alignment: sim.AlignBlitz},
		{PlayID: 5, TimeToThrow: 3.1, TimeToPressure: 1.2, Pressure: true, Sack: true, YardsGained: -5, Alignment: sim.AlignBlitz},
		{PlayID: 6, TimeToThrow: 2.4, TimeToPressure: 2.0, Pressure: true, Interception: true, Alignment: sim.AlignNickel},
		{PlayID: 7, TimeToThrow: 2.6, TimeToPressure: 3.0, Pressure: true, Alignment: sim.AlignNickel},
	}
}

func TestPressureImpact(t *testing.T) {
	split := PressureImpact(fixture())

	noP, withP := split[0], split[1]
	assert.False(t, noP.Pressure)
	assert.True(t, withP.Pressure)

	assert.Equal(t, 3, noP.Plays)
	assert.InDelta(t, 2.0/3.0, noP.CompletionRate, 1e-9)
	assert.InDelta(t, 10.0/3.0, noP.YardsPerAtt, 1e-9)
	assert.Zero(t, noP.SackRate)
	assert.Zero(t, noP.IntRate)

	assert.Equal(t, 4, withP.Plays)
	assert.InDelta(t, 0.25, withP.CompletionRate, 1e-9)
	assert.InDelta(t, 3.0/4.0, withP.YardsPerAtt, 1e-9)
	assert.InDelta(t, 0.25, withP.SackRate, 1e-9)
	assert.InDelta(t, 0.25, withP.IntRate, 1e-9)
}

func TestPressureImpact_Empty(t *testing.T) {
	split := PressureImpact(nil)
	assert.Zero(t, split[0].Plays)
	assert.Zero(t, split[1].Plays)
	assert.Zero(t, split[0].CompletionRate)
}

func TestReleaseSummary(t *testing.T) {
	rows := ReleaseSummary(fixture())
	require.Len(t, rows, 8) // 4 buckets x 2 pressure states, empty cells kept

	want := []ReleaseRow{
		{Bucket: "Quick (<2.0s)", Pressure: false, CompletionRate: 1, YardsPerAtt: 6, Plays: 1},
		{Bucket: "Quick (<2.0s)", Pressure: true, CompletionRate: 1, YardsPerAtt: 8, Plays: 1},
		{Bucket: "Normal (2.0-2.5s)", Pressure: false, CompletionRate: 1, YardsPerAtt: 4, Plays: 1},
		{Bucket: "Normal (2.0-2.5s)", Pressure: true, CompletionRate: 0, YardsPerAtt: 0, Plays: 1},
		{Bucket: "Extended (2.5-3.0s)", Pressure: false, CompletionRate: 0, YardsPerAtt: 0, Plays: 1},
		{Bucket: "Extended (2.5-3.0s)", Pressure: true, CompletionRate: 0, YardsPerAtt: 0, Plays: 1},
		{Bucket: "Very Long (>3.0s)", Pressure: false, Plays: 0},
		{Bucket: "Very Long (>3.0s)", Pressure: true, CompletionRate: 0, YardsPerAtt: -5, Plays: 1},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("release summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBucket_Contains(t *testing.T) {
	b := Bucket{Lo: 2.0, Hi: 2.5}
	assert.False(t, b.Contains(2.0), "lower edge is exclusive")
	assert.True(t, b.Contains(2.5), "upper edge is inclusive")
	assert.True(t, b.Contains(2.3))
	assert.False(t, b.Contains(2.51))
}

func TestAlignmentEffectiveness(t *testing.T) {
	rows := AlignmentEffectiveness(fixture())
	// Only Blitz and Nickel saw pressure plays.
	require.Len(t, rows, 2)

	// Blitz: 2 plays, 1 sack, 1 incompletion (the sack).
	assert.Equal(t, sim.AlignBlitz, rows[0].Alignment)
	assert.InDelta(t, 0.5, rows[0].SackRate, 1e-9)
	assert.InDelta(t, 0.5, rows[0].IncompletionRate, 1e-9)
	assert.Zero(t, rows[0].IntRate)
	assert.Equal(t, 2, rows[0].PressurePlays)

	// Nickel: 2 plays, no sacks, both incomplete, one interception.
	assert.Equal(t, sim.AlignNickel, rows[1].Alignment)
	assert.Zero(t, rows[1].SackRate)
	assert.InDelta(t, 1.0, rows[1].IncompletionRate, 1e-9)
	assert.InDelta(t, 0.5, rows[1].IntRate, 1e-9)
}

func TestAlignmentEffectiveness_SortedBySackRate(t *testing.T) {
	rows := AlignmentEffectiveness(fixture())
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].SackRate, rows[i].SackRate)
	}
}

func TestPressureTiming(t *testing.T) {
	rows := PressureTiming(fixture())
	require.Len(t, rows, 4)

	// Immediate (<1.5s): plays 4 and 5. Play 4 completed (failure), play 5 sacked.
	assert.Equal(t, "Immediate (<1.5s)", rows[0].Bucket)
	assert.Equal(t, 2, rows[0].Pressures)
	assert.InDelta(t, 0.5, rows[0].SuccessRate, 1e-9)
	assert.InDelta(t, 0.5, rows[0].SackRate, 1e-9)
	assert.InDelta(t, 1.5, rows[0].AvgYards, 1e-9)

	// Quick (1.5-2.5s): play 6 (interception).
	assert.Equal(t, 1, rows[1].Pressures)
	assert.InDelta(t, 1.0, rows[1].SuccessRate, 1e-9)

	// Delayed (2.5-3.5s): play 7 (incompletion).
	assert.Equal(t, 1, rows[2].Pressures)
	assert.InDelta(t, 1.0, rows[2].SuccessRate, 1e-9)

	// Late: empty but present.
	assert.Zero(t, rows[3].Pressures)
}

func TestCompletionSamples(t *testing.T) {
	noP, withP := CompletionSamples(fixture())
	assert.Equal(t, []float64{1, 1, 0}, noP)
	assert.Equal(t, []float64{1, 0, 0, 0}, withP)
}
