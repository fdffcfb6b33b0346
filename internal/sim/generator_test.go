package sim

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	gen, err := NewGenerator(DefaultParams(), seed)
	require.NoError(t, err)
	return gen
}

func TestNewGenerator_RejectsBadParams(t *testing.T) {
	t.Run("wrong weight count", func(t *testing.T) {
		p := DefaultParams()
		p.DownWeights = []float64{1}
		_, err := NewGenerator(p, 1)
		assert.Error(t, err)
	})
	t.Run("pressure rate out of range", func(t *testing.T) {
		p := DefaultParams()
		p.PressureRate = 1.5
		_, err := NewGenerator(p, 1)
		assert.Error(t, err)
	})
	t.Run("inverted clamp bounds", func(t *testing.T) {
		p := DefaultParams()
		p.CompletionFloor = 0.95
		_, err := NewGenerator(p, 1)
		assert.Error(t, err)
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	a := mustGenerator(t, 42).Generate(1200)
	b := mustGenerator(t, 42).Generate(1200)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different plays (-a +b):\n%s", diff)
	}

	c := mustGenerator(t, 43).Generate(1200)
	assert.NotEqual(t, a, c, "different seeds should produce different plays")
}

func TestGenerateParallel_MatchesSequential(t *testing.T) {
	gen := mustGenerator(t, 42)
	seq := gen.Generate(2500)

	for _, workers := range []int{1, 4, 16} {
		par, err := gen.GenerateParallel(context.Background(), 2500, workers)
		require.NoError(t, err)
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Fatalf("workers=%d diverged from sequential:\n%s", workers, diff)
		}
	}
}

func TestGenerate_Empty(t *testing.T) {
	assert.Empty(t, mustGenerator(t, 1).Generate(0))
}

func TestGenerate_FieldRanges(t *testing.T) {
	plays := mustGenerator(t, 99).Generate(3000)
	require.Len(t, plays, 3000)

	for i, p := range plays {
		assert.Equal(t, i+1, p.PlayID)
		assert.GreaterOrEqual(t, p.Down, 1)
		assert.LessOrEqual(t, p.Down, 4)
		assert.GreaterOrEqual(t, p.Quarter, 1)
		assert.LessOrEqual(t, p.Quarter, 4)
		assert.GreaterOrEqual(t, p.Rushers, 3)
		assert.LessOrEqual(t, p.Rushers, 6)
		assert.GreaterOrEqual(t, p.FieldPosition, 5.0)
		assert.Less(t, p.FieldPosition, 95.0)
		assert.Contains(t, Alignments, p.Alignment)
		assert.GreaterOrEqual(t, p.TimeToThrow, 0.0)
		assert.GreaterOrEqual(t, p.Distance, 0.0)
	}
}

func TestGenerate_OutcomeInvariants(t *testing.T) {
	plays := mustGenerator(t, 7).Generate(5000)

	for _, p := range plays {
		if p.Sack {
			assert.False(t, p.Complete, "play %d: sack must not be a completion", p.PlayID)
			assert.True(t, p.Pressure, "play %d: sack requires pressure", p.PlayID)
			assert.Less(t, p.YardsGained, 0.0, "play %d: sack must lose yards", p.PlayID)
			assert.GreaterOrEqual(t, p.YardsGained, -8.0, "play %d: sack loss capped at 8", p.PlayID)
		}
		if !p.Complete && !p.Sack {
			assert.Zero(t, p.YardsGained, "play %d: incompletion gains nothing", p.PlayID)
		}
	}
}

func TestGenerate_RateSanity(t *testing.T) {
	plays := mustGenerator(t, 2024).Generate(20000)

	var pressured, clean, pressComp, cleanComp float64
	for _, p := range plays {
		if p.Pressure {
			pressured++
			if p.Complete {
				pressComp++
			}
		} else {
			clean++
			if p.Complete {
				cleanComp++
			}
		}
	}

	pressureRate := pressured / float64(len(plays))
	assert.InDelta(t, 0.35, pressureRate, 0.02, "pressure rate")

	cleanRate := cleanComp / clean
	pressRate := pressComp / pressured
	assert.Greater(t, cleanRate, pressRate+0.10,
		"completion should drop well over ten points under pressure (clean %.3f vs pressured %.3f)",
		cleanRate, pressRate)
	assert.InDelta(t, 0.66, cleanRate, 0.04, "clean-pocket completion rate")
}

func TestGenerate_InterceptionsMoreLikelyUnderPressure(t *testing.T) {
	plays := mustGenerator(t, 11).Generate(50000)

	var pressLost, pressInts, otherN, otherInts float64
	for _, p := range plays {
		if p.Pressure && !p.Complete && !p.Sack {
			pressLost++
			if p.Interception {
				pressInts++
			}
		} else if !p.Sack {
			otherN++
			if p.Interception {
				otherInts++
			}
		}
	}
	require.Greater(t, pressLost, 1000.0)
	assert.InDelta(t, 0.03, pressInts/pressLost, 0.01)
	assert.InDelta(t, 0.01, otherInts/otherN, 0.005)
}
