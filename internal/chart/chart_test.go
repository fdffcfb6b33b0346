package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passrush/internal/sim"
)

func TestRenderAll(t *testing.T) {
	gen, err := sim.NewGenerator(sim.DefaultParams(), 42)
	require.NoError(t, err)
	plays := gen.Generate(2000)

	dir := filepath.Join(t.TempDir(), "charts")
	paths, err := RenderAll(dir, "qb_pressure", plays)
	require.NoError(t, err)
	require.Len(t, paths, 6)

	// PNG magic bytes on every figure.
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err, "figure %s", p)
		require.Greater(t, len(data), 8, "figure %s", p)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4], "figure %s", p)
	}

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	assert.Contains(t, names, "qb_pressure_completion_by_pressure.png")
	assert.Contains(t, names, "qb_pressure_time_to_throw_dist.png")
	assert.Contains(t, names, "qb_pressure_pressure_timing.png")
}

func TestThrowDistribution_BinsOutliers(t *testing.T) {
	// A play past the 10s window is dropped from the histogram, not binned
	// out of range.
	plays := []sim.Play{
		{PlayID: 1, TimeToThrow: 2.0},
		{PlayID: 2, TimeToThrow: 11.0},
		{PlayID: 3, TimeToThrow: 3.0, Pressure: true},
	}
	ch, err := throwDistribution(plays)
	require.NoError(t, err)
	require.NotNil(t, ch)
}
