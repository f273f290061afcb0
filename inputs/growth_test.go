package inputs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/inputs"
)

// growthGrid builds a grid over years with the given values at one age,
// leaving every other age zero.
func growthGrid(t *testing.T, years []int, age int, vals []float64) *agegrid.Grid {
	t.Helper()
	g, err := agegrid.NewGrid(years)
	require.NoError(t, err, "test grid must allocate")
	for i, v := range vals {
		g.Row(i)[age] = v
	}

	return g
}

// TestExtrapolateGrowth_TrailingRatio verifies the projected years
// compound the observed trailing ratio from the cutoff value.
func TestExtrapolateGrowth_TrailingRatio(t *testing.T) {
	years := agegrid.YearRange(2000, 2004)
	// 100 -> 110: single observed ratio 1.1; years 2003/2004 projected.
	g := growthGrid(t, years, 30, []float64{100, 110})

	out, err := inputs.ExtrapolateGrowth(g, 2001, 0)
	require.NoError(t, err)

	assert.Equal(t, 100.0, out.Row(0)[30], "history is untouched")
	assert.Equal(t, 110.0, out.Row(1)[30], "cutoff year is untouched")
	assert.InDelta(t, 121.0, out.Row(2)[30], 1e-9)
	assert.InDelta(t, 133.1, out.Row(3)[30], 1e-9)
	assert.InDelta(t, 146.41, out.Row(4)[30], 1e-9)

	assert.Equal(t, 100.0, g.Row(0)[30], "input grid must not be mutated")
}

// TestExtrapolateGrowth_Override verifies an explicit ratio replaces the
// trailing average.
func TestExtrapolateGrowth_Override(t *testing.T) {
	years := agegrid.YearRange(2000, 2003)
	g := growthGrid(t, years, 30, []float64{100, 110})

	out, err := inputs.ExtrapolateGrowth(g, 2001, 1.02)
	require.NoError(t, err)

	assert.InDelta(t, 110*1.02, out.Row(2)[30], 1e-9)
	assert.InDelta(t, 110*1.02*1.02, out.Row(3)[30], 1e-9)
}

// TestExtrapolateGrowth_FlatHold verifies ages with no usable history
// (zero denominators) carry the cutoff value forward unchanged.
func TestExtrapolateGrowth_FlatHold(t *testing.T) {
	years := agegrid.YearRange(2000, 2003)
	g := growthGrid(t, years, 30, []float64{0, 0.5})

	out, err := inputs.ExtrapolateGrowth(g, 2001, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.5, out.Row(2)[30], "flat hold when no ratio is observable")
	assert.Equal(t, 0.5, out.Row(3)[30])
	assert.Zero(t, out.Row(2)[0], "zero-valued ages stay zero")
}

// TestExtrapolateGrowth_BadCutoff verifies off-axis cutoffs fail.
func TestExtrapolateGrowth_BadCutoff(t *testing.T) {
	g := growthGrid(t, agegrid.YearRange(2000, 2003), 30, []float64{100})

	_, err := inputs.ExtrapolateGrowth(g, 1999, 0)
	assert.ErrorIs(t, err, inputs.ErrCutoffYear)
}

// TestBackfillHistory verifies the warm-up prefix repeats the first
// observed row down to the floor year.
func TestBackfillHistory(t *testing.T) {
	g := growthGrid(t, agegrid.YearRange(2000, 2001), 30, []float64{0.3, 0.4})

	out, err := inputs.BackfillHistory(g, 1997)
	require.NoError(t, err)

	assert.Equal(t, agegrid.YearRange(1997, 2001), out.Years())
	assert.Equal(t, 0.3, out.Row(0)[30], "prefix repeats the first row")
	assert.Equal(t, 0.3, out.Row(2)[30])
	assert.Equal(t, 0.3, out.Row(3)[30])
	assert.Equal(t, 0.4, out.Row(4)[30], "observed rows keep their years")
}

// TestBackfillHistory_NoOp verifies a floor at or past the first year
// returns a plain copy.
func TestBackfillHistory_NoOp(t *testing.T) {
	g := growthGrid(t, agegrid.YearRange(2000, 2001), 30, []float64{0.3})

	out, err := inputs.BackfillHistory(g, 2000)
	require.NoError(t, err)

	assert.Equal(t, g.Years(), out.Years())
	out.Row(0)[30] = 9
	assert.Equal(t, 0.3, g.Row(0)[30], "no-op still returns an independent copy")
}

// TestMatrixSet_Backfill verifies the set-wide variant extends every
// grid on a shared axis.
func TestMatrixSet_Backfill(t *testing.T) {
	set, err := inputs.Build([]inputs.Record{
		{Year: 2000, Age: 5, Var: inputs.VarIncidence, Value: 0.004},
		{Year: 2000, Age: 5, Var: inputs.VarBackgroundMortality, Value: 0.01},
	}, nil, inputs.Sensitivity{})
	require.NoError(t, err)

	out, err := set.Backfill(1998)
	require.NoError(t, err)

	assert.Equal(t, agegrid.YearRange(1998, 2000), out.Years)
	assert.Equal(t, 0.004, out.Incidence.Row(0)[5])
	assert.Equal(t, 0.01, out.BackgroundMortality.Row(1)[5])
	assert.Equal(t, out.Years, out.DiagnosisDeath.Years(), "every grid shares the extended axis")
}
