package inputs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/inputs"
)

// rec is shorthand for one long-format row.
func rec(year, age int, v string, val float64) inputs.Record {
	return inputs.Record{Year: year, Age: age, Var: v, Value: val}
}

// TestBuild_PivotAndBaselineFallback verifies the pivot: scenario rows
// overwrite, baseline fills the rest, untouched cells stay zero.
func TestBuild_PivotAndBaselineFallback(t *testing.T) {
	baseline := []inputs.Record{
		rec(2000, 5, inputs.VarIncidence, 0.001),
		rec(2001, 5, inputs.VarIncidence, 0.002),
		rec(2000, 5, inputs.VarBackgroundMortality, 0.01),
	}
	rows := []inputs.Record{
		rec(2001, 5, inputs.VarIncidence, 0.005), // overrides baseline
	}

	set, err := inputs.Build(rows, baseline, inputs.Sensitivity{})
	require.NoError(t, err)

	assert.Equal(t, []int{2000, 2001}, set.Years)
	assert.Equal(t, 0.001, set.Incidence.Row(0)[5], "baseline survives where not overridden")
	assert.Equal(t, 0.005, set.Incidence.Row(1)[5], "scenario row wins")
	assert.Equal(t, 0.01, set.BackgroundMortality.Row(0)[5])
	assert.Zero(t, set.BackgroundMortality.Row(1)[5], "missing cells stay zero")
	assert.Zero(t, set.MortalityMinimal.Row(0)[5], "untouched variables stay zero")
}

// TestBuild_RecordValidation verifies malformed rows are rejected with
// their sentinels before any matrix is returned.
func TestBuild_RecordValidation(t *testing.T) {
	_, err := inputs.Build([]inputs.Record{rec(2000, 5, "weight", 1)}, nil, inputs.Sensitivity{})
	assert.ErrorIs(t, err, inputs.ErrUnknownVar)

	_, err = inputs.Build([]inputs.Record{rec(2000, agegrid.MaxAge, inputs.VarIncidence, 1)}, nil, inputs.Sensitivity{})
	assert.ErrorIs(t, err, inputs.ErrBadAge)

	_, err = inputs.Build([]inputs.Record{rec(2000, -1, inputs.VarIncidence, 1)}, nil, inputs.Sensitivity{})
	assert.ErrorIs(t, err, inputs.ErrBadAge)

	_, err = inputs.Build([]inputs.Record{rec(2000, 5, inputs.VarIncidence, -0.1)}, nil, inputs.Sensitivity{})
	assert.ErrorIs(t, err, inputs.ErrBadValue)

	_, err = inputs.Build([]inputs.Record{rec(2000, 5, inputs.VarIncidence, math.NaN())}, nil, inputs.Sensitivity{})
	assert.ErrorIs(t, err, inputs.ErrBadValue)

	_, err = inputs.Build(nil, nil, inputs.Sensitivity{})
	assert.ErrorIs(t, err, inputs.ErrNoRecords)
}

// TestBuild_SensitivityToggles verifies each toggle's fixed numeric
// effect and its scope.
func TestBuild_SensitivityToggles(t *testing.T) {
	base := []inputs.Record{
		rec(2000, 5, inputs.VarIncidence, 0.004),
		rec(2000, 40, inputs.VarIncidence, 0.004),
		rec(2000, 5, inputs.VarMortalityNonMinimal, 0.02),
		rec(2000, 5, inputs.VarMortalityMinimal, 0.06),
		rec(2000, 5, inputs.VarDiagnosisDeath, 0.4),
	}

	set, err := inputs.Build(nil, base, inputs.Sensitivity{PedIncidenceUp10: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.004*1.10, set.Incidence.Row(0)[5], 1e-15, "pediatric ages scaled")
	assert.Equal(t, 0.004, set.Incidence.Row(0)[40], "adult ages untouched")

	set, err = inputs.Build(nil, base, inputs.Sensitivity{PedIncidenceDown25: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.004*0.75, set.Incidence.Row(0)[5], 1e-15)

	set, err = inputs.Build(nil, base, inputs.Sensitivity{SMRDown10: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.02*0.90, set.MortalityNonMinimal.Row(0)[5], 1e-15)
	assert.InDelta(t, 0.06*0.90, set.MortalityMinimal.Row(0)[5], 1e-15)

	set, err = inputs.Build(nil, base, inputs.Sensitivity{DiagnosisShift: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, set.DiagnosisDeath.Row(0)[5], 1e-15, "diagnosis shift halves dDx")
}

// TestBuild_ConflictingToggles verifies contradictory scenarios fail.
func TestBuild_ConflictingToggles(t *testing.T) {
	rows := []inputs.Record{rec(2000, 5, inputs.VarIncidence, 0.004)}

	_, err := inputs.Build(rows, nil, inputs.Sensitivity{PedIncidenceUp10: true, PedIncidenceDown25: true})
	assert.ErrorIs(t, err, inputs.ErrConflictingToggles)

	_, err = inputs.Build(rows, nil, inputs.Sensitivity{SMRUp10: true, SMRDown10: true})
	assert.ErrorIs(t, err, inputs.ErrConflictingToggles)
}

// TestBuild_DiagnosisDeathClamp verifies dDx is capped below 1 so the
// engine's i/(1-dDx) stays finite even for extreme tables.
func TestBuild_DiagnosisDeathClamp(t *testing.T) {
	rows := []inputs.Record{
		rec(2000, 5, inputs.VarDiagnosisDeath, 0.99),
		rec(2000, 6, inputs.VarDiagnosisDeath, 1.0),
		rec(2000, 7, inputs.VarDiagnosisDeath, 0.5),
	}

	set, err := inputs.Build(rows, nil, inputs.Sensitivity{})
	require.NoError(t, err)

	assert.Equal(t, inputs.MaxDiagnosisDeath, set.DiagnosisDeath.Row(0)[5])
	assert.Equal(t, inputs.MaxDiagnosisDeath, set.DiagnosisDeath.Row(0)[6])
	assert.Equal(t, 0.5, set.DiagnosisDeath.Row(0)[7], "values below the cap pass through")
}

// TestMatrixSet_CloneIndependence verifies lever-style deep copies.
func TestMatrixSet_CloneIndependence(t *testing.T) {
	set, err := inputs.Build([]inputs.Record{rec(2000, 5, inputs.VarIncidence, 0.004)}, nil, inputs.Sensitivity{})
	require.NoError(t, err)

	c := set.Clone()
	c.Incidence.Row(0)[5] = 1
	assert.Equal(t, 0.004, set.Incidence.Row(0)[5], "clone must not alias the original")
}

// TestMatrixSet_EngineInputs verifies the adapter hands the engine the
// same grids under the engine's field names.
func TestMatrixSet_EngineInputs(t *testing.T) {
	set, err := inputs.Build([]inputs.Record{
		rec(2000, 5, inputs.VarIncidence, 0.004),
		rec(2001, 5, inputs.VarPercentNonMinimal, 0.8),
	}, nil, inputs.Sensitivity{})
	require.NoError(t, err)

	in := set.EngineInputs()
	assert.Equal(t, set.Years, in.Years)
	assert.Same(t, set.Incidence, in.Incidence)
	assert.Same(t, set.PercentNonMinimal, in.PercentNonMinimal)
}
