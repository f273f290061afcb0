package illnessdeath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/illnessdeath"
)

// constGrid builds a grid with every cell set to v.
func constGrid(t *testing.T, years []int, v float64) *agegrid.Grid {
	t.Helper()
	g, err := agegrid.NewGridOf(years, v)
	require.NoError(t, err)

	return g
}

// constInputs builds a full-engine input bundle with constant rates.
func constInputs(t *testing.T, years []int, i, qb, qn, qm, pct, ddx float64) illnessdeath.Inputs {
	t.Helper()

	return illnessdeath.Inputs{
		Years:               years,
		Incidence:           constGrid(t, years, i),
		BackgroundMortality: constGrid(t, years, qb),
		MortalityNonMinimal: constGrid(t, years, qn),
		MortalityMinimal:    constGrid(t, years, qm),
		PercentNonMinimal:   constGrid(t, years, pct),
		DiagnosisDeath:      constGrid(t, years, ddx),
	}
}

// variedInputs builds a bundle whose rates vary smoothly by year and age,
// staying well inside [0,1). Used by the invariant tests.
func variedInputs(t *testing.T, years []int) illnessdeath.Inputs {
	t.Helper()
	in := constInputs(t, years, 0, 0, 0, 0, 0, 0)
	for ti := range years {
		for a := 0; a < agegrid.MaxAge; a++ {
			fy := float64(ti)
			fa := float64(a)
			in.Incidence.Row(ti)[a] = 0.0002 + 0.000002*fa
			in.BackgroundMortality.Row(ti)[a] = 0.002 + 0.0004*fa + 0.0001*fy
			in.MortalityNonMinimal.Row(ti)[a] = 0.01 + 0.0005*fa
			in.MortalityMinimal.Row(ti)[a] = 0.03 + 0.0006*fa
			in.PercentNonMinimal.Row(ti)[a] = 0.4 + 0.002*fa + 0.01*fy
			in.DiagnosisDeath.Row(ti)[a] = 0.05 + 0.003*fa
		}
	}

	return in
}
