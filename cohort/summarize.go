package cohort

import (
	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/illnessdeath"
)

// Compartment and flow labels used by Summarize.
const (
	CompSusceptible = "S"
	CompPrevalent   = "P"
	CompDead        = "D"
	FlowIncidence   = "I"
	FlowOnsetDeaths = "DDx"
	FlowExcess      = "DT1D"
	FlowBackgroundP = "DBGP"
	FlowBackgroundS = "DBGS"
)

// CompartmentRow is one long-format summary row: the value of one
// compartment or flow at one (year, age) cell.
type CompartmentRow struct {
	Year        int
	Age         int
	Compartment string
	Value       float64
}

// Summarize flattens a result bundle into long-format rows, one per
// (year, age, compartment-or-flow), in a fixed deterministic order:
// years outermost, then ages, then S, P, D, I, DDx, DT1D, DBGP, DBGS.
//
// Errors: ErrNilResult. Complexity: O(years×MaxAge×8) rows.
func Summarize(res *illnessdeath.Result) ([]CompartmentRow, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	named := []struct {
		name string
		g    *agegrid.Grid
	}{
		{CompSusceptible, res.S},
		{CompPrevalent, res.P},
		{CompDead, res.D},
		{FlowIncidence, res.I},
		{FlowOnsetDeaths, res.DDx},
		{FlowExcess, res.DT1D},
		{FlowBackgroundP, res.DBGP},
		{FlowBackgroundS, res.DBGS},
	}

	years := res.S.Years()
	rows := make([]CompartmentRow, 0, len(years)*agegrid.MaxAge*len(named))
	for t, year := range years {
		for a := 0; a < agegrid.MaxAge; a++ {
			for _, ng := range named {
				rows = append(rows, CompartmentRow{
					Year:        year,
					Age:         a,
					Compartment: ng.name,
					Value:       ng.g.Row(t)[a],
				})
			}
		}
	}

	return rows, nil
}

// GhostPopulation returns the counterfactual survival difference:
// alive (S+P) under the counterfactual minus alive under the baseline,
// per (year, age) — the people who would exist under better diagnosis,
// care or cure.
//
// Errors: ErrNilResult; ErrAxisMismatch when the two runs span
// different year axes.
func GhostPopulation(baseline, counterfactual *illnessdeath.Result) (*agegrid.Grid, error) {
	if baseline == nil || counterfactual == nil {
		return nil, ErrNilResult
	}
	if err := agegrid.ValidateSameAxis(baseline.S, counterfactual.S); err != nil {
		return nil, ErrAxisMismatch
	}

	ghost := baseline.S.Clone()
	for t := 0; t < ghost.Rows(); t++ {
		row := ghost.Row(t)
		bS, bP := baseline.S.Row(t), baseline.P.Row(t)
		cS, cP := counterfactual.S.Row(t), counterfactual.P.Row(t)
		for a := range row {
			row[a] = (cS[a] + cP[a]) - (bS[a] + bP[a])
		}
	}

	return ghost, nil
}
