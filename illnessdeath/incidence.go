package illnessdeath

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/prevlab/prevcast/agegrid"
)

// RunIncidenceLevel executes the simplified, counts-based engine.
//
// Description:
//
//	Incidence is exogenous here — raw head counts supplied per year and
//	age, with no susceptible compartment and no half-cycle correction
//	(flows are contemporaneous with their reference year, matching
//	externally supplied annual counts). Prevalent counts follow
//
//	    P[t+1] = Pshift · (1 − qT1D[t]) + I[t+1]
//
//	with Pshift the one-age-older view of P[t] (boundary 0), and the
//	onset-cohort tensor mirrors the same recurrence per onset-age slice,
//	new onsets landing on the diagonal (onset age = current age).
//
// Postcondition, enforced at every year: the tensor's total mass equals
// the aggregate prevalent total within CohortTol (absolute). A violation
// means the recurrence and the cohort bookkeeping desynchronized — an
// internal defect — and aborts the run with ErrCohortMismatch rather
// than continuing silently.
//
// Errors: ErrNilInput, ErrShortRun (empty year axis), ErrYearsMismatch,
// ErrNotFinite, ErrCohortMismatch.
//
// Complexity: O(n·MaxAge²) time, O(n·MaxAge²) memory (the tensor).
func RunIncidenceLevel(in IncidenceInputs) (*IncidenceResult, error) {
	started := time.Now()
	if err := validateIncidenceInputs(in); err != nil {
		return nil, err
	}

	n := len(in.Years)
	p := mustGrid(in.Years)
	pc := mustTensor(in.Years)
	dt1d := mustGrid(in.Years)

	// Year 0: the first year's incidence counts are already prevalent,
	// each at its own onset age.
	copy(p.Row(0), in.Incidence.Row(0))
	for a, v := range in.Incidence.Row(0) {
		pc.OnsetRow(0, a)[a] = v
	}
	if err := checkCohortSum(p, pc, in.Years, 0); err != nil {
		return nil, err
	}

	pShift := make([]float64, agegrid.MaxAge)
	tmp := make([]float64, agegrid.MaxAge)
	for t := 0; t < n-1; t++ {
		q := in.Mortality.Row(t)

		// Aggregate: age the survivors, then add the new year's counts.
		agegrid.ShiftRow(pShift, p.Row(t), 0)
		pNext := p.Row(t + 1)
		oneMinusTo(tmp, q)
		floats.MulTo(pNext, pShift, tmp)
		floats.Add(pNext, in.Incidence.Row(t+1))

		// Cohorts: identical survival per onset-age slice, diagonal inflow.
		iNext := in.Incidence.Row(t + 1)
		for a := agegrid.MaxAge - 1; a >= 1; a-- {
			dst := pc.OnsetRow(t+1, a)
			floats.ScaleTo(dst, 1-q[a], pc.OnsetRow(t, a-1))
			dst[a] += iNext[a]
		}
		pc.OnsetRow(t+1, 0)[0] = iNext[0]

		if err := checkCohortSum(p, pc, in.Years, t+1); err != nil {
			return nil, err
		}
	}

	// DT1D = (qT1D - qB)·P : excess deaths attributed to the disease.
	for t := 0; t < n; t++ {
		row := dt1d.Row(t)
		floats.SubTo(row, in.Mortality.Row(t), in.BackgroundMortality.Row(t))
		floats.Mul(row, p.Row(t))
	}

	return &IncidenceResult{
		P:        p,
		Pcohorts: pc,
		DT1D:     dt1d,
		Meta: Meta{
			Country: in.Country,
			Years:   append([]int(nil), in.Years...),
			Started: started,
			Elapsed: time.Since(started),
		},
	}, nil
}

// checkCohortSum enforces the cohort-vs-aggregate postcondition for one
// year index.
func checkCohortSum(p *agegrid.Grid, pc *agegrid.Tensor, years []int, t int) error {
	agg := floats.Sum(p.Row(t))
	coh := pc.SumYear(t)
	if math.Abs(agg-coh) > CohortTol {
		return fmt.Errorf("year %d: aggregate %g vs cohorts %g: %w", years[t], agg, coh, ErrCohortMismatch)
	}

	return nil
}

// validateIncidenceInputs runs the incidence-level preconditions.
func validateIncidenceInputs(in IncidenceInputs) error {
	grids := []struct {
		name string
		g    *agegrid.Grid
	}{
		{"incidence", in.Incidence},
		{"background mortality", in.BackgroundMortality},
		{"disease mortality", in.Mortality},
	}
	all := make([]*agegrid.Grid, 0, len(grids))
	for _, ng := range grids {
		if ng.g == nil {
			return fmt.Errorf("%s: %w", ng.name, ErrNilInput)
		}
		all = append(all, ng.g)
	}
	if err := agegrid.ValidateSameAxis(all...); err != nil {
		return fmt.Errorf("illnessdeath: %w", err)
	}
	if len(in.Years) < 1 {
		return fmt.Errorf("need >= 1 year, got 0: %w", ErrShortRun)
	}
	if err := agegrid.ValidateYears(in.Years); err != nil {
		return fmt.Errorf("illnessdeath: %w", err)
	}
	if in.Incidence.Rows() != len(in.Years) || in.Incidence.FirstYear() != in.Years[0] {
		return ErrYearsMismatch
	}
	for _, ng := range grids {
		if err := validateFinite(ng.g); err != nil {
			return fmt.Errorf("%s: %w", ng.name, err)
		}
	}

	return nil
}
