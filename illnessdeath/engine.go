package illnessdeath

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/prevlab/prevcast/agegrid"
)

// Run executes the full illness-death engine.
//
// Description:
//
//	A forward recurrence over t = 0..len(years)-2, each step reading only
//	row t to populate row t+1. Within a step, "shift" means one-age-older
//	(agegrid.ShiftRow) with the compartment's boundary value at age 0:
//	S shifts in 1 (every synthetic birth cohort starts fully susceptible),
//	P and D shift in 0.
//
// Algorithm outline:
//  1. i_all = i / (1 − dDx): incidence including those who die at onset.
//     A denominator ≤ 0 is a degenerate rate and aborts the run.
//  2. S[t+1] = Sshift · (1 − i_all_shift) · (1 − qB[t])
//  3. P[t+1] = Pshift · (1 − qBlend[t]) + i_shift · Sshift, where
//     qBlend = qT1D_n·percent_n + qT1D_m·(1 − percent_n) is the
//     care-stratum-blended disease mortality.
//  4. D[t+1] = Dshift + i_all_shift·dDx_shift·Sshift + qBlend[t]·Pshift
//     + Sshift·qB[t]·(1 − i_all_shift)
//  5. With Options.TrackCohorts, the year×age×onset-age tensor mirrors
//     step 3 per onset-age slice; the incidence inflow lands on the
//     onset diagonal (onset age = the age the cohort had in year t).
//  6. Flows are recomputed from unshifted rows for the reporting
//     convention (I, DDx, DT1D, DBGP, DBGS), then the half-cycle
//     correction moves half of each flow between compartments. The
//     first modeled year is the initial condition and stays
//     uncorrected.
//
// Errors:
//   - ErrNilInput / ErrYearsMismatch / agegrid.ErrAxisMismatch — shape
//     preconditions, checked before any recurrence step.
//   - ErrShortRun — fewer than two modeled years.
//   - ErrNotFinite — NaN/Inf in an input cell.
//   - ErrDegenerateRate — dDx ≥ 1.
//
// Complexity: O(n·MaxAge) time aggregate, O(n·MaxAge²) with cohort
// tracking; memory is the returned bundle only.
func Run(in Inputs, opts Options) (*Result, error) {
	started := time.Now()
	if err := validateInputs(in); err != nil {
		return nil, err
	}

	n := len(in.Years)

	// i_all = i / (1 - dDx), guarded against the degenerate dDx >= 1.
	iAll := mustGrid(in.Years)
	for t := 0; t < n; t++ {
		ir := in.Incidence.Row(t)
		dr := in.DiagnosisDeath.Row(t)
		out := iAll.Row(t)
		for a := range out {
			den := 1 - dr[a]
			if den <= 0 {
				return nil, fmt.Errorf("year %d, age %d: %w", in.Years[t], a, ErrDegenerateRate)
			}
			out[a] = ir[a] / den
		}
	}

	s := mustGrid(in.Years)
	p := mustGrid(in.Years)
	d := mustGrid(in.Years)
	// Initial condition: the whole population starts susceptible, so the
	// entire first-year S row is 1 and P, D carry no mass. Together with
	// the age-0 shift-in boundary of 1 this keeps S+P+D == 1 at every
	// (year, age) cell.
	sFirst := s.Row(0)
	for a := range sFirst {
		sFirst[a] = 1
	}

	var pc *agegrid.Tensor
	if opts.TrackCohorts {
		pc = mustTensor(in.Years)
	}

	// Scratch rows reused across steps.
	var (
		sShift    = make([]float64, agegrid.MaxAge)
		pShift    = make([]float64, agegrid.MaxAge)
		iShift    = make([]float64, agegrid.MaxAge)
		iAllShift = make([]float64, agegrid.MaxAge)
		ddxShift  = make([]float64, agegrid.MaxAge)
		qBlend    = make([]float64, agegrid.MaxAge)
		tmp       = make([]float64, agegrid.MaxAge)
		tmp2      = make([]float64, agegrid.MaxAge)
	)

	for t := 0; t < n-1; t++ {
		agegrid.ShiftRow(sShift, s.Row(t), 1)
		agegrid.ShiftRow(pShift, p.Row(t), 0)
		agegrid.ShiftRow(iShift, in.Incidence.Row(t), 0)
		agegrid.ShiftRow(iAllShift, iAll.Row(t), 0)
		agegrid.ShiftRow(ddxShift, in.DiagnosisDeath.Row(t), 0)

		qb := in.BackgroundMortality.Row(t)
		qn := in.MortalityNonMinimal.Row(t)
		qm := in.MortalityMinimal.Row(t)
		pct := in.PercentNonMinimal.Row(t)

		// qBlend = qT1D_n·pct + qT1D_m·(1-pct)
		floats.MulTo(qBlend, pct, qn)
		oneMinusTo(tmp, pct)
		floats.Mul(tmp, qm)
		floats.Add(qBlend, tmp)

		// S[t+1] = Sshift · (1 - i_all_shift) · (1 - qB)
		sNext := s.Row(t + 1)
		oneMinusTo(tmp, iAllShift)
		oneMinusTo(tmp2, qb)
		floats.MulTo(sNext, tmp, tmp2)
		floats.Mul(sNext, sShift)

		// P[t+1] = Pshift · (1 - qBlend) + i_shift · Sshift
		pNext := p.Row(t + 1)
		oneMinusTo(tmp, qBlend)
		floats.MulTo(pNext, pShift, tmp)
		floats.MulTo(tmp, iShift, sShift)
		floats.Add(pNext, tmp)

		// D[t+1] = Dshift + deaths at onset + blended disease deaths
		//          + background deaths of the still-susceptible
		// The onset-death term pairs i_all_shift with the equally shifted
		// dDx: both describe last year's cohort at its onset age, and the
		// pairing is what keeps S+P+D == 1 exact under age-varying dDx.
		dNext := d.Row(t + 1)
		agegrid.ShiftRow(dNext, d.Row(t), 0)
		floats.MulTo(tmp, iAllShift, ddxShift)
		floats.Mul(tmp, sShift)
		floats.Add(dNext, tmp)
		floats.MulTo(tmp, qBlend, pShift)
		floats.Add(dNext, tmp)
		oneMinusTo(tmp, iAllShift)
		floats.Mul(tmp, sShift)
		floats.Mul(tmp, qb)
		floats.Add(dNext, tmp)

		if pc != nil {
			// Per onset-age slice: survive the blended mortality, then the
			// new onsets of year t land on the diagonal (onset age a-1 for
			// the cohort that is age a in year t+1). Age 0 has no prevalence.
			for a := agegrid.MaxAge - 1; a >= 1; a-- {
				dst := pc.OnsetRow(t+1, a)
				floats.ScaleTo(dst, 1-qBlend[a], pc.OnsetRow(t, a-1))
				dst[a-1] += iShift[a] * sShift[a]
			}
		}
	}

	res := &Result{
		S: s, P: p, D: d,
		SPre: s.Clone(), PPre: p.Clone(), DPre: d.Clone(),
		I:    mustGrid(in.Years),
		DDx:  mustGrid(in.Years),
		DT1D: mustGrid(in.Years),
		DBGP: mustGrid(in.Years),
		DBGS: mustGrid(in.Years),
	}
	computeFlows(res, in, iAll, opts, n)
	applyHalfCycle(res, in, pc, opts, n)
	res.Pcohorts = pc

	res.Meta = Meta{
		Country: opts.Country,
		Years:   append([]int(nil), in.Years...),
		Started: started,
		Elapsed: time.Since(started),
	}

	return res, nil
}

// computeFlows fills I, DDx, DT1D, DBGP and DBGS from the unshifted
// pre-correction state rows — the reporting convention: a flow is
// attributed to the (year, age) cell it leaves.
func computeFlows(res *Result, in Inputs, iAll *agegrid.Grid, opts Options, n int) {
	tmp := make([]float64, agegrid.MaxAge)
	tmp2 := make([]float64, agegrid.MaxAge)
	for t := 0; t < n; t++ {
		sRow := res.SPre.Row(t)
		pRow := res.PPre.Row(t)
		qb := in.BackgroundMortality.Row(t)
		qn := in.MortalityNonMinimal.Row(t)
		qm := in.MortalityMinimal.Row(t)
		pct := mixRow(in, opts, t, n)

		// I = i·S
		floats.MulTo(res.I.Row(t), in.Incidence.Row(t), sRow)

		// DDx = i_all·dDx·S
		ddxRow := res.DDx.Row(t)
		floats.MulTo(ddxRow, iAll.Row(t), in.DiagnosisDeath.Row(t))
		floats.Mul(ddxRow, sRow)

		// DT1D = (qT1D_n - qB)·P·pct + (qT1D_m - qB)·P·(1-pct)
		dt := res.DT1D.Row(t)
		floats.SubTo(dt, qn, qb)
		floats.Mul(dt, pct)
		floats.SubTo(tmp, qm, qb)
		oneMinusTo(tmp2, pct)
		floats.Mul(tmp, tmp2)
		floats.Add(dt, tmp)
		floats.Mul(dt, pRow)

		// DBGP = P·qB
		floats.MulTo(res.DBGP.Row(t), pRow, qb)

		// DBGS = S·qB·(1 - i_all)
		bgs := res.DBGS.Row(t)
		oneMinusTo(bgs, iAll.Row(t))
		floats.Mul(bgs, sRow)
		floats.Mul(bgs, qb)
	}
}

// applyHalfCycle applies the half-cycle correction in place: every flow
// is assumed to occur, on average, halfway through its reference year,
// so half of each flow is moved between the compartments it connects.
// The same terms are added and subtracted across S, P and D, so the
// compartment total is invariant under the correction. The first
// modeled year is the initial condition — a snapshot, not the outcome
// of a step — and is left uncorrected, keeping its P, D and cohort
// rows empty.
func applyHalfCycle(res *Result, in Inputs, pc *agegrid.Tensor, opts Options, n int) {
	for t := 1; t < n; t++ {
		sRow, pRow, dRow := res.S.Row(t), res.P.Row(t), res.D.Row(t)
		iRow := res.I.Row(t)
		onset := res.DDx.Row(t)
		excess := res.DT1D.Row(t)
		bgp := res.DBGP.Row(t)
		bgs := res.DBGS.Row(t)

		floats.AddScaled(sRow, -0.5, iRow)
		floats.AddScaled(sRow, -0.5, onset)
		floats.AddScaled(sRow, -0.5, bgs)

		floats.AddScaled(pRow, 0.5, iRow)
		floats.AddScaled(pRow, -0.5, excess)
		floats.AddScaled(pRow, -0.5, bgp)

		floats.AddScaled(dRow, 0.5, onset)
		floats.AddScaled(dRow, 0.5, bgs)
		floats.AddScaled(dRow, 0.5, excess)
		floats.AddScaled(dRow, 0.5, bgp)

		if pc != nil {
			// Mirror the aggregate P correction per onset-age slice:
			// DT1D+DBGP collapses to qBlend·P, and the incidence inflow
			// sits on the onset diagonal.
			qn := in.MortalityNonMinimal.Row(t)
			qm := in.MortalityMinimal.Row(t)
			pct := mixRow(in, opts, t, n)
			for a := 0; a < agegrid.MaxAge; a++ {
				qBlend := qn[a]*pct[a] + qm[a]*(1-pct[a])
				row := pc.OnsetRow(t, a)
				floats.Scale(1-0.5*qBlend, row)
				row[a] += 0.5 * iRow[a]
			}
		}
	}
}

// mixRow returns the mixing-proportion row used by excess-mortality
// flows for year index t. Under Options.FinalYearMix the final modeled
// year's row substitutes for the time-varying one — the documented
// calibration special case, applied identically to DT1D and to the
// cohort outflow so cohort-sum consistency survives the correction.
func mixRow(in Inputs, opts Options, t, n int) []float64 {
	if opts.FinalYearMix {
		return in.PercentNonMinimal.Row(n - 1)
	}

	return in.PercentNonMinimal.Row(t)
}

// validateInputs runs every full-engine precondition before the first
// recurrence step: nil grids, axis agreement, years-vector agreement,
// minimum run length, finite values.
func validateInputs(in Inputs) error {
	grids := []struct {
		name string
		g    *agegrid.Grid
	}{
		{"incidence", in.Incidence},
		{"background mortality", in.BackgroundMortality},
		{"non-minimal-care mortality", in.MortalityNonMinimal},
		{"minimal-care mortality", in.MortalityMinimal},
		{"percent non-minimal", in.PercentNonMinimal},
		{"diagnosis death", in.DiagnosisDeath},
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
	if len(in.Years) < 2 {
		return fmt.Errorf("need >= 2 years, got %d: %w", len(in.Years), ErrShortRun)
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

// validateFinite rejects NaN and ±Inf cells.
func validateFinite(g *agegrid.Grid) error {
	for t := 0; t < g.Rows(); t++ {
		for a, v := range g.Row(t) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("year index %d, age %d: %w", t, a, ErrNotFinite)
			}
		}
	}

	return nil
}

// oneMinusTo writes dst[i] = 1 - src[i].
func oneMinusTo(dst, src []float64) {
	for i, v := range src {
		dst[i] = 1 - v
	}
}

// mustGrid allocates a zero grid over an axis already validated by the
// caller. A failure here is a programmer error.
func mustGrid(years []int) *agegrid.Grid {
	g, err := agegrid.NewGrid(years)
	if err != nil {
		panic(err)
	}

	return g
}

// mustTensor allocates a zero tensor over an axis already validated by
// the caller. A failure here is a programmer error.
func mustTensor(years []int) *agegrid.Tensor {
	tn, err := agegrid.NewTensor(years)
	if err != nil {
		panic(err)
	}

	return tn
}
