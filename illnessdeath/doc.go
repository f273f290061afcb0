// Package illnessdeath implements the two cohort-simulation engines of
// prevcast: the full three-state (Susceptible/Prevalent/Dead) illness-death
// Markov model with half-cycle correction, and the simplified
// incidence-level variant used for counts-based ghost-population work.
//
// 🚀 What is the illness-death model?
//
//	A forward recurrence over calendar years: each step ages every
//	synthetic birth cohort by one year and moves mass between three
//	compartments under age- and time-varying transition rates:
//	  • incidence i (onset, excluding those who die at onset)
//	  • background mortality qB
//	  • disease mortality per care stratum (qT1D_n, qT1D_m), blended
//	    by the time-varying mixing proportion qT1D_percent_n
//	  • death-on-diagnosis rate dDx
//
// ✨ Key guarantees:
//   - Conservation: S+P+D == 1 at every (year, age) cell before the
//     half-cycle correction, and the correction moves the same flow
//     terms between compartments, so the sum survives it.
//   - Fail-fast preconditions: mismatched axes, a degenerate dDx, or a
//     non-finite input abort before the first recurrence step — a
//     failed run produces no partial output.
//   - Cohort bookkeeping: the optional year×age×onset-age tensor stays
//     consistent with the aggregate prevalence to machine precision;
//     the incidence-level engine enforces this at every year and
//     aborts with ErrCohortMismatch on violation.
//
// ⚙️ Usage:
//
//	opts := illnessdeath.DefaultOptions()
//	opts.TrackCohorts = true
//	res, err := illnessdeath.Run(in, opts)
//	if err != nil {
//	  // ErrShortRun, ErrAxisMismatch (wrapped), ErrDegenerateRate, ...
//	}
//	fmt.Println(res.P.At(120, 40)) // prevalent fraction, year idx 120, age 40
//
// Performance:
//
//   - Time:   O(years × MaxAge) aggregate, O(years × MaxAge²) with
//     TrackCohorts enabled
//   - Memory: a handful of dense 2D grids plus (optionally) two 3D
//     tensors; strictly sequential in the year axis, whole-row
//     vectorized in the age axis (gonum/floats)
package illnessdeath
