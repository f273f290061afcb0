// Package illnessdeath - input bundles, options and result types shared
// by the full and incidence-level engines.
package illnessdeath

import (
	"time"

	"github.com/prevlab/prevcast/agegrid"
)

// CohortTol is the absolute tolerance for the cohort-vs-aggregate
// consistency postcondition enforced by the incidence-level engine.
const CohortTol = 1e-10

// Inputs carries the rate matrices of the full illness-death engine.
// All grids must be non-nil and share one strictly consecutive year
// axis of length ≥ 2, matching Years. Values are read, never mutated.
type Inputs struct {
	// Years is the modeled calendar-year axis.
	Years []int
	// Incidence is the onset rate i, excluding those who die at onset.
	Incidence *agegrid.Grid
	// BackgroundMortality is the general-population death rate qB.
	BackgroundMortality *agegrid.Grid
	// MortalityNonMinimal is the disease death rate qT1D_n of the
	// non-minimal-care stratum.
	MortalityNonMinimal *agegrid.Grid
	// MortalityMinimal is the disease death rate qT1D_m of the
	// minimal-care stratum.
	MortalityMinimal *agegrid.Grid
	// PercentNonMinimal is the fraction of the prevalent population in
	// the non-minimal-care stratum (the stratum mixing proportion).
	PercentNonMinimal *agegrid.Grid
	// DiagnosisDeath is the death-on-diagnosis rate dDx, clamped below 1
	// upstream (see inputs.MaxDiagnosisDeath).
	DiagnosisDeath *agegrid.Grid
}

// Options configures one full-engine run.
//
// Fields:
//   - TrackCohorts — populate the year×age×onset-age prevalence tensor.
//     The optional, more expensive path: O(years×MaxAge²) instead of
//     O(years×MaxAge).
//   - FinalYearMix — excess-mortality flows (DT1D and the cohort
//     outflow) use the mixing proportion of the final modeled year
//     instead of the time-varying matrix. Set this when the configured
//     lever-change start year equals the historical floor year: it
//     reproduces one calibration scenario of the original model and is
//     intentionally not generalized beyond that scope.
//   - Country — label copied into the result metadata.
type Options struct {
	TrackCohorts bool
	FinalYearMix bool
	Country      string
}

// DefaultOptions returns the default run configuration: aggregate-only
// (no cohort tensor), time-varying mixing proportion, empty country tag.
func DefaultOptions() Options {
	return Options{}
}

// Meta tags a result bundle so downstream reporting code can validate
// it is consuming a compatible shape.
type Meta struct {
	Country string
	Years   []int
	Started time.Time
	Elapsed time.Duration
}

// Result is the full-engine output bundle. All grids share the input
// year axis. S, P and D carry the half-cycle-corrected final states;
// SPre, PPre and DPre carry the raw recurrence states (the ones bound
// by the exact S+P+D == 1 conservation invariant). Pcohorts is nil
// unless Options.TrackCohorts was set.
type Result struct {
	S, P, D          *agegrid.Grid // half-cycle-corrected compartments
	SPre, PPre, DPre *agegrid.Grid // pre-correction compartments

	I    *agegrid.Grid // incidence flow i·S
	DDx  *agegrid.Grid // deaths at onset
	DT1D *agegrid.Grid // disease-caused excess deaths
	DBGP *agegrid.Grid // background deaths of the prevalent
	DBGS *agegrid.Grid // background deaths of the susceptible

	Pcohorts *agegrid.Tensor // prevalence by onset age (corrected)

	Meta Meta
}

// IncidenceInputs carries the inputs of the incidence-level engine.
// Incidence holds raw head counts, not proportions; Mortality is a
// single disease-mortality stratum (no blending). All grids must share
// one year axis of length ≥ 1 matching Years.
type IncidenceInputs struct {
	Years               []int
	Incidence           *agegrid.Grid
	BackgroundMortality *agegrid.Grid
	Mortality           *agegrid.Grid
	Country             string
}

// IncidenceResult is the incidence-level output bundle: prevalent counts,
// the onset-cohort count tensor, and the excess-mortality flow
// DT1D = (qT1D − qB)·P. No half-cycle correction is applied — flows are
// contemporaneous with their reference year by design of this variant.
type IncidenceResult struct {
	P        *agegrid.Grid
	Pcohorts *agegrid.Tensor
	DT1D     *agegrid.Grid
	Meta     Meta
}
