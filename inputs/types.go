package inputs

import (
	"errors"

	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/illnessdeath"
)

// Canonical variable names of the long-format input table.
const (
	// VarIncidence is the onset rate i (excluding death at onset).
	VarIncidence = "incidence"
	// VarBackgroundMortality is the general-population death rate qB.
	VarBackgroundMortality = "background_mortality"
	// VarMortalityNonMinimal is qT1D_n, the non-minimal-care stratum.
	VarMortalityNonMinimal = "t1d_mortality_non_minimal"
	// VarMortalityMinimal is qT1D_m, the minimal-care stratum.
	VarMortalityMinimal = "t1d_mortality_minimal"
	// VarPercentNonMinimal is the stratum mixing proportion.
	VarPercentNonMinimal = "percent_non_minimal"
	// VarDiagnosisDeath is the death-on-diagnosis rate dDx.
	VarDiagnosisDeath = "diagnosis_death"
)

const (
	// HistoryFloor is the fixed historical start year the warm-up
	// prefix is back-filled down to.
	HistoryFloor = 1900
	// MaxDiagnosisDeath caps dDx so the engine's i/(1−dDx) term stays
	// finite. A dDx of exactly 1 is a fatal input error upstream of the
	// engine; the builder clamps here.
	MaxDiagnosisDeath = 0.95
	// PediatricAgeLimit is the exclusive upper age bound of the
	// pediatric incidence sensitivity toggles (ages 0..19).
	PediatricAgeLimit = 20
	// GrowthWindow is the number of trailing year-over-year ratios
	// averaged by ExtrapolateGrowth.
	GrowthWindow = 10
)

var (
	// ErrUnknownVar indicates a record naming no canonical variable.
	ErrUnknownVar = errors.New("inputs: unknown variable name")
	// ErrBadAge indicates an age outside 0..MaxAge-1.
	ErrBadAge = errors.New("inputs: age out of range")
	// ErrBadValue indicates a negative or non-finite record value.
	ErrBadValue = errors.New("inputs: value must be finite and non-negative")
	// ErrNoRecords indicates an empty input table.
	ErrNoRecords = errors.New("inputs: no records")
	// ErrConflictingToggles indicates mutually exclusive sensitivity
	// toggles set together (e.g. pediatric incidence both up and down).
	ErrConflictingToggles = errors.New("inputs: conflicting sensitivity toggles")
	// ErrCutoffYear indicates an extrapolation cutoff off the grid axis.
	ErrCutoffYear = errors.New("inputs: cutoff year not on the grid axis")
)

// Record is one long-format table row: the value of one named variable
// at one (year, age) cell.
type Record struct {
	Year  int
	Age   int
	Var   string
	Value float64
}

// Sensitivity is the explicit scenario configuration passed into Build.
// Each toggle has a fixed numeric effect; none touches global state.
//
//   - PedIncidenceUp10/Down10/Up25/Down25 — multiply incidence for ages
//     below PediatricAgeLimit by 1.10 / 0.90 / 1.25 / 0.75.
//   - SMRUp10/SMRDown10 — multiply both disease-mortality strata by
//     1.10 / 0.90.
//   - DiagnosisShift — halve the death-on-diagnosis rate, modelling a
//     policy shift toward earlier diagnosis.
type Sensitivity struct {
	PedIncidenceUp10   bool
	PedIncidenceDown10 bool
	PedIncidenceUp25   bool
	PedIncidenceDown25 bool
	SMRUp10            bool
	SMRDown10          bool
	DiagnosisShift     bool
}

// MatrixSet is the pivoted, scenario-adjusted bundle of rate matrices
// feeding the full engine. All grids share the Years axis.
type MatrixSet struct {
	Years               []int
	Incidence           *agegrid.Grid
	BackgroundMortality *agegrid.Grid
	MortalityNonMinimal *agegrid.Grid
	MortalityMinimal    *agegrid.Grid
	PercentNonMinimal   *agegrid.Grid
	DiagnosisDeath      *agegrid.Grid
}

// Clone returns a deep copy. Lever transforms operate on clones so a
// baseline set is never mutated.
func (ms *MatrixSet) Clone() *MatrixSet {
	return &MatrixSet{
		Years:               append([]int(nil), ms.Years...),
		Incidence:           ms.Incidence.Clone(),
		BackgroundMortality: ms.BackgroundMortality.Clone(),
		MortalityNonMinimal: ms.MortalityNonMinimal.Clone(),
		MortalityMinimal:    ms.MortalityMinimal.Clone(),
		PercentNonMinimal:   ms.PercentNonMinimal.Clone(),
		DiagnosisDeath:      ms.DiagnosisDeath.Clone(),
	}
}

// EngineInputs adapts the set to the full engine's input bundle.
func (ms *MatrixSet) EngineInputs() illnessdeath.Inputs {
	return illnessdeath.Inputs{
		Years:               ms.Years,
		Incidence:           ms.Incidence,
		BackgroundMortality: ms.BackgroundMortality,
		MortalityNonMinimal: ms.MortalityNonMinimal,
		MortalityMinimal:    ms.MortalityMinimal,
		PercentNonMinimal:   ms.PercentNonMinimal,
		DiagnosisDeath:      ms.DiagnosisDeath,
	}
}

// grids returns the six grids in a fixed order (helper for set-wide
// transforms).
func (ms *MatrixSet) grids() []*agegrid.Grid {
	return []*agegrid.Grid{
		ms.Incidence,
		ms.BackgroundMortality,
		ms.MortalityNonMinimal,
		ms.MortalityMinimal,
		ms.PercentNonMinimal,
		ms.DiagnosisDeath,
	}
}
