package inputs

import (
	"fmt"
	"math"

	"github.com/prevlab/prevcast/agegrid"
)

// Build pivots long-format rows into a MatrixSet and applies the given
// sensitivity scenario.
//
// Description:
//
//	The year axis spans the minimum to the maximum year seen across both
//	tables. The baseline table is laid down first, then rows overwrite
//	it cell by cell, so a scenario table only has to carry the cells it
//	changes. Cells present in neither table stay zero. The
//	death-on-diagnosis rate is clamped at MaxDiagnosisDeath last, after
//	every multiplier, so no scenario can push it back toward 1.
//
// Errors:
//   - ErrNoRecords — both tables empty.
//   - ErrUnknownVar / ErrBadAge / ErrBadValue — malformed record
//     (reported with the record's coordinates).
//   - ErrConflictingToggles — contradictory Sensitivity fields.
//
// Complexity: O(len(rows) + len(baseline) + years×MaxAge).
func Build(rows, baseline []Record, sens Sensitivity) (*MatrixSet, error) {
	if err := sens.validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 && len(baseline) == 0 {
		return nil, ErrNoRecords
	}

	minY, maxY := math.MaxInt, math.MinInt
	for _, tbl := range [][]Record{baseline, rows} {
		for _, r := range tbl {
			if err := validateRecord(r); err != nil {
				return nil, err
			}
			if r.Year < minY {
				minY = r.Year
			}
			if r.Year > maxY {
				maxY = r.Year
			}
		}
	}

	years := agegrid.YearRange(minY, maxY)
	set := &MatrixSet{
		Years:               years,
		Incidence:           newGrid(years),
		BackgroundMortality: newGrid(years),
		MortalityNonMinimal: newGrid(years),
		MortalityMinimal:    newGrid(years),
		PercentNonMinimal:   newGrid(years),
		DiagnosisDeath:      newGrid(years),
	}
	byVar := map[string]*agegrid.Grid{
		VarIncidence:           set.Incidence,
		VarBackgroundMortality: set.BackgroundMortality,
		VarMortalityNonMinimal: set.MortalityNonMinimal,
		VarMortalityMinimal:    set.MortalityMinimal,
		VarPercentNonMinimal:   set.PercentNonMinimal,
		VarDiagnosisDeath:      set.DiagnosisDeath,
	}

	// Baseline first, scenario rows overwrite.
	for _, tbl := range [][]Record{baseline, rows} {
		for _, r := range tbl {
			g := byVar[r.Var]
			t, _ := g.YearIndex(r.Year) // axis spans every record year
			g.Row(t)[r.Age] = r.Value
		}
	}

	sens.apply(set)
	clampDiagnosisDeath(set.DiagnosisDeath)

	return set, nil
}

// validateRecord checks one long-format row.
func validateRecord(r Record) error {
	switch r.Var {
	case VarIncidence, VarBackgroundMortality, VarMortalityNonMinimal,
		VarMortalityMinimal, VarPercentNonMinimal, VarDiagnosisDeath:
	default:
		return fmt.Errorf("%q at year %d, age %d: %w", r.Var, r.Year, r.Age, ErrUnknownVar)
	}
	if r.Age < 0 || r.Age >= agegrid.MaxAge {
		return fmt.Errorf("%q at year %d, age %d: %w", r.Var, r.Year, r.Age, ErrBadAge)
	}
	if r.Value < 0 || math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("%q at year %d, age %d (value %g): %w", r.Var, r.Year, r.Age, r.Value, ErrBadValue)
	}

	return nil
}

// validate rejects contradictory toggle combinations.
func (s Sensitivity) validate() error {
	ped := 0
	for _, on := range []bool{s.PedIncidenceUp10, s.PedIncidenceDown10, s.PedIncidenceUp25, s.PedIncidenceDown25} {
		if on {
			ped++
		}
	}
	if ped > 1 {
		return fmt.Errorf("pediatric incidence: %w", ErrConflictingToggles)
	}
	if s.SMRUp10 && s.SMRDown10 {
		return fmt.Errorf("SMR: %w", ErrConflictingToggles)
	}

	return nil
}

// apply multiplies the set's grids by the fixed effect of each toggle.
func (s Sensitivity) apply(set *MatrixSet) {
	ped := 1.0
	switch {
	case s.PedIncidenceUp10:
		ped = 1.10
	case s.PedIncidenceDown10:
		ped = 0.90
	case s.PedIncidenceUp25:
		ped = 1.25
	case s.PedIncidenceDown25:
		ped = 0.75
	}
	if ped != 1.0 {
		for t := 0; t < set.Incidence.Rows(); t++ {
			row := set.Incidence.Row(t)
			for a := 0; a < PediatricAgeLimit; a++ {
				row[a] *= ped
			}
		}
	}

	smr := 1.0
	switch {
	case s.SMRUp10:
		smr = 1.10
	case s.SMRDown10:
		smr = 0.90
	}
	if smr != 1.0 {
		scaleGrid(set.MortalityNonMinimal, smr)
		scaleGrid(set.MortalityMinimal, smr)
	}

	if s.DiagnosisShift {
		scaleGrid(set.DiagnosisDeath, 0.5)
	}
}

// clampDiagnosisDeath caps dDx at MaxDiagnosisDeath in place.
func clampDiagnosisDeath(g *agegrid.Grid) {
	for t := 0; t < g.Rows(); t++ {
		row := g.Row(t)
		for a, v := range row {
			if v > MaxDiagnosisDeath {
				row[a] = MaxDiagnosisDeath
			}
		}
	}
}

// scaleGrid multiplies every cell by f in place.
func scaleGrid(g *agegrid.Grid, f float64) {
	for t := 0; t < g.Rows(); t++ {
		row := g.Row(t)
		for a := range row {
			row[a] *= f
		}
	}
}

// newGrid allocates a zero grid over an axis produced by YearRange;
// failure is a programmer error.
func newGrid(years []int) *agegrid.Grid {
	g, err := agegrid.NewGrid(years)
	if err != nil {
		panic(err)
	}

	return g
}
