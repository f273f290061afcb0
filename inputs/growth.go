package inputs

import (
	"fmt"

	"github.com/prevlab/prevcast/agegrid"
)

// ExtrapolateGrowth extends a rate grid past a cutoff year.
//
// For each age, every year after the cutoff is projected from the
// cutoff year's value by a constant year-over-year growth ratio:
// either the trailing average of the last GrowthWindow observed ratios
// ending at the cutoff, or override when override > 0. Ages with no
// usable trailing ratio (zero denominators) hold flat (ratio 1).
//
// Returns a new grid; the input is unchanged.
// Errors: ErrCutoffYear when cutoffYear is off the axis.
// Complexity: O(years×MaxAge).
func ExtrapolateGrowth(g *agegrid.Grid, cutoffYear int, override float64) (*agegrid.Grid, error) {
	ti, ok := g.YearIndex(cutoffYear)
	if !ok {
		return nil, fmt.Errorf("year %d: %w", cutoffYear, ErrCutoffYear)
	}

	out := g.Clone()
	for a := 0; a < agegrid.MaxAge; a++ {
		ratio := override
		if ratio <= 0 {
			ratio = trailingRatio(g, ti, a)
		}
		base := g.Row(ti)[a]
		f := ratio
		for t := ti + 1; t < g.Rows(); t++ {
			out.Row(t)[a] = base * f
			f *= ratio
		}
	}

	return out, nil
}

// trailingRatio averages the last GrowthWindow year-over-year ratios for
// one age, ending at year index ti. Ratios with a zero denominator are
// skipped; with no usable ratio the age holds flat.
func trailingRatio(g *agegrid.Grid, ti, a int) float64 {
	var sum float64
	count := 0
	for t := ti; t > 0 && t > ti-GrowthWindow; t-- {
		prev := g.Row(t - 1)[a]
		if prev > 0 {
			sum += g.Row(t)[a] / prev
			count++
		}
	}
	if count == 0 {
		return 1
	}

	return sum / float64(count)
}

// BackfillHistory prepends a constant-valued prefix: every year from
// floorYear up to the grid's first year repeats the first year's row,
// so the warm-up range has no missing years. A floor at or after the
// first year returns a plain clone.
//
// Returns a new grid with the extended axis; the input is unchanged.
func BackfillHistory(g *agegrid.Grid, floorYear int) (*agegrid.Grid, error) {
	if floorYear >= g.FirstYear() {
		return g.Clone(), nil
	}
	years := agegrid.YearRange(floorYear, g.LastYear())
	out, err := agegrid.NewGrid(years)
	if err != nil {
		return nil, err
	}
	offset := g.FirstYear() - floorYear
	for t := 0; t < offset; t++ {
		copy(out.Row(t), g.Row(0))
	}
	for t := 0; t < g.Rows(); t++ {
		copy(out.Row(t+offset), g.Row(t))
	}

	return out, nil
}

// Backfill back-fills every grid of the set down to floorYear and
// returns the extended set. The receiver is unchanged.
func (ms *MatrixSet) Backfill(floorYear int) (*MatrixSet, error) {
	if floorYear >= ms.Years[0] {
		return ms.Clone(), nil
	}
	out := &MatrixSet{Years: agegrid.YearRange(floorYear, ms.Years[len(ms.Years)-1])}
	dsts := []**agegrid.Grid{
		&out.Incidence,
		&out.BackgroundMortality,
		&out.MortalityNonMinimal,
		&out.MortalityMinimal,
		&out.PercentNonMinimal,
		&out.DiagnosisDeath,
	}
	for i, src := range ms.grids() {
		g, err := BackfillHistory(src, floorYear)
		if err != nil {
			return nil, err
		}
		*dsts[i] = g
	}

	return out, nil
}
