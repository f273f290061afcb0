package cohort

import (
	"errors"
	"fmt"

	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/illnessdeath"
)

var (
	// ErrNoCohortData indicates a result produced without cohort
	// tracking was passed where the onset tensor is required.
	ErrNoCohortData = errors.New("cohort: result carries no onset-cohort tensor (run with TrackCohorts)")
	// ErrNilResult indicates a nil result bundle.
	ErrNilResult = errors.New("cohort: nil result")
	// ErrAxisMismatch indicates results that do not share a year axis.
	ErrAxisMismatch = errors.New("cohort: results span different year axes")
)

// ByOnsetYear is the cohort tensor re-keyed by calendar year of onset:
// cell (t, age, y) is the prevalent fraction in year index t at the
// given age whose onset occurred in year Years[y]. The onset-year axis
// is the model's own year axis, so the buffer is
// len(Years)×MaxAge×len(Years) — larger than the onset-age form for
// runs longer than MaxAge years.
type ByOnsetYear struct {
	years []int
	data  []float64
}

// Years returns a copy of the shared period/onset-year axis.
func (b *ByOnsetYear) Years() []int {
	ys := make([]int, len(b.years))
	copy(ys, b.years)

	return ys
}

// At returns the value at (year index t, age a, onset-year index y).
// Returns agegrid.ErrOutOfRange for invalid indices.
func (b *ByOnsetYear) At(t, a, y int) (float64, error) {
	n := len(b.years)
	if t < 0 || t >= n || a < 0 || a >= agegrid.MaxAge || y < 0 || y >= n {
		return 0, fmt.Errorf("ByOnsetYear.At(%d,%d,%d): %w", t, a, y, agegrid.ErrOutOfRange)
	}

	return b.data[(t*agegrid.MaxAge+a)*n+y], nil
}

// ReshapeByOnsetYear re-keys the result's onset-age tensor by calendar
// onset year: a cell at (year t, age a, onset age o) moves to onset year
// t − (a − o). Mass with an implied onset before the first modeled year
// cannot exist (the first modeled year has zero prevalence) and is
// dropped defensively.
//
// Errors: ErrNilResult; ErrNoCohortData when the run did not track
// cohorts. Complexity: O(years×MaxAge²).
func ReshapeByOnsetYear(res *illnessdeath.Result) (*ByOnsetYear, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if res.Pcohorts == nil {
		return nil, ErrNoCohortData
	}

	years := res.Pcohorts.Years()
	n := len(years)
	out := &ByOnsetYear{
		years: years,
		data:  make([]float64, n*agegrid.MaxAge*n),
	}
	for t := 0; t < n; t++ {
		for a := 0; a < agegrid.MaxAge; a++ {
			row := res.Pcohorts.OnsetRow(t, a)
			for o, v := range row {
				if v == 0 {
					continue
				}
				y := t - (a - o)
				if y < 0 || y >= n {
					continue
				}
				out.data[(t*agegrid.MaxAge+a)*n+y] += v
			}
		}
	}

	return out, nil
}
