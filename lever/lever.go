package lever

import (
	"errors"
	"fmt"

	"github.com/prevlab/prevcast/agegrid"
	"github.com/prevlab/prevcast/inputs"
)

// Level is the ordinal policy-lever level. Levels are cumulative: each
// includes the effect of every lower level.
type Level int

const (
	// None leaves the baseline unchanged.
	None Level = iota
	// FullDiagnosis zeroes death-on-diagnosis and grosses incidence up
	// to the pre-diagnosis-death level.
	FullDiagnosis
	// BasicCare additionally rescales non-minimal-care mortality into
	// the basic-care SMR band and moves everyone to non-minimal care.
	BasicCare
	// BestCare tightens the SMR band further.
	BestCare
	// Cure removes all excess mortality: both strata at background.
	Cure
)

// SMR band targets per care level. The rescale toward a band never
// worsens mortality (the ratio is capped at 1).
const (
	// BasicCareSMRLow / BasicCareSMRHigh bound the basic-care band.
	BasicCareSMRLow  = 2.5
	BasicCareSMRHigh = 3.5
	// BestCareSMRLow / BestCareSMRHigh bound the best-care band.
	BestCareSMRLow  = 1.0
	BestCareSMRHigh = 1.5
)

var (
	// ErrBadLevel indicates a lever level outside None..Cure.
	ErrBadLevel = errors.New("lever: level out of range")
	// ErrBadRange indicates an active year range with from > to.
	ErrBadRange = errors.New("lever: invalid active year range")
	// ErrBadBand indicates SMR bounds with low > high or low <= 0.
	ErrBadBand = errors.New("lever: invalid SMR band")
	// ErrNilSet indicates a nil baseline MatrixSet.
	ErrNilSet = errors.New("lever: nil baseline matrix set")
)

// Apply returns a new MatrixSet with lever lvl active over calendar
// years [from, to]. The baseline is never mutated. Years outside the
// baseline axis are ignored; an active range that misses the axis
// entirely (or lvl == None) returns an unchanged copy.
//
// Errors: ErrNilSet, ErrBadLevel, ErrBadRange.
// Complexity: O(activeYears×MaxAge).
func Apply(base *inputs.MatrixSet, lvl Level, from, to int) (*inputs.MatrixSet, error) {
	if base == nil {
		return nil, ErrNilSet
	}
	if lvl < None || lvl > Cure {
		return nil, fmt.Errorf("level %d: %w", lvl, ErrBadLevel)
	}
	if from > to {
		return nil, fmt.Errorf("[%d,%d]: %w", from, to, ErrBadRange)
	}

	out := base.Clone()
	t0, t1, ok := clipRange(out.Incidence, from, to)
	if lvl == None || !ok {
		return out, nil
	}

	// Level >= 1: full diagnosis. Gross incidence up by 1/(1-dDx) first,
	// then zero the death-on-diagnosis rate.
	for t := t0; t <= t1; t++ {
		iRow := out.Incidence.Row(t)
		dRow := out.DiagnosisDeath.Row(t)
		for a := range iRow {
			iRow[a] /= 1 - dRow[a] // dDx is clamped below 1 upstream
			dRow[a] = 0
		}
	}

	if lvl >= BasicCare && lvl < Cure {
		lo, hi := BasicCareSMRLow, BasicCareSMRHigh
		if lvl >= BestCare {
			lo, hi = BestCareSMRLow, BestCareSMRHigh
		}
		rescaleToBand(out.MortalityNonMinimal, out.BackgroundMortality, lo, hi, true, t0, t1)
		fillRange(out.PercentNonMinimal, 1, t0, t1)
	}

	if lvl == Cure {
		for t := t0; t <= t1; t++ {
			copy(out.MortalityNonMinimal.Row(t), out.BackgroundMortality.Row(t))
			copy(out.MortalityMinimal.Row(t), out.BackgroundMortality.Row(t))
		}
		fillRange(out.PercentNonMinimal, 1, t0, t1)
	}

	return out, nil
}

// ApplySMRTarget returns a new MatrixSet with non-minimal-care mortality
// rescaled toward the explicit SMR band [low, high] over [from, to].
// Unlike the discrete care levers, the rescale ratio is NOT capped at 1:
// a target above the current SMR raises mortality to meet it.
//
// Errors: ErrNilSet, ErrBadBand, ErrBadRange.
func ApplySMRTarget(base *inputs.MatrixSet, low, high float64, from, to int) (*inputs.MatrixSet, error) {
	if base == nil {
		return nil, ErrNilSet
	}
	if low <= 0 || low > high {
		return nil, fmt.Errorf("[%g,%g]: %w", low, high, ErrBadBand)
	}
	if from > to {
		return nil, fmt.Errorf("[%d,%d]: %w", from, to, ErrBadRange)
	}

	out := base.Clone()
	t0, t1, ok := clipRange(out.Incidence, from, to)
	if !ok {
		return out, nil
	}
	rescaleToBand(out.MortalityNonMinimal, out.BackgroundMortality, low, high, false, t0, t1)

	return out, nil
}

// rescaleToBand rescales q toward the SMR band [lo, hi] relative to qb,
// in place, over year indices [t0, t1]. SMR = q/qb; cells already inside
// the band, or with zero rates, are untouched. With capAtOne the ratio
// never exceeds 1 (mortality never worsens).
func rescaleToBand(q, qb *agegrid.Grid, lo, hi float64, capAtOne bool, t0, t1 int) {
	for t := t0; t <= t1; t++ {
		qRow := q.Row(t)
		bRow := qb.Row(t)
		for a, v := range qRow {
			if v <= 0 || bRow[a] <= 0 {
				continue
			}
			smr := v / bRow[a]
			target := smr
			switch {
			case smr > hi:
				target = hi
			case smr < lo:
				target = lo
			}
			ratio := target / smr
			if capAtOne && ratio > 1 {
				ratio = 1
			}
			qRow[a] = v * ratio
		}
	}
}

// fillRange sets every cell of year indices [t0, t1] to v.
func fillRange(g *agegrid.Grid, v float64, t0, t1 int) {
	for t := t0; t <= t1; t++ {
		row := g.Row(t)
		for a := range row {
			row[a] = v
		}
	}
}

// clipRange maps the calendar range [from, to] onto the grid's row
// indices, clipped to the axis. ok is false when the ranges do not
// intersect.
func clipRange(g *agegrid.Grid, from, to int) (t0, t1 int, ok bool) {
	first, last := g.FirstYear(), g.LastYear()
	if to < first || from > last {
		return 0, 0, false
	}
	if from < first {
		from = first
	}
	if to > last {
		to = last
	}

	return from - first, to - first, true
}
