package agegrid

import "fmt"

// Tensor is a dense year×age×onset-age cohort array. The onset-age axis
// reuses the 0..MaxAge-1 age range. Storage is a flat buffer with the
// onset-age dimension innermost (offset = (t*MaxAge + a)*MaxAge + o),
// so the onset distribution of one (year, age) cell is a contiguous
// slice — the layout the per-step vectorized shift wants.
type Tensor struct {
	years []int
	data  []float64 // len == len(years)*MaxAge*MaxAge
}

// NewTensor allocates a zero-filled Tensor over the given year axis.
// Returns ErrEmptyYears or ErrYearGap on an invalid axis.
func NewTensor(years []int) (*Tensor, error) {
	if err := ValidateYears(years); err != nil {
		return nil, err
	}
	ys := make([]int, len(years))
	copy(ys, years)

	return &Tensor{years: ys, data: make([]float64, len(ys)*MaxAge*MaxAge)}, nil
}

// Rows returns the number of modeled years.
func (tn *Tensor) Rows() int { return len(tn.years) }

// Years returns a copy of the year axis.
func (tn *Tensor) Years() []int {
	ys := make([]int, len(tn.years))
	copy(ys, tn.years)

	return ys
}

// At returns the value at (year index t, age a, onset age o).
// Returns ErrOutOfRange for invalid indices; never panics.
func (tn *Tensor) At(t, a, o int) (float64, error) {
	if t < 0 || t >= len(tn.years) || a < 0 || a >= MaxAge || o < 0 || o >= MaxAge {
		return 0, fmt.Errorf("Tensor.At(%d,%d,%d): %w", t, a, o, ErrOutOfRange)
	}

	return tn.data[(t*MaxAge+a)*MaxAge+o], nil
}

// Set writes the value at (year index t, age a, onset age o).
// Returns ErrOutOfRange for invalid indices; never panics.
func (tn *Tensor) Set(t, a, o int, v float64) error {
	if t < 0 || t >= len(tn.years) || a < 0 || a >= MaxAge || o < 0 || o >= MaxAge {
		return fmt.Errorf("Tensor.Set(%d,%d,%d): %w", t, a, o, ErrOutOfRange)
	}
	tn.data[(t*MaxAge+a)*MaxAge+o] = v

	return nil
}

// OnsetRow returns the no-copy onset-age slice of cell (t, a), len MaxAge.
// Mutations through the slice write into the Tensor. Out-of-range
// indices are a programmer error and panic.
func (tn *Tensor) OnsetRow(t, a int) []float64 {
	if t < 0 || t >= len(tn.years) || a < 0 || a >= MaxAge {
		panic(fmt.Sprintf("agegrid: Tensor.OnsetRow(%d,%d): out of range", t, a))
	}
	off := (t*MaxAge + a) * MaxAge

	return tn.data[off : off+MaxAge : off+MaxAge]
}

// SumYear returns the total mass of year index t across all ages and
// onset ages — the quantity checked against the aggregate compartment
// sum by the cohort-consistency postcondition.
func (tn *Tensor) SumYear(t int) float64 {
	var s float64
	off := t * MaxAge * MaxAge
	for _, v := range tn.data[off : off+MaxAge*MaxAge] {
		s += v
	}

	return s
}

// Clone returns a deep copy sharing nothing with the receiver.
func (tn *Tensor) Clone() *Tensor {
	c := &Tensor{
		years: make([]int, len(tn.years)),
		data:  make([]float64, len(tn.data)),
	}
	copy(c.years, tn.years)
	copy(c.data, tn.data)

	return c
}
