package agegrid

import "fmt"

// MaxAge is the number of single-year age bins. Ages run 0..MaxAge-1;
// the last bin is closed and represents "100th birthday and beyond".
const MaxAge = 100

// Grid is a dense year×age matrix over a strictly consecutive year axis.
// Storage is a flat row-major buffer (offset = yearIndex*MaxAge + age),
// so a row is a contiguous slice suitable for vectorized arithmetic.
// The zero value is not usable; construct via NewGrid or NewGridOf.
type Grid struct {
	years []int
	data  []float64 // len == len(years)*MaxAge
}

// YearRange returns the consecutive year axis [first, last] inclusive.
// It panics if last < first (programmer error).
func YearRange(first, last int) []int {
	if last < first {
		panic(fmt.Sprintf("agegrid: YearRange(%d,%d): last < first", first, last))
	}
	years := make([]int, last-first+1)
	for i := range years {
		years[i] = first + i
	}

	return years
}

// ValidateYears checks that years is non-empty and strictly consecutive.
// Returns ErrEmptyYears or ErrYearGap (wrapped with the offending year).
// Complexity: O(len(years)).
func ValidateYears(years []int) error {
	if len(years) == 0 {
		return ErrEmptyYears
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return fmt.Errorf("between %d and %d: %w", years[i-1], years[i], ErrYearGap)
		}
	}

	return nil
}

// NewGrid allocates a zero-filled Grid over the given year axis.
// The axis is deep-copied to keep the Grid immutable from outside.
// Returns ErrEmptyYears or ErrYearGap on an invalid axis.
func NewGrid(years []int) (*Grid, error) {
	if err := ValidateYears(years); err != nil {
		return nil, err
	}
	ys := make([]int, len(years))
	copy(ys, years)

	return &Grid{years: ys, data: make([]float64, len(ys)*MaxAge)}, nil
}

// NewGridOf allocates a Grid over years with every cell set to fill.
func NewGridOf(years []int, fill float64) (*Grid, error) {
	g, err := NewGrid(years)
	if err != nil {
		return nil, err
	}
	g.Fill(fill)

	return g, nil
}

// Rows returns the number of modeled years.
func (g *Grid) Rows() int { return len(g.years) }

// Years returns a copy of the year axis.
func (g *Grid) Years() []int {
	ys := make([]int, len(g.years))
	copy(ys, g.years)

	return ys
}

// FirstYear returns the earliest modeled year.
func (g *Grid) FirstYear() int { return g.years[0] }

// LastYear returns the latest modeled year.
func (g *Grid) LastYear() int { return g.years[len(g.years)-1] }

// YearIndex maps a calendar year to its row index.
// The boolean reports whether the year lies on the axis.
func (g *Grid) YearIndex(year int) (int, bool) {
	i := year - g.years[0]
	if i < 0 || i >= len(g.years) {
		return 0, false
	}

	return i, true
}

// At returns the value at (year index t, age a).
// Returns ErrOutOfRange for invalid indices; never panics.
func (g *Grid) At(t, a int) (float64, error) {
	if t < 0 || t >= len(g.years) || a < 0 || a >= MaxAge {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", t, a, ErrOutOfRange)
	}

	return g.data[t*MaxAge+a], nil
}

// Set writes the value at (year index t, age a).
// Returns ErrOutOfRange for invalid indices; never panics.
func (g *Grid) Set(t, a int, v float64) error {
	if t < 0 || t >= len(g.years) || a < 0 || a >= MaxAge {
		return fmt.Errorf("Grid.Set(%d,%d): %w", t, a, ErrOutOfRange)
	}
	g.data[t*MaxAge+a] = v

	return nil
}

// Row returns the no-copy view of year index t (len MaxAge).
// Mutations through the slice write into the Grid. Out-of-range t is a
// programmer error and panics.
func (g *Grid) Row(t int) []float64 {
	if t < 0 || t >= len(g.years) {
		panic(fmt.Sprintf("agegrid: Grid.Row(%d): out of range [0,%d)", t, len(g.years)))
	}

	return g.data[t*MaxAge : (t+1)*MaxAge : (t+1)*MaxAge]
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy sharing nothing with the receiver.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		years: make([]int, len(g.years)),
		data:  make([]float64, len(g.data)),
	}
	copy(c.years, g.years)
	copy(c.data, g.data)

	return c
}

// sameAxis reports whether a and b share an identical year axis.
func sameAxis(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	// Axes are consecutive, so equal length + equal first year suffices.
	return len(a) == 0 || a[0] == b[0]
}

// ValidateSameAxis checks that every grid is non-nil and shares the first
// grid's year axis. This is the engines' fail-fast shape precondition:
// it runs once, before any recurrence step.
// Returns ErrNilGrid or ErrAxisMismatch. Complexity: O(len(gs)).
func ValidateSameAxis(gs ...*Grid) error {
	if len(gs) == 0 {
		return nil
	}
	for i, g := range gs {
		if g == nil {
			return fmt.Errorf("grid %d: %w", i, ErrNilGrid)
		}
		if !sameAxis(gs[0].years, g.years) {
			return fmt.Errorf("grid %d: %w", i, ErrAxisMismatch)
		}
	}

	return nil
}
