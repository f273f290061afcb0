package agegrid

import "errors"

var (
	// ErrEmptyYears indicates an empty year axis where at least one year is required.
	ErrEmptyYears = errors.New("agegrid: year axis must contain at least one year")
	// ErrYearGap indicates a year axis that is not strictly consecutive.
	ErrYearGap = errors.New("agegrid: year axis must be strictly consecutive")
	// ErrNilGrid indicates a nil *Grid or *Tensor where a value is required.
	ErrNilGrid = errors.New("agegrid: nil grid")
	// ErrAxisMismatch indicates grids that do not share an identical year axis.
	ErrAxisMismatch = errors.New("agegrid: year axes differ")
	// ErrOutOfRange indicates a year or age index outside valid bounds.
	ErrOutOfRange = errors.New("agegrid: index out of range")
)
