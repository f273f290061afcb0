package illnessdeath

import "errors"

var (
	// ErrNilInput indicates a required input grid is nil.
	ErrNilInput = errors.New("illnessdeath: nil input matrix")
	// ErrShortRun indicates the year axis is too short for the engine
	// (the full engine needs at least two years, the incidence-level
	// engine at least one).
	ErrShortRun = errors.New("illnessdeath: year axis too short")
	// ErrYearsMismatch indicates the supplied years vector does not match
	// the input matrices' shared axis.
	ErrYearsMismatch = errors.New("illnessdeath: years vector does not match matrix axis")
	// ErrDegenerateRate indicates a death-on-diagnosis rate at or above 1,
	// which makes the incidence-including-death term i/(1-dDx) undefined.
	// The input builder clamps dDx below 1; reaching this error means an
	// unclamped rate leaked into the engine.
	ErrDegenerateRate = errors.New("illnessdeath: degenerate death-on-diagnosis rate (dDx >= 1)")
	// ErrNotFinite indicates a NaN or ±Inf input cell.
	ErrNotFinite = errors.New("illnessdeath: non-finite input value")
	// ErrCohortMismatch indicates the onset-cohort tensor and the aggregate
	// prevalence desynchronized beyond tolerance — an internal bookkeeping
	// defect, fatal by contract.
	ErrCohortMismatch = errors.New("illnessdeath: cohort sum diverged from aggregate prevalence")
)
