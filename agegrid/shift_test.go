package agegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prevlab/prevcast/agegrid"
)

// TestShiftRow_BoundaryAndContent verifies the one-age-older shift:
// boundary at age 0, src[a-1] at age a, terminal value dropped.
func TestShiftRow_BoundaryAndContent(t *testing.T) {
	src := make([]float64, agegrid.MaxAge)
	for a := range src {
		src[a] = float64(a)
	}
	dst := make([]float64, agegrid.MaxAge)

	agegrid.ShiftRow(dst, src, 1)

	assert.Equal(t, 1.0, dst[0], "age 0 takes the boundary value")
	for a := 1; a < agegrid.MaxAge; a++ {
		assert.Equal(t, float64(a-1), dst[a], "age %d must hold src age %d", a, a-1)
	}
}

// TestShiftRow_TerminalBinClosed verifies shifting never grows the age
// axis: the src terminal-bin value leaves the model.
func TestShiftRow_TerminalBinClosed(t *testing.T) {
	src := make([]float64, agegrid.MaxAge)
	src[agegrid.MaxAge-1] = 0.7
	src[agegrid.MaxAge-2] = 0.2
	dst := make([]float64, agegrid.MaxAge)

	agegrid.ShiftRow(dst, src, 0)

	assert.Equal(t, 0.2, dst[agegrid.MaxAge-1], "terminal bin receives only the age-98 value")
}

// TestShiftRow_LengthMismatchPanics verifies a wrong-length row is
// treated as a programmer error.
func TestShiftRow_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		agegrid.ShiftRow(make([]float64, 5), make([]float64, agegrid.MaxAge), 0)
	})
}
