package agegrid

import "fmt"

// ShiftRow writes into dst the one-age-older view of src: dst[0] takes
// the policy boundary value, dst[a] = src[a-1] for a = 1..MaxAge-1.
//
// The boundary encodes what enters the model at age 0 (1 for the
// susceptible compartment — every synthetic birth cohort starts fully
// susceptible — and 0 for everything else). The src value in the
// terminal bin leaves the model: age MaxAge-1 is closed, shifting never
// creates an age beyond it.
//
// dst and src must both have length MaxAge and must not alias; a length
// mismatch is a programmer error and panics. Complexity: O(MaxAge).
func ShiftRow(dst, src []float64, boundary float64) {
	if len(dst) != MaxAge || len(src) != MaxAge {
		panic(fmt.Sprintf("agegrid: ShiftRow: len(dst)=%d len(src)=%d, want %d", len(dst), len(src), MaxAge))
	}
	copy(dst[1:], src[:MaxAge-1])
	dst[0] = boundary
}
