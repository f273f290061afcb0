// Package agegrid provides the shared data layout for age/period
// demographic models: dense year×age grids, year×age×onset-age tensors,
// and the single-age shift primitive every compartment recurrence uses.
//
// 🚀 What is agegrid?
//
//	The numeric substrate of prevcast:
//	  • Grid   — a rate or state matrix over (calendar year, age)
//	  • Tensor — a cohort array over (calendar year, age, onset age)
//	  • ShiftRow — "everyone one year older" with a policy boundary value
//	  • Axis validators shared by the engines' precondition checks
//
// ✨ Key properties:
//   - Ages are single-year bins 0..MaxAge-1; age MaxAge-1 is a closed
//     terminal bin ("100th birthday and beyond") — shifting never
//     creates an age beyond it.
//   - Year axes are strictly consecutive integers; gaps are rejected at
//     construction, so downstream code never re-checks.
//   - Storage is a flat, contiguous, row-major buffer, so whole-row
//     arithmetic (gonum/floats) runs on no-copy views.
//
// ⚙️ Usage:
//
//	years := agegrid.YearRange(1900, 2040)
//	g, err := agegrid.NewGrid(years)
//	if err != nil { ... }
//	row := g.Row(0)        // no-copy view, len == agegrid.MaxAge
//	agegrid.ShiftRow(dst, row, 1.0)
//
// Complexity: all accessors are O(1); allocation is O(years×MaxAge)
// for Grid and O(years×MaxAge²) for Tensor.
package agegrid
