// Package cohort turns engine result bundles into reporting artifacts:
// onset-year reshapes of the cohort tensor, long-format compartment
// tables, ghost-population comparisons, and population-weighted country
// aggregation.
//
// 🚀 What does cohort do?
//
//	The consumers of illnessdeath results:
//	  • ReshapeByOnsetYear — year×age×onset-age → year×age×onset-year
//	  • Summarize          — compartments & flows as long-format rows
//	  • GhostPopulation    — alive under a counterfactual minus alive
//	    under the baseline ("people who would exist under better care")
//	  • WeightedMedian / AggregateLifeExpectancy — population-weighted
//	    medians across countries (gonum/stat)
//
// ✨ Contract notes:
//   - Reshaping a result that was run without cohort tracking is a
//     contract error (ErrNoCohortData) — no silent coercion.
//   - Comparisons require both results to share a year axis.
//
// ⚙️ Usage:
//
//	byYear, err := cohort.ReshapeByOnsetYear(res)
//	ghost, err := cohort.GhostPopulation(baseline, counterfactual)
//	med, err := cohort.WeightedMedian(lifeExp, population)
package cohort
