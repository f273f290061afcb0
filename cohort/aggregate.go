package cohort

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput indicates an empty value set where at least one
	// observation is required.
	ErrEmptyInput = errors.New("cohort: no values to aggregate")
	// ErrBadWeights indicates weights that are negative, mismatched in
	// length, or sum to zero.
	ErrBadWeights = errors.New("cohort: invalid weights")
)

// CountrySummary is one country's contribution to a cross-country
// life-expectancy aggregation.
type CountrySummary struct {
	Country        string
	Population     float64
	LifeExpectancy float64
}

// WeightedMedian returns the weight-weighted median of values.
// Values need not be sorted. Weights must be non-negative with a
// positive sum and match values in length.
//
// Errors: ErrEmptyInput, ErrBadWeights.
// Complexity: O(n log n) for the sort.
func WeightedMedian(values, weights []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if len(weights) != len(values) {
		return 0, ErrBadWeights
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			return 0, ErrBadWeights
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrBadWeights
	}

	// stat.Quantile wants values sorted ascending with weights aligned.
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })
	xs := make([]float64, len(values))
	ws := make([]float64, len(values))
	for i, j := range idx {
		xs[i] = values[j]
		ws[i] = weights[j]
	}

	return stat.Quantile(0.5, stat.Empirical, xs, ws), nil
}

// AggregateLifeExpectancy returns the population-weighted median life
// expectancy across countries.
//
// Errors: ErrEmptyInput, ErrBadWeights.
func AggregateLifeExpectancy(summaries []CountrySummary) (float64, error) {
	if len(summaries) == 0 {
		return 0, ErrEmptyInput
	}
	values := make([]float64, len(summaries))
	weights := make([]float64, len(summaries))
	for i, s := range summaries {
		values[i] = s.LifeExpectancy
		weights[i] = s.Population
	}

	return WeightedMedian(values, weights)
}
