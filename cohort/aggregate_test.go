package cohort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlab/prevcast/cohort"
)

// TestWeightedMedian verifies the weighted median against hand-checked
// cases, including unsorted input.
func TestWeightedMedian(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		weights []float64
		want    float64
	}{
		{
			name:    "uniform weights odd count",
			values:  []float64{3, 1, 2},
			weights: []float64{1, 1, 1},
			want:    2,
		},
		{
			name:    "single value",
			values:  []float64{42},
			weights: []float64{7},
			want:    42,
		},
		{
			name:    "heavy weight dominates",
			values:  []float64{10, 20, 30},
			weights: []float64{1, 1, 100},
			want:    30,
		},
		{
			name:    "zero-weight value ignored",
			values:  []float64{10, 999, 20},
			weights: []float64{1, 0, 3},
			want:    20,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cohort.WeightedMedian(tc.values, tc.weights)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestWeightedMedian_Preconditions verifies the weight sentinels.
func TestWeightedMedian_Preconditions(t *testing.T) {
	_, err := cohort.WeightedMedian(nil, nil)
	assert.ErrorIs(t, err, cohort.ErrEmptyInput)

	_, err = cohort.WeightedMedian([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, cohort.ErrBadWeights, "length mismatch")

	_, err = cohort.WeightedMedian([]float64{1, 2}, []float64{1, -1})
	assert.ErrorIs(t, err, cohort.ErrBadWeights, "negative weight")

	_, err = cohort.WeightedMedian([]float64{1, 2}, []float64{0, 0})
	assert.ErrorIs(t, err, cohort.ErrBadWeights, "zero total weight")
}

// TestWeightedMedian_InputUnchanged verifies the caller's slices are
// not reordered.
func TestWeightedMedian_InputUnchanged(t *testing.T) {
	values := []float64{3, 1, 2}
	weights := []float64{1, 2, 3}

	_, err := cohort.WeightedMedian(values, weights)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1, 2}, values)
	assert.Equal(t, []float64{1, 2, 3}, weights)
}

// TestAggregateLifeExpectancy verifies the population-weighted median
// across countries.
func TestAggregateLifeExpectancy(t *testing.T) {
	summaries := []cohort.CountrySummary{
		{Country: "A", Population: 1e6, LifeExpectancy: 45},
		{Country: "B", Population: 80e6, LifeExpectancy: 62},
		{Country: "C", Population: 2e6, LifeExpectancy: 70},
	}

	got, err := cohort.AggregateLifeExpectancy(summaries)
	require.NoError(t, err)
	assert.Equal(t, 62.0, got, "the populous country carries the median")

	_, err = cohort.AggregateLifeExpectancy(nil)
	assert.ErrorIs(t, err, cohort.ErrEmptyInput)
}
