package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Apply(t *testing.T) {
	nan := math.NaN()
	candidates := []Candidate{
		{Name: "full", Values: []float64{1, 2, 3, 4}},
		{Name: "quarter", Values: []float64{1, nan, 3, 5}},
		{Name: "half", Values: []float64{nan, nan, 3, 5}},
		{Name: "most", Values: []float64{nan, nan, nan, 5}},
	}

	included, excluded := Policy{MaxNullFraction: 0.5}.Apply(candidates)

	require.Len(t, included, 2)
	assert.Equal(t, "full", included[0].Name)
	assert.Equal(t, "quarter", included[1].Name)
	assert.Equal(t, []float64{1, 3, 3, 5}, included[1].Values)

	require.Len(t, excluded, 2)
	assert.Equal(t, "half", excluded[0].Name)
	assert.Equal(t, 0.5, excluded[0].NullFraction)
	assert.Equal(t, 0.75, excluded[1].NullFraction)

	// the candidate slice is left untouched
	assert.True(t, math.IsNaN(candidates[1].Values[1]))
}

func TestPolicy_DefaultThreshold(t *testing.T) {
	nan := math.NaN()
	included, _ := Policy{}.Apply([]Candidate{{Name: "x", Values: []float64{nan, 1, 2}}})
	require.Len(t, included, 1)
	assert.Equal(t, 1.5, included[0].Values[0])
}
