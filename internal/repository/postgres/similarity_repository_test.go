//go:build !integration

package postgres

import (
	"math"
	"testing"

	"shopperSpectrum/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotPairs(t *testing.T) {
	pairs := []domain.ProductSimilarity{
		{Product: "A", Neighbor: "A", Score: 1},
		{Product: "A", Neighbor: "B", Score: 0.9},
		{Product: "A", Neighbor: "C", Score: 0.4},
		{Product: "B", Neighbor: "A", Score: 0.9},
		{Product: "C", Neighbor: "A", Score: 0.4},
	}

	table, err := pivotPairs(pairs)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, table.Products())

	got, ok := table.Nearest("A", 1)
	require.True(t, ok)
	assert.Equal(t, "B", got[0].Product)

	score, ok := table.Score("B", "C")
	require.True(t, ok)
	assert.True(t, math.IsNaN(score))
}

func TestPivotPairs_Empty(t *testing.T) {
	_, err := pivotPairs(nil)
	assert.Error(t, err)
}
