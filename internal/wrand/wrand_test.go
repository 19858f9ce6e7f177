package wrand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/prize-wheel/internal/models"
)

type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

func weighted(weights ...float64) []models.Item {
	items := make([]models.Item, len(weights))
	for i, w := range weights {
		items[i] = models.Item{
			ID:     string(rune('a' + i)),
			Label:  string(rune('A' + i)),
			Weight: w,
		}
	}
	return items
}

func TestSelect_Thresholds(t *testing.T) {
	// cumulative thresholds are [4, 7, 9, 10]
	items := weighted(4, 3, 2, 1)

	tests := []struct {
		draw  float64
		index int
	}{
		{0, 0},
		{0.39, 0},
		{0.4, 1},
		{0.5, 1},
		{0.69, 1},
		{0.7, 2},
		{0.89, 2},
		{0.9, 3},
		{0.999, 3},
	}

	for _, tt := range tests {
		item, index, ok := Select(items, fixedRNG(tt.draw))
		require.True(t, ok)
		assert.Equal(t, tt.index, index, "draw %v", tt.draw)
		assert.Equal(t, items[tt.index], item, "draw %v", tt.draw)
	}
}

func TestSelect_Empty(t *testing.T) {
	_, index, ok := Select(nil, fixedRNG(0.5))
	assert.False(t, ok)
	assert.Equal(t, -1, index)
}

func TestSelect_ZeroWeights(t *testing.T) {
	_, _, ok := Select(weighted(0, 0, 0), fixedRNG(0.5))
	assert.False(t, ok)
}

func TestSelect_FallbackToLast(t *testing.T) {
	// a draw of 1 is outside [0, 1) and exhausts the walk
	item, index, ok := Select(weighted(1, 1, 1), fixedRNG(1))
	require.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, "c", item.ID)
}

func TestSelect_NegativeWeightTerminates(t *testing.T) {
	items := weighted(2, -1, 3)
	for _, draw := range []float64{0, 0.25, 0.5, 0.75, 0.99, 1} {
		_, index, ok := Select(items, fixedRNG(draw))
		require.True(t, ok)
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, len(items))
	}
}

func TestSelect_AlwaysMember(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 20; n++ {
		weights := make([]float64, n)
		for i := range weights {
			weights[i] = rng.Float64()*10 + 0.001
		}
		items := weighted(weights...)

		for i := 0; i < 200; i++ {
			item, index, ok := Select(items, rng)
			require.True(t, ok)
			require.GreaterOrEqual(t, index, 0)
			require.Less(t, index, n)
			assert.Equal(t, items[index], item)
		}
	}
}

func TestSelect_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := weighted(1, 3)

	counts := make([]int, 2)
	const draws = 40000
	for i := 0; i < draws; i++ {
		_, index, _ := Select(items, rng)
		counts[index]++
	}

	assert.InDelta(t, 0.25, float64(counts[0])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(counts[1])/draws, 0.02)
}

func TestWrand_Pick(t *testing.T) {
	w := Wrand[string]{
		{Weight: 1, Item: "only"},
	}
	assert.Equal(t, "only", w.Pick())
	assert.Equal(t, 1.0, w.Total())
}
