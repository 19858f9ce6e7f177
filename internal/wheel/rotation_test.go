package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRotation_FourSlices(t *testing.T) {
	// center of segment 0 is 45, target is 315
	assert.Equal(t, 2115.0, NextRotation(0, 4, 0, 5))
	assert.Equal(t, 2115.0-90, NextRotation(0, 4, 1, 5))
	assert.Equal(t, 315.0, NextRotation(0, 4, 0, 0))
}

func TestNextRotation_ForwardDelta(t *testing.T) {
	// current at 350 normalized, target 315: must go forward 325, not back 35
	res := NextRotation(350, 4, 0, 0)
	assert.Equal(t, 350.0+325, res)

	// already aligned: delta is zero, only the extra turns are added
	res = NextRotation(2115, 4, 0, 5)
	assert.Equal(t, 2115.0+1800, res)
}

func TestNextRotation_NeverDecreases(t *testing.T) {
	currents := []float64{0, 1, 44.5, 90, 179.99, 359.999, 360, 1234.5, 1e6 + 0.25}
	for _, current := range currents {
		for count := 1; count <= 15; count++ {
			for idx := 0; idx < count; idx++ {
				for _, extra := range []int{0, 1, 5} {
					res := NextRotation(current, count, idx, extra)
					assert.GreaterOrEqual(t, res, current)
					assert.LessOrEqual(t, res, current+fullTurn*float64(extra+1))
				}
			}
		}
	}
}

func TestNextRotation_LandsOnWinner(t *testing.T) {
	current := 0.0
	for count := 1; count <= 24; count++ {
		for idx := 0; idx < count; idx++ {
			current = NextRotation(current, count, idx, 5)

			// the winning center plus the rotation is back at screen angle 0
			screen := normalize(SegmentCenter(count, idx) + current)
			dist := math.Min(screen, fullTurn-screen)
			assert.InDelta(t, 0, dist, 1e-6, "count=%d idx=%d", count, idx)

			assert.Equal(t, idx, PointerIndex(current, count), "count=%d idx=%d", count, idx)
		}
	}
}

func TestNextRotation_Deterministic(t *testing.T) {
	a := NextRotation(777.7, 7, 3, 5)
	b := NextRotation(777.7, 7, 3, 5)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestNextRotation_InvalidInput(t *testing.T) {
	assert.Equal(t, 10.0, NextRotation(10, 0, 0, 5))
	assert.Equal(t, 10.0, NextRotation(10, 3, 3, 5))
	assert.Equal(t, 10.0, NextRotation(10, 3, -1, 5))
}

func TestPointerIndex(t *testing.T) {
	assert.Equal(t, -1, PointerIndex(0, 0))
	// unrotated: boundary between last and first segment sits at the top
	assert.Equal(t, 0, PointerIndex(0, 4))
	assert.Equal(t, 3, PointerIndex(10, 4))
	assert.Equal(t, 0, PointerIndex(315, 4))
	assert.Equal(t, 1, PointerIndex(225, 4))
}
