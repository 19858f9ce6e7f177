package wheel

import "math"

const fullTurn = 360.0

// normalize maps any angle into [0, 360).
func normalize(deg float64) float64 {
	deg = math.Mod(deg, fullTurn)
	if deg < 0 {
		deg += fullTurn
	}
	if deg >= fullTurn {
		// tiny negative values round up to a full turn
		deg = 0
	}
	return deg
}

// SliceAngle is the angular span of one segment.
func SliceAngle(itemCount int) float64 {
	return fullTurn / float64(itemCount)
}

// SegmentCenter returns the center angle of segment i in the unrotated layout.
// Segment i spans [i*slice, (i+1)*slice), clockwise from the top.
func SegmentCenter(itemCount, index int) float64 {
	slice := SliceAngle(itemCount)
	return float64(index)*slice + slice/2
}

// NextRotation computes the cumulative rotation that brings the center of
// segment winningIndex under the pointer at the top.
//
// The wheel always moves forward: the result is current plus extraFullSpins
// full turns plus the forward delta in [0, 360) to the target orientation.
// Extra turns don't change which segment lands under the pointer.
//
// Invalid input (no items or index out of range) returns current unchanged.
func NextRotation(current float64, itemCount, winningIndex, extraFullSpins int) float64 {
	if itemCount <= 0 || winningIndex < 0 || winningIndex >= itemCount {
		return current
	}
	if extraFullSpins < 0 {
		extraFullSpins = 0
	}

	center := SegmentCenter(itemCount, winningIndex)
	target := normalize(fullTurn - center)

	delta := target - normalize(current)
	if delta < 0 {
		delta += fullTurn
	}

	return current + fullTurn*float64(extraFullSpins) + delta
}

// PointerIndex returns the segment under the pointer for the given rotation.
// Returns -1 if there are no items.
func PointerIndex(rotation float64, itemCount int) int {
	if itemCount <= 0 {
		return -1
	}
	// the point of the layout that is now at the top
	atTop := normalize(-rotation)
	idx := int(atTop / SliceAngle(itemCount))
	if idx >= itemCount {
		idx = itemCount - 1
	}
	return idx
}
