package analyze

import (
	"fmt"
	"math"
)

// FindGradients scans every window of the given length and returns the
// window with the greatest signed slope (steepest rise) and the window
// with the least signed slope (steepest fall). Comparisons are strict,
// so the first-encountered window wins ties.
func FindGradients(x, y []float64, window int) (pos, neg Segment, err error) {
	if len(x) != len(y) {
		return Segment{}, Segment{}, fmt.Errorf("%w: x/y length mismatch (%d vs %d)", ErrInsufficientData, len(x), len(y))
	}
	if len(x) < window {
		return Segment{}, Segment{}, fmt.Errorf("%w: %d samples, gradient window is %d", ErrInsufficientData, len(x), window)
	}

	maxSlope := math.Inf(-1)
	minSlope := math.Inf(1)

	for i := 0; i+window <= len(x); i++ {
		seg := fitSegment(x, y, i, window)
		if seg.Slope > maxSlope {
			maxSlope = seg.Slope
			pos = seg
		}
		if seg.Slope < minSlope {
			minSlope = seg.Slope
			neg = seg
		}
	}
	return pos, neg, nil
}
