package analyze

import (
	"fmt"
	"math"

	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// FindPlateau scans every window of the given length and returns the one
// whose fitted line is closest to horizontal, considering only windows
// that contain the half-profile's maximum. Ties go to the lowest start
// index. Returns ErrInsufficientData when no window can cover the
// maximum (half shorter than the window, or nothing qualifies).
func FindPlateau(x, y []float64, window int) (Segment, error) {
	if len(x) != len(y) {
		return Segment{}, fmt.Errorf("%w: x/y length mismatch (%d vs %d)", ErrInsufficientData, len(x), len(y))
	}
	if len(x) < window {
		return Segment{}, fmt.Errorf("%w: %d samples, plateau window is %d", ErrInsufficientData, len(x), window)
	}

	maxIdx := profile.ArgMax(y)
	minSlope := math.Inf(1)
	var best Segment
	found := false

	for i := 0; i+window <= len(x); i++ {
		if maxIdx < i || maxIdx >= i+window {
			continue
		}
		seg := fitSegment(x, y, i, window)
		if math.Abs(seg.Slope) < minSlope {
			minSlope = math.Abs(seg.Slope)
			best = seg
			found = true
		}
	}
	if !found {
		return Segment{}, fmt.Errorf("%w: no %d-sample window contains the maximum at index %d", ErrInsufficientData, window, maxIdx)
	}
	return best, nil
}
