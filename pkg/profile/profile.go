package profile

import (
	"fmt"
)

// Profile is an ordered 1-D cross-sectional scan: (position, measurement)
// samples with strictly increasing positions. It is immutable once built;
// every analysis stage reads it and never writes it.
type Profile struct {
	X []float64
	Y []float64
}

// FromSamples builds a Profile and enforces its shape invariants.
func FromSamples(x, y []float64) (Profile, error) {
	if len(x) != len(y) {
		return Profile{}, fmt.Errorf("x/y length mismatch: %d vs %d", len(x), len(y))
	}
	if len(x) == 0 {
		return Profile{}, fmt.Errorf("empty profile")
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return Profile{}, fmt.Errorf("x must be strictly increasing: x[%d]=%g, x[%d]=%g", i-1, x[i-1], i, x[i])
		}
	}
	return Profile{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (p Profile) Len() int { return len(p.X) }

// ArgMin returns the index of the smallest y, first occurrence on ties.
func ArgMin(y []float64) int {
	best := 0
	for i, v := range y {
		if v < y[best] {
			best = i
		}
	}
	return best
}

// ArgMax returns the index of the largest y, first occurrence on ties.
func ArgMax(y []float64) int {
	best := 0
	for i, v := range y {
		if v > y[best] {
			best = i
		}
	}
	return best
}
