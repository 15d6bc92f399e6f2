package analyze

import (
	"errors"
	"math"
	"testing"
)

func TestFindGradientsTrapezoidEdge(t *testing.T) {
	// Flat, steep rise, flat. The steepest positive window is the one
	// fully on the rise; the steepest negative window is whichever
	// window has the least slope, which here is a flat one (slope 0),
	// first-found.
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{0, 0, 0, 10, 20, 20, 20, 20}

	pos, neg, err := FindGradients(x, y, 3)
	if err != nil {
		t.Fatalf("FindGradients() error = %v", err)
	}
	// Windows on the rise: [2,3,4] has slope 10; the partial windows
	// [1,2,3] and [3,4,5] regress to 5. So the winner starts at 2.
	if pos.Start != 2 {
		t.Errorf("pos.Start = %d, want 2", pos.Start)
	}
	if math.Abs(pos.Slope-10) > 1e-9 {
		t.Errorf("pos.Slope = %v, want 10", pos.Slope)
	}
	// No falling region exists; the least slope is 0, first seen at the
	// leading flat window.
	if neg.Start != 0 {
		t.Errorf("neg.Start = %d, want 0", neg.Start)
	}
	if math.Abs(neg.Slope) > 1e-9 {
		t.Errorf("neg.Slope = %v, want 0", neg.Slope)
	}
}

func TestFindGradientsMonotonic(t *testing.T) {
	// On a monotonically increasing ramp every window has the same
	// slope, so first-found tie-breaking returns the window at index 0
	// for both extremes.
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{0, 2, 4, 6, 8, 10}

	pos, neg, err := FindGradients(x, y, 3)
	if err != nil {
		t.Fatalf("FindGradients() error = %v", err)
	}
	if pos.Start != 0 || neg.Start != 0 {
		t.Errorf("Start = (%d, %d), want (0, 0)", pos.Start, neg.Start)
	}
	if math.Abs(pos.Slope-2) > 1e-9 || math.Abs(neg.Slope-2) > 1e-9 {
		t.Errorf("Slope = (%v, %v), want (2, 2)", pos.Slope, neg.Slope)
	}
}

func TestFindGradientsInsufficientData(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	_, _, err := FindGradients(x, y, 3)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("FindGradients() error = %v, want ErrInsufficientData", err)
	}
}
