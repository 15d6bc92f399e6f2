package analyze

import (
	"errors"
	"math"
	"testing"

	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

func TestAnalyzeTwoPeaksCentered(t *testing.T) {
	an := newAnalyzer(t)
	res, err := an.AnalyzeTwoPeaks(trapezoidProfile(t))
	if err != nil {
		t.Fatalf("AnalyzeTwoPeaks() error = %v", err)
	}

	// The smoothed shoulders peak at the plateau centers (x=1.2 and
	// x=2.8) and the valley stays at x=2. A centered valley means equal
	// positioning on both sides, so the difference vanishes.
	if math.Abs(res.LeftPeakX-1.2) > 0.1 {
		t.Errorf("LeftPeakX = %v, want ~1.2", res.LeftPeakX)
	}
	if math.Abs(res.RightPeakX-2.8) > 0.1 {
		t.Errorf("RightPeakX = %v, want ~2.8", res.RightPeakX)
	}
	if math.Abs(res.ValleyX-2.0) > 1e-6 {
		t.Errorf("ValleyX = %v, want 2.0", res.ValleyX)
	}
	if math.Abs(res.LeftPositioning-res.RightPositioning) > 1e-6 {
		t.Errorf("positioning = %v vs %v, want equal", res.LeftPositioning, res.RightPositioning)
	}
	if math.Abs(res.Difference) > 1e-6 {
		t.Errorf("Difference = %v, want 0", res.Difference)
	}
}

func TestAnalyzeTwoPeaksNeedsTwoPeaks(t *testing.T) {
	// A single hump has one prominent peak, not two.
	an := newAnalyzer(t)
	x := profile.Linspace(0, 10, 51)
	y := make([]float64, len(x))
	for i, xv := range x {
		y[i] = -(xv - 5) * (xv - 5)
	}
	p, err := profile.FromSamples(x, y)
	if err != nil {
		t.Fatal(err)
	}
	_, err = an.AnalyzeTwoPeaks(p)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("AnalyzeTwoPeaks() error = %v, want ErrInsufficientData", err)
	}
}
