package analyze

import (
	"errors"
	"math"
	"testing"
)

func TestFitParabolaRecoversCoefficients(t *testing.T) {
	// y = 2(x-3)^2 + 5, sampled around the vertex. The fit must recover
	// the generating coefficients and place the vertex at (3, 5).
	a, x0, y0 := 2.0, 3.0, 5.0
	var xs, ys []float64
	for i := -3; i <= 3; i++ {
		x := x0 + float64(i)*0.5
		xs = append(xs, x)
		ys = append(ys, a*(x-x0)*(x-x0)+y0)
	}

	fit, err := FitParabola(xs, ys)
	if err != nil {
		t.Fatalf("FitParabola() error = %v", err)
	}
	if math.Abs(fit.VertexX-x0) > 1e-9 {
		t.Errorf("VertexX = %v, want %v", fit.VertexX, x0)
	}
	if math.Abs(fit.VertexY-y0) > 1e-9 {
		t.Errorf("VertexY = %v, want %v", fit.VertexY, y0)
	}
	if math.Abs(fit.A-a) > 1e-9 {
		t.Errorf("A = %v, want %v", fit.A, a)
	}
}

func TestFitParabolaFailures(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want error
	}{
		{
			name: "too few samples",
			x:    []float64{0, 1},
			y:    []float64{0, 1},
			want: ErrInsufficientData,
		},
		{
			name: "length mismatch",
			x:    []float64{0, 1, 2},
			y:    []float64{0, 1},
			want: ErrInsufficientData,
		},
		{
			// A perfect line has a == 0: no vertex, so no fit.
			name: "degenerate line",
			x:    []float64{0, 1, 2, 3},
			y:    []float64{1, 3, 5, 7},
			want: ErrFitFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitParabola(tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Errorf("FitParabola() error = %v, want %v", err, tt.want)
			}
		})
	}
}
