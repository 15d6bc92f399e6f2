package analyze

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ParabolaFit is a least-squares quadratic y = a*x^2 + b*x + c together
// with its vertex. The vertex is only defined for a != 0; FitParabola
// refuses to produce a fit without one.
type ParabolaFit struct {
	A, B, C float64
	VertexX float64
	VertexY float64
}

// Eval returns the fitted value at x.
func (f ParabolaFit) Eval(x float64) float64 {
	return f.A*x*x + f.B*x + f.C
}

// aEpsilon guards the vertex division. A quadratic coefficient this
// small means the window is effectively a line and has no vertex.
const aEpsilon = 1e-12

// FitParabola fits y = a*x^2 + b*x + c by least squares over at least
// three samples, solving the Vandermonde system with a QR decomposition.
func FitParabola(x, y []float64) (ParabolaFit, error) {
	if len(x) != len(y) {
		return ParabolaFit{}, fmt.Errorf("%w: x/y length mismatch (%d vs %d)", ErrInsufficientData, len(x), len(y))
	}
	if len(x) < 3 {
		return ParabolaFit{}, fmt.Errorf("%w: need at least 3 samples for a parabola, got %d", ErrInsufficientData, len(x))
	}

	n := len(x)
	v := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		v.Set(i, 0, 1)
		v.Set(i, 1, x[i])
		v.Set(i, 2, x[i]*x[i])
	}
	rhs := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(v)

	coeffs := mat.NewVecDense(3, nil)
	if err := qr.SolveVecTo(coeffs, false, rhs); err != nil {
		return ParabolaFit{}, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}

	c := coeffs.AtVec(0)
	b := coeffs.AtVec(1)
	a := coeffs.AtVec(2)
	for _, v := range []float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ParabolaFit{}, fmt.Errorf("%w: non-finite coefficients", ErrFitFailed)
		}
	}
	if math.Abs(a) < aEpsilon {
		return ParabolaFit{}, fmt.Errorf("%w: quadratic coefficient %g has no vertex", ErrFitFailed, a)
	}

	fit := ParabolaFit{A: a, B: b, C: c}
	fit.VertexX = -b / (2 * a)
	fit.VertexY = fit.Eval(fit.VertexX)
	return fit, nil
}
