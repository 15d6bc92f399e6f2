package analyze

import (
	"gonum.org/v1/gonum/stat"
)

// Segment is a fixed-length window of a half-profile together with its
// ordinary-least-squares line. Slope and intercept are derived from the
// window, never set independently.
type Segment struct {
	Start     int // Window start index within the half-profile
	X         []float64
	Y         []float64
	Slope     float64
	Intercept float64
}

func fitSegment(x, y []float64, start, length int) Segment {
	sx := x[start : start+length]
	sy := y[start : start+length]
	alpha, beta := stat.LinearRegression(sx, sy, nil, false)
	return Segment{
		Start:     start,
		X:         sx,
		Y:         sy,
		Slope:     beta,
		Intercept: alpha,
	}
}
