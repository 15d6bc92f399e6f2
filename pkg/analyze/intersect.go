package analyze

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Intersect solves for the x where the line y = slope*x + intercept
// reaches the mean height of the plateau samples. This is the
// well-defined "edge location" of a sloped transition.
func Intersect(slope, intercept float64, plateauY []float64) (float64, error) {
	if len(plateauY) == 0 {
		return 0, fmt.Errorf("%w: plateau has no samples", ErrMissingInput)
	}
	if slope == 0 {
		return 0, fmt.Errorf("%w: line is horizontal", ErrNoIntersection)
	}
	mean := stat.Mean(plateauY, nil)
	return (mean - intercept) / slope, nil
}
