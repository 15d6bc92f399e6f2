package profile

import "math"

// GaussianSmooth convolves y with a normalized Gaussian kernel of the
// given sigma, clamping at the edges (nearest-neighbor padding). The
// kernel spans six sigma, enough to cover essentially all of the weight.
func GaussianSmooth(y []float64, sigma float64) []float64 {
	size := int(math.Ceil(sigma * 6))
	if size%2 == 0 {
		size++
	}
	half := size / 2

	kernel := make([]float64, size)
	sum := 0.0
	for i := range kernel {
		d := float64(i - half)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	smoothed := make([]float64, len(y))
	for i := range y {
		acc := 0.0
		for j, w := range kernel {
			idx := i + j - half
			if idx < 0 {
				idx = 0
			} else if idx >= len(y) {
				idx = len(y) - 1
			}
			acc += y[idx] * w
		}
		smoothed[i] = acc
	}
	return smoothed
}
