package analyze

import "math"

// ProminentPeaks returns the indices of local maxima whose prominence is
// at least the given threshold, in ascending index order. Flat-topped
// maxima report the middle sample of the plateau.
//
// Prominence is the height of a peak above the higher of its two bases,
// where each base is the lowest sample between the peak and the nearest
// higher ground (or the signal edge) on that side.
func ProminentPeaks(y []float64, prominence float64) []int {
	var out []int
	for _, p := range localMaxima(y) {
		if peakProminence(y, p) >= prominence {
			out = append(out, p)
		}
	}
	return out
}

// ProminentValleys is ProminentPeaks on the inverted signal.
func ProminentValleys(y []float64, prominence float64) []int {
	inv := make([]float64, len(y))
	for i, v := range y {
		inv[i] = -v
	}
	return ProminentPeaks(inv, prominence)
}

func localMaxima(y []float64) []int {
	var peaks []int
	n := len(y)
	i := 1
	for i < n-1 {
		if y[i-1] < y[i] {
			// Skip over a flat top; the peak only counts if the signal
			// drops on the far side.
			ahead := i + 1
			for ahead < n-1 && y[ahead] == y[i] {
				ahead++
			}
			if y[ahead] < y[i] {
				peaks = append(peaks, (i+ahead-1)/2)
				i = ahead
				continue
			}
		}
		i++
	}
	return peaks
}

func peakProminence(y []float64, peak int) float64 {
	leftMin := y[peak]
	for i := peak; i >= 0 && y[i] <= y[peak]; i-- {
		if y[i] < leftMin {
			leftMin = y[i]
		}
	}
	rightMin := y[peak]
	for i := peak; i < len(y) && y[i] <= y[peak]; i++ {
		if y[i] < rightMin {
			rightMin = y[i]
		}
	}
	return y[peak] - math.Max(leftMin, rightMin)
}
