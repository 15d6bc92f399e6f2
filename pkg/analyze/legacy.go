package analyze

import (
	"fmt"
	"sort"

	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// TwoPeaksResult is the output of the older whole-profile positioning
// heuristic, kept for comparison against the trapezoidal pipeline.
type TwoPeaksResult struct {
	LeftPeakX  float64
	RightPeakX float64
	ValleyX    float64

	LeftPositioning  float64 // Scaled valley offset from the left peak
	RightPositioning float64 // Scaled valley offset from the right peak
	Difference       float64 // |left - right| / 2
}

// AnalyzeTwoPeaks runs the legacy estimator: smooth the profile, take
// the two highest prominent peaks, find the lowest prominent valley, and
// position the valley relative to the peak on each side. No parabola
// refinement and no edge fitting; it reads the whole profile at once.
func (a *Analyzer) AnalyzeTwoPeaks(p profile.Profile) (TwoPeaksResult, error) {
	var res TwoPeaksResult

	if p.Len() < a.cfg.MinSamples {
		return res, fmt.Errorf("%w: %d samples, need at least %d", ErrInsufficientData, p.Len(), a.cfg.MinSamples)
	}

	smoothed := profile.GaussianSmooth(p.Y, a.cfg.SmoothingSigma)

	peaks := ProminentPeaks(smoothed, a.cfg.ValleyProminence)
	if len(peaks) < 2 {
		return res, fmt.Errorf("%w: found %d prominent peaks, need 2", ErrInsufficientData, len(peaks))
	}
	// Two highest peaks, tallest first.
	sort.SliceStable(peaks, func(i, j int) bool {
		return smoothed[peaks[i]] > smoothed[peaks[j]]
	})
	top := peaks[:2]

	valleys := ProminentValleys(smoothed, a.cfg.ValleyProminence)
	if len(valleys) == 0 {
		return res, fmt.Errorf("%w: no prominent valley between the peaks", ErrInsufficientData)
	}
	lowest := valleys[0]
	for _, idx := range valleys[1:] {
		if smoothed[idx] < smoothed[lowest] {
			lowest = idx
		}
	}
	res.ValleyX = p.X[lowest]

	// Right peak: the taller candidate beyond the valley. Left peak: the
	// rightmost candidate before it.
	rightFound, leftFound := false, false
	for _, idx := range top {
		if p.X[idx] > res.ValleyX {
			res.RightPeakX = p.X[idx]
			rightFound = true
			break
		}
	}
	byXDesc := append([]int(nil), top...)
	sort.Slice(byXDesc, func(i, j int) bool { return p.X[byXDesc[i]] > p.X[byXDesc[j]] })
	for _, idx := range byXDesc {
		if p.X[idx] < res.ValleyX {
			res.LeftPeakX = p.X[idx]
			leftFound = true
			break
		}
	}
	if !leftFound || !rightFound {
		return res, fmt.Errorf("%w: valley is not flanked by peaks on both sides", ErrMissingInput)
	}

	span := res.RightPeakX - res.LeftPeakX
	res.LeftPositioning = a.cfg.PositioningScale * (res.ValleyX - res.LeftPeakX) / span
	res.RightPositioning = a.cfg.PositioningScale * (res.RightPeakX - res.ValleyX) / span
	if res.LeftPositioning > res.RightPositioning {
		res.Difference = (res.LeftPositioning - res.RightPositioning) / 2
	} else {
		res.Difference = (res.RightPositioning - res.LeftPositioning) / 2
	}
	return res, nil
}
