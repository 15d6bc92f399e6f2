package analyze

import (
	"fmt"

	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// Valley is the profile's dominant local minimum.
type Valley struct {
	Index int     // Sample index of the detected minimum
	X     float64 // Position of that sample

	// Degraded is set when no valley met the prominence threshold and
	// the global minimum was used instead. The measurement is still
	// produced, just with lower confidence.
	Degraded bool
}

// locateValley finds the dominant valley and refines it to sub-sample
// precision with a parabola fit over a symmetric window around it.
func (a *Analyzer) locateValley(p profile.Profile) (Valley, ParabolaFit, error) {
	valleys := ProminentValleys(p.Y, a.cfg.ValleyProminence)

	var v Valley
	if len(valleys) == 0 {
		v = Valley{Index: profile.ArgMin(p.Y), Degraded: true}
		a.log.Warnw("no valley met the prominence threshold, using global minimum",
			"prominence", a.cfg.ValleyProminence, "index", v.Index)
	} else {
		// The dominant valley is the one with the lowest y.
		best := valleys[0]
		for _, idx := range valleys[1:] {
			if p.Y[idx] < p.Y[best] {
				best = idx
			}
		}
		v = Valley{Index: best}
	}
	v.X = p.X[v.Index]

	lo := v.Index - a.cfg.ParabolaHalfWidth
	if lo < 0 {
		lo = 0
	}
	hi := v.Index + a.cfg.ParabolaHalfWidth + 1
	if hi > p.Len() {
		hi = p.Len()
	}
	if hi-lo < 3 {
		return v, ParabolaFit{}, fmt.Errorf("%w: only %d samples around valley index %d", ErrInsufficientData, hi-lo, v.Index)
	}

	fit, err := FitParabola(p.X[lo:hi], p.Y[lo:hi])
	if err != nil {
		return v, ParabolaFit{}, fmt.Errorf("refining valley at index %d: %w", v.Index, err)
	}
	return v, fit, nil
}
