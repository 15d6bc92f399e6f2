package batch

import (
	"math"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/montanaflynn/stats"
)

// GroupSummary aggregates the per-file distances of one filename group
// into the signed physical positioning offset, plus descriptive
// statistics over the scored files.
type GroupSummary struct {
	Group  int
	Files  int // Files discovered in the group
	Scored int // Files that produced a valid distance

	MeanDistance float64 // Mean of the raw per-file ratios
	Offset       float64 // PositioningScale * (mean - 0.5), in um
	Direction    string  // "left" or "right", from the sign of Offset

	// Spread of the scored distances
	StdDev float64
	Median float64

	// Quantiles of the absolute per-file offsets, in um
	P50Offset float64
	P90Offset float64
	MaxOffset float64
}

// maxOffsetNm bounds the spread histogram: the positioning scale caps
// the per-file offset magnitude at PositioningScale/2 um, and the
// ratios can only exceed [0,1] mildly on malformed shoulders.
const maxOffsetNm = 100_000_000

func (r *Runner) summarize(group int, results []FileResult) GroupSummary {
	s := GroupSummary{Group: group, Files: len(results)}

	var distances []float64
	hist := hdrhistogram.New(1, maxOffsetNm, 3)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		distances = append(distances, res.Distance)
		nm := int64(math.Round(math.Abs(r.cfg.PositioningScale*(res.Distance-0.5)) * 1000))
		if nm < 1 {
			nm = 1
		}
		if nm > maxOffsetNm {
			nm = maxOffsetNm
		}
		hist.RecordValue(nm)
	}
	s.Scored = len(distances)
	if s.Scored == 0 {
		return s
	}

	s.MeanDistance, _ = stats.Mean(distances)
	s.StdDev, _ = stats.StandardDeviation(distances)
	s.Median, _ = stats.Median(distances)

	s.Offset = r.cfg.PositioningScale * (s.MeanDistance - 0.5)
	if s.Offset > 0 {
		s.Direction = "right"
	} else {
		s.Direction = "left"
	}

	s.P50Offset = float64(hist.ValueAtQuantile(50)) / 1000
	s.P90Offset = float64(hist.ValueAtQuantile(90)) / 1000
	s.MaxOffset = float64(hist.Max()) / 1000
	return s
}
