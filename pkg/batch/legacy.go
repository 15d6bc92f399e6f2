package batch

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"

	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// LegacyGroupSummary aggregates the two-peaks heuristic across a group.
// Unlike the trapezoidal pipeline there is no recentering: the heuristic
// already reports an absolute positioning difference in um.
type LegacyGroupSummary struct {
	Group  int
	Files  int
	Scored int

	MeanDifference float64
}

// RunLegacy scores every group with the two-peaks estimator.
func (r *Runner) RunLegacy(ctx context.Context, dir string) ([]LegacyGroupSummary, error) {
	groups, err := DiscoverGroups(dir)
	if err != nil {
		return nil, err
	}

	var out []LegacyGroupSummary
	for _, g := range sortedKeys(groups) {
		files := groups[g]
		diffs := make([]float64, len(files))
		ok := make([]bool, len(files))

		sem := semaphore.NewWeighted(r.workers)
		var wg sync.WaitGroup
		for i, path := range files {
			if err := sem.Acquire(ctx, 1); err != nil {
				return nil, err
			}
			wg.Add(1)
			go func(i int, path string) {
				defer sem.Release(1)
				defer wg.Done()
				p, err := profile.Load(path, r.cfg.SyntheticXMax)
				if err != nil {
					r.log.Infow("profile skipped by legacy estimator", "file", filepath.Base(path), "reason", err)
					return
				}
				tp, err := r.an.AnalyzeTwoPeaks(p)
				if err != nil {
					r.log.Infow("profile skipped by legacy estimator", "file", filepath.Base(path), "reason", err)
					return
				}
				diffs[i] = tp.Difference
				ok[i] = true
			}(i, path)
		}
		wg.Wait()

		s := LegacyGroupSummary{Group: g, Files: len(files)}
		var scored []float64
		for i, valid := range ok {
			if valid {
				scored = append(scored, diffs[i])
			}
		}
		s.Scored = len(scored)
		if s.Scored > 0 {
			s.MeanDifference, _ = stats.Mean(scored)
		}
		out = append(out, s)
	}
	return out, nil
}
