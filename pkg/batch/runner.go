package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/timDcarlson/Shield-Alignment/pkg/analyze"
	"github.com/timDcarlson/Shield-Alignment/pkg/config"
	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// Runner walks a folder of row-profile files, scores each one with the
// Analyzer, and aggregates per group. Files are independent, so they are
// processed in parallel with a bounded number of workers; the numeric
// core itself stays synchronous.
type Runner struct {
	an      *analyze.Analyzer
	cfg     config.Params
	log     *zap.SugaredLogger
	workers int64
}

// New builds a Runner. workers <= 0 falls back to serial processing.
func New(an *analyze.Analyzer, cfg config.Params, logger *zap.SugaredLogger, workers int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Runner{an: an, cfg: cfg, log: logger, workers: int64(workers)}
}

// FileResult is the outcome for a single profile file. Err is non-nil
// when the file could not be scored; such files are excluded from the
// group aggregate but never abort the run.
type FileResult struct {
	Path     string
	Distance float64
	Degraded bool
	Err      error
}

// groupNumber extracts the three-digit number from a profile filename.
var groupNumber = regexp.MustCompile(`\b(\d{3})\b`)

// DiscoverGroups finds *Profile.txt files in dir and buckets them by the
// first digit of the three-digit number in their names. Only groups 1-4
// are recognized; anything else is ignored, matching the naming scheme
// of the acquisition side.
func DiscoverGroups(dir string) (map[int][]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*Profile.txt"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no profile files found in %s", dir)
	}

	groups := make(map[int][]string)
	for _, f := range files {
		m := groupNumber.FindStringSubmatch(filepath.Base(f))
		if m == nil {
			continue
		}
		digit := int(m[1][0] - '0')
		if digit >= 1 && digit <= 4 {
			groups[digit] = append(groups[digit], f)
		}
	}
	for _, fs := range groups {
		sort.Strings(fs)
	}
	return groups, nil
}

// Run analyzes every discovered group and returns summaries in group
// order. A group with no scorable files produces a summary with
// Scored == 0 rather than an error.
func (r *Runner) Run(ctx context.Context, dir string) ([]GroupSummary, error) {
	groups, err := DiscoverGroups(dir)
	if err != nil {
		return nil, err
	}

	var out []GroupSummary
	for _, g := range sortedKeys(groups) {
		results, err := r.processFiles(ctx, groups[g])
		if err != nil {
			return nil, err
		}
		out = append(out, r.summarize(g, results))
	}
	return out, nil
}

func (r *Runner) processFiles(ctx context.Context, files []string) ([]FileResult, error) {
	results := make([]FileResult, len(files))
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
			results[i] = r.processFile(path)
		}(i, path)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			r.log.Infow("profile skipped", "file", filepath.Base(res.Path), "reason", res.Err)
		}
	}
	return results, nil
}

func (r *Runner) processFile(path string) FileResult {
	res := FileResult{Path: path}
	p, err := profile.Load(path, r.cfg.SyntheticXMax)
	if err != nil {
		res.Err = err
		return res
	}
	a, err := r.an.Analyze(p)
	if err != nil {
		res.Err = err
		return res
	}
	res.Distance = a.Distance
	res.Degraded = a.Valley.Degraded
	return res
}

func sortedKeys(m map[int][]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
