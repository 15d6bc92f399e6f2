package analyze

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/timDcarlson/Shield-Alignment/pkg/config"
	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// Analyzer runs the full trapezoidal-profile measurement on one profile
// at a time. It holds no mutable state between calls, so a single
// Analyzer may be shared across goroutines by a batch orchestrator.
type Analyzer struct {
	cfg config.Params
	log *zap.SugaredLogger
}

// New builds an Analyzer. The parameter set is validated up front; a bad
// window size would break every profile, so it is a hard error here.
// A nil logger is replaced with a no-op one.
func New(cfg config.Params, logger *zap.SugaredLogger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Analyzer{cfg: cfg, log: logger}, nil
}

// Half holds the estimators' output for one side of the valley.
type Half struct {
	Plateau  Segment
	Positive Segment // Steepest rising window
	Negative Segment // Steepest falling window

	PosEdgeX float64 // Where the rising line crosses the plateau's mean height
	NegEdgeX float64 // Where the falling line crosses the plateau's mean height
}

// Result carries the scalar measurement plus every intermediate, so a
// visualizer or debugging session can inspect exactly what was fitted.
type Result struct {
	Valley Valley
	Fit    ParabolaFit

	First  Half // Samples left of the valley, minus the exclusion zone
	Second Half // Samples right of the valley, minus the exclusion zone

	Outer Ratios
	Inner Ratios

	// Distance is the per-profile positioning scalar, (Outer.Left +
	// Inner.Left) / 2. The left-side pair is the representative pair
	// by convention of the measurement scripts this tool replaces.
	Distance float64
}

// Analyze runs the whole pipeline on one profile. Any stage that cannot
// produce a valid value returns a wrapped sentinel error; the caller
// treats that as "this profile cannot be scored" and moves on.
func (a *Analyzer) Analyze(p profile.Profile) (Result, error) {
	var res Result

	if p.Len() < a.cfg.MinSamples {
		return res, fmt.Errorf("%w: %d samples, need at least %d", ErrInsufficientData, p.Len(), a.cfg.MinSamples)
	}

	valley, fit, err := a.locateValley(p)
	res.Valley = valley
	if err != nil {
		return res, err
	}
	res.Fit = fit

	// Split at the valley sample, excluding SplitGap samples on each
	// side so the sloped walls near the minimum never leak into the
	// plateau or gradient searches.
	lo := valley.Index - a.cfg.SplitGap
	if lo < 0 {
		lo = 0
	}
	hi := valley.Index + a.cfg.SplitGap
	if hi > p.Len() {
		hi = p.Len()
	}

	res.First, err = a.analyzeHalf(p.X[:lo], p.Y[:lo])
	if err != nil {
		return res, fmt.Errorf("first half: %w", err)
	}
	res.Second, err = a.analyzeHalf(p.X[hi:], p.Y[hi:])
	if err != nil {
		return res, fmt.Errorf("second half: %w", err)
	}

	res.Outer = OuterDistance(res.First.PosEdgeX, res.Second.NegEdgeX, fit.VertexX)
	res.Inner = InnerDistance(res.First.NegEdgeX, res.Second.PosEdgeX, fit.VertexX)
	res.Distance = (res.Outer.Left + res.Inner.Left) / 2
	return res, nil
}

func (a *Analyzer) analyzeHalf(x, y []float64) (Half, error) {
	var h Half
	var err error

	h.Plateau, err = FindPlateau(x, y, a.cfg.PlateauWindow)
	if err != nil {
		return h, fmt.Errorf("plateau: %w", err)
	}
	h.Positive, h.Negative, err = FindGradients(x, y, a.cfg.GradientWindow)
	if err != nil {
		return h, fmt.Errorf("gradients: %w", err)
	}
	h.PosEdgeX, err = Intersect(h.Positive.Slope, h.Positive.Intercept, h.Plateau.Y)
	if err != nil {
		return h, fmt.Errorf("rising edge: %w", err)
	}
	h.NegEdgeX, err = Intersect(h.Negative.Slope, h.Negative.Intercept, h.Plateau.Y)
	if err != nil {
		return h, fmt.Errorf("falling edge: %w", err)
	}
	return h, nil
}
