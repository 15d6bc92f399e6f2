package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds every tunable of the profile analysis pipeline. A Params
// value is built once (from flags or a YAML file), validated, and then
// treated as immutable by everything downstream.
type Params struct {
	// Valley detection
	ValleyProminence  float64 `yaml:"valley_prominence"`   // Minimum prominence for a local minimum to count as a valley
	ParabolaHalfWidth int     `yaml:"parabola_half_width"` // Samples taken on each side of the valley for the parabola fit

	// Segment search
	PlateauWindow  int `yaml:"plateau_window"`  // Window length for the horizontal-segment search
	GradientWindow int `yaml:"gradient_window"` // Window length for the steepest-gradient search

	// Profile handling
	SplitGap   int `yaml:"split_gap"`   // Samples excluded on each side of the valley when splitting into halves
	MinSamples int `yaml:"min_samples"` // Profiles shorter than this are rejected outright

	// Unit conversion
	PositioningScale float64 `yaml:"positioning_scale"` // Ratio -> physical offset (um) for the batch aggregator
	PixelScale       float64 `yaml:"pixel_scale"`       // Pixels -> physical width; sibling constant for width measurements

	// Legacy two-peaks estimator
	SmoothingSigma float64 `yaml:"smoothing_sigma"` // Gaussian sigma applied before peak picking

	// Single-column profile files get a synthetic x axis over [0, SyntheticXMax]
	SyntheticXMax float64 `yaml:"synthetic_x_max"`
}

// Default returns the parameter set used by the measurement scripts.
func Default() Params {
	return Params{
		ValleyProminence:  0.5,
		ParabolaHalfWidth: 3,
		PlateauWindow:     9,
		GradientWindow:    3,
		SplitGap:          6,
		MinSamples:        10,
		PositioningScale:  3000,
		PixelScale:        12.5,
		SmoothingSigma:    2,
		SyntheticXMax:     5,
	}
}

// Load reads Params from a YAML file. Fields left at their zero value
// fall back to the defaults, so a partial config file is fine.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p *Params) applyDefaults() {
	d := Default()
	if p.ValleyProminence == 0 {
		p.ValleyProminence = d.ValleyProminence
	}
	if p.ParabolaHalfWidth == 0 {
		p.ParabolaHalfWidth = d.ParabolaHalfWidth
	}
	if p.PlateauWindow == 0 {
		p.PlateauWindow = d.PlateauWindow
	}
	if p.GradientWindow == 0 {
		p.GradientWindow = d.GradientWindow
	}
	if p.SplitGap == 0 {
		p.SplitGap = d.SplitGap
	}
	if p.MinSamples == 0 {
		p.MinSamples = d.MinSamples
	}
	if p.PositioningScale == 0 {
		p.PositioningScale = d.PositioningScale
	}
	if p.PixelScale == 0 {
		p.PixelScale = d.PixelScale
	}
	if p.SmoothingSigma == 0 {
		p.SmoothingSigma = d.SmoothingSigma
	}
	if p.SyntheticXMax == 0 {
		p.SyntheticXMax = d.SyntheticXMax
	}
}

// Validate rejects parameter sets that would misbehave on every input.
// A bad window size is a configuration bug, not a per-file condition,
// so it fails fast before any profile is read.
func (p Params) Validate() error {
	if p.ValleyProminence < 0 {
		return fmt.Errorf("valley_prominence must be >= 0, got %g", p.ValleyProminence)
	}
	if p.ParabolaHalfWidth < 1 {
		return fmt.Errorf("parabola_half_width must be >= 1, got %d", p.ParabolaHalfWidth)
	}
	if p.PlateauWindow < 2 {
		return fmt.Errorf("plateau_window must be >= 2, got %d", p.PlateauWindow)
	}
	if p.GradientWindow < 2 {
		return fmt.Errorf("gradient_window must be >= 2, got %d", p.GradientWindow)
	}
	if p.SplitGap < 0 {
		return fmt.Errorf("split_gap must be >= 0, got %d", p.SplitGap)
	}
	if p.MinSamples < 3 {
		return fmt.Errorf("min_samples must be >= 3, got %d", p.MinSamples)
	}
	if p.PositioningScale <= 0 {
		return fmt.Errorf("positioning_scale must be > 0, got %g", p.PositioningScale)
	}
	if p.PixelScale <= 0 {
		return fmt.Errorf("pixel_scale must be > 0, got %g", p.PixelScale)
	}
	if p.SmoothingSigma <= 0 {
		return fmt.Errorf("smoothing_sigma must be > 0, got %g", p.SmoothingSigma)
	}
	if p.SyntheticXMax <= 0 {
		return fmt.Errorf("synthetic_x_max must be > 0, got %g", p.SyntheticXMax)
	}
	return nil
}

// Write saves the effective parameters as YAML.
func (p Params) Write(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
