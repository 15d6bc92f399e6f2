package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/timDcarlson/Shield-Alignment/pkg/config"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "analyze":
			runAnalyzeCmd()
			return
		case "batch":
			runBatchCmd()
			return
		case "legacy":
			runLegacyCmd()
			return
		}
	}

	fmt.Println("usage: shield-align <analyze|batch|legacy> [flags]")
	fmt.Println("  analyze -file <profile>   score a single row profile with full diagnostics")
	fmt.Println("  batch   -dir <folder>     score and aggregate all *Profile.txt files by group")
	fmt.Println("  legacy  -dir <folder>     run the older two-peaks positioning heuristic")
	os.Exit(1)
}

// Flags holds pointers to all supported CLI flags.
type Flags struct {
	// Config file (optional)
	ConfigFile  *string
	WriteConfig *string
	Debug       *bool

	// Parameter overrides
	Prominence     *float64
	FitHalfWidth   *int
	PlateauWindow  *int
	GradientWindow *int
	SplitGap       *int
	Scale          *float64

	// Inputs
	File    *string
	Dir     *string
	Workers *int
}

func SetupFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	f.ConfigFile = fs.String("config", "", "Path to a YAML parameter file (flags below still override)")
	f.WriteConfig = fs.String("write-config", "", "Save the effective parameters to this YAML file")
	f.Debug = fs.Bool("debug", false, "Verbose, development-style logging")

	f.Prominence = fs.Float64("prominence", 0, "Valley prominence threshold")
	f.FitHalfWidth = fs.Int("fit-halfwidth", 0, "Samples each side of the valley for the parabola fit")
	f.PlateauWindow = fs.Int("plateau-window", 0, "Window length for the horizontal-segment search")
	f.GradientWindow = fs.Int("gradient-window", 0, "Window length for the steepest-gradient search")
	f.SplitGap = fs.Int("split-gap", 0, "Samples excluded each side of the valley when splitting")
	f.Scale = fs.Float64("scale", 0, "Positioning scale factor (ratio to um)")

	f.File = fs.String("file", "", "Single row-profile file to analyze")
	f.Dir = fs.String("dir", "", "Folder containing row-profile files")
	f.Workers = fs.Int("workers", 4, "Parallel file workers in batch mode")
	return f
}

// LoadParams resolves the parameter set: config file if given, defaults
// otherwise, with any explicitly set flags layered on top.
func (f *Flags) LoadParams() (config.Params, error) {
	cfg := config.Default()
	if *f.ConfigFile != "" {
		loaded, err := config.Load(*f.ConfigFile)
		if err != nil {
			return config.Params{}, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg = loaded
	}

	if *f.Prominence != 0 {
		cfg.ValleyProminence = *f.Prominence
	}
	if *f.FitHalfWidth != 0 {
		cfg.ParabolaHalfWidth = *f.FitHalfWidth
	}
	if *f.PlateauWindow != 0 {
		cfg.PlateauWindow = *f.PlateauWindow
	}
	if *f.GradientWindow != 0 {
		cfg.GradientWindow = *f.GradientWindow
	}
	if *f.SplitGap != 0 {
		cfg.SplitGap = *f.SplitGap
	}
	if *f.Scale != 0 {
		cfg.PositioningScale = *f.Scale
	}

	if err := cfg.Validate(); err != nil {
		return config.Params{}, err
	}
	return cfg, nil
}

func (f *Flags) MaybeWriteConfig(cfg config.Params) {
	if *f.WriteConfig == "" {
		return
	}
	if err := cfg.Write(*f.WriteConfig); err != nil {
		fmt.Printf("Warning: failed to write config file: %v\n", err)
		return
	}
	fmt.Printf("Parameters written to %s\n", *f.WriteConfig)
}

// newLogger builds the process logger. Errors here are unrecoverable.
func newLogger(debug bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Printf("can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	return logger.Sugar()
}
