package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/timDcarlson/Shield-Alignment/pkg/analyze"
	"github.com/timDcarlson/Shield-Alignment/pkg/batch"
	"github.com/timDcarlson/Shield-Alignment/pkg/profile"
)

// runAnalyzeCmd handles "shield-align analyze -file <profile>".
func runAnalyzeCmd() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	f := SetupFlags(fs)
	fs.Parse(os.Args[2:])

	if *f.File == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}
	cfg, err := f.LoadParams()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	f.MaybeWriteConfig(cfg)

	log := newLogger(*f.Debug)
	defer log.Sync()

	an, err := analyze.New(cfg, log)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p, err := profile.Load(*f.File, cfg.SyntheticXMax)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	res, err := an.Analyze(p)
	if err != nil {
		fmt.Printf("Profile cannot be scored: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Profile: %s (%d samples)\n", *f.File, p.Len())
	if res.Valley.Degraded {
		fmt.Printf("Valley:  index %d, x=%.4f (global minimum, no prominent valley)\n", res.Valley.Index, res.Valley.X)
	} else {
		fmt.Printf("Valley:  index %d, x=%.4f\n", res.Valley.Index, res.Valley.X)
	}
	fmt.Printf("Parabola: a=%.6g b=%.6g c=%.6g, vertex=(%.4f, %.4f)\n",
		res.Fit.A, res.Fit.B, res.Fit.C, res.Fit.VertexX, res.Fit.VertexY)
	fmt.Printf("First half:  plateau start %d (slope %.4g), rising edge x=%.4f, falling edge x=%.4f\n",
		res.First.Plateau.Start, res.First.Plateau.Slope, res.First.PosEdgeX, res.First.NegEdgeX)
	fmt.Printf("Second half: plateau start %d (slope %.4g), rising edge x=%.4f, falling edge x=%.4f\n",
		res.Second.Plateau.Start, res.Second.Plateau.Slope, res.Second.PosEdgeX, res.Second.NegEdgeX)
	fmt.Printf("Outer ratios: left=%.4f right=%.4f\n", res.Outer.Left, res.Outer.Right)
	fmt.Printf("Inner ratios: left=%.4f right=%.4f\n", res.Inner.Left, res.Inner.Right)
	fmt.Printf("Distance: %.4f (offset %.4fum)\n", res.Distance, cfg.PositioningScale*(res.Distance-0.5))
}

// runBatchCmd handles "shield-align batch -dir <folder>".
func runBatchCmd() {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	f := SetupFlags(fs)
	fs.Parse(os.Args[2:])

	if *f.Dir == "" {
		fmt.Println("Error: -dir is required")
		os.Exit(1)
	}
	cfg, err := f.LoadParams()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	f.MaybeWriteConfig(cfg)

	log := newLogger(*f.Debug)
	defer log.Sync()

	an, err := analyze.New(cfg, log)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	runner := batch.New(an, cfg, log, *f.Workers)

	fmt.Printf("Distances for folder %s.\n", *f.Dir)
	summaries, err := runner.Run(context.Background(), *f.Dir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, s := range summaries {
		fmt.Printf("\n--- Group %d (%d files, %d scored) ---\n", s.Group, s.Files, s.Scored)
		if s.Scored == 0 {
			fmt.Printf("No valid distances found for Group %d.\n", s.Group)
			continue
		}
		fmt.Printf("Average Distance for Group %d: %.4fum (%s)\n", s.Group, math.Abs(s.Offset), s.Direction)
		fmt.Printf("Distance ratios: mean=%.4f median=%.4f stddev=%.4f\n", s.MeanDistance, s.Median, s.StdDev)
		fmt.Printf("Offset spread:   p50=%.1fum p90=%.1fum max=%.1fum\n", s.P50Offset, s.P90Offset, s.MaxOffset)
	}
}

// runLegacyCmd handles "shield-align legacy -dir <folder>".
func runLegacyCmd() {
	fs := flag.NewFlagSet("legacy", flag.ExitOnError)
	f := SetupFlags(fs)
	fs.Parse(os.Args[2:])

	if *f.Dir == "" {
		fmt.Println("Error: -dir is required")
		os.Exit(1)
	}
	cfg, err := f.LoadParams()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(*f.Debug)
	defer log.Sync()

	an, err := analyze.New(cfg, log)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	runner := batch.New(an, cfg, log, *f.Workers)

	summaries, err := runner.RunLegacy(context.Background(), *f.Dir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, s := range summaries {
		if s.Scored == 0 {
			fmt.Printf("\nNo valid positioning differences calculated for Group %d.\n", s.Group)
			continue
		}
		fmt.Printf("\nAverage Positioning Difference for Group %d: %.3fum\n", s.Group, s.MeanDifference)
	}
}
