package profile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a row-profile text file. Two producer formats exist and both
// are accepted:
//
//	two columns:  "x y" per line, whitespace separated
//	one column:   "y" per line; x becomes a linear ramp over [0, xMax]
//
// The format is decided by the first non-blank line and must stay
// consistent for the rest of the file.
func Load(path string, xMax float64) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, err
	}
	defer f.Close()

	var xs, ys []float64
	columns := 0

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if columns == 0 {
			columns = len(fields)
			if columns != 1 && columns != 2 {
				return Profile{}, fmt.Errorf("%s:%d: expected 1 or 2 columns, got %d", path, lineNo, len(fields))
			}
		}
		if len(fields) != columns {
			return Profile{}, fmt.Errorf("%s:%d: expected %d columns, got %d", path, lineNo, columns, len(fields))
		}
		vals := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Profile{}, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			vals[i] = v
		}
		if columns == 2 {
			xs = append(xs, vals[0])
			ys = append(ys, vals[1])
		} else {
			ys = append(ys, vals[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return Profile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(ys) == 0 {
		return Profile{}, fmt.Errorf("%s: no samples", path)
	}

	if columns == 1 {
		xs = Linspace(0, xMax, len(ys))
	}
	p, err := FromSamples(xs, ys)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
