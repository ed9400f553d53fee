package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ronrest/rstats/stats"
)

// fields splits a line on whitespace and commas.
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// readSample reads numbers from r, any number per line.
func readSample(r io.Reader) (sample stats.Sample, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		for _, f := range fields(scanner.Text()) {
			value, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return sample, fmt.Errorf("line %d: %w", line, err)
			}
			sample.Xs = append(sample.Xs, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return sample, err
	}
	if len(sample.Xs) == 0 {
		return sample, fmt.Errorf("no input values")
	}
	return sample, nil
}

// readCurve reads "x y" pairs from r, one per line.
func readCurve(r io.Reader) (x, y []float64, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fs := fields(scanner.Text())
		if len(fs) == 0 {
			continue
		}
		if len(fs) != 2 {
			return nil, nil, fmt.Errorf("line %d: want x and y, got %d fields", line, len(fs))
		}
		xv, err := strconv.ParseFloat(fs[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		yv, err := strconv.ParseFloat(fs[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		x, y = append(x, xv), append(y, yv)
	}
	return x, y, scanner.Err()
}
