// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shade splits a sampled curve at a pair of x cutoffs so the
// area under the curve between them can be filled.
//
// Split returns the curve itself and a floor curve that follows it
// outside the cutoffs and drops to zero between them. Filling the
// area between the two paints exactly the region between the
// cutoffs, with vertical edges at the boundary samples.
package shade

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidRange is returned when upper < lower or either
	// cutoff is NaN.
	ErrInvalidRange = errors.New("shade: invalid cutoff range")

	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("shade: x and y lengths differ")

	// ErrEmpty is returned for a curve with no samples.
	ErrEmpty = errors.New("shade: empty curve")

	// ErrUnsorted is returned when x is not ascending.
	ErrUnsorted = errors.New("shade: x is not ascending")
)

// Region is a curve split for shading. X, Value and Floor all have
// two more elements than the input curve.
type Region struct {
	// X is the input x with the last sample at or below the lower
	// cutoff and the first sample at or above the upper cutoff
	// each repeated once.
	X []float64

	// Value is the curve's y at each X.
	Value []float64

	// Floor equals Value outside the cutoffs and is 0 between
	// them, including at the two repeated samples.
	Floor []float64

	lo, hi int // indexes of the repeated samples
}

// Len returns the number of points in r.
func (r *Region) Len() int { return len(r.X) }

// Inserted reports whether index i of r is one of the two repeated
// boundary samples.
func (r *Region) Inserted(i int) bool { return i == r.lo || i == r.hi }

// Split splits the curve (x, y) at lower and upper.
//
// Samples with x <= lower lie below the shaded region and samples
// with x >= upper lie above it; a sample that equals a cutoff is
// therefore never shaded. If lower == upper and a sample sits exactly
// on the cutoff, it is counted below only.
//
// If no sample lies at or below lower, the first sample is repeated
// for the lower edge. Likewise the last sample is repeated when none
// lies at or above upper. The result always has len(x)+2 points.
//
// x must be ascending. Split does not modify x or y.
func Split(x, y []float64, lower, upper float64) (*Region, error) {
	switch {
	case math.IsNaN(lower) || math.IsNaN(upper) || upper < lower:
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lower, upper)
	case len(x) != len(y):
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	case len(x) == 0:
		return nil, ErrEmpty
	case !sort.Float64sAreSorted(x):
		return nil, ErrUnsorted
	}

	n := len(x)
	i1 := sort.Search(n, func(i int) bool { return x[i] > lower })
	i2 := max(i1, sort.Search(n, func(i int) bool { return x[i] >= upper }))

	// Indexes of the samples to repeat.
	lo, hi := max(i1-1, 0), min(i2, n-1)

	r := &Region{
		X:     splice(x, i1, i2, x[lo], x[hi]),
		Value: splice(y, i1, i2, y[lo], y[hi]),
		Floor: make([]float64, 0, n+2),
		lo:    i1,
		hi:    i2 + 1,
	}
	r.Floor = append(r.Floor, y[:i1]...)
	r.Floor = append(r.Floor, make([]float64, i2-i1+2)...)
	r.Floor = append(r.Floor, y[i2:]...)
	return r, nil
}

// splice returns vs[:i1] ++ a ++ vs[i1:i2] ++ b ++ vs[i2:].
func splice(vs []float64, i1, i2 int, a, b float64) []float64 {
	out := make([]float64, 0, len(vs)+2)
	out = append(out, vs[:i1]...)
	out = append(out, a)
	out = append(out, vs[i1:i2]...)
	out = append(out, b)
	return append(out, vs[i2:]...)
}
