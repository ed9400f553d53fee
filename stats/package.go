// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides R-style probability distributions and
// descriptive statistics.
//
// Every parametric distribution delegates its numerics to
// gonum.org/v1/gonum/stat/distuv. Distributions are selected with a
// Kind and configured with Params, and all of them expose the same
// set of operations: density (R's d*), cumulative probability (p*),
// quantile (q*), random variates (r*) and confidence interval
// cutoffs (ConfInt).
package stats // import "github.com/ronrest/rstats/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInvalidParam is returned when a distribution parameter is
	// outside its domain.
	ErrInvalidParam = errors.New("invalid distribution parameter")

	// ErrInvalidConfidence is returned when a confidence level is
	// not in (0, 1).
	ErrInvalidConfidence = errors.New("confidence level must be in (0, 1)")

	// ErrUnknownKind is returned when a distribution name cannot
	// be parsed.
	ErrUnknownKind = errors.New("unknown distribution kind")

	// ErrUnknownAlternative is returned for an unrecognized
	// alternative hypothesis.
	ErrUnknownAlternative = errors.New("unknown alternative")
)
