// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Dist is a statistical distribution that can be evaluated
// pointwise.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. For a discrete distribution,
	// this is the probability mass at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A Distribution is a parametric distribution of a given Kind. Each
// Kind has exactly one implementation, and all of them share this
// set of operations.
type Distribution interface {
	Dist

	// Kind returns the kind of this distribution.
	Kind() Kind

	// LogPDF returns the natural logarithm of PDF(x).
	LogPDF(x float64) float64

	// Survival returns 1 - CDF(x), computed without loss of
	// precision in the upper tail where possible.
	Survival(x float64) float64

	// InvCDF returns the quantile function at p: the smallest x
	// such that CDF(x) >= p. It returns NaN if p is not in
	// [0, 1].
	InvCDF(p float64) float64

	// Rand returns a random variate drawn from the distribution.
	Rand() float64

	Mean() float64
	StdDev() float64

	// Discrete reports whether the distribution is defined only
	// on the integers.
	Discrete() bool

	String() string
}

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// Density is R's d* function: the density (or mass) of d at x, or
// its natural logarithm if log is set.
func Density(d Distribution, x float64, log bool) float64 {
	if log {
		return d.LogPDF(x)
	}
	return d.PDF(x)
}

// Prob is R's p* function. It returns Pr[X <= q], or Pr[X > q] if
// lowerTail is false. If logP is set, the natural logarithm of the
// probability is returned.
func Prob(d Distribution, q float64, lowerTail, logP bool) float64 {
	var p float64
	if lowerTail {
		p = d.CDF(q)
	} else {
		p = d.Survival(q)
	}
	if logP {
		return math.Log(p)
	}
	return p
}

// Quantile is R's q* function. It returns the value below which a
// fraction p of the distribution lies, or above which it lies if
// lowerTail is false.
func Quantile(d Distribution, p float64, lowerTail bool) float64 {
	if !lowerTail {
		p = 1 - p
	}
	return d.InvCDF(p)
}

// RandN is R's r* function. It returns n random variates drawn from
// d.
func RandN(d Distribution, n int) []float64 {
	if n < 0 {
		n = 0
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Rand()
	}
	return res
}
