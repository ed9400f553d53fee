// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// KDE represents options for constructing a kernel density estimate.
//
// A kernel density estimate is a smooth, non-parametric estimate of
// the distribution a sample was drawn from. It is what R's density()
// computes and what the density plots in package chart draw.
//
// The kernel is always Gaussian. The default (zero) value of KDE is
// a reasonable default configuration: Scott's bandwidth and unbounded
// support.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE. It only has an effect when BoundaryMin or
	// BoundaryMax is finite.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// It takes the smaller of the sample standard deviation and IQR/1.349,
// a robust estimate of a Gaussian's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	sigma := math.Min(data.StdDev(), iqr/1.349)
	return 1.06 * sigma * math.Pow(data.Weight(), -1.0/5)
}

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For support [0, inf) this is
	// ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone is used internally when the bounds are
	// -/+inf.
	boundaryNone
)

// From returns the kernel density estimate for the sample s.
func (k KDE) From(s Sample) Dist {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}

	kernel := NormalDist{Mu: 0, Sigma: h}

	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	}

	return &kdeDist{kernel, s.Xs, s.Weights, bm, min, max}
}

type kdeDist struct {
	kernel      Dist
	xs, weights []float64
	bm          KDEBoundaryMethod
	min, max    float64 // Support bounds
}

// eval evaluates fn, a PDF or CDF of the kernel, centred at every
// sample point and returns the weighted average at x.
func (kde *kdeDist) eval(fn func(float64) float64, x float64) float64 {
	ys := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		ys[i] = fn(x - xi)
	}
	wys := Sample{Xs: ys, Weights: kde.weights}
	return wys.Sum() / wys.Weight()
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x >= kde.max {
		return 0
	}
	y := func(x float64) float64 { return kde.eval(kde.kernel.PDF, x) }

	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) + y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + y(2*kde.max-x)
		}
		// Bounded on both sides: reflect repeatedly.
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			return y(x+n*d) + y(x+n*d-w)
		}) + series(func(n float64) float64 {
			return y(x-(n+1)*d+w) + y(x-(n+1)*d)
		})
	}
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}
	y := func(x float64) float64 { return kde.eval(kde.kernel.CDF, x) }

	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) - y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + (1 - y(2*kde.max-x))
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			return y(x+n*d) - y(x+n*d-w)
		}) + series(func(n float64) float64 {
			return y(x-(n+1)*d) - y(x-(n+1)*d-w)
		})
	}
}

// Bounds returns the range holding the central 99% of the estimate's
// weight, widened by 20% and clipped to the support.
func (kde *kdeDist) Bounds() (low float64, high float64) {
	lowX, highX := Sample{Xs: kde.xs, Weights: kde.weights}.Bounds()
	if lowX == highX {
		lowX -= 1
		highX += 1
	}

	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	// bisect needs the roots bracketed.
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	low, _ = bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX, tolerance)
	high, _ = bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX, tolerance)

	width := high - low
	low, high = low-0.1*width, high+0.1*width

	return math.Max(low, kde.min), math.Min(high, kde.max)
}
