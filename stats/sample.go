// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// GeoMean returns the geometric mean of the Sample. It returns NaN if
// any value is negative.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	for _, x := range s.Xs {
		if x < 0 {
			return nan
		}
	}
	return stat.GeometricMean(s.Xs, s.Weights)
}

// Variance returns the sample variance of xs, using the unbiased
// (n-1) estimator.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Quantile returns the sample value X at which q*weight of the sample
// is <= X. This uses interpolation method R8 from Hyndman and Fan
// (1996).
//
// q will be capped to the range [0, 1]. If len(xs) == 0 or all
// weights are 0, returns NaN.
//
// Quantile(0.5) is the median. Quantile(0.25) and Quantile(0.75) are
// the first and third quartiles, respectively. Quantile(P/100) is the
// P'th percentile.
//
// This is constant time if s.Sorted and s.Weights == nil.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	} else if q <= 0 {
		min, _ := s.Bounds()
		return min
	} else if q >= 1 {
		_, max := s.Bounds()
		return max
	}

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if s.Weights != nil {
		return stat.Quantile(q, stat.Empirical, s.Xs, s.Weights)
	}

	N := float64(len(s.Xs))
	n := 1/3.0 + q*(N+1/3.0) // R8
	kf, frac := math.Modf(n)
	k := int(kf)
	if k <= 0 {
		return s.Xs[0]
	} else if k >= len(s.Xs) {
		return s.Xs[len(s.Xs)-1]
	}
	return s.Xs[k-1] + frac*(s.Xs[k]-s.Xs[k-1])
}

// Percentile is an alias for Quantile, used by the bandwidth
// estimators.
func (s Sample) Percentile(pctile float64) float64 {
	return s.Quantile(pctile)
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		stat.SortWeighted(s.Xs, s.Weights)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}

// MeanCI returns the mean and the confidence interval of the mean of
// xs at the given confidence level, using Student's t-distribution
// with len(xs)-1 degrees of freedom.
//
// If xs is empty, all results are NaN. If xs has a single value or
// confidence >= 1, the interval is (-Inf, +Inf). If confidence <= 0,
// the interval collapses to the mean.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	mean = stat.Mean(xs, nil)
	if confidence <= 0 {
		return mean, mean, mean
	}
	if confidence >= 1 || len(xs) == 1 {
		return mean, -inf, inf
	}
	n := float64(len(xs))
	se := stat.StdDev(xs, nil) / math.Sqrt(n)
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}.Quantile(0.5 + confidence/2)
	return mean, mean - t*se, mean + t*se
}
