// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

func validProb(p float64) bool {
	return p >= 0 && p <= 1
}

// discreteInvCDF returns the smallest k in [lo, hi] such that
// cdf(k) >= p. cdf must be non-decreasing and cdf(hi) >= p. A small
// fuzz keeps round-off in cdf from skipping past the exact k, as R's
// discrete quantile functions do. p == 0 and p == 1 return the ends of
// the range.
func discreteInvCDF(cdf func(float64) float64, p float64, lo, hi int) int {
	switch p {
	case 0:
		return lo
	case 1:
		return hi
	}
	target := p * (1 - 64*epsilon)
	return lo + sort.Search(hi-lo+1, func(i int) bool {
		return cdf(float64(lo+i)) >= target
	})
}

const epsilon = 0x1p-52

// series returns the sum of the series f(0), f(1), ..., stopping
// once adding a term no longer changes the sum.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs.
//
// If f does not have a root in this interval (e.g., it is
// discontinuous), this returns the X of the apparent discontinuity
// and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if math.Abs(flow) <= tolerance {
		return low, true
	}
	if math.Abs(fhigh) <= tolerance {
		return high, true
	}
	if math.Signbit(flow) == math.Signbit(fhigh) {
		panic("root of f is not bracketed by [low, high]")
	}
	for {
		mid := (high + low) / 2
		if mid == low || mid == high {
			// Ran out of float64 resolution between
			// low and high.
			return mid, false
		}
		fmid := f(mid)
		if math.Abs(fmid) <= tolerance {
			return mid, true
		}
		if math.Signbit(fmid) == math.Signbit(flow) {
			low, flow = mid, fmid
		} else {
			high = mid
		}
	}
}
