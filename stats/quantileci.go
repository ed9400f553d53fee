// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileCIResult is the confidence interval for a quantile.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval, as
	// passed to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the achieved confidence level, which is >=
	// the requested one.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval: for sorted samples Xs, the CI is
	// Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// An order outside [1, N] means that bound is infinite, which
	// happens when the sample is too small for the confidence
	// level or the quantile is close to 0 or 1.
	LoOrder, HiOrder int

	// Ambiguous indicates that the interval LoOrder+1 to
	// HiOrder+1 has the same confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from a sample. It may return negative or positive infinity if the
// interval lies outside the sample.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("Cannot compute quantile CI on a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("Sample size differs from computed quantile CI")
	}

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 < len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which the
// normal approximation is used. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// The number of samples that fall below the population quantile is
// binomially distributed, B(n, q). The interval is the narrowest
// band of that distribution holding at least the requested
// confidence; ties are broken towards the left.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{Quantile: q, N: n}

	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder, res.HiOrder = 0, n+1
		return res
	}

	samp := BinomialDist{N: n, P: q}
	var l, r int
	if n <= quantileCIApproxThreshold {
		l, r, res.Confidence, res.Ambiguous = quantileCIExact(samp, confidence)
	} else {
		l, r, res.Confidence, res.Ambiguous = quantileCINormal(samp, confidence)
	}

	res.LoOrder = max(l, 0)
	res.HiOrder = min(r, n+1)
	return res
}

// quantileCIExact sums binomial probabilities outward from the mode
// until they reach confidence. [l, r) is the summed band of k, the
// number of samples below the quantile.
func quantileCIExact(samp BinomialDist, confidence float64) (l, r int, accum float64, ambiguous bool) {
	// Take the lower mode if there are two.
	mode := int(math.Ceil(float64(samp.N+1)*samp.P) - 1)
	if samp.P == 0 {
		mode = 0
	}
	pmf := func(k int) float64 { return samp.PMF(float64(k)) }

	l, r = mode, mode+1
	accum = pmf(mode)
	lp, rp := pmf(l-1), pmf(r)
	ambiguous = rp == accum

	// PMF decreases monotonically away from the mode. Stop early
	// if there is nothing left to add so round-off can't spin.
	for accum < confidence && (lp > 0 || rp > 0) {
		ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = pmf(l - 1)
		} else {
			accum += rp
			r++
			rp = pmf(r)
		}
	}
	return
}

// quantileCINormal approximates samp with a normal distribution,
// applying the continuity correction: band k of the binomial is
// [k-0.5, k+0.5] of the normal.
func quantileCINormal(samp BinomialDist, confidence float64) (l, r int, conf float64, ambiguous bool) {
	norm := samp.NormalApprox()
	alpha := (1 - confidence) / 2

	l1 := norm.InvCDF(alpha)
	r1 := 2*norm.Mu - l1

	// Round [l1, r1] out to half-integer band edges.
	l = int(math.Floor(l1-0.5)) + 1
	r = int(math.Ceil(r1-0.5)) + 1

	band := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	conf = band(l, r)

	// The band is symmetric. Dropping its right edge may still
	// satisfy the confidence level with a tighter fit.
	if biased := band(l, r-1); biased >= confidence && biased < conf {
		conf, ambiguous = biased, true
		r--
	}

	if l <= 0 && r >= samp.N+1 {
		// Covers everything. The normal has infinite support so
		// band won't quite reach 1.
		conf, ambiguous = 1, false
	}
	return
}
