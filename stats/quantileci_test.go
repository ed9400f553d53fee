// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

type quantileCITest struct {
	n         int
	q, conf   float64
	lo, hi    int
	actual    float64
	ambiguous bool
}

func runQuantileCITests(t *testing.T, tests []quantileCITest) {
	t.Helper()
	for _, tt := range tests {
		res := QuantileCI(tt.n, tt.q, tt.conf)
		if res.LoOrder != tt.lo || res.HiOrder != tt.hi || !aeq(tt.actual, res.Confidence) || res.Ambiguous != tt.ambiguous {
			t.Errorf("QuantileCI(%d, %v, %v) = [%d,%d]@%v/%v, want [%d,%d]@%v/%v",
				tt.n, tt.q, tt.conf,
				res.LoOrder, res.HiOrder, res.Confidence, res.Ambiguous,
				tt.lo, tt.hi, tt.actual, tt.ambiguous)
		}
	}
}

func TestQuantileCIExact(t *testing.T) {
	runQuantileCITests(t, []quantileCITest{
		// Low confidence falls directly around the quantile.
		{4, 0.5, 0.001, 2, 3, 0.375, false},
		{4, 0.25, 0.001, 1, 2, 0.421875, false},
		// Quantiles at the ends of the range.
		{4, 0, 0.001, 0, 1, 1, false},
		{4, 1, 0.001, 4, 5, 1, false},
		// Exactly the mode's mass, then just beyond it, which
		// grows to the left first.
		{4, 0.5, 0.375, 2, 3, 0.375, false},
		{4, 0.5, 0.3750001, 1, 3, 0.625, true},
		// Everything, then everything but the right tail.
		{4, 0.5, 1, 0, 5, 1, false},
		{4, 0.5, 0.99, 0, 5, 1, false},
		{4, 0.5, 0.99 - 0.0625, 0, 4, 0.9375, true},

		// Odd sizes have two modes; the lower one is taken.
		{5, 0.5, 0.001, 2, 3, 0.3125, true},
		{5, 0.5, 0.3125, 2, 3, 0.3125, true},
		{5, 0.5, 0.3125001, 2, 4, 0.625, false},
		{5, 0.5, 1, 0, 6, 1, false},
		{5, 0.5, 0.99, 0, 6, 1, false},
		{5, 0.5, 0.99 - 0.03125, 0, 5, 1 - 0.03125, true},
	})
}

func TestQuantileCINormal(t *testing.T) {
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	quantileCIApproxThreshold = 0

	band := func(n int, l, r float64) float64 {
		norm := BinomialDist{N: n, P: 0.5}.NormalApprox()
		return norm.CDF(r-0.5) - norm.CDF(l-0.5)
	}
	runQuantileCITests(t, []quantileCITest{
		{4, 0.5, 0.001, 2, 3, band(4, 2, 3), false},
		{4, 0.5, 1, 0, 5, 1, false},
		// The approximation has infinite tails, so 0.99 still
		// spans every order statistic.
		{4, 0.5, 0.99, 0, 5, 1, false},
		{4, 0.5, 0.90, 0, 4, band(4, 0, 4), true},

		{5, 0.5, 0.001, 2, 3, band(5, 2, 3), true},
		{5, 0.5, band(5, 2, 3) + 0.00001, 2, 4, band(5, 2, 4), false},

		// Degenerate quantiles.
		{5, 0, 0.95, 0, 1, 1, false},
		{5, 0.001, 0.95, 0, 1, 1, false},
		{5, 1, 0.95, 5, 6, 1, false},
	})
}

func TestQuantileCIFromSample(t *testing.T) {
	sample := func(n int) Sample {
		s := Sample{Sorted: true}
		for i := 1; i <= n; i++ {
			s.Xs = append(s.Xs, float64(i))
		}
		return s
	}
	for _, tt := range []struct {
		res    QuantileCIResult
		lo, hi float64
	}{
		{QuantileCI(4, 0.5, 0.001), 2, 3},
		{QuantileCI(4, 0.25, 0.001), 1, 2},
		{QuantileCI(4, 0, 0.001), math.Inf(-1), 1},
		{QuantileCI(4, 1, 0.001), 4, math.Inf(1)},
		{QuantileCI(5, 0.5, 1), math.Inf(-1), math.Inf(1)},
	} {
		lo, hi := tt.res.FromSample(sample(tt.res.N))
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%+v.FromSample = [%v,%v], want [%v,%v]", tt.res, lo, hi, tt.lo, tt.hi)
		}
	}

	// Unsorted input is sorted on a copy.
	s := Sample{Xs: []float64{4, 2, 3, 1}}
	if lo, hi := QuantileCI(4, 0.5, 0.001).FromSample(s); lo != 2 || hi != 3 || s.Xs[0] != 4 {
		t.Errorf("unsorted FromSample = [%v,%v], sample now %v", lo, hi, s.Xs)
	}
}

func BenchmarkQuantileCI(b *testing.B) {
	for i := 0; i < b.N; i++ {
		QuantileCI(100, 0.5, 0.95)
	}
}
