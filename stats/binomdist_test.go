// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			1.5:   0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%v.CDF", dist), dist)

	for _, k := range []float64{-1, 0, 2, 4.5, 5, 7} {
		if s, c := dist.Survival(k), dist.CDF(k); !aeq(1-c, s) {
			t.Errorf("Survival(%v) = %v, want 1-CDF = %v", k, s, 1-c)
		}
	}

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation is only close near the
		// center of the distribution, and even there we're
		// lax.
		if err := math.Abs(b/n - 1); err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialDegenerate(t *testing.T) {
	zero := BinomialDist{N: 4, P: 0}
	testFunc(t, "P=0 PMF", zero.PMF, map[float64]float64{0: 1, 1: 0, 4: 0})
	one := BinomialDist{N: 4, P: 1}
	testFunc(t, "P=1 PMF", one.PMF, map[float64]float64{0: 0, 3: 0, 4: 1})
	if got := one.Rand(); got != 4 {
		t.Errorf("P=1 Rand = %v, want 4", got)
	}
}

func TestBinomialInvCDF(t *testing.T) {
	dist := BinomialDist{N: 10, P: 0.5}
	testFunc(t, "InvCDF", dist.InvCDF, map[float64]float64{
		-0.1:  nan,
		0:     0,
		0.025: 2,
		0.5:   5,
		0.975: 8,
		1:     10,
		1.1:   nan,
	})

	// The quantile at 0 is the bottom of the support, not -1.
	if got := (BinomialDist{N: 11, P: 0.3}).InvCDF(0); got != 0 {
		t.Errorf("InvCDF(0) = %v, want 0", got)
	}

	// InvCDF inverts CDF at every attainable probability.
	for k := 0.0; k <= 10; k++ {
		if got := dist.InvCDF(dist.CDF(k)); got != k {
			t.Errorf("InvCDF(CDF(%v)) = %v", k, got)
		}
	}
}

func TestBinomialInvCDFTop(t *testing.T) {
	// CDF(k) reaches 1 in floating point well before N, so the top
	// of the support must not come from the search.
	for _, n := range []int{10, 60, 100, 1000} {
		d := BinomialDist{N: n, P: 0.4}
		if got := d.InvCDF(1); got != float64(n) {
			t.Errorf("B(%d, 0.4).InvCDF(1) = %v, want %d", n, got, n)
		}
		_, hi, err := ConfInt(d, 0.95, Less)
		if err != nil || hi != float64(n) {
			t.Errorf("B(%d, 0.4) one-sided interval top = %v, %v, want %d", n, hi, err, n)
		}
	}
}

func TestBinomialLargeN(t *testing.T) {
	dist := BinomialDist{N: 5000, P: 0.5}
	sum := 0.0
	for k := 0.0; k <= 5000; k++ {
		sum += dist.PMF(k)
	}
	if !aeq(1, sum) {
		t.Errorf("PMF sums to %v, want 1", sum)
	}
	if got := dist.InvCDF(0.5); got != 2500 {
		t.Errorf("median = %v, want 2500", got)
	}
}
