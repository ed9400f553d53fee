// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect == got || math.IsNaN(expect) && math.IsNaN(got) {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

type discreteDist interface {
	PMF(float64) float64
	CDF(float64) float64
	Bounds() (float64, float64)
}

// testDiscreteCDF checks that dist's CDF is the running sum of its
// PMF, including between and beyond the integers.
func testDiscreteCDF(t *testing.T, name string, dist discreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	sum := 0.0
	for k := lo - 2; k <= hi+2; k++ {
		sum += dist.PMF(k)
		for _, x := range []float64{k, k + 0.5} {
			if got := dist.CDF(x); !aeq(sum, got) {
				t.Errorf("%s(%v) = %v, want %v", name, x, got, sum)
			}
		}
	}
}

func TestBisect(t *testing.T) {
	x, ok := bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-9)
	if !ok || !aeq(math.Sqrt2, x) {
		t.Errorf("want %v, got %v (ok=%v)", math.Sqrt2, x, ok)
	}

	step := func(x float64) float64 {
		if x < 1 {
			return -1
		}
		return 1
	}
	x, ok = bisect(step, 0, 3, 1e-9)
	if ok || !aeq(1, x) {
		t.Errorf("discontinuity: want 1/false, got %v/%v", x, ok)
	}
}

func TestSeries(t *testing.T) {
	got := series(func(n float64) float64 { return math.Pow(0.5, n) })
	if !aeq(2, got) {
		t.Errorf("geometric series: want 2, got %v", got)
	}
}

func TestDiscreteInvCDF(t *testing.T) {
	cdf := func(k float64) float64 { return []float64{0.25, 0.5, 0.75, 1}[int(k)] }
	for p, want := range map[float64]int{0: 0, 0.1: 0, 0.25: 0, 0.3: 1, 0.5: 1, 0.99: 3, 1: 3} {
		if got := discreteInvCDF(cdf, p, 0, 3); got != want {
			t.Errorf("p=%v: want %d, got %d", p, want, got)
		}
	}
}
