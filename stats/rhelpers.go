// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
)

// C builds a vector from its arguments, like R's c(). Scalars and
// numeric strings become single elements; slices, arrays and Samples
// are concatenated element by element, recursively.
func C(args ...any) ([]float64, error) {
	var out []float64
	for i, arg := range args {
		var err error
		out, err = appendC(out, arg)
		if err != nil {
			return nil, fmt.Errorf("c: argument %d: %w", i+1, err)
		}
	}
	return out, nil
}

func appendC(out []float64, arg any) ([]float64, error) {
	switch v := arg.(type) {
	case []float64:
		return append(out, v...), nil
	case Sample:
		return append(out, v.Xs...), nil
	case *Sample:
		return append(out, v.Xs...), nil
	case string, []byte:
		// Not containers, despite []byte being a slice.
	default:
		rv := reflect.ValueOf(arg)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			var err error
			for j := 0; j < rv.Len(); j++ {
				if out, err = appendC(out, rv.Index(j).Interface()); err != nil {
					return nil, err
				}
			}
			return out, nil
		}
	}
	f, err := cast.ToFloat64E(arg)
	if err != nil {
		return nil, err
	}
	return append(out, f), nil
}

// Sort returns a sorted copy of xs, in descending order if decreasing
// is set. NaNs are dropped, as R's sort does by default.
func Sort(xs []float64, decreasing bool) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	if decreasing {
		sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	} else {
		sort.Float64s(out)
	}
	return out
}

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	return stat.Mean(xs, nil)
}

// TrimmedMean returns the mean of xs after dropping the fraction trim
// of observations from each end of the sorted values. As in R, trim
// is clamped to [0, 0.5] and a trim of 0.5 yields the median.
func TrimmedMean(xs []float64, trim float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	if trim <= 0 {
		return Mean(xs)
	}
	if trim >= 0.5 {
		return Median(xs)
	}
	sorted := Sort(xs, false)
	lo := int(math.Floor(float64(len(sorted)) * trim))
	return stat.Mean(sorted[lo:len(sorted)-lo], nil)
}

// Median returns the middle value of xs, averaging the two middle
// values when len(xs) is even.
func Median(xs []float64) float64 {
	return Sample{Xs: xs}.Quantile(0.5)
}

// SD returns the sample standard deviation of xs, dividing by n-1.
func SD(xs []float64) float64 {
	return Sample{Xs: xs}.StdDev()
}

// Var returns the sample variance of xs, dividing by n-1.
func Var(xs []float64) float64 {
	return Sample{Xs: xs}.Variance()
}

// Choose returns the binomial coefficient "n choose k". It is 0 if k
// is outside [0, n] and NaN if n is negative.
func Choose(n, k int) float64 {
	switch {
	case n < 0:
		return nan
	case k < 0 || k > n:
		return 0
	case n <= 50:
		return float64(combin.Binomial(n, k))
	}
	return math.Round(combin.GeneralizedBinomial(float64(n), float64(k)))
}

// Perm returns the number of ordered arrangements of k items drawn
// from n. It is 0 if k is outside [0, n] and NaN if n is negative.
func Perm(n, k int) float64 {
	switch {
	case n < 0:
		return nan
	case k < 0 || k > n:
		return 0
	case n <= 20:
		return float64(combin.NumPermutations(n, k))
	}
	ln, _ := math.Lgamma(float64(n + 1))
	lnk, _ := math.Lgamma(float64(n - k + 1))
	return math.Round(math.Exp(ln - lnk))
}

// Factorial returns n!, or NaN if n is negative.
func Factorial(n int) float64 {
	return Perm(n, n)
}
