// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// FDist is Snedecor's F-distribution with D1 and D2 degrees of
// freedom.
type FDist struct {
	D1, D2 float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

func (d FDist) dist() distuv.F {
	return distuv.F{D1: d.D1, D2: d.D2, Src: d.Src}
}

func (d FDist) Kind() Kind { return F }

func (d FDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.dist().Prob(x)
}

func (d FDist) LogPDF(x float64) float64 { return math.Log(d.PDF(x)) }

func (d FDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist().CDF(x)
}

func (d FDist) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return d.dist().Survival(x)
}

// InvCDF inverts the regularized incomplete beta function that
// defines the F CDF.
func (d FDist) InvCDF(p float64) float64 {
	if !validProb(p) {
		return nan
	}
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	x := mathext.InvRegIncBeta(d.D1/2, d.D2/2, p)
	return d.D2 * x / (d.D1 * (1 - x))
}

func (d FDist) Rand() float64 { return d.dist().Rand() }

// Mean returns NaN if D2 <= 2.
func (d FDist) Mean() float64 {
	if d.D2 <= 2 {
		return nan
	}
	return d.D2 / (d.D2 - 2)
}

// StdDev returns NaN if D2 <= 4.
func (d FDist) StdDev() float64 {
	if d.D2 <= 4 {
		return nan
	}
	num := 2 * d.D2 * d.D2 * (d.D1 + d.D2 - 2)
	den := d.D1 * (d.D2 - 2) * (d.D2 - 2) * (d.D2 - 4)
	return math.Sqrt(num / den)
}

func (d FDist) Discrete() bool { return false }

func (d FDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}

func (d FDist) String() string {
	return fmt.Sprintf("f(df1=%g, df2=%g)", d.D1, d.D2)
}
