// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A TDist is a Student's t-distribution with V degrees of freedom,
// shifted by location Mu and stretched by scale Sigma. The standard
// t-distribution has Mu = 0 and Sigma = 1.
type TDist struct {
	V         float64
	Mu, Sigma float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

func (t TDist) dist() distuv.StudentsT {
	return distuv.StudentsT{Mu: t.Mu, Sigma: t.Sigma, Nu: t.V, Src: t.Src}
}

func (t TDist) Kind() Kind { return StudentsT }

func (t TDist) PDF(x float64) float64 { return t.dist().Prob(x) }

func (t TDist) LogPDF(x float64) float64 { return t.dist().LogProb(x) }

func (t TDist) CDF(x float64) float64 { return t.dist().CDF(x) }

func (t TDist) Survival(x float64) float64 { return t.dist().Survival(x) }

func (t TDist) InvCDF(p float64) float64 {
	if !validProb(p) {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return t.dist().Quantile(p)
}

func (t TDist) Rand() float64 { return t.dist().Rand() }

// Mean returns Mu, or NaN if V <= 1, where the mean is undefined.
func (t TDist) Mean() float64 {
	if t.V <= 1 {
		return nan
	}
	return t.Mu
}

// StdDev returns NaN if V <= 1 and +Inf if 1 < V <= 2.
func (t TDist) StdDev() float64 {
	switch {
	case t.V <= 1:
		return nan
	case t.V <= 2:
		return inf
	}
	return t.Sigma * math.Sqrt(t.V/(t.V-2))
}

func (t TDist) Discrete() bool { return false }

func (t TDist) Bounds() (float64, float64) {
	return t.InvCDF(0.001), t.InvCDF(0.999)
}

func (t TDist) String() string {
	return fmt.Sprintf("t(df=%g, loc=%g, scale=%g)", t.V, t.Mu, t.Sigma)
}
