// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExpDist is an exponential distribution with the given Rate (R's
// rate, or 1/mean).
type ExpDist struct {
	Rate float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

func (d ExpDist) dist() distuv.Exponential {
	return distuv.Exponential{Rate: d.Rate, Src: d.Src}
}

func (d ExpDist) Kind() Kind { return Exponential }

func (d ExpDist) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d ExpDist) LogPDF(x float64) float64 { return d.dist().LogProb(x) }

func (d ExpDist) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d ExpDist) Survival(x float64) float64 { return d.dist().Survival(x) }

func (d ExpDist) InvCDF(p float64) float64 {
	if !validProb(p) {
		return nan
	}
	if p == 1 {
		return inf
	}
	return d.dist().Quantile(p)
}

func (d ExpDist) Rand() float64 { return d.dist().Rand() }

func (d ExpDist) Mean() float64 { return 1 / d.Rate }

func (d ExpDist) StdDev() float64 { return 1 / d.Rate }

func (d ExpDist) Discrete() bool { return false }

func (d ExpDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}

func (d ExpDist) String() string {
	return fmt.Sprintf("exp(rate=%g)", d.Rate)
}
