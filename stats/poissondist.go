// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonDist is a Poisson distribution with mean Lambda.
type PoissonDist struct {
	Lambda float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

func (d PoissonDist) dist() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda, Src: d.Src}
}

func (d PoissonDist) Kind() Kind { return Poisson }

// PMF is the probability of exactly int(k) events.
func (d PoissonDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return d.dist().Prob(k)
}

func (d PoissonDist) PDF(k float64) float64 { return d.PMF(k) }

func (d PoissonDist) LogPDF(k float64) float64 { return math.Log(d.PMF(k)) }

func (d PoissonDist) CDF(k float64) float64 {
	if k < 0 {
		return 0
	}
	return d.dist().CDF(math.Floor(k))
}

func (d PoissonDist) Survival(k float64) float64 {
	if k < 0 {
		return 1
	}
	return d.dist().Survival(math.Floor(k))
}

// maxLambda bounds the rate so the support searched by InvCDF stays
// within exactly representable integers.
const maxLambda = 1 << 50

// InvCDF returns the smallest k such that CDF(k) >= p. InvCDF(1) is
// +Inf.
func (d PoissonDist) InvCDF(p float64) float64 {
	if !validProb(p) || !(d.Lambda > 0 && d.Lambda <= maxLambda) {
		return nan
	}
	if p == 1 {
		return inf
	}
	// Find an upper bracket, starting a few standard deviations
	// above the mean.
	hi := math.Ceil(d.Lambda + 10*math.Sqrt(d.Lambda) + 10)
	for d.CDF(hi) < p {
		hi *= 2
	}
	return float64(discreteInvCDF(d.CDF, p, 0, int(hi)))
}

func (d PoissonDist) Rand() float64 { return d.dist().Rand() }

func (d PoissonDist) Discrete() bool { return true }

func (d PoissonDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.9999)
}

func (d PoissonDist) Mean() float64 { return d.Lambda }

func (d PoissonDist) StdDev() float64 { return math.Sqrt(d.Lambda) }

func (d PoissonDist) String() string {
	return fmt.Sprintf("poisson(lambda=%g)", d.Lambda)
}
