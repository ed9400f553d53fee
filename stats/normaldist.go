// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{Mu: 0, Sigma: 1}

func (n NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: n.Src}
}

func (n NormalDist) Kind() Kind { return Normal }

func (n NormalDist) PDF(x float64) float64 { return n.dist().Prob(x) }

func (n NormalDist) LogPDF(x float64) float64 { return n.dist().LogProb(x) }

func (n NormalDist) CDF(x float64) float64 { return n.dist().CDF(x) }

func (n NormalDist) Survival(x float64) float64 { return n.dist().Survival(x) }

func (n NormalDist) InvCDF(p float64) float64 {
	if !validProb(p) {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return n.dist().Quantile(p)
}

func (n NormalDist) Rand() float64 { return n.dist().Rand() }

func (n NormalDist) Mean() float64 { return n.Mu }

func (n NormalDist) StdDev() float64 { return n.Sigma }

func (n NormalDist) Discrete() bool { return false }

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

func (n NormalDist) String() string {
	return fmt.Sprintf("normal(mean=%g, sd=%g)", n.Mu, n.Sigma)
}
