// Copyright 2020 The Go Authors. All rights reserved.
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

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

func (d BinomialDist) dist() distuv.Binomial {
	return distuv.Binomial{N: float64(d.N), P: d.P, Src: d.Src}
}

func (d BinomialDist) Kind() Kind { return Binomial }

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	if d.N > exactPMFLimit {
		return d.dist().Prob(float64(ki))
	}
	// The direct product is exact for small N, which matters when
	// PMF values are compared against confidence levels.
	return Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// exactPMFLimit is the largest N for which PMF multiplies out the
// binomial coefficient directly instead of working in log space.
const exactPMFLimit = 1000

func (d BinomialDist) PDF(k float64) float64 { return d.PMF(k) }

func (d BinomialDist) LogPDF(k float64) float64 { return math.Log(d.PMF(k)) }

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

// Survival is the probability of getting more than k successes.
func (d BinomialDist) Survival(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 1
	} else if ki >= d.N {
		return 0
	}

	return mathext.RegIncBeta(k+1, float64(d.N-ki), d.P)
}

// InvCDF returns the smallest number of successes k such that
// CDF(k) >= p. InvCDF(0) is 0 and InvCDF(1) is d.N.
func (d BinomialDist) InvCDF(p float64) float64 {
	if !validProb(p) {
		return nan
	}
	return float64(discreteInvCDF(d.CDF, p, 0, d.N))
}

func (d BinomialDist) Rand() float64 {
	if d.P == 0 || d.P == 1 || d.N == 0 {
		return d.P * float64(d.N)
	}
	return d.dist().Rand()
}

func (d BinomialDist) Discrete() bool { return true }

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

func (d BinomialDist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: d.StdDev()}
}

func (d BinomialDist) String() string {
	return fmt.Sprintf("binomial(size=%d, prob=%g)", d.N, d.P)
}
