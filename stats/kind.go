// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Kind identifies a family of distributions.
type Kind int

const (
	Normal Kind = iota
	StudentsT
	Binomial
	Poisson
	Exponential
	F
)

var kindNames = [...]string{
	Normal:      "normal",
	StudentsT:   "t",
	Binomial:    "binomial",
	Poisson:     "poisson",
	Exponential: "exp",
	F:           "f",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s. It accepts the long names
// returned by Kind.String as well as the R abbreviations ("norm",
// "binom", "pois"), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "norm", "gaussian":
		return Normal, nil
	case "t", "student", "studentst":
		return StudentsT, nil
	case "binomial", "binom":
		return Binomial, nil
	case "poisson", "pois":
		return Poisson, nil
	case "exp", "exponential":
		return Exponential, nil
	case "f":
		return F, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New returns the distribution of kind k configured by p. Only the
// fields of p relevant to k are consulted.
func New(k Kind, p Params) (Distribution, error) {
	if err := p.Validate(k); err != nil {
		return nil, err
	}
	switch k {
	case Normal:
		return NormalDist{Mu: p.Mean, Sigma: p.SD}, nil
	case StudentsT:
		return TDist{V: p.DF, Mu: p.Mean, Sigma: p.SD}, nil
	case Binomial:
		return BinomialDist{N: p.Size, P: p.Prob}, nil
	case Poisson:
		return PoissonDist{Lambda: p.Lambda}, nil
	case Exponential:
		return ExpDist{Rate: p.Rate}, nil
	case F:
		return FDist{D1: p.DF1, D2: p.DF2}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

// WithSource returns a copy of d that draws random variates from
// src. If src is nil, the global source is used.
func WithSource(d Distribution, src rand.Source) Distribution {
	switch d := d.(type) {
	case NormalDist:
		d.Src = src
		return d
	case TDist:
		d.Src = src
		return d
	case BinomialDist:
		d.Src = src
		return d
	case PoissonDist:
		d.Src = src
		return d
	case ExpDist:
		d.Src = src
		return d
	case FDist:
		d.Src = src
		return d
	}
	return d
}
