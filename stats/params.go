// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// Params holds the parameters of every supported distribution. Each
// Kind reads only its own fields:
//
//	Normal       Mean, SD
//	StudentsT    DF, Mean (location), SD (scale)
//	Binomial     Size, Prob
//	Poisson      Lambda
//	Exponential  Rate
//	F            DF1, DF2
//
// Use DefaultParams to obtain the documented defaults and override
// the fields you need.
type Params struct {
	Mean   float64 `yaml:"mean"`
	SD     float64 `yaml:"sd"`
	DF     float64 `yaml:"df"`
	DF1    float64 `yaml:"df1"`
	DF2    float64 `yaml:"df2"`
	Size   int     `yaml:"size"`
	Prob   float64 `yaml:"prob"`
	Lambda float64 `yaml:"lambda"`
	Rate   float64 `yaml:"rate"`
}

// DefaultParams returns Mean 0, SD 1, DF 1, DF1 10, DF2 100, Size 1,
// Prob 0.5, Lambda 1 and Rate 1.
func DefaultParams() Params {
	return Params{
		Mean:   0,
		SD:     1,
		DF:     1,
		DF1:    10,
		DF2:    100,
		Size:   1,
		Prob:   0.5,
		Lambda: 1,
		Rate:   1,
	}
}

// Validate checks the fields of p used by kind k.
func (p Params) Validate(k Kind) error {
	bad := func(name string, v any) error {
		return fmt.Errorf("%w: %v %s = %v", ErrInvalidParam, k, name, v)
	}
	positive := func(x float64) bool {
		return x > 0 && !math.IsInf(x, 1)
	}
	switch k {
	case Normal:
		if math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) {
			return bad("mean", p.Mean)
		}
		if !positive(p.SD) {
			return bad("sd", p.SD)
		}
	case StudentsT:
		if !positive(p.DF) {
			return bad("df", p.DF)
		}
		if math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) {
			return bad("mean", p.Mean)
		}
		if !positive(p.SD) {
			return bad("sd", p.SD)
		}
	case Binomial:
		if p.Size < 0 {
			return bad("size", p.Size)
		}
		if !(p.Prob >= 0 && p.Prob <= 1) {
			return bad("prob", p.Prob)
		}
	case Poisson:
		if !positive(p.Lambda) || p.Lambda > maxLambda {
			return bad("lambda", p.Lambda)
		}
	case Exponential:
		if !positive(p.Rate) {
			return bad("rate", p.Rate)
		}
	case F:
		if !positive(p.DF1) {
			return bad("df1", p.DF1)
		}
		if !positive(p.DF2) {
			return bad("df2", p.DF2)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	return nil
}
