// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"
)

// Alternative selects which tail(s) of a distribution a confidence
// interval excludes.
type Alternative int

const (
	// TwoSided splits 1-conf evenly between both tails.
	TwoSided Alternative = iota

	// Less excludes the lower tail: the interval runs from the
	// (1-conf) quantile to the top of the distribution.
	Less

	// Greater excludes the upper tail: the interval runs from the
	// bottom of the distribution to the conf quantile.
	Greater
)

func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two.sided"
	case Less:
		return "less"
	case Greater:
		return "greater"
	}
	return fmt.Sprintf("Alternative(%d)", int(a))
}

// ParseAlternative accepts R's names ("two.sided", "less",
// "greater") and the older "equal" and "more".
func ParseAlternative(s string) (Alternative, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two.sided", "two-sided", "twosided", "equal", "":
		return TwoSided, nil
	case "less":
		return Less, nil
	case "greater", "more":
		return Greater, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlternative, s)
}

// ConfInt returns the cutoffs of the conf confidence region of d.
// The cutoffs are quantiles of d:
//
//	TwoSided  [q(α/2), q(1-α/2)]
//	Less      [q(α),   q(1)]
//	Greater   [q(0),   q(conf)]
//
// where α = 1 - conf. For distributions with unbounded support the
// open end of a one-sided interval is infinite.
func ConfInt(d Distribution, conf float64, alt Alternative) (lo, hi float64, err error) {
	if !(conf > 0 && conf < 1) {
		return nan, nan, fmt.Errorf("%w: %v", ErrInvalidConfidence, conf)
	}
	alpha := 1 - conf
	var pLo, pHi float64
	switch alt {
	case TwoSided:
		pLo, pHi = alpha/2, 1-alpha/2
	case Less:
		pLo, pHi = alpha, 1
	case Greater:
		pLo, pHi = 0, conf
	default:
		return nan, nan, fmt.Errorf("%w: %v", ErrUnknownAlternative, alt)
	}
	return d.InvCDF(pLo), d.InvCDF(pHi), nil
}
