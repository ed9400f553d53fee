// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ronrest/rstats/shade"
	"github.com/ronrest/rstats/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const curveWidth = vg.Length(1.5)

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("chart: %d x values but %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return pts, nil
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = curveWidth
	p.Add(l)
	return l, nil
}

// AddCurve draws the curve (x, y) on p.
func AddCurve(p *plot.Plot, x, y []float64, opts Options) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}
	_, err = addLine(p, pts, opts.lineColor())
	return err
}

// Curve returns a new plot of the curve (x, y).
func Curve(x, y []float64, opts Options) (*plot.Plot, error) {
	p := New(opts)
	if err := AddCurve(p, x, y, opts); err != nil {
		return nil, err
	}
	return p, nil
}

// AddShade draws the curve (x, y) on p and fills the area under it
// between lower and upper. x must be ascending. Errors from
// shade.Split are returned unchanged.
func AddShade(p *plot.Plot, x, y []float64, lower, upper float64, opts Options) error {
	r, err := shade.Split(x, y, lower, upper)
	if err != nil {
		return err
	}
	poly, err := plotter.NewPolygon(shadeOutline(r))
	if err != nil {
		return err
	}
	poly.Color = opts.shadeColor()
	poly.LineStyle.Width = 0
	p.Add(poly)

	return AddCurve(p, x, y, opts)
}

// shadeOutline returns the boundary of the filled region of r: out
// along the curve and back along the floor.
func shadeOutline(r *shade.Region) plotter.XYs {
	n := r.Len()
	outline := make(plotter.XYs, 2*n)
	for i := 0; i < n; i++ {
		outline[i] = plotter.XY{X: r.X[i], Y: r.Value[i]}
		outline[2*n-1-i] = plotter.XY{X: r.X[i], Y: r.Floor[i]}
	}
	return outline
}

// ShadeBetween returns a new plot of the curve (x, y) with the area
// between lower and upper filled.
func ShadeBetween(x, y []float64, lower, upper float64, opts Options) (*plot.Plot, error) {
	p := New(opts)
	if err := AddShade(p, x, y, lower, upper, opts); err != nil {
		return nil, err
	}
	return p, nil
}

// BandwidthRule picks a kernel bandwidth from a sample.
type BandwidthRule int

const (
	// QuarterSD uses a quarter of the sample standard deviation.
	QuarterSD BandwidthRule = iota
	// Scott uses stats.BandwidthScott.
	Scott
	// Silverman uses stats.BandwidthSilverman.
	Silverman
)

var ruleNames = []string{"quarter", "scott", "silverman"}

func (r BandwidthRule) String() string {
	if r >= 0 && int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("BandwidthRule(%d)", int(r))
}

// ParseBandwidthRule parses "quarter", "scott" or "silverman".
func ParseBandwidthRule(s string) (BandwidthRule, error) {
	for i, name := range ruleNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return BandwidthRule(i), nil
		}
	}
	return 0, fmt.Errorf("chart: unknown bandwidth rule %q", s)
}

func (r BandwidthRule) bandwidth(s stats.Sample) float64 {
	switch r {
	case Scott:
		return stats.BandwidthScott(s)
	case Silverman:
		return stats.BandwidthSilverman(s)
	}
	return 0.25 * s.StdDev()
}

// DensityOptions configures a kernel density plot.
type DensityOptions struct {
	Options

	// Bandwidth of the Gaussian kernel. If zero, Rule picks it.
	Bandwidth float64

	// Rule estimates the bandwidth when Bandwidth is zero.
	Rule BandwidthRule

	// [BoundaryMin, BoundaryMax) bound the support of the
	// estimate, which is reflected at any finite bound. If both
	// are zero the support is unbounded.
	BoundaryMin, BoundaryMax float64

	// Points is the number of points the estimate is evaluated
	// at. If zero, 200 is used.
	Points int
}

// kde builds the density estimate of xs described by opts.
func (opts DensityOptions) kde(xs []float64) stats.Dist {
	s := stats.Sample{Xs: xs}
	h := opts.Bandwidth
	if h == 0 {
		h = opts.Rule.bandwidth(s)
	}
	if !(h > 0) {
		// One value, all values equal, or a zero IQR.
		h = 0.25 * s.StdDev()
	}
	if !(h > 0) {
		h = 0.25
	}
	return stats.KDE{
		Bandwidth:   h,
		BoundaryMin: opts.BoundaryMin,
		BoundaryMax: opts.BoundaryMax,
	}.From(s)
}

// AddDensity draws a kernel density estimate of xs on p across the
// estimate's Bounds.
func AddDensity(p *plot.Plot, xs []float64, opts DensityOptions) error {
	if len(xs) == 0 {
		return ErrTooFewSamples
	}
	npts := opts.Points
	if npts < 2 {
		npts = 200
	}

	kde := opts.kde(xs)
	lo, hi := kde.Bounds()
	x := floats.Span(make([]float64, npts), lo, hi)
	return AddCurve(p, x, stats.PDFEach(kde, x), opts.Options)
}

// Density returns a new kernel density plot of xs.
func Density(xs []float64, opts DensityOptions) (*plot.Plot, error) {
	if opts.YLabel == "" {
		opts.YLabel = "density"
	}
	p := New(opts.Options)
	if err := AddDensity(p, xs, opts); err != nil {
		return nil, err
	}
	return p, nil
}
