// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ronrest/rstats/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DistOptions configures a distribution plot.
type DistOptions struct {
	Options

	// Conf is the confidence level of the shaded interval. If
	// zero, nothing is shaded.
	Conf float64

	// Alt selects a two-sided or one-sided interval.
	Alt stats.Alternative

	// Res is the number of points a continuous density is
	// evaluated at. If zero, 200 is used.
	Res int

	// PLower and PUpper are the quantiles bounding the x axis. If
	// zero, 0.0001 and 0.9999 are used.
	PLower, PUpper float64
}

func (o *DistOptions) setDefaults() {
	if o.Res < 2 {
		o.Res = 200
	}
	if o.PLower == 0 {
		o.PLower = 0.0001
	}
	if o.PUpper == 0 {
		o.PUpper = 0.9999
	}
}

// Distribution plots the density of d between its PLower and PUpper
// quantiles with the central (or one-sided) Conf interval shaded and
// a vertical line at the mean. Discrete distributions are drawn as a
// bar chart, with bars inside the interval in the shade colour.
func Distribution(d stats.Distribution, opts DistOptions) (*plot.Plot, error) {
	opts.setDefaults()
	if !(0 < opts.PLower && opts.PLower < opts.PUpper && opts.PUpper < 1) {
		return nil, fmt.Errorf("chart: bad plot quantiles [%v, %v]", opts.PLower, opts.PUpper)
	}

	ciLo, ciHi := math.Inf(-1), math.Inf(1)
	if opts.Conf != 0 {
		var err error
		if ciLo, ciHi, err = stats.ConfInt(d, opts.Conf, opts.Alt); err != nil {
			return nil, err
		}
	}

	if opts.Title == "" {
		opts.Title = d.String()
		if opts.Conf != 0 {
			opts.Title += fmt.Sprintf(", %g %s interval", opts.Conf, opts.Alt)
		}
	}

	if d.Discrete() {
		return discrete(d, ciLo, ciHi, opts)
	}
	return continuous(d, ciLo, ciHi, opts)
}

func continuous(d stats.Distribution, ciLo, ciHi float64, opts DistOptions) (*plot.Plot, error) {
	if opts.YLabel == "" {
		opts.YLabel = "density"
	}
	p := New(opts.Options)

	lo, hi := d.InvCDF(opts.PLower), d.InvCDF(opts.PUpper)
	x := floats.Span(make([]float64, opts.Res), lo, hi)
	y := stats.PDFEach(d, x)
	var err error
	if opts.Conf == 0 {
		err = AddCurve(p, x, y, opts.Options)
	} else {
		err = AddShade(p, x, y, ciLo, ciHi, opts.Options)
	}
	if err != nil {
		return nil, err
	}

	if err := addMean(p, d, floats.Max(y)); err != nil {
		return nil, err
	}
	return p, nil
}

func discrete(d stats.Distribution, ciLo, ciHi float64, opts DistOptions) (*plot.Plot, error) {
	if opts.YLabel == "" {
		opts.YLabel = "probability"
	}
	if b, ok := d.(stats.BinomialDist); ok && opts.XLabel == "" {
		opts.XLabel = fmt.Sprintf("number of successes out of %d trials", b.N)
	}
	p := New(opts.Options)

	lo, hi := d.InvCDF(opts.PLower), d.InvCDF(opts.PUpper)
	inside, outside, top := barValues(d, lo, hi, ciLo, ciHi, opts.Conf != 0)

	width := barWidth(len(inside))
	for _, bars := range []struct {
		vs plotter.Values
		c  color.Color
	}{
		{outside, opts.lineColor()},
		{inside, opts.shadeColor()},
	} {
		bc, err := plotter.NewBarChart(bars.vs, width)
		if err != nil {
			return nil, err
		}
		bc.XMin = lo
		bc.Color = bars.c
		bc.LineStyle.Width = 0
		p.Add(bc)
	}
	p.X.Min, p.X.Max = lo-0.5, hi+0.5

	if err := addMean(p, d, top); err != nil {
		return nil, err
	}
	return p, nil
}

// barValues returns the probabilities of the integers lo..hi split
// into the bars inside [ciLo, ciHi] and those outside, along with the
// tallest bar. The two slices share positions, with zero where a bar
// belongs to the other set. If shaded is false every bar is outside.
func barValues(d stats.Dist, lo, hi, ciLo, ciHi float64, shaded bool) (inside, outside plotter.Values, top float64) {
	n := int(hi-lo) + 1
	inside = make(plotter.Values, n)
	outside = make(plotter.Values, n)
	for i := range inside {
		k := lo + float64(i)
		pk := d.PDF(k)
		if shaded && ciLo <= k && k <= ciHi {
			inside[i] = pk
		} else {
			outside[i] = pk
		}
		top = math.Max(top, pk)
	}
	return inside, outside, top
}

// barWidth returns a bar width that leaves a small gap between n
// bars across the default page.
func barWidth(n int) vg.Length {
	w := 0.8 * (DefaultWidth - vg.Inch) / vg.Length(n)
	return min(w, vg.Inch/2)
}

// addMean draws a vertical line at the mean of d, or at its median
// when the mean does not exist.
func addMean(p *plot.Plot, d stats.Distribution, height float64) error {
	m := d.Mean()
	if math.IsNaN(m) || math.IsInf(m, 0) {
		m = d.InvCDF(0.5)
	}
	l, err := addLine(p, plotter.XYs{{X: m, Y: 0}, {X: m, Y: height}}, defaultMeanColor)
	if err != nil {
		return err
	}
	l.LineStyle.Width = 2
	return nil
}

// Hypothesis plots the sampling distribution of the mean of xs, a t
// distribution with len(xs)-1 degrees of freedom centred on the
// sample mean and scaled by its standard error, with the conf
// interval shaded. The sample's density estimate is overlaid.
func Hypothesis(xs []float64, conf float64, opts Options) (*plot.Plot, error) {
	if len(xs) < 2 {
		return nil, ErrTooFewSamples
	}
	s := stats.Sample{Xs: xs}
	sd := s.StdDev()
	if sd == 0 {
		return nil, ErrDegenerate
	}
	n := float64(len(xs))
	t := stats.TDist{V: n - 1, Mu: s.Mean(), Sigma: sd / math.Sqrt(n)}

	if opts.Title == "" {
		opts.Title = fmt.Sprintf("mean %.4g of %d samples, %g confidence", t.Mu, len(xs), conf)
	}
	p, err := Distribution(t, DistOptions{Options: opts, Conf: conf})
	if err != nil {
		return nil, err
	}

	dopts := DensityOptions{Options: opts}
	dopts.LineColor = sampleColor
	if err := AddDensity(p, xs, dopts); err != nil {
		return nil, err
	}
	return p, nil
}
