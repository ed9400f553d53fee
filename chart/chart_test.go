// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ronrest/rstats/shade"
	"github.com/ronrest/rstats/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

func renderSVG(t *testing.T, p *plot.Plot) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(p, &buf, "svg", 0, 0))
	return buf.String()
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]color.Color{
		"red":        colornames.Red,
		" SteelBlue": colornames.Steelblue,
		"#0066FF":    color.NRGBA{R: 0x00, G: 0x66, B: 0xFF, A: 0xFF},
		"#abc":       color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF},
		"#0066FFB3":  color.NRGBA{R: 0x00, G: 0x66, B: 0xFF, A: 0xB3},
	} {
		got, err := ParseColor(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}
	for _, in := range []string{"", "nope", "#12", "#GGGGGG", "#0066FFB3FF"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	assert.Equal(t, color.Color(defaultLineColor), o.lineColor())
	assert.Equal(t, color.Color(defaultShadeColor), o.shadeColor())

	o.LineColor = colornames.Black
	assert.Equal(t, color.Color(colornames.Black), o.lineColor())

	p := New(Options{Title: "t", XLabel: "x", YLabel: "y"})
	assert.Equal(t, "t", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
}

func TestCurve(t *testing.T) {
	_, err := Curve([]float64{0, 1}, []float64{0}, Options{})
	assert.Error(t, err)

	p, err := Curve([]float64{0, 1, 2}, []float64{1, 3, 2}, Options{Title: "curve"})
	require.NoError(t, err)
	assert.Contains(t, renderSVG(t, p), "<svg")
}

func TestShadeBetween(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 2, 3, 2, 1}

	p, err := ShadeBetween(x, y, 1, 3, Options{})
	require.NoError(t, err)
	assert.Contains(t, renderSVG(t, p), "<svg")

	_, err = ShadeBetween(x, y, 3, 1, Options{})
	assert.ErrorIs(t, err, shade.ErrInvalidRange)
	_, err = ShadeBetween([]float64{4, 3}, []float64{1, 1}, 3, 4, Options{})
	assert.ErrorIs(t, err, shade.ErrUnsorted)
}

func TestShadeOutline(t *testing.T) {
	r, err := shade.Split([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 3, 2, 1}, 1, 3)
	require.NoError(t, err)

	// Out along the curve, then back along the floor, which drops
	// to zero between the inserted samples at x=1 and x=3.
	want := plotter.XYs{
		{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 1},
		{X: 4, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 1},
	}
	assert.Equal(t, want, shadeOutline(r))
}

func TestDensity(t *testing.T) {
	_, err := Density(nil, DensityOptions{})
	assert.ErrorIs(t, err, ErrTooFewSamples)

	p, err := Density([]float64{1, 2, 2, 3, 3, 3, 4, 4, 5}, DensityOptions{})
	require.NoError(t, err)
	assert.Equal(t, "density", p.Y.Label.Text)
	assert.Contains(t, renderSVG(t, p), "<svg")

	// A single value still gets a finite bandwidth.
	_, err = Density([]float64{7}, DensityOptions{Points: 10})
	require.NoError(t, err)

	for _, rule := range []BandwidthRule{QuarterSD, Scott, Silverman} {
		_, err := Density([]float64{2, 4, 4, 4, 5, 5, 7, 9}, DensityOptions{Rule: rule})
		require.NoError(t, err, rule)
	}
}

func TestDensityRange(t *testing.T) {
	// The x axis spans the estimate's bounds: the central 99% of a
	// unit Gaussian widened by 20%.
	p, err := Density([]float64{0}, DensityOptions{Bandwidth: 1})
	require.NoError(t, err)
	assert.InDelta(t, -3.091, p.X.Min, 0.1)
	assert.InDelta(t, 3.091, p.X.Max, 0.1)

	// A bounded support clips the range and reflects the estimate.
	p, err = Density([]float64{0.5, 1, 2}, DensityOptions{
		Bandwidth:   1,
		BoundaryMin: 0,
		BoundaryMax: math.Inf(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)

	kde := DensityOptions{Bandwidth: 1, BoundaryMax: math.Inf(1)}.kde([]float64{1})
	assert.InDelta(t, 2*stats.StdNormal.PDF(1), kde.PDF(0), 1e-12)
}

func TestBandwidthRule(t *testing.T) {
	s := stats.Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	assert.InDelta(t, 0.25*s.StdDev(), QuarterSD.bandwidth(s), 1e-12)
	assert.InDelta(t, stats.BandwidthScott(s), Scott.bandwidth(s), 1e-12)
	assert.InDelta(t, stats.BandwidthSilverman(s), Silverman.bandwidth(s), 1e-12)

	for in, want := range map[string]BandwidthRule{"quarter": QuarterSD, " Scott": Scott, "SILVERMAN": Silverman} {
		got, err := ParseBandwidthRule(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBandwidthRule("nrd0")
	assert.Error(t, err)
	assert.Equal(t, "silverman", Silverman.String())
}

func TestDistribution(t *testing.T) {
	for _, k := range []stats.Kind{stats.Normal, stats.StudentsT, stats.Binomial, stats.Poisson, stats.Exponential, stats.F} {
		t.Run(k.String(), func(t *testing.T) {
			params := stats.DefaultParams()
			params.Size = 20
			d, err := stats.New(k, params)
			require.NoError(t, err)

			for _, alt := range []stats.Alternative{stats.TwoSided, stats.Less, stats.Greater} {
				p, err := Distribution(d, DistOptions{Conf: 0.95, Alt: alt})
				require.NoError(t, err, alt)
				assert.Contains(t, p.Title.Text, d.String())
				assert.Contains(t, renderSVG(t, p), "<svg")
			}

			p, err := Distribution(d, DistOptions{Options: Options{Title: "custom"}})
			require.NoError(t, err)
			assert.Equal(t, "custom", p.Title.Text)
		})
	}
}

func TestBarValues(t *testing.T) {
	d := stats.BinomialDist{N: 10, P: 0.5}
	ciLo, ciHi, err := stats.ConfInt(d, 0.95, stats.TwoSided)
	require.NoError(t, err)
	require.Equal(t, 2.0, ciLo)
	require.Equal(t, 8.0, ciHi)

	inside, outside, top := barValues(d, 0, 10, ciLo, ciHi, true)
	require.Len(t, inside, 11)
	require.Len(t, outside, 11)
	for k := range inside {
		pk := d.PDF(float64(k))
		if 2 <= k && k <= 8 {
			assert.Equal(t, pk, inside[k], "inside[%d]", k)
			assert.Zero(t, outside[k], "outside[%d]", k)
		} else {
			assert.Zero(t, inside[k], "inside[%d]", k)
			assert.Equal(t, pk, outside[k], "outside[%d]", k)
		}
	}
	assert.Equal(t, d.PDF(5), top)

	// Unshaded: every bar is outside.
	inside, outside, _ = barValues(d, 0, 10, ciLo, ciHi, false)
	for k := range inside {
		assert.Zero(t, inside[k], "inside[%d]", k)
		assert.Equal(t, d.PDF(float64(k)), outside[k], "outside[%d]", k)
	}
}

func TestDistributionNoConf(t *testing.T) {
	magenta := color.NRGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	opts := Options{ShadeColor: magenta}

	p, err := Distribution(stats.StdNormal, DistOptions{Options: opts, Conf: 0.95})
	require.NoError(t, err)
	assert.Contains(t, renderSVG(t, p), "fill:#FF00FF")

	p, err = Distribution(stats.StdNormal, DistOptions{Options: opts})
	require.NoError(t, err)
	assert.NotContains(t, renderSVG(t, p), "fill:#FF00FF")
	assert.Equal(t, stats.StdNormal.String(), p.Title.Text)
}

func TestDistributionLabels(t *testing.T) {
	p, err := Distribution(stats.BinomialDist{N: 10, P: 0.3}, DistOptions{Conf: 0.9})
	require.NoError(t, err)
	assert.Equal(t, "probability", p.Y.Label.Text)
	assert.Contains(t, p.X.Label.Text, "10 trials")
	assert.Equal(t, -0.5, p.X.Min)

	p, err = Distribution(stats.StdNormal, DistOptions{})
	require.NoError(t, err)
	assert.Equal(t, "density", p.Y.Label.Text)
}

func TestDistributionErrors(t *testing.T) {
	_, err := Distribution(stats.StdNormal, DistOptions{Conf: 1.5})
	assert.ErrorIs(t, err, stats.ErrInvalidConfidence)

	_, err = Distribution(stats.StdNormal, DistOptions{PLower: 0.9, PUpper: 0.1})
	assert.Error(t, err)
}

func TestHypothesis(t *testing.T) {
	_, err := Hypothesis([]float64{1}, 0.95, Options{})
	assert.ErrorIs(t, err, ErrTooFewSamples)
	_, err = Hypothesis([]float64{2, 2, 2}, 0.95, Options{})
	assert.ErrorIs(t, err, ErrDegenerate)

	p, err := Hypothesis([]float64{-8, 2, 3, 4, 5, 6}, 0.95, Options{})
	require.NoError(t, err)
	assert.Contains(t, p.Title.Text, "6 samples")
	assert.Contains(t, renderSVG(t, p), "<svg")
}

func TestSave(t *testing.T) {
	p, err := Distribution(stats.StdNormal, DistOptions{Conf: 0.95})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "normal.png")
	require.NoError(t, Save(p, path, 0, 0))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())

	assert.Error(t, Save(p, filepath.Join(t.TempDir(), "normal.xyz"), 0, 0))
}
