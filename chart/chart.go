// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws distribution curves, density estimates and
// shaded confidence regions with gonum.org/v1/plot.
//
// Functions come in pairs: AddX draws onto an existing plot so several
// layers can be overlaid, and X creates a fresh plot with the common
// decorations already applied.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrTooFewSamples is returned when a sample is too small to
	// estimate its spread.
	ErrTooFewSamples = errors.New("chart: need at least two samples")

	// ErrDegenerate is returned for a sample with zero spread.
	ErrDegenerate = errors.New("chart: sample has zero variance")
)

var (
	defaultLineColor  = color.NRGBA{R: 0x00, G: 0x66, B: 0xFF, A: 0xB3}
	defaultShadeColor = color.NRGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0x80}
	defaultMeanColor  = color.NRGBA{R: 0x00, G: 0x33, B: 0xCC, A: 0xE6}
	sampleColor       = color.NRGBA{R: 0xCC, G: 0x33, B: 0x00, A: 0xB3}
	gridColor         = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0x40}
)

// Default page size used by Save and Write when none is given.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Options holds the decorations shared by every chart.
//
// The zero value is a translucent blue curve with a blue shaded
// region on a plot with major grid lines.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// LineColor is the colour of curves. If nil, a translucent
	// blue is used.
	LineColor color.Color

	// ShadeColor fills shaded regions and bars inside a
	// confidence interval. If nil, a half-transparent blue is
	// used.
	ShadeColor color.Color

	// NoGrid disables the major grid lines.
	NoGrid bool
}

func (o Options) lineColor() color.Color {
	if o.LineColor == nil {
		return defaultLineColor
	}
	return o.LineColor
}

func (o Options) shadeColor() color.Color {
	if o.ShadeColor == nil {
		return defaultShadeColor
	}
	return o.ShadeColor
}

// New returns an empty plot decorated according to opts.
func New(opts Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if !opts.NoGrid {
		g := plotter.NewGrid()
		g.Vertical.Color = gridColor
		g.Horizontal.Color = gridColor
		p.Add(g)
	}
	return p
}

// Save writes p to path. The image format is taken from the file
// extension (png, svg, pdf, eps, jpg, tif). A zero width or height
// selects the default page size.
func Save(p *plot.Plot, path string, w, h vg.Length) error {
	w, h = pageSize(w, h)
	return p.Save(w, h, path)
}

// Write renders p in the given format to out.
func Write(p *plot.Plot, out io.Writer, format string, w, h vg.Length) error {
	w, h = pageSize(w, h)
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	return err
}

func pageSize(w, h vg.Length) (vg.Length, vg.Length) {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// ParseColor parses a colour given as an SVG 1.1 name ("steelblue")
// or in hex as #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("chart: unknown colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 8 {
		return nil, fmt.Errorf("chart: bad hex colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
