package main

import (
	"fmt"
	"os"

	"github.com/ronrest/rstats/chart"
	"github.com/ronrest/rstats/stats"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// config is the file named by --config. Missing fields keep their
// defaults.
type config struct {
	Params stats.Params `yaml:"params"`
	Chart  chartConfig  `yaml:"chart"`
}

type chartConfig struct {
	Title      string `yaml:"title,omitempty"`
	XLabel     string `yaml:"xlab,omitempty"`
	YLabel     string `yaml:"ylab,omitempty"`
	LineColor  string `yaml:"line_color,omitempty"`
	ShadeColor string `yaml:"shade_color,omitempty"`
	NoGrid     bool   `yaml:"no_grid,omitempty"`

	// Page size in inches.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

func defaultConfig() config {
	return config{Params: stats.DefaultParams()}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c chartConfig) options() (chart.Options, error) {
	opts := chart.Options{
		Title:  c.Title,
		XLabel: c.XLabel,
		YLabel: c.YLabel,
		NoGrid: c.NoGrid,
	}
	var err error
	if c.LineColor != "" {
		if opts.LineColor, err = chart.ParseColor(c.LineColor); err != nil {
			return opts, err
		}
	}
	if c.ShadeColor != "" {
		if opts.ShadeColor, err = chart.ParseColor(c.ShadeColor); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func (c chartConfig) size() (w, h vg.Length) {
	return vg.Length(c.Width) * vg.Inch, vg.Length(c.Height) * vg.Inch
}
