package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/ronrest/rstats/chart"
	"github.com/ronrest/rstats/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var label = color.New(color.FgCyan).SprintFunc()

func (a *app) describeCmd() *cobra.Command {
	var conf float64
	var plotFile string
	var dopts chart.DensityOptions
	var rule string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarize numbers read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSample(cmd.InOrStdin())
			if err != nil {
				return err
			}
			s.Sort()
			describe(cmd.OutOrStdout(), s, conf)

			if plotFile == "" {
				return nil
			}
			if dopts.Options, err = a.chartOptions(cmd.Flags()); err != nil {
				return err
			}
			if dopts.Rule, err = chart.ParseBandwidthRule(rule); err != nil {
				return err
			}
			supportBounds(cmd.Flags(), &dopts)
			p, err := chart.Density(s.Xs, dopts)
			if err != nil {
				return err
			}
			w, h := a.cfg.Chart.size()
			if err := chart.Save(p, plotFile, w, h); err != nil {
				return err
			}
			a.log.Info("wrote density plot", zap.String("file", plotFile))
			return nil
		},
	}
	cmd.Flags().Float64Var(&conf, "conf", 0.95, "confidence level of the mean and median intervals")
	cmd.Flags().StringVar(&plotFile, "plot", "", "write a density plot to `file`")
	cmd.Flags().Float64Var(&dopts.Bandwidth, "bw", 0, "kernel bandwidth of the density plot; 0 applies --bw-rule")
	cmd.Flags().StringVar(&rule, "bw-rule", "quarter", "bandwidth rule: quarter (sd/4), scott or silverman")
	cmd.Flags().Float64Var(&dopts.BoundaryMin, "support-min", 0, "reflect the density estimate at this lower bound")
	cmd.Flags().Float64Var(&dopts.BoundaryMax, "support-max", 0, "reflect the density estimate at this upper bound")
	addChartFlags(cmd.Flags())
	return cmd
}

// supportBounds leaves the side of the support whose flag was not
// given unbounded.
func supportBounds(fs *pflag.FlagSet, o *chart.DensityOptions) {
	minSet, maxSet := fs.Changed("support-min"), fs.Changed("support-max")
	switch {
	case minSet && !maxSet:
		o.BoundaryMax = math.Inf(1)
	case maxSet && !minSet:
		o.BoundaryMin = math.Inf(-1)
	}
}

// describe prints a summary of the sorted sample s.
func describe(w io.Writer, s stats.Sample, conf float64) {
	fmt.Fprintf(w, "%s %d  %s %.6g  %s %.6g", label("N"), len(s.Xs), label("sum"), s.Sum(), label("mean"), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Fprintf(w, "  %s %.6g", label("gmean"), gmean)
	}
	fmt.Fprintf(w, "  %s %.6g  %s %.6g\n", label("std dev"), s.StdDev(), label("variance"), s.Variance())
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		l, ok := labels[p]
		if !ok {
			l = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%s %.6g\n", label(fmt.Sprintf("%8s", l)), s.Percentile(float64(p)/100))
	}
	fmt.Fprintln(w)

	mean, lo, hi := stats.MeanCI(s.Xs, conf)
	fmt.Fprintf(w, "%s %.6g  [%.6g, %.6g] @%g%%\n", label("mean CI"), mean, lo, hi, 100*conf)
	qci := stats.QuantileCI(len(s.Xs), 0.5, conf)
	lo, hi = qci.FromSample(s)
	fmt.Fprintf(w, "%s %.6g  [%.6g, %.6g] @%.4g%%\n", label("median CI"), s.Quantile(0.5), lo, hi, 100*qci.Confidence)
}
