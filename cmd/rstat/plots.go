package main

import (
	"github.com/ronrest/rstats/chart"
	"github.com/ronrest/rstats/stats"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
)

func (a *app) plotCmd() *cobra.Command {
	var opts chart.DistOptions
	var alt string

	cmd := &cobra.Command{
		Use:   "plot KIND",
		Short: "Plot a distribution with its confidence region shaded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dist(cmd, args[0])
			if err != nil {
				return err
			}
			if opts.Alt, err = stats.ParseAlternative(alt); err != nil {
				return err
			}
			return a.save(cmd.Flags(), func(co chart.Options) (*plot.Plot, error) {
				opts.Options = co
				return chart.Distribution(d, opts)
			})
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&opts.Conf, "conf", 0.95, "confidence level of the shaded region; 0 disables shading")
	fs.StringVar(&alt, "alt", "two.sided", "two.sided, less or greater")
	fs.IntVar(&opts.Res, "res", 200, "number of points along the x axis")
	fs.Float64Var(&opts.PLower, "plower", 0.0001, "quantile at the left edge of the x axis")
	fs.Float64Var(&opts.PUpper, "pupper", 0.9999, "quantile at the right edge of the x axis")
	addParamFlags(fs)
	addChartFlags(fs)
	addOutputFlag(fs)
	return cmd
}

func (a *app) shadeCmd() *cobra.Command {
	var lower, upper float64

	cmd := &cobra.Command{
		Use:   "shade",
		Short: "Plot \"x y\" pairs from stdin with the area between two cutoffs shaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := readCurve(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.save(cmd.Flags(), func(co chart.Options) (*plot.Plot, error) {
				return chart.ShadeBetween(x, y, lower, upper, co)
			})
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&lower, "lower", 0, "lower cutoff")
	fs.Float64Var(&upper, "upper", 0, "upper cutoff")
	addChartFlags(fs)
	addOutputFlag(fs)
	return cmd
}

func (a *app) hypothesisCmd() *cobra.Command {
	var conf float64

	cmd := &cobra.Command{
		Use:   "hypothesis",
		Short: "Plot the sampling distribution of the mean of numbers from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSample(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.save(cmd.Flags(), func(co chart.Options) (*plot.Plot, error) {
				return chart.Hypothesis(s.Xs, conf, co)
			})
		},
	}
	cmd.Flags().Float64Var(&conf, "conf", 0.95, "confidence level of the shaded interval")
	addChartFlags(cmd.Flags())
	addOutputFlag(cmd.Flags())
	return cmd
}
