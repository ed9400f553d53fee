package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ronrest/rstats/stats"
	"github.com/spf13/cobra"
)

// formatValue prints v with R's default seven significant digits.
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', 7, 64)
}

func printValues(w io.Writer, vs []float64) {
	for _, v := range vs {
		fmt.Fprintln(w, formatValue(v))
	}
}

// verbCmds returns R's d, p, q and r functions and the confidence
// interval cutoffs as subcommands.
func (a *app) verbCmds() []*cobra.Command {
	// each evaluates f at every value argument after KIND.
	each := func(cmd *cobra.Command, args []string, f func(stats.Distribution, float64) float64) error {
		d, err := a.dist(cmd, args[0])
		if err != nil {
			return err
		}
		xs, err := stats.C(args[1:])
		if err != nil {
			return err
		}
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = f(d, x)
		}
		printValues(cmd.OutOrStdout(), out)
		return nil
	}

	var log, lowerTail bool
	dCmd := &cobra.Command{
		Use:   "d KIND X...",
		Short: "Density or probability mass at each X",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(d stats.Distribution, x float64) float64 {
				return stats.Density(d, x, log)
			})
		},
	}
	dCmd.Flags().BoolVar(&log, "log", false, "return the log density")

	pCmd := &cobra.Command{
		Use:   "p KIND Q...",
		Short: "Cumulative probability at each Q",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(d stats.Distribution, q float64) float64 {
				return stats.Prob(d, q, lowerTail, log)
			})
		},
	}
	pCmd.Flags().BoolVar(&lowerTail, "lower-tail", true, "return P[X <= q] rather than P[X > q]")
	pCmd.Flags().BoolVar(&log, "log", false, "return the log probability")

	qCmd := &cobra.Command{
		Use:   "q KIND P...",
		Short: "Quantile at each probability P",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(d stats.Distribution, p float64) float64 {
				return stats.Quantile(d, p, lowerTail)
			})
		},
	}
	qCmd.Flags().BoolVar(&lowerTail, "lower-tail", true, "treat P as P[X <= x] rather than P[X > x]")

	var n int
	rCmd := &cobra.Command{
		Use:   "r KIND",
		Short: "Random variates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dist(cmd, args[0])
			if err != nil {
				return err
			}
			printValues(cmd.OutOrStdout(), stats.RandN(d, n))
			return nil
		},
	}
	rCmd.Flags().IntVarP(&n, "n", "n", 1, "number of variates")

	var conf float64
	var alt string
	cCmd := &cobra.Command{
		Use:   "c KIND",
		Short: "Confidence interval cutoffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dist(cmd, args[0])
			if err != nil {
				return err
			}
			alternative, err := stats.ParseAlternative(alt)
			if err != nil {
				return err
			}
			lo, hi, err := stats.ConfInt(d, conf, alternative)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(lo), formatValue(hi))
			return nil
		},
	}
	cCmd.Flags().Float64Var(&conf, "conf", 0.95, "confidence level")
	cCmd.Flags().StringVar(&alt, "alt", "two.sided", "two.sided, less or greater")

	cmds := []*cobra.Command{dCmd, pCmd, qCmd, rCmd, cCmd}
	for _, c := range cmds {
		addParamFlags(c.Flags())
	}
	return cmds
}
