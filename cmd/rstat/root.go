package main

import (
	"fmt"
	"os"

	"github.com/ronrest/rstats/chart"
	"github.com/ronrest/rstats/stats"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot"
)

// app holds the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	seedFlag   string

	cfg  config
	seed *uint64
	log  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "rstat",
		Short:         "R-style distributions, summaries and plots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", os.Getenv("RSTAT_CONFIG"), "YAML `file` of default parameters and chart options (env RSTAT_CONFIG)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")
	pf.StringVar(&a.seedFlag, "seed", os.Getenv("RSTAT_SEED"), "random seed for r (env RSTAT_SEED)")

	root.AddCommand(a.describeCmd())
	root.AddCommand(a.verbCmds()...)
	root.AddCommand(a.plotCmd())
	root.AddCommand(a.shadeCmd())
	root.AddCommand(a.hypothesisCmd())
	return root
}

func (a *app) setup() error {
	if a.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = l
	}

	if a.configPath != "" {
		cfg, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debug("loaded config", zap.String("path", a.configPath), zap.Any("params", cfg.Params))
	}

	if a.seedFlag != "" {
		s, err := cast.ToUint64E(a.seedFlag)
		if err != nil {
			return fmt.Errorf("bad seed %q: %w", a.seedFlag, err)
		}
		a.seed = &s
	}
	return nil
}

// addParamFlags registers one flag per distribution parameter. Flags
// that are set override the config file.
func addParamFlags(fs *pflag.FlagSet) {
	def := stats.DefaultParams()
	fs.Float64("mean", def.Mean, "mean (normal), location (t)")
	fs.Float64("sd", def.SD, "standard deviation (normal), scale (t)")
	fs.Float64("df", def.DF, "degrees of freedom (t)")
	fs.Float64("df1", def.DF1, "numerator degrees of freedom (f)")
	fs.Float64("df2", def.DF2, "denominator degrees of freedom (f)")
	fs.Int("size", def.Size, "number of trials (binomial)")
	fs.Float64("prob", def.Prob, "success probability (binomial)")
	fs.Float64("lambda", def.Lambda, "rate (poisson)")
	fs.Float64("rate", def.Rate, "rate (exp)")
}

func (a *app) params(fs *pflag.FlagSet) (stats.Params, error) {
	p := a.cfg.Params
	for name, dst := range map[string]*float64{
		"mean": &p.Mean, "sd": &p.SD, "df": &p.DF, "df1": &p.DF1, "df2": &p.DF2,
		"prob": &p.Prob, "lambda": &p.Lambda, "rate": &p.Rate,
	} {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetFloat64(name)
		if err != nil {
			return p, err
		}
		*dst = v
	}
	if fs.Changed("size") {
		v, err := fs.GetInt("size")
		if err != nil {
			return p, err
		}
		p.Size = v
	}
	return p, nil
}

// dist builds the distribution named by kind from the config file and
// the parameter flags of cmd.
func (a *app) dist(cmd *cobra.Command, kind string) (stats.Distribution, error) {
	k, err := stats.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	p, err := a.params(cmd.Flags())
	if err != nil {
		return nil, err
	}
	d, err := stats.New(k, p)
	if err != nil {
		return nil, err
	}
	if a.seed != nil {
		d = stats.WithSource(d, rand.NewSource(*a.seed))
	}
	a.log.Debug("distribution", zap.Stringer("dist", d))
	return d, nil
}

// addChartFlags registers decoration flags that override the config
// file.
func addChartFlags(fs *pflag.FlagSet) {
	fs.String("title", "", "plot title")
	fs.String("xlab", "", "x axis label")
	fs.String("ylab", "", "y axis label")
	fs.String("line-color", "", "curve colour, by name or #RRGGBB")
	fs.String("shade-color", "", "shaded region colour, by name or #RRGGBB")
}

func addOutputFlag(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "output `file`; the extension selects the format")
}

func (a *app) chartOptions(fs *pflag.FlagSet) (chart.Options, error) {
	c := a.cfg.Chart
	for name, dst := range map[string]*string{
		"title": &c.Title, "xlab": &c.XLabel, "ylab": &c.YLabel,
		"line-color": &c.LineColor, "shade-color": &c.ShadeColor,
	} {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	return c.options()
}

// save renders a plot with the chart options of fs and writes it to
// the --output file.
func (a *app) save(fs *pflag.FlagSet, render func(chart.Options) (*plot.Plot, error)) error {
	out, _ := fs.GetString("output")
	if out == "" {
		return fmt.Errorf("no output file; use -o")
	}
	opts, err := a.chartOptions(fs)
	if err != nil {
		return err
	}
	p, err := render(opts)
	if err != nil {
		return err
	}
	w, h := a.cfg.Chart.size()
	if err := chart.Save(p, out, w, h); err != nil {
		return err
	}
	a.log.Info("wrote plot", zap.String("file", out))
	return nil
}
