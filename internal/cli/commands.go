package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hierarchia"
)

// metric is one subcommand: its flags and how it prints its result.
type metric struct {
	use   string
	short string
	flags func(cmd *cobra.Command)
	run   func(a *app, h *hierarchia.Hierarchy, p *Printer) error
}

func (a *app) commands() []*cobra.Command {
	metrics := []metric{
		{
			use:   "davids",
			short: "David's Score on Pij or Dij",
			flags: func(c *cobra.Command) {
				methodFlag(c)
				c.Flags().Bool("normalize", false, "Normalize scores to (DS + N(N-1)/2) / N")
				c.Flags().Bool("sorted", true, "Sort agents by descending score")
			},
			run: func(a *app, h *hierarchia.Hierarchy, p *Printer) error {
				ds, err := h.DavidsScore(a.cfg.Method, a.cfg.Normalize, a.cfg.Sorted)
				if err != nil {
					return err
				}
				return p.Scores(ds)
			},
		},
		{
			use:   "adi",
			short: "Average Dominance Index",
			run: func(_ *app, h *hierarchia.Hierarchy, p *Printer) error {
				return p.Scores(h.AverageDominanceIndex())
			},
		},
		{
			use:   "elo",
			short: "Elo rating over the record order",
			flags: eloFlags,
			run: func(a *app, h *hierarchia.Hierarchy, p *Printer) error {
				r, err := h.Elo(a.cfg.Elo.Start, a.cfg.Elo.K, a.cfg.Elo.Normal)
				if err != nil {
					return err
				}
				return p.Scores(r)
			},
		},
		{
			use:   "relo",
			short: "Elo averaged over random record orders",
			flags: func(c *cobra.Command) {
				eloFlags(c)
				c.Flags().Int("trials", hierarchia.DefaultEloTrials, "Number of random orders")
			},
			run: func(a *app, h *hierarchia.Hierarchy, p *Printer) error {
				r, err := h.RandomizedElo(a.cfg.Elo.Start, a.cfg.Elo.K, a.cfg.Trials, a.cfg.Elo.Normal)
				if err != nil {
					return err
				}
				return p.Scores(r)
			},
		},
		{
			use:   "isi98",
			short: "I&SI linear ordering (de Vries 1998)",
			flags: func(c *cobra.Command) {
				c.Flags().Int("runs", hierarchia.DefaultISIRuns, "Number of search runs")
			},
			run: func(a *app, h *hierarchia.Hierarchy, p *Printer) error {
				r, err := h.ISI98(a.cfg.Runs, a.cfg.Verbose)
				if err != nil {
					return err
				}
				return p.Ranks(r)
			},
		},
		{
			use:   "adagio",
			short: "ADAGIO ranks on the acyclic dominance network",
			flags: func(c *cobra.Command) {
				c.Flags().Bool("preprocessing", false, "Use net wins max(0, Mij-Mji) as edge weights")
				c.Flags().String("rank", DefaultRank, "Rank mode: topological or top or bottom")
			},
			run: func(a *app, h *hierarchia.Hierarchy, p *Printer) error {
				r, err := h.Adagio(a.cfg.Preprocessing, a.cfg.Verbose, a.cfg.Rank)
				if err != nil {
					return err
				}
				return p.Ranks(r)
			},
		},
		{
			use:   "landau",
			short: "Landau's h, improved h' by default",
			flags: func(c *cobra.Command) {
				c.Flags().Bool("original", false, "Original h (needs every dyad observed)")
				c.Flags().Int("n-random", hierarchia.DefaultLandauTrials, "Number of randomizations for h'")
			},
			run: runLandau,
		},
		{
			use:   "kendall",
			short: "Kendall's K with ECDF and chi-square significance",
			flags: func(c *cobra.Command) {
				c.Flags().Bool("odd-k", false, "Use the odd-N normalisation of K")
				c.Flags().Int("ecdf-runs", 0, "Initial ECDF sample size (0 = default)")
			},
			run: runKendall,
		},
		{
			use:   "steepness",
			short: "Steepness and its randomization test",
			flags: func(c *cobra.Command) {
				methodFlag(c)
				c.Flags().Int("trials", 0, "Randomizations for the test (0 = statistic only)")
			},
			run: runSteepness,
		},
		{
			use:   "dci",
			short: "Directional consistency index",
			run: func(_ *app, h *hierarchia.Hierarchy, p *Printer) error {
				v, err := h.DCI()
				if err != nil {
					return err
				}
				return p.Fields([]Field{F("dci", v)})
			},
		},
		{
			use:   "dij",
			short: "Chance-corrected dyadic dominance matrix",
			run: func(_ *app, h *hierarchia.Hierarchy, p *Printer) error {
				return p.Matrix(h.Names(), h.Dij())
			},
		},
	}

	out := make([]*cobra.Command, 0, len(metrics))
	for _, m := range metrics {
		cmd := &cobra.Command{
			Use:     m.use,
			Short:   m.short,
			PreRunE: a.setup,
			RunE: func(_ *cobra.Command, _ []string) error {
				h, err := a.load()
				if err != nil {
					return err
				}
				p := NewPrinter(a.out, a.cfg.Precision, a.cfg.Color)
				p.Title(m.short)
				return m.run(a, h, p)
			},
		}
		if m.flags != nil {
			m.flags(cmd)
		}
		out = append(out, cmd)
	}

	return out
}

func methodFlag(c *cobra.Command) {
	c.Flags().String("method", DefaultMethod, "Proportion matrix: Dij or Pij")
}

func eloFlags(c *cobra.Command) {
	c.Flags().Float64("start", DefaultStart, "Initial rating")
	c.Flags().Float64("k", DefaultK, "K factor")
	c.Flags().Bool("normal", false, "Use the normal instead of the logistic expectation")
}

func runLandau(a *app, h *hierarchia.Hierarchy, p *Printer) error {
	res, err := h.LandauH(!a.cfg.Original, a.cfg.NRandom)
	if err != nil {
		return err
	}
	if res == nil {
		p.Warn("original Landau's h needs all relationships to be known; rerun without --original")
		return p.Fields([]Field{{Name: "landau_h"}})
	}
	if !res.Improved {
		return p.Fields([]Field{F("landau_h", res.H)})
	}

	return p.Fields([]Field{
		F("improved_landau_h", res.H),
		F("p_value_r", res.PValueRight),
		F("p_value_l", res.PValueLeft),
	})
}

func runKendall(a *app, h *hierarchia.Hierarchy, p *Printer) error {
	res, err := h.KendallKWith(a.cfg.Kendall)
	if err != nil {
		return err
	}
	if res.ChiSq == nil {
		p.Warn("chi-square needs at least 10 agents; only the ECDF p-value is reported")
	}

	return p.Fields([]Field{
		F("d", res.D),
		F("K", res.K),
		F("p_value_ecdf", res.ECDFPValue),
		{Name: "chi_square", Value: res.ChiSq},
		{Name: "chi_square_df", Value: res.ChiSqDF},
		{Name: "p_value_chi_square", Value: res.ChiSqPValue},
		F("unknown_dyads", float64(res.UnknownDyads)),
		F("unbiased_d", res.UnbiasedD),
		F("unbiased_K", res.UnbiasedK),
		F("unbiased_p_value_ecdf", res.UnbiasedPValue),
	})
}

func runSteepness(a *app, h *hierarchia.Hierarchy, p *Printer) error {
	if a.cfg.Trials <= 0 {
		v, err := h.Steepness(a.cfg.Method)
		if err != nil {
			return err
		}
		return p.Fields([]Field{F("steepness", v)})
	}
	res, err := h.SteepnessTest(a.cfg.Method, a.cfg.Trials)
	if err != nil {
		return err
	}
	m := res.Map()
	keys := []string{
		"steepness", "p_value_r", "p_value_l", "mean", "std_dev", "variance",
		"min", "max", "percentile_25", "percentile_50", "percentile_75", "count",
	}
	fs := make([]Field, len(keys))
	for i, k := range keys {
		fs[i] = F(k, m[k])
	}

	return p.Fields(fs)
}
