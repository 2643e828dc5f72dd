package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hierarchia"
	"github.com/katalvlaran/hierarchia/adagio"
	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/linearity"
)

// Defaults shared by flags and viper.
const (
	DefaultPrecision = dominance.Precision
	DefaultStart     = 1000.0
	DefaultK         = 100.0
	DefaultMethod    = string(dominance.Dij)
	DefaultRank      = string(adagio.Topological)
)

// RawInput holds the unvalidated configuration from all sources (file, env, flags).
// Viper unmarshals into this struct.
type RawInput struct {
	Records       string  `mapstructure:"records"`
	Matrix        string  `mapstructure:"matrix"`
	Winner        string  `mapstructure:"winner"`
	Loser         string  `mapstructure:"loser"`
	Names         string  `mapstructure:"names"`
	Seed          uint64  `mapstructure:"seed"`
	Workers       int     `mapstructure:"workers"`
	Runs          int     `mapstructure:"runs"`
	NRandom       int     `mapstructure:"n-random"`
	Trials        int     `mapstructure:"trials"`
	ECDFRuns      int     `mapstructure:"ecdf-runs"`
	K             float64 `mapstructure:"k"`
	Start         float64 `mapstructure:"start"`
	Normal        bool    `mapstructure:"normal"`
	Method        string  `mapstructure:"method"`
	Normalize     bool    `mapstructure:"normalize"`
	Sorted        bool    `mapstructure:"sorted"`
	Rank          string  `mapstructure:"rank"`
	Preprocessing bool    `mapstructure:"preprocessing"`
	OddK          bool    `mapstructure:"odd-k"`
	Original      bool    `mapstructure:"original"`
	Precision     int     `mapstructure:"precision"`
	Color         string  `mapstructure:"color"`
	Verbose       bool    `mapstructure:"verbose"`
}

// Config is the validated configuration of one invocation.
type Config struct {
	RecordsPath   string
	MatrixPath    string
	Winner        string
	Loser         string
	Names         []string
	Seed          uint64
	Seeded        bool
	Workers       int
	Runs          int
	NRandom       int
	Trials        int
	Kendall       linearity.KendallConfig
	Elo           EloParams
	Method        dominance.Method
	Normalize     bool
	Sorted        bool
	Rank          adagio.RankMode
	Preprocessing bool
	Original      bool
	Precision     int
	Color         bool
	Verbose       bool
}

// EloParams groups the Elo flags.
type EloParams struct {
	Start  float64
	K      float64
	Normal bool
}

// ProcessAndValidate turns raw input into a Config. seeded reports whether
// a seed was set explicitly by any source.
func ProcessAndValidate(in RawInput, seeded bool) (Config, error) {
	cfg := Config{
		RecordsPath:   in.Records,
		MatrixPath:    in.Matrix,
		Winner:        in.Winner,
		Loser:         in.Loser,
		Seed:          in.Seed,
		Seeded:        seeded,
		Workers:       in.Workers,
		Runs:          in.Runs,
		NRandom:       in.NRandom,
		Trials:        in.Trials,
		Elo:           EloParams{Start: in.Start, K: in.K, Normal: in.Normal},
		Normalize:     in.Normalize,
		Sorted:        in.Sorted,
		Preprocessing: in.Preprocessing,
		Original:      in.Original,
		Precision:     in.Precision,
		Verbose:       in.Verbose,
	}

	switch {
	case in.Records == "" && in.Matrix == "":
		return Config{}, fmt.Errorf("one of --records or --matrix is required")
	case in.Records != "" && in.Matrix != "":
		return Config{}, fmt.Errorf("--records and --matrix are mutually exclusive")
	case in.Records != "" && (in.Winner == "" || in.Loser == ""):
		return Config{}, fmt.Errorf("--records needs --winner and --loser")
	}
	if in.Names != "" {
		for _, n := range strings.Split(in.Names, ",") {
			cfg.Names = append(cfg.Names, strings.TrimSpace(n))
		}
	}

	var err error
	if cfg.Method, err = dominance.ParseMethod(in.Method); err != nil {
		return Config{}, err
	}
	if cfg.Rank, err = adagio.ParseRankMode(in.Rank); err != nil {
		return Config{}, err
	}
	if cfg.Color, err = parseBool(in.Color); err != nil {
		return Config{}, fmt.Errorf("invalid --color: %w", err)
	}
	if in.Precision < 0 || in.Precision > 12 {
		return Config{}, fmt.Errorf("precision must be between 0 and 12, got %d", in.Precision)
	}

	cfg.Kendall = linearity.DefaultKendallConfig()
	cfg.Kendall.OddK = in.OddK
	if in.ECDFRuns > 0 {
		cfg.Kendall.ECDFRuns = in.ECDFRuns
	}

	return cfg, nil
}

// Options converts the Config into facade options.
func (c Config) Options() []hierarchia.Option {
	opts := []hierarchia.Option{hierarchia.WithWorkers(c.Workers)}
	if c.Seeded {
		opts = append(opts, hierarchia.WithSeed(c.Seed))
	}

	return opts
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	}

	return false, fmt.Errorf("%q (want yes/no/true/false/1/0)", s)
}
