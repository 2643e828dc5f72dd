// Package cli implements the hierarchia command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hierarchia"
	"github.com/katalvlaran/hierarchia/isi"
)

// version is overridden with -ldflags at build time.
var version = "dev"

// app carries the per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	cfg    Config
	logger zerolog.Logger
}

// NewRootCommand builds the command tree writing results to out and
// diagnostics to errOut. Each call owns a fresh viper instance.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "hierarchia",
		Short:         "Compute dominance-hierarchy metrics from win/loss interactions.",
		Long:          `Hierarchia ranks agents and tests the linearity of their dominance relation from interaction records or a count matrix.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("records", "", "CSV file of interaction records with a header row")
	pf.String("matrix", "", "CSV file of a square interaction-count matrix")
	pf.String("winner", "", "Winner column of --records")
	pf.String("loser", "", "Loser column of --records")
	pf.String("names", "", "Comma-separated agent names for --matrix")
	pf.Uint64("seed", 0, "Seed for randomized metrics (random when unset)")
	pf.Int("workers", 0, "Number of concurrent workers (0 = GOMAXPROCS)")
	pf.Int("precision", DefaultPrecision, "Decimal precision for numeric columns")
	pf.String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	pf.BoolP("verbose", "v", false, "Log debug traces to stderr")
	pf.String("config", "", "Path to config file")
	if err := a.v.BindPFlags(pf); err != nil {
		panic(fmt.Sprintf("binding root flags: %v", err))
	}

	for _, c := range a.commands() {
		root.AddCommand(c)
	}

	return root
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// initConfig reads in the config file and ENV variables if set.
func (a *app) initConfig() error {
	if configFile := a.v.GetString("config"); configFile != "" {
		a.v.SetConfigFile(configFile)
	} else {
		a.v.SetConfigName(".hierarchia")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME")
	}
	a.v.SetEnvPrefix("HIERARCHIA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault("precision", DefaultPrecision)
	a.v.SetDefault("color", "yes")
	a.v.SetDefault("method", DefaultMethod)
	a.v.SetDefault("rank", DefaultRank)
	a.v.SetDefault("start", DefaultStart)
	a.v.SetDefault("k", DefaultK)
	a.v.SetDefault("runs", isi.DefaultRuns)
	a.v.SetDefault("n-random", hierarchia.DefaultLandauTrials)

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// setup merges all configuration sources and validates them.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding %s flags: %w", cmd.Name(), err)
	}
	if err := a.initConfig(); err != nil {
		return err
	}
	var in RawInput
	if err := a.v.Unmarshal(&in); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	cfg, err := ProcessAndValidate(in, a.v.IsSet("seed"))
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, NoColor: !cfg.Color}).
		Level(level).With().Timestamp().Logger()

	return nil
}

// load builds the Hierarchy from the configured source.
func (a *app) load() (*hierarchia.Hierarchy, error) {
	opts := append(a.cfg.Options(), hierarchia.WithLogger(a.logger))
	if a.cfg.RecordsPath != "" {
		f, err := os.Open(a.cfg.RecordsPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		records, err := LoadRecords(f)
		if err != nil {
			return nil, err
		}

		return hierarchia.NewFromRecords(records, a.cfg.Winner, a.cfg.Loser, opts...)
	}

	f, err := os.Open(a.cfg.MatrixPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	rows, names, err := LoadMatrix(f, a.cfg.Names)
	if err != nil {
		return nil, err
	}

	return hierarchia.NewFromMatrix(rows, names, opts...)
}
