package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/pageviews/config"
	"github.com/sartorproj/pageviews/internal/vizlog"
	"github.com/sartorproj/pageviews/synth"
	"github.com/sartorproj/pageviews/timeseries"
)

type options struct {
	cfgPath  string
	start    string
	end      string
	seed     uint64
	output   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pageviews-gen [--config path-to-config]",
		Short: "Generate a synthetic daily page-view CSV",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := vizlog.UpdateLevel(cfg.LogLevel); err != nil {
				return err
			}
			return generate(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.cfgPath, "config", "c", "", "path to config file (.yaml, .toml or .json)")
	cmd.Flags().StringVar(&opts.start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "noise seed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "CSV file to write")
	cmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "", "log level: trace, debug, info, warning, error, fatal, off")
	return cmd
}

// loadConfig reads the config file, if any, then applies the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgPath != "" {
		var err error
		if cfg, err = config.Load(opts.cfgPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Generator.Start = opts.start
	}
	if flags.Changed("end") {
		cfg.Generator.End = opts.end
	}
	if flags.Changed("seed") {
		cfg.Generator.Seed = opts.seed
	}
	if flags.Changed("output") {
		cfg.Generator.Output = opts.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func generate(cmd *cobra.Command, cfg *config.Config) error {
	start, end, err := cfg.Generator.Range()
	if err != nil {
		return err
	}

	s, err := synth.Generate(start, end, cfg.Generator.Seed)
	if err != nil {
		return err
	}
	vizlog.Zero.Debug().
		Str("start", cfg.Generator.Start).
		Str("end", cfg.Generator.End).
		Uint64("seed", cfg.Generator.Seed).
		Int("rows", s.Len()).
		Msg("generated series")

	if err := timeseries.SaveCSV(s, cfg.Generator.Output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Synthetic data saved to %s\n", cfg.Generator.Output)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		vizlog.Zero.Error().Err(err).Msg("pageviews-gen failed")
		os.Exit(1)
	}
}
