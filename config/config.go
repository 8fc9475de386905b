// Package config loads the pipeline settings from a YAML, TOML or JSON
// file. Values absent from the file keep their defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/sartorproj/pageviews/chart"
	"github.com/sartorproj/pageviews/internal/vizlog"
	"github.com/sartorproj/pageviews/report"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every setting of the generator and the visualizer.
type Config struct {
	LogLevel  string    `json:"log_level" toml:"log_level" yaml:"log_level"`
	Generator Generator `json:"generator" toml:"generator" yaml:"generator"`
	Cleaning  Cleaning  `json:"cleaning" toml:"cleaning" yaml:"cleaning"`
	Output    Output    `json:"output" toml:"output" yaml:"output"`
}

// Generator configures the synthetic data run.
type Generator struct {
	Start  string `json:"start" toml:"start" yaml:"start"`
	End    string `json:"end" toml:"end" yaml:"end"`
	Seed   uint64 `json:"seed" toml:"seed" yaml:"seed"`
	Output string `json:"output" toml:"output" yaml:"output"`
}

// Cleaning configures loading and percentile trimming.
type Cleaning struct {
	Lower      float64 `json:"lower" toml:"lower" yaml:"lower"`
	Upper      float64 `json:"upper" toml:"upper" yaml:"upper"`
	Duplicates string  `json:"duplicates" toml:"duplicates" yaml:"duplicates"`
}

// Output names the directory and files charts and reports are written to.
type Output struct {
	Dir      string `json:"dir" toml:"dir" yaml:"dir"`
	LinePlot string `json:"line_plot" toml:"line_plot" yaml:"line_plot"`
	BarPlot  string `json:"bar_plot" toml:"bar_plot" yaml:"bar_plot"`
	BoxPlot  string `json:"box_plot" toml:"box_plot" yaml:"box_plot"`
	Summary  string `json:"summary" toml:"summary" yaml:"summary"`
}

// DataFile is the default synthetic data file name.
const DataFile = "fcc-forum-pageviews.csv"

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Generator: Generator{
			Start:  "2016-05-09",
			End:    "2019-12-03",
			Seed:   42,
			Output: DataFile,
		},
		Cleaning: Cleaning{
			Lower:      stats.DefaultLowerPercentile,
			Upper:      stats.DefaultUpperPercentile,
			Duplicates: string(timeseries.DuplicateError),
		},
		Output: Output{
			Dir:      ".",
			LinePlot: chart.LineFile,
			BarPlot:  chart.BarFile,
			BoxPlot:  chart.BoxFile,
			Summary:  report.SummaryFile,
		},
	}
}

// Load reads path over the defaults and validates the result. The format
// follows the file suffix: .yaml/.yml, .toml or .json.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer file.Close()

	cfg := Default()
	if err := decode(file, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(file *os.File, target *Config) error {
	switch strings.ToLower(filepath.Ext(file.Name())) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(file)
		dec.SetStrict(true)
		return dec.Decode(target)
	case ".toml":
		md, err := toml.NewDecoder(file).Decode(target)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.Errorf("unknown keys %v", undecoded)
		}
		return nil
	case ".json":
		dec := json.NewDecoder(file)
		dec.DisallowUnknownFields()
		return dec.Decode(target)
	default:
		return errors.Errorf("unknown config format type: %s. Use .yaml, .toml or .json suffix in filename", file.Name())
	}
}

// Validate checks every section and reports the first problem found,
// wrapped around ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LogLevel) != "" {
		if _, err := vizlog.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
		}
	}
	if _, _, err := c.Generator.Range(); err != nil {
		return err
	}
	if c.Generator.Output == "" {
		return errors.Wrap(ErrInvalidConfig, "generator.output is empty")
	}
	if err := c.Cleaning.validate(); err != nil {
		return err
	}
	return c.Output.validate()
}

// Range parses the generator's start and end dates.
func (g Generator) Range() (start, end time.Time, err error) {
	start, err = time.Parse(timeseries.ISODate, g.Start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidConfig, "generator.start %q", g.Start)
	}
	end, err = time.Parse(timeseries.ISODate, g.End)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidConfig, "generator.end %q", g.End)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidConfig, "generator.end %s before start %s", g.End, g.Start)
	}
	return start, end, nil
}

// DuplicatePolicy returns the parsed duplicates setting.
func (c Cleaning) DuplicatePolicy() (timeseries.DuplicatePolicy, error) {
	p, err := timeseries.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidConfig, "cleaning.duplicates: %v", err)
	}
	return p, nil
}

func (c Cleaning) validate() error {
	if c.Lower < 0 || c.Upper > 1 || c.Lower >= c.Upper {
		return errors.Wrapf(ErrInvalidConfig, "cleaning percentiles [%v, %v]", c.Lower, c.Upper)
	}
	_, err := c.DuplicatePolicy()
	return err
}

func (o Output) validate() error {
	for name, v := range map[string]string{
		"line_plot": o.LinePlot,
		"bar_plot":  o.BarPlot,
		"box_plot":  o.BoxPlot,
		"summary":   o.Summary,
	} {
		if v == "" {
			return errors.Wrapf(ErrInvalidConfig, "output.%s is empty", name)
		}
	}
	return nil
}

// Path joins name onto the output directory.
func (o Output) Path(name string) string {
	if o.Dir == "" {
		return name
	}
	return filepath.Join(o.Dir, name)
}
