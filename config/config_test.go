package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/pageviews/timeseries"
)

func writeTempConfig(t *testing.T, name, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	start, end, err := cfg.Generator.Range()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2019, 12, 3, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
	assert.Equal(t, "fcc-forum-pageviews.csv", cfg.Generator.Output)
	assert.Equal(t, 0.025, cfg.Cleaning.Lower)
	assert.Equal(t, 0.975, cfg.Cleaning.Upper)
	assert.Equal(t, "line_plot.png", cfg.Output.LinePlot)
	assert.Equal(t, "bar_plot.png", cfg.Output.BarPlot)
	assert.Equal(t, "box_plot.png", cfg.Output.BoxPlot)
	assert.Equal(t, "pageviews_summary.xlsx", cfg.Output.Summary)

	p, err := cfg.Cleaning.DuplicatePolicy()
	require.NoError(t, err)
	assert.Equal(t, timeseries.DuplicateError, p)
}

func TestLoadFormats(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		contents string
	}{
		{"yaml", "pageviews.yaml", `
log_level: debug
generator:
  seed: 7
cleaning:
  duplicates: last
output:
  dir: out
`},
		{"yml", "pageviews.yml", `
log_level: debug
generator:
  seed: 7
cleaning:
  duplicates: last
output:
  dir: out
`},
		{"toml", "pageviews.toml", `
log_level = "debug"

[generator]
seed = 7

[cleaning]
duplicates = "last"

[output]
dir = "out"
`},
		{"json", "pageviews.json", `{
  "log_level": "debug",
  "generator": {"seed": 7},
  "cleaning": {"duplicates": "last"},
  "output": {"dir": "out"}
}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeTempConfig(t, tc.file, tc.contents))
			require.NoError(t, err)

			assert.Equal(t, "debug", cfg.LogLevel)
			assert.Equal(t, uint64(7), cfg.Generator.Seed)
			assert.Equal(t, "out", cfg.Output.Dir)
			assert.Equal(t, filepath.Join("out", "bar_plot.png"), cfg.Output.Path(cfg.Output.BarPlot))

			// Untouched keys keep their defaults.
			assert.Equal(t, "2016-05-09", cfg.Generator.Start)
			assert.Equal(t, 0.975, cfg.Cleaning.Upper)

			p, err := cfg.Cleaning.DuplicatePolicy()
			require.NoError(t, err)
			assert.Equal(t, timeseries.DuplicateKeepLast, p)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
	}{
		{"bad level", "log_level: loud\n"},
		{"bad start", "generator:\n  start: 2016/05/09\n"},
		{"reversed range", "generator:\n  start: 2019-12-03\n  end: 2016-05-09\n"},
		{"bad percentiles", "cleaning:\n  lower: 0.9\n  upper: 0.1\n"},
		{"upper above one", "cleaning:\n  upper: 1.5\n"},
		{"bad duplicates", "cleaning:\n  duplicates: sum\n"},
		{"empty output", "output:\n  summary: \"\"\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, "pageviews.yaml", tc.contents))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestValidateLogLevels(t *testing.T) {
	for _, level := range []string{"", "trace", "debug", "info", "warning", "warn", "error", "fatal", "off", "disabled"} {
		cfg := Default()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeTempConfig(t, "pageviews.yaml", "generator:\n  sead: 1\n"))
	assert.Error(t, err)

	_, err = Load(writeTempConfig(t, "pageviews.toml", "[generator]\nsead = 1\n"))
	assert.Error(t, err)
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load(writeTempConfig(t, "pageviews.ini", "seed=1"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "line_plot.png", Output{}.Path("line_plot.png"))
	assert.Equal(t, filepath.Join("plots", "line_plot.png"), Output{Dir: "plots"}.Path("line_plot.png"))
}
