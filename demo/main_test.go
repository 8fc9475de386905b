package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/pageviews/config"
	"github.com/sartorproj/pageviews/synth"
	"github.com/sartorproj/pageviews/timeseries"
)

func writeData(t *testing.T) string {
	t.Helper()
	s, err := synth.Generate(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), config.DataFile)
	require.NoError(t, timeseries.SaveCSV(s, path))
	return path
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()

	require.NoError(t, run(cfg, writeData(t)))
	for _, name := range []string{cfg.Output.LinePlot, cfg.Output.BarPlot, cfg.Output.BoxPlot, cfg.Output.Summary} {
		info, err := os.Stat(cfg.Output.Path(name))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRunNamesFailingStep(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	cfg := config.Default()
	cfg.Output.Dir = blocker

	err := run(cfg, writeData(t))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "line plot: "), err.Error())
}
