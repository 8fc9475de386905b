// Package main runs the page-view pipeline once, end to end: it generates
// the synthetic forum data when no CSV is found, cleans it, draws the three
// charts and exports the summary workbook.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/pageviews/config"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/synth"
	"github.com/sartorproj/pageviews/timeseries"
	"github.com/sartorproj/pageviews/visualizer"
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Page View Visualizer Demonstration - line, bar and box charts")
	fmt.Println(strings.Repeat("=", 80))

	cfg := config.Default()

	dataFile, err := findDataFile(cfg)
	if err != nil {
		fmt.Printf("Error preparing data: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nData file: %s\n", dataFile)

	if err := run(cfg, dataFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(strings.Repeat("=", 80))
}

// findDataFile locates the forum CSV, generating it in the working
// directory when absent.
func findDataFile(cfg *config.Config) (string, error) {
	for _, dir := range []string{".", "data", "../data"} {
		p := filepath.Join(dir, cfg.Generator.Output)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	start, end, err := cfg.Generator.Range()
	if err != nil {
		return "", err
	}
	s, err := synth.Generate(start, end, cfg.Generator.Seed)
	if err != nil {
		return "", err
	}
	if err := timeseries.SaveCSV(s, cfg.Generator.Output); err != nil {
		return "", err
	}
	fmt.Printf("Synthetic data saved to %s\n", cfg.Generator.Output)
	return cfg.Generator.Output, nil
}

func run(cfg *config.Config, dataFile string) error {
	raw, err := timeseries.LoadCSV(dataFile, nil)
	if err != nil {
		return err
	}

	v := visualizer.New(cfg)
	clean, err := v.LoadAndCleanData(dataFile)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\nDATA\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	fmt.Printf("  Range:   %s to %s\n", raw.Start().Format(timeseries.ISODate), raw.End().Format(timeseries.ISODate))
	fmt.Printf("  Raw:     %d days\n", raw.Len())
	fmt.Printf("  Cleaned: %d days (%.1f%% kept)\n", clean.Len(), 100*float64(clean.Len())/float64(raw.Len()))
	fmt.Printf("  Values:  min=%.0f mean=%.1f median=%.1f max=%.0f\n", clean.Min(), clean.Mean(), clean.Median(), clean.Max())

	groups, err := stats.BoxGroupsOf(clean)
	if err != nil {
		return err
	}
	fmt.Println("\n  Year  Days  Median")
	for _, g := range groups.Years {
		fmt.Printf("  %-4s  %4d  %6.0f\n", g.Label, len(g.Values), g.Median)
	}

	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	for _, step := range []struct {
		name string
		draw func(*timeseries.Series) (string, error)
	}{
		{"Line plot", v.DrawLinePlot},
		{"Bar plot", v.DrawBarPlot},
		{"Box plot", v.DrawBoxPlot},
		{"Summary", v.ExportSummary},
	} {
		path, err := step.draw(clean)
		if err != nil {
			return errors.Wrap(err, strings.ToLower(step.name))
		}
		fmt.Printf("  %-10s -> %s\n", step.name, path)
	}
	return nil
}
