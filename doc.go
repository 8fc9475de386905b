// Package pageviews turns a daily page-view series into three charts that
// show its trend and seasonality.
//
// The module is split into small packages that each own one step of the
// pipeline.
//
// # Features
//
//   - Deterministic synthetic data: trend, yearly wave, weekend boost and
//     Gaussian noise (package synth)
//   - CSV loading with strict parsing and a duplicate-date policy
//     (package timeseries)
//   - Percentile trimming, monthly means and box plot groups (package stats)
//   - Line, grouped bar and year/month box charts as PNG (package chart)
//   - Excel summary workbook (package report)
//   - YAML, TOML or JSON settings (package config)
//
// # Quick Start
//
// Generate the forum data set:
//
//	go run ./cmd/pageviews-gen
//
// Clean it and draw the charts:
//
//	clean, _ := visualizer.LoadAndCleanData("fcc-forum-pageviews.csv")
//	visualizer.DrawLinePlot(clean)
//	visualizer.DrawBarPlot(clean)
//	visualizer.DrawBoxPlot(clean)
//
// Or run both steps with the demo:
//
//	go run ./demo
//
// # Packages
//
//   - synth: synthetic daily series generator
//   - timeseries: Series type, CSV load and save
//   - stats: percentiles, trimming, calendar aggregation
//   - chart: gonum/plot renderings
//   - report: excelize workbook export
//   - visualizer: the load, clean and draw pipeline
//   - config: pipeline settings
package pageviews
