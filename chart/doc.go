// Package chart renders the page-view charts as PNG images with gonum/plot.
//
// Three figures are produced:
//
//   - Line: every observation in date order (line_plot.png)
//   - Bar: monthly means grouped by year, one bar per month (bar_plot.png)
//   - Box: year-wise and month-wise distributions side by side (box_plot.png)
//
// Each figure has a builder returning the *plot.Plot values, so callers can
// inspect or restyle them, and a function writing the image to a path.
// Existing files are overwritten.
package chart
