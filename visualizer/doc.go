// Package visualizer runs the page-view pipeline: load a date,value CSV,
// trim extreme values, then draw the line, bar and box charts and export
// the summary workbook.
//
// A Visualizer is bound to a Config and writes into its output directory:
//
//	v := visualizer.New(config.Default())
//	clean, err := v.LoadAndCleanData("fcc-forum-pageviews.csv")
//	if err != nil {
//	    return err
//	}
//	path, err := v.DrawLinePlot(clean)
//
// The package-level functions use the default configuration and write to
// the working directory. Every drawing function works on its own copy of
// the series.
package visualizer
