// Package stats provides the descriptive statistics behind the charts.
//
// # Outlier Trimming
//
// Drop the bottom and top 2.5% of a series:
//
//	cleaned, bounds, err := stats.TrimPercentiles(series,
//	    stats.DefaultLowerPercentile, stats.DefaultUpperPercentile)
//
// Percentiles interpolate linearly between the closest ranks, so
// Percentile([]float64{1, 2, 3, 4}, 0.5) is 2.5.
//
// # Monthly Means
//
// Average each (year, month) pair into a year x month table whose columns
// are January..December regardless of input order:
//
//	means, err := stats.MonthlyMeansOf(cleaned)
//	row, ok := means.Row(2018)
//
// # Box Plot Groups
//
// Split values per year and per month, medians included:
//
//	groups, err := stats.BoxGroupsOf(cleaned)
//	for _, g := range groups.Months { // Jan..Dec
//	    fmt.Println(g.Label, g.Median)
//	}
//
// Every function works on a copy of its input series.
package stats
