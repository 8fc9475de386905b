// Package timeseries provides the daily series type and its CSV codec.
//
// A Series holds one value per calendar day. Loaded series are sorted by
// date and carry no duplicate dates unless a keep policy is chosen.
//
// # Loading from CSV
//
// Load a "date,value" file:
//
//	series, err := timeseries.LoadCSV("fcc-forum-pageviews.csv", nil)
//
// Malformed dates or non-integer values stop the load with a *ParseError:
//
//	var perr *timeseries.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Row, perr.Column)
//	}
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "day",
//	    ValueColumn: "views",
//	    Duplicates:  timeseries.DuplicateKeepLast,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
//	mean := series.Mean()
//	median := series.Median()
//	min, max := series.Min(), series.Max()
//
// # Copies
//
// Copy and Filter never share backing arrays with the receiver, so
// consumers may mutate their result freely:
//
//	weekdays := series.Filter(func(ts time.Time, _ float64) bool {
//	    return ts.Weekday() != time.Saturday && ts.Weekday() != time.Sunday
//	})
//
// # Saving
//
//	err := timeseries.SaveCSV(series, "out.csv")
package timeseries
