package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/sartorproj/pageviews/timeseries"
)

// Frame column names.
const (
	ColDate     = "date"
	ColYear     = "year"
	ColMonth    = "month"
	ColAbbrev   = "month_abbr"
	ColMonthNum = "month_num"
	ColValue    = "value"
)

// Frame converts s into a dataframe with the date as a plain column and
// the calendar fields derived from it. The frame owns its data.
func Frame(s *timeseries.Series) dataframe.DataFrame {
	n := s.Len()
	dates := make([]string, n)
	years := make([]int, n)
	months := make([]string, n)
	abbrevs := make([]string, n)
	monthNums := make([]int, n)
	values := make([]float64, n)

	for i, ts := range s.Timestamps[:n] {
		dates[i] = ts.Format(timeseries.ISODate)
		years[i] = ts.Year()
		months[i] = ts.Month().String()
		abbrevs[i] = months[i][:3]
		monthNums[i] = int(ts.Month())
		values[i] = s.Values[i]
	}

	return dataframe.New(
		series.New(dates, series.String, ColDate),
		series.New(years, series.Int, ColYear),
		series.New(months, series.String, ColMonth),
		series.New(abbrevs, series.String, ColAbbrev),
		series.New(monthNums, series.Int, ColMonthNum),
		series.New(values, series.Float, ColValue),
	)
}

// MonthlyMeans is a year x month table of mean values. Columns are always
// the twelve months in calendar order; a missing cell is NaN.
type MonthlyMeans struct {
	Years  []int
	Values [][]float64 // Values[yearIdx][monthIdx], monthIdx 0 = January
}

// Columns returns the month column labels, January first.
func (m *MonthlyMeans) Columns() []string {
	return MonthNames()
}

// Row returns the twelve monthly means for year, or false if absent.
func (m *MonthlyMeans) Row(year int) ([]float64, bool) {
	for i, y := range m.Years {
		if y == year {
			return m.Values[i], true
		}
	}
	return nil, false
}

// MonthlyMeansOf groups a copy of s by (year, month name) and pivots the
// group means into calendar-ordered columns.
func MonthlyMeansOf(s *timeseries.Series) (*MonthlyMeans, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	df := Frame(s.Copy()).Select([]string{ColYear, ColMonth, ColValue})
	agg := df.GroupBy(ColYear, ColMonth).
		Aggregation([]dataframe.AggregationType{dataframe.Aggregation_MEAN}, []string{ColValue})
	if agg.Err != nil {
		return nil, errors.Wrap(agg.Err, "group by year and month")
	}

	years, err := agg.Col(ColYear).Int()
	if err != nil {
		return nil, errors.Wrap(err, "read year column")
	}
	monthCol := agg.Col(ColMonth).Records()
	means := agg.Col(ColValue + "_" + dataframe.Aggregation_MEAN.String()).Float()

	out := &MonthlyMeans{}
	rowOf := map[int]int{}
	for _, y := range uniqueSorted(years) {
		rowOf[y] = len(out.Years)
		out.Years = append(out.Years, y)
		row := make([]float64, len(Months))
		for i := range row {
			row[i] = math.NaN()
		}
		out.Values = append(out.Values, row)
	}

	for i, y := range years {
		mo, ok := ParseMonth(monthCol[i])
		if !ok {
			return nil, errors.Errorf("unexpected month label %q", monthCol[i])
		}
		out.Values[rowOf[y]][int(mo)-1] = means[i]
	}
	return out, nil
}

// Group is one category of a box plot.
type Group struct {
	Label  string
	Values []float64
	Median float64 // NaN when Values is empty
}

// HasData reports whether the group holds any value.
func (g Group) HasData() bool { return len(g.Values) > 0 }

// FiveNumber summarises a group: min, Q1, median, Q3, max.
type FiveNumber struct {
	Min, Q1, Median, Q3, Max float64
}

// Summary returns the group's five-number summary using the same
// interpolation as Percentile.
func (g Group) Summary() (FiveNumber, error) {
	if !g.HasData() {
		return FiveNumber{}, ErrEmptySeries
	}
	sorted := make([]float64, len(g.Values))
	copy(sorted, g.Values)
	sort.Float64s(sorted)
	return FiveNumber{
		Min:    sorted[0],
		Q1:     percentileSorted(sorted, 0.25),
		Median: percentileSorted(sorted, 0.5),
		Q3:     percentileSorted(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// BoxGroups holds the year-wise and month-wise categories of a box plot.
// Years ascend; Months always has twelve entries, Jan to Dec.
type BoxGroups struct {
	Years  []Group
	Months []Group
}

// BoxGroupsOf builds box plot groups from a copy of s. Rows are arranged
// by month number before grouping.
func BoxGroupsOf(s *timeseries.Series) (*BoxGroups, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	df := Frame(s.Copy()).Arrange(dataframe.Sort(ColMonthNum))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "arrange by month number")
	}
	years, err := df.Col(ColYear).Int()
	if err != nil {
		return nil, errors.Wrap(err, "read year column")
	}
	monthNums, err := df.Col(ColMonthNum).Int()
	if err != nil {
		return nil, errors.Wrap(err, "read month number column")
	}
	values := df.Col(ColValue).Float()

	byYear := map[int][]float64{}
	byMonth := make([][]float64, len(Months))
	for i, v := range values {
		byYear[years[i]] = append(byYear[years[i]], v)
		byMonth[monthNums[i]-1] = append(byMonth[monthNums[i]-1], v)
	}

	out := &BoxGroups{}
	for _, y := range uniqueSorted(years) {
		out.Years = append(out.Years, newGroup(strconv.Itoa(y), byYear[y]))
	}
	for i, abbr := range MonthAbbrevs() {
		out.Months = append(out.Months, newGroup(abbr, byMonth[i]))
	}
	return out, nil
}

func newGroup(label string, values []float64) Group {
	return Group{Label: label, Values: values, Median: timeseries.Median(values)}
}

func uniqueSorted(xs []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}
