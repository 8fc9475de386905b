package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// testSeries holds January 2019 = 1..31, February 2019 = 100 and
// March 2020 = 10.
func testSeries() *timeseries.Series {
	s := &timeseries.Series{}
	add := func(from time.Time, days int, value func(d int) float64) {
		for d := 0; d < days; d++ {
			s.Timestamps = append(s.Timestamps, from.AddDate(0, 0, d))
			s.Values = append(s.Values, value(d))
		}
	}
	add(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 31, func(d int) float64 { return float64(d + 1) })
	add(time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC), 28, func(int) float64 { return 100 })
	add(time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), 31, func(int) float64 { return 10 })
	return s
}

func at(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func writeTestWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	s := testSeries()
	monthly, err := stats.MonthlyMeansOf(s)
	require.NoError(t, err)
	groups, err := stats.BoxGroupsOf(s)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), SummaryFile)
	require.NoError(t, WriteWorkbook(path, monthly, groups))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteWorkbookSheets(t *testing.T) {
	f := writeTestWorkbook(t)
	assert.Equal(t, []string{MonthlySheet, BoxSheet}, f.GetSheetList())
}

func TestWriteWorkbookMonthlyMeans(t *testing.T) {
	f := writeTestWorkbook(t)

	rows, err := f.GetRows(MonthlySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, append([]string{"Year"}, stats.MonthNames()...), rows[0])

	assert.Equal(t, "2019", at(rows[1], 0))
	assert.Equal(t, "16", at(rows[1], 1))
	assert.Equal(t, "100", at(rows[1], 2))
	assert.Equal(t, "", at(rows[1], 3))

	assert.Equal(t, "2020", at(rows[2], 0))
	assert.Equal(t, "", at(rows[2], 1))
	assert.Equal(t, "", at(rows[2], 2))
	assert.Equal(t, "10", at(rows[2], 3))
}

func TestWriteWorkbookBoxSummary(t *testing.T) {
	f := writeTestWorkbook(t)

	rows, err := f.GetRows(BoxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+2+12)

	assert.Equal(t, BoxHeader, rows[0])
	assert.Equal(t, []string{"Year", "2019"}, rows[1][:2])
	assert.Equal(t, "59", at(rows[1], 2))
	assert.Equal(t, []string{"Year", "2020", "31", "10", "10", "10", "10", "10"}, rows[2])

	assert.Equal(t, []string{"Month", "Jan", "31", "1", "8.5", "16", "23.5", "31"}, rows[3])
	assert.Equal(t, "Apr", at(rows[6], 1))
	assert.Equal(t, "0", at(rows[6], 2))
	assert.Equal(t, "", at(rows[6], 3))
	assert.Equal(t, "Dec", at(rows[14], 1))
}

func TestWriteWorkbookNil(t *testing.T) {
	err := WriteWorkbook(filepath.Join(t.TempDir(), SummaryFile), nil, nil)
	assert.Error(t, err)
}
