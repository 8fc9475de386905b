package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNoData is returned when a CSV holds a header but no observations.
	ErrNoData = errors.New("no data rows found in CSV")
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("required column not found in CSV header")
	// ErrDuplicateDate is returned when a date repeats under DuplicateError.
	ErrDuplicateDate = errors.New("duplicate date in CSV")
)

// ParseError describes a cell that could not be parsed.
type ParseError struct {
	Row    int // 1-based line number in the file, header included
	Column string
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %q: cannot parse %q: %v", e.Row, e.Column, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicatePolicy decides what the loader does with repeated dates.
type DuplicatePolicy string

const (
	DuplicateError     DuplicatePolicy = "error"
	DuplicateKeepFirst DuplicatePolicy = "first"
	DuplicateKeepLast  DuplicatePolicy = "last"
)

// ParseDuplicatePolicy converts a config string into a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DuplicateError, nil
	case DuplicateError, DuplicateKeepFirst, DuplicateKeepLast:
		return p, nil
	default:
		return "", errors.Errorf("unknown duplicate policy %q", s)
	}
}

// ISODate is the layout used for reading and writing dates.
const ISODate = "2006-01-02"

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string          // Column name for dates (default: "date")
	ValueColumn string          // Column name for values (default: "value")
	DateFormat  string          // Preferred date layout (default: ISODate)
	Delimiter   rune            // Field delimiter (default: ',')
	SkipRows    int             // Number of rows to skip before the header
	Duplicates  DuplicatePolicy // Handling of repeated dates (default: DuplicateError)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  ISODate,
		Delimiter:   ',',
		Duplicates:  DuplicateError,
	}
}

// LoadCSV loads a daily series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return s, nil
}

type row struct {
	ts  time.Time
	val float64
}

// LoadCSVFromReader loads a daily series from an io.Reader.
// Malformed dates or non-integer values abort the load with a *ParseError.
// The returned series is sorted by date.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	opts = withDefaults(opts)

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "skip rows")
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	dateIdx, valueIdx := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch h {
		case opts.DateColumn:
			dateIdx = i
		case opts.ValueColumn:
			valueIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, errors.Wrapf(ErrMissingColumn, "column %q", opts.DateColumn)
	}
	if valueIdx == -1 {
		return nil, errors.Wrapf(ErrMissingColumn, "column %q", opts.ValueColumn)
	}

	var rows []row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", line)
		}

		dateStr := strings.TrimSpace(record[dateIdx])
		ts, err := parseDate(dateStr, opts.DateFormat)
		if err != nil {
			return nil, &ParseError{Row: line, Column: opts.DateColumn, Text: dateStr, Err: err}
		}

		valStr := strings.TrimSpace(record[valueIdx])
		val, err := parseCount(valStr)
		if err != nil {
			return nil, &ParseError{Row: line, Column: opts.ValueColumn, Text: valStr, Err: err}
		}

		rows = append(rows, row{ts: ts, val: val})
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ts.Before(rows[j].ts) })

	rows, err = dedupe(rows, opts.Duplicates)
	if err != nil {
		return nil, err
	}

	s := &Series{
		Timestamps: make([]time.Time, len(rows)),
		Values:     make([]float64, len(rows)),
		Name:       opts.ValueColumn,
	}
	for i, rw := range rows {
		s.Timestamps[i] = rw.ts
		s.Values[i] = rw.val
	}
	return s, nil
}

func withDefaults(opts *CSVOptions) *CSVOptions {
	def := DefaultCSVOptions()
	if opts == nil {
		return def
	}
	o := *opts
	if o.DateColumn == "" {
		o.DateColumn = def.DateColumn
	}
	if o.ValueColumn == "" {
		o.ValueColumn = def.ValueColumn
	}
	if o.DateFormat == "" {
		o.DateFormat = def.DateFormat
	}
	if o.Delimiter == 0 {
		o.Delimiter = def.Delimiter
	}
	if o.Duplicates == "" {
		o.Duplicates = def.Duplicates
	}
	return &o
}

// dedupe expects rows stably sorted by date.
func dedupe(rows []row, policy DuplicatePolicy) ([]row, error) {
	out := rows[:0:0]
	for _, rw := range rows {
		n := len(out)
		if n == 0 || !out[n-1].ts.Equal(rw.ts) {
			out = append(out, rw)
			continue
		}
		switch policy {
		case DuplicateKeepFirst:
		case DuplicateKeepLast:
			out[n-1] = rw
		default:
			return nil, errors.Wrapf(ErrDuplicateDate, "date %s", rw.ts.Format(ISODate))
		}
	}
	return out, nil
}

func parseDate(s, layout string) (time.Time, error) {
	layouts := []string{layout, ISODate, "2006-01-02 15:04:05", time.RFC3339}
	var err error
	for _, l := range layouts {
		var ts time.Time
		if ts, err = time.Parse(l, s); err == nil {
			return Day(ts), nil
		}
	}
	return time.Time{}, err
}

// parseCount accepts integers and integer-valued decimals such as "1200.0".
func parseCount(s string) (float64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.New("not an integer")
	}
	return f, nil
}

// WriteCSV writes the series as "date,value" rows with ISO dates and
// integer values.
func WriteCSV(w io.Writer, series *Series) error {
	if len(series.Timestamps) != len(series.Values) {
		return errors.New("timestamps and values must have the same length")
	}
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "value"}); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i, v := range series.Values {
		rec := []string{
			series.Timestamps[i].Format(ISODate),
			strconv.FormatInt(int64(math.Round(v)), 10),
		}
		if err := writer.Write(rec); err != nil {
			return errors.Wrapf(err, "write row %d", i+1)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}

// SaveCSV saves the series to filename, replacing any existing file.
func SaveCSV(series *Series, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close csv")
		}
	}()
	return WriteCSV(file, series)
}
