package stats

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/sartorproj/pageviews/timeseries"
)

var (
	// ErrEmptySeries is returned when an operation needs at least one value.
	ErrEmptySeries = errors.New("series is empty")
	// ErrInvalidPercentile is returned for percentiles outside [0, 1] or
	// a lower bound above the upper one.
	ErrInvalidPercentile = errors.New("invalid percentile")
)

// Default trimming band: the bottom and top 2.5% are outliers.
const (
	DefaultLowerPercentile = 0.025
	DefaultUpperPercentile = 0.975
)

// Percentile returns the p-th quantile (0 <= p <= 1) of values using
// linear interpolation between the closest ranks: with the values sorted,
// h = (n-1)p and the result lies between x[floor(h)] and x[floor(h)+1].
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return math.NaN(), ErrEmptySeries
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN(), errors.Wrapf(ErrInvalidPercentile, "p=%v", p)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p), nil
}

func percentileSorted(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Bounds is an inclusive value band.
type Bounds struct {
	Lower float64
	Upper float64
}

// Contains reports whether Lower <= v <= Upper.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// PercentileBounds computes the lower and upper percentiles of values.
func PercentileBounds(values []float64, lower, upper float64) (Bounds, error) {
	if lower > upper {
		return Bounds{}, errors.Wrapf(ErrInvalidPercentile, "lower %v above upper %v", lower, upper)
	}
	lo, err := Percentile(values, lower)
	if err != nil {
		return Bounds{}, err
	}
	hi, err := Percentile(values, upper)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Lower: lo, Upper: hi}, nil
}

// TrimPercentiles returns a new series without the observations outside
// the [lower, upper] percentile band of s. Both bounds are inclusive and
// s is left untouched.
func TrimPercentiles(s *timeseries.Series, lower, upper float64) (*timeseries.Series, Bounds, error) {
	if s == nil || s.Len() == 0 {
		return nil, Bounds{}, ErrEmptySeries
	}
	b, err := PercentileBounds(s.Values, lower, upper)
	if err != nil {
		return nil, Bounds{}, err
	}
	cleaned := s.Filter(func(_ time.Time, v float64) bool { return b.Contains(v) })
	return cleaned, b, nil
}
