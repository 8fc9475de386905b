package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/pageviews/timeseries"
)

// ErrInvalidRange is returned when the end date precedes the start date.
var ErrInvalidRange = errors.New("end date before start date")

// Options holds the additive model's coefficients.
type Options struct {
	TrendStart        float64 // Base level on the first day
	TrendEnd          float64 // Base level on the last day
	SeasonalAmplitude float64 // Peak of the yearly sine wave
	YearLength        float64 // Period of the yearly wave, in days
	WeekendBoost      float64 // Added on Saturdays and Sundays
	NoiseSigma        float64 // Standard deviation of the Gaussian noise
}

// DefaultOptions returns the page-view model coefficients.
func DefaultOptions() Options {
	return Options{
		TrendStart:        1200,
		TrendEnd:          2500,
		SeasonalAmplitude: 200,
		YearLength:        365.25,
		WeekendBoost:      300,
		NoiseSigma:        80,
	}
}

func (o Options) validate() error {
	if o.YearLength <= 0 {
		return errors.Errorf("year length must be positive, got %v", o.YearLength)
	}
	if o.NoiseSigma < 0 || math.IsNaN(o.NoiseSigma) {
		return errors.Errorf("noise sigma must be non-negative, got %v", o.NoiseSigma)
	}
	return nil
}

// Days returns the number of calendar days in [start, end].
func Days(start, end time.Time) int {
	return int(timeseries.Day(end).Sub(timeseries.Day(start)).Hours()/24) + 1
}

// Generate produces one value per day in [start, end] with the default
// model.
func Generate(start, end time.Time, seed uint64) (*timeseries.Series, error) {
	return GenerateWithOptions(start, end, seed, DefaultOptions())
}

// GenerateWithOptions produces one value per day in [start, end].
func GenerateWithOptions(start, end time.Time, seed uint64, opts Options) (*timeseries.Series, error) {
	start, end = timeseries.Day(start), timeseries.Day(end)
	if end.Before(start) {
		return nil, errors.Wrapf(ErrInvalidRange, "%s > %s",
			start.Format(timeseries.ISODate), end.Format(timeseries.ISODate))
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := Days(start, end)

	dist := distuv.Normal{Mu: 0, Sigma: opts.NoiseSigma, Src: rand.NewPCG(seed, seed)}
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = dist.Rand()
	}

	s := &timeseries.Series{
		Timestamps: make([]time.Time, n),
		Values:     make([]float64, n),
		Name:       "value",
	}
	for d := 0; d < n; d++ {
		day := start.AddDate(0, 0, d)
		v := base(d, n, opts) + seasonal(day, opts) + weekly(day, opts) + noise[d]
		s.Timestamps[d] = day
		s.Values[d] = math.RoundToEven(v)
	}
	return s, nil
}

func base(d, n int, opts Options) float64 {
	if n == 1 {
		return opts.TrendStart
	}
	return opts.TrendStart + (opts.TrendEnd-opts.TrendStart)*float64(d)/float64(n-1)
}

func seasonal(day time.Time, opts Options) float64 {
	return opts.SeasonalAmplitude * math.Sin(2*math.Pi*float64(day.YearDay())/opts.YearLength)
}

func weekly(day time.Time, opts Options) float64 {
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return opts.WeekendBoost
	}
	return 0
}
