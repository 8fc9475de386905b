package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/pageviews/timeseries"
)

func dailySeries(start time.Time, values []float64) *timeseries.Series {
	ts := make([]time.Time, len(values))
	for i := range values {
		ts[i] = start.AddDate(0, 0, i)
	}
	return &timeseries.Series{Timestamps: ts, Values: values}
}

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		p        float64
		expected float64
	}{
		{"median even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"median odd", []float64{3, 1, 2}, 0.5, 2},
		{"min", []float64{5, 1, 9}, 0, 1},
		{"max", []float64{5, 1, 9}, 1, 9},
		{"interpolated", []float64{10, 20, 30, 40, 50}, 0.1, 14},
		{"lower trim", seq(100), 0.025, 3.475},
		{"upper trim", seq(100), 0.975, 97.525},
		{"single", []float64{7}, 0.3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Percentile(tt.values, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestPercentileErrors(t *testing.T) {
	_, err := Percentile(nil, 0.5)
	assert.ErrorIs(t, err, ErrEmptySeries)

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := Percentile([]float64{1}, p)
		assert.ErrorIs(t, err, ErrInvalidPercentile)
	}

	_, err = PercentileBounds([]float64{1, 2}, 0.9, 0.1)
	assert.ErrorIs(t, err, ErrInvalidPercentile)
}

func TestPercentileDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Percentile(values, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestTrimPercentiles(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := dailySeries(start, seq(200))
	before := raw.Copy()

	cleaned, b, err := TrimPercentiles(raw, DefaultLowerPercentile, DefaultUpperPercentile)
	require.NoError(t, err)

	assert.Equal(t, before, raw, "raw series must not change")
	assert.InDelta(t, 5.975, b.Lower, 1e-9)
	assert.InDelta(t, 195.025, b.Upper, 1e-9)
	assert.Equal(t, 190, cleaned.Len())
	assert.Equal(t, 6.0, cleaned.Values[0])
	assert.Equal(t, 195.0, cleaned.Values[cleaned.Len()-1])
	assert.True(t, cleaned.IsStrictlyIncreasing())
}

func TestTrimPercentilesInclusiveBounds(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	// Ties at the bounds must survive: 2.5th and 97.5th percentiles of this
	// set land exactly on 10 and 20.
	values := []float64{10, 10, 10, 15, 15, 15, 20, 20, 20}
	cleaned, b, err := TrimPercentiles(dailySeries(start, values), 0.025, 0.975)
	require.NoError(t, err)

	assert.Equal(t, Bounds{Lower: 10, Upper: 20}, b)
	assert.Equal(t, values, cleaned.Values)
}

func TestTrimPercentilesNeverDropsInterior(t *testing.T) {
	start := time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)
	values := []float64{900, 1500, 1200, 40, 1300, 1250, 1100, 5000, 1400, 1350,
		1150, 1220, 1330, 1280, 1190, 1260, 1310, 1170, 1240, 1210}
	raw := dailySeries(start, values)

	cleaned, b, err := TrimPercentiles(raw, DefaultLowerPercentile, DefaultUpperPercentile)
	require.NoError(t, err)

	kept := map[time.Time]bool{}
	for _, ts := range cleaned.Timestamps {
		kept[ts] = true
	}
	for i, v := range raw.Values {
		if v > b.Lower && v < b.Upper {
			assert.True(t, kept[raw.Timestamps[i]], "interior value %v dropped", v)
		}
	}
	// Each tail loses at most the ranks strictly below its interpolation point.
	perTail := int(math.Floor(float64(raw.Len()-1)*DefaultLowerPercentile)) + 1
	assert.LessOrEqual(t, raw.Len()-cleaned.Len(), 2*perTail)
	assert.Equal(t, []float64{900, 1500, 1200, 1300, 1250, 1100, 1400, 1350,
		1150, 1220, 1330, 1280, 1190, 1260, 1310, 1170, 1240, 1210}, cleaned.Values)
}

func TestTrimPercentilesEmpty(t *testing.T) {
	_, _, err := TrimPercentiles(&timeseries.Series{}, 0.025, 0.975)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, _, err = TrimPercentiles(nil, 0.025, 0.975)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
