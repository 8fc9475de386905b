// Package synth generates synthetic daily page-view series.
//
// Each day d of an n-day range gets
//
//	base     = linear 1200 -> 2500 across the range
//	seasonal = 200 * sin(2*pi * dayOfYear / 365.25)
//	weekly   = 300 on Saturdays and Sundays
//	noise    ~ Normal(0, 80)
//	value    = round(base + seasonal + weekly + noise)
//
// The noise vector is drawn in one pass from a single source seeded once,
// so a fixed seed and range always give the same series:
//
//	s, err := synth.Generate(
//	    time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC),
//	    time.Date(2019, 12, 3, 0, 0, 0, 0, time.UTC),
//	    42,
//	)
package synth
