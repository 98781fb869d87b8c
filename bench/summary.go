package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
)

// ErrNoSamples is returned by Summarize for an empty sample.
var ErrNoSamples = errors.New("bench: no samples")

// Summary describes a sample of run durations. StdDev is the population
// standard deviation.
type Summary struct {
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
	Median time.Duration
}

// Summarize computes the descriptive statistics of durations.
func Summarize(durations []time.Duration) (Summary, error) {
	if len(durations) == 0 {
		return Summary{}, ErrNoSamples
	}
	data := make(stats.Float64Data, len(durations))
	for i, d := range durations {
		data[i] = float64(d)
	}

	var (
		s   Summary
		err error
	)
	fields := []struct {
		dst *time.Duration
		fn  func(stats.Float64Data) (float64, error)
	}{
		{&s.Mean, stats.Mean},
		{&s.StdDev, stats.StandardDeviationPopulation},
		{&s.Min, stats.Min},
		{&s.Max, stats.Max},
		{&s.Median, stats.Median},
	}
	for _, f := range fields {
		var v float64
		if v, err = f.fn(data); err != nil {
			return Summary{}, fmt.Errorf("bench: summarize: %w", err)
		}
		*f.dst = time.Duration(v)
	}

	return s, nil
}

// Millis renders d as fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
