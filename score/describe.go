package score

import (
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/hierarchia/dominance"
)

// Summary is a descriptive summary of a sample.
type Summary struct {
	Count    int
	Mean     float64
	StdDev   float64 // sample standard deviation
	Variance float64 // sample variance
	Min      float64
	Max      float64
	P25      float64
	P50      float64
	P75      float64
}

// Describe summarises samples. An empty sample yields stats.EmptyInputErr.
func Describe(samples []float64) (Summary, error) {
	data := stats.Float64Data(samples)
	var (
		sum Summary
		err error
	)
	sum.Count = len(samples)
	if sum.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if sum.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return Summary{}, err
	}
	if sum.Variance, err = stats.SampleVariance(data); err != nil {
		return Summary{}, err
	}
	if sum.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if sum.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if sum.P25, err = stats.Percentile(data, 25); err != nil {
		return Summary{}, err
	}
	if sum.P50, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if sum.P75, err = stats.Percentile(data, 75); err != nil {
		return Summary{}, err
	}

	return sum, nil
}

// Rounded returns a copy with every statistic rounded to Precision.
func (s Summary) Rounded() Summary {
	r := func(v float64) float64 { return dominance.Round(v, dominance.Precision) }
	return Summary{
		Count:    s.Count,
		Mean:     r(s.Mean),
		StdDev:   r(s.StdDev),
		Variance: r(s.Variance),
		Min:      r(s.Min),
		Max:      r(s.Max),
		P25:      r(s.P25),
		P50:      r(s.P50),
		P75:      r(s.P75),
	}
}
