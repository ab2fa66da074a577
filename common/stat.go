package common

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// ECDF returns the empirical CDF of samples as plot points: the k-th
// smallest value (1-indexed) carries probability k/n. Consecutive equal
// values are collapsed into one point at the highest probability so the
// plotted curve stays monotone. The input slice is not modified.
func ECDF(samples []float64) (plotter.XYs, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	vals := make([]float64, n)
	copy(vals, samples)
	stat.SortWeighted(vals, nil)
	ecdfs := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if i+1 < n && vals[i+1] == vals[i] {
			continue
		}
		ecdfs = append(ecdfs, plotter.XY{X: vals[i], Y: stat.CDF(vals[i], stat.Empirical, vals, nil)})
	}
	return ecdfs, nil
}

// Summarize computes the reporting statistics of one sample set.
func Summarize(samples []float64) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, fmt.Errorf("%w: summary over zero samples", ErrEmptyInput)
	}
	vals := make([]float64, n)
	copy(vals, samples)
	stat.SortWeighted(vals, nil)
	std := 0.0
	if n > 1 {
		std = stat.StdDev(vals, nil)
	}
	return Summary{
		Mean:  stat.Mean(vals, nil),
		Std:   std,
		Min:   vals[0],
		P10:   stat.Quantile(0.10, stat.Empirical, vals, nil),
		P25:   stat.Quantile(0.25, stat.Empirical, vals, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, vals, nil),
		P75:   stat.Quantile(0.75, stat.Empirical, vals, nil),
		P90:   stat.Quantile(0.90, stat.Empirical, vals, nil),
		Max:   vals[n-1],
		Count: n,
	}, nil
}
