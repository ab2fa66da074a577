package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestECDFCollapsesDuplicates(t *testing.T) {
	pts, err := ECDF([]float64{10, 20, 20, 30})
	require.NoError(t, err)
	require.Len(t, pts, 3)
	require.Equal(t, 10.0, pts[0].X)
	require.Equal(t, 0.25, pts[0].Y)
	require.Equal(t, 20.0, pts[1].X)
	require.Equal(t, 0.75, pts[1].Y)
	require.Equal(t, 30.0, pts[2].X)
	require.Equal(t, 1.0, pts[2].Y)
}

func TestECDFMonotoneAndEndsAtOne(t *testing.T) {
	pts, err := ECDF([]float64{3.5, 1.2, 9.9, 1.2, 0.4, 7.7})
	require.NoError(t, err)
	require.Equal(t, 1.0, pts[len(pts)-1].Y)
	for i := 1; i < len(pts); i++ {
		require.Greater(t, pts[i].X, pts[i-1].X)
		require.Greater(t, pts[i].Y, pts[i-1].Y)
	}
}

func TestECDFOrderInvariant(t *testing.T) {
	a := []float64{5, 1, 4, 2, 3}
	b := []float64{3, 2, 4, 1, 5}
	pa, err := ECDF(a)
	require.NoError(t, err)
	pb, err := ECDF(b)
	require.NoError(t, err)
	require.Equal(t, pa, pb)
	// the caller's slice is untouched
	require.Equal(t, []float64{5, 1, 4, 2, 3}, a)
}

func TestECDFIdempotent(t *testing.T) {
	s := []float64{2, 7, 7, 2, 9}
	p1, err := ECDF(s)
	require.NoError(t, err)
	p2, err := ECDF(s)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestECDFEmpty(t *testing.T) {
	_, err := ECDF(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 2.5, s.Mean)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 4.0, s.Max)
	require.Equal(t, 4, s.Count)
	require.InDelta(t, 1.29, s.Std, 0.01)
	require.GreaterOrEqual(t, s.P75, s.P50)
	require.GreaterOrEqual(t, s.P50, s.P25)
}

func TestSummarizeSingleSample(t *testing.T) {
	s, err := Summarize([]float64{42})
	require.NoError(t, err)
	require.Equal(t, 42.0, s.Mean)
	require.Equal(t, 0.0, s.Std)
	require.Equal(t, 1, s.Count)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}
