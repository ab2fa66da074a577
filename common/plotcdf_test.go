package common

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCurves(t *testing.T) []Curve {
	t.Helper()
	ratio, err := ECDF([]float64{70, 75, 80})
	require.NoError(t, err)
	gcc, err := ECDF([]float64{55, 60, 65})
	require.NoError(t, err)
	return []Curve{
		{Label: LabelRatio, Points: ratio},
		{Label: LabelGCC, Points: gcc},
	}
}

func TestPlotCDFWritesChart(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vmafcdf.pdf")
	err := PlotCDF("CDF of VMAF", "VMAF score", out, 0, 100, testCurves(t)...)
	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
	// no temp file left behind
	_, err = os.Stat(out + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestPlotCDFOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cdf.pdf")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0644))
	require.NoError(t, PlotCDF("CDF of LPIPS", "LPIPS distance", out, 0, math.NaN(), testCurves(t)...))
	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(5))
}

func TestPlotCDFEmptyCurve(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cdf.pdf")
	err := PlotCDF("CDF of VMAF", "VMAF score", out, 0, 100, Curve{Label: LabelRatio})
	require.ErrorIs(t, err, ErrEmptyInput)
	_, serr := os.Stat(out)
	require.True(t, os.IsNotExist(serr))
}

func TestPlotCDFNoCurves(t *testing.T) {
	err := PlotCDF("CDF of VMAF", "VMAF score", filepath.Join(t.TempDir(), "cdf.pdf"), 0, 100)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestPlotCDFWriteFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "cdf.pdf")
	err := PlotCDF("CDF of VMAF", "VMAF score", out, 0, 100, testCurves(t)...)
	require.ErrorIs(t, err, ErrOutputWrite)
	_, serr := os.Stat(out)
	require.True(t, os.IsNotExist(serr))
}
