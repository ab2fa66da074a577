package common

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Curve is one labeled CDF to overlay on a comparison chart.
type Curve struct {
	Label  string
	Points plotter.XYs
}

// PlotCDF overlays the curves on a single chart titled after the metric
// and writes it to outpath. NaN for xmin or xmax leaves that axis end to
// autoscale. The y axis is always the [0,1] probability range.
func PlotCDF(title, xlabel, outpath string, xmin, xmax float64, curves ...Curve) error {
	if len(curves) == 0 {
		return fmt.Errorf("%w: no curves for %s", ErrEmptyInput, outpath)
	}
	args := make([]interface{}, 0, 2*len(curves))
	for _, c := range curves {
		if len(c.Points) == 0 {
			return fmt.Errorf("%w: curve %q for %s", ErrEmptyInput, c.Label, outpath)
		}
		args = append(args, c.Label, c.Points)
	}
	pcdf := plot.New()
	if err := plotutil.AddLinePoints(pcdf, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outpath, err)
	}
	pcdf.Title.Text = title
	pcdf.X.Label.Text = xlabel
	pcdf.Y.Label.Text = "CDF"
	if !math.IsNaN(xmin) {
		pcdf.X.Min = xmin
	}
	if !math.IsNaN(xmax) {
		pcdf.X.Max = xmax
	}
	pcdf.Y.Min = 0
	pcdf.Y.Max = 1
	return savePlot(pcdf, outpath)
}

// savePlot renders to a temp file and renames it into place, so a failed
// render never leaves a truncated chart behind.
func savePlot(p *plot.Plot, outpath string) error {
	format := strings.TrimPrefix(filepath.Ext(outpath), ".")
	if format == "" {
		format = "pdf"
	}
	wt, err := p.WriterTo(4*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outpath, err)
	}
	tmp := outpath + ".tmp"
	w, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, tmp, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		w.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, tmp, err)
	}
	if err := w.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, tmp, err)
	}
	if err := os.Rename(tmp, outpath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outpath, err)
	}
	return nil
}
