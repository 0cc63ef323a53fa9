// Package report computes summary statistics over a loaded dataset and
// renders them as plots. The box-size plots are the usual starting point
// for choosing anchor scales.
package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ekinp/vocprep/pkg/voc"
)

// Summary aggregates per-dataset statistics.
type Summary struct {
	Images   int
	Boxes    int
	PerClass map[string]int

	MeanWidth    float64
	MeanHeight   float64
	MedianWidth  float64
	MedianHeight float64
}

// Summarize collects box statistics from a dataset.
func Summarize(anns []*voc.Annotation) Summary {
	s := Summary{
		Images:   len(anns),
		PerClass: make(map[string]int),
	}
	var widths, heights []float64
	for _, ann := range anns {
		for _, box := range ann.GTBoxes {
			s.Boxes++
			s.PerClass[box.ClassName]++
			widths = append(widths, float64(box.XMax-box.XMin))
			heights = append(heights, float64(box.YMax-box.YMin))
		}
	}
	if s.Boxes == 0 {
		return s
	}
	s.MeanWidth = stat.Mean(widths, nil)
	s.MeanHeight = stat.Mean(heights, nil)
	sort.Float64s(widths)
	sort.Float64s(heights)
	s.MedianWidth = stat.Quantile(0.5, stat.Empirical, widths, nil)
	s.MedianHeight = stat.Quantile(0.5, stat.Empirical, heights, nil)
	return s
}

// WriteBoxSizePlot renders a width-versus-height scatter of every
// ground-truth box to a PNG/PDF/SVG file (format by extension).
func WriteBoxSizePlot(anns []*voc.Annotation, path string) error {
	var pts plotter.XYs
	for _, ann := range anns {
		for _, box := range ann.GTBoxes {
			pts = append(pts, plotter.XY{
				X: float64(box.XMax - box.XMin),
				Y: float64(box.YMax - box.YMin),
			})
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("no ground-truth boxes to plot")
	}

	p := plot.New()
	p.Title.Text = "Ground-truth box sizes"
	p.X.Label.Text = "width (px)"
	p.Y.Label.Text = "height (px)"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.Radius = vg.Points(1.5)
	p.Add(scatter, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// WriteClassCountPlot renders a bar chart of per-class box counts.
func WriteClassCountPlot(anns []*voc.Annotation, path string) error {
	counts := Summarize(anns).PerClass
	if len(counts) == 0 {
		return fmt.Errorf("no ground-truth boxes to plot")
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(plotter.Values, len(names))
	for i, name := range names {
		values[i] = float64(counts[name])
	}

	p := plot.New()
	p.Title.Text = "Ground-truth boxes per class"
	p.Y.Label.Text = "boxes"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.8

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
