package stlander

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveSpectrumChart writes a bar chart of the three principal surface
// moments to path (format by extension, e.g. .png or .svg). The spread
// between bars is a quick visual check of how well-conditioned the
// alignment was: near-equal bars mean the axis directions are
// underdetermined.
func SaveSpectrumChart(path string, a *Alignment) error {
	p := plot.New()
	p.Title.Text = "Principal surface moments"
	p.Y.Label.Text = "area-weighted variance"

	values := plotter.Values{a.Eigenvalues[0], a.Eigenvalues[1], a.Eigenvalues[2]}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX("PA1", "PA2", "PA3")

	return p.Save(5*vg.Inch, 4*vg.Inch, path)
}
