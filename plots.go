package larreco

import (
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CountsPlot draws one bar per value, in the order given.
func CountsPlot(counts []ValueCount, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "events"
	p.Y.Tick.Marker = CountTicks{NSuggestedTicks: 5}

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Value
	}

	bars, err := plotter.NewBarChart(values, 4*vg.Millimeter)
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{B: 255, A: 255}
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = -1
	return p, nil
}

// EfficiencyPlot overlays the wasright distribution of all events and of
// the events with a score neither 0 nor NaN.
func EfficiencyPlot(c *EfficiencyCounts, title string) *hplot.Plot {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = "wasright"
	p.Y.Tick.Marker = CountTicks{NSuggestedTicks: 5}

	all := hplot.NewH1D(c.WasRight)
	all.FillColor = nil
	all.LineStyle.Color = color.RGBA{A: 255}
	all.Infos.Style = hplot.HInfoNone

	notZero := hplot.NewH1D(c.WasRightNotZeroNaN)
	notZero.FillColor = nil
	notZero.LineStyle.Color = color.RGBA{B: 255, A: 255}
	notZero.Infos.Style = hplot.HInfoNone

	p.Add(all, notZero)
	p.Legend.Add("all", all)
	p.Legend.Add("not 0/NaN", notZero)
	p.Legend.Top = true
	return p
}
