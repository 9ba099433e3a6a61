// Package chart renders the cumulative word-frequency table: per-date
// horizontal bar frames, an animated GIF race, and a static ranking PNG.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/dtnitsch/palabras/pkg/history"
)

const (
	frameWidth  = 8 * vg.Inch
	frameHeight = 5 * vg.Inch
)

var barWidth = vg.Points(10)

var barColor = color.RGBA{R: 66, G: 133, B: 244, A: 255}

// FrameBars returns one date's bars sorted ascending by count so the
// largest bar renders on top, ties keeping column order.
func FrameBars(t *history.Table, date string) []history.Rank {
	ranks := t.TopN(date, len(t.Words()))
	// TopN is descending; reverse into bottom-to-top plot order.
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return ranks
}

// renderFrame draws one horizontal bar chart. xmax fixes the x-axis so
// every animation frame shares the same scale; the date is annotated in
// the top-right corner.
func renderFrame(bars []history.Rank, date string, xmax float64) (image.Image, error) {
	p, err := barPlot(bars, xmax)
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Word Frequency Over Time"

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: xmax, Y: float64(len(bars)) - 0.5}},
		Labels: []string{"Date: " + date},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build date label: %w", err)
	}
	labels.TextStyle[0].XAlign = text.XRight
	p.Add(labels)

	canvas := vgimg.New(frameWidth, frameHeight)
	p.Draw(vgdraw.New(canvas))
	return canvas.Image(), nil
}

// WriteRankingPNG renders a single static bar chart of the given ranking
// (descending, as produced by Table.TopN) to a PNG file.
func WriteRankingPNG(path string, ranks []history.Rank, date string) error {
	bars := make([]history.Rank, len(ranks))
	for i, r := range ranks {
		bars[len(ranks)-1-i] = r
	}

	xmax := 0.0
	for _, b := range bars {
		if float64(b.Count) > xmax {
			xmax = float64(b.Count)
		}
	}

	p, err := barPlot(bars, xmax)
	if err != nil {
		return err
	}
	p.Title.Text = "Word Frequency on " + date

	if err := p.Save(frameWidth, frameHeight, path); err != nil {
		return fmt.Errorf("failed to save ranking PNG: %w", err)
	}
	return nil
}

func barPlot(bars []history.Rank, xmax float64) (*plot.Plot, error) {
	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	for i, b := range bars {
		values[i] = float64(b.Count)
		names[i] = b.Word
	}

	barChart, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	barChart.Horizontal = true
	barChart.Color = barColor
	barChart.LineStyle.Width = 0

	p := plot.New()
	p.X.Label.Text = "Cumulative Word Count"
	p.Y.Label.Text = "Words"
	p.X.Min = 0
	p.X.Max = xmax + 1
	p.Add(barChart)
	p.NominalY(names...)
	return p, nil
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
