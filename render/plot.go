package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Bucket is a histogram bar covering [Lower, Upper).
type Bucket struct {
	Lower float64
	Upper float64
	Count int
}

// Marker is a labelled vertical reference line.
type Marker struct {
	Label string
	Value float64
	Color color.Color
}

// Plot is a histogram with optional reference lines.
type Plot struct {
	Title   string
	XLabel  string
	YLabel  string
	Fill    color.Color
	Buckets []Bucket
	Markers []Marker
}

// PlotRenderer draws plots as PNG images.
type PlotRenderer struct {
	FontFile string
	Width    int // pixels
	Height   int // pixels
}

func NewPlotRenderer(fontFile string) *PlotRenderer {
	return &PlotRenderer{
		FontFile: fontFile,
		Width:    1024,
		Height:   640,
	}
}

// Render draws p and writes it to w as a PNG image.
func (pr *PlotRenderer) Render(w io.Writer, p *Plot) error {
	if len(p.Buckets) == 0 {
		return fmt.Errorf("plot has no buckets")
	}

	var font *truetype.Font
	if pr.FontFile != "" {
		var err error
		font, err = LoadFont(pr.FontFile)
		if err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}

	graph := chart.Chart{
		Title:  p.Title,
		Width:  pr.Width,
		Height: pr.Height,
		Font:   font,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Right: 200},
		},
		XAxis: chart.XAxis{
			Name:  p.XLabel,
			Range: &chart.ContinuousRange{Min: p.Buckets[0].Lower, Max: p.Buckets[len(p.Buckets)-1].Upper},
			Ticks: bucketTicks(p.Buckets),
		},
		YAxis: chart.YAxis{
			Name:  p.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount(p.Buckets) + 1)},
		},
		Series: plotSeries(p),
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	return nil
}

func plotSeries(p *Plot) []chart.Series {
	bars := chart.ContinuousSeries{
		Name:    p.YLabel,
		XValues: make([]float64, len(p.Buckets)),
		YValues: make([]float64, len(p.Buckets)),
	}
	for i, b := range p.Buckets {
		bars.XValues[i] = (b.Lower + b.Upper) / 2
		bars.YValues[i] = float64(b.Count)
	}

	fill := drawingColor(p.Fill)
	series := []chart.Series{
		chart.HistogramSeries{
			Name: p.YLabel,
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
				FillColor:   fill,
			},
			InnerSeries: bars,
		},
	}

	top := float64(maxCount(p.Buckets) + 1)
	for _, m := range p.Markers {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s at %.1f", m.Label, m.Value),
			XValues: []float64{m.Value, m.Value},
			YValues: []float64{0, top},
			Style: chart.Style{
				StrokeColor:     drawingColor(m.Color),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{2, 3},
			},
		})
	}
	return series
}

func bucketTicks(buckets []Bucket) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(buckets)+1)
	for _, b := range buckets {
		ticks = append(ticks, chart.Tick{Value: b.Lower, Label: fmt.Sprintf("%g", b.Lower)})
	}
	last := buckets[len(buckets)-1].Upper
	return append(ticks, chart.Tick{Value: last, Label: fmt.Sprintf("%g", last)})
}

func maxCount(buckets []Bucket) int {
	n := 0
	for _, b := range buckets {
		if b.Count > n {
			n = b.Count
		}
	}
	return n
}

func drawingColor(c color.Color) drawing.Color {
	if c == nil {
		return drawing.ColorBlack
	}
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
