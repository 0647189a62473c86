/*
PURPOSE:
  A view.Chart that draws with go-chart and writes the image to disk on
  every redraw. This is the charting library the CLI hosts hand to the
  view binder.

REQUIREMENTS:
  Implementation-discovered:
  - A flat baseline plus a flat AI curve (headway pinned at the 30 s floor)
    gives go-chart a zero y-range, which it refuses to draw. The y-axis
    range is therefore always set explicitly from 0 to the data maximum.
  - go-chart has no spline tension; lines are straight segments.

ARCHITECTURE INTEGRATION:
  - Implements: internal/view.Chart, internal/view.ChartFactory
  - Used by: internal/cli (demo, sweep)

ERROR HANDLING:
  - Render and file errors are returned from Update; the view logs them.

USAGE:
  v := view.New(page, view.Options{NewChart: render.Factory(dir, render.SVG, 0, 0)})
*/

package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daryltucker/headway-lab/internal/view"
)

// Format selects the image encoding.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
)

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown chart format %q (want svg or png)", s)
	}
}

func (f Format) provider() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

// Chart holds the datasets of one line chart.
type Chart struct {
	spec   view.ChartSpec
	data   [][]float64
	format Format
	width  int
	height int
	path   string
}

// New builds a chart from spec. path may be empty; Update then only checks
// that the chart renders.
func New(spec view.ChartSpec, format Format, width, height int, path string) *Chart {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	data := make([][]float64, len(spec.Datasets))
	for i, ds := range spec.Datasets {
		data[i] = ds.Data
	}
	return &Chart{spec: spec, data: data, format: format, width: width, height: height, path: path}
}

// Factory returns a view.ChartFactory that writes each chart to
// dir/<canvas id>.<format>. The canvas element's text is set to that path.
func Factory(dir string, format Format, width, height int) view.ChartFactory {
	return func(canvas view.Element, spec view.ChartSpec) (view.Chart, error) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create chart directory %s: %w", dir, err)
		}
		path := filepath.Join(dir, spec.ID+"."+string(format))
		canvas.SetText(path)
		return New(spec, format, width, height, path), nil
	}
}

// Labels returns the x values.
func (c *Chart) Labels() []float64 { return c.spec.Labels }

// Series returns the current data of dataset i.
func (c *Chart) Series(i int) []float64 { return c.data[i] }

// SetSeries replaces dataset i. Out-of-range indexes are ignored.
func (c *Chart) SetSeries(i int, data []float64) {
	if i < 0 || i >= len(c.data) {
		return
	}
	c.data[i] = data
}

// Update redraws the chart into its file.
func (c *Chart) Update() error {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return err
	}
	if c.path == "" {
		return nil
	}
	if err := os.WriteFile(c.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", c.path, err)
	}
	return nil
}

// Render encodes the chart into w.
func (c *Chart) Render(w io.Writer) error {
	series := make([]chart.Series, 0, len(c.data))
	yMax := 0.0
	for i, ds := range c.spec.Datasets {
		ys := c.data[i]
		if len(ys) != len(c.spec.Labels) {
			return fmt.Errorf("chart %s: dataset %q has %d points, want %d", c.spec.ID, ds.Label, len(ys), len(c.spec.Labels))
		}
		for _, y := range ys {
			yMax = math.Max(yMax, y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: c.spec.Labels,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(strings.TrimPrefix(ds.Color, "#")),
				StrokeWidth: ds.Width,
			},
		})
	}
	if yMax <= 0 {
		yMax = 1
	}

	ch := chart.Chart{
		Width:  c.width,
		Height: c.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  c.spec.XTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxis: chart.YAxis{
			Name:  c.spec.YTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: math.Ceil(yMax * 1.1)},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(c.format.provider(), w); err != nil {
		return fmt.Errorf("chart %s: render: %w", c.spec.ID, err)
	}
	return nil
}
