package view

import (
	"github.com/daryltucker/headway-lab/internal/metrics"
)

// Chart is a line chart the binder mutates in place and redraws.
type Chart interface {
	Labels() []float64
	SetSeries(index int, data []float64)
	Update() error
}

// ChartFactory builds a chart on a canvas element. A nil factory means the
// page has no charting library.
type ChartFactory func(canvas Element, spec ChartSpec) (Chart, error)

// DatasetSpec configures one line.
type DatasetSpec struct {
	Label   string
	Color   string // hex, e.g. "#2563eb"
	Width   float64
	Tension float64
	Data    []float64
}

// ChartSpec is the construction-time description of a chart.
type ChartSpec struct {
	ID       string
	XTitle   string
	YTitle   string
	Labels   []float64
	Datasets []DatasetSpec
}

const (
	colorBaseline = "#94a3b8"
	colorAI       = "#2563eb"
	axisAI        = "AI precision factor"
	axisTPH       = "Trains per hour"
)

// Dataset positions on the demo chart.
const (
	SeriesBaseline = 0
	SeriesAI       = 1
)

func demoChartSpec() ChartSpec {
	xs := metrics.Axis(metrics.SweepPoints)
	return ChartSpec{
		ID:     IDDemoChart,
		XTitle: axisAI,
		YTitle: axisTPH,
		Labels: xs,
		Datasets: []DatasetSpec{
			{Label: "Baseline (ai=0)", Color: colorBaseline, Width: 2, Tension: 0.3, Data: make([]float64, len(xs))},
			{Label: "With AI", Color: colorAI, Width: 3, Tension: 0.3, Data: make([]float64, len(xs))},
		},
	}
}

func heroChartSpec() ChartSpec {
	xs, base, stabilized := metrics.HeroCurve()
	return ChartSpec{
		ID:     IDHeroChart,
		XTitle: axisAI,
		YTitle: axisTPH,
		Labels: xs,
		Datasets: []DatasetSpec{
			{Label: "Baseline", Color: colorBaseline, Width: 2, Tension: 0.35, Data: base},
			{Label: "With AI Control", Color: colorAI, Width: 3, Tension: 0.35, Data: stabilized},
		},
	}
}
