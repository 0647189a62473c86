/*
PURPOSE:
  Binds the throughput model to a page. Reads the five controls, writes the
  value labels and KPIs, and keeps the demo chart's two sweeps current.

REQUIREMENTS:
  User-specified:
  - Every input event triggers a full, synchronous recompute and redraw.
  - "Reset" restores fixed defaults, "Randomize" draws from fixed ranges.
  - Missing elements are skipped silently, never reported to the user.

  Implementation-discovered:
  - The demo chart is built lazily on the first refresh and then mutated
    in place. If the page has no canvas or no chart library, only the
    chart sub-step is skipped; labels and KPIs still update.
  - A missing control reads as its default value.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (demo, sweep), cmd/wasm
  - Uses: internal/metrics, internal/output (logger)

ERROR HANDLING:
  - Chart construction and redraw errors are logged at warn level and
    swallowed.

IMPLEMENTATION RULES:
  - All state lives in ViewState; no package-level mutable state.
  - Not safe for concurrent use. Hosts dispatch events on one goroutine.

USAGE:
  v := view.New(page, view.Options{NewChart: factory})
  v.Init()

RELATED FILES:
  - internal/view/dom.go
  - internal/view/chart.go
  - internal/dom/page.go
*/

package view

import (
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/daryltucker/headway-lab/internal/metrics"
	"github.com/daryltucker/headway-lab/internal/model"
	"github.com/daryltucker/headway-lab/internal/output"
)

// Options configures a ViewState. Zero fields take defaults.
type Options struct {
	NewChart ChartFactory
	Defaults *model.Controls
	Ranges   *model.RandomRanges
	Rand     *rand.Rand
	Now      func() time.Time
	Logger   *slog.Logger
}

// Binding is one explicit (element, event, handler) registration.
type Binding struct {
	ID      string
	Event   string
	Handler func()
}

// ViewState owns the page handles and the demo chart.
type ViewState struct {
	doc      Document
	newChart ChartFactory
	demo     Chart
	defaults model.Controls
	ranges   model.RandomRanges
	random   func() float64
	now      func() time.Time
	logger   *slog.Logger
}

// New builds a ViewState over doc.
func New(doc Document, opts Options) *ViewState {
	v := &ViewState{
		doc:      doc,
		newChart: opts.NewChart,
		defaults: model.DefaultControls(),
		ranges:   model.DefaultRanges(),
		random:   rand.Float64,
		now:      time.Now,
		logger:   output.Logger,
	}
	if opts.Defaults != nil {
		v.defaults = *opts.Defaults
	}
	if opts.Ranges != nil {
		v.ranges = *opts.Ranges
	}
	if opts.Rand != nil {
		v.random = opts.Rand.Float64
	}
	if opts.Now != nil {
		v.now = opts.Now
	}
	if opts.Logger != nil {
		v.logger = opts.Logger
	}
	return v
}

// Init draws the static page parts, binds the controls and renders once.
func (v *ViewState) Init() {
	v.drawHero()
	if el, ok := v.doc.ElementByID(IDYear); ok {
		el.SetText(strconv.Itoa(v.now().Year()))
	}
	n := v.Bind()
	v.logger.Debug("view bound", "handlers", n)
	v.Refresh()
}

// Bindings lists the page's event registrations.
func (v *ViewState) Bindings() []Binding {
	bs := make([]Binding, 0, 2*len(ControlIDs)+2)
	for _, id := range ControlIDs {
		bs = append(bs,
			Binding{ID: id, Event: EventInput, Handler: v.Refresh},
			Binding{ID: id, Event: EventChange, Handler: v.Refresh},
		)
	}
	return append(bs,
		Binding{ID: IDResetButton, Event: EventClick, Handler: v.Reset},
		Binding{ID: IDRandomButton, Event: EventClick, Handler: v.Randomize},
	)
}

// Bind attaches every binding whose element is on the page and returns how
// many were attached.
func (v *ViewState) Bind() int {
	n := 0
	for _, b := range v.Bindings() {
		el, ok := v.doc.ElementByID(b.ID)
		if !ok {
			continue
		}
		el.On(b.Event, b.Handler)
		n++
	}
	return n
}

// Controls reads the current widget values.
func (v *ViewState) Controls() model.Controls {
	return model.Controls{
		Headway:     v.read(IDHeadway, v.defaults.Headway),
		Dwell:       v.read(IDDwell, v.defaults.Dwell),
		Clearance:   v.read(IDClearance, v.defaults.Clearance),
		Variability: v.read(IDVariability, v.defaults.Variability),
		AI:          v.read(IDAI, v.defaults.AI),
	}
}

// Refresh runs one full recompute-and-redraw cycle.
func (v *ViewState) Refresh() {
	p := v.Controls().Parameters()

	v.writeLabels(p)

	if chart := v.demoChart(); chart != nil {
		points := metrics.Sweep(p, chart.Labels())
		baseline, withAI := metrics.Series(points)
		chart.SetSeries(SeriesBaseline, baseline)
		chart.SetSeries(SeriesAI, withAI)
		if err := chart.Update(); err != nil {
			v.logger.Warn("demo chart redraw failed", "error", err)
		}
	}

	m := metrics.Compute(p)
	v.setText(IDKPIThroughput, FormatTPH(m.TPH))
	v.setText(IDKPIHeadway, metrics.FormatMinSec(m.EffectiveHeadway)+" min")
	v.setText(IDKPIStability, strconv.Itoa(m.Stability))
}

// Reset restores the default controls and refreshes.
func (v *ViewState) Reset() {
	v.writeControls(v.defaults)
	v.Refresh()
}

// Randomize draws every control from its range and refreshes.
func (v *ViewState) Randomize() {
	draw := func(r model.Range) float64 {
		return r.Min + metrics.RoundHalfUp(v.random()*r.Span)
	}
	v.writeControls(model.Controls{
		Headway:     draw(v.ranges.Headway),
		Dwell:       draw(v.ranges.Dwell),
		Clearance:   draw(v.ranges.Clearance),
		Variability: draw(v.ranges.Variability),
		AI:          metrics.RoundHalfUp(v.random()*100) / 100,
	})
	v.Refresh()
}

func (v *ViewState) writeControls(c model.Controls) {
	v.setValue(IDHeadway, FormatNumber(c.Headway))
	v.setValue(IDDwell, FormatNumber(c.Dwell))
	v.setValue(IDClearance, FormatNumber(c.Clearance))
	v.setValue(IDVariability, FormatNumber(c.Variability))
	v.setValue(IDAI, FormatNumber(c.AI))
}

func (v *ViewState) writeLabels(p model.Parameters) {
	v.setText(LabelID(IDHeadway), FormatSeconds(p.Headway))
	v.setText(LabelID(IDDwell), FormatSeconds(p.Dwell))
	v.setText(LabelID(IDClearance), FormatSeconds(p.Clearance))
	v.setText(LabelID(IDVariability), FormatPercent(p.Variability))
	v.setText(LabelID(IDAI), FormatFactor(p.AI))
}

// demoChart returns the demo chart, building it on first use.
func (v *ViewState) demoChart() Chart {
	if v.demo != nil {
		return v.demo
	}
	v.demo = v.buildChart(demoChartSpec())
	return v.demo
}

func (v *ViewState) drawHero() {
	chart := v.buildChart(heroChartSpec())
	if chart == nil {
		return
	}
	if err := chart.Update(); err != nil {
		v.logger.Warn("hero chart draw failed", "error", err)
	}
}

func (v *ViewState) buildChart(spec ChartSpec) Chart {
	if v.newChart == nil {
		return nil
	}
	canvas, ok := v.doc.ElementByID(spec.ID)
	if !ok {
		return nil
	}
	chart, err := v.newChart(canvas, spec)
	if err != nil {
		v.logger.Warn("chart construction failed", "chart", spec.ID, "error", err)
		return nil
	}
	return chart
}

func (v *ViewState) read(id string, fallback float64) float64 {
	el, ok := v.doc.ElementByID(id)
	if !ok {
		return fallback
	}
	return ParseNumber(el.Value())
}

func (v *ViewState) setText(id, text string) {
	if el, ok := v.doc.ElementByID(id); ok {
		el.SetText(text)
	}
}

func (v *ViewState) setValue(id, value string) {
	if el, ok := v.doc.ElementByID(id); ok {
		el.SetValue(value)
	}
}
