//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/daryltucker/headway-lab/internal/view"
)

// document adapts the browser document to view.Document.
type document struct {
	v js.Value
}

func (d document) ElementByID(id string) (view.Element, bool) {
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &element{v: el}, true
}

type element struct {
	v js.Value
}

func (e *element) Value() string { return e.v.Get("value").String() }
func (e *element) SetValue(s string) { e.v.Set("value", s) }
func (e *element) SetText(s string) { e.v.Set("textContent", s) }

// On registers a listener for the lifetime of the page; the js.Func is
// never released.
func (e *element) On(event string, handler func()) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	e.v.Call("addEventListener", event, fn)
}

// chartJS drives a Chart.js instance.
type chartJS struct {
	v      js.Value
	labels []float64
}

// chartJSFactory returns nil when the page did not load Chart.js.
func chartJSFactory() view.ChartFactory {
	ctor := js.Global().Get("Chart")
	if ctor.IsUndefined() || ctor.IsNull() {
		return nil
	}
	return func(canvas view.Element, spec view.ChartSpec) (chart view.Chart, err error) {
		el, ok := canvas.(*element)
		if !ok {
			return nil, fmt.Errorf("canvas %s is not a browser element", spec.ID)
		}
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("Chart.js construction failed: %v", r)
			}
		}()
		v := ctor.New(el.v, js.ValueOf(chartConfig(spec)))
		return &chartJS{v: v, labels: spec.Labels}, nil
	}
}

func (c *chartJS) Labels() []float64 { return c.labels }

func (c *chartJS) SetSeries(i int, data []float64) {
	c.v.Get("data").Get("datasets").Index(i).Set("data", js.ValueOf(floats(data)))
}

func (c *chartJS) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Chart.js update failed: %v", r)
		}
	}()
	c.v.Call("update")
	return nil
}

func chartConfig(spec view.ChartSpec) map[string]any {
	datasets := make([]any, len(spec.Datasets))
	for i, ds := range spec.Datasets {
		datasets[i] = map[string]any{
			"label":           ds.Label,
			"data":            floats(ds.Data),
			"borderColor":     ds.Color,
			"backgroundColor": "transparent",
			"borderWidth":     ds.Width,
			"tension":         ds.Tension,
		}
	}
	axis := func(title string) map[string]any {
		return map[string]any{"title": map[string]any{"display": true, "text": title}}
	}
	return map[string]any{
		"type": "line",
		"data": map[string]any{
			"labels":   floats(spec.Labels),
			"datasets": datasets,
		},
		"options": map[string]any{
			"animation":  false,
			"responsive": true,
			"plugins":    map[string]any{"legend": map[string]any{"position": "bottom"}},
			"scales": map[string]any{
				"x": axis(spec.XTitle),
				"y": axis(spec.YTitle),
			},
		},
	}
}

func floats(xs []float64) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
