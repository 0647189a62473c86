//go:build js && wasm

// Command wasm binds the throughput page to the browser DOM.
// Load it on a page that carries the slider, label, KPI and canvas ids of
// internal/view; Chart.js is optional.
//
//	GOOS=js GOARCH=wasm go build -o headway.wasm ./cmd/wasm
package main

import (
	"syscall/js"

	"github.com/daryltucker/headway-lab/internal/view"
)

func main() {
	doc := document{v: js.Global().Get("document")}
	view.New(doc, view.Options{NewChart: chartJSFactory()}).Init()
	select {} // keep the module alive so the listeners stay registered
}
