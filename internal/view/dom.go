/*
PURPOSE:
  The host-page contract the view binder talks to: element lookup, values,
  text and event listeners. Implemented by the in-memory page (internal/dom)
  and by the browser adapter (cmd/wasm).

ARCHITECTURE INTEGRATION:
  - Implemented by: internal/dom.Page, cmd/wasm
  - Consumed by: internal/view.ViewState

ERROR HANDLING:
  - Lookups report absence with ok=false. Absence is not an error; the
    binder skips whatever needed the element.

RELATED FILES:
  - internal/view/binder.go
*/

package view

// Element is one addressable node on the page.
type Element interface {
	Value() string
	SetValue(v string)
	SetText(s string)
	On(event string, handler func())
}

// Document looks elements up by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Control ids.
const (
	IDHeadway     = "headway"
	IDDwell       = "dwell"
	IDClearance   = "clearance"
	IDVariability = "variability"
	IDAI          = "ai"
)

// Page element ids other than the controls.
const (
	IDResetButton   = "resetBtn"
	IDRandomButton  = "randomBtn"
	IDDemoChart     = "demoChart"
	IDHeroChart     = "heroChart"
	IDKPIThroughput = "kpiThroughput"
	IDKPIHeadway    = "kpiHeadway"
	IDKPIStability  = "kpiStability"
	IDYear          = "year"
)

// Events the binder listens for.
const (
	EventInput  = "input"
	EventChange = "change"
	EventClick  = "click"
)

// ControlIDs lists the slider controls in display order.
var ControlIDs = []string{IDHeadway, IDDwell, IDClearance, IDVariability, IDAI}

// LabelID returns the id of the text label paired with a control.
func LabelID(control string) string {
	return control + "Val"
}

// PageIDs lists every element id the binder knows about.
func PageIDs() []string {
	ids := make([]string, 0, 2*len(ControlIDs)+8)
	for _, id := range ControlIDs {
		ids = append(ids, id, LabelID(id))
	}
	return append(ids,
		IDResetButton, IDRandomButton,
		IDDemoChart, IDHeroChart,
		IDKPIThroughput, IDKPIHeadway, IDKPIStability,
		IDYear,
	)
}
