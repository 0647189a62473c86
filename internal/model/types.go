/*
PURPOSE:
  Defines the core data structures used throughout Headway Lab.
  Parameters in, metrics out, plus the exportable sweep records.

REQUIREMENTS:
  User-specified:
  - Five inputs: headway, dwell, clearance, variability, AI precision.
  - Three outputs: effective headway, trains per hour, stability index.

  Implementation-discovered:
  - Sliders report variability as a percentage; the model wants a fraction.
    Controls keeps the raw widget units, Parameters the model units.
  - Need JSON tags for the snapshot export.

ARCHITECTURE INTEGRATION:
  - Used by: internal/metrics, internal/view, internal/output, internal/cli
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Seconds stay float64 seconds, not time.Duration (values are fractional
    and displayed as plain numbers).

USAGE:
  p := model.Controls{Headway: 120, Variability: 20}.Parameters()

RELATED FILES:
  - internal/metrics/calculator.go
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update CSV/JSON writers when adding fields to SweepPoint or Snapshot.
*/

package model

import (
	"time"
)

// Parameters is one set of model inputs.
type Parameters struct {
	Headway     float64 `json:"headway_s"`   // minimum technical separation, seconds
	Dwell       float64 `json:"dwell_s"`     // station stop, seconds
	Clearance   float64 `json:"clearance_s"` // safety clearance, seconds
	Variability float64 `json:"variability"` // fraction in [0,1]
	AI          float64 `json:"ai"`          // precision factor in [0,1]
}

// WithAI returns a copy of p with the AI factor replaced.
func (p Parameters) WithAI(ai float64) Parameters {
	p.AI = ai
	return p
}

// Metrics are derived from Parameters on every input change.
type Metrics struct {
	EffectiveHeadway float64 `json:"effective_headway_s"`
	TPH              float64 `json:"tph"`
	Stability        int     `json:"stability"`
}

// Controls holds raw control values in widget units.
// Variability is a percentage (0..100).
type Controls struct {
	Headway     float64 `yaml:"headway" json:"headway"`
	Dwell       float64 `yaml:"dwell" json:"dwell"`
	Clearance   float64 `yaml:"clearance" json:"clearance"`
	Variability float64 `yaml:"variability" json:"variability"`
	AI          float64 `yaml:"ai" json:"ai"`
}

// Parameters normalizes the widget values into model units.
func (c Controls) Parameters() Parameters {
	return Parameters{
		Headway:     c.Headway,
		Dwell:       c.Dwell,
		Clearance:   c.Clearance,
		Variability: c.Variability / 100,
		AI:          c.AI,
	}
}

// Range is a uniform draw interval: Min + round(r*Span), r in [0,1).
type Range struct {
	Min  float64 `yaml:"min" json:"min"`
	Span float64 `yaml:"span" json:"span"`
}

// RandomRanges holds the draw interval for each control, in widget units.
// The AI factor is always drawn from [0,1) at two decimals.
type RandomRanges struct {
	Headway     Range `yaml:"headway" json:"headway"`
	Dwell       Range `yaml:"dwell" json:"dwell"`
	Clearance   Range `yaml:"clearance" json:"clearance"`
	Variability Range `yaml:"variability" json:"variability"`
}

// SweepPoint is one x-position of the throughput chart.
type SweepPoint struct {
	AI          float64 `json:"ai"`
	BaselineTPH float64 `json:"baseline_tph"`
	AITPH       float64 `json:"ai_tph"`
}

// Snapshot is the exportable record of one computation.
type Snapshot struct {
	RunID      string       `json:"run_id"`
	Timestamp  time.Time    `json:"timestamp"`
	Parameters Parameters   `json:"parameters"`
	Metrics    Metrics      `json:"metrics"`
	Sweep      []SweepPoint `json:"sweep,omitempty"`
}

// DefaultControls is the parameter set "reset" restores.
func DefaultControls() Controls {
	return Controls{Headway: 120, Dwell: 30, Clearance: 20, Variability: 20, AI: 0.6}
}

// DefaultRanges are the "randomize" draw intervals.
func DefaultRanges() RandomRanges {
	return RandomRanges{
		Headway:     Range{Min: 60, Span: 240},
		Dwell:       Range{Min: 15, Span: 75},
		Clearance:   Range{Min: 10, Span: 50},
		Variability: Range{Min: 0, Span: 50},
	}
}
