/*
PURPOSE:
  Closed-form throughput model. Maps five parameters to effective headway,
  trains per hour and a stability index.

REQUIREMENTS:
  User-specified:
  - Fixed constants (0.2, 0.75, 0.8, 0.12, 30, 100). Displayed numbers must
    match the published widget exactly, so none of them are configurable.
  - AI precision discounts variability and shortens headway with
    diminishing returns.

  Implementation-discovered:
  - Rounding is half-up, the way the widget displays it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/view, internal/cli
  - Consumes: internal/model

ERROR HANDLING:
  - None. Compute is total; out-of-range variability is clamped.

IMPLEMENTATION RULES:
  - Pure functions only. No logging, no globals that mutate.

USAGE:
  m := metrics.Compute(params)

RELATED FILES:
  - internal/metrics/sweep.go
*/

package metrics

import (
	"math"

	"github.com/daryltucker/headway-lab/internal/model"
)

const (
	dwellWeight         = 0.2
	aiVariabilityCut    = 0.75
	maxVariability      = 0.8
	bufferPerVariance   = 0.8
	aiHeadwayGain       = 0.12
	aiGainExponent      = 0.8
	minEffectiveHeadway = 30.0
	secondsPerHour      = 3600.0
	maxStability        = 100
)

// Terms are the intermediate values of one computation.
type Terms struct {
	TechnicalHeadway     float64 `json:"technical_headway_s"`
	EffectiveVariability float64 `json:"effective_variability"`
	BufferMultiplier     float64 `json:"buffer_multiplier"`
	AIBenefit            float64 `json:"ai_benefit"`
}

// Breakdown evaluates the intermediate terms for p.
func Breakdown(p model.Parameters) Terms {
	effVar := Clamp(p.Variability*(1-aiVariabilityCut*p.AI), 0, maxVariability)
	return Terms{
		TechnicalHeadway:     p.Headway + p.Clearance + dwellWeight*p.Dwell,
		EffectiveVariability: effVar,
		BufferMultiplier:     1 + bufferPerVariance*effVar,
		AIBenefit:            1 - aiHeadwayGain*math.Pow(p.AI, aiGainExponent),
	}
}

// Compute maps p to its metrics.
func Compute(p model.Parameters) model.Metrics {
	t := Breakdown(p)

	effective := math.Max(minEffectiveHeadway, t.TechnicalHeadway*t.BufferMultiplier*t.AIBenefit)
	stability := RoundHalfUp(maxStability * (1 - t.EffectiveVariability) / t.AIBenefit)

	return model.Metrics{
		EffectiveHeadway: effective,
		TPH:              secondsPerHour / effective,
		Stability:        int(Clamp(stability, 0, maxStability)),
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// RoundHalfUp rounds to the nearest integer, ties toward +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
