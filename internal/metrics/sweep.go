package metrics

import (
	"fmt"
	"math"

	"github.com/daryltucker/headway-lab/internal/model"
)

// SweepPoints is the number of AI-axis samples drawn on the demo chart.
const SweepPoints = 21

// HeroPoints is the number of samples on the static landing chart.
const HeroPoints = 11

// Axis returns n evenly spaced points on [0,1], both ends included.
func Axis(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n-1)
	}
	return xs
}

// Sweep evaluates p at every axis point, once with the AI factor pinned to
// zero (baseline) and once with it set to the point itself.
func Sweep(p model.Parameters, axis []float64) []model.SweepPoint {
	baseline := Compute(p.WithAI(0)).TPH
	points := make([]model.SweepPoint, len(axis))
	for i, ai := range axis {
		points[i] = model.SweepPoint{
			AI:          ai,
			BaselineTPH: baseline,
			AITPH:       Compute(p.WithAI(ai)).TPH,
		}
	}
	return points
}

// Series splits sweep points into chart-ready baseline and AI datasets.
func Series(points []model.SweepPoint) (baseline, withAI []float64) {
	baseline = make([]float64, len(points))
	withAI = make([]float64, len(points))
	for i, pt := range points {
		baseline[i] = pt.BaselineTPH
		withAI[i] = pt.AITPH
	}
	return baseline, withAI
}

// HeroCurve is the illustrative gain curve shown on the landing chart.
// It is independent of any parameters.
func HeroCurve() (xs, baseline, stabilized []float64) {
	xs = Axis(HeroPoints)
	baseline = make([]float64, len(xs))
	stabilized = make([]float64, len(xs))
	for i, x := range xs {
		baseline[i] = 18 + 10*x
		stabilized[i] = 18 + 12*math.Pow(x, 0.7)
	}
	return xs, baseline, stabilized
}

// FormatMinSec renders seconds as m:ss.
func FormatMinSec(seconds float64) string {
	total := int(RoundHalfUp(math.Max(0, seconds)))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
