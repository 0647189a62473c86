package metrics

import (
	"math"
	"testing"

	"github.com/daryltucker/headway-lab/internal/model"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeWorkedExamples(t *testing.T) {
	base := model.Parameters{Headway: 120, Dwell: 30, Clearance: 20, Variability: 0.2}

	tests := []struct {
		name      string
		ai        float64
		terms     Terms
		headway   float64
		tph       float64
		stability int
	}{
		{
			name:      "no ai",
			ai:        0,
			terms:     Terms{TechnicalHeadway: 146, EffectiveVariability: 0.2, BufferMultiplier: 1.16, AIBenefit: 1},
			headway:   169.36,
			tph:       21.256495040151155,
			stability: 80,
		},
		{
			name:      "ai 0.6",
			ai:        0.6,
			terms:     Terms{TechnicalHeadway: 146, EffectiveVariability: 0.11, BufferMultiplier: 1.088, AIBenefit: 0.9202552232861231},
			headway:   146.1807017085541,
			tph:       24.627053762386872,
			stability: 97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base.WithAI(tt.ai)

			got := Breakdown(p)
			if !near(got.TechnicalHeadway, tt.terms.TechnicalHeadway, eps) {
				t.Errorf("technical headway = %v, want %v", got.TechnicalHeadway, tt.terms.TechnicalHeadway)
			}
			if !near(got.EffectiveVariability, tt.terms.EffectiveVariability, eps) {
				t.Errorf("effective variability = %v, want %v", got.EffectiveVariability, tt.terms.EffectiveVariability)
			}
			if !near(got.BufferMultiplier, tt.terms.BufferMultiplier, eps) {
				t.Errorf("buffer multiplier = %v, want %v", got.BufferMultiplier, tt.terms.BufferMultiplier)
			}
			if !near(got.AIBenefit, tt.terms.AIBenefit, 1e-6) {
				t.Errorf("ai benefit = %v, want %v", got.AIBenefit, tt.terms.AIBenefit)
			}

			m := Compute(p)
			if !near(m.EffectiveHeadway, tt.headway, 1e-6) {
				t.Errorf("effective headway = %v, want %v", m.EffectiveHeadway, tt.headway)
			}
			if !near(m.TPH, tt.tph, 1e-6) {
				t.Errorf("tph = %v, want %v", m.TPH, tt.tph)
			}
			if m.Stability != tt.stability {
				t.Errorf("stability = %d, want %d", m.Stability, tt.stability)
			}
		})
	}
}

func TestComputeFloorsHeadway(t *testing.T) {
	m := Compute(model.Parameters{Headway: 10, AI: 1})
	if m.EffectiveHeadway != 30 {
		t.Fatalf("effective headway = %v, want 30", m.EffectiveHeadway)
	}
	if m.TPH != 120 {
		t.Fatalf("tph = %v, want 120", m.TPH)
	}
}

func TestComputeZeroAI(t *testing.T) {
	for _, v := range []float64{0, 0.3, 0.8, 0.95, 1} {
		terms := Breakdown(model.Parameters{Headway: 100, Variability: v})
		if terms.AIBenefit != 1 {
			t.Errorf("variability %v: ai benefit = %v, want 1", v, terms.AIBenefit)
		}
		if want := math.Min(v, 0.8); !near(terms.EffectiveVariability, want, eps) {
			t.Errorf("variability %v: effective variability = %v, want %v", v, terms.EffectiveVariability, want)
		}
	}
}

// grid walks the control ranges the widget allows.
func grid(fn func(p model.Parameters)) {
	for headway := 60.0; headway <= 300; headway += 40 {
		for dwell := 0.0; dwell <= 90; dwell += 15 {
			for clearance := 0.0; clearance <= 60; clearance += 20 {
				for v := 0.0; v <= 1.0001; v += 0.1 {
					for _, ai := range Axis(SweepPoints) {
						fn(model.Parameters{Headway: headway, Dwell: dwell, Clearance: clearance, Variability: v, AI: ai})
					}
				}
			}
		}
	}
}

func TestComputeInvariants(t *testing.T) {
	grid(func(p model.Parameters) {
		m := Compute(p)
		if m.EffectiveHeadway < 30 {
			t.Fatalf("%+v: effective headway %v below floor", p, m.EffectiveHeadway)
		}
		if m.Stability < 0 || m.Stability > 100 {
			t.Fatalf("%+v: stability %d out of range", p, m.Stability)
		}
		if !near(m.TPH*m.EffectiveHeadway, 3600, 1e-6) {
			t.Fatalf("%+v: tph %v inconsistent with headway %v", p, m.TPH, m.EffectiveHeadway)
		}
	})
}

func TestComputeMonotonicInAI(t *testing.T) {
	grid(func(p model.Parameters) {
		if p.AI != 0 {
			return
		}
		prev := Compute(p)
		for _, ai := range Axis(101)[1:] {
			cur := Compute(p.WithAI(ai))
			if cur.EffectiveHeadway > prev.EffectiveHeadway+eps {
				t.Fatalf("%+v: headway rose from %v to %v at ai=%v", p, prev.EffectiveHeadway, cur.EffectiveHeadway, ai)
			}
			if cur.TPH < prev.TPH-eps {
				t.Fatalf("%+v: tph fell from %v to %v at ai=%v", p, prev.TPH, cur.TPH, ai)
			}
			prev = cur
		}
	})
}

func TestRoundHalfUp(t *testing.T) {
	tests := map[float64]float64{
		0.5:   1,
		1.49:  1,
		2.5:   3,
		96.71: 97,
		-0.5:  0,
	}
	for in, want := range tests {
		if got := RoundHalfUp(in); got != want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", in, got, want)
		}
	}
}
