// Package metrics provides frame-level observations for headless runs:
// swing amplitude, kinetic energy, and settle time.
package metrics

import (
	"math"

	"github.com/san-kum/letterdrop/internal/engine"
)

// SwingAmplitude tracks the largest |angle| seen on any body.
type SwingAmplitude struct {
	max float64
}

func NewSwingAmplitude() *SwingAmplitude { return &SwingAmplitude{} }

func (m *SwingAmplitude) Name() string { return "swing_amplitude" }

func (m *SwingAmplitude) Observe(f engine.Frame) {
	for _, b := range f.Bodies {
		if a := math.Abs(b.Angle); a > m.max {
			m.max = a
		}
	}
}

func (m *SwingAmplitude) Value() float64 { return m.max }
func (m *SwingAmplitude) Reset()         { m.max = 0 }

// SwingEnergy tracks the mean per-frame sum of ω² across bodies, a
// cheap proxy for kinetic energy that exposes forcing/damping imbalance.
type SwingEnergy struct {
	sum    float64
	frames int
}

func NewSwingEnergy() *SwingEnergy { return &SwingEnergy{} }

func (m *SwingEnergy) Name() string { return "swing_energy" }

func (m *SwingEnergy) Observe(f engine.Frame) {
	e := 0.0
	for _, b := range f.Bodies {
		e += b.Omega * b.Omega
	}
	m.sum += e
	m.frames++
}

func (m *SwingEnergy) Value() float64 {
	if m.frames == 0 {
		return 0
	}
	return m.sum / float64(m.frames)
}

func (m *SwingEnergy) Reset() {
	m.sum = 0
	m.frames = 0
}

// SettleTime records the first time after idle entry at which every
// body's |ω| is below the threshold. -1 until it happens.
type SettleTime struct {
	Threshold float64
	value     float64
}

func NewSettleTime(threshold float64) *SettleTime {
	return &SettleTime{Threshold: threshold, value: -1}
}

func (m *SettleTime) Name() string { return "settle_time" }

func (m *SettleTime) Observe(f engine.Frame) {
	if m.value >= 0 || f.Phase != engine.PhaseIdle {
		return
	}
	for _, b := range f.Bodies {
		if math.Abs(b.Omega) >= m.Threshold {
			return
		}
	}
	m.value = f.Time
}

func (m *SettleTime) Value() float64 { return m.value }
func (m *SettleTime) Reset()         { m.value = -1 }
