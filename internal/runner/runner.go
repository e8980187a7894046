// Package runner drives the engine headlessly at a fixed timestep. The
// production host is a frame scheduler; the runner stands in for it in
// the CLI and in property tests, collecting frames, metrics, and the
// phase trace along the way.
package runner

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/letterdrop/internal/engine"
)

// Metric accumulates a scalar across frames.
type Metric interface {
	Name() string
	Observe(f engine.Frame)
	Value() float64
	Reset()
}

// Observer sees every frame. Renderers and recorders hang off this.
type Observer interface {
	OnFrame(f engine.Frame)
}

// Config controls one headless run.
type Config struct {
	Dt       float64
	Duration float64

	// StartAfter delays the StartRise signal by this many seconds of
	// simulated time. Zero signals immediately.
	StartAfter float64
}

// PhaseChange is one entry of the recorded phase trace.
type PhaseChange struct {
	Phase engine.Phase
	Time  float64
}

// Result is everything a run produced.
type Result struct {
	Frames     []engine.Frame
	PhaseTrace []PhaseChange
	Metrics    map[string]float64
	Steps      int
}

type Runner struct {
	eng       *engine.Engine
	metrics   []Metric
	observers []Observer
	keep      bool
}

// New wraps an engine. keepFrames retains every frame in the result,
// which is what the recorder wants and what long soak runs do not.
func New(eng *engine.Engine, keepFrames bool) *Runner {
	return &Runner{eng: eng, keep: keepFrames}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run steps the engine for cfg.Duration at cfg.Dt, firing StartRise at
// the configured moment. It stops early on context cancellation or if
// the state goes non-finite.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	r.eng.OnPhaseChange(func(p engine.Phase, t float64) {
		result.PhaseTrace = append(result.PhaseTrace, PhaseChange{Phase: p, Time: t})
	})

	steps := int(cfg.Duration/cfg.Dt + 0.5)
	started := cfg.StartAfter <= 0
	if started {
		r.eng.StartRise()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.eng.Step(cfg.Dt)
		result.Steps++

		if !started && r.eng.Time() >= cfg.StartAfter {
			r.eng.StartRise()
			started = true
		}

		f := r.eng.Frame()
		if err := validate(f); err != nil {
			return result, err
		}
		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(f)
		}
		if r.keep {
			result.Frames = append(result.Frames, f)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func validate(f engine.Frame) error {
	for i, b := range f.Bodies {
		if math.IsNaN(b.Angle) || math.IsInf(b.Angle, 0) ||
			math.IsNaN(b.Omega) || math.IsInf(b.Omega, 0) {
			return fmt.Errorf("body %d non-finite at t=%.4f", i, f.Time)
		}
	}
	return nil
}
