// Package engine owns the pendulum arena, the phase state machine, and
// the per-frame simulation step for the letter-drop animation. The host
// drives it with Step(dt) once per frame and reads the resulting Frame;
// everything else (rendering, input capture, glyph measurement) lives
// behind collaborator boundaries.
package engine

import (
	"math"
	"math/rand"

	"github.com/san-kum/letterdrop/internal/config"
	"github.com/san-kum/letterdrop/internal/forces"
	"github.com/san-kum/letterdrop/internal/input"
)

// goldenAngle decorrelates per-body wind phases without a rand draw, so
// re-measurement stays idempotent.
const goldenAngle = 2.3999632297286533

// Default per-body variation applied when a glyph does not carry
// explicit rope/mass overrides. Slightly uneven on purpose; identical
// ropes read as mechanical.
var (
	defaultRopeVariance = [...]float64{0.985, 1.005, 0.995, 0.975, 1.02, 1.0, 1.01, 0.98}
	defaultMasses       = [...]float64{1.4, 0.75, 0.95, 1.3, 0.85, 1.0, 0.8, 1.3}
)

// Body is one suspended letter. Bodies live in a flat arena indexed by
// position; the count is fixed after measurement and indices are stable
// for the lifetime of the engine.
type Body struct {
	Angle           float64
	AngularVelocity float64

	AnchorX float64
	AnchorY float64

	RopeLengthFinal float64
	Mass            float64
	WindPhase       float64

	// Derived every step, never authoritative.
	BobX float64
	BobY float64

	Width  float64
	Height float64

	effLen float64
}

// Glyph is the measured footprint of one letter, delivered by the text
// measurement collaborator. RopeLength and Mass are optional overrides;
// zero means "derive from the tuning pattern".
type Glyph struct {
	Width      float64
	Height     float64
	OffsetX    float64
	RopeLength float64
	Mass       float64
}

// Engine is the simulation singleton. It exclusively owns its bodies;
// renderers only ever see Frame copies.
type Engine struct {
	cfg     *config.Config
	samples *input.Samples
	wind    []forces.Harmonic

	bodies []Body

	phase      Phase
	phaseStart float64
	now        float64

	// Shared rope-length checkpoints for the group phases.
	groupInitial float64
	groupDrop    float64
	groupFinal   float64
	groupLen     float64

	measured    bool
	interaction bool
	settled     bool
	neon        bool

	rng      *rand.Rand
	lastBump float64

	phaseObservers []PhaseObserver
}

// New creates an engine in PhaseWaiting. It will not advance until
// Measure has provided glyph geometry and StartRise has been signaled.
func New(cfg *config.Config, samples *input.Samples) *Engine {
	wind := make([]forces.Harmonic, len(cfg.Wind))
	for i, w := range cfg.Wind {
		wind[i] = forces.Harmonic{Amplitude: w.Amplitude, Frequency: w.Frequency, PhaseMul: w.PhaseMul}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	return &Engine{
		cfg:     cfg,
		samples: samples,
		wind:    wind,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Measure (re)initializes body geometry and the group rope checkpoints
// from measured glyphs. Dynamic state and phase survive a re-measure
// with the same body count, so a resize never causes a visible snap.
// Calling it twice with identical inputs yields identical geometry.
func (e *Engine) Measure(glyphs []Glyph) {
	if len(glyphs) == 0 {
		return
	}
	keepDynamics := e.measured && len(glyphs) == len(e.bodies)
	prev := e.bodies
	e.bodies = make([]Body, len(glyphs))

	sum := 0.0
	for i, g := range glyphs {
		ropeLen := g.RopeLength
		if ropeLen <= 0 {
			ropeLen = e.cfg.RopeFinal * defaultRopeVariance[i%len(defaultRopeVariance)]
		}
		mass := g.Mass
		if mass <= 0 {
			mass = defaultMasses[i%len(defaultMasses)]
		}
		b := Body{
			AnchorX:         g.OffsetX + g.Width/2,
			AnchorY:         0,
			RopeLengthFinal: ropeLen,
			Mass:            mass,
			WindPhase:       float64(i) * goldenAngle,
			Width:           g.Width,
			Height:          g.Height,
		}
		if keepDynamics {
			b.Angle = prev[i].Angle
			b.AngularVelocity = prev[i].AngularVelocity
		}
		e.bodies[i] = b
		sum += ropeLen
	}

	e.groupInitial = e.cfg.RopeInitial
	e.groupFinal = sum / float64(len(glyphs))
	e.groupDrop = e.groupFinal + e.cfg.DropOvershoot

	if !e.measured {
		e.groupLen = e.groupInitial
		e.measured = true
	}
	e.placeBodies()
}

// placeBodies recomputes bob positions for the current phase without
// advancing time. Used after (re)measurement.
func (e *Engine) placeBodies() {
	switch e.phase {
	case PhaseWaiting, PhaseDropping, PhaseRising:
		e.stepGroup(e.groupLen)
	default:
		s := e.samples.Snapshot()
		for i := range e.bodies {
			b := &e.bodies[i]
			b.effLen = forces.EffectiveRopeLength(b.RopeLengthFinal, s.ScrollY, s.ViewportH, e.cfg.RopeMin, e.cfg.RetractFrac)
			b.BobX = b.AnchorX + b.effLen*math.Sin(b.Angle)
			b.BobY = b.AnchorY + b.effLen*math.Cos(b.Angle)
		}
	}
}

// StartRise begins the drop. Valid only from PhaseWaiting on a measured
// engine; a no-op otherwise.
func (e *Engine) StartRise() {
	if e.phase != PhaseWaiting || !e.measured {
		return
	}
	e.setPhase(PhaseDropping)
}

// EnableInteraction arms pointer repulsion.
func (e *Engine) EnableInteraction() {
	e.interaction = true
}

// StartIdleWind forces immediate entry into PhaseIdle. If the transition
// blend is in flight it is allowed to finish rather than being cut.
func (e *Engine) StartIdleWind() {
	switch e.phase {
	case PhaseIdle:
	case PhaseTransitioning:
		// The blend already ends in idle; cutting it short would pop.
	default:
		if !e.measured {
			return
		}
		for i := range e.bodies {
			e.bodies[i].Angle = 0
			e.bodies[i].AngularVelocity = 0
		}
		e.setPhase(PhaseIdle)
		e.placeBodies()
	}
}

// ActivateNeonEffect flips the cosmetic neon flag. It rides along on the
// frame for observers and never touches the physics.
func (e *Engine) ActivateNeonEffect() {
	e.neon = true
}

// OnPhaseChange registers a cosmetic observer.
func (e *Engine) OnPhaseChange(fn PhaseObserver) {
	e.phaseObservers = append(e.phaseObservers, fn)
}

// Phase returns the current choreography stage.
func (e *Engine) Phase() Phase { return e.phase }

// Time returns accumulated simulation time in seconds.
func (e *Engine) Time() float64 { return e.now }

// Measured reports whether glyph geometry has arrived.
func (e *Engine) Measured() bool { return e.measured }

// Settled reports the one-shot flag set on first PhaseIdle entry.
func (e *Engine) Settled() bool { return e.settled }

// Bodies returns the arena length.
func (e *Engine) Bodies() int { return len(e.bodies) }

// Body returns a copy of the body at index i.
func (e *Engine) Body(i int) Body { return e.bodies[i] }
