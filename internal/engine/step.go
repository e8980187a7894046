package engine

import (
	"math"

	"github.com/san-kum/letterdrop/internal/ease"
	"github.com/san-kum/letterdrop/internal/forces"
	"github.com/san-kum/letterdrop/internal/input"
	"github.com/san-kum/letterdrop/internal/rope"
)

// Step advances the simulation by one frame slice. dt arrives from the
// host frame scheduler and is clamped before integration; a frame hitch
// therefore slows the animation instead of destabilizing it. Before
// measurement the engine stays inert in PhaseWaiting.
func (e *Engine) Step(dt float64) {
	if !e.measured {
		return
	}
	dt = forces.ClampDt(dt)
	if dt == 0 {
		return
	}
	s := e.samples.Snapshot()
	if !s.Visible {
		return
	}
	e.now += dt

	switch e.phase {
	case PhaseWaiting:
		e.stepGroup(e.groupInitial)

	case PhaseDropping:
		t, done := e.progress()
		e.stepGroup(ease.Lerp(e.groupInitial, e.groupDrop, ease.CubicIn(t)))
		if done {
			e.advancePhase(PhaseRising)
		}

	case PhaseRising:
		t, done := e.progress()
		e.stepGroup(ease.Lerp(e.groupDrop, e.groupFinal, ease.SettleInOut(t)))
		if done {
			e.advancePhase(PhaseTransitioning)
		}

	case PhaseTransitioning:
		t, done := e.progress()
		e.stepPhysics(dt, s, ease.CubicInOut(t))
		if done {
			e.advancePhase(PhaseIdle)
		}

	case PhaseIdle:
		e.stepPhysics(dt, s, 1)
	}
}

// stepGroup is the scripted descent/ascent: every bob sits directly
// below its own anchor at the shared group length, angle pinned to zero.
// Deliberately decoupled from the force model so the entrance beat is
// predictable.
func (e *Engine) stepGroup(groupLen float64) {
	e.groupLen = groupLen
	for i := range e.bodies {
		b := &e.bodies[i]
		b.Angle = 0
		b.AngularVelocity = 0
		b.effLen = groupLen
		b.BobX = b.AnchorX
		b.BobY = b.AnchorY + groupLen
	}
}

// stepPhysics runs the force model at the given blend weight: rope
// lengths interpolate from the group mean to each body's own final
// length, and forcing scales up from zero, so independent dynamics fade
// in without a pop. blend is 1 in PhaseIdle.
func (e *Engine) stepPhysics(dt float64, s input.Samples, blend float64) {
	retract := forces.RetractProgress(s.ScrollY, s.ViewportH, e.cfg.RetractFrac)
	maxSwing := forces.MaxSwing(retract)

	windScale := blend * (1 - e.cfg.ScrollWindFade*retract)
	if s.Device == input.DeviceMobile {
		windScale *= e.cfg.MobileWindScale
	}

	damping := e.cfg.Damping
	if blend < 1 {
		// Double damping while the blend is in flight for a calmer settle.
		damping *= 2
	}

	idle := blend >= 1
	pointer := idle && e.interaction && s.PointerActive && s.Device == input.DeviceDesktop

	for i := range e.bodies {
		b := &e.bodies[i]

		baseLen := ease.Lerp(e.groupFinal, b.RopeLengthFinal, blend)
		effLen := forces.EffectiveRopeLength(baseLen, s.ScrollY, s.ViewportH, e.cfg.RopeMin, e.cfg.RetractFrac)
		b.effLen = effLen

		alpha := blend * forces.Gravity(b.Angle, effLen, b.Mass, e.cfg.Gravity)
		alpha += forces.Wind(e.now, b.WindPhase, b.Mass, windScale, e.wind)
		alpha += forces.Damping(b.AngularVelocity, damping)
		if pointer {
			alpha += forces.PointerRepulsion(b.BobX, b.BobY, s.PointerX, s.PointerY,
				b.Angle, b.Mass, effLen, e.cfg.PointerRadius, e.cfg.PointerStrength)
		}

		b.Angle, b.AngularVelocity = forces.Integrate(b.Angle, b.AngularVelocity, alpha, dt, e.cfg.Drag, maxSwing)
		b.BobX = b.AnchorX + effLen*math.Sin(b.Angle)
		b.BobY = b.AnchorY + effLen*math.Cos(b.Angle)
	}

	if idle {
		e.resolveCollisions()
		e.ambientBump(s)
	}
}

// resolveCollisions checks each adjacent pair and applies opposing
// angular-velocity impulses when the horizontal gap between bobs drops
// below the glyph half-widths plus clearance. Impulses only steer
// velocity; positions separate over the following steps.
func (e *Engine) resolveCollisions() {
	for i := 0; i+1 < len(e.bodies); i++ {
		left := &e.bodies[i]
		right := &e.bodies[i+1]
		gap := right.BobX - left.BobX
		minGap := forces.MinGap(left.Width, right.Width, e.cfg.CollisionClearance)
		if gap >= minGap {
			continue
		}
		left.AngularVelocity -= forces.CollisionImpulse(gap, minGap, left.Mass, e.cfg.CollisionStrength)
		right.AngularVelocity += forces.CollisionImpulse(gap, minGap, right.Mass, e.cfg.CollisionStrength)
	}
}

// ambientBump gives one random body a small kick while the pointer
// hovers the top zone of an unscrolled page. Rate-limited on simulated
// time so a paused tab does not bank kicks.
func (e *Engine) ambientBump(s input.Samples) {
	if !s.PointerActive || s.PointerY > e.cfg.BumpZoneHeight || s.ScrollY > e.cfg.BumpScrollMax {
		return
	}
	if e.now-e.lastBump < e.cfg.BumpInterval {
		return
	}
	e.lastBump = e.now
	i := e.rng.Intn(len(e.bodies))
	e.bodies[i].AngularVelocity += (e.rng.Float64()*2 - 1) * e.cfg.BumpKick
}

// BodyFrame is the per-letter render output: where to place the glyph
// and how to draw its suspension line.
type BodyFrame struct {
	X     float64
	Y     float64
	BobX  float64
	BobY  float64
	Angle float64
	Omega float64
	Rope  rope.Path
}

// Frame is the engine's per-tick output for the render adapter. It is a
// copy; renderers never hold references into the arena.
type Frame struct {
	Time    float64
	Phase   Phase
	Settled bool
	Neon    bool
	Bodies  []BodyFrame
}

// Frame snapshots the current state. Group phases emit sagging
// quadratics; once physics is live the ropes trail the swing.
func (e *Engine) Frame() Frame {
	f := Frame{
		Time:    e.now,
		Phase:   e.phase,
		Settled: e.settled,
		Neon:    e.neon,
		Bodies:  make([]BodyFrame, len(e.bodies)),
	}
	grouped := e.phase == PhaseWaiting || e.phase == PhaseDropping || e.phase == PhaseRising
	for i := range e.bodies {
		b := &e.bodies[i]
		anchor := rope.Point{X: b.AnchorX, Y: b.AnchorY}
		bob := rope.Point{X: b.BobX, Y: b.BobY}
		var path rope.Path
		if grouped {
			path = rope.Sag(anchor, bob, e.groupLen)
		} else {
			path = rope.Trailing(anchor, bob, b.AngularVelocity, b.effLen)
		}
		f.Bodies[i] = BodyFrame{
			X:     b.BobX - b.Width/2,
			Y:     b.BobY - b.Height/2,
			BobX:  b.BobX,
			BobY:  b.BobY,
			Angle: b.Angle,
			Omega: b.AngularVelocity,
			Rope:  path,
		}
	}
	return f
}
