package engine

// Phase is the current stage of the entrance choreography. Phases only
// ever advance; the one shortcut is StartIdleWind, which may jump
// straight to PhaseIdle from any group phase.
type Phase int

const (
	// PhaseWaiting hangs the letters motionless at the shared initial
	// rope length until the start signal.
	PhaseWaiting Phase = iota
	// PhaseDropping extends all ropes to the drop depth with a cubic
	// ease-in, angle pinned straight down.
	PhaseDropping
	// PhaseRising retracts all ropes to the mean of the individual
	// final lengths with a settle ease, angle still pinned.
	PhaseRising
	// PhaseTransitioning blends from the scripted group state into
	// independent pendulum physics.
	PhaseTransitioning
	// PhaseIdle runs full independent physics until teardown.
	PhaseIdle
)

var phaseNames = [...]string{"waiting", "dropping", "rising", "transitioning", "idle"}

func (p Phase) String() string {
	if p < PhaseWaiting || p > PhaseIdle {
		return "unknown"
	}
	return phaseNames[p]
}

// PhaseObserver is notified after every phase change. Observers are the
// hook for cosmetic one-shots (rope brightening, glow ramps); they never
// feed back into the integration.
type PhaseObserver func(p Phase, t float64)

func (e *Engine) setPhase(p Phase) {
	e.phase = p
	e.phaseStart = e.now
	if p == PhaseIdle {
		e.settled = true
	}
	for _, fn := range e.phaseObservers {
		fn(p, e.now)
	}
}

// advancePhase moves to the next stage after the current one has run its
// full duration. The new phase starts at the previous start plus the
// exact duration rather than at e.now, so per-step rounding in the time
// accumulator never slips the later boundaries.
func (e *Engine) advancePhase(p Phase) {
	start := e.phaseStart + e.duration(e.phase)
	e.setPhase(p)
	e.phaseStart = start
}

// duration returns how long the current phase runs, or 0 for the
// unbounded phases.
func (e *Engine) duration(p Phase) float64 {
	switch p {
	case PhaseDropping:
		return e.cfg.DropDuration
	case PhaseRising:
		return e.cfg.RiseDuration
	case PhaseTransitioning:
		return e.cfg.TransitionDuration
	}
	return 0
}

// progress returns the clamped [0, 1] completion of the current timed
// phase and whether it has run its full duration.
func (e *Engine) progress() (float64, bool) {
	d := e.duration(e.phase)
	if d <= 0 {
		return 0, false
	}
	// now accumulates one float rounding per step, so a duration that is
	// an exact multiple of dt lands a hair under 1 without the epsilon.
	t := (e.now - e.phaseStart) / d
	if t >= 1-1e-9 {
		return 1, true
	}
	if t < 0 {
		t = 0
	}
	return t, false
}
