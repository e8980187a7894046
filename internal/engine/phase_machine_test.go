package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/letterdrop/internal/config"
	"github.com/san-kum/letterdrop/internal/engine"
	"github.com/san-kum/letterdrop/internal/input"
)

func measuredEngine() (*engine.Engine, *input.Samples) {
	samples := input.NewSamples(1280, 800, input.DeviceDesktop)
	e := engine.New(config.DefaultConfig(), samples)
	glyphs := make([]engine.Glyph, 6)
	for i := range glyphs {
		glyphs[i] = engine.Glyph{Width: 40, Height: 44, OffsetX: float64(i) * 58}
	}
	e.Measure(glyphs)
	return e, samples
}

func drive(e *engine.Engine, seconds float64) {
	const dt = 1.0 / 120
	for t := 0.0; t < seconds; t += dt {
		e.Step(dt)
	}
}

var _ = Describe("phase machine", func() {
	var (
		eng     *engine.Engine
		samples *input.Samples
	)

	BeforeEach(func() {
		eng, samples = measuredEngine()
	})

	It("waits until the start signal", func() {
		drive(eng, 2)
		Expect(eng.Phase()).To(Equal(engine.PhaseWaiting))
	})

	It("walks the full entrance in order", func() {
		var trace []engine.Phase
		eng.OnPhaseChange(func(p engine.Phase, _ float64) {
			trace = append(trace, p)
		})
		eng.StartRise()
		drive(eng, 4)
		Expect(trace).To(Equal([]engine.Phase{
			engine.PhaseDropping,
			engine.PhaseRising,
			engine.PhaseTransitioning,
			engine.PhaseIdle,
		}))
	})

	It("never transitions backward", func() {
		last := engine.PhaseWaiting
		eng.OnPhaseChange(func(p engine.Phase, _ float64) {
			Expect(p).To(BeNumerically(">", last))
			last = p
		})
		eng.StartRise()
		drive(eng, 6)
		eng.StartRise()
		eng.StartIdleWind()
		drive(eng, 2)
		Expect(eng.Phase()).To(Equal(engine.PhaseIdle))
	})

	It("jumps straight to idle on the wind signal", func() {
		eng.StartIdleWind()
		Expect(eng.Phase()).To(Equal(engine.PhaseIdle))
	})

	It("lets an in-flight blend finish before idle", func() {
		eng.StartRise()
		drive(eng, 0.65+1.5+0.2)
		Expect(eng.Phase()).To(Equal(engine.PhaseTransitioning))

		eng.StartIdleWind()
		Expect(eng.Phase()).To(Equal(engine.PhaseTransitioning))

		drive(eng, 0.7)
		Expect(eng.Phase()).To(Equal(engine.PhaseIdle))
	})

	It("keeps idle motion inside the clamp envelope", func() {
		eng.StartIdleWind()
		drive(eng, 30)
		for i := 0; i < eng.Bodies(); i++ {
			Expect(math.Abs(eng.Body(i).Angle)).To(BeNumerically("<=", math.Pi/3+1e-9))
		}
	})

	It("pulls ropes up as the page scrolls", func() {
		eng.StartIdleWind()
		drive(eng, 1)
		before := eng.Body(0).BobY

		samples.SetScroll(600)
		drive(eng, 1)
		Expect(eng.Body(0).BobY).To(BeNumerically("<", before))
	})
})
