// Package viz is the development render adapter: a bubbletea live view
// that drives the engine at 60 fps, draws letters and rope curves on a
// braille canvas, and exposes the control surface on the keyboard. It
// sits at the same boundary the production renderer would.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/letterdrop/internal/engine"
	"github.com/san-kum/letterdrop/internal/input"
	"github.com/san-kum/letterdrop/internal/rope"
)

const (
	canvasW = 78
	canvasH = 26

	historyCap = 240
	frameRate  = 60
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model owns the live view state. The engine and samples are shared with
// nobody else while the view runs.
type Model struct {
	eng     *engine.Engine
	samples *input.Samples
	letters []rune

	canvas  *Canvas
	history []float64

	// World window for the canvas transform.
	worldW float64
	worldH float64

	glow    harmonica.Spring
	glowPos float64
	glowVel float64

	lastTick time.Time
	running  bool
	showHelp bool
}

// NewModel wires a measured engine into the live view.
func NewModel(eng *engine.Engine, samples *input.Samples, word string) Model {
	maxX := 0.0
	for i := 0; i < eng.Bodies(); i++ {
		b := eng.Body(i)
		if r := b.AnchorX + b.Width; r > maxX {
			maxX = r
		}
	}
	return Model{
		eng:     eng,
		samples: samples,
		letters: []rune(word),
		canvas:  NewCanvas(canvasW, canvasH),
		history: make([]float64, 0, historyCap),
		worldW:  maxX + 80,
		worldH:  420,
		glow:    harmonica.NewSpring(harmonica.FPS(frameRate), 5.0, 0.4),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			// Reset the dt baseline so resuming does not integrate the
			// whole pause as one slice.
			m.lastTick = time.Time{}
		case "s":
			m.eng.StartRise()
		case "i":
			m.eng.EnableInteraction()
		case "w":
			m.eng.StartIdleWind()
		case "n":
			m.eng.ActivateNeonEffect()
		case "p":
			if m.samples.PointerActive {
				m.samples.ClearPointer()
			} else {
				m.samples.SetPointer(m.worldW/2, 150)
			}
		case "left":
			m.movePointer(-14, 0)
		case "right":
			m.movePointer(14, 0)
		case "up":
			m.movePointer(0, -14)
		case "down":
			m.movePointer(0, 14)
		case "j":
			m.samples.SetScroll(m.samples.ScrollY + 40)
		case "k":
			m.samples.SetScroll(m.samples.ScrollY - 40)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			now := time.Time(msg)
			dt := 1.0 / frameRate
			if !m.lastTick.IsZero() {
				dt = now.Sub(m.lastTick).Seconds()
			}
			m.lastTick = now
			m.eng.Step(dt)
			m.observe()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) movePointer(dx, dy float64) {
	x, y := m.samples.PointerX+dx, m.samples.PointerY+dy
	m.samples.SetPointer(x, y)
}

func (m *Model) observe() {
	f := m.eng.Frame()

	mean := 0.0
	for _, b := range f.Bodies {
		mean += math.Abs(b.Angle)
	}
	if len(f.Bodies) > 0 {
		mean /= float64(len(f.Bodies))
	}
	m.history = append(m.history, mean)
	if len(m.history) > historyCap {
		m.history = m.history[1:]
	}

	target := 0.0
	if f.Neon {
		target = 1
	}
	m.glowPos, m.glowVel = m.glow.Update(m.glowPos, m.glowVel, target)
}

func (m Model) View() string {
	f := m.eng.Frame()
	m.canvas.Clear()

	sx := float64(canvasW*2) / m.worldW
	sy := float64(canvasH*4) / m.worldH
	transform := func(x, y float64) (int, int) {
		return int(x * sx), int(y * sy)
	}

	for i, b := range f.Bodies {
		m.canvas.Curve(b.Rope, func(p rope.Point) (int, int) {
			return transform(p.X, p.Y)
		})
		col := int(b.BobX * sx / 2)
		row := int(b.BobY * sy / 4)
		r := '#'
		if i < len(m.letters) {
			r = m.letters[i]
		}
		m.canvas.Glyph(col, row, r)
	}

	if m.samples.PointerActive {
		px, py := transform(m.samples.PointerX, m.samples.PointerY)
		m.canvas.Glyph(px/2, py/4, '+')
	}

	letterStyle := glowStyle(m.glowPos)
	left := canvasStyle.Render(letterStyle.Render(m.canvas.String()))
	right := statsStyle.Render(m.sidebar(f))

	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if m.showHelp {
		view += helpStyle.Render("\n  s start · i interaction · w idle wind · n neon · p pointer · arrows move · j/k scroll · space pause · q quit")
	}
	return view
}

func (m Model) sidebar(f engine.Frame) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("letterdrop"))
	sb.WriteByte('\n')

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(valueStyle.Render(value))
		sb.WriteByte('\n')
	}
	sb.WriteString(labelStyle.Render("phase"))
	sb.WriteString(phaseStyle.Render(f.Phase.String()))
	sb.WriteByte('\n')
	row("time", fmt.Sprintf("%.2fs", f.Time))
	row("bodies", fmt.Sprintf("%d", len(f.Bodies)))
	row("scroll", fmt.Sprintf("%.0f", m.samples.ScrollY))
	row("settled", fmt.Sprintf("%v", f.Settled))
	row("neon", fmt.Sprintf("%v", f.Neon))

	if len(m.history) > 2 {
		sb.WriteByte('\n')
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.Caption("mean |angle|"))
		sb.WriteString(graphStyle.Render(graph))
	}
	return sb.String()
}

// Run starts the live view and blocks until quit.
func Run(eng *engine.Engine, samples *input.Samples, word string) error {
	p := tea.NewProgram(NewModel(eng, samples, word))
	_, err := p.Run()
	return err
}
