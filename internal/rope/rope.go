// Package rope turns an anchor/bob pair into the parametric curve drawn
// as the suspension line. Group phases get a gently sagging quadratic;
// once individual physics is active the curve becomes a cubic whose
// control points trail the swing, reading as a slightly elastic rope
// rather than a rigid rod.
package rope

import "math"

// Point is a position on the render surface.
type Point struct {
	X float64
	Y float64
}

// Kind distinguishes the two curve families a Path can describe.
type Kind int

const (
	// Quadratic uses Ctrl1 only.
	Quadratic Kind = iota
	// Cubic uses both control points.
	Cubic
)

// Path describes one suspension line. Renderers evaluate it with At or
// translate it directly (SVG Q/C commands map one to one).
type Path struct {
	Kind  Kind
	Start Point
	End   Point
	Ctrl1 Point
	Ctrl2 Point
}

const (
	// Downward sag per unit of rope length during group phases.
	sagFactor = 0.045

	// Horizontal trail per unit of angular velocity, and vertical slack
	// growth with |omega|, during individual physics.
	trailFactor = 26.0
	slackFactor = 9.0
	slackMax    = 22.0
)

// Sag returns the group-phase curve: a quadratic with one control point
// dropped below the midpoint in proportion to rope length. A catenary
// approximation, not a catenary; at these sags the difference is not
// visible.
func Sag(anchor, bob Point, ropeLen float64) Path {
	mid := Point{
		X: (anchor.X + bob.X) / 2,
		Y: (anchor.Y+bob.Y)/2 + sagFactor*ropeLen,
	}
	return Path{
		Kind:  Quadratic,
		Start: anchor,
		End:   bob,
		Ctrl1: mid,
	}
}

// Trailing returns the individual-physics curve: a cubic whose control
// points lag behind the swing direction (opposite the angular velocity)
// and dip with the slack that builds at speed.
func Trailing(anchor, bob Point, omega, ropeLen float64) Path {
	lag := -omega * trailFactor
	slack := math.Min(math.Abs(omega)*slackFactor, slackMax)

	dx := bob.X - anchor.X
	dy := bob.Y - anchor.Y

	c1 := Point{
		X: anchor.X + dx*0.33 + lag*0.6,
		Y: anchor.Y + dy*0.33 + slack*0.5,
	}
	c2 := Point{
		X: anchor.X + dx*0.66 + lag,
		Y: anchor.Y + dy*0.66 + slack,
	}
	return Path{
		Kind:  Cubic,
		Start: anchor,
		End:   bob,
		Ctrl1: c1,
		Ctrl2: c2,
	}
}

// At evaluates the curve at t in [0, 1].
func (p Path) At(t float64) Point {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	u := 1 - t
	if p.Kind == Quadratic {
		return Point{
			X: u*u*p.Start.X + 2*u*t*p.Ctrl1.X + t*t*p.End.X,
			Y: u*u*p.Start.Y + 2*u*t*p.Ctrl1.Y + t*t*p.End.Y,
		}
	}
	return Point{
		X: u*u*u*p.Start.X + 3*u*u*t*p.Ctrl1.X + 3*u*t*t*p.Ctrl2.X + t*t*t*p.End.X,
		Y: u*u*u*p.Start.Y + 3*u*u*t*p.Ctrl1.Y + 3*u*t*t*p.Ctrl2.Y + t*t*t*p.End.Y,
	}
}
