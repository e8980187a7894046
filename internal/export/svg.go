// Package export renders a single frame to SVG. Rope paths translate
// one to one onto Q/C path commands, which makes the exporter a handy
// visual check on the curve math.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/letterdrop/internal/engine"
	"github.com/san-kum/letterdrop/internal/rope"
)

const (
	marginX = 40.0
	marginY = 20.0
)

// FrameToSVG draws every rope and glyph box of one frame. Letters, when
// provided, are drawn inside their boxes; extras are ignored.
func FrameToSVG(f engine.Frame, letters []rune) string {
	maxX, maxY := 0.0, 0.0
	for _, b := range f.Bodies {
		if b.X+2*marginX > maxX {
			maxX = b.X + 2*marginX
		}
		if b.BobY+2*marginY > maxY {
			maxY = b.BobY + 2*marginY
		}
		if right := b.BobX + 2*marginX; right > maxX {
			maxX = right
		}
	}

	ropeColor := "#667788"
	if f.Settled {
		ropeColor = "#aabbcc"
	}
	glyphColor := "#e8e8f0"
	if f.Neon {
		glyphColor = "#ff4df0"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a12"/>
`, maxX, maxY, maxX, maxY)

	for i, b := range f.Bodies {
		fmt.Fprintf(&sb, `<path d="%s" fill="none" stroke="%s" stroke-width="1.5"/>
`, pathData(b.Rope), ropeColor)
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1"/>
`, b.X+marginX, b.Y+marginY, 2*(b.BobX-b.X), 2*(b.BobY-b.Y), glyphColor)
		if i < len(letters) {
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" text-anchor="middle" font-size="24">%c</text>
`, b.BobX+marginX, b.BobY+marginY+8, glyphColor, letters[i])
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func pathData(p rope.Path) string {
	if p.Kind == rope.Quadratic {
		return fmt.Sprintf("M %.1f %.1f Q %.1f %.1f %.1f %.1f",
			p.Start.X+marginX, p.Start.Y+marginY,
			p.Ctrl1.X+marginX, p.Ctrl1.Y+marginY,
			p.End.X+marginX, p.End.Y+marginY)
	}
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f %.1f %.1f %.1f %.1f",
		p.Start.X+marginX, p.Start.Y+marginY,
		p.Ctrl1.X+marginX, p.Ctrl1.Y+marginY,
		p.Ctrl2.X+marginX, p.Ctrl2.Y+marginY,
		p.End.X+marginX, p.End.Y+marginY)
}
