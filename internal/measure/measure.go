// Package measure is the development stand-in for the host's text
// measurement service: it produces deterministic glyph metrics for a
// wordmark so the engine can be driven without a rendering surface.
package measure

import "github.com/san-kum/letterdrop/internal/engine"

const (
	baseWidth  = 34.0
	baseHeight = 44.0
	spacing    = 14.0
)

// Per-letter width factors, roughly proportional to how wide the glyph
// renders in a heavy display face.
var widthFactors = map[rune]float64{
	'I': 0.45, 'J': 0.7, 'L': 0.75, 'F': 0.8, 'E': 0.85, 'T': 0.9,
	'M': 1.25, 'W': 1.3, 'O': 1.1, 'Q': 1.1, 'G': 1.05, 'D': 1.0,
}

// Word lays out a wordmark left to right and returns one glyph metric
// per letter. The same word always measures identically.
func Word(word string) []engine.Glyph {
	glyphs := make([]engine.Glyph, 0, len(word))
	x := 0.0
	for _, r := range word {
		w := baseWidth
		if f, ok := widthFactors[r]; ok {
			w = baseWidth * f
		}
		glyphs = append(glyphs, engine.Glyph{
			Width:   w,
			Height:  baseHeight,
			OffsetX: x,
		})
		x += w + spacing
	}
	return glyphs
}
