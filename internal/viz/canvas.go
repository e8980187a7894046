package viz

import (
	"strings"

	"github.com/san-kum/letterdrop/internal/rope"
)

// Braille patterns give a 2x4 sub-pixel grid per character cell.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface. Sub-pixel resolution is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
	overlay       map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.grid = make([][]rune, h)
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.overlay = make(map[[2]int]rune)
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = 0x2800
		}
	}
	for k := range c.overlay {
		delete(c.overlay, k)
	}
}

// Set lights one sub-pixel.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Glyph places a letter rune on top of the braille grid in character
// cell coordinates. Overlays win over dots when rendering.
func (c *Canvas) Glyph(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.overlay[[2]int{col, row}] = r
}

// Line draws a straight sub-pixel segment.
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Curve samples a rope path into short segments. The transform maps
// world coordinates to sub-pixel coordinates.
func (c *Canvas) Curve(p rope.Path, transform func(rope.Point) (int, int)) {
	const samples = 24
	px, py := transform(p.At(0))
	for i := 1; i <= samples; i++ {
		x, y := transform(p.At(float64(i) / samples))
		c.Line(px, py, x, y)
		px, py = x, y
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if r, ok := c.overlay[[2]int{col, row}]; ok {
				sb.WriteRune(r)
				continue
			}
			sb.WriteRune(c.grid[row][col])
		}
		if row < c.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
