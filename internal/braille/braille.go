// Package braille plots primitive sets onto a grid of braille characters,
// two dots wide and four dots high per terminal cell.
package braille

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/vasalvit/termsvg"
)

const blank = '⠀'

// dotBits maps a dot inside a cell, indexed [y][x], to its bit.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille plotting surface covering the 0-100 canvas space.
type Canvas struct {
	cols, rows int
	dots       []uint8
	colors     []color.RGBA
	colored    []bool
}

// New returns a canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	n := cols * rows
	return &Canvas{
		cols:    cols,
		rows:    rows,
		dots:    make([]uint8, n),
		colors:  make([]color.RGBA, n),
		colored: make([]bool, n),
	}
}

// Size returns the dot resolution of the canvas.
func (c *Canvas) Size() image.Point {
	return image.Pt(c.cols*2, c.rows*4)
}

// dotf maps a canvas space point into dot space. Row 0 is the top,
// canvas y=100.
func (c *Canvas) dotf(p termsvg.Tuple) (float64, float64) {
	size := c.Size()
	return p[0] / 100 * float64(size.X-1), (100 - p[1]) / 100 * float64(size.Y-1)
}

// dot maps a canvas space point to the nearest dot.
func (c *Canvas) dot(p termsvg.Tuple) image.Point {
	x, y := c.dotf(p)
	return image.Pt(round(x), round(y))
}

// round rounds to the nearest int, pinning values far outside the grid.
func round(v float64) int {
	const limit = 1 << 30
	return int(math.Max(-limit, math.Min(limit, math.Round(v))))
}

func (c *Canvas) set(d image.Point, col *color.RGBA) {
	size := c.Size()
	if d.X < 0 || d.Y < 0 || d.X >= size.X || d.Y >= size.Y {
		return
	}
	cell := d.Y/4*c.cols + d.X/2
	c.dots[cell] |= dotBits[d.Y%4][d.X%2]
	if col != nil {
		c.colors[cell] = *col
		c.colored[cell] = true
	}
}

// Points plots every point on its own.
func (c *Canvas) Points(pts []termsvg.Tuple, col *color.RGBA) {
	for _, p := range pts {
		c.set(c.dot(p), col)
	}
}

// Polyline plots the segments joining consecutive points.
func (c *Canvas) Polyline(pts []termsvg.Tuple, col *color.RGBA) {
	if len(pts) == 1 {
		c.Points(pts, col)
		return
	}
	for i := 1; i < len(pts); i++ {
		if !finite(pts[i-1]) || !finite(pts[i]) {
			continue
		}
		x0, y0 := c.dotf(pts[i-1])
		x1, y1 := c.dotf(pts[i])
		size := c.Size()
		x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, -1, -1, float64(size.X), float64(size.Y))
		if !ok {
			continue
		}
		a, b := image.Pt(round(x0), round(y0)), image.Pt(round(x1), round(y1))
		walk(a, b, func(d image.Point) { c.set(d, col) })
	}
}

func finite(p termsvg.Tuple) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) && !math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}

// Plot draws a whole set in order: fill primitives dot by dot in their
// fill colour, outlines as polylines in their stroke colour.
func (c *Canvas) Plot(set *termsvg.Set, styles *termsvg.StyleMatcher) {
	for _, p := range set.Primitives {
		if p.Fill {
			c.Points(p.Points, colorOf(styles.FillColor(p.Style)))
			continue
		}
		c.Polyline(p.Points, colorOf(styles.StrokeColor(p.Style)))
	}
}

func colorOf(c color.RGBA, ok bool) *color.RGBA {
	if !ok {
		return nil
	}
	return &c
}

// Render writes the canvas row by row. With ansi set, coloured cells are
// wrapped in 24-bit foreground escapes.
func (c *Canvas) Render(w io.Writer, ansi bool) error {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			r := blank + rune(c.dots[i])
			if ansi && c.colored[i] && c.dots[i] != 0 {
				rgb := c.colors[i]
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm%c\x1b[0m", rgb.R, rgb.G, rgb.B, r)
			} else {
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the canvas without colour.
func (c *Canvas) String() string {
	var sb strings.Builder
	c.Render(&sb, false)
	return sb.String()
}
