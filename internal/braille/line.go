package braille

import (
	"image"
	"math"
)

// line steps along a segment with the Bresenham algorithm.
type line struct {
	// d is the minor axis error, doubled.
	d int
	// dmajor, dminor is the line vector.
	dmajor, dminor int
	// swap is 0 if the major axis is x, 1 otherwise.
	swap uint8
}

// reset starts a new segment of signed length dist. It returns the
// negative direction flags for x and y and the number of steps.
func (l *line) reset(dist image.Point) (uint8, uint8, int) {
	var dirx, diry uint8
	if dist.X < 0 {
		dirx = 1
		dist.X = -dist.X
	}
	if dist.Y < 0 {
		diry = 1
		dist.Y = -dist.Y
	}
	l.swap = 0
	if dist.Y > dist.X {
		l.swap = 1
		dist.X, dist.Y = dist.Y, dist.X
	}
	l.dmajor, l.dminor = dist.X, dist.Y
	l.d = 2*l.dminor - l.dmajor
	return dirx, diry, l.dmajor
}

// step returns the unsigned x and y increments of the next step.
func (l *line) step() (uint8, uint8) {
	var maj, min uint8 = 1, 0
	if l.d > 0 {
		min = 1
	}
	l.d -= 2 * l.dmajor * int(min)
	l.d += 2 * l.dminor
	return (maj &^ l.swap) | (min & l.swap),
		(maj & l.swap) | (min &^ l.swap)
}

// walk calls plot for every dot from a to b inclusive.
func walk(a, b image.Point, plot func(image.Point)) {
	var l line
	dirx, diry, steps := l.reset(b.Sub(a))
	p := a
	plot(p)
	for i := 0; i < steps; i++ {
		dx, dy := l.step()
		if dirx == 1 {
			p.X -= int(dx)
		} else {
			p.X += int(dx)
		}
		if diry == 1 {
			p.Y -= int(dy)
		} else {
			p.Y += int(dy)
		}
		plot(p)
	}
}

// clipSegment clips the segment from (x0, y0) to (x1, y1) to the given
// rectangle with the Liang-Barsky algorithm. It reports false when no part
// of the segment lies inside.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	u1, u2 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			u1 = math.Max(u1, t)
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			u2 = math.Min(u2, t)
		}
	}
	clamp := func(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }
	return clamp(x0+u1*dx, xmin, xmax), clamp(y0+u1*dy, ymin, ymax),
		clamp(x0+u2*dx, xmin, xmax), clamp(y0+u2*dy, ymin, ymax), true
}
