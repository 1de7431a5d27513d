package termsvg

import (
	"fmt"
	"math"
)

func quadraticBezier(p0, p1, p2 Tuple, t float64) Tuple {
	u := 1 - t
	return Tuple{
		u*u*p0[0] + 2*u*t*p1[0] + t*t*p2[0],
		u*u*p0[1] + 2*u*t*p1[1] + t*t*p2[1],
	}
}

func cubicBezier(p0, p1, p2, p3 Tuple, t float64) Tuple {
	u := 1 - t
	return Tuple{
		u*u*u*p0[0] + 3*u*u*t*p1[0] + 3*u*t*t*p2[0] + t*t*t*p3[0],
		u*u*u*p0[1] + 3*u*u*t*p1[1] + 3*u*t*t*p2[1] + t*t*t*p3[1],
	}
}

// sampleQuadratic returns steps samples at t = 0, 1/steps, ... (steps-1)/steps.
// The end point itself is not sampled.
func sampleQuadratic(p0, p1, p2 Tuple, steps int) []Tuple {
	pts := make([]Tuple, 0, steps)
	for i := 0; i < steps; i++ {
		pts = append(pts, quadraticBezier(p0, p1, p2, float64(i)/float64(steps)))
	}
	return pts
}

// sampleCubic is the cubic counterpart of sampleQuadratic.
func sampleCubic(p0, p1, p2, p3 Tuple, steps int) []Tuple {
	pts := make([]Tuple, 0, steps)
	for i := 0; i < steps; i++ {
		pts = append(pts, cubicBezier(p0, p1, p2, p3, float64(i)/float64(steps)))
	}
	return pts
}

// reflect mirrors p through about.
func reflect(p, about Tuple) Tuple {
	return Tuple{2*about[0] - p[0], 2*about[1] - p[1]}
}

// ellipticalArc flattens an arc from start to end using the endpoint to
// center conversion. It returns n+1 points, the first being start. Radii
// too small to reach end are scaled up. Coincident endpoints produce no
// points.
func ellipticalArc(start, radii Tuple, rotation float64, large, sweep bool, end Tuple, n int) ([]Tuple, error) {
	rx, ry := math.Abs(radii[0]), math.Abs(radii[1])
	if rx == 0 || ry == 0 {
		return nil, fmt.Errorf("%w: radii (%g, %g)", ErrDegenerateArc, radii[0], radii[1])
	}
	x1, y1 := start[0], start[1]
	x2, y2 := end[0], end[1]

	sin, cos := math.Sincos(rotation * math.Pi / 180)

	// midpoint offset in the ellipse's own frame
	x1p := cos*(x1-x2)/2 + sin*(y1-y2)/2
	y1p := -sin*(x1-x2)/2 + cos*(y1-y2)/2
	if x1p == 0 && y1p == 0 {
		return nil, nil
	}

	if lambda := (x1p/rx)*(x1p/rx) + (y1p/ry)*(y1p/ry); lambda > 1 {
		lambda = math.Sqrt(lambda)
		rx *= lambda
		ry *= lambda
	}

	sign := 1.0
	if large == sweep {
		sign = -1
	}
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	factor := math.Sqrt(math.Max(0, num/den))
	cxp := sign * factor * rx * y1p / ry
	cyp := -sign * factor * ry * x1p / rx

	cx := cos*cxp - sin*cyp + (x1+x2)/2
	cy := sin*cxp + cos*cyp + (y1+y2)/2

	theta := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	delta := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx) - theta
	dir := -1.0
	if sweep {
		dir = 1
	}
	if delta*dir < 0 {
		delta += 2 * math.Pi
	}
	if !sweep {
		delta = -delta
	}

	if n < 1 {
		n = 1
	}
	pts := make([]Tuple, 0, n+1)
	for i := 0; i <= n; i++ {
		angle := theta + float64(i)/float64(n)*delta
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		pts = append(pts, Tuple{
			cos*(x-cx) - sin*(y-cy) + cx,
			sin*(x-cx) + cos*(y-cy) + cy,
		})
	}
	return pts, nil
}
