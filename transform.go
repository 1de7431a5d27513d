package termsvg

import (
	"fmt"
	"math"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// matrix builds the affine transform
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
func matrix(a, b, c, d, e, f float64) mt.Transform {
	t := mt.Identity()
	t[0][0], t[0][1], t[0][2] = a, c, e
	t[1][0], t[1][1], t[1][2] = b, d, f
	return t
}

// ParseTransform reads the leading function of a transform attribute.
// Only one function is honoured; anything after its closing parenthesis is
// ignored. Translation operands are in viewBox units and are divided by
// the per-axis scale that maps the viewBox onto the 0-100 canvas. An empty
// or unrecognised string yields the identity.
func ParseTransform(s string, scaleX, scaleY float64) (mt.Transform, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return mt.Identity(), nil
	}
	name := strings.TrimSpace(s[:open])
	body := s[open+1:]
	if end := strings.IndexByte(body, ')'); end >= 0 {
		body = body[:end]
	}

	var (
		args []float64
		err  error
	)
	switch name {
	case "matrix", "translate", "scale", "rotate", "skewX", "skewY":
		args, err = parseNumberList(body)
		if err != nil {
			return mt.Identity(), fmt.Errorf("%s: %w", name, err)
		}
		if len(args) == 0 {
			return mt.Identity(), fmt.Errorf("%w: %s has no operands", ErrNumericParse, name)
		}
	default:
		return mt.Identity(), nil
	}

	t := mt.Identity()
	switch name {
	case "matrix":
		if len(args) < 6 {
			return t, fmt.Errorf("%w: matrix needs 6 operands, got %d", ErrNumericParse, len(args))
		}
		return matrix(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	case "translate":
		tx, ty := args[0], 0.0
		if len(args) > 1 {
			ty = args[1]
		}
		t.Translate(tx/scaleX, ty/scaleY)
	case "scale":
		sx, sy := args[0], args[0]
		if len(args) > 1 {
			sy = args[1]
		}
		t.Scale(sx, sy)
	case "rotate":
		t.RotateOrigin(args[0] * math.Pi / 180)
	case "skewX":
		// skew operands reach tan unconverted, unlike rotate
		t.SkewX(args[0])
	default: // skewY
		t.SkewY(args[0])
	}
	return t, nil
}

// TransformPoint applies the transform described by s to (x, y). Both
// output coordinates are computed from the original pair.
func TransformPoint(x, y float64, s string, scaleX, scaleY float64) (float64, float64, error) {
	t, err := ParseTransform(s, scaleX, scaleY)
	if err != nil {
		return x, y, err
	}
	nx, ny := t.Apply(x, y)
	return nx, ny, nil
}
