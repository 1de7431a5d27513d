package termsvg

import (
	"fmt"
	"strings"
	"unicode"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
	"github.com/tdewolff/parse/v2/strconv"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	Style           string `xml:"style,attr"`
	TransformString string `xml:"transform,attr"`
}

func (p *Path) Tag() string { return "path" }

// Primitives implements the Element interface. An empty d attribute
// yields no primitives.
func (p *Path) Primitives(f *Frame) ([]Primitive, error) {
	points, err := p.Flatten(f)
	if err != nil {
		return nil, err
	}
	return f.outline(points, p.Style), nil
}

// Flatten walks the path data and returns every emitted point in canvas
// space. Curves and arcs are tessellated at the frame's resolution.
func (p *Path) Flatten(f *Frame) ([]Tuple, error) {
	sx, sy := f.ViewBox.Scale()
	t, err := ParseTransform(p.TransformString, sx, sy)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.D) == "" {
		return nil, nil
	}
	d, err := normalizePathData(p.D)
	if err != nil {
		return nil, err
	}

	l, items := gl.Lex(fmt.Sprint(p.ID), d)
	// the lexer goroutine exits once its channel is closed
	defer func() {
		for range items {
		}
	}()

	pi := &pathInterpreter{
		lex:        l,
		scaleX:     sx,
		scaleY:     sy,
		transform:  t,
		curveSteps: f.CurveSteps,
		arcPoints:  f.ArcPoints,
	}
	origin := pi.project(Tuple{})
	pi.state.current, pi.state.subpathStart = origin, origin
	return pi.run()
}

// normalizePathData rewrites d so every command letter, number and comma
// is a separate token the lexer understands: numbers get a leading zero
// before a bare decimal point and a lower case exponent. Characters that
// cannot appear in path data are rejected.
func normalizePathData(d string) (string, error) {
	var sb strings.Builder
	b := []byte(d)
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			i++
		case c == ',':
			sb.WriteString(", ")
			i++
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
			sb.WriteByte(c)
			sb.WriteByte(' ')
			i++
		case '0' <= c && c <= '9' || c == '.' || c == '+' || c == '-':
			_, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return "", fmt.Errorf("%w: malformed number at offset %d", ErrNumericParse, i)
			}
			num := strings.Replace(string(b[i:i+n]), "E", "e", 1)
			sign := ""
			if num[0] == '+' || num[0] == '-' {
				sign, num = num[:1], num[1:]
			}
			if num[0] == '.' {
				num = "0" + num
			}
			sb.WriteString(sign)
			sb.WriteString(num)
			sb.WriteByte(' ')
			i += n
		default:
			return "", fmt.Errorf("%w: unexpected %q at offset %d", ErrUnsupportedCommand, c, i)
		}
	}
	return sb.String(), nil
}

// interpreterState is the pen of a single path walk.
type interpreterState struct {
	// current is the last point in canvas space.
	current Tuple
	// pen is the same point in viewBox-scaled document space, before the
	// y flip and the transform. Curve maths happens in this space.
	pen          Tuple
	subpathStart Tuple
	prevCommand  CommandKind
	// prevControl is the trailing control point of the previous Q, T, C
	// or S command, in document space.
	prevControl *Tuple
}

type pathInterpreter struct {
	lex            *gl.Lexer
	scaleX, scaleY float64
	transform      mt.Transform
	curveSteps     int
	arcPoints      int
	state          interpreterState
	points         []Tuple
}

func (pi *pathInterpreter) run() ([]Tuple, error) {
	for {
		i := pi.lex.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return pi.points, nil
		case gl.ItemWSP:
		case gl.ItemError:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCommand, i.Value)
		case gl.ItemNumber:
			return nil, fmt.Errorf("%w: operand %s has no command", ErrUnsupportedCommand, i.Value)
		case gl.ItemLetter:
			cmds, err := pi.readCommands(i.Value)
			if err != nil {
				return nil, err
			}
			for _, c := range cmds {
				if err := pi.execute(c); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrUnsupportedCommand, i.Value)
		}
	}
}

func (pi *pathInterpreter) skipSeparators() {
	pi.lex.ConsumeWhiteSpace()
	pi.lex.ConsumeComma()
	pi.lex.ConsumeWhiteSpace()
}

func (pi *pathInterpreter) readNumber() (float64, error) {
	pi.skipSeparators()
	i := pi.lex.NextItem()
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected number, got %q", ErrNumericParse, i.Value)
	}
	return parseNumber(i.Value)
}

// readCommands reads the operands following a command letter. Extra
// operand groups repeat the command; extra pairs after M are line-tos.
func (pi *pathInterpreter) readCommands(letter string) ([]PathCommand, error) {
	kind, ok := commandLetters[letter]
	if !ok {
		if strings.IndexFunc(letter, unicode.IsLower) >= 0 {
			return nil, fmt.Errorf("%w: relative command %q", ErrUnsupportedCommand, letter)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCommand, letter)
	}
	arity := commandArity[kind]
	if arity == 0 {
		return []PathCommand{{Kind: kind}}, nil
	}

	var cmds []PathCommand
	for {
		args := make([]float64, arity)
		for j := range args {
			n, err := pi.readNumber()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", letter, err)
			}
			args[j] = n
		}
		cmds = append(cmds, PathCommand{Kind: kind, Args: args})
		if kind == MoveTo {
			kind = LineTo
		}

		pi.skipSeparators()
		if pi.lex.PeekItem().Type != gl.ItemNumber {
			return cmds, nil
		}
	}
}

// scaled maps a document coordinate into viewBox-scaled space.
func (pi *pathInterpreter) scaled(x, y float64) Tuple {
	return Tuple{x / pi.scaleX, y / pi.scaleY}
}

// project flips a scaled document point onto the canvas and applies the
// element transform. The flip always comes first.
func (pi *pathInterpreter) project(p Tuple) Tuple {
	x, y := pi.transform.Apply(p[0], canvasExtent-p[1])
	return Tuple{x, y}
}

// lineTo moves the pen to p and emits it.
func (pi *pathInterpreter) lineTo(p Tuple) Tuple {
	pi.state.pen = p
	pi.state.current = pi.project(p)
	pi.points = append(pi.points, pi.state.current)
	return pi.state.current
}

// curveTo emits tessellated samples and leaves the pen on end.
func (pi *pathInterpreter) curveTo(samples []Tuple, end Tuple) {
	for _, s := range samples {
		pi.points = append(pi.points, pi.project(s))
	}
	pi.state.pen = end
	pi.state.current = pi.project(end)
}

// smoothControl returns the first control point of an S or T command.
func (pi *pathInterpreter) smoothControl(after ...CommandKind) Tuple {
	for _, k := range after {
		if pi.state.prevCommand == k && pi.state.prevControl != nil {
			return reflect(*pi.state.prevControl, pi.state.pen)
		}
	}
	return pi.state.pen
}

func (pi *pathInterpreter) execute(c PathCommand) error {
	a := c.Args
	var control *Tuple

	switch c.Kind {
	case MoveTo:
		pi.state.subpathStart = pi.lineTo(pi.scaled(a[0], a[1]))
	case LineTo:
		pi.lineTo(pi.scaled(a[0], a[1]))
	case HLineTo:
		pi.lineTo(Tuple{a[0] / pi.scaleX, pi.state.pen[1]})
	case VLineTo:
		pi.lineTo(Tuple{pi.state.pen[0], a[0] / pi.scaleY})
	case Close:
		pi.points = append(pi.points, pi.state.subpathStart)
	case QuadTo:
		ctrl, end := pi.scaled(a[0], a[1]), pi.scaled(a[2], a[3])
		pi.curveTo(sampleQuadratic(pi.state.pen, ctrl, end, pi.curveSteps), end)
		control = &ctrl
	case SmoothQuadTo:
		ctrl, end := pi.smoothControl(QuadTo, SmoothQuadTo), pi.scaled(a[0], a[1])
		pi.curveTo(sampleQuadratic(pi.state.pen, ctrl, end, pi.curveSteps), end)
		control = &ctrl
	case CubeTo:
		c1, c2, end := pi.scaled(a[0], a[1]), pi.scaled(a[2], a[3]), pi.scaled(a[4], a[5])
		pi.curveTo(sampleCubic(pi.state.pen, c1, c2, end, pi.curveSteps), end)
		control = &c2
	case SmoothCubeTo:
		c1 := pi.smoothControl(CubeTo, SmoothCubeTo)
		c2, end := pi.scaled(a[0], a[1]), pi.scaled(a[2], a[3])
		pi.curveTo(sampleCubic(pi.state.pen, c1, c2, end, pi.curveSteps), end)
		control = &c2
	case ArcTo:
		end := pi.scaled(a[5], a[6])
		radii := Tuple{a[0] / pi.scaleX, a[1] / pi.scaleY}
		samples, err := ellipticalArc(pi.state.pen, radii, a[2], a[3] != 0, a[4] != 0, end, pi.arcPoints)
		if err != nil {
			return err
		}
		pi.curveTo(samples, end)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedCommand, c.Kind)
	}

	pi.state.prevCommand = c.Kind
	pi.state.prevControl = control
	return nil
}
