package termsvg

// Line is an SVG line element. It is drawn as a two point segment and
// never filled.
type Line struct {
	ID    string  `xml:"id,attr"`
	X1    float64 `xml:"x1,attr"`
	Y1    float64 `xml:"y1,attr"`
	X2    float64 `xml:"x2,attr"`
	Y2    float64 `xml:"y2,attr"`
	Style string  `xml:"style,attr"`
}

func (l *Line) Tag() string { return "line" }

// Primitives implements the Element interface
func (l *Line) Primitives(f *Frame) ([]Primitive, error) {
	sx, sy := f.ViewBox.Scale()
	points := []Tuple{
		{l.X1 / sx, canvasExtent - l.Y1/sy},
		{l.X2 / sx, canvasExtent - l.Y2/sy},
	}
	return []Primitive{{Points: points, Style: l.Style}}, nil
}
