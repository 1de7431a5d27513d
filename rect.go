package termsvg

// Rect is an SVG rect element.
type Rect struct {
	ID     string  `xml:"id,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
	Style  string  `xml:"style,attr"`
}

func (r *Rect) Tag() string { return "rect" }

// Primitives implements the Element interface. The outline is the closed
// four corner polygon; a fill primitive follows it when the style declares
// a fill colour and the rectangle covers at least one cell.
func (r *Rect) Primitives(f *Frame) ([]Primitive, error) {
	sx, sy := f.ViewBox.Scale()
	x, w := r.X/sx, r.Width/sx
	top := canvasExtent - r.Y/sy
	bottom := canvasExtent - (r.Y+r.Height)/sy
	points := []Tuple{
		{x, top},
		{x + w, top},
		{x + w, bottom},
		{x, bottom},
		{x, top},
	}
	return f.outline(points, r.Style), nil
}
