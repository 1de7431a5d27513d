package termsvg

import (
	"log"
	"strings"
)

// Primitive is one drawable point cloud. Points are in canvas space, 0 to
// 100 on both axes with y pointing up.
type Primitive struct {
	// Key is the primitive's position in its Set.
	Key    int
	Points []Tuple
	Style  string
	// Fill marks the interior cells of a filled shape, as opposed to
	// its outline.
	Fill bool
}

// Set is the ordered output of a render. Iteration order is document
// order and is the z-order for drawing.
type Set struct {
	Name    string
	ViewBox ViewBox
	// Ratio is the width/height of the destination area, passed through
	// for the colour extraction of the rendering layer.
	Ratio      float64
	Primitives []Primitive
	// Skipped holds an *ElementError for every element that was dropped.
	Skipped []error
}

func (s *Set) add(p Primitive) {
	p.Key = len(s.Primitives)
	s.Primitives = append(s.Primitives, p)
}

// Get returns the primitive stored under key.
func (s *Set) Get(key int) (Primitive, bool) {
	if key < 0 || key >= len(s.Primitives) {
		return Primitive{}, false
	}
	return s.Primitives[key], true
}

// Len returns the number of primitives.
func (s *Set) Len() int {
	return len(s.Primitives)
}

// Frame carries what elements need to flatten themselves during one
// render. A fresh Frame is made for every call.
type Frame struct {
	ViewBox    ViewBox
	Styles     *StyleMatcher
	CurveSteps int
	ArcPoints  int
}

// outline returns the stroke primitive for points and, for filled styles,
// the fill primitive derived from them. Empty point lists and empty fills
// produce nothing.
func (f *Frame) outline(points []Tuple, style string) []Primitive {
	if len(points) == 0 {
		return nil
	}
	prims := []Primitive{{Points: points, Style: style}}
	if f.Styles.Filled(style) {
		if cells := FillCells(points); len(cells) > 0 {
			prims = append(prims, Primitive{Points: cells, Style: style, Fill: true})
		}
	}
	return prims
}

// Options configures a Renderer.
type Options struct {
	// CurveSteps is the number of samples per Bézier segment.
	CurveSteps int
	// ArcPoints is the number of steps per elliptical arc; an arc emits
	// ArcPoints+1 points.
	ArcPoints int
	// Logger receives one line per dropped element. Nil is silent.
	Logger *log.Logger
}

// DefaultOptions returns the resolution the dashboard renders at.
func DefaultOptions() Options {
	return Options{
		CurveSteps: 100,
		ArcPoints:  100,
	}
}

// Renderer turns documents into primitive sets. It holds no per-render
// state and can be reused for every frame.
type Renderer struct {
	opts   Options
	styles *StyleMatcher
}

// NewRenderer returns a Renderer. Non-positive resolutions fall back to
// the defaults.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.CurveSteps <= 0 {
		opts.CurveSteps = def.CurveSteps
	}
	if opts.ArcPoints <= 0 {
		opts.ArcPoints = def.ArcPoints
	}
	return &Renderer{opts: opts, styles: NewStyleMatcher()}
}

// Styles returns the matcher used for fill detection, for colour
// extraction by the caller.
func (r *Renderer) Styles() *StyleMatcher {
	return r.styles
}

// Render flattens every element of doc. Elements that fail are dropped
// and recorded in Set.Skipped; the rest of the document still renders.
func (r *Renderer) Render(doc *Document, ratio float64) *Set {
	set := &Set{Name: doc.Name, ViewBox: doc.ViewBox, Ratio: ratio}
	f := &Frame{
		ViewBox:    doc.ViewBox,
		Styles:     r.styles,
		CurveSteps: r.opts.CurveSteps,
		ArcPoints:  r.opts.ArcPoints,
	}
	for i, el := range doc.Elements {
		prims, err := el.Primitives(f)
		if err != nil {
			r.skip(set, &ElementError{Index: i, Kind: el.Tag(), Err: err})
			continue
		}
		for _, p := range prims {
			set.add(p)
		}
	}
	return set
}

func (r *Renderer) skip(set *Set, err *ElementError) {
	set.Skipped = append(set.Skipped, err)
	if r.opts.Logger != nil {
		r.opts.Logger.Printf("termsvg: skipping %v", err)
	}
}

// RenderString scans and renders an inline document.
func (r *Renderer) RenderString(src string, ratio float64) (*Set, error) {
	doc, err := ParseSvg(src, "inline")
	if err != nil {
		return nil, err
	}
	return r.Render(doc, ratio), nil
}

// RenderFile scans and renders the document at path.
func (r *Renderer) RenderFile(path string, ratio float64) (*Set, error) {
	doc, err := ParseSvgFile(path)
	if err != nil {
		return nil, err
	}
	return r.Render(doc, ratio), nil
}

// RenderSource renders src from disk when it names an .svg file and as
// inline document text otherwise.
func (r *Renderer) RenderSource(src string, ratio float64) (*Set, error) {
	if strings.HasSuffix(src, ".svg") {
		return r.RenderFile(src, ratio)
	}
	return r.RenderString(src, ratio)
}
