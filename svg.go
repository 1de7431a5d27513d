package termsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// ViewBox is the native extent of a document.
type ViewBox struct {
	Width  float64
	Height float64
}

// Scale returns the divisors that map viewBox units onto the 0-100 canvas.
func (v ViewBox) Scale() (float64, float64) {
	return v.Width / canvasExtent, v.Height / canvasExtent
}

func parseViewBox(s string) (ViewBox, error) {
	nums, err := parseNumberList(s)
	if err != nil {
		return ViewBox{}, fmt.Errorf("%w: viewBox %q: %v", ErrMalformedDocument, s, err)
	}
	if len(nums) < 4 {
		return ViewBox{}, fmt.Errorf("%w: viewBox %q needs 4 fields", ErrMalformedDocument, s)
	}
	vb := ViewBox{Width: nums[2], Height: nums[3]}
	if !(vb.Width > 0 && vb.Height > 0) {
		return ViewBox{}, fmt.Errorf("%w: viewBox %q has no area", ErrMalformedDocument, s)
	}
	return vb, nil
}

// Element is a drawable element of a document. Elements are immutable
// once scanned.
type Element interface {
	// Tag returns the element name, e.g. "path".
	Tag() string
	// Primitives flattens the element onto the canvas described by f.
	Primitives(f *Frame) ([]Primitive, error)
}

// Document is the result of scanning an SVG document: its viewBox and its
// drawable elements in document order.
type Document struct {
	Name     string
	ViewBox  ViewBox
	Elements []Element
}

// invalidElement stands in for an element whose attributes could not be
// decoded, so the failure is reported at its place in document order.
type invalidElement struct {
	tag string
	err error
}

func (e invalidElement) Tag() string { return e.tag }

func (e invalidElement) Primitives(*Frame) ([]Primitive, error) { return nil, e.err }

// ParseSvg scans an SVG string.
func ParseSvg(str string, name string) (*Document, error) {
	return ParseSvgFromReader(strings.NewReader(str), name)
}

// ParseSvgFile scans the SVG document stored at path.
func ParseSvgFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSvgFromReader(f, path)
}

// ParseSvgFromReader scans an SVG document from an io.Reader. Every
// element start is visited once; path, line and rect elements are kept
// regardless of nesting. A missing or unusable viewBox on the root
// element is fatal.
func ParseSvgFromReader(r io.Reader, name string) (*Document, error) {
	doc := &Document{Name: name}
	decoder := xml.NewDecoder(r)
	root := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		var el Element
		switch start.Name.Local {
		case "svg":
			if root {
				continue
			}
			root = true
			if doc.ViewBox, err = parseViewBox(attr(start, "viewBox")); err != nil {
				return nil, err
			}
			continue
		case "path":
			el = &Path{}
		case "line":
			el = &Line{}
		case "rect":
			el = &Rect{}
		default:
			continue
		}

		if err = decoder.DecodeElement(el, &start); err != nil {
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) {
				return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformedDocument, start.Name.Local, err)
			}
			el = invalidElement{tag: start.Name.Local, err: fmt.Errorf("%w: %q", ErrNumericParse, numErr.Num)}
		}
		doc.Elements = append(doc.Elements, el)
	}

	if !root {
		return nil, fmt.Errorf("%w: no svg element", ErrMalformedDocument)
	}
	return doc, nil
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
