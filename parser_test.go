package termsvg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	doc, err := ParseSvg(testSvg, "test")
	is.NoErr(err)
	is.NotNil(doc)
	is.True(math.Abs(doc.ViewBox.Width-595.201) < 1e-9)
	is.True(math.Abs(doc.ViewBox.Height-841.922) < 1e-9)
	is.Equal(len(doc.Elements), 1)

	rect, ok := doc.Elements[0].(*Rect)
	is.True(ok)
	is.Equal(rect.X, 207.0)
	is.Equal(rect.Width, 181.667)
	is.Equal(rect.Style, "")

	doc, err = ParseSvgFromReader(strings.NewReader(testSvg), "test")
	is.NoErr(err)
	is.Equal(doc.Name, "test")
	is.Equal(len(doc.Elements), 1)
}

func TestParseFile(t *testing.T) {
	is := is.New(t)

	name := filepath.Join(t.TempDir(), "podium.svg")
	is.NoErr(os.WriteFile(name, []byte(testSvg), 0o644))

	doc, err := ParseSvgFile(name)
	is.NoErr(err)
	is.Equal(doc.Name, name)
	is.Equal(len(doc.Elements), 1)

	_, err = ParseSvgFile(filepath.Join(t.TempDir(), "missing.svg"))
	is.Err(err)
}

func TestParseDocumentOrder(t *testing.T) {
	is := is.New(t)

	doc, err := ParseSvg(`<svg viewBox="0,0,200,50">
		<path d="M0 0 L10 10" style="stroke: rgb(1, 2, 3);" transform="scale(2)"/>
		<g transform="translate(5 5)">
			<line x1="1" y1="2" x2="3" y2="4"/>
			<circle cx="1" cy="1" r="1"/>
			<rect x="1" y="1" width="2" height="3"/>
		</g>
		<path/>
	</svg>`, "order")
	is.NoErr(err)
	is.Equal(doc.ViewBox, ViewBox{Width: 200, Height: 50})

	var tags []string
	for _, el := range doc.Elements {
		tags = append(tags, el.Tag())
	}
	is.Equal(tags, []string{"path", "line", "rect", "path"})

	p := doc.Elements[0].(*Path)
	is.Equal(p.D, "M0 0 L10 10")
	is.Equal(p.Style, "stroke: rgb(1, 2, 3);")
	is.Equal(p.TransformString, "scale(2)")

	l := doc.Elements[1].(*Line)
	is.Equal(*l, Line{X1: 1, Y1: 2, X2: 3, Y2: 4})

	empty := doc.Elements[3].(*Path)
	is.Equal(*empty, Path{})
}

func TestParseMalformed(t *testing.T) {
	docs := map[string]string{
		"no viewBox":       `<svg><path d="M0 0"/></svg>`,
		"short viewBox":    `<svg viewBox="0 0 100"></svg>`,
		"text viewBox":     `<svg viewBox="0 0 wide 100"></svg>`,
		"empty viewBox":    `<svg viewBox="0 0 0 100"></svg>`,
		"negative viewBox": `<svg viewBox="0 0 100 -1"></svg>`,
		"no svg element":   `<path d="M0 0"/>`,
		"broken xml":       `<svg viewBox="0 0 100 100"><path d="M0 0"</svg>`,
	}
	for name, src := range docs {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, err := ParseSvg(src, name)
			is.True(errors.Is(err, ErrMalformedDocument))
		})
	}
}

func TestParseBadAttribute(t *testing.T) {
	is := is.New(t)

	doc, err := ParseSvg(`<svg viewBox="0 0 100 100"><rect x="1" width="wide"/><line x1="1"/></svg>`, "bad")
	is.NoErr(err)
	is.Equal(len(doc.Elements), 2)
	is.Equal(doc.Elements[0].Tag(), "rect")

	_, err = doc.Elements[0].Primitives(&Frame{ViewBox: doc.ViewBox, Styles: NewStyleMatcher()})
	is.True(errors.Is(err, ErrNumericParse))
}
