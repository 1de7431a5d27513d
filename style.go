package termsvg

import (
	"image/color"
	"regexp"
	"strconv"
)

// StyleMatcher recognises the colour declarations of an inline style
// attribute. Build one with NewStyleMatcher and share it; it is safe for
// concurrent use.
type StyleMatcher struct {
	fill   *regexp.Regexp
	stroke *regexp.Regexp
}

const rgbPattern = `\s*:\s*rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`

// NewStyleMatcher compiles the fill and stroke patterns.
func NewStyleMatcher() *StyleMatcher {
	return &StyleMatcher{
		fill:   regexp.MustCompile(`(?:^|[;\s])fill` + rgbPattern),
		stroke: regexp.MustCompile(`(?:^|[;\s])stroke` + rgbPattern),
	}
}

// Filled reports whether style declares an rgb fill colour.
func (m *StyleMatcher) Filled(style string) bool {
	return m.fill.MatchString(style)
}

// FillColor returns the declared fill colour.
func (m *StyleMatcher) FillColor(style string) (color.RGBA, bool) {
	return match(m.fill, style)
}

// StrokeColor returns the declared stroke colour.
func (m *StyleMatcher) StrokeColor(style string) (color.RGBA, bool) {
	return match(m.stroke, style)
}

func match(re *regexp.Regexp, style string) (color.RGBA, bool) {
	sub := re.FindStringSubmatch(style)
	if sub == nil {
		return color.RGBA{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(sub[i+1], 10, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, true
}
