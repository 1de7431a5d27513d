package termsvg

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseNumber(t *testing.T) {
	is := is.New(t)

	for s, want := range map[string]float64{
		"0":      0,
		"-36":    -36,
		"45.5":   45.5,
		" 1e2 ":  100,
		".5":     0.5,
		"-0.125": -0.125,
	} {
		n, err := parseNumber(s)
		is.NoErr(err)
		is.Equal(n, want)
	}

	for _, s := range []string{"", "  ", "abc", "1px", "1,2", "--1"} {
		_, err := parseNumber(s)
		is.True(errors.Is(err, ErrNumericParse))
	}
}

func TestParseNumberList(t *testing.T) {
	is := is.New(t)

	nums, err := parseNumberList("0, 0 ,100\t50")
	is.NoErr(err)
	is.Equal(nums, []float64{0, 0, 100, 50})

	nums, err = parseNumberList("")
	is.NoErr(err)
	is.Equal(len(nums), 0)

	_, err = parseNumberList("1 two 3")
	is.True(errors.Is(err, ErrNumericParse))
}
