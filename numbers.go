package termsvg

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// parseNumber parses the whole of s as a float. Surrounding whitespace is
// ignored, anything else trailing the number is an error.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty operand", ErrNumericParse)
	}
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrNumericParse, s)
	}
	return f, nil
}

// parseNumberList splits on commas and whitespace and parses every field.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
