package parser

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
)

// ParseRichText validates the inline markup accepted by figure and plot
// titles and returns the text unchanged. Math spans are delimited by $,
// groups by braces, and a backslash escapes the next rune.
func ParseRichText(s string) (string, error) {
	depth := 0
	math := false
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '$':
			math = !math
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return "", diag.NewValueError("title", fmt.Sprintf("%q", s), "balanced braces")
			}
		}
	}
	if escaped {
		return "", diag.NewValueError("title", fmt.Sprintf("%q", s), "no trailing escape")
	}
	if math {
		return "", diag.NewValueError("title", fmt.Sprintf("%q", s), "an even number of $ math delimiters")
	}
	if depth != 0 {
		return "", diag.NewValueError("title", fmt.Sprintf("%q", s), "balanced braces")
	}
	return s, nil
}
