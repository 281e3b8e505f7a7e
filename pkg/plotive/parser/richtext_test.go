package parser

import (
	"errors"
	"testing"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
)

func TestParseRichText(t *testing.T) {
	valid := []string{
		"",
		"plain title",
		"inline $x^2$ math",
		"grouped $x^{2n}$ exponent",
		"escaped \\$ dollar",
		"escaped \\{ brace",
	}
	for _, s := range valid {
		got, err := ParseRichText(s)
		if err != nil {
			t.Errorf("ParseRichText(%q) failed: %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("ParseRichText(%q) = %q, expected the input unchanged", s, got)
		}
	}

	invalid := []string{
		"unbalanced $ math",
		"open {group",
		"closed group}",
		"trailing escape \\",
		"$a$ then $b",
	}
	for _, s := range invalid {
		_, err := ParseRichText(s)
		var verr *diag.ValueError
		if !errors.As(err, &verr) {
			t.Errorf("ParseRichText(%q): expected ValueError, got %v", s, err)
		}
	}
}
