package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

const colorForms = "a color name, a #RGB/#RRGGBB/#RRGGBBAA hex string, or a tuple of 3 or 4 channel values"

// ParseColor decodes the flexible color literal forms: a color name or
// hex string, a 3-tuple of bytes, a 4-tuple of bytes, or a 3-tuple of
// bytes plus a fractional alpha in [0, 1].
func ParseColor(v any) (models.Color, error) {
	if s, ok := asString(v); ok {
		return parseColorString(s)
	}
	seq, ok := asSeq(v)
	if !ok {
		return models.Color{}, diag.NewTypeError("color", describe(v), colorForms)
	}
	switch len(seq) {
	case 3:
		r, g, b, err := byteChannels(seq[0], seq[1], seq[2])
		if err != nil {
			return models.Color{}, err
		}
		return models.RGB(r, g, b), nil
	case 4:
		r, g, b, err := byteChannels(seq[0], seq[1], seq[2])
		if err != nil {
			return models.Color{}, err
		}
		if a, ok := asByte(seq[3]); ok {
			return models.RGBA(r, g, b, a), nil
		}
		if a, ok := asFloatShaped(seq[3]); ok {
			if a < 0 || a > 1 {
				return models.Color{}, diag.NewValueError("color alpha", fmt.Sprintf("%v", a), "a value in [0, 1]")
			}
			return models.RGBA(r, g, b, uint8(math.Round(a*255))), nil
		}
		return models.Color{}, diag.NewTypeError("color alpha", describe(seq[3]), "a byte or a fraction in [0, 1]")
	default:
		return models.Color{}, diag.NewTypeError("color", fmt.Sprintf("a tuple of %d elements", len(seq)), "exactly 3 or 4 elements")
	}
}

func byteChannels(rv, gv, bv any) (r, g, b uint8, err error) {
	channels := [3]any{rv, gv, bv}
	var out [3]uint8
	for i, c := range channels {
		v, ok := asByte(c)
		if !ok {
			return 0, 0, 0, diag.NewTypeError("color channel", describe(c), "an integer in [0, 255]")
		}
		out[i] = v
	}
	return out[0], out[1], out[2], nil
}

// parseColorString resolves the color name / hex grammar.
func parseColorString(s string) (models.Color, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(t, "#") {
		return parseHexColor(s, t[1:])
	}
	if c, ok := colornames.Map[t]; ok {
		return models.RGBA(c.R, c.G, c.B, c.A), nil
	}
	return models.Color{}, diag.NewValueError("color", fmt.Sprintf("%q", s), "a named color or a #RGB/#RRGGBB/#RRGGBBAA hex string")
}

func parseHexColor(orig, hex string) (models.Color, error) {
	expand := func(n string) uint8 {
		v, _ := strconv.ParseUint(n, 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3, 4:
		if !isHex(hex) {
			break
		}
		c := models.RGB(
			expand(hex[0:1]+hex[0:1]),
			expand(hex[1:2]+hex[1:2]),
			expand(hex[2:3]+hex[2:3]),
		)
		if len(hex) == 4 {
			c.A = expand(hex[3:4] + hex[3:4])
		}
		return c, nil
	case 6, 8:
		if !isHex(hex) {
			break
		}
		c := models.RGB(expand(hex[0:2]), expand(hex[2:4]), expand(hex[4:6]))
		if len(hex) == 8 {
			c.A = expand(hex[6:8])
		}
		return c, nil
	}
	return models.Color{}, diag.NewValueError("color", fmt.Sprintf("%q", orig), "a #RGB, #RGBA, #RRGGBB or #RRGGBBAA hex string")
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
