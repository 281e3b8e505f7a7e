package parser

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

func TestParseColorTriples(t *testing.T) {
	samples := []uint8{0, 1, 17, 127, 200, 254, 255}
	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				c, err := ParseColor([]any{int(r), int(g), int(b)})
				if err != nil {
					t.Fatalf("ParseColor(%d,%d,%d) failed: %v", r, g, b, err)
				}
				want := models.Color{R: r, G: g, B: b, A: 255}
				if c != want {
					t.Errorf("ParseColor(%d,%d,%d) = %+v, expected %+v", r, g, b, c, want)
				}
			}
		}
	}
}

func TestParseColorAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha any
		want  uint8
	}{
		{"zero fraction", 0.0, 0},
		{"full fraction", 1.0, 255},
		{"half fraction", 0.5, 128},
		{"rounded fraction", 0.2, 51},
		{"byte", 200, 200},
		{"json float", json.Number("0.5"), 128},
		{"json int", json.Number("64"), 64},
	}
	for _, tt := range tests {
		c, err := ParseColor([]any{10, 20, 30, tt.alpha})
		if err != nil {
			t.Errorf("%s: ParseColor failed: %v", tt.name, err)
			continue
		}
		if c.A != tt.want {
			t.Errorf("%s: alpha = %d, expected %d", tt.name, c.A, tt.want)
		}
	}
}

func TestParseColorAlphaOutOfRange(t *testing.T) {
	for _, alpha := range []float64{1.5, -0.1} {
		_, err := ParseColor([]any{10, 20, 30, alpha})
		var verr *diag.ValueError
		if !errors.As(err, &verr) {
			t.Errorf("alpha %v: expected ValueError, got %v", alpha, err)
		}
	}
}

func TestParseColorStrings(t *testing.T) {
	tests := []struct {
		input string
		want  models.Color
	}{
		{"red", models.Color{R: 255, A: 255}},
		{"white", models.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#fff", models.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#f00a", models.Color{R: 255, A: 170}},
		{"#102030", models.Color{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"#10203040", models.Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{" Red ", models.Color{R: 255, A: 255}},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.input, err)
			continue
		}
		if c != tt.want {
			t.Errorf("ParseColor(%q) = %+v, expected %+v", tt.input, c, tt.want)
		}
	}
}

func TestParseColorPure(t *testing.T) {
	input := []any{10, 20, 30, 0.5}
	original := []any{10, 20, 30, 0.5}

	first, err := ParseColor(input)
	if err != nil {
		t.Fatalf("first ParseColor failed: %v", err)
	}
	second, err := ParseColor(input)
	if err != nil {
		t.Fatalf("second ParseColor failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated parse differs: %+v vs %+v", first, second)
	}
	if diff := cmp.Diff(original, input); diff != "" {
		t.Errorf("ParseColor mutated its input (-want +got):\n%s", diff)
	}
}

func TestParseColorBadInputs(t *testing.T) {
	valueErrors := []any{"no-such-color", "#12", "#gggggg"}
	for _, in := range valueErrors {
		_, err := ParseColor(in)
		var verr *diag.ValueError
		if !errors.As(err, &verr) {
			t.Errorf("ParseColor(%v): expected ValueError, got %v", in, err)
		}
	}

	typeErrors := []any{
		[]any{1, 2},
		[]any{1, 2, 3, 4, 5},
		[]any{256, 0, 0},
		[]any{"a", 0, 0},
		true,
		nil,
	}
	for _, in := range typeErrors {
		_, err := ParseColor(in)
		var terr *diag.TypeError
		if !errors.As(err, &terr) {
			t.Errorf("ParseColor(%v): expected TypeError, got %v", in, err)
		}
	}
}
