package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

func TestParseThemeColor(t *testing.T) {
	got, err := ParseThemeColor("foreground")
	if err != nil {
		t.Fatalf("ParseThemeColor(role) failed: %v", err)
	}
	if got != (models.RoleColor{Role: models.RoleForeground}) {
		t.Errorf("ParseThemeColor(\"foreground\") = %+v", got)
	}

	got, err = ParseThemeColor("legend_fill")
	if err != nil {
		t.Fatalf("ParseThemeColor(underscore role) failed: %v", err)
	}
	if got != (models.RoleColor{Role: models.RoleLegendFill}) {
		t.Errorf("ParseThemeColor(\"legend_fill\") = %+v", got)
	}

	got, err = ParseThemeColor("red")
	if err != nil {
		t.Fatalf("ParseThemeColor(name) failed: %v", err)
	}
	if got != (models.FixedColor{Color: models.Color{R: 255, A: 255}}) {
		t.Errorf("ParseThemeColor(\"red\") = %+v", got)
	}

	got, err = ParseThemeColor([]any{1, 2, 3})
	if err != nil {
		t.Fatalf("ParseThemeColor(tuple) failed: %v", err)
	}
	if got != (models.FixedColor{Color: models.Color{R: 1, G: 2, B: 3, A: 255}}) {
		t.Errorf("ParseThemeColor(tuple) = %+v", got)
	}
}

func TestParseThemeStroke(t *testing.T) {
	got, err := parseThemeStroke("stroke", "grid")
	if err != nil {
		t.Fatalf("parseThemeStroke(string) failed: %v", err)
	}
	want := models.DefaultStroke()
	want.Color = models.RoleColor{Role: models.RoleGrid}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("string stroke mismatch (-want +got):\n%s", diff)
	}

	got, err = parseThemeStroke("stroke", map[string]any{
		"color":   "red",
		"width":   2,
		"pattern": "dashed",
		"opacity": 0.5,
	})
	if err != nil {
		t.Fatalf("parseThemeStroke(object) failed: %v", err)
	}
	want = models.Stroke{
		Color:   models.FixedColor{Color: models.Color{R: 255, A: 255}},
		Width:   2,
		Pattern: models.DashPattern{Segments: []float32{5, 5}},
		Opacity: 0.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("object stroke mismatch (-want +got):\n%s", diff)
	}

	_, err = parseThemeStroke("stroke", map[string]any{"opacity": 1.5})
	var verr *diag.ValueError
	if !errors.As(err, &verr) {
		t.Errorf("opacity out of range: expected ValueError, got %v", err)
	}
}

func TestParseTheme(t *testing.T) {
	names := map[string]models.NamedTheme{
		"light":                models.ThemeLight,
		"dark":                 models.ThemeDark,
		"mocha":                models.ThemeCatppuccinMocha,
		"catppuccin-macchiato": models.ThemeCatppuccinMacchiato,
		"frappe":               models.ThemeCatppuccinFrappe,
		"latte":                models.ThemeCatppuccinLatte,
	}
	for name, want := range names {
		got, err := ParseTheme(name)
		if err != nil {
			t.Errorf("ParseTheme(%q) failed: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseTheme(%q) = %v, expected %v", name, got, want)
		}
	}

	custom := map[string]any{
		"background":    "white",
		"foreground":    "black",
		"grid":          "gray",
		"legend_fill":   "white",
		"legend_border": "black",
	}
	if _, err := ParseTheme(custom); err != nil {
		t.Errorf("ParseTheme(custom) failed: %v", err)
	}

	delete(custom, "grid")
	_, err := ParseTheme(custom)
	var verr *diag.ValueError
	if !errors.As(err, &verr) {
		t.Errorf("custom theme missing role: expected ValueError, got %v", err)
	}
}

func TestParsePalette(t *testing.T) {
	got, err := ParsePalette("okabe_ito")
	if err != nil {
		t.Fatalf("ParsePalette failed: %v", err)
	}
	if got != models.PaletteOkabeIto {
		t.Errorf("ParsePalette(\"okabe_ito\") = %v", got)
	}

	got, err = ParsePalette([]any{"red", []any{0, 0, 255}})
	if err != nil {
		t.Fatalf("ParsePalette(list) failed: %v", err)
	}
	want := models.CustomPalette{Colors: []models.Color{
		{R: 255, A: 255},
		{B: 255, A: 255},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("custom palette mismatch (-want +got):\n%s", diff)
	}

	_, err = ParsePalette("neon")
	var verr *diag.ValueError
	if !errors.As(err, &verr) {
		t.Errorf("unknown palette: expected ValueError, got %v", err)
	}
}

func TestParseStyle(t *testing.T) {
	presets := map[string]models.Style{
		"black_white": models.BlackWhiteStyle(),
		"light":       models.LightStyle(),
		"dark":        models.DarkStyle(),
		"okabe_ito":   models.OkabeItoStyle(),
		"tol_bright":  models.TolBrightStyle(),
		"mocha":       models.CatppuccinMochaStyle(),
		"macchiato":   models.CatppuccinMacchiatoStyle(),
		"frappe":      models.CatppuccinFrappeStyle(),
		"latte":       models.CatppuccinLatteStyle(),
	}
	for name, want := range presets {
		got, err := ParseStyle(name)
		if err != nil {
			t.Errorf("ParseStyle(%q) failed: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseStyle(%q) = %+v, expected %+v", name, got, want)
		}
	}

	got, err := ParseStyle(map[string]any{"theme": "dark", "palette": "pastel"})
	if err != nil {
		t.Fatalf("ParseStyle(object) failed: %v", err)
	}
	if got != models.NewStyle(models.ThemeDark, models.PalettePastel) {
		t.Errorf("ParseStyle(object) = %+v", got)
	}

	var verr *diag.ValueError
	_, err = ParseStyle(map[string]any{"theme": "dark"})
	if !errors.As(err, &verr) {
		t.Errorf("style without palette: expected ValueError, got %v", err)
	}
	_, err = ParseStyle("vaporwave")
	if !errors.As(err, &verr) {
		t.Errorf("unknown style: expected ValueError, got %v", err)
	}
}
