package parser

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

func roleFromString(s string) (models.Role, bool) {
	switch s {
	case "background":
		return models.RoleBackground, true
	case "foreground":
		return models.RoleForeground, true
	case "grid":
		return models.RoleGrid, true
	case "legend-fill", "legend_fill":
		return models.RoleLegendFill, true
	case "legend-border", "legend_border":
		return models.RoleLegendBorder, true
	}
	return 0, false
}

// ParseThemeColor decodes a theme-resolved color: a role name, or any of
// the literal color forms.
func ParseThemeColor(v any) (models.ThemeColor, error) {
	if s, ok := asString(v); ok {
		if role, ok := roleFromString(s); ok {
			return models.RoleColor{Role: role}, nil
		}
		c, err := parseColorString(s)
		if err != nil {
			return nil, err
		}
		return models.FixedColor{Color: c}, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return nil, err
	}
	return models.FixedColor{Color: c}, nil
}

// parseSeriesColor decodes a series color: "auto" defers to the palette,
// anything else is a literal color.
func parseSeriesColor(v any) (models.SeriesColor, error) {
	if s, ok := asString(v); ok && s == "auto" {
		return models.AutoSeriesColor{}, nil
	}
	if s, ok := asString(v); ok {
		c, err := parseColorString(s)
		if err != nil {
			return nil, err
		}
		return models.FixedSeriesColor{Color: c}, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return nil, err
	}
	return models.FixedSeriesColor{Color: c}, nil
}

// parseThemeStroke decodes a stroke literal. A bare string is a stroke of
// that theme color with default width and pattern; an object overlays
// color, width, pattern and opacity onto the default stroke.
func parseThemeStroke(slot string, v any) (models.Stroke, error) {
	stroke := models.DefaultStroke()
	if s, ok := asString(v); ok {
		c, err := ParseThemeColor(s)
		if err != nil {
			return models.Stroke{}, err
		}
		stroke.Color = c
		return stroke, nil
	}
	obj, ok := asObject(v)
	if !ok {
		return models.Stroke{}, diag.NewTypeError(slot, describe(v), "a color string or a stroke object")
	}
	if cv, ok := attrNotNil(obj, "color"); ok {
		c, err := ParseThemeColor(cv)
		if err != nil {
			return models.Stroke{}, err
		}
		stroke.Color = c
	}
	if wv, ok := attrNotNil(obj, "width"); ok {
		w, ok := asFloat32(wv)
		if !ok {
			return models.Stroke{}, diag.NewTypeError(slot+" width", describe(wv), "a number")
		}
		stroke.Width = w
	}
	if pv, ok := attrNotNil(obj, "pattern"); ok {
		p, err := ParseStrokePattern(pv)
		if err != nil {
			return models.Stroke{}, err
		}
		stroke.Pattern = p
	}
	if ov, ok := attrNotNil(obj, "opacity"); ok {
		o, ok := asFloat32(ov)
		if !ok {
			return models.Stroke{}, diag.NewTypeError(slot+" opacity", describe(ov), "a number")
		}
		if o < 0 || o > 1 {
			return models.Stroke{}, diag.NewValueError(slot+" opacity", fmt.Sprintf("%v", o), "a value in [0, 1]")
		}
		stroke.Opacity = o
	}
	return stroke, nil
}

// ParseTheme decodes a theme: one of the six built-in names, or an object
// carrying all five role colors.
func ParseTheme(v any) (models.Theme, error) {
	if s, ok := asString(v); ok {
		switch s {
		case "light":
			return models.ThemeLight, nil
		case "dark":
			return models.ThemeDark, nil
		case "mocha", "catppuccin-mocha":
			return models.ThemeCatppuccinMocha, nil
		case "macchiato", "catppuccin-macchiato":
			return models.ThemeCatppuccinMacchiato, nil
		case "frappe", "catppuccin-frappe":
			return models.ThemeCatppuccinFrappe, nil
		case "latte", "catppuccin-latte":
			return models.ThemeCatppuccinLatte, nil
		}
		return nil, diag.NewValueError("theme", fmt.Sprintf("%q", s), `"light", "dark" or a catppuccin flavor`)
	}
	obj, ok := asObject(v)
	if !ok {
		return nil, diag.NewTypeError("theme", describe(v), "a theme name or an object with the five role colors")
	}
	roleColor := func(name string) (models.Color, error) {
		cv, ok := attrNotNil(obj, name)
		if !ok {
			return models.Color{}, diag.NewValueError("theme", fmt.Sprintf("object without a %q color", name), "all five role colors to be set")
		}
		return ParseColor(cv)
	}
	var theme models.CustomTheme
	var err error
	if theme.Background, err = roleColor("background"); err != nil {
		return nil, err
	}
	if theme.Foreground, err = roleColor("foreground"); err != nil {
		return nil, err
	}
	if theme.Grid, err = roleColor("grid"); err != nil {
		return nil, err
	}
	if theme.LegendFill, err = roleColor("legend_fill"); err != nil {
		return nil, err
	}
	if theme.LegendBorder, err = roleColor("legend_border"); err != nil {
		return nil, err
	}
	return theme, nil
}

// ParsePalette decodes a series palette: one of the nine built-in names,
// or a list of color literals.
func ParsePalette(v any) (models.Palette, error) {
	if s, ok := asString(v); ok {
		switch s {
		case "black":
			return models.PaletteBlack, nil
		case "standard", "default":
			return models.PaletteStandard, nil
		case "pastel":
			return models.PalettePastel, nil
		case "tol_bright", "tol":
			return models.PaletteTolBright, nil
		case "okabe_ito", "okabe":
			return models.PaletteOkabeIto, nil
		case "mocha", "catppuccin-mocha":
			return models.PaletteCatppuccinMocha, nil
		case "macchiato", "catppuccin-macchiato":
			return models.PaletteCatppuccinMacchiato, nil
		case "frappe", "catppuccin-frappe":
			return models.PaletteCatppuccinFrappe, nil
		case "latte", "catppuccin-latte":
			return models.PaletteCatppuccinLatte, nil
		}
		return nil, diag.NewValueError("palette", fmt.Sprintf("%q", s), "a built-in palette name")
	}
	seq, ok := asSeq(v)
	if !ok {
		return nil, diag.NewTypeError("palette", describe(v), "a palette name or a list of colors")
	}
	colors := make([]models.Color, len(seq))
	for i, e := range seq {
		c, err := ParseColor(e)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return models.CustomPalette{Colors: colors}, nil
}

// ParseStyle decodes a style: a named preset, or an object pairing a
// theme with a palette.
func ParseStyle(v any) (models.Style, error) {
	if s, ok := asString(v); ok {
		switch s {
		case "black_white", "monochrome", "black":
			return models.BlackWhiteStyle(), nil
		case "light":
			return models.LightStyle(), nil
		case "dark":
			return models.DarkStyle(), nil
		case "okabe_ito", "okabe":
			return models.OkabeItoStyle(), nil
		case "tol_bright", "tol":
			return models.TolBrightStyle(), nil
		case "mocha", "catppuccin-mocha":
			return models.CatppuccinMochaStyle(), nil
		case "macchiato", "catppuccin-macchiato":
			return models.CatppuccinMacchiatoStyle(), nil
		case "frappe", "catppuccin-frappe":
			return models.CatppuccinFrappeStyle(), nil
		case "latte", "catppuccin-latte":
			return models.CatppuccinLatteStyle(), nil
		}
		return models.Style{}, diag.NewValueError("style", fmt.Sprintf("%q", s), "a built-in style name")
	}
	obj, ok := asObject(v)
	if !ok {
		return models.Style{}, diag.NewTypeError("style", describe(v), "a style name or an object with theme and palette")
	}
	tv, ok := attrNotNil(obj, "theme")
	if !ok {
		return models.Style{}, diag.NewValueError("style", "object without a theme", "a theme to be set")
	}
	pv, ok := attrNotNil(obj, "palette")
	if !ok {
		return models.Style{}, diag.NewValueError("style", "object without a palette", "a palette to be set")
	}
	theme, err := ParseTheme(tv)
	if err != nil {
		return models.Style{}, err
	}
	palette, err := ParsePalette(pv)
	if err != nil {
		return models.Style{}, err
	}
	return models.NewStyle(theme, palette), nil
}
