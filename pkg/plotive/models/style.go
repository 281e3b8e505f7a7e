package models

// Role names one of the structural theme colors.
type Role uint8

const (
	RoleBackground Role = iota
	RoleForeground
	RoleGrid
	RoleLegendFill
	RoleLegendBorder
)

func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleForeground:
		return "foreground"
	case RoleGrid:
		return "grid"
	case RoleLegendFill:
		return "legend-fill"
	case RoleLegendBorder:
		return "legend-border"
	}
	return "unknown"
}

// ThemeColor is either a theme role resolved at render time or a fixed
// literal color.
type ThemeColor interface{ isThemeColor() }

// RoleColor defers to the active theme for the actual color.
type RoleColor struct {
	Role Role
}

// FixedColor is a literal color independent of the theme.
type FixedColor struct {
	Color Color
}

func (RoleColor) isThemeColor()  {}
func (FixedColor) isThemeColor() {}

// SeriesColor is either assigned from the palette or fixed.
type SeriesColor interface{ isSeriesColor() }

// AutoSeriesColor takes the next palette color.
type AutoSeriesColor struct{}

// FixedSeriesColor is a literal series color.
type FixedSeriesColor struct {
	Color Color
}

func (AutoSeriesColor) isSeriesColor()  {}
func (FixedSeriesColor) isSeriesColor() {}

// StrokePattern is the dash pattern of a line.
type StrokePattern interface{ isStrokePattern() }

// SolidPattern draws an unbroken line.
type SolidPattern struct{}

// DotPattern draws a dotted line.
type DotPattern struct{}

// DashPattern alternates drawn and skipped segment lengths.
// Segments is never empty.
type DashPattern struct {
	Segments []float32
}

func (SolidPattern) isStrokePattern() {}
func (DotPattern) isStrokePattern()   {}
func (DashPattern) isStrokePattern()  {}

// Stroke is a theme-colored line style used by grids, frames and
// annotations.
type Stroke struct {
	Color   ThemeColor
	Width   float32
	Pattern StrokePattern
	Opacity float32
}

// DefaultStroke returns a solid one-pixel foreground stroke.
func DefaultStroke() Stroke {
	return Stroke{
		Color:   RoleColor{Role: RoleForeground},
		Width:   1,
		Pattern: SolidPattern{},
		Opacity: 1,
	}
}

// SeriesStroke is the line style of a data series.
type SeriesStroke struct {
	Color   SeriesColor
	Width   float32
	Pattern StrokePattern
}

// DefaultSeriesStroke returns a solid palette-colored stroke.
func DefaultSeriesStroke() SeriesStroke {
	return SeriesStroke{
		Color:   AutoSeriesColor{},
		Width:   1,
		Pattern: SolidPattern{},
	}
}

// Theme is a named theme or a fully custom set of role colors.
type Theme interface{ isTheme() }

// NamedTheme is one of the built-in themes.
type NamedTheme uint8

const (
	ThemeLight NamedTheme = iota
	ThemeDark
	ThemeCatppuccinMocha
	ThemeCatppuccinMacchiato
	ThemeCatppuccinFrappe
	ThemeCatppuccinLatte
)

func (t NamedTheme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	case ThemeCatppuccinMocha:
		return "catppuccin-mocha"
	case ThemeCatppuccinMacchiato:
		return "catppuccin-macchiato"
	case ThemeCatppuccinFrappe:
		return "catppuccin-frappe"
	case ThemeCatppuccinLatte:
		return "catppuccin-latte"
	}
	return "unknown"
}

// CustomTheme supplies all five role colors explicitly.
type CustomTheme struct {
	Background   Color
	Foreground   Color
	Grid         Color
	LegendFill   Color
	LegendBorder Color
}

func (NamedTheme) isTheme()  {}
func (CustomTheme) isTheme() {}

// Palette is a named series palette or a custom color list.
type Palette interface{ isPalette() }

// NamedPalette is one of the built-in series palettes.
type NamedPalette uint8

const (
	PaletteBlack NamedPalette = iota
	PaletteStandard
	PalettePastel
	PaletteTolBright
	PaletteOkabeIto
	PaletteCatppuccinMocha
	PaletteCatppuccinMacchiato
	PaletteCatppuccinFrappe
	PaletteCatppuccinLatte
)

func (p NamedPalette) String() string {
	switch p {
	case PaletteBlack:
		return "black"
	case PaletteStandard:
		return "standard"
	case PalettePastel:
		return "pastel"
	case PaletteTolBright:
		return "tol_bright"
	case PaletteOkabeIto:
		return "okabe_ito"
	case PaletteCatppuccinMocha:
		return "catppuccin-mocha"
	case PaletteCatppuccinMacchiato:
		return "catppuccin-macchiato"
	case PaletteCatppuccinFrappe:
		return "catppuccin-frappe"
	case PaletteCatppuccinLatte:
		return "catppuccin-latte"
	}
	return "unknown"
}

// CustomPalette cycles through an explicit color list.
type CustomPalette struct {
	Colors []Color
}

func (NamedPalette) isPalette()  {}
func (CustomPalette) isPalette() {}

// Style pairs a theme with a series palette.
type Style struct {
	Theme   Theme
	Palette Palette
}

// NewStyle creates a style from a theme and a palette.
func NewStyle(theme Theme, palette Palette) Style {
	return Style{Theme: theme, Palette: palette}
}

// DefaultStyle is the light theme with the standard palette.
func DefaultStyle() Style { return LightStyle() }

// LightStyle is the light theme with the standard palette.
func LightStyle() Style {
	return NewStyle(ThemeLight, PaletteStandard)
}

// DarkStyle is the dark theme with the standard palette.
func DarkStyle() Style {
	return NewStyle(ThemeDark, PaletteStandard)
}

// BlackWhiteStyle draws every series in black on the light theme.
func BlackWhiteStyle() Style {
	return NewStyle(ThemeLight, PaletteBlack)
}

// OkabeItoStyle uses the colorblind-safe Okabe-Ito palette.
func OkabeItoStyle() Style {
	return NewStyle(ThemeLight, PaletteOkabeIto)
}

// TolBrightStyle uses Paul Tol's bright palette.
func TolBrightStyle() Style {
	return NewStyle(ThemeLight, PaletteTolBright)
}

// CatppuccinMochaStyle uses the mocha flavor for theme and palette.
func CatppuccinMochaStyle() Style {
	return NewStyle(ThemeCatppuccinMocha, PaletteCatppuccinMocha)
}

// CatppuccinMacchiatoStyle uses the macchiato flavor for theme and palette.
func CatppuccinMacchiatoStyle() Style {
	return NewStyle(ThemeCatppuccinMacchiato, PaletteCatppuccinMacchiato)
}

// CatppuccinFrappeStyle uses the frappe flavor for theme and palette.
func CatppuccinFrappeStyle() Style {
	return NewStyle(ThemeCatppuccinFrappe, PaletteCatppuccinFrappe)
}

// CatppuccinLatteStyle uses the latte flavor for theme and palette.
func CatppuccinLatteStyle() Style {
	return NewStyle(ThemeCatppuccinLatte, PaletteCatppuccinLatte)
}
