package basic

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/oliverbestmann/stylekit"
)

var (
	_ = stylekit.ValidateComponent[SystemTheme]()
	_ = stylekit.ValidateComponent[ForegroundColor]()
	_ = stylekit.ValidateComponent[BackgroundColor]()
	_ = stylekit.ValidateComponent[TextColor]()
)

// ThemeVariant selects between the light and dark variant of a ColorPair.
type ThemeVariant uint8

const (
	ThemeLight ThemeVariant = iota
	ThemeDark
)

// SystemTheme carries the theme variant the style is resolved against.
type SystemTheme struct {
	stylekit.Component[SystemTheme]
	builtin

	Variant ThemeVariant
}

// ColorPair is a color for each ThemeVariant.
type ColorPair struct {
	Light colorful.Color
	Dark  colorful.Color
}

// ColorPairOf returns a ColorPair using c for both theme variants.
func ColorPairOf(c colorful.Color) ColorPair {
	return ColorPair{Light: c, Dark: c}
}

// Themed returns the color for the given theme variant.
func (p ColorPair) Themed(variant ThemeVariant) colorful.Color {
	if variant == ThemeDark {
		return p.Dark
	}

	return p.Light
}

// Blend interpolates between this pair and other in Luv space, side by side.
// t=0 returns p, t=1 returns other.
func (p ColorPair) Blend(other ColorPair, t float64) ColorPair {
	return ColorPair{
		Light: p.Light.BlendLuv(other.Light, t),
		Dark:  p.Dark.BlendLuv(other.Dark, t),
	}
}

// ForegroundColor is the general foreground color of an element.
type ForegroundColor struct {
	stylekit.Component[ForegroundColor]
	builtin

	ColorPair
}

func (c ForegroundColor) StyleValue() ColorPair {
	return c.ColorPair
}

// BackgroundColor is the background color of an element.
type BackgroundColor struct {
	stylekit.Component[BackgroundColor]
	builtin

	ColorPair
}

func (c BackgroundColor) StyleValue() ColorPair {
	return c.ColorPair
}

// TextColor is the color of rendered text. When a style does not set it,
// lookups through GetWithFallback use ForegroundColor instead.
type TextColor struct {
	stylekit.Component[TextColor]
	builtin

	ColorPair
}

func (c TextColor) StyleValue() ColorPair {
	return c.ColorPair
}

func (TextColor) StyleFallbacks() []*stylekit.ComponentKind {
	return []*stylekit.ComponentKind{
		stylekit.KindOf[ForegroundColor](),
	}
}
