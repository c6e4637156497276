package basic

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/stylekit"
)

func TestComponentNames(t *testing.T) {
	require.Equal(t, stylekit.MustName("stylekit", "text_color"), stylekit.KindOf[TextColor]().Name)
	require.Equal(t, stylekit.MustName("stylekit", "font_size"), stylekit.KindOf[FontSize]().Name)
	require.Equal(t, stylekit.MustName("stylekit", "vertical_alignment"), stylekit.KindOf[VerticalAlignment]().Name)
}

func TestInheritanceFlags(t *testing.T) {
	require.True(t, stylekit.KindOf[FontSize]().Inherited)
	require.True(t, stylekit.KindOf[TextColor]().Inherited)
	require.False(t, stylekit.KindOf[Padding]().Inherited)
	require.False(t, stylekit.KindOf[Margin]().Inherited)
}

func TestTextColorFallsBackToForeground(t *testing.T) {
	foreground := ColorPairOf(colorful.Color{R: 1})

	style := stylekit.New().With(ForegroundColor{ColorPair: foreground})

	pair, ok := stylekit.ResolveValue[ColorPair](&style, stylekit.KindOf[TextColor]())
	require.True(t, ok)
	require.Equal(t, foreground, pair)

	// an explicit text color wins over the fallback
	text := ColorPairOf(colorful.Color{G: 1})
	style.Push(TextColor{ColorPair: text})

	pair, ok = stylekit.ResolveValue[ColorPair](&style, stylekit.KindOf[TextColor]())
	require.True(t, ok)
	require.Equal(t, text, pair)
}

func TestColorPairThemed(t *testing.T) {
	pair := ColorPair{
		Light: colorful.Color{R: 1},
		Dark:  colorful.Color{B: 1},
	}

	require.Equal(t, pair.Light, pair.Themed(ThemeLight))
	require.Equal(t, pair.Dark, pair.Themed(ThemeDark))
}

func TestColorPairBlend(t *testing.T) {
	red := ColorPairOf(colorful.Color{R: 1})
	blue := ColorPairOf(colorful.Color{B: 1})

	atStart := red.Blend(blue, 0)
	require.InDelta(t, 1, atStart.Light.R, 1e-6)
	require.InDelta(t, 0, atStart.Light.B, 1e-6)

	atEnd := red.Blend(blue, 1)
	require.InDelta(t, 0, atEnd.Dark.R, 1e-6)
	require.InDelta(t, 1, atEnd.Dark.B, 1e-6)
}

func TestDimension(t *testing.T) {
	require.True(t, Auto().IsAuto())
	require.True(t, Minimal().IsAuto())
	require.False(t, Exact(12).IsAuto())

	points, ok := Exact(12).Points()
	require.True(t, ok)
	require.Equal(t, 12.0, points)

	_, ok = Auto().Points()
	require.False(t, ok)

	require.Equal(t, 7.0, Minimal().PointsOr(7))
}

func TestSurroundMinimumSize(t *testing.T) {
	surround := Surround{
		Left:  Exact(2),
		Right: Exact(3),
		Top:   Exact(4),
		// Bottom stays Auto
	}

	require.Equal(t, 5.0, surround.MinimumWidth())
	require.Equal(t, 4.0, surround.MinimumHeight())
}

func TestPaddingMergeFillsAutoSides(t *testing.T) {
	base := stylekit.New().With(Padding{Surround: SurroundOf(Exact(4))})
	override := stylekit.New().With(Padding{Surround: Surround{Left: Exact(8)}})

	merged := base.Merge(override)

	padding, ok := stylekit.Get[Padding](&merged)
	require.True(t, ok)
	require.Equal(t, Exact(8), padding.Left)
	require.Equal(t, Exact(4), padding.Top)
	require.Equal(t, Exact(4), padding.Right)
	require.Equal(t, Exact(4), padding.Bottom)
}

func TestDefaults(t *testing.T) {
	require.Equal(t, 14.0, DefaultFontSize().Points)
	require.Equal(t, "Roboto", DefaultFontFamily().Family)
	require.Equal(t, uint16(400), uint16(WeightNormal))
}

func TestThemeStyle(t *testing.T) {
	theme := stylekit.New().
		With(SystemTheme{Variant: ThemeDark}).
		With(FontWeight{Weight: WeightNormal}).
		With(Padding{Surround: SurroundOf(Exact(4))})

	heading := stylekit.New().
		With(FontWeight{Weight: WeightBold})

	effective := theme.MergeWith(heading, true)

	// padding is not inherited and must not flow into the heading style
	_, ok := stylekit.Get[Padding](&effective)
	require.False(t, ok)

	weight, ok := stylekit.Get[FontWeight](&effective)
	require.True(t, ok)
	require.Equal(t, WeightBold, weight.Weight)

	st, ok := stylekit.Get[SystemTheme](&effective)
	require.True(t, ok)
	require.Equal(t, ThemeDark, st.Variant)
}
