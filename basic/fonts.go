package basic

import "github.com/oliverbestmann/stylekit"

var (
	_ = stylekit.ValidateComponent[FontSize]()
	_ = stylekit.ValidateComponent[FontFamily]()
	_ = stylekit.ValidateComponent[FontStyle]()
	_ = stylekit.ValidateComponent[FontWeight]()
)

// FontSize is the size of rendered text in points.
type FontSize struct {
	stylekit.Component[FontSize]
	builtin

	Points float64
}

// DefaultFontSize returns the 14pt default.
func DefaultFontSize() FontSize {
	return FontSize{Points: 14}
}

// FontFamily names the font family used to render text.
type FontFamily struct {
	stylekit.Component[FontFamily]
	builtin

	Family string
}

// DefaultFontFamily returns the "Roboto" default.
func DefaultFontFamily() FontFamily {
	return FontFamily{Family: "Roboto"}
}

// Slant is the slant of a font face.
type Slant uint8

const (
	SlantRegular Slant = iota
	SlantItalic
	SlantOblique
)

// FontStyle selects the slant of the font face.
type FontStyle struct {
	stylekit.Component[FontStyle]
	builtin

	Slant Slant
}

// Weight is a font weight on the usual 100 to 900 scale.
type Weight uint16

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// FontWeight selects the weight of the font face.
type FontWeight struct {
	stylekit.Component[FontWeight]
	builtin

	Weight Weight
}
