package basic

import "github.com/oliverbestmann/stylekit"

var (
	_ = stylekit.ValidateComponent[Padding]()
	_ = stylekit.ValidateComponent[Margin]()
)

type dimensionMode uint8

const (
	dimensionAuto dimensionMode = iota
	dimensionMinimal
	dimensionExact
)

// Dimension is a single measurement: an exact length in points, Auto, or
// Minimal (shrink to fit the content where that applies, Auto otherwise).
// The zero Dimension is Auto.
type Dimension struct {
	mode   dimensionMode
	points float64
}

// Auto returns the automatic dimension.
func Auto() Dimension {
	return Dimension{}
}

// Minimal returns the shrink-to-fit dimension.
func Minimal() Dimension {
	return Dimension{mode: dimensionMinimal}
}

// Exact returns a dimension of the given length in points.
func Exact(points float64) Dimension {
	return Dimension{mode: dimensionExact, points: points}
}

// IsAuto reports whether the dimension is Auto or Minimal.
func (d Dimension) IsAuto() bool {
	return d.mode != dimensionExact
}

// Points returns the exact length, if the dimension has one.
func (d Dimension) Points() (float64, bool) {
	return d.points, d.mode == dimensionExact
}

// PointsOr returns the exact length, or fallback for Auto and Minimal.
func (d Dimension) PointsOr(fallback float64) float64 {
	if d.mode == dimensionExact {
		return d.points
	}

	return fallback
}

// or keeps this dimension unless it is Auto, then base is used.
func (d Dimension) or(base Dimension) Dimension {
	if d.mode == dimensionAuto {
		return base
	}

	return d
}

// Surround is a dimension for each side of a rectangle.
type Surround struct {
	Left   Dimension
	Top    Dimension
	Right  Dimension
	Bottom Dimension
}

// SurroundOf returns a Surround using d for all four sides.
func SurroundOf(d Dimension) Surround {
	return Surround{Left: d, Top: d, Right: d, Bottom: d}
}

// MinimumWidth returns the sum of the exact horizontal sides.
func (s Surround) MinimumWidth() float64 {
	return s.Left.PointsOr(0) + s.Right.PointsOr(0)
}

// MinimumHeight returns the sum of the exact vertical sides.
func (s Surround) MinimumHeight() float64 {
	return s.Top.PointsOr(0) + s.Bottom.PointsOr(0)
}

// overlaid returns other with sides that other leaves Auto taken from s.
func (s Surround) overlaid(other Surround) Surround {
	return Surround{
		Left:   other.Left.or(s.Left),
		Top:    other.Top.or(s.Top),
		Right:  other.Right.or(s.Right),
		Bottom: other.Bottom.or(s.Bottom),
	}
}

// Padding is the space between an element's bounds and its content.
// Padding is not inherited. Merging two paddings keeps the overriding
// value's sides, filling sides it leaves Auto from the base.
type Padding struct {
	stylekit.Component[Padding]
	builtin

	Surround
}

func (Padding) ShouldBeInherited() bool {
	return false
}

func (p Padding) Merge(other Padding) (Padding, bool) {
	return Padding{Surround: p.Surround.overlaid(other.Surround)}, true
}

// Margin is the space around an element's bounds. Margin is not inherited
// and merges like Padding.
type Margin struct {
	stylekit.Component[Margin]
	builtin

	Surround
}

func (Margin) ShouldBeInherited() bool {
	return false
}

func (m Margin) Merge(other Margin) (Margin, bool) {
	return Margin{Surround: m.Surround.overlaid(other.Surround)}, true
}
