package basic

import "github.com/oliverbestmann/stylekit"

// authority is declared in this file because it is the alphabetically first
// file of the package: the ValidateComponent registrations below reach it
// only through a dynamic interface call (builtin.StyleAuthority), which Go's
// initialization dependency analysis cannot trace, so it must precede them
// in declaration order.
var authority = stylekit.MustIdentifier("stylekit")

var (
	_ = stylekit.ValidateComponent[Alignment]()
	_ = stylekit.ValidateComponent[VerticalAlignment]()
)

type HorizontalAlign uint8

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

type VerticalAlign uint8

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// Alignment is the horizontal alignment of an element's content.
type Alignment struct {
	stylekit.Component[Alignment]
	builtin

	Horizontal HorizontalAlign
}

// VerticalAlignment is the vertical alignment of an element's content.
type VerticalAlignment struct {
	stylekit.Component[VerticalAlignment]
	builtin

	Vertical VerticalAlign
}
