// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package ui

import "github.com/grindlemire/go-ui/internal/layout"

// Vec2 is a 2D point or extent in pixels.
type Vec2 = layout.Vec2

// Rect is an axis-aligned rectangle.
type Rect = layout.Rect

// Axis selects one of the two layout directions.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Align positions children on an axis when there is spare room.
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// SizeType is the per-axis sizing policy of an element.
type SizeType = layout.SizeType

const (
	Minimal = layout.Minimal
	Fixed   = layout.Fixed
	Fill    = layout.Fill
)

// Anchor names one of nine points on an element's box.
type Anchor = layout.Anchor

const (
	TopLeft     = layout.TopLeft
	Top         = layout.Top
	TopRight    = layout.TopRight
	Left        = layout.Left
	Center      = layout.Center
	Right       = layout.Right
	BottomLeft  = layout.BottomLeft
	Bottom      = layout.Bottom
	BottomRight = layout.BottomRight
)

// Epsilon is the tolerance used by layout arithmetic.
const Epsilon = layout.Epsilon

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return layout.V2(x, y)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

var axes = [2]Axis{Horizontal, Vertical}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func clamp(v, lo, hi float32) float32 {
	return layout.Clamp(v, lo, hi)
}

// finiteOr0 replaces NaN and infinities with 0.
func finiteOr0(v float32) float32 {
	return layout.Finite(v)
}
