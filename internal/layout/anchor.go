package layout

import "fmt"

// Anchor names one of nine points on a rectangle.
type Anchor uint8

const (
	TopLeft Anchor = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Fraction returns the anchor as a fraction of the rectangle's size.
func (a Anchor) Fraction() Vec2 {
	if a > BottomRight {
		panic(fmt.Sprintf("layout: invalid anchor %d", a))
	}
	return Vec2{X: float32(a%3) / 2, Y: float32(a/3) / 2}
}

// On returns the absolute position of the anchor on r.
func (a Anchor) On(r Rect) Vec2 {
	return r.Pos.Add(r.Size.Mul(a.Fraction()))
}

// Origin returns where a rectangle of the given size must start so that
// its anchor a lies on p.
func (a Anchor) Origin(p, size Vec2) Vec2 {
	return p.Sub(size.Mul(a.Fraction()))
}

func (a Anchor) String() string {
	names := [...]string{"top-left", "top", "top-right", "left", "center", "right", "bottom-left", "bottom", "bottom-right"}
	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("Anchor(%d)", a)
}
