package layout

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle: Pos is the top-left corner.
type Rect struct {
	Pos, Size Vec2
}

// NewRect creates a Rect from position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: width, Y: height}}
}

// Max returns the bottom-right corner (exclusive).
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies inside r. The top and left edges are
// inside; the right and bottom edges are outside.
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.Pos.X && p.X < m.X && p.Y >= r.Pos.Y && p.Y < m.Y
}

// ContainsRect reports whether other lies fully within r.
func (r Rect) ContainsRect(other Rect) bool {
	m, om := r.Max(), other.Max()
	return other.Pos.X >= r.Pos.X && other.Pos.Y >= r.Pos.Y && om.X <= m.X && om.Y <= m.Y
}

// Intersect returns the overlap of two rectangles, or an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := math32.Max(r.Pos.X, other.Pos.X)
	y := math32.Max(r.Pos.Y, other.Pos.Y)
	m, om := r.Max(), other.Max()
	right := math32.Min(m.X, om.X)
	bottom := math32.Min(m.Y, om.Y)
	if right <= x || bottom <= y {
		return Rect{}
	}
	return NewRect(x, y, right-x, bottom-y)
}
