package ui

import "image/color"

// PaintKind selects how a Paint fills an area.
type PaintKind uint8

const (
	// PaintNone draws nothing.
	PaintNone PaintKind = iota
	// PaintSolid fills with Color.
	PaintSolid
	// PaintChecker fills with a checkerboard of Color and Alt.
	PaintChecker
	// PaintRole fills with the theme colour for Role.
	PaintRole
	// PaintThemeChecker fills with the theme's checkerboard colours.
	PaintThemeChecker
)

// Paint describes how to fill an element's background or outline.
// Colours are straight alpha.
type Paint struct {
	Kind  PaintKind
	Color color.RGBA
	Alt   color.RGBA
	Cell  float32
	Role  Role
}

// Solid returns a single-colour paint.
func Solid(c color.RGBA) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// Checkerboard returns a two-colour checkerboard paint, as drawn behind
// transparent image regions.
func Checkerboard(a, b color.RGBA, cell float32) Paint {
	return Paint{Kind: PaintChecker, Color: a, Alt: b, Cell: cell}
}

// ThemeColor returns a paint that follows the theme colour for r.
func ThemeColor(r Role) Paint {
	return Paint{Kind: PaintRole, Role: r}
}

// ThemeCheckerboard returns a checkerboard paint using the theme's
// checker colours and cell size.
func ThemeCheckerboard() Paint {
	return Paint{Kind: PaintThemeChecker}
}

// Resolve turns theme-relative paints into Solid or Checkerboard ones.
func (p Paint) Resolve(th *Theme) Paint {
	switch p.Kind {
	case PaintRole:
		if p.Role == RoleNone {
			return Paint{}
		}
		return Solid(th.Color(p.Role))
	case PaintThemeChecker:
		return Checkerboard(th.Colors.CheckerA.Value(), th.Colors.CheckerB.Value(), th.CheckerCell)
	default:
		return p
	}
}

// Visible reports whether the paint draws anything.
func (p Paint) Visible() bool {
	switch p.Kind {
	case PaintNone:
		return false
	case PaintSolid:
		return p.Color.A > 0
	default:
		return true
	}
}

// Const returns a supplier that always yields p.
func Const(p Paint) func() Paint {
	return func() Paint { return p }
}

// Shape is the outline shape of an element's box.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeRounded
	ShapeEllipse
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRounded:
		return "rounded"
	case ShapeEllipse:
		return "ellipse"
	default:
		return "rect"
	}
}

// Style holds live suppliers for an element's visual attributes. The
// suppliers are evaluated at draw time, so one style can follow hover and
// selection without being mutated. Nil suppliers draw nothing.
type Style struct {
	Background    func() Paint
	Outline       func() Paint
	OutlineWeight func() float32
	Shape         Shape
	Radius        float32
}

// ResolvedStyle is a Style with its suppliers evaluated against a theme.
type ResolvedStyle struct {
	Background    Paint
	Outline       Paint
	OutlineWeight float32
	Shape         Shape
	Radius        float32
}

// Resolve evaluates the suppliers. A nil style resolves to nothing.
func (st *Style) Resolve(th *Theme) ResolvedStyle {
	if st == nil {
		return ResolvedStyle{}
	}
	rs := ResolvedStyle{Shape: st.Shape, Radius: st.Radius}
	if st.Background != nil {
		rs.Background = st.Background().Resolve(th)
	}
	if st.Outline != nil {
		rs.Outline = st.Outline().Resolve(th)
		rs.OutlineWeight = th.OutlineWeight
		if st.OutlineWeight != nil {
			rs.OutlineWeight = st.OutlineWeight()
		}
	}
	return rs
}

// HoverPaint yields hover while the pointer is above n, normal otherwise.
func HoverPaint(n Node, normal, hover Paint) func() Paint {
	e := n.AsElement()
	return func() Paint {
		if e.mouseAbove {
			return hover
		}
		return normal
	}
}

// SelectablePaint yields selected while n holds the selection, hover while
// the pointer is above it, and normal otherwise.
func SelectablePaint(n Node, normal, hover, selected Paint) func() Paint {
	e := n.AsElement()
	return func() Paint {
		switch {
		case e.selected:
			return selected
		case e.mouseAbove:
			return hover
		default:
			return normal
		}
	}
}

// HoverStyle returns a rectangle style whose background switches to hover
// while the pointer is above n.
func HoverStyle(n Node, normal, hover Paint) *Style {
	return &Style{Background: HoverPaint(n, normal, hover)}
}

// SelectableStyle returns the theme's standard style for a selectable
// control: surface, hover and selected backgrounds with an outline that
// turns to the accent colour while selected.
func SelectableStyle(n Node) *Style {
	e := n.AsElement()
	return &Style{
		Background: SelectablePaint(n, ThemeColor(RoleSurface), ThemeColor(RoleHover), ThemeColor(RoleSelected)),
		Outline: func() Paint {
			if e.selected {
				return ThemeColor(RoleAccent)
			}
			return ThemeColor(RoleOutline)
		},
		Shape:  ShapeRounded,
		Radius: 3,
	}
}

// Cursor is a pointer shape requested from the window collaborator.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorMove
	CursorResizeH
	CursorResizeV
	CursorCrosshair
)

// String returns the cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorText:
		return "text"
	case CursorMove:
		return "move"
	case CursorResizeH:
		return "resize-h"
	case CursorResizeV:
		return "resize-v"
	case CursorCrosshair:
		return "crosshair"
	default:
		return "default"
	}
}
