package layout

import "fmt"

// Axis selects one of the two layout directions.
type Axis uint8

const (
	Horizontal Axis = iota // Children laid out left-to-right
	Vertical               // Children laid out top-to-bottom
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	a.mustBeValid()
	return 1 - a
}

// Valid reports whether a is one of the defined axes.
func (a Axis) Valid() bool {
	return a == Horizontal || a == Vertical
}

func (a Axis) mustBeValid() {
	if !a.Valid() {
		panic(fmt.Sprintf("layout: invalid axis %d", a))
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// Align positions children on an axis when there is spare room.
type Align uint8

const (
	AlignStart  Align = iota // Pack at the start of the axis
	AlignCenter              // Center on the axis
	AlignEnd                 // Pack at the end of the axis
)

// Valid reports whether a is one of the defined alignments.
func (a Align) Valid() bool {
	return a <= AlignEnd
}

// Fraction returns the share of free space placed before the content:
// 0 for start, 0.5 for center, 1 for end.
func (a Align) Fraction() float32 {
	if !a.Valid() {
		panic(fmt.Sprintf("layout: invalid alignment %d", a))
	}
	return float32(a) / 2
}

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Align(%d)", a)
	}
}
