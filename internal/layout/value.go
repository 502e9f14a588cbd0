package layout

import "fmt"

// SizeType is the per-axis sizing policy of an element.
type SizeType uint8

const (
	Minimal SizeType = iota // Shrink to fit content
	Fixed                   // Caller-specified extent
	Fill                    // Take leftover space along the parent's axis
)

// Valid reports whether s is one of the defined size types.
func (s SizeType) Valid() bool {
	return s <= Fill
}

func (s SizeType) String() string {
	switch s {
	case Minimal:
		return "minimal"
	case Fixed:
		return "fixed"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("SizeType(%d)", s)
	}
}
