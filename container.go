package ui

import (
	"fmt"
	"slices"
)

// ScrollMode specifies along which axes a container scrolls its content.
type ScrollMode uint8

const (
	// ScrollNone disables scrolling (default).
	ScrollNone ScrollMode = iota
	// ScrollHorizontal enables horizontal scrolling.
	ScrollHorizontal
	// ScrollVertical enables vertical scrolling.
	ScrollVertical
	// ScrollBoth enables both vertical and horizontal scrolling.
	ScrollBoth
)

// Scrolls reports whether the mode scrolls along axis a.
func (m ScrollMode) Scrolls(a Axis) bool {
	switch m {
	case ScrollHorizontal:
		return a == Horizontal
	case ScrollVertical:
		return a == Vertical
	case ScrollBoth:
		return true
	default:
		return false
	}
}

// containerNode is implemented by every node that owns children.
type containerNode interface {
	AsContainer() *Container
}

func asContainer(n Node) (*Container, bool) {
	if cn, ok := n.(containerNode); ok {
		return cn.AsContainer(), true
	}
	return nil, false
}

// Container is an element that owns an ordered list of children and lays
// them out along its axis. Child order is both the layout order and the
// default stacking order.
type Container struct {
	Element

	children    []Node
	maxChildren int // 0 = unlimited

	axis         Axis
	align        [2]Align
	marginScale  float32
	paddingScale float32

	scroll    ScrollMode
	offset    Vec2 // in [-overshoot, 0] after positioning
	overshoot Vec2
}

// NewContainer creates a container laying out children along axis.
func NewContainer(axis Axis, opts ...Option) *Container {
	c := &Container{}
	c.initContainer(c, axis)
	applyOptions(c, opts)
	return c
}

// initContainer sets defaults for c and records the outermost node type.
func (c *Container) initContainer(self Node, axis Axis) {
	if !axis.Valid() {
		panic(fmt.Sprintf("ui: invalid orientation %d", axis))
	}
	c.init(self)
	c.axis = axis
	c.marginScale = 1
	c.paddingScale = 1
}

// AsContainer returns c.
func (c *Container) AsContainer() *Container {
	return c
}

// Axis returns the direction children are laid out in.
func (c *Container) Axis() Axis {
	return c.axis
}

// SetAxis changes the layout direction.
func (c *Container) SetAxis(a Axis) {
	if !a.Valid() {
		panic(fmt.Sprintf("ui: invalid orientation %d", a))
	}
	c.axis = a
}

// Alignment returns the alignment of children on axis a.
func (c *Container) Alignment(a Axis) Align {
	return c.align[a]
}

// SetAlign sets the alignment of children on axis a.
func (c *Container) SetAlign(a Axis, align Align) {
	if !a.Valid() {
		panic(fmt.Sprintf("ui: invalid axis %d", a))
	}
	if !align.Valid() {
		panic(fmt.Sprintf("ui: invalid alignment %d", align))
	}
	c.align[a] = align
}

// SetMarginScale scales the theme's base margin for this container.
func (c *Container) SetMarginScale(scale float32) {
	c.marginScale = scale
}

// SetPaddingScale scales the theme's base padding for this container.
func (c *Container) SetPaddingScale(scale float32) {
	c.paddingScale = scale
}

// Margin returns the inset between c's edges and its children.
func (c *Container) Margin(s *State) float32 {
	return s.theme.Margin * c.marginScale
}

// Padding returns the gap between consecutive children.
func (c *Container) Padding(s *State) float32 {
	return s.theme.Padding * c.paddingScale
}

// ScrollMode returns the axes c scrolls along.
func (c *Container) ScrollMode() ScrollMode {
	return c.scroll
}

// SetScrollMode enables scrolling along the given axes.
func (c *Container) SetScrollMode(mode ScrollMode) {
	if mode > ScrollBoth {
		panic(fmt.Sprintf("ui: invalid scroll mode %d", mode))
	}
	c.scroll = mode
	if mode == ScrollNone {
		c.offset = Vec2{}
		c.overshoot = Vec2{}
	}
}

// --- Tree API ---

// Add appends children. Adding a nil node, a node that already has a
// parent, an ancestor of c, or more children than the container allows
// panics.
func (c *Container) Add(children ...Node) {
	for _, child := range children {
		if child == nil {
			panic("ui: nil child")
		}
		ce := child.AsElement()
		if ce.parent != nil {
			panic(fmt.Sprintf("ui: %T already has a parent", child))
		}
		if child == c.self || ce == &c.Element {
			panic("ui: container cannot contain itself")
		}
		for p := c; p != nil; p = p.parent {
			if &p.Element == ce {
				panic(fmt.Sprintf("ui: adding %T would create a cycle", child))
			}
		}
		if c.maxChildren > 0 && len(c.children) >= c.maxChildren {
			panic(fmt.Sprintf("ui: %T accepts at most %d child(ren)", c.self, c.maxChildren))
		}
		ce.parent = c
		c.children = append(c.children, child)
	}
}

// Insert places child at index i, shifting later children.
func (c *Container) Insert(i int, child Node) {
	c.Add(child)
	last := len(c.children) - 1
	i = max(0, min(i, last))
	copy(c.children[i+1:], c.children[i:last])
	c.children[i] = child
}

// Remove detaches child, preserving the order of the remaining children.
// Returns true if the child was found.
func (c *Container) Remove(child Node) bool {
	i := slices.Index(c.children, child)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	child.AsElement().parent = nil
	return true
}

// RemoveAll detaches every child.
func (c *Container) RemoveAll() {
	for _, child := range c.children {
		child.AsElement().parent = nil
	}
	c.children = nil
}

// Children returns the children in order. The slice must not be modified.
func (c *Container) Children() []Node {
	return c.children
}

// shownChildren returns a snapshot of the children that passed the last
// visibility pass.
func (c *Container) shownChildren(s *State) []Node {
	out := make([]Node, 0, len(c.children))
	for _, child := range c.children {
		if child.AsElement().isShown(s) {
			out = append(out, child)
		}
	}
	return out
}

// flowChildren returns the shown children that take part in c's layout
// flow, excluding floating ones.
func (c *Container) flowChildren(s *State) []Node {
	out := make([]Node, 0, len(c.children))
	for _, child := range c.children {
		if !child.AsElement().isShown(s) {
			continue
		}
		if _, ok := asFloating(child); ok {
			continue
		}
		out = append(out, child)
	}
	return out
}

func mustValidSizeType(st SizeType) {
	if !st.Valid() {
		panic(fmt.Sprintf("ui: invalid size type %d", st))
	}
}
