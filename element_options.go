package ui

import "fmt"

// Option configures a node at construction.
type Option func(Node)

func applyOptions(n Node, opts []Option) {
	for _, opt := range opts {
		opt(n)
	}
}

// containerOf returns the container behind n, panicking with the option
// name when n is a leaf.
func containerOf(n Node, option string) *Container {
	c, ok := asContainer(n)
	if !ok {
		panic(fmt.Sprintf("ui: %s applied to non-container %T", option, n))
	}
	return c
}

// --- Element Options ---

// WithName sets a debug name shown in logs and draw lists.
func WithName(name string) Option {
	return func(n Node) {
		n.AsElement().name = name
	}
}

// WithSize makes both axes FIXED at the given extent.
func WithSize(width, height float32) Option {
	return func(n Node) {
		n.AsElement().SetFixedSize(V2(width, height))
	}
}

// WithWidth makes the horizontal axis FIXED.
func WithWidth(width float32) Option {
	return func(n Node) {
		n.AsElement().SetFixed(Horizontal, width)
	}
}

// WithHeight makes the vertical axis FIXED.
func WithHeight(height float32) Option {
	return func(n Node) {
		n.AsElement().SetFixed(Vertical, height)
	}
}

// WithSizeType sets the sizing policy on one axis.
func WithSizeType(a Axis, st SizeType) Option {
	return func(n Node) {
		n.AsElement().SetSizeType(a, st)
	}
}

// WithFillWidth makes the element take leftover horizontal space.
func WithFillWidth() Option {
	return WithSizeType(Horizontal, Fill)
}

// WithFillHeight makes the element take leftover vertical space.
func WithFillHeight() Option {
	return WithSizeType(Vertical, Fill)
}

// WithFill makes the element take leftover space on both axes.
func WithFill() Option {
	return func(n Node) {
		e := n.AsElement()
		e.sizeType = [2]SizeType{Fill, Fill}
	}
}

// WithLayer sets the layer offset relative to the parent.
func WithLayer(layer int) Option {
	return func(n Node) {
		n.AsElement().relLayer = layer
	}
}

// WithStyle sets the element's style.
func WithStyle(style *Style) Option {
	return func(n Node) {
		n.AsElement().style = style
	}
}

// WithBackground is shorthand for a style with a fixed background paint.
func WithBackground(p Paint) Option {
	return func(n Node) {
		e := n.AsElement()
		if e.style == nil {
			e.style = &Style{}
		}
		e.style.Background = Const(p)
	}
}

// WithCursor sets a constant cursor shape.
func WithCursor(c Cursor) Option {
	return func(n Node) {
		n.AsElement().cursor = func() Cursor { return c }
	}
}

// WithOnClick sets the left-press handler.
func WithOnClick(fn func()) Option {
	return func(n Node) {
		n.AsElement().onClick = fn
	}
}

// WithOnSecondaryClick sets the right-press handler.
func WithOnSecondaryClick(fn func()) Option {
	return func(n Node) {
		n.AsElement().onSecondaryClick = fn
	}
}

// WithSelectable lets the element take the selection.
func WithSelectable() Option {
	return func(n Node) {
		n.AsElement().selectable = true
	}
}

// WithVisible sets the visibility predicate.
func WithVisible(fn func() bool) Option {
	return func(n Node) {
		n.AsElement().visible = fn
	}
}

// WithIgnoreParentClip opts the element out of its ancestors' clip areas.
func WithIgnoreParentClip() Option {
	return func(n Node) {
		n.AsElement().ignoreClip = true
	}
}

// --- Container Options ---

// WithAlign sets the alignment of children on one axis.
func WithAlign(a Axis, align Align) Option {
	return func(n Node) {
		containerOf(n, "WithAlign").SetAlign(a, align)
	}
}

// WithAlignment sets horizontal and vertical alignment together.
func WithAlignment(h, v Align) Option {
	return func(n Node) {
		c := containerOf(n, "WithAlignment")
		c.SetAlign(Horizontal, h)
		c.SetAlign(Vertical, v)
	}
}

// WithMargin scales the theme's base margin for this container.
func WithMargin(scale float32) Option {
	return func(n Node) {
		containerOf(n, "WithMargin").marginScale = scale
	}
}

// WithPadding scales the theme's base padding between children.
func WithPadding(scale float32) Option {
	return func(n Node) {
		containerOf(n, "WithPadding").paddingScale = scale
	}
}

// WithScroll enables scrolling along the given axes.
func WithScroll(mode ScrollMode) Option {
	return func(n Node) {
		containerOf(n, "WithScroll").SetScrollMode(mode)
	}
}

// WithChildren appends children in order.
func WithChildren(children ...Node) Option {
	return func(n Node) {
		containerOf(n, "WithChildren").Add(children...)
	}
}
