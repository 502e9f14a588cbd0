package ui

// clampOffset keeps the scroll offset within [-overshoot, 0] per axis.
func (c *Container) clampOffset() {
	for _, a := range axes {
		c.offset.Set(a, clamp(finiteOr0(c.offset.Get(a)), -c.overshoot.Get(a), 0))
	}
}

// Overshoot returns how far the content exceeds the container on each
// scrolling axis, as of the last layout.
func (c *Container) Overshoot() Vec2 {
	return c.overshoot
}

// ScrollOffset returns the translation applied to children, in
// [-overshoot, 0] per axis.
func (c *Container) ScrollOffset() Vec2 {
	return c.offset
}

// ScrollBy moves the content by delta. Positive values scroll toward the
// start. Axes the container does not scroll along are ignored.
func (c *Container) ScrollBy(delta Vec2) {
	for _, a := range axes {
		if c.scroll.Scrolls(a) {
			c.offset.Set(a, c.offset.Get(a)+delta.Get(a))
		}
	}
	c.clampOffset()
}

// ScrollFraction returns the scroll position on axis a as a fraction of
// the overshoot: 0 at the start, 1 at the end, 0 when nothing overflows.
func (c *Container) ScrollFraction(a Axis) float32 {
	o := c.overshoot.Get(a)
	if o <= Epsilon {
		return 0
	}
	return clamp(-c.offset.Get(a)/o, 0, 1)
}

// SetScrollFraction scrolls axis a to fraction f of the overshoot.
func (c *Container) SetScrollFraction(a Axis, f float32) {
	f = clamp(finiteOr0(f), 0, 1)
	c.offset.Set(a, -f*c.overshoot.Get(a))
}

// ScrollEvent scrolls the container while the pointer is above it. The
// innermost scrollable container under the pointer takes the event. A
// container scrolling only horizontally maps the vertical wheel onto its
// axis.
func (c *Container) ScrollEvent(s *State, ev *ScrollEvent) {
	if ev.Handled || c.scroll == ScrollNone || !s.HoveredWithin(c.Node()) {
		return
	}
	delta := ev.Delta.Scale(s.theme.ScrollSpeed)
	if c.scroll == ScrollHorizontal && delta.X == 0 {
		delta = V2(delta.Y, 0)
	}

	overflow := false
	for _, a := range axes {
		if c.scroll.Scrolls(a) && c.overshoot.Get(a) > Epsilon && delta.Get(a) != 0 {
			overflow = true
		}
	}
	if !overflow {
		return
	}
	c.ScrollBy(delta)
	ev.Handled = true
	s.logger.Debug("scroll", "node", describe(c.Node()), "offset", c.offset)
}

// Scrollbar is a drag container whose handle tracks the scroll position
// of another container along one axis.
type Scrollbar struct {
	DragContainer

	target *Container
	axis   Axis
	thumb  *Element
}

// NewScrollbar creates a scrollbar for target along axis. It is shown only
// while target overflows on that axis.
func NewScrollbar(target *Container, axis Axis, opts ...Option) *Scrollbar {
	if target == nil {
		panic("ui: scrollbar without target")
	}
	if !axis.Valid() {
		panic("ui: invalid scrollbar axis")
	}
	sb := &Scrollbar{target: target, axis: axis}
	sb.thumb = NewElement(WithName("scrollbar-thumb"))
	sb.thumb.SetSizeType(axis.Cross(), Fill)
	sb.thumb.SetStyle(&Style{
		Background: func() Paint {
			if sb.active || sb.thumb.mouseAbove {
				return ThemeColor(RoleAccent)
			}
			return ThemeColor(RoleOutline)
		},
		Shape:  ShapeRounded,
		Radius: 3,
	})

	mode := ScrollHorizontal
	if axis == Vertical {
		mode = ScrollVertical
	}
	sb.initDrag(sb, axis, sb.thumb,
		func() Vec2 {
			var v Vec2
			v.Set(axis, target.ScrollFraction(axis))
			return v
		},
		func(v Vec2) { target.SetScrollFraction(axis, v.Get(axis)) },
		mode,
	)
	sb.marginScale = 0
	sb.paddingScale = 0
	sb.sizeType[axis] = Fill
	sb.style = &Style{Background: Const(ThemeColor(RoleBackground))}
	sb.visible = func() bool { return target.overshoot.Get(axis) > Epsilon }
	applyOptions(sb, opts)
	return sb
}

// Target returns the scrolled container.
func (sb *Scrollbar) Target() *Container {
	return sb.target
}

// Thumb returns the draggable thumb.
func (sb *Scrollbar) Thumb() *Element {
	return sb.thumb
}

// Update sizes the bar and thumb from the theme and the target's overshoot,
// then continues any drag.
//
// The thumb covers size/(size+overshoot) of the track, never less than
// the bar's thickness.
func (sb *Scrollbar) Update(s *State) {
	thickness := s.theme.ScrollbarThickness
	sb.SetFixed(sb.axis.Cross(), thickness)

	track := sb.size.Get(sb.axis)
	own := sb.target.size.Get(sb.axis)
	over := sb.target.overshoot.Get(sb.axis)
	length := track
	if own+over > Epsilon {
		length = track * own / (own + over)
	}
	sb.thumb.SetFixed(sb.axis, clamp(length, min(thickness, track), track))

	sb.DragContainer.Update(s)
}

// ScrollView places a scrolling content container next to scrollbars
// that appear while it overflows.
type ScrollView struct {
	Container

	content *Container
	vbar    *Scrollbar
	hbar    *Scrollbar
}

// NewScrollView wraps content, which is set to scroll along mode and to
// fill the view. Options apply to the view itself.
func NewScrollView(content *Container, mode ScrollMode, opts ...Option) *ScrollView {
	if content == nil {
		panic("ui: scroll view without content")
	}
	sv := &ScrollView{content: content}
	sv.initContainer(sv, Horizontal)
	sv.marginScale = 0
	sv.paddingScale = 0

	content.SetScrollMode(mode)
	content.sizeType = [2]SizeType{Fill, Fill}

	column := NewContainer(Vertical, WithMargin(0), WithPadding(0), WithFill())
	column.Add(content)
	if mode.Scrolls(Horizontal) {
		sv.hbar = NewScrollbar(content, Horizontal, WithName("hscroll"))
		column.Add(sv.hbar)
	}
	sv.Add(column)
	if mode.Scrolls(Vertical) {
		sv.vbar = NewScrollbar(content, Vertical, WithName("vscroll"))
		sv.Add(sv.vbar)
	}

	applyOptions(sv, opts)
	return sv
}

// Content returns the scrolling container.
func (sv *ScrollView) Content() *Container {
	return sv.content
}

// VerticalBar returns the vertical scrollbar, or nil.
func (sv *ScrollView) VerticalBar() *Scrollbar {
	return sv.vbar
}

// HorizontalBar returns the horizontal scrollbar, or nil.
func (sv *ScrollView) HorizontalBar() *Scrollbar {
	return sv.hbar
}
