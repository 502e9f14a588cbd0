package ui

import "github.com/grindlemire/go-ui/internal/layout"

// --- Leaf layout ---

// computeMinSize takes FIXED axes from the caller and the rest from the
// node's natural content size.
func (e *Element) computeMinSize(s *State) {
	var natural Vec2
	if ns, ok := e.Node().(naturalSizer); ok {
		natural = ns.NaturalSize(s)
	}
	for _, a := range axes {
		if e.sizeType[a] == Fixed {
			e.size.Set(a, e.fixedSize.Get(a))
		} else {
			e.size.Set(a, natural.Get(a))
		}
	}
	e.minSize = e.size
}

func (e *Element) expand(*State) {}

func (e *Element) position(*State) {}

// --- Container layout ---

// contentBounds returns the bounding box of the flow children: extents
// summed along the axis with padding between them, the largest extent
// across it, and the margin on both sides of both axes.
func (c *Container) contentBounds(s *State, flow []Node) Vec2 {
	m, p := c.Margin(s), c.Padding(s)
	along, cross := c.axis, c.axis.Cross()

	var sum, widest float32
	for i, child := range flow {
		size := child.AsElement().size
		sum += size.Get(along)
		if i > 0 {
			sum += p
		}
		widest = max(widest, size.Get(cross))
	}

	var bb Vec2
	bb.Set(along, sum+2*m)
	bb.Set(cross, widest+2*m)
	return bb
}

// Bounds returns the children's bounding box from the current sizes.
func (c *Container) Bounds(s *State) Vec2 {
	return c.contentBounds(s, c.flowChildren(s))
}

// computeMinSize sizes children first, then shrinks every non-FIXED axis
// to the children's bounding box. Scrolling axes collapse to four margins
// so the container can end up smaller than its content.
func (c *Container) computeMinSize(s *State) {
	for _, child := range c.shownChildren(s) {
		child.computeMinSize(s)
	}

	bb := c.contentBounds(s, c.flowChildren(s))
	m := c.Margin(s)
	for _, a := range axes {
		switch {
		case c.sizeType[a] == Fixed:
			c.size.Set(a, c.fixedSize.Get(a))
		case c.scroll.Scrolls(a):
			c.size.Set(a, 4*m)
		default:
			c.size.Set(a, bb.Get(a))
		}
	}
	c.minSize = c.size
}

// space returns the room available to children on each axis: the
// container's own size, or the content size on axes it scrolls along when
// that is larger.
func (c *Container) space(s *State, flow []Node) (space, bb Vec2) {
	bb = c.contentBounds(s, flow)
	space = c.size
	for _, a := range axes {
		if c.scroll.Scrolls(a) {
			space.Set(a, max(space.Get(a), bb.Get(a)))
		}
	}
	return space, bb
}

// expand redistributes leftover or missing space among the children of c,
// then descends into them.
func (c *Container) expand(s *State) {
	flow := c.flowChildren(s)
	c.expandAlong(s, flow)
	c.expandCross(s, flow)

	for _, child := range c.shownChildren(s) {
		child.expand(s)
	}
}

// expandAlong grows FILL children into spare room, or shrinks all children
// toward their minimum sizes when the content does not fit.
func (c *Container) expandAlong(s *State, flow []Node) {
	along := c.axis
	space, bb := c.space(s, flow)
	remaining := space.Get(along) - bb.Get(along)

	var candidates []*Element
	switch {
	case remaining > Epsilon:
		for _, child := range flow {
			if ce := child.AsElement(); ce.sizeType[along] == Fill {
				candidates = append(candidates, ce)
			}
		}
	case remaining < -Epsilon:
		for _, child := range flow {
			candidates = append(candidates, child.AsElement())
		}
	default:
		return
	}
	if len(candidates) == 0 {
		return
	}

	items := make([]layout.Item, len(candidates))
	for i, ce := range candidates {
		items[i] = layout.Item{Size: ce.size.Get(along), Min: ce.minSize.Get(along)}
	}
	layout.Distribute(items, remaining)
	for i, ce := range candidates {
		ce.size.Set(along, items[i].Size)
	}
}

// expandCross stretches FILL children across the axis and shrinks
// oversized ones down to their minimum.
func (c *Container) expandCross(s *State, flow []Node) {
	cross := c.axis.Cross()
	space, _ := c.space(s, flow)
	avail := space.Get(cross) - 2*c.Margin(s)

	for _, child := range flow {
		ce := child.AsElement()
		size := ce.size.Get(cross)
		switch {
		case size < avail-Epsilon && ce.sizeType[cross] == Fill:
			ce.size.Set(cross, avail)
		case size > avail+Epsilon:
			ce.size.Set(cross, max(avail, ce.minSize.Get(cross)))
		}
	}
}

// position places flow children one after another along the axis,
// aligned across it and translated by the scroll offset, then resolves
// floating children from their anchors. Each child is recursed into right
// after it is placed.
func (c *Container) position(s *State) {
	flow := c.flowChildren(s)
	bb := c.contentBounds(s, flow)
	for _, a := range axes {
		if c.scroll.Scrolls(a) {
			c.overshoot.Set(a, max(0, bb.Get(a)-c.size.Get(a)))
		} else {
			c.overshoot.Set(a, 0)
		}
	}
	c.clampOffset()

	m, p := c.Margin(s), c.Padding(s)
	along, cross := c.axis, c.axis.Cross()
	run := m + max(0, c.size.Get(along)-bb.Get(along))*c.align[along].Fraction()
	for _, child := range flow {
		ce := child.AsElement()
		var local Vec2
		local.Set(along, run)
		local.Set(cross, m+max(0, c.size.Get(cross)-2*m-ce.size.Get(cross))*c.align[cross].Fraction())
		ce.pos = c.pos.Add(local).Add(c.offset)
		run += ce.size.Get(along) + p
		child.position(s)
	}

	for _, child := range c.shownChildren(s) {
		if f, ok := asFloating(child); ok {
			f.place(s)
			child.position(s)
		}
	}
}
