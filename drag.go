package ui

// DragContainer holds exactly one draggable handle whose position along
// the movable axes mirrors a relative value in [0,1] read through get and
// written through set. The handle is laid out by the normal flow on the
// other axes.
type DragContainer struct {
	Container

	get     func() Vec2
	set     func(Vec2)
	movable [2]bool
	grab    Vec2 // pointer offset from the handle origin while dragging
	active  bool
}

// NewDragContainer creates a drag container laying out along axis and
// moving handle along the axes in movable.
func NewDragContainer(axis Axis, handle Node, get func() Vec2, set func(Vec2), movable ScrollMode, opts ...Option) *DragContainer {
	d := &DragContainer{}
	d.initDrag(d, axis, handle, get, set, movable)
	applyOptions(d, opts)
	return d
}

func (d *DragContainer) initDrag(self Node, axis Axis, handle Node, get func() Vec2, set func(Vec2), movable ScrollMode) {
	if get == nil || set == nil {
		panic("ui: drag container needs a getter and a setter")
	}
	if movable > ScrollBoth {
		panic("ui: invalid drag axes")
	}
	d.initContainer(self, axis)
	d.maxChildren = 1
	d.get = get
	d.set = set
	for _, a := range axes {
		d.movable[a] = movable.Scrolls(a)
	}
	d.Add(handle)
}

// Handle returns the draggable child.
func (d *DragContainer) Handle() Node {
	if len(d.children) == 0 {
		return nil
	}
	return d.children[0]
}

// Relative returns the handle position as fractions of the track.
func (d *DragContainer) Relative() Vec2 {
	return d.get()
}

// SetRelative writes a new relative position, clamped to [0,1].
func (d *DragContainer) SetRelative(v Vec2) {
	d.set(v.Clamp(Vec2{}, V2(1, 1)))
}

// RelativeX returns the horizontal fraction.
func (d *DragContainer) RelativeX() float32 {
	return d.get().X
}

// RelativeY returns the vertical fraction.
func (d *DragContainer) RelativeY() float32 {
	return d.get().Y
}

// IsDragging reports whether this container owns the active drag.
func (d *DragContainer) IsDragging() bool {
	return d.active
}

// trackOrigin and trackLength describe the span the handle's origin can
// move across inside the margins.
func (d *DragContainer) trackOrigin(s *State) Vec2 {
	m := d.Margin(s)
	return d.pos.Add(V2(m, m))
}

func (d *DragContainer) trackLength(s *State) Vec2 {
	h := d.Handle()
	if h == nil {
		return Vec2{}
	}
	m := d.Margin(s)
	return d.size.Sub(V2(2*m, 2*m)).Sub(h.AsElement().size).Max(Vec2{})
}

// Press starts a drag. A press on the handle keeps the grab offset; a
// press elsewhere on the track centres the handle under the pointer.
func (d *DragContainer) Press(s *State, ev MouseButtonEvent) bool {
	if ev.Button != MouseLeft {
		return false
	}
	h := d.Handle()
	if h == nil {
		return false
	}
	he := h.AsElement()
	if he.Rect().Contains(s.mouse) {
		d.grab = s.mouse.Sub(he.pos)
	} else {
		d.grab = he.size.Scale(0.5)
	}
	s.beginDrag(d)
	d.track(s)
	return true
}

// track writes the relative position implied by the pointer. A zero-length
// track maps to 0.
func (d *DragContainer) track(s *State) {
	origin, length := d.trackOrigin(s), d.trackLength(s)
	rel := d.get()
	for _, a := range axes {
		if !d.movable[a] {
			continue
		}
		t := length.Get(a)
		if t <= Epsilon {
			rel.Set(a, 0)
			continue
		}
		p := s.mouse.Get(a) - d.grab.Get(a) - origin.Get(a)
		rel.Set(a, clamp(finiteOr0(p/t), 0, 1))
	}
	d.set(rel)
}

// Update continues the drag while the left button is held and ends it on
// release.
func (d *DragContainer) Update(s *State) {
	if s.dragging != d {
		return
	}
	if !s.Down(MouseLeft) {
		s.endDrag()
		return
	}
	d.track(s)
}

// position lays the handle out by the flow, then moves it along the
// movable axes to its relative position on the track.
func (d *DragContainer) position(s *State) {
	d.Container.position(s)
	h := d.Handle()
	if h == nil || !h.AsElement().isShown(s) {
		return
	}
	he := h.AsElement()
	origin, length := d.trackOrigin(s), d.trackLength(s)
	rel := d.get()
	moved := false
	for _, a := range axes {
		if !d.movable[a] {
			continue
		}
		r := clamp(finiteOr0(rel.Get(a)), 0, 1)
		he.pos.Set(a, origin.Get(a)+r*length.Get(a))
		moved = true
	}
	if moved {
		h.position(s)
	}
}
