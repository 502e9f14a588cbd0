package ui

import (
	"math"
	"slices"
)

// isShown reports whether e passed the visibility pass of the current
// frame. Nodes below a hidden ancestor, and nodes added since the pass
// ran, are not shown.
func (e *Element) isShown(s *State) bool {
	return e.shown && e.seenFrame == s.frame
}

// updateVisibility evaluates every visibility predicate once, accumulates
// cumulative layers top-down and records the layer range on the root.
// A selected or dragged node that is no longer shown loses that status.
func (s *State) updateVisibility() {
	s.frame++
	r := s.root
	r.minLayer, r.maxLayer = math.MaxInt, math.MinInt
	s.markVisibility(r, 0, 0)
	if r.minLayer > r.maxLayer {
		r.minLayer, r.maxLayer = 0, 0
	}
	s.maxLayerSeen = max(s.maxLayerSeen, r.maxLayer)

	if s.selected != nil && !s.attached(s.selected) {
		s.Select(nil)
	}
	if s.dragging != nil && !s.attached(s.dragging) {
		s.endDrag()
	}
}

func (s *State) markVisibility(n Node, parentLayer, depth int) {
	e := n.AsElement()
	e.seenFrame = s.frame
	e.shown = e.visible == nil || e.visible()
	if !e.shown {
		e.mouseAbove = false
		return
	}

	e.cumLayer = parentLayer + e.relLayer
	e.depth = depth
	s.root.minLayer = min(s.root.minLayer, e.cumLayer)
	s.root.maxLayer = max(s.root.maxLayer, e.cumLayer)

	if c, ok := asContainer(n); ok {
		for _, child := range slices.Clone(c.children) {
			s.markVisibility(child, e.cumLayer, depth+1)
		}
	}
}

// attached reports whether n is shown and still hangs off the root.
func (s *State) attached(n Node) bool {
	e := n.AsElement()
	if !e.isShown(s) {
		return false
	}
	for p := e; p != nil; p = &p.parent.Element {
		if p == &s.root.Element {
			return true
		}
		if p.parent == nil {
			return false
		}
	}
	return false
}

// hitTest marks the elements the pointer is above.
//
// Layers are scanned from the highest down. Within a layer every shown
// element whose bounds and clip area contain the pointer is marked; the
// first layer with any hit invalidates all layers below it, so a menu
// floating above the canvas intercepts the pointer even though the canvas
// is not its ancestor. The deepest hit of that layer becomes the hovered
// node.
func (s *State) hitTest() {
	s.hovered = nil
	screen := s.root.Rect()
	nodes := s.collectShown(s.root, screen, nil)

	layers := make([]int, 0, 4)
	for _, n := range nodes {
		layers = append(layers, n.AsElement().cumLayer)
	}
	slices.Sort(layers)
	layers = slices.Compact(layers)

	valid := !s.input.Unfocused
	for i := len(layers) - 1; i >= 0 && valid; i-- {
		layer := layers[i]
		for _, n := range nodes {
			e := n.AsElement()
			if e.cumLayer != layer {
				continue
			}
			if e.Rect().Contains(s.mouse) && e.clip.Contains(s.mouse) {
				e.mouseAbove = true
				s.hovered = n
				valid = false
			}
		}
	}
}

// collectShown returns the shown nodes in pre-order, resetting their hover
// state and computing each one's clip area: its parent's clip intersected
// with the parent's bounds, or the whole screen for nodes that ignore
// their ancestors' clipping.
func (s *State) collectShown(n Node, clip Rect, out []Node) []Node {
	e := n.AsElement()
	if !e.isShown(s) {
		return out
	}
	if e.ignoreClip {
		clip = s.root.Rect()
	}
	e.clip = clip
	e.mouseAbove = false
	out = append(out, n)

	if c, ok := asContainer(n); ok {
		inner := clip.Intersect(e.Rect())
		for _, child := range c.children {
			out = s.collectShown(child, inner, out)
		}
	}
	return out
}

// Hovered returns the deepest node the pointer was above in the last hit
// test, or nil.
func (s *State) Hovered() Node {
	return s.hovered
}

// HoveredWithin reports whether the hovered node is n or one of its
// descendants.
func (s *State) HoveredWithin(n Node) bool {
	return s.hovered != nil && IsAncestor(n, s.hovered)
}
