package ui

import "slices"

// modalNode is implemented by surfaces that confine keyboard selection to
// themselves while shown.
type modalNode interface {
	Node
	isModal() bool
}

// walkShown visits shown nodes in pre-order, iterating over snapshots of
// each children slice.
func (s *State) walkShown(n Node, fn func(Node)) {
	if !n.AsElement().isShown(s) {
		return
	}
	fn(n)
	if c, ok := asContainer(n); ok {
		for _, child := range slices.Clone(c.children) {
			s.walkShown(child, fn)
		}
	}
}

// selectionScope returns the subtree Tab cycles through: the topmost shown
// modal surface, or the whole tree.
func (s *State) selectionScope() Node {
	var scope Node = s.root
	found, best := false, 0
	s.walkShown(s.root, func(n Node) {
		m, ok := n.(modalNode)
		if !ok || !m.isModal() {
			return
		}
		if layer := n.AsElement().cumLayer; !found || layer >= best {
			scope, found, best = n, true, layer
		}
	})
	return scope
}

// Selectables returns the shown selectable nodes Tab cycles through, in
// pre-order.
func (s *State) Selectables() []Node {
	var out []Node
	s.walkShown(s.selectionScope(), func(n Node) {
		if n.AsElement().selectable {
			out = append(out, n)
		}
	})
	return out
}

// SelectNext moves the selection to the next selectable node in pre-order,
// wrapping at the end. With nothing selected it picks the first.
func (s *State) SelectNext() {
	s.cycleSelection(false)
}

// SelectPrev moves the selection to the previous selectable node,
// wrapping at the start. With nothing selected it picks the last.
func (s *State) SelectPrev() {
	s.cycleSelection(true)
}

func (s *State) cycleSelection(backward bool) {
	list := s.Selectables()
	n := len(list)
	if n == 0 {
		return
	}
	i := -1
	if s.selected != nil {
		i = slices.Index(list, s.selected)
	}

	var next int
	switch {
	case i < 0 && backward:
		next = n - 1
	case i < 0:
		next = 0
	case backward:
		next = (i - 1 + n) % n
	default:
		next = (i + 1) % n
	}
	s.Select(list[next])
}

// selectAt selects the nearest selectable ancestor of n, or clears the
// selection when there is none.
func (s *State) selectAt(n Node) {
	for e := elementOf(n); e != nil; e = parentElement(e) {
		if e.selectable {
			s.Select(e.Node())
			return
		}
	}
	s.Select(nil)
}
