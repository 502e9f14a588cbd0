package ui

import (
	"image"
	"slices"
)

// drawer is implemented by leaves that draw content beyond their style.
type drawer interface {
	draw(s *State, item *DrawItem)
}

// DrawItem is one shown node as a renderer sees it. Items are returned in
// painting order: ascending cumulative layer, tree pre-order within a
// layer, so parents paint before their children.
type DrawItem struct {
	Node  Node
	Name  string
	Pos   Vec2
	Size  Vec2
	Layer int
	Depth int

	Style ResolvedStyle
	// Clip is the area the item may paint into.
	Clip Rect

	// Text content, set by labels and text fields.
	Text      string
	FontSize  float32
	TextPos   Vec2
	TextColor Paint
	// Caret is the text caret of a selected text field, or nil.
	Caret *Rect

	// Image content, set by image leaves.
	Image image.Image
}

// Rect returns the item's bounds.
func (it *DrawItem) Rect() Rect {
	return Rect{Pos: it.Pos, Size: it.Size}
}

// DrawList returns the shown nodes of the tree as draw items, using the
// geometry of the last layout.
func DrawList(s *State) []DrawItem {
	if !s.root.isShown(s) {
		return nil
	}
	var items []DrawItem
	items = s.appendDrawItems(items, s.root, s.root.Rect())
	slices.SortStableFunc(items, func(a, b DrawItem) int {
		return a.Layer - b.Layer
	})
	return items
}

func (s *State) appendDrawItems(items []DrawItem, n Node, clip Rect) []DrawItem {
	e := n.AsElement()
	if !e.isShown(s) {
		return items
	}
	if e.ignoreClip {
		clip = s.root.Rect()
	}

	item := DrawItem{
		Node:  n,
		Name:  e.name,
		Pos:   e.pos,
		Size:  e.size,
		Layer: e.cumLayer,
		Depth: e.depth,
		Style: e.style.Resolve(s.theme),
		Clip:  clip,
	}
	if d, ok := n.(drawer); ok {
		d.draw(s, &item)
	}
	items = append(items, item)

	if c, ok := asContainer(n); ok {
		inner := clip.Intersect(e.Rect())
		for _, child := range c.children {
			items = s.appendDrawItems(items, child, inner)
		}
	}
	return items
}
