package ui

import "github.com/chewxy/math32"

// floatingNode is implemented by nodes positioned from anchors rather than
// by their parent's flow.
type floatingNode interface {
	AsFloating() *Floating
}

func asFloating(n Node) (*Floating, bool) {
	if fn, ok := n.(floatingNode); ok {
		return fn.AsFloating(), true
	}
	return nil, false
}

// AnchorCandidate binds a point on a floating container to a target point.
type AnchorCandidate struct {
	Self   Anchor
	target func() Vec2
}

// AnchorPoint places the Self point of the container at a fixed position.
func AnchorPoint(self Anchor, p Vec2) AnchorCandidate {
	return AnchorCandidate{Self: self, target: func() Vec2 { return p }}
}

// AnchorFunc places the Self point of the container at a position
// supplied every frame.
func AnchorFunc(self Anchor, fn func() Vec2) AnchorCandidate {
	return AnchorCandidate{Self: self, target: fn}
}

// AnchorTo places the Self point of the container on the at point of
// another node, using that node's current absolute bounds.
func AnchorTo(self Anchor, target Node, at Anchor) AnchorCandidate {
	return AnchorCandidate{Self: self, target: func() Vec2 {
		return at.On(target.AsElement().Rect())
	}}
}

// Target returns the absolute point the candidate anchors to.
func (a AnchorCandidate) Target() Vec2 {
	if a.target == nil {
		return Vec2{}
	}
	return a.target()
}

// Floating is a container taken out of its parent's flow and placed by an
// ordered list of anchor candidates.
type Floating struct {
	Container

	anchors     []AnchorCandidate
	clampToRoot bool
	fillRoot    bool
}

// NewFloating creates a floating container laying out children along axis.
func NewFloating(axis Axis, anchors []AnchorCandidate, opts ...Option) *Floating {
	f := &Floating{}
	f.initFloating(f, axis)
	f.anchors = anchors
	applyOptions(f, opts)
	return f
}

func (f *Floating) initFloating(self Node, axis Axis) {
	f.initContainer(self, axis)
}

// AsFloating returns f.
func (f *Floating) AsFloating() *Floating {
	return f
}

// SetAnchors replaces the anchor candidates, tried in order.
func (f *Floating) SetAnchors(anchors ...AnchorCandidate) {
	f.anchors = anchors
}

// Anchors returns the anchor candidates.
func (f *Floating) Anchors() []AnchorCandidate {
	return f.anchors
}

// SetClampToRoot keeps the container inside the root's bounds, choosing
// the candidate that needs the least correction.
func (f *Floating) SetClampToRoot(clamp bool) {
	f.clampToRoot = clamp
}

// SetFillRoot makes the container exactly as large as the root.
func (f *Floating) SetFillRoot(fill bool) {
	f.fillRoot = fill
}

// WithClampToRoot keeps a floating container inside the root's bounds.
func WithClampToRoot() Option {
	return func(n Node) {
		f, ok := asFloating(n)
		if !ok {
			panic("ui: WithClampToRoot applied to non-floating node")
		}
		f.clampToRoot = true
	}
}

// WithAnchors sets the anchor candidates of a floating container.
func WithAnchors(anchors ...AnchorCandidate) Option {
	return func(n Node) {
		f, ok := asFloating(n)
		if !ok {
			panic("ui: WithAnchors applied to non-floating node")
		}
		f.anchors = anchors
	}
}

func (f *Floating) computeMinSize(s *State) {
	f.Container.computeMinSize(s)
	if f.fillRoot && s.root != nil {
		f.size = s.root.size
		f.minSize = f.size
	}
}

// place resolves the anchor candidates into an absolute position.
//
// Without root clamping the first candidate wins. With it, each
// candidate's position is clamped into [0, rootSize-size] and the one
// displaced least (squared distance) is kept; a candidate that needs no
// correction, or one that ties the best so far, ends the search.
func (f *Floating) place(s *State) {
	if f.fillRoot {
		f.pos = Vec2{}
		return
	}
	if len(f.anchors) == 0 {
		f.pos = f.clamp(s, f.pos)
		return
	}

	best := f.pos
	bestDist := float32(math32.MaxFloat32)
	for i, cand := range f.anchors {
		origin := cand.Self.Origin(cand.Target(), f.size)
		if !f.clampToRoot {
			f.pos = origin
			return
		}

		clamped := f.clamp(s, origin)
		dist := clamped.Sub(origin).LengthSq()
		if dist == bestDist {
			break
		}
		if dist < bestDist {
			best, bestDist = clamped, dist
			s.logger.Debug("floating candidate", "name", f.name, "index", i, "displacement", dist)
		}
		if dist <= Epsilon {
			break
		}
	}
	f.pos = best
}

// clamp keeps p inside [0, rootSize-size] on both axes when root clamping
// is enabled. A container larger than the root is pinned to the origin.
func (f *Floating) clamp(s *State, p Vec2) Vec2 {
	if !f.clampToRoot || s.root == nil {
		return p
	}
	limit := s.root.size.Sub(f.size).Max(Vec2{})
	return p.Clamp(Vec2{}, limit)
}
