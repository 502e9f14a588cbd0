package ui

import (
	"context"
	"fmt"
)

// UI drives one element tree: it owns the State and runs the frame loop
// the window collaborator calls once per displayed frame.
type UI struct {
	state *State
	queue chan Action

	queueSize int
}

// New creates a UI around root.
func New(root *Root, opts ...UIOption) (*UI, error) {
	if root == nil {
		return nil, fmt.Errorf("nil root")
	}
	u := &UI{
		state:     newState(root),
		queueSize: 256,
	}
	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}
	u.queue = make(chan Action, u.queueSize)
	return u, nil
}

// MustNew is like New but panics on error.
func MustNew(root *Root, opts ...UIOption) *UI {
	u, err := New(root, opts...)
	if err != nil {
		panic("ui: " + err.Error())
	}
	return u
}

// State returns the interaction state. It must only be used on the frame
// goroutine.
func (u *UI) State() *State {
	return u.state
}

// Root returns the root container.
func (u *UI) Root() *Root {
	return u.state.root
}

// Queue schedules fn to run at the start of the next frame. Safe to call
// from any goroutine. Returns false when the queue is full.
func (u *UI) Queue(fn Action) bool {
	if fn == nil {
		return true
	}
	select {
	case u.queue <- fn:
		return true
	default:
		u.state.logger.Warn("update queue full, dropping action")
		return false
	}
}

// queueWait is like Queue but blocks until there is room or ctx is done.
func (u *UI) queueWait(ctx context.Context, fn Action) bool {
	select {
	case u.queue <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// drainQueue moves actions queued from other goroutines onto the frame's
// action queue.
func (u *UI) drainQueue() {
	for {
		select {
		case fn := <-u.queue:
			u.state.Enqueue(fn)
		default:
			return
		}
	}
}

// Frame runs one frame for the given input snapshot:
//
//  1. queue the snapshot's discrete events as actions
//  2. flush the action queue
//  3. visibility pass
//  4. store the pointer position
//  5. layer-scanned hit test
//  6. press handling
//  7. per-node Update
//  8. layout: min size, expand, position
//
// Afterwards the tree holds final geometry for DrawList.
func (u *UI) Frame(in Input) {
	s := u.state
	s.input = in

	u.drainQueue()
	s.enqueueInput(&s.input)
	s.flush()

	s.updateVisibility()
	s.mouse = s.input.Mouse
	s.hitTest()
	s.handlePresses()

	s.walkShown(s.root, func(n Node) { n.Update(s) })

	s.layout()
	s.logger.Debug("frame",
		"n", s.frame,
		"hovered", describe(s.hovered),
		"selected", describe(s.selected),
		"layers", fmt.Sprintf("%d..%d", s.root.minLayer, s.root.maxLayer))
}

// layout runs the three layout passes with the root fixed to the display
// size.
func (s *State) layout() {
	r := s.root
	r.SetFixedSize(s.input.DisplaySize)
	r.size = s.input.DisplaySize
	r.pos = Vec2{}
	if !r.isShown(s) {
		return
	}
	r.computeMinSize(s)
	r.expand(s)
	r.position(s)
}

// Cursor returns the cursor shape requested for the current frame.
func (u *UI) Cursor() Cursor {
	return u.state.Cursor()
}

// DrawList returns the draw items of the current tree.
func (u *UI) DrawList() []DrawItem {
	return DrawList(u.state)
}
