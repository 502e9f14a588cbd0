package ui

import (
	"fmt"
	"log/slog"

	"github.com/grindlemire/go-ui/internal/debug"
)

// Action is a deferred unit of work run at the start of a frame, before
// any tree walk is in progress.
type Action func(s *State)

// State is the interaction context of one UI: the tree, the input snapshot
// of the current frame, and who holds the selection and the drag. It is
// passed explicitly to every update and layout call.
type State struct {
	root     *Root
	theme    *Theme
	measurer TextMeasurer
	logger   *slog.Logger

	input Input
	mouse Vec2
	frame uint64

	selected Node
	dragging *DragContainer
	hovered  Node

	actions      []Action
	maxLayerSeen int

	shortcuts        *Shortcuts
	globalKeyHandler func(KeyEvent) bool
}

func newState(root *Root) *State {
	return &State{
		root:      root,
		theme:     DefaultTheme(),
		measurer:  DefaultMeasurer(),
		logger:    debug.Logger(),
		shortcuts: NewShortcuts(),
	}
}

// Root returns the root container.
func (s *State) Root() *Root {
	return s.root
}

// Theme returns the active theme.
func (s *State) Theme() *Theme {
	return s.theme
}

// SetTheme replaces the active theme. It takes effect on the next layout.
func (s *State) SetTheme(th *Theme) {
	if th == nil {
		th = DefaultTheme()
	}
	s.theme = th
}

// Measurer returns the text measurer.
func (s *State) Measurer() TextMeasurer {
	return s.measurer
}

// Logger returns the debug logger.
func (s *State) Logger() *slog.Logger {
	return s.logger
}

// Input returns the input snapshot of the current frame.
func (s *State) Input() *Input {
	return &s.input
}

// Mouse returns the pointer position of the current frame.
func (s *State) Mouse() Vec2 {
	return s.mouse
}

// FrameCount returns the number of visibility passes run so far.
func (s *State) FrameCount() uint64 {
	return s.frame
}

// JustPressed reports whether b went down this frame.
func (s *State) JustPressed(b MouseButton) bool {
	return s.input.JustPressed(b)
}

// Down reports whether b is held this frame.
func (s *State) Down(b MouseButton) bool {
	return s.input.Down(b)
}

// MaxLayerSeen returns the highest cumulative layer any visibility pass
// has observed.
func (s *State) MaxLayerSeen() int {
	return s.maxLayerSeen
}

// Shortcuts returns the keyboard shortcut table.
func (s *State) Shortcuts() *Shortcuts {
	return s.shortcuts
}

// Enqueue defers fn to the start of the next frame. Structural edits made
// from event handlers and Update must go through here.
func (s *State) Enqueue(fn Action) {
	if fn == nil {
		return
	}
	s.actions = append(s.actions, fn)
}

// flush runs the actions queued before the flush started. Actions they
// enqueue run next frame.
func (s *State) flush() {
	batch := s.actions
	s.actions = nil
	for _, fn := range batch {
		fn(s)
	}
}

// --- Selection ---

// Selected returns the node holding the selection, or nil.
func (s *State) Selected() Node {
	return s.selected
}

// Select moves the selection to n. Pass nil to clear it.
func (s *State) Select(n Node) {
	if n == s.selected {
		return
	}
	if old := s.selected; old != nil {
		old.AsElement().selected = false
		s.selected = nil
		if l, ok := old.(selectionListener); ok {
			l.Deselected(s)
		}
	}
	if n == nil {
		s.logger.Debug("selection cleared")
		return
	}
	n.AsElement().selected = true
	s.selected = n
	s.logger.Debug("selected", "node", describe(n))
	if l, ok := n.(selectionListener); ok {
		l.Selected(s)
	}
}

// --- Drag ---

// Dragging returns the drag container whose handle follows the pointer,
// or nil.
func (s *State) Dragging() *DragContainer {
	return s.dragging
}

func (s *State) beginDrag(d *DragContainer) {
	if s.dragging == d {
		return
	}
	if s.dragging != nil {
		s.endDrag()
	}
	s.dragging = d
	d.active = true
	s.logger.Debug("drag start", "node", describe(d))
}

func (s *State) endDrag() {
	if s.dragging == nil {
		return
	}
	s.logger.Debug("drag end", "node", describe(s.dragging))
	s.dragging.active = false
	s.dragging = nil
}

// --- Cursor ---

// Cursor returns the cursor shape for the current frame: the rule of the
// dragged node while a drag is active, otherwise of the hovered node or
// its nearest ancestor with a rule.
func (s *State) Cursor() Cursor {
	var n Node = s.hovered
	if s.dragging != nil {
		n = s.dragging
	}
	for e := elementOf(n); e != nil; e = parentElement(e) {
		if e.cursor != nil {
			return e.cursor()
		}
	}
	return CursorDefault
}

// --- Tree helpers ---

func elementOf(n Node) *Element {
	if n == nil {
		return nil
	}
	return n.AsElement()
}

func parentElement(e *Element) *Element {
	if e.parent == nil {
		return nil
	}
	return &e.parent.Element
}

// IsAncestor reports whether anc is n or one of its ancestors.
func IsAncestor(anc, n Node) bool {
	if anc == nil || n == nil {
		return false
	}
	target := anc.AsElement()
	for e := n.AsElement(); e != nil; e = parentElement(e) {
		if e == target {
			return true
		}
	}
	return false
}

func describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if name := n.AsElement().name; name != "" {
		return name
	}
	return fmt.Sprintf("%T", n)
}
