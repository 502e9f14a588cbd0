package ui

var (
	_ Node = (*Element)(nil)
	_ Node = (*Container)(nil)
)

// Node is implemented by everything that lives in the element tree.
//
// Leaves embed *Element and containers embed *Container, which supply
// defaults for every method. The unexported layout hooks keep the three
// layout passes closed to this package.
type Node interface {
	// AsElement returns the shared element state of the node.
	AsElement() *Element

	// Update runs once per frame after hit testing and before layout.
	// It may change state and enqueue actions, but must not block.
	Update(s *State)

	// KeyEvent receives every key press and release, selected or not.
	KeyEvent(s *State, ev KeyEvent)

	// CharEvent receives every text-input codepoint.
	CharEvent(s *State, ev CharEvent)

	// ScrollEvent receives wheel input, innermost nodes first. Set
	// ev.Handled to keep outer scroll containers from reacting.
	ScrollEvent(s *State, ev *ScrollEvent)

	computeMinSize(s *State)
	expand(s *State)
	position(s *State)
}

// naturalSizer is implemented by leaves whose size comes from content.
type naturalSizer interface {
	NaturalSize(s *State) Vec2
}

// presser is implemented by nodes that react to a mouse press directly
// under the pointer. Returning true stops the press from bubbling.
type presser interface {
	Press(s *State, ev MouseButtonEvent) bool
}

// selectionListener is implemented by nodes that react to gaining or
// losing the selection.
type selectionListener interface {
	Selected(s *State)
	Deselected(s *State)
}

// Element is the state every node shares: geometry, layering, style and
// interaction callbacks.
type Element struct {
	self   Node
	parent *Container // lookup only, never ownership
	name   string

	// Geometry, rewritten every frame by layout
	pos       Vec2
	size      Vec2
	minSize   Vec2
	fixedSize Vec2
	sizeType  [2]SizeType

	// Layering
	relLayer int
	cumLayer int
	depth    int

	// Visual properties
	style  *Style
	cursor func() Cursor

	// Interaction
	onClick          func()
	onSecondaryClick func()
	selectable       bool
	selected         bool
	visible          func() bool
	ignoreClip       bool

	// Per-frame results
	shown      bool
	seenFrame  uint64
	mouseAbove bool
	clip       Rect
}

// NewElement creates a plain leaf, useful as a coloured box or a spacer.
func NewElement(opts ...Option) *Element {
	e := &Element{}
	e.init(e)
	applyOptions(e, opts)
	return e
}

// init records the outermost node type so tree walks see overrides.
func (e *Element) init(self Node) {
	e.self = self
}

// AsElement returns e.
func (e *Element) AsElement() *Element {
	return e
}

// Node returns the outermost node embedding e.
func (e *Element) Node() Node {
	if e.self == nil {
		return e
	}
	return e.self
}

// Update does nothing by default.
func (e *Element) Update(*State) {}

// KeyEvent does nothing by default.
func (e *Element) KeyEvent(*State, KeyEvent) {}

// CharEvent does nothing by default.
func (e *Element) CharEvent(*State, CharEvent) {}

// ScrollEvent does nothing by default.
func (e *Element) ScrollEvent(*State, *ScrollEvent) {}

// Name returns the debug name given with WithName.
func (e *Element) Name() string {
	return e.name
}

// Parent returns the owning container, or nil for the root and for
// detached nodes.
func (e *Element) Parent() *Container {
	return e.parent
}

// Pos returns the absolute position computed by the last layout.
func (e *Element) Pos() Vec2 {
	return e.pos
}

// Size returns the size computed by the last layout.
func (e *Element) Size() Vec2 {
	return e.size
}

// MinSize returns the shrink floor recorded by the last min-size pass.
func (e *Element) MinSize() Vec2 {
	return e.minSize
}

// Rect returns the absolute bounds from the last layout.
func (e *Element) Rect() Rect {
	return Rect{Pos: e.pos, Size: e.size}
}

// SizeType returns the sizing policy on axis a.
func (e *Element) SizeType(a Axis) SizeType {
	return e.sizeType[a]
}

// SetSizeType changes the sizing policy on axis a.
func (e *Element) SetSizeType(a Axis, st SizeType) {
	mustValidSizeType(st)
	e.sizeType[a] = st
}

// SetFixedSize makes both axes FIXED at the given extent.
func (e *Element) SetFixedSize(size Vec2) {
	e.fixedSize = size
	e.sizeType = [2]SizeType{Fixed, Fixed}
}

// SetFixed makes axis a FIXED at the given extent.
func (e *Element) SetFixed(a Axis, extent float32) {
	e.fixedSize.Set(a, extent)
	e.sizeType[a] = Fixed
}

// RelativeLayer returns the layer offset from the parent.
func (e *Element) RelativeLayer() int {
	return e.relLayer
}

// SetRelativeLayer changes the layer offset from the parent.
func (e *Element) SetRelativeLayer(layer int) {
	e.relLayer = layer
}

// Layer returns the cumulative layer from the last visibility pass.
func (e *Element) Layer() int {
	return e.cumLayer
}

// Style returns the style, or nil when the element draws nothing itself.
func (e *Element) Style() *Style {
	return e.style
}

// SetStyle replaces the style. Pass nil for an invisible box.
func (e *Element) SetStyle(style *Style) {
	e.style = style
}

// SetCursor sets the cursor rule used while the pointer is above e.
func (e *Element) SetCursor(fn func() Cursor) {
	e.cursor = fn
}

// SetOnClick sets the handler for a left press on e or an unhandled
// descendant.
func (e *Element) SetOnClick(fn func()) {
	e.onClick = fn
}

// SetOnSecondaryClick sets the handler for a right press.
func (e *Element) SetOnSecondaryClick(fn func()) {
	e.onSecondaryClick = fn
}

// IsSelectable reports whether e can take the selection.
func (e *Element) IsSelectable() bool {
	return e.selectable
}

// SetSelectable sets whether e can take the selection.
func (e *Element) SetSelectable(selectable bool) {
	e.selectable = selectable
}

// IsSelected reports whether e holds the selection.
func (e *Element) IsSelected() bool {
	return e.selected
}

// SetVisible sets the visibility predicate, evaluated once per frame.
// Nil means always visible.
func (e *Element) SetVisible(fn func() bool) {
	e.visible = fn
}

// IsShown reports whether e was visible in the last visibility pass.
func (e *Element) IsShown() bool {
	return e.shown
}

// MouseAbove reports whether the pointer was above e in the last hit test.
func (e *Element) MouseAbove() bool {
	return e.mouseAbove
}

// IgnoresParentClip reports whether e is hit-tested and drawn outside
// its ancestors' bounds.
func (e *Element) IgnoresParentClip() bool {
	return e.ignoreClip
}

// SetIgnoreParentClip opts e out of its ancestors' clip areas.
func (e *Element) SetIgnoreParentClip(ignore bool) {
	e.ignoreClip = ignore
}

// ClipRect returns the clip area computed by the last hit test.
func (e *Element) ClipRect() Rect {
	return e.clip
}
