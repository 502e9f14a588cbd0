package ui

var (
	_ Node = (*Menu)(nil)
	_ Node = (*MenuItem)(nil)
	_ Node = (*MenuBar)(nil)
)

// MenuLayer is the layer offset of a menu over the node that opens it.
const MenuLayer = 10

// Menu is a floating list of items, closed until opened. It is placed by
// its anchors, kept inside the root and drawn outside its opener's clip.
// A press outside the menu and its opener, or Escape, closes it.
type Menu struct {
	Floating

	open   bool
	opener Node
	items  []*MenuItem
}

// NewMenu creates a closed menu. Attach it to an opener with AttachTo or
// place it with OpenAt.
func NewMenu(opts ...Option) *Menu {
	m := &Menu{}
	m.initFloating(m, Vertical)
	m.clampToRoot = true
	m.ignoreClip = true
	m.relLayer = MenuLayer
	m.paddingScale = 0
	m.visible = func() bool { return m.open }
	m.style = &Style{
		Background: Const(ThemeColor(RoleSurface)),
		Outline:    Const(ThemeColor(RoleOutline)),
	}
	applyOptions(m, opts)
	return m
}

// AttachTo makes the menu a floating child of opener, trying the anchor
// candidates in order. Presses on the opener do not count as outside
// presses.
func (m *Menu) AttachTo(opener *Container, anchors ...AnchorCandidate) {
	m.opener = opener.Node()
	m.anchors = anchors
	opener.Add(m)
}

// IsOpen reports whether the menu is shown.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Open shows the menu.
func (m *Menu) Open() {
	m.open = true
}

// OpenAt shows the menu with its top-left corner at p, flipping to the
// other corners when that would leave the root. Used for context menus.
func (m *Menu) OpenAt(p Vec2) {
	m.anchors = []AnchorCandidate{
		AnchorPoint(TopLeft, p),
		AnchorPoint(TopRight, p),
		AnchorPoint(BottomLeft, p),
		AnchorPoint(BottomRight, p),
	}
	m.open = true
}

// Close hides the menu and its open submenus.
func (m *Menu) Close() {
	m.open = false
	for _, it := range m.items {
		if it.sub != nil {
			it.sub.Close()
		}
	}
}

// Toggle opens a closed menu and closes an open one.
func (m *Menu) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// Items returns the menu's items in order.
func (m *Menu) Items() []*MenuItem {
	return m.items
}

// AddItem appends an item running action when chosen.
func (m *Menu) AddItem(text string, action func(), opts ...Option) *MenuItem {
	it := newMenuItem(m, text, action, opts)
	m.items = append(m.items, it)
	m.Add(it)
	return it
}

// AddSubmenu appends an item that opens a nested menu to its right, or to
// its left near the right edge of the root.
func (m *Menu) AddSubmenu(text string, opts ...Option) (*MenuItem, *Menu) {
	it := m.AddItem(text, nil, opts...)
	it.arrow = NewLabel(">", WithName("submenu-arrow"))
	it.Add(it.arrow)

	sub := NewMenu(WithName(text))
	sub.AttachTo(&it.Container,
		AnchorTo(TopLeft, it, TopRight),
		AnchorTo(TopRight, it, TopLeft),
	)
	it.sub = sub
	return it, sub
}

// AddSeparator appends a thin rule.
func (m *Menu) AddSeparator() {
	sep := NewElement(WithName("separator"), WithFillWidth(), WithHeight(1), WithBackground(ThemeColor(RoleOutline)))
	m.Add(sep)
}

// root returns the outermost open menu m is nested in.
func (m *Menu) root() *Menu {
	top := m
	for e := parentElement(&m.Element); e != nil; e = parentElement(e) {
		if pm, ok := e.Node().(*Menu); ok {
			top = pm
		}
	}
	return top
}

// Update closes the menu on a press outside it and its opener. Submenus
// are descendants, so presses inside them count as inside.
func (m *Menu) Update(s *State) {
	if !m.open {
		return
	}
	pressed := s.JustPressed(MouseLeft) || s.JustPressed(MouseRight) || s.JustPressed(MouseMiddle)
	if !pressed {
		return
	}
	if s.HoveredWithin(m) || (m.opener != nil && s.HoveredWithin(m.opener)) {
		return
	}
	s.logger.Debug("menu closed by outside press", "menu", describe(m))
	m.Close()
}

// KeyEvent closes the menu on Escape.
func (m *Menu) KeyEvent(s *State, ev KeyEvent) {
	if m.open && ev.IsPress(KeyEscape, ModNone) {
		m.Close()
	}
}

// MenuItem is one row of a menu: a label, an optional shortcut hint and,
// for submenus, an arrow.
type MenuItem struct {
	Container

	menu   *Menu
	label  *Label
	hint   *Label
	arrow  *Label
	action func()
	sub    *Menu
}

func newMenuItem(m *Menu, text string, action func(), opts []Option) *MenuItem {
	it := &MenuItem{menu: m, action: action}
	it.initContainer(it, Horizontal)
	it.align = [2]Align{AlignStart, AlignCenter}
	it.sizeType[Horizontal] = Fill
	it.selectable = true
	it.label = NewLabel(text)
	it.Add(it.label, NewSpacer())
	it.style = &Style{
		Background: func() Paint {
			if it.mouseAbove || it.selected || (it.sub != nil && it.sub.open) {
				return ThemeColor(RoleHover)
			}
			return Paint{}
		},
	}
	it.cursor = func() Cursor { return CursorPointer }
	it.onClick = it.Activate
	applyOptions(it, opts)
	return it
}

// Label returns the item label.
func (it *MenuItem) Label() *Label {
	return it.label
}

// Submenu returns the nested menu, or nil.
func (it *MenuItem) Submenu() *Menu {
	return it.sub
}

// SetShortcutHint shows the chord that triggers the same action.
func (it *MenuItem) SetShortcutHint(chord KeyChord) {
	if it.hint == nil {
		it.hint = NewLabel("", WithName("shortcut-hint"), WithTextColor(ThemeColor(RoleOutline)))
		it.Insert(2, it.hint)
	}
	it.hint.SetText(chord.String())
}

// Activate opens the submenu, or runs the action and closes the whole
// menu chain.
func (it *MenuItem) Activate() {
	if it.sub != nil {
		it.sub.Open()
		return
	}
	it.menu.root().Close()
	if it.action != nil {
		it.action()
	}
}

// Update opens the submenu while the pointer rests on the item and closes
// the submenus of sibling items.
func (it *MenuItem) Update(s *State) {
	if !s.HoveredWithin(it) {
		return
	}
	for _, sib := range it.menu.items {
		if sib != it && sib.sub != nil && sib.sub.open {
			sib.sub.Close()
		}
	}
	if it.sub != nil && !it.sub.open && it.mouseAbove {
		it.sub.Open()
	}
}

// KeyEvent activates the item on Enter or Space while selected.
func (it *MenuItem) KeyEvent(s *State, ev KeyEvent) {
	if it.selected && isActivationKey(ev) {
		it.Activate()
	}
}

// MenuBar is a horizontal strip of titles, each opening a menu below it.
// While one menu is open, hovering another title switches to it.
type MenuBar struct {
	Container

	titles []*Container
	menus  []*Menu
}

// NewMenuBar creates an empty menu bar that fills its parent's width.
func NewMenuBar(opts ...Option) *MenuBar {
	b := &MenuBar{}
	b.initContainer(b, Horizontal)
	b.sizeType[Horizontal] = Fill
	b.align = [2]Align{AlignStart, AlignCenter}
	b.style = &Style{Background: Const(ThemeColor(RoleSurface))}
	applyOptions(b, opts)
	return b
}

// AddMenu appends a title and returns the menu it opens.
func (b *MenuBar) AddMenu(title string) *Menu {
	t := NewContainer(Horizontal, WithName(title), WithChildren(NewLabel(title)))
	t.style = HoverStyle(t, Paint{}, ThemeColor(RoleHover))
	t.cursor = func() Cursor { return CursorPointer }

	m := NewMenu(WithName(title))
	m.AttachTo(t,
		AnchorTo(TopLeft, t, BottomLeft),
		AnchorTo(BottomLeft, t, TopLeft),
	)
	t.onClick = func() {
		wasOpen := m.open
		b.CloseAll()
		if !wasOpen {
			m.Open()
		}
	}

	b.titles = append(b.titles, t)
	b.menus = append(b.menus, m)
	b.Add(t)
	return m
}

// Menus returns the bar's menus in order.
func (b *MenuBar) Menus() []*Menu {
	return b.menus
}

// CloseAll closes every menu of the bar.
func (b *MenuBar) CloseAll() {
	for _, m := range b.menus {
		m.Close()
	}
}

// Update switches the open menu when the pointer moves to another title.
func (b *MenuBar) Update(s *State) {
	open := -1
	for i, m := range b.menus {
		if m.open {
			open = i
		}
	}
	if open < 0 {
		return
	}
	for i, t := range b.titles {
		if i != open && t.mouseAbove {
			b.CloseAll()
			b.menus[i].Open()
			return
		}
	}
}
