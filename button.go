package ui

var (
	_ Node = (*Button)(nil)
	_ Node = (*Checkbox)(nil)
)

// Button is a selectable container with a label, activated by a left
// click or by Enter or Space while selected.
type Button struct {
	Container

	label      *Label
	onActivate func()
}

// NewButton creates a button showing text.
func NewButton(text string, onActivate func(), opts ...Option) *Button {
	b := &Button{onActivate: onActivate}
	b.initContainer(b, Horizontal)
	b.align = [2]Align{AlignCenter, AlignCenter}
	b.selectable = true
	b.label = NewLabel(text)
	b.Add(b.label)
	b.style = SelectableStyle(b)
	b.cursor = func() Cursor { return CursorPointer }
	b.onClick = b.Activate
	applyOptions(b, opts)
	return b
}

// Label returns the button's label.
func (b *Button) Label() *Label {
	return b.label
}

// SetOnActivate replaces the activation handler.
func (b *Button) SetOnActivate(fn func()) {
	b.onActivate = fn
}

// Activate runs the activation handler.
func (b *Button) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// KeyEvent activates the button on Enter or Space while it is selected.
func (b *Button) KeyEvent(s *State, ev KeyEvent) {
	if b.selected && isActivationKey(ev) {
		b.Activate()
	}
}

func isActivationKey(ev KeyEvent) bool {
	return ev.IsPress(KeyEnter, ModNone) || ev.IsPress(KeySpace, ModNone)
}

// Checkbox is a selectable toggle with a box and a label.
type Checkbox struct {
	Container

	box      *Element
	label    *Label
	checked  bool
	onChange func(bool)
}

// NewCheckbox creates a checkbox. onChange runs after every toggle.
func NewCheckbox(text string, checked bool, onChange func(bool), opts ...Option) *Checkbox {
	c := &Checkbox{checked: checked, onChange: onChange}
	c.initContainer(c, Horizontal)
	c.align = [2]Align{AlignStart, AlignCenter}
	c.selectable = true

	c.box = NewElement(WithName("checkbox-box"))
	c.box.SetStyle(&Style{
		Background: func() Paint {
			if c.checked {
				return ThemeColor(RoleAccent)
			}
			return ThemeColor(RoleBackground)
		},
		Outline: Const(ThemeColor(RoleOutline)),
		Shape:   ShapeRounded,
		Radius:  2,
	})
	c.label = NewLabel(text)
	c.Add(c.box, c.label)

	c.style = SelectableStyle(c)
	c.cursor = func() Cursor { return CursorPointer }
	c.onClick = c.Toggle
	applyOptions(c, opts)
	return c
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked changes the state without running onChange.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Toggle flips the state and runs onChange.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	if c.onChange != nil {
		c.onChange(c.checked)
	}
}

// Label returns the checkbox label.
func (c *Checkbox) Label() *Label {
	return c.label
}

// Update sizes the box to the label's line height.
func (c *Checkbox) Update(s *State) {
	side := s.measurer.LineHeight(c.label.FontSize(s))
	c.box.SetFixedSize(V2(side, side))
}

// KeyEvent toggles on Enter or Space while selected.
func (c *Checkbox) KeyEvent(s *State, ev KeyEvent) {
	if c.selected && isActivationKey(ev) {
		c.Toggle()
	}
}
