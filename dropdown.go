package ui

var _ Node = (*Dropdown)(nil)

// Dropdown is a selectable button showing the current option, opening a
// list of all options below it, or above it near the bottom of the root.
// While selected and closed, Up and Down step through the options.
type Dropdown struct {
	Container

	label    *Label
	list     *Menu
	strut    *Element
	options  []string
	index    int
	onChange func(int, string)
}

// NewDropdown creates a dropdown over options with index selected.
func NewDropdown(options []string, index int, onChange func(int, string), opts ...Option) *Dropdown {
	d := &Dropdown{onChange: onChange}
	d.initContainer(d, Horizontal)
	d.align = [2]Align{AlignStart, AlignCenter}
	d.selectable = true
	d.style = SelectableStyle(d)
	d.cursor = func() Cursor { return CursorPointer }

	d.label = NewLabel("")
	d.Add(d.label, NewSpacer(), NewLabel("v", WithName("dropdown-arrow")))

	d.list = NewMenu(WithName("dropdown-list"))
	d.strut = NewElement(WithName("dropdown-strut"), WithSize(0, 0))
	d.list.Add(d.strut)
	d.list.AttachTo(&d.Container,
		AnchorTo(TopLeft, d, BottomLeft),
		AnchorTo(BottomLeft, d, TopLeft),
	)
	d.SetOptions(options, index)
	d.onClick = d.list.Toggle
	applyOptions(d, opts)
	return d
}

// SetOptions replaces the options and the current index, clamped. It does
// not run onChange.
func (d *Dropdown) SetOptions(options []string, index int) {
	d.options = append([]string(nil), options...)
	for _, it := range d.list.items {
		d.list.Remove(it)
	}
	d.list.items = nil
	for i, opt := range d.options {
		d.list.AddItem(opt, func() { d.choose(i) })
	}
	d.index = max(0, min(index, len(d.options)-1))
	d.label.SetText(d.Value())
}

// Options returns the options.
func (d *Dropdown) Options() []string {
	return d.options
}

// Index returns the index of the current option, or -1 with no options.
func (d *Dropdown) Index() int {
	if len(d.options) == 0 {
		return -1
	}
	return d.index
}

// Value returns the current option, or "" with no options.
func (d *Dropdown) Value() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.index]
}

// List returns the floating option list.
func (d *Dropdown) List() *Menu {
	return d.list
}

// IsOpen reports whether the option list is shown.
func (d *Dropdown) IsOpen() bool {
	return d.list.open
}

func (d *Dropdown) choose(i int) {
	if i < 0 || i >= len(d.options) {
		return
	}
	changed := i != d.index
	d.index = i
	d.label.SetText(d.options[i])
	if changed && d.onChange != nil {
		d.onChange(i, d.options[i])
	}
}

// Update keeps the list at least as wide as the dropdown.
func (d *Dropdown) Update(s *State) {
	d.strut.SetFixed(Horizontal, max(0, d.size.X-2*d.list.Margin(s)))
}

// KeyEvent opens the list on Enter or Space and steps through options with
// Up and Down while selected.
func (d *Dropdown) KeyEvent(s *State, ev KeyEvent) {
	if !d.selected || !ev.Pressed || ev.Mod != ModNone {
		return
	}
	switch ev.Key {
	case KeyEnter, KeySpace:
		d.list.Toggle()
	case KeyUp:
		if !d.list.open {
			d.choose(d.index - 1)
		}
	case KeyDown:
		if !d.list.open {
			d.choose(d.index + 1)
		}
	}
}
