package ui

var _ Node = (*Dialog)(nil)

// DialogResult reports how a dialog was closed.
type DialogResult struct {
	// Index of the button pressed, or -1 when dismissed.
	Button int
	// Label of the button pressed, or "" when dismissed.
	Label string
	// Dismissed is set when the dialog closed without a button: a press on
	// the dimmed background or Escape, if the dialog allows it.
	Dismissed bool
}

// Dialog is a modal surface covering the root. It dims everything below
// it, centres a panel with a title, a body and a row of buttons, and
// confines Tab cycling to itself while shown.
//
// Showing never blocks. The result is delivered once, to the OnClose
// callback and to the Done channel, after which the dialog removes itself
// from the tree.
type Dialog struct {
	Floating

	panel       *Container
	buttons     []*Button
	dismissible bool

	shown     bool
	closed    bool
	detaching bool
	done      chan DialogResult
	onClose   func(DialogResult)
}

// NewDialog creates a dialog. body may be nil.
func NewDialog(title string, body Node, buttons []string, opts ...Option) *Dialog {
	d := &Dialog{done: make(chan DialogResult, 1)}
	d.initFloating(d, Vertical)
	d.fillRoot = true
	d.ignoreClip = true
	d.align = [2]Align{AlignCenter, AlignCenter}
	d.style = &Style{Background: Const(ThemeColor(RoleDim))}

	d.panel = NewContainer(Vertical, WithName("dialog-panel"))
	d.panel.style = &Style{
		Background: Const(ThemeColor(RoleSurface)),
		Outline:    Const(ThemeColor(RoleOutline)),
		Shape:      ShapeRounded,
		Radius:     4,
	}
	d.panel.SetMarginScale(3)
	d.panel.SetPaddingScale(2)
	d.panel.Add(NewLabel(title, WithName("dialog-title")))
	if body != nil {
		d.panel.Add(body)
	}

	row := NewContainer(Horizontal, WithName("dialog-buttons"), WithMargin(0), WithFillWidth(), WithAlign(Horizontal, AlignEnd))
	for i, text := range buttons {
		b := NewButton(text, func() {
			d.finish(DialogResult{Button: i, Label: text})
		})
		d.buttons = append(d.buttons, b)
		row.Add(b)
	}
	if len(buttons) > 0 {
		d.panel.Add(row)
	}
	d.Add(d.panel)

	applyOptions(d, opts)
	return d
}

// WithDismissible lets a press on the dimmed background or Escape close
// the dialog.
func WithDismissible() Option {
	return func(n Node) {
		d, ok := n.(*Dialog)
		if !ok {
			panic("ui: WithDismissible applied to non-dialog node")
		}
		d.dismissible = true
	}
}

func (d *Dialog) isModal() bool {
	return true
}

// Panel returns the centred content container.
func (d *Dialog) Panel() *Container {
	return d.panel
}

// Buttons returns the dialog's buttons in order.
func (d *Dialog) Buttons() []*Button {
	return d.buttons
}

// OnClose registers the continuation run with the result.
func (d *Dialog) OnClose(fn func(DialogResult)) {
	d.onClose = fn
}

// Done returns a channel that receives the result once. Showing a closed
// dialog again replaces the channel.
func (d *Dialog) Done() <-chan DialogResult {
	return d.done
}

// IsOpen reports whether the dialog is in the tree and not yet closed.
func (d *Dialog) IsOpen() bool {
	return d.shown && !d.closed
}

// Show adds the dialog to the root at the start of the next frame, one
// layer above the highest layer seen so far. It covers the root from that
// frame's hit test on. Showing an open dialog does nothing; a closed one
// opens again with a fresh Done channel.
func (d *Dialog) Show(s *State) {
	if d.IsOpen() {
		return
	}
	if d.closed {
		d.closed = false
		d.detaching = false
		d.done = make(chan DialogResult, 1)
	}
	d.shown = true
	s.Enqueue(func(s *State) {
		if p := d.parent; p != nil {
			p.Remove(d)
		}
		d.relLayer = s.maxLayerSeen + 1 - s.root.relLayer
		s.root.Add(d)
		// Layout runs after the hit test, so take the root's bounds now.
		d.pos = Vec2{}
		d.size = s.root.size
		s.logger.Debug("dialog open", "node", describe(d), "layer", d.relLayer)
	})
}

// Close closes the dialog with r. Later calls do nothing.
func (d *Dialog) Close(s *State, r DialogResult) {
	d.finish(r)
	d.detach(s)
}

// finish records the result. The removal from the tree happens on the
// next Update, so it is deferred past any walk in progress.
func (d *Dialog) finish(r DialogResult) {
	if d.closed {
		return
	}
	d.closed = true
	d.done <- r
	if d.onClose != nil {
		d.onClose(r)
	}
}

func (d *Dialog) detach(s *State) {
	if d.detaching {
		return
	}
	d.detaching = true
	s.Enqueue(func(s *State) {
		if p := d.parent; p != nil {
			p.Remove(d)
		}
		if IsAncestor(d, s.selected) {
			s.Select(nil)
		}
		s.logger.Debug("dialog closed", "node", describe(d))
	})
}

// Update removes a finished dialog.
func (d *Dialog) Update(s *State) {
	if d.closed && d.parent != nil {
		d.detach(s)
	}
}

// Press swallows every press that reaches the dialog so nothing below it
// reacts. A press on the background itself dismisses a dismissible dialog.
func (d *Dialog) Press(s *State, ev MouseButtonEvent) bool {
	if d.closed {
		return true
	}
	if d.dismissible && ev.Button == MouseLeft && s.hovered == Node(d) {
		d.Close(s, DialogResult{Button: -1, Dismissed: true})
	}
	return true
}

// KeyEvent dismisses a dismissible dialog on Escape.
func (d *Dialog) KeyEvent(s *State, ev KeyEvent) {
	if d.dismissible && !d.closed && ev.IsPress(KeyEscape, ModNone) {
		d.Close(s, DialogResult{Button: -1, Dismissed: true})
	}
}
