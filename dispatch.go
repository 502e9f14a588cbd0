package ui

import "slices"

// deliver runs fn on every shown node below and including n, children
// before their parent. Children slices are snapshotted, so a handler that
// edits the tree cannot derail the walk; edits still belong in Enqueue.
func (s *State) deliver(n Node, fn func(Node)) {
	if !n.AsElement().isShown(s) {
		return
	}
	if c, ok := asContainer(n); ok {
		for _, child := range slices.Clone(c.children) {
			s.deliver(child, fn)
		}
	}
	fn(n)
}

// enqueueInput turns the discrete events of a snapshot into actions, in
// the order keys, chars, scrolls.
func (s *State) enqueueInput(in *Input) {
	for _, ev := range in.Keys {
		s.Enqueue(func(s *State) { s.handleKey(ev) })
	}
	for _, r := range in.Chars {
		s.Enqueue(func(s *State) { s.handleChar(CharEvent{Rune: r}) })
	}
	for _, d := range in.Scrolls {
		s.Enqueue(func(s *State) { s.handleScroll(d) })
	}
}

// handleKey applies the built-in bindings, then shortcuts, then delivers
// the event to the tree.
//
// Tab and Shift+Tab cycle the selection and are consumed. Escape clears
// the selection and is still delivered, so open menus can close on it.
func (s *State) handleKey(ev KeyEvent) {
	s.logger.Debug("key", "event", ev.String())
	if s.globalKeyHandler != nil && s.globalKeyHandler(ev) {
		return
	}
	if ev.Pressed {
		switch {
		case ev.IsPress(KeyTab, ModNone):
			s.SelectNext()
			return
		case ev.IsPress(KeyTab, ModShift):
			s.SelectPrev()
			return
		case ev.IsPress(KeyEscape, ModNone):
			s.Select(nil)
		}
		if s.shortcuts.dispatch(s, ev) {
			return
		}
	}
	s.deliver(s.root, func(n Node) { n.KeyEvent(s, ev) })
}

func (s *State) handleChar(ev CharEvent) {
	s.deliver(s.root, func(n Node) { n.CharEvent(s, ev) })
}

func (s *State) handleScroll(delta Vec2) {
	ev := &ScrollEvent{Delta: delta}
	s.deliver(s.root, func(n Node) { n.ScrollEvent(s, ev) })
}

// handlePresses processes the buttons that went down this frame, after hit
// testing.
func (s *State) handlePresses() {
	for b := range MouseButtonCount {
		if s.input.JustPressed(b) {
			s.press(MouseButtonEvent{Button: b, Pressed: true, Mod: s.input.Mod})
		}
	}
}

// press selects the nearest selectable ancestor of the hovered node on a
// left press, then offers the press to the hovered node and its ancestors
// until one handles it.
func (s *State) press(ev MouseButtonEvent) {
	target := s.hovered
	s.logger.Debug("press", "button", ev.Button.String(), "target", describe(target))
	if ev.Button == MouseLeft {
		s.selectAt(target)
	}

	for e := elementOf(target); e != nil; e = parentElement(e) {
		if p, ok := e.Node().(presser); ok && p.Press(s, ev) {
			return
		}
		switch {
		case ev.Button == MouseLeft && e.onClick != nil:
			e.onClick()
			return
		case ev.Button == MouseRight && e.onSecondaryClick != nil:
			e.onSecondaryClick()
			return
		}
	}
}
