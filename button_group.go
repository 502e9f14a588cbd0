package ui

import "fmt"

// ButtonGroup keeps exactly one of a set of buttons current, the way a
// toolbar keeps one tool chosen. Activating a member by pointer or key
// makes it current. The current member is drawn with the selected
// background.
type ButtonGroup struct {
	buttons  []*Button
	current  int
	onChange func(int)
}

// NewButtonGroup groups buttons with the first one current. onChange runs
// with the new index whenever the current member changes.
// Returns an error if called with fewer than 2 buttons.
func NewButtonGroup(onChange func(int), buttons ...*Button) (*ButtonGroup, error) {
	if len(buttons) < 2 {
		return nil, fmt.Errorf("button group requires at least 2 members")
	}

	g := &ButtonGroup{buttons: buttons, onChange: onChange}
	for i, b := range buttons {
		activate := b.onActivate
		b.onActivate = func() {
			g.Set(i)
			if activate != nil {
				activate()
			}
		}

		st := SelectableStyle(b)
		if b.style != nil {
			copied := *b.style
			st = &copied
		}
		bg := st.Background
		st.Background = func() Paint {
			if g.current == i {
				return ThemeColor(RoleSelected)
			}
			if bg == nil {
				return Paint{}
			}
			return bg()
		}
		b.style = st
	}
	return g, nil
}

// MustNewButtonGroup is like NewButtonGroup but panics on error.
func MustNewButtonGroup(onChange func(int), buttons ...*Button) *ButtonGroup {
	g, err := NewButtonGroup(onChange, buttons...)
	if err != nil {
		panic(err)
	}
	return g
}

// Buttons returns the members in order.
func (g *ButtonGroup) Buttons() []*Button {
	return g.buttons
}

// Current returns the index of the current member.
func (g *ButtonGroup) Current() int {
	return g.current
}

// Set makes member i current. Out of range indices are ignored.
func (g *ButtonGroup) Set(i int) {
	if i < 0 || i >= len(g.buttons) || i == g.current {
		return
	}
	g.current = i
	if g.onChange != nil {
		g.onChange(i)
	}
}

// Next makes the following member current, wrapping at the end.
func (g *ButtonGroup) Next() {
	g.Set((g.current + 1) % len(g.buttons))
}

// Prev makes the preceding member current, wrapping at the start.
func (g *ButtonGroup) Prev() {
	g.Set((g.current - 1 + len(g.buttons)) % len(g.buttons))
}

// Bind registers next and prev as shortcuts that cycle the group.
func (g *ButtonGroup) Bind(sc *Shortcuts, next, prev KeyChord) error {
	if err := sc.Register(next, func(*State) { g.Next() }); err != nil {
		return err
	}
	if err := sc.Register(prev, func(*State) { g.Prev() }); err != nil {
		sc.Unregister(next)
		return err
	}
	return nil
}
