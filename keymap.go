package ui

import (
	"fmt"
	"slices"
)

// KeyChord is a key pressed with an exact modifier set.
type KeyChord struct {
	Key Key
	Mod Modifier
}

// Chord is shorthand for KeyChord{key, mod}.
func Chord(key Key, mod Modifier) KeyChord {
	return KeyChord{Key: key, Mod: mod}
}

// String returns the chord as "Ctrl+Shift+Z".
func (c KeyChord) String() string {
	if c.Mod == ModNone {
		return c.Key.String()
	}
	return c.Mod.String() + "+" + c.Key.String()
}

// textual reports whether the chord could also be typing: no modifier
// other than Shift.
func (c KeyChord) textual() bool {
	return c.Mod&^ModShift == 0
}

// textInput is implemented by nodes that turn key presses into text while
// selected. Textual shortcuts are suppressed while one holds the selection.
type textInput interface {
	WantsText() bool
}

// Shortcuts maps key chords to handlers. Each chord has at most one
// handler.
type Shortcuts struct {
	handlers map[KeyChord]Action
	order    []KeyChord
}

// NewShortcuts creates an empty shortcut table.
func NewShortcuts() *Shortcuts {
	return &Shortcuts{handlers: make(map[KeyChord]Action)}
}

// Register binds chord to fn. Binding a chord twice, an invalid key or a
// nil handler is an error.
func (sc *Shortcuts) Register(chord KeyChord, fn Action) error {
	if chord.Key == KeyNone || !chord.Key.Valid() {
		return fmt.Errorf("invalid key %d in shortcut", chord.Key)
	}
	if fn == nil {
		return fmt.Errorf("nil handler for shortcut %s", chord)
	}
	if _, exists := sc.handlers[chord]; exists {
		return fmt.Errorf("shortcut %s already registered", chord)
	}
	sc.handlers[chord] = fn
	sc.order = append(sc.order, chord)
	return nil
}

// MustRegister is like Register but panics on error.
func (sc *Shortcuts) MustRegister(chord KeyChord, fn Action) {
	if err := sc.Register(chord, fn); err != nil {
		panic("ui: " + err.Error())
	}
}

// Unregister removes the binding for chord. Returns true if it existed.
func (sc *Shortcuts) Unregister(chord KeyChord) bool {
	if _, ok := sc.handlers[chord]; !ok {
		return false
	}
	delete(sc.handlers, chord)
	sc.order = slices.DeleteFunc(sc.order, func(c KeyChord) bool { return c == chord })
	return true
}

// Chords returns the registered chords in registration order.
func (sc *Shortcuts) Chords() []KeyChord {
	return slices.Clone(sc.order)
}

// Lookup returns the handler bound to chord.
func (sc *Shortcuts) Lookup(chord KeyChord) (Action, bool) {
	fn, ok := sc.handlers[chord]
	return fn, ok
}

// dispatch runs the handler for a key press and reports whether one ran.
func (sc *Shortcuts) dispatch(s *State, ev KeyEvent) bool {
	if sc == nil || !ev.Pressed {
		return false
	}
	chord := KeyChord{Key: ev.Key, Mod: ev.Mod}
	fn, ok := sc.handlers[chord]
	if !ok {
		return false
	}
	if chord.textual() {
		if ti, ok := s.selected.(textInput); ok && ti.WantsText() {
			return false
		}
	}
	s.logger.Debug("shortcut", "chord", chord.String())
	fn(s)
	return true
}
