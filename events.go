package ui

import "fmt"

// MouseButton identifies a mouse button by index.
type MouseButton uint8

const (
	// MouseLeft is the primary button.
	MouseLeft MouseButton = iota
	// MouseRight is the secondary button.
	MouseRight
	// MouseMiddle is the wheel button.
	MouseMiddle

	// MouseButtonCount is the number of tracked buttons.
	MouseButtonCount
)

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
}

// KeyEvent is a discrete key press or release.
type KeyEvent struct {
	Key     Key
	Mod     Modifier
	Pressed bool
}

// IsPress reports whether the event presses k with exactly the given
// modifiers.
func (ke KeyEvent) IsPress(k Key, mod Modifier) bool {
	return ke.Pressed && ke.Key == k && ke.Mod == mod
}

// String describes the event for logs.
func (ke KeyEvent) String() string {
	state := "up"
	if ke.Pressed {
		state = "down"
	}
	if ke.Mod == ModNone {
		return fmt.Sprintf("%s %s", ke.Key, state)
	}
	return fmt.Sprintf("%s+%s %s", ke.Mod, ke.Key, state)
}

// MouseButtonEvent is a discrete mouse button press or release at the
// pointer position of the frame it arrived in.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
	Mod     Modifier
}

// CharEvent carries one text-input codepoint.
type CharEvent struct {
	Rune rune
}

// ScrollEvent carries a wheel delta in notches. Handlers set Handled to
// keep enclosing scroll containers from reacting to the same delta.
type ScrollEvent struct {
	Delta   Vec2
	Handled bool
}

// Input is the per-frame snapshot supplied by the window collaborator.
type Input struct {
	// Pointer position this frame and last frame.
	Mouse     Vec2
	PrevMouse Vec2

	// Held state per button this frame and last frame.
	Buttons     [MouseButtonCount]bool
	PrevButtons [MouseButtonCount]bool

	// Discrete events queued since the last frame, in arrival order.
	Keys         []KeyEvent
	MouseButtons []MouseButtonEvent
	Chars        []rune
	Scrolls      []Vec2

	// Modifiers held at the end of the frame.
	Mod Modifier

	DisplaySize Vec2

	// Unfocused is set while the window does not have input focus. Hit
	// testing finds nothing while it is set.
	Unfocused bool
}

// Down reports whether b is held this frame.
func (in *Input) Down(b MouseButton) bool {
	return b < MouseButtonCount && in.Buttons[b]
}

// JustPressed reports whether b went down this frame, either through a
// queued press event or a held-state transition.
func (in *Input) JustPressed(b MouseButton) bool {
	if b >= MouseButtonCount {
		return false
	}
	for _, ev := range in.MouseButtons {
		if ev.Button == b && ev.Pressed {
			return true
		}
	}
	return in.Buttons[b] && !in.PrevButtons[b]
}

// JustReleased reports whether b went up this frame.
func (in *Input) JustReleased(b MouseButton) bool {
	if b >= MouseButtonCount {
		return false
	}
	for _, ev := range in.MouseButtons {
		if ev.Button == b && !ev.Pressed {
			return true
		}
	}
	return !in.Buttons[b] && in.PrevButtons[b]
}

// MouseDelta returns how far the pointer moved since last frame.
func (in *Input) MouseDelta() Vec2 {
	return in.Mouse.Sub(in.PrevMouse)
}
