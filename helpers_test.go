package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune half the font size in width and one font
// size in height, so expected layouts can be computed by hand.
type fixedMeasurer struct{}

func (fixedMeasurer) Width(s string, size float32) float32 {
	return float32(utf8.RuneCountInString(s)) * size / 2
}

func (fixedMeasurer) LineHeight(size float32) float32 {
	return size
}

func (fixedMeasurer) IndexAt(s string, size float32, x float32) int {
	n := utf8.RuneCountInString(s)
	i := int(math32.Floor(x/(size/2) + 0.5))
	return max(0, min(i, n))
}

// flatTheme removes margins and padding so sizes add up exactly.
func flatTheme() *Theme {
	th := DefaultTheme()
	th.Margin = 0
	th.Padding = 0
	th.FontSize = 10
	return th
}

// harness drives a UI frame by frame with a scripted pointer.
type harness struct {
	t    *testing.T
	u    *UI
	s    *State
	size Vec2

	mouse       Vec2
	prevMouse   Vec2
	buttons     [MouseButtonCount]bool
	prevButtons [MouseButtonCount]bool
}

func newHarness(t *testing.T, root *Root, size Vec2, opts ...UIOption) *harness {
	t.Helper()
	opts = append([]UIOption{WithMeasurer(fixedMeasurer{})}, opts...)
	u, err := New(root, opts...)
	require.NoError(t, err)
	h := &harness{t: t, u: u, s: u.State(), size: size, mouse: V2(-1, -1), prevMouse: V2(-1, -1)}
	h.frame()
	h.frame()
	return h
}

// frame runs one frame, letting edit fill in discrete events.
func (h *harness) frame(edit ...func(in *Input)) {
	in := Input{
		Mouse:       h.mouse,
		PrevMouse:   h.prevMouse,
		Buttons:     h.buttons,
		PrevButtons: h.prevButtons,
		DisplaySize: h.size,
	}
	for _, fn := range edit {
		fn(&in)
	}
	h.u.Frame(in)
	h.prevMouse = h.mouse
	h.prevButtons = h.buttons
}

func (h *harness) move(p Vec2) {
	h.mouse = p
	h.frame()
}

func (h *harness) down(b MouseButton) {
	h.buttons[b] = true
	h.frame()
}

func (h *harness) up(b MouseButton) {
	h.buttons[b] = false
	h.frame()
}

// click moves to p, presses and releases b, then settles one more frame.
func (h *harness) click(p Vec2, b MouseButton) {
	h.move(p)
	h.down(b)
	h.up(b)
	h.frame()
}

// clickOn clicks the centre of n.
func (h *harness) clickOn(n Node) {
	h.click(centre(n), MouseLeft)
}

func (h *harness) key(k Key, mod Modifier) {
	h.frame(func(in *Input) {
		in.Keys = append(in.Keys, KeyEvent{Key: k, Mod: mod, Pressed: true}, KeyEvent{Key: k, Mod: mod})
	})
	h.frame()
}

func (h *harness) typeText(text string) {
	h.frame(func(in *Input) {
		in.Chars = append(in.Chars, []rune(text)...)
	})
	h.frame()
}

func (h *harness) wheel(delta Vec2) {
	h.frame(func(in *Input) {
		in.Scrolls = append(in.Scrolls, delta)
	})
}

func centre(n Node) Vec2 {
	r := n.AsElement().Rect()
	return r.Pos.Add(r.Size.Scale(0.5))
}
