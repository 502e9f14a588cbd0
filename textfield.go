package ui

import (
	"slices"
	"unicode"
)

var _ Node = (*TextField)(nil)

// TextField is a single-line editable text leaf. It takes text input only
// while it holds the selection.
type TextField struct {
	Element

	runes       []rune
	caret       int // rune index in [0, len(runes)]
	placeholder string
	fontSize    float32
	minChars    int

	onChange func(string)
	onSubmit func(string)
}

// NewTextField creates an empty text field.
func NewTextField(placeholder string, opts ...Option) *TextField {
	t := &TextField{placeholder: placeholder, minChars: 8}
	t.init(t)
	t.selectable = true
	t.cursor = func() Cursor { return CursorText }
	t.style = &Style{
		Background: SelectablePaint(t, ThemeColor(RoleBackground), ThemeColor(RoleHover), ThemeColor(RoleBackground)),
		Outline: func() Paint {
			if t.selected {
				return ThemeColor(RoleAccent)
			}
			return ThemeColor(RoleOutline)
		},
		Shape:  ShapeRounded,
		Radius: 2,
	}
	applyOptions(t, opts)
	return t
}

// Text returns the current contents.
func (t *TextField) Text() string {
	return string(t.runes)
}

// SetText replaces the contents and moves the caret to the end. onChange
// is not called.
func (t *TextField) SetText(text string) {
	t.runes = []rune(text)
	t.caret = len(t.runes)
}

// Caret returns the caret position as a rune index.
func (t *TextField) Caret() int {
	return t.caret
}

// SetCaret moves the caret, clamped to the text.
func (t *TextField) SetCaret(i int) {
	t.caret = max(0, min(i, len(t.runes)))
}

// SetOnChange sets the handler run after every edit.
func (t *TextField) SetOnChange(fn func(string)) {
	t.onChange = fn
}

// SetOnSubmit sets the handler run when Enter is pressed while selected.
func (t *TextField) SetOnSubmit(fn func(string)) {
	t.onSubmit = fn
}

// SetMinChars sets the minimum width in average character widths.
func (t *TextField) SetMinChars(n int) {
	t.minChars = max(0, n)
}

// WantsText reports whether key presses are currently typing.
func (t *TextField) WantsText() bool {
	return t.selected
}

func (t *TextField) textSize(s *State) float32 {
	if t.fontSize > 0 {
		return t.fontSize
	}
	return s.theme.FontSize
}

func (t *TextField) inset(s *State) float32 {
	return s.theme.Margin
}

// NaturalSize fits the text, or minChars average characters, plus an
// inset on every side.
func (t *TextField) NaturalSize(s *State) Vec2 {
	size := t.textSize(s)
	m := t.inset(s)
	w := max(s.measurer.Width(string(t.runes), size), s.measurer.Width("n", size)*float32(t.minChars))
	return V2(w+2*m, s.measurer.LineHeight(size)+2*m)
}

// CharEvent inserts printable codepoints at the caret while selected.
func (t *TextField) CharEvent(s *State, ev CharEvent) {
	if !t.selected || !unicode.IsPrint(ev.Rune) {
		return
	}
	t.runes = slices.Insert(t.runes, t.caret, ev.Rune)
	t.caret++
	t.changed()
}

// KeyEvent handles editing and caret keys while selected.
func (t *TextField) KeyEvent(s *State, ev KeyEvent) {
	if !t.selected || !ev.Pressed {
		return
	}
	switch ev.Key {
	case KeyBackspace:
		if t.caret > 0 {
			t.runes = slices.Delete(t.runes, t.caret-1, t.caret)
			t.caret--
			t.changed()
		}
	case KeyDelete:
		if t.caret < len(t.runes) {
			t.runes = slices.Delete(t.runes, t.caret, t.caret+1)
			t.changed()
		}
	case KeyLeft:
		t.SetCaret(t.caret - 1)
	case KeyRight:
		t.SetCaret(t.caret + 1)
	case KeyHome:
		t.caret = 0
	case KeyEnd:
		t.caret = len(t.runes)
	case KeyEnter:
		if t.onSubmit != nil {
			t.onSubmit(t.Text())
		}
	}
}

// Press places the caret under the pointer.
func (t *TextField) Press(s *State, ev MouseButtonEvent) bool {
	if ev.Button != MouseLeft {
		return false
	}
	x := s.mouse.X - t.pos.X - t.inset(s)
	t.SetCaret(s.measurer.IndexAt(string(t.runes), t.textSize(s), x))
	return true
}

func (t *TextField) changed() {
	if t.onChange != nil {
		t.onChange(t.Text())
	}
}

func (t *TextField) draw(s *State, item *DrawItem) {
	size := t.textSize(s)
	m := t.inset(s)
	item.FontSize = size
	item.TextPos = t.pos.Add(V2(m, m))
	if len(t.runes) == 0 && !t.selected {
		item.Text = t.placeholder
		item.TextColor = ThemeColor(RoleOutline).Resolve(s.theme)
		return
	}
	item.Text = string(t.runes)
	item.TextColor = ThemeColor(RoleText).Resolve(s.theme)
	if t.selected {
		x := s.measurer.Width(string(t.runes[:t.caret]), size)
		item.Caret = &Rect{
			Pos:  item.TextPos.Add(V2(x, 0)),
			Size: V2(1, s.measurer.LineHeight(size)),
		}
	}
}
