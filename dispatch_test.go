package ui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyProbe is a leaf that records what reaches it.
type keyProbe struct {
	Element

	onKey  func(KeyEvent)
	onChar func(rune)
}

func (p *keyProbe) KeyEvent(_ *State, ev KeyEvent) {
	if p.onKey != nil {
		p.onKey(ev)
	}
}

func (p *keyProbe) CharEvent(_ *State, ev CharEvent) {
	if p.onChar != nil {
		p.onChar(ev.Rune)
	}
}

func newKeyProbe(name string, log *[]string) *keyProbe {
	p := &keyProbe{}
	p.init(p)
	p.name = name
	p.SetFixedSize(V2(10, 10))
	p.onKey = func(ev KeyEvent) {
		if ev.Pressed {
			*log = append(*log, name)
		}
	}
	p.onChar = func(r rune) {
		*log = append(*log, name+":"+string(r))
	}
	return p
}

// groupProbe is a container that records key presses after its children.
type groupProbe struct {
	Container
	log *[]string
}

func (g *groupProbe) KeyEvent(_ *State, ev KeyEvent) {
	if ev.Pressed {
		*g.log = append(*g.log, g.name)
	}
}

func TestDispatch_KeysReachChildrenFirst(t *testing.T) {
	var log []string
	g := &groupProbe{log: &log}
	g.initContainer(g, Vertical)
	g.name = "group"
	g.Add(newKeyProbe("a", &log), newKeyProbe("b", &log))
	hidden := newKeyProbe("hidden", &log)
	hidden.SetVisible(func() bool { return false })
	h := newHarness(t, NewRoot(WithChildren(g, hidden, newKeyProbe("c", &log))), V2(100, 100))

	h.key(KeyX, ModNone)
	assert.Equal(t, []string{"a", "b", "group", "c"}, log)
}

func TestDispatch_BuiltinKeys(t *testing.T) {
	type tc struct {
		key        Key
		mod        Modifier
		global     func(KeyEvent) bool
		wantLog    []string
		wantSelect bool
	}

	tests := map[string]tc{
		"tab is consumed":            {key: KeyTab, wantLog: nil, wantSelect: true},
		"shift tab is consumed":      {key: KeyTab, mod: ModShift, wantLog: nil, wantSelect: true},
		"ctrl tab reaches the tree":  {key: KeyTab, mod: ModCtrl, wantLog: []string{"a"}},
		"escape is still delivered":  {key: KeyEscape, wantLog: []string{"a"}},
		"global handler consumes":    {key: KeyQ, global: func(KeyEvent) bool { return true }, wantLog: nil},
		"global handler passes":      {key: KeyQ, global: func(KeyEvent) bool { return false }, wantLog: []string{"a"}},
		"global handler before tabs": {key: KeyTab, global: func(KeyEvent) bool { return true }, wantLog: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var log []string
			a := newKeyProbe("a", &log)
			a.SetSelectable(true)
			var opts []UIOption
			if tt.global != nil {
				opts = append(opts, WithGlobalKeyHandler(tt.global))
			}
			h := newHarness(t, NewRoot(WithChildren(a)), V2(100, 100), opts...)

			h.key(tt.key, tt.mod)
			assert.Equal(t, tt.wantLog, log)
			assert.Equal(t, tt.wantSelect, h.s.Selected() != nil)
		})
	}
}

func TestDispatch_CharsInOrder(t *testing.T) {
	var log []string
	h := newHarness(t, NewRoot(WithChildren(newKeyProbe("a", &log), newKeyProbe("b", &log))), V2(100, 100))

	h.typeText("hi")
	assert.Equal(t, []string{"a:h", "b:h", "a:i", "b:i"}, log)
}

func TestDispatch_InputEventOrder(t *testing.T) {
	var log []string
	p := newKeyProbe("p", &log)
	h := newHarness(t, NewRoot(WithChildren(p)), V2(100, 100))

	h.frame(func(in *Input) {
		in.Chars = []rune{'x'}
		in.Keys = []KeyEvent{{Key: KeyA, Pressed: true}}
	})
	assert.Equal(t, []string{"p", "p:x"}, log)
}

// pressProbe handles presses itself when consume is set.
type pressProbe struct {
	Element
	consume bool
	presses int
}

func (p *pressProbe) Press(*State, MouseButtonEvent) bool {
	p.presses++
	return p.consume
}

func TestDispatch_PressBubbles(t *testing.T) {
	type tc struct {
		consume      bool
		button       MouseButton
		wantClick    int
		wantSecond   int
		wantPresses  int
		wantSelected bool
	}

	tests := map[string]tc{
		"left bubbles to click":   {button: MouseLeft, wantClick: 1, wantPresses: 1, wantSelected: true},
		"consumed press stops":    {consume: true, button: MouseLeft, wantPresses: 1, wantSelected: true},
		"right bubbles to second": {button: MouseRight, wantSecond: 1, wantPresses: 1},
		"middle reaches nobody":   {button: MouseMiddle, wantPresses: 1},
		"right consumed stops":    {consume: true, button: MouseRight, wantPresses: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := &pressProbe{consume: tt.consume}
			p.init(p)
			p.SetFixedSize(V2(10, 10))

			clicks, seconds := 0, 0
			box := NewContainer(Horizontal, WithSelectable(), WithChildren(p),
				WithOnClick(func() { clicks++ }),
				WithOnSecondaryClick(func() { seconds++ }),
			)
			h := newHarness(t, NewRoot(WithChildren(box)), V2(100, 100), WithTheme(flatTheme()))

			h.click(V2(5, 5), tt.button)
			assert.Equal(t, tt.wantClick, clicks)
			assert.Equal(t, tt.wantSecond, seconds)
			assert.Equal(t, tt.wantPresses, p.presses)
			assert.Equal(t, tt.wantSelected, h.s.Selected() == Node(box))
		})
	}
}

func TestDispatch_PressEventWithoutHeldTransition(t *testing.T) {
	clicks := 0
	e := NewElement(WithSize(50, 50), WithOnClick(func() { clicks++ }))
	h := newHarness(t, NewRoot(WithChildren(e)), V2(100, 100))

	h.move(V2(10, 10))
	h.frame(func(in *Input) {
		in.MouseButtons = []MouseButtonEvent{{Button: MouseLeft, Pressed: true}, {Button: MouseLeft}}
	})
	assert.Equal(t, 1, clicks)
}

func TestState_ActionsRunNextFrame(t *testing.T) {
	h := newHarness(t, NewRoot(), V2(100, 100))

	var order []string
	h.s.Enqueue(func(s *State) {
		order = append(order, "first")
		s.Enqueue(func(*State) { order = append(order, "nested") })
	})
	h.s.Enqueue(nil)
	assert.Empty(t, order)

	h.frame()
	assert.Equal(t, []string{"first"}, order)
	h.frame()
	assert.Equal(t, []string{"first", "nested"}, order)
}

func TestUI_QueueFromGoroutines(t *testing.T) {
	u, err := New(NewRoot(), WithQueueSize(64))
	require.NoError(t, err)

	var wg sync.WaitGroup
	count := 0
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 4 {
				assert.True(t, u.Queue(func(*State) { count++ }))
			}
		}()
	}
	wg.Wait()

	u.Frame(Input{DisplaySize: V2(10, 10)})
	assert.Equal(t, 32, count)
}

func TestUI_QueueFull(t *testing.T) {
	u, err := New(NewRoot(), WithQueueSize(1))
	require.NoError(t, err)

	assert.True(t, u.Queue(func(*State) {}))
	assert.False(t, u.Queue(func(*State) {}))
	u.Frame(Input{DisplaySize: V2(10, 10)})
	assert.True(t, u.Queue(func(*State) {}))
}

func TestUI_NewErrors(t *testing.T) {
	badTheme := DefaultTheme()
	badTheme.Margin = -1

	tests := map[string]struct {
		root    *Root
		opts    []UIOption
		wantErr string
	}{
		"nil root":      {root: nil, wantErr: "nil root"},
		"nil theme":     {root: NewRoot(), opts: []UIOption{WithTheme(nil)}, wantErr: "nil theme"},
		"invalid theme": {root: NewRoot(), opts: []UIOption{WithTheme(badTheme)}, wantErr: "invalid theme"},
		"nil measurer":  {root: NewRoot(), opts: []UIOption{WithMeasurer(nil)}, wantErr: "nil text measurer"},
		"nil logger":    {root: NewRoot(), opts: []UIOption{WithLogger(nil)}, wantErr: "nil logger"},
		"empty queue":   {root: NewRoot(), opts: []UIOption{WithQueueSize(0)}, wantErr: "queue size"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			u, err := New(tt.root, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Panics(t, func() { MustNew(nil) })
}

func TestState_Cursor(t *testing.T) {
	inner := NewElement(WithSize(10, 10))
	box := NewContainer(Horizontal, WithCursor(CursorPointer), WithChildren(inner))
	plain := NewElement(WithSize(10, 10))
	h := newHarness(t, NewRoot(WithChildren(box, plain)), V2(100, 100), WithTheme(flatTheme()))

	h.move(V2(5, 5))
	assert.Equal(t, CursorPointer, h.u.Cursor())
	h.move(V2(5, 15))
	assert.Equal(t, CursorDefault, h.u.Cursor())
}
