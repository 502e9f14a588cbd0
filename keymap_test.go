package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcuts_Register(t *testing.T) {
	noop := func(*State) {}

	type tc struct {
		chord   KeyChord
		fn      Action
		wantErr string
	}

	tests := map[string]tc{
		"ok":         {chord: Chord(KeyS, ModCtrl), fn: noop},
		"duplicate":  {chord: Chord(KeyZ, ModCtrl), fn: noop, wantErr: "shortcut Ctrl+Z already registered"},
		"no key":     {chord: Chord(KeyNone, ModCtrl), fn: noop, wantErr: "invalid key"},
		"unknown":    {chord: Chord(Key(250), ModNone), fn: noop, wantErr: "invalid key"},
		"nil action": {chord: Chord(KeyP, ModNone), fn: nil, wantErr: "nil handler for shortcut P"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sc := NewShortcuts()
			require.NoError(t, sc.Register(Chord(KeyZ, ModCtrl), noop))

			err := sc.Register(tt.chord, tt.fn)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, ok := sc.Lookup(tt.chord)
			assert.True(t, ok)
		})
	}
}

func TestShortcuts_MustRegisterPanicsOnDuplicate(t *testing.T) {
	sc := NewShortcuts()
	sc.MustRegister(Chord(KeyZ, ModCtrl|ModShift), func(*State) {})
	assert.PanicsWithValue(t, "ui: shortcut Ctrl+Shift+Z already registered", func() {
		sc.MustRegister(Chord(KeyZ, ModCtrl|ModShift), func(*State) {})
	})
}

func TestShortcuts_UnregisterAndOrder(t *testing.T) {
	sc := NewShortcuts()
	sc.MustRegister(Chord(KeyA, ModCtrl), func(*State) {})
	sc.MustRegister(Chord(KeyB, ModCtrl), func(*State) {})
	sc.MustRegister(Chord(KeyC, ModCtrl), func(*State) {})

	assert.True(t, sc.Unregister(Chord(KeyB, ModCtrl)))
	assert.False(t, sc.Unregister(Chord(KeyB, ModCtrl)))
	assert.Equal(t, []KeyChord{Chord(KeyA, ModCtrl), Chord(KeyC, ModCtrl)}, sc.Chords())

	// The chord is free again.
	assert.NoError(t, sc.Register(Chord(KeyB, ModCtrl), func(*State) {}))
}

func TestKeyChord_String(t *testing.T) {
	tests := map[string]struct {
		chord KeyChord
		want  string
	}{
		"plain":       {chord: Chord(KeyF5, ModNone), want: "F5"},
		"ctrl":        {chord: Chord(KeyS, ModCtrl), want: "Ctrl+S"},
		"ctrl shift":  {chord: Chord(KeyZ, ModCtrl|ModShift), want: "Ctrl+Shift+Z"},
		"digit":       {chord: Chord(Key1, ModAlt), want: "Alt+1"},
		"punctuation": {chord: Chord(KeyLeftBracket, ModNone), want: "["},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.chord.String())
		})
	}
}

func TestShortcuts_Dispatch(t *testing.T) {
	type tc struct {
		chord     KeyChord
		selectTF  bool
		wantFired bool
		wantText  string
	}

	tests := map[string]tc{
		"fires with nothing selected":        {chord: Chord(KeyB, ModNone), wantFired: true},
		"textual suppressed while typing":    {chord: Chord(KeyB, ModNone), selectTF: true, wantFired: false},
		"shifted suppressed while typing":    {chord: Chord(KeyB, ModShift), selectTF: true, wantFired: false},
		"ctrl chord fires while typing":      {chord: Chord(KeyB, ModCtrl), selectTF: true, wantFired: true},
		"unbound chord reaches the tree":     {chord: Chord(KeyE, ModCtrl), wantFired: false},
		"function key fires while not typed": {chord: Chord(KeyF2, ModNone), wantFired: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fired := 0
			tf := NewTextField("")
			root := NewRoot(WithChildren(tf))
			h := newHarness(t, root, V2(300, 100),
				WithShortcut(Chord(KeyB, ModNone), func(*State) { fired++ }),
				WithShortcut(Chord(KeyB, ModShift), func(*State) { fired++ }),
				WithShortcut(Chord(KeyB, ModCtrl), func(*State) { fired++ }),
				WithShortcut(Chord(KeyF2, ModNone), func(*State) { fired++ }),
			)
			if tt.selectTF {
				h.s.Select(tf)
			}

			h.key(tt.chord.Key, tt.chord.Mod)
			assert.Equal(t, tt.wantFired, fired == 1)
		})
	}
}

func TestShortcuts_ConsumeTheKey(t *testing.T) {
	var got []KeyEvent
	probe := &keyProbe{}
	probe.init(probe)
	probe.onKey = func(ev KeyEvent) { got = append(got, ev) }

	h := newHarness(t, NewRoot(WithChildren(probe)), V2(100, 100),
		WithShortcut(Chord(KeyS, ModCtrl), func(*State) {}))

	h.key(KeyS, ModCtrl)
	// The release is not a shortcut and is delivered.
	require.Len(t, got, 1)
	assert.False(t, got[0].Pressed)
}

func TestUI_ShortcutOptionRejectsDuplicate(t *testing.T) {
	_, err := New(NewRoot(),
		WithShortcut(Chord(KeyS, ModCtrl), func(*State) {}),
		WithShortcut(Chord(KeyS, ModCtrl), func(*State) {}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}
