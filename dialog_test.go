package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dialogFixture struct {
	*harness
	dialog       *Dialog
	other        *Button
	canvasClicks int
	results      []DialogResult
}

func newDialogFixture(t *testing.T, opts ...Option) *dialogFixture {
	t.Helper()
	f := &dialogFixture{}
	f.other = NewButton("Other", nil)
	canvas := NewElement(WithName("canvas"), WithFill(), WithOnClick(func() { f.canvasClicks++ }))
	overlay := NewElement(WithName("tool-overlay"), WithSize(5, 5), WithLayer(7))
	root := NewRoot(WithChildren(f.other, canvas, overlay))
	f.harness = newHarness(t, root, V2(400, 300), WithTheme(flatTheme()))

	f.dialog = NewDialog("Unsaved changes", NewLabel("Discard them?"), []string{"Discard", "Cancel"}, opts...)
	f.dialog.OnClose(func(r DialogResult) { f.results = append(f.results, r) })
	f.dialog.Show(f.s)
	f.frame()
	return f
}

func receive(t *testing.T, ch <-chan DialogResult) (DialogResult, bool) {
	t.Helper()
	select {
	case r := <-ch:
		return r, true
	default:
		return DialogResult{}, false
	}
}

func TestDialog_ShowCoversRootAboveEverything(t *testing.T) {
	f := newDialogFixture(t)
	d := f.dialog

	require.True(t, d.IsShown())
	assert.True(t, d.IsOpen())
	assert.Same(t, &f.s.Root().Container, d.Parent())
	assert.Equal(t, 8, d.Layer())
	assert.Equal(t, Vec2{}, d.Pos())
	assert.Equal(t, V2(400, 300), d.Size())

	// The panel is centred.
	p := d.Panel()
	assert.InDelta(t, (400-p.Size().X)/2, p.Pos().X, 1e-3)
	assert.InDelta(t, (300-p.Size().Y)/2, p.Pos().Y, 1e-3)
}

func TestDialog_ButtonCloses(t *testing.T) {
	f := newDialogFixture(t)
	d := f.dialog

	f.clickOn(d.Buttons()[1])
	want := DialogResult{Button: 1, Label: "Cancel"}
	assert.Equal(t, []DialogResult{want}, f.results)
	got, ok := receive(t, d.Done())
	require.True(t, ok)
	assert.Equal(t, want, got)

	assert.False(t, d.IsOpen())
	assert.Nil(t, d.Parent())
	assert.Nil(t, f.s.Selected())
	assert.Zero(t, f.canvasClicks)
}

func TestDialog_BackgroundPress(t *testing.T) {
	type tc struct {
		opts       []Option
		wantClosed bool
	}

	tests := map[string]tc{
		"dismissible closes": {opts: []Option{WithDismissible()}, wantClosed: true},
		"modal stays open":   {opts: nil, wantClosed: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newDialogFixture(t, tt.opts...)

			f.click(V2(200, 5), MouseLeft)
			assert.Zero(t, f.canvasClicks)
			assert.Equal(t, tt.wantClosed, !f.dialog.IsOpen())
			if tt.wantClosed {
				require.Len(t, f.results, 1)
				assert.Equal(t, DialogResult{Button: -1, Dismissed: true}, f.results[0])
				assert.Nil(t, f.dialog.Parent())
			} else {
				assert.Empty(t, f.results)
				assert.NotNil(t, f.dialog.Parent())
			}
		})
	}
}

func TestDialog_PanelPressDoesNotDismiss(t *testing.T) {
	f := newDialogFixture(t, WithDismissible())

	f.clickOn(f.dialog.Panel())
	assert.True(t, f.dialog.IsOpen())
	assert.Zero(t, f.canvasClicks)
}

func TestDialog_Escape(t *testing.T) {
	type tc struct {
		opts       []Option
		wantClosed bool
	}

	tests := map[string]tc{
		"dismissible": {opts: []Option{WithDismissible()}, wantClosed: true},
		"modal":       {opts: nil, wantClosed: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newDialogFixture(t, tt.opts...)
			f.key(KeyEscape, ModNone)
			assert.Equal(t, tt.wantClosed, !f.dialog.IsOpen())
		})
	}
}

func TestDialog_TabStaysInside(t *testing.T) {
	f := newDialogFixture(t)
	buttons := []Node{f.dialog.Buttons()[0], f.dialog.Buttons()[1]}
	assert.Equal(t, buttons, f.s.Selectables())

	var seen []Node
	for range 3 {
		f.key(KeyTab, ModNone)
		seen = append(seen, f.s.Selected())
	}
	assert.Equal(t, []Node{buttons[0], buttons[1], buttons[0]}, seen)

	f.key(KeyEnter, ModNone)
	assert.Equal(t, []DialogResult{{Button: 0, Label: "Discard"}}, f.results)
	f.frame()
	assert.Contains(t, f.s.Selectables(), Node(f.other))
}

func TestDialog_CloseOnce(t *testing.T) {
	f := newDialogFixture(t)

	f.dialog.Close(f.s, DialogResult{Button: 0, Label: "Discard"})
	f.dialog.Close(f.s, DialogResult{Button: 1, Label: "Cancel"})
	f.frame()

	assert.Len(t, f.results, 1)
	_, ok := receive(t, f.dialog.Done())
	assert.True(t, ok)
	_, ok = receive(t, f.dialog.Done())
	assert.False(t, ok)
	assert.Nil(t, f.dialog.Parent())
}

func TestDialog_StacksAboveAnotherDialog(t *testing.T) {
	f := newDialogFixture(t)
	second := NewDialog("Really?", nil, []string{"Yes"})
	second.Show(f.s)
	f.frame()

	assert.Greater(t, second.Layer(), f.dialog.Layer())
	assert.Equal(t, []Node{second.Buttons()[0]}, f.s.Selectables())
}

func TestDialog_CoversContentInTheFrameItOpens(t *testing.T) {
	var activations int
	under := NewButton("Under", func() { activations++ })
	h := newHarness(t, NewRoot(WithChildren(under)), V2(300, 200), WithTheme(flatTheme()))
	h.move(centre(under))

	d := NewDialog("Busy", nil, []string{"OK"})
	d.Show(h.s)
	h.down(MouseLeft)
	h.up(MouseLeft)

	assert.True(t, d.IsOpen())
	assert.Zero(t, activations)
	assert.NotEqual(t, Node(under), h.s.Selected())
}

func TestDialog_ShowAgainAfterClose(t *testing.T) {
	f := newDialogFixture(t)
	first := f.dialog.Done()

	f.clickOn(f.dialog.Buttons()[1])
	require.False(t, f.dialog.IsOpen())
	require.Nil(t, f.dialog.Parent())

	f.dialog.Show(f.s)
	f.frame()
	assert.True(t, f.dialog.IsOpen())
	assert.Same(t, &f.s.Root().Container, f.dialog.Parent())

	f.clickOn(f.dialog.Buttons()[0])
	assert.Equal(t, []DialogResult{
		{Button: 1, Label: "Cancel"},
		{Button: 0, Label: "Discard"},
	}, f.results)

	got, ok := receive(t, f.dialog.Done())
	require.True(t, ok)
	assert.Equal(t, DialogResult{Button: 0, Label: "Discard"}, got)
	got, ok = receive(t, first)
	require.True(t, ok)
	assert.Equal(t, DialogResult{Button: 1, Label: "Cancel"}, got)
}

func TestDialog_ShowWhileOpenIsIgnored(t *testing.T) {
	f := newDialogFixture(t)
	layer := f.dialog.Layer()

	f.dialog.Show(f.s)
	f.frame()
	assert.Equal(t, layer, f.dialog.Layer())
	assert.Len(t, f.s.Root().Children(), 4)
}
