package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSelectableTree builds n selectable boxes nested at different depths,
// plus non-selectable filler, and returns them in pre-order.
func newSelectableTree(n int) (*Root, []Node) {
	var want []Node
	root := NewRoot()
	group := NewContainer(Vertical)
	for i := range n {
		e := NewElement(WithSize(20, 10), WithSelectable())
		want = append(want, e)
		if i%2 == 0 {
			root.Add(e)
		} else {
			group.Add(e)
		}
		root.Add(NewElement(WithSize(5, 5)))
	}
	root.Add(group)

	// Pre-order puts the grouped ones last.
	var ordered []Node
	for i, e := range want {
		if i%2 == 0 {
			ordered = append(ordered, e)
		}
	}
	for i, e := range want {
		if i%2 == 1 {
			ordered = append(ordered, e)
		}
	}
	return root, ordered
}

func TestFocus_TabFromNothing(t *testing.T) {
	type tc struct {
		mod  Modifier
		want func(list []Node) Node
	}

	tests := map[string]tc{
		"tab selects first":      {mod: ModNone, want: func(l []Node) Node { return l[0] }},
		"shift tab selects last": {mod: ModShift, want: func(l []Node) Node { return l[len(l)-1] }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, list := newSelectableTree(5)
			h := newHarness(t, root, V2(400, 300))
			require.Nil(t, h.s.Selected())

			h.key(KeyTab, tt.mod)
			assert.Equal(t, tt.want(list), h.s.Selected())
			assert.True(t, tt.want(list).AsElement().IsSelected())
		})
	}
}

func TestFocus_TabThenShiftTab(t *testing.T) {
	root, list := newSelectableTree(4)
	h := newHarness(t, root, V2(400, 300))

	h.key(KeyTab, ModNone)
	require.Equal(t, list[0], h.s.Selected())
	h.key(KeyTab, ModShift)
	assert.Equal(t, list[len(list)-1], h.s.Selected())
}

func TestFocus_CycleVisitsEachOnce(t *testing.T) {
	type tc struct {
		n   int
		mod Modifier
	}

	tests := map[string]tc{
		"forward over one":   {n: 1, mod: ModNone},
		"forward over five":  {n: 5, mod: ModNone},
		"backward over two":  {n: 2, mod: ModShift},
		"backward over five": {n: 5, mod: ModShift},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, list := newSelectableTree(tt.n)
			h := newHarness(t, root, V2(400, 300))
			assert.Equal(t, list, h.s.Selectables())

			seen := map[Node]int{}
			var order []Node
			for range tt.n {
				h.key(KeyTab, tt.mod)
				seen[h.s.Selected()]++
				order = append(order, h.s.Selected())
			}
			assert.Len(t, seen, tt.n)
			for n, count := range seen {
				assert.Equal(t, 1, count, describe(n))
			}

			if tt.mod == ModNone {
				assert.Equal(t, list, order)
			} else {
				for i, n := range order {
					assert.Equal(t, list[tt.n-1-i], n)
				}
			}

			// One more wraps around to where the cycle started.
			h.key(KeyTab, tt.mod)
			assert.Equal(t, order[0], h.s.Selected())
		})
	}
}

func TestFocus_TabSkipsHidden(t *testing.T) {
	visible := true
	a := NewElement(WithSize(10, 10), WithSelectable())
	b := NewElement(WithSize(10, 10), WithSelectable(), WithVisible(func() bool { return visible }))
	c := NewElement(WithSize(10, 10), WithSelectable())
	h := newHarness(t, NewRoot(WithChildren(a, b, c)), V2(100, 100))

	visible = false
	h.frame()
	h.key(KeyTab, ModNone)
	h.key(KeyTab, ModNone)
	assert.Equal(t, Node(c), h.s.Selected())
}

func TestFocus_HiddenSelectionIsCleared(t *testing.T) {
	visible := true
	a := NewElement(WithSize(10, 10), WithSelectable(), WithVisible(func() bool { return visible }))
	h := newHarness(t, NewRoot(WithChildren(a)), V2(100, 100))

	h.s.Select(a)
	require.True(t, a.IsSelected())

	visible = false
	h.frame()
	assert.Nil(t, h.s.Selected())
	assert.False(t, a.IsSelected())
}

func TestFocus_EscapeClears(t *testing.T) {
	a := NewElement(WithSize(10, 10), WithSelectable())
	h := newHarness(t, NewRoot(WithChildren(a)), V2(100, 100))

	h.key(KeyTab, ModNone)
	require.Equal(t, Node(a), h.s.Selected())
	h.key(KeyEscape, ModNone)
	assert.Nil(t, h.s.Selected())
}

func TestFocus_ClickSelectsNearestSelectableAncestor(t *testing.T) {
	inner := NewElement(WithSize(10, 10))
	box := NewContainer(Horizontal, WithSelectable(), WithChildren(inner))
	other := NewElement(WithSize(10, 10))
	h := newHarness(t, NewRoot(WithChildren(box, other)), V2(100, 100), WithTheme(flatTheme()))

	h.clickOn(inner)
	assert.Equal(t, Node(box), h.s.Selected())

	h.clickOn(other)
	assert.Nil(t, h.s.Selected())
}

type listeningBox struct {
	Element
	events []string
}

func (l *listeningBox) Selected(*State)   { l.events = append(l.events, "selected") }
func (l *listeningBox) Deselected(*State) { l.events = append(l.events, "deselected") }

func TestFocus_SelectionListener(t *testing.T) {
	l := &listeningBox{}
	l.init(l)
	l.SetFixedSize(V2(10, 10))
	l.SetSelectable(true)
	h := newHarness(t, NewRoot(WithChildren(l)), V2(100, 100))

	h.key(KeyTab, ModNone)
	h.key(KeyEscape, ModNone)
	assert.Equal(t, []string{"selected", "deselected"}, l.events)
}
