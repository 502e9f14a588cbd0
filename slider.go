package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

var _ Node = (*Slider)(nil)

// Slider maps the horizontal position of a thumb onto a value in [lo, hi],
// optionally snapped to a step. While selected, Left and Right move it by
// one step, or a hundredth of the range without a step.
type Slider struct {
	DragContainer

	thumb    *Element
	lo, hi   float32
	step     float32
	value    float32
	onChange func(float32)
}

// NewSlider creates a slider over [lo, hi]. An empty or inverted range
// panics.
func NewSlider(lo, hi, value float32, onChange func(float32), opts ...Option) *Slider {
	if !(hi > lo) {
		panic(fmt.Sprintf("ui: invalid slider range [%g, %g]", lo, hi))
	}
	sl := &Slider{lo: lo, hi: hi, onChange: onChange}
	sl.value = clamp(value, lo, hi)

	sl.thumb = NewElement(WithName("slider-thumb"))
	sl.thumb.SetStyle(&Style{
		Background: func() Paint {
			if sl.active || sl.thumb.mouseAbove || sl.selected {
				return ThemeColor(RoleAccent)
			}
			return ThemeColor(RoleText)
		},
		Shape: ShapeEllipse,
	})

	sl.initDrag(sl, Horizontal, sl.thumb,
		func() Vec2 { return V2(sl.Fraction(), 0) },
		func(v Vec2) { sl.setFraction(v.X) },
		ScrollHorizontal,
	)
	sl.align = [2]Align{AlignStart, AlignCenter}
	sl.sizeType[Horizontal] = Fill
	sl.selectable = true
	sl.cursor = func() Cursor { return CursorResizeH }
	sl.style = &Style{
		Background: Const(ThemeColor(RoleBackground)),
		Outline:    func() Paint { return sl.outline() },
		Shape:      ShapeRounded,
		Radius:     3,
	}
	applyOptions(sl, opts)
	return sl
}

func (sl *Slider) outline() Paint {
	if sl.selected {
		return ThemeColor(RoleAccent)
	}
	return ThemeColor(RoleOutline)
}

// Value returns the current value.
func (sl *Slider) Value() float32 {
	return sl.value
}

// SetValue changes the value without running onChange.
func (sl *Slider) SetValue(v float32) {
	sl.value = sl.snap(v)
}

// Range returns the bounds.
func (sl *Slider) Range() (lo, hi float32) {
	return sl.lo, sl.hi
}

// SetStep snaps values to multiples of step above lo. Zero disables
// snapping.
func (sl *Slider) SetStep(step float32) {
	sl.step = max(0, step)
	sl.value = sl.snap(sl.value)
}

// Fraction returns the value's position in the range.
func (sl *Slider) Fraction() float32 {
	return (sl.value - sl.lo) / (sl.hi - sl.lo)
}

func (sl *Slider) setFraction(f float32) {
	sl.change(sl.lo + clamp(f, 0, 1)*(sl.hi-sl.lo))
}

func (sl *Slider) snap(v float32) float32 {
	v = clamp(finiteOr0(v), sl.lo, sl.hi)
	if sl.step > 0 {
		v = sl.lo + math32.Floor((v-sl.lo)/sl.step+0.5)*sl.step
		v = clamp(v, sl.lo, sl.hi)
	}
	return v
}

func (sl *Slider) change(v float32) {
	v = sl.snap(v)
	if v == sl.value {
		return
	}
	sl.value = v
	if sl.onChange != nil {
		sl.onChange(v)
	}
}

// Update sizes the thumb and track from the theme.
func (sl *Slider) Update(s *State) {
	th := s.theme.SliderThumb
	sl.thumb.SetFixedSize(V2(th, th))
	sl.SetFixed(Vertical, th+2*sl.Margin(s))
	sl.DragContainer.Update(s)
}

// KeyEvent nudges the value while selected.
func (sl *Slider) KeyEvent(s *State, ev KeyEvent) {
	if !sl.selected || !ev.Pressed || ev.Mod != ModNone {
		return
	}
	nudge := sl.step
	if nudge == 0 {
		nudge = (sl.hi - sl.lo) / 100
	}
	switch ev.Key {
	case KeyLeft, KeyDown:
		sl.change(sl.value - nudge)
	case KeyRight, KeyUp:
		sl.change(sl.value + nudge)
	case KeyHome:
		sl.change(sl.lo)
	case KeyEnd:
		sl.change(sl.hi)
	}
}
