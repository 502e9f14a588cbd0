package main

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	ui "github.com/grindlemire/go-ui"
)

// rasterize paints a draw list onto a new w x h image. Items arrive in
// painting order, so each one is simply drawn over the previous ones.
func rasterize(items []ui.DrawItem, w, h int, faces ui.FaceProvider) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range items {
		paintItem(dst, &items[i], faces)
	}
	return dst
}

func paintItem(dst *image.RGBA, it *ui.DrawItem, faces ui.FaceProvider) {
	clip := pixelRect(it.Clip).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	box := pixelRect(it.Rect())
	st := it.Style

	if st.Background.Visible() {
		fill(dst, clip, box, shapeMask{box: box, shape: st.Shape, radius: st.Radius}, st.Background)
	}
	if it.Image != nil {
		r := box.Intersect(clip)
		if !r.Empty() {
			draw.ApproxBiLinear.Scale(dst.SubImage(clip).(*image.RGBA), box, it.Image, it.Image.Bounds(), draw.Over, nil)
		}
	}
	if it.Text != "" {
		drawText(dst, clip, it, faces)
	}
	if it.Caret != nil {
		fill(dst, clip, pixelRect(*it.Caret), nil, it.TextColor)
	}
	if st.Outline.Visible() && st.OutlineWeight > 0 {
		ring := ringMask{
			outer: shapeMask{box: box, shape: st.Shape, radius: st.Radius},
			inner: shapeMask{box: box.Inset(int(math32.Ceil(st.OutlineWeight))), shape: st.Shape, radius: st.Radius},
		}
		fill(dst, clip, box, ring, st.Outline)
	}
}

// pixelRect snaps r outward to whole pixels.
func pixelRect(r ui.Rect) image.Rectangle {
	m := r.Max()
	return image.Rect(
		int(math32.Floor(r.Pos.X)), int(math32.Floor(r.Pos.Y)),
		int(math32.Ceil(m.X)), int(math32.Ceil(m.Y)),
	)
}

// fill composites p over dst inside box, limited to clip and mask. A nil
// mask fills the whole box.
func fill(dst *image.RGBA, clip, box image.Rectangle, mask image.Image, p ui.Paint) {
	r := box.Intersect(clip)
	if r.Empty() {
		return
	}
	var src image.Image
	switch p.Kind {
	case ui.PaintChecker:
		src = checker{a: nrgba(p.Color), b: nrgba(p.Alt), cell: max(1, int(p.Cell))}
	default:
		src = image.NewUniform(nrgba(p.Color))
	}
	if mask == nil {
		draw.Draw(dst, r, src, r.Min, draw.Over)
		return
	}
	draw.DrawMask(dst, r, src, r.Min, mask, r.Min, draw.Over)
}

// nrgba reinterprets a straight alpha colour for compositing.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

func drawText(dst *image.RGBA, clip image.Rectangle, it *ui.DrawItem, faces ui.FaceProvider) {
	// A scaled bitmap fallback face is drawn at its own size.
	face, _ := faces.Face(it.FontSize)
	ascent := face.Metrics().Ascent
	d := font.Drawer{
		Dst:  dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(nrgba(it.TextColor.Color)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(it.TextPos.X * 64),
			Y: fixed.Int26_6(it.TextPos.Y*64) + ascent,
		},
	}
	d.DrawString(it.Text)
}

// checker is an infinite two-colour checkerboard.
type checker struct {
	a, b color.NRGBA
	cell int
}

func (c checker) ColorModel() color.Model { return color.NRGBAModel }
func (c checker) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (c checker) At(x, y int) color.Color {
	if (floorDiv(x, c.cell)+floorDiv(y, c.cell))%2 == 0 {
		return c.a
	}
	return c.b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// shapeMask is opaque inside a box of the given shape.
type shapeMask struct {
	box    image.Rectangle
	shape  ui.Shape
	radius float32
}

func (m shapeMask) ColorModel() color.Model { return color.AlphaModel }
func (m shapeMask) Bounds() image.Rectangle { return m.box }

func (m shapeMask) At(x, y int) color.Color {
	if m.contains(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func (m shapeMask) contains(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(m.box) {
		return false
	}
	// Sample at the pixel centre.
	px, py := float32(x)+0.5, float32(y)+0.5
	x0, y0 := float32(m.box.Min.X), float32(m.box.Min.Y)
	x1, y1 := float32(m.box.Max.X), float32(m.box.Max.Y)

	switch m.shape {
	case ui.ShapeEllipse:
		rx, ry := (x1-x0)/2, (y1-y0)/2
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx, dy := (px-x0-rx)/rx, (py-y0-ry)/ry
		return dx*dx+dy*dy <= 1
	case ui.ShapeRounded:
		r := math32.Min(m.radius, math32.Min(x1-x0, y1-y0)/2)
		if r <= 0 {
			return true
		}
		cx := math32.Max(x0+r, math32.Min(px, x1-r))
		cy := math32.Max(y0+r, math32.Min(py, y1-r))
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r*r
	default:
		return true
	}
}

// ringMask is opaque inside outer and outside inner.
type ringMask struct {
	outer, inner shapeMask
}

func (m ringMask) ColorModel() color.Model { return color.AlphaModel }
func (m ringMask) Bounds() image.Rectangle { return m.outer.box }

func (m ringMask) At(x, y int) color.Color {
	if m.outer.contains(x, y) && !m.inner.contains(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
