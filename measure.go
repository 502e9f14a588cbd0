package ui

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextMeasurer supplies text metrics to labels and text fields. Sizes are
// font sizes in pixels.
type TextMeasurer interface {
	// Width returns the advance width of s.
	Width(s string, size float32) float32
	// LineHeight returns the height of one line.
	LineHeight(size float32) float32
	// IndexAt returns the rune index whose caret position is closest to x,
	// measured from the start of s. The result is in [0, runes(s)].
	IndexAt(s string, size float32, x float32) int
}

// FaceProvider is implemented by measurers backed by real font faces, so a
// rasterizer can draw with the same metrics layout used. The returned scale
// maps face units to the requested size.
type FaceProvider interface {
	Face(size float32) (face font.Face, scale float32)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func measureWidth(face font.Face, s string) float32 {
	return fixedToFloat(font.MeasureString(face, s))
}

// indexAt walks the glyph advances of s and returns the caret index
// nearest to x (in face units).
func indexAt(face font.Face, s string, x float32) int {
	if x <= 0 {
		return 0
	}
	var pen fixed.Int26_6
	prev := rune(-1)
	i := 0
	for _, r := range s {
		if prev >= 0 {
			pen += face.Kern(prev, r)
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('?')
		}
		if x < fixedToFloat(pen+adv/2) {
			return i
		}
		pen += adv
		prev = r
		i++
	}
	return i
}

// FaceMeasurer measures text with a single font.Face designed for a
// nominal size, scaling linearly to other sizes.
type FaceMeasurer struct {
	face    font.Face
	nominal float32
}

var (
	_ TextMeasurer = (*FaceMeasurer)(nil)
	_ FaceProvider = (*FaceMeasurer)(nil)
)

// NewFaceMeasurer creates a measurer for face, which renders at nominal
// pixels per em.
func NewFaceMeasurer(face font.Face, nominal float32) *FaceMeasurer {
	if nominal <= 0 {
		panic(fmt.Sprintf("ui: invalid nominal font size %g", nominal))
	}
	return &FaceMeasurer{face: face, nominal: nominal}
}

// DefaultMeasurer measures with the 7x13 bitmap face from basicfont.
func DefaultMeasurer() *FaceMeasurer {
	return NewFaceMeasurer(basicfont.Face7x13, 13)
}

func (m *FaceMeasurer) scale(size float32) float32 {
	if size <= 0 {
		return 1
	}
	return size / m.nominal
}

// Face returns the underlying face and the factor from its metrics to size.
func (m *FaceMeasurer) Face(size float32) (font.Face, float32) {
	return m.face, m.scale(size)
}

// Width returns the advance width of s.
func (m *FaceMeasurer) Width(s string, size float32) float32 {
	return measureWidth(m.face, s) * m.scale(size)
}

// LineHeight returns the face's line height scaled to size.
func (m *FaceMeasurer) LineHeight(size float32) float32 {
	return fixedToFloat(m.face.Metrics().Height) * m.scale(size)
}

// IndexAt returns the caret index nearest to x.
func (m *FaceMeasurer) IndexAt(s string, size float32, x float32) int {
	return indexAt(m.face, s, x/m.scale(size))
}

// GoRegularMeasurer measures with the Go Regular TrueType font, building
// one face per requested size.
type GoRegularMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float32]font.Face
}

var (
	_ TextMeasurer = (*GoRegularMeasurer)(nil)
	_ FaceProvider = (*GoRegularMeasurer)(nil)
)

// NewGoRegularMeasurer parses the embedded Go Regular font.
func NewGoRegularMeasurer() (*GoRegularMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	return &GoRegularMeasurer{font: f, faces: make(map[float32]font.Face)}, nil
}

// Face returns a face rendering at size pixels per em. Sizes the font
// cannot be built at fall back to the basicfont face, scaled.
func (m *GoRegularMeasurer) Face(size float32) (font.Face, float32) {
	if size <= 0 {
		size = 13
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[size]; ok {
		return face, 1
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return basicfont.Face7x13, size / 13
	}
	m.faces[size] = face
	return face, 1
}

// Width returns the advance width of s.
func (m *GoRegularMeasurer) Width(s string, size float32) float32 {
	face, scale := m.Face(size)
	return measureWidth(face, s) * scale
}

// LineHeight returns the line height at size.
func (m *GoRegularMeasurer) LineHeight(size float32) float32 {
	face, scale := m.Face(size)
	return fixedToFloat(face.Metrics().Height) * scale
}

// IndexAt returns the caret index nearest to x.
func (m *GoRegularMeasurer) IndexAt(s string, size float32, x float32) int {
	face, scale := m.Face(size)
	return indexAt(face, s, x/scale)
}
