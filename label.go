package ui

import "image"

var (
	_ Node = (*Label)(nil)
	_ Node = (*Image)(nil)
)

// labelNode is implemented by nodes that render a line of text.
type labelNode interface {
	AsLabel() *Label
}

// Label is a single line of text sized by the text measurer.
type Label struct {
	Element

	text      func() string
	fontSize  float32 // 0 = theme default
	textColor func() Paint
}

// NewLabel creates a label showing text.
func NewLabel(text string, opts ...Option) *Label {
	l := &Label{}
	l.init(l)
	l.SetText(text)
	applyOptions(l, opts)
	return l
}

// AsLabel returns l.
func (l *Label) AsLabel() *Label {
	return l
}

// Text returns the current text.
func (l *Label) Text() string {
	if l.text == nil {
		return ""
	}
	return l.text()
}

// SetText replaces the text.
func (l *Label) SetText(text string) {
	l.text = func() string { return text }
}

// SetTextFunc makes the label show whatever fn returns each frame.
func (l *Label) SetTextFunc(fn func() string) {
	l.text = fn
}

// FontSize returns the size the label is measured and drawn at.
func (l *Label) FontSize(s *State) float32 {
	if l.fontSize > 0 {
		return l.fontSize
	}
	return s.theme.FontSize
}

// SetFontSize overrides the theme font size. Zero restores it.
func (l *Label) SetFontSize(size float32) {
	l.fontSize = max(0, size)
}

// SetTextColor sets the text colour supplier. Nil uses the theme text
// colour.
func (l *Label) SetTextColor(fn func() Paint) {
	l.textColor = fn
}

// NaturalSize is the measured width of the text by one line height.
func (l *Label) NaturalSize(s *State) Vec2 {
	size := l.FontSize(s)
	return V2(s.measurer.Width(l.Text(), size), s.measurer.LineHeight(size))
}

func (l *Label) draw(s *State, item *DrawItem) {
	item.Text = l.Text()
	item.FontSize = l.FontSize(s)
	item.TextPos = l.pos
	item.TextColor = l.textPaint(s)
}

func (l *Label) textPaint(s *State) Paint {
	if l.textColor == nil {
		return ThemeColor(RoleText).Resolve(s.theme)
	}
	return l.textColor().Resolve(s.theme)
}

// WithFontSize overrides the font size of a label.
func WithFontSize(size float32) Option {
	return func(n Node) {
		ln, ok := n.(labelNode)
		if !ok {
			panic("ui: WithFontSize applied to non-label node")
		}
		ln.AsLabel().SetFontSize(size)
	}
}

// WithTextColor sets a constant text colour on a label.
func WithTextColor(p Paint) Option {
	return func(n Node) {
		ln, ok := n.(labelNode)
		if !ok {
			panic("ui: WithTextColor applied to non-label node")
		}
		ln.AsLabel().SetTextColor(Const(p))
	}
}

// Image is a leaf showing a bitmap at its natural size times a scale.
type Image struct {
	Element

	img   image.Image
	scale float32
}

// NewImage creates an image leaf. A nil image has zero natural size.
func NewImage(img image.Image, opts ...Option) *Image {
	im := &Image{img: img, scale: 1}
	im.init(im)
	applyOptions(im, opts)
	return im
}

// Image returns the bitmap.
func (im *Image) Image() image.Image {
	return im.img
}

// SetImage replaces the bitmap.
func (im *Image) SetImage(img image.Image) {
	im.img = img
}

// SetScale sets the display scale. Non-positive values are ignored.
func (im *Image) SetScale(scale float32) {
	if scale > 0 {
		im.scale = scale
	}
}

// NaturalSize is the bitmap size times the scale.
func (im *Image) NaturalSize(*State) Vec2 {
	if im.img == nil {
		return Vec2{}
	}
	b := im.img.Bounds()
	return V2(float32(b.Dx()), float32(b.Dy())).Scale(im.scale)
}

func (im *Image) draw(_ *State, item *DrawItem) {
	item.Image = im.img
}

// NewSpacer creates an empty leaf that takes leftover space on both axes.
func NewSpacer(opts ...Option) *Element {
	return NewElement(append([]Option{WithFill(), WithName("spacer")}, opts...)...)
}
