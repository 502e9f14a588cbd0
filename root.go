package ui

// Root is the unique top-level container. It is FIXED to the display size
// every frame and records the range of cumulative layers present in the
// tree so hit testing can scan them from the top.
type Root struct {
	Container

	minLayer int
	maxLayer int
}

// NewRoot creates the top-level container. Children are stacked
// vertically with no margin or padding unless options say otherwise.
func NewRoot(opts ...Option) *Root {
	r := &Root{}
	r.initContainer(r, Vertical)
	r.marginScale = 0
	r.paddingScale = 0
	r.sizeType = [2]SizeType{Fixed, Fixed}
	applyOptions(r, opts)
	return r
}

// LayerRange returns the lowest and highest cumulative layers seen in the
// last visibility pass.
func (r *Root) LayerRange() (lo, hi int) {
	return r.minLayer, r.maxLayer
}
