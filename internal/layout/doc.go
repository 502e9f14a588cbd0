// Package layout holds the numeric core of the UI layout engine: float32
// geometry, axis and sizing enums, anchor points, and the smallest-first
// space distribution used by containers to hand out leftover room.
//
// It knows nothing about elements. The root ui package walks the element tree
// and calls into this package for the arithmetic; types are re-exported there
// for public consumption.
//
// The main entry point is [Distribute], which grows or shrinks a set of
// candidate extents by a budget without ever taking one below its minimum.
package layout
