package slider

import (
	"fmt"
	"math"
)

// GeometryOptions selects how item extents are derived.
type GeometryOptions struct {
	AutoWidth    bool
	VisibleItems int     // 0 is treated as 1
	FixedWidth   float64 // overrides container/VisibleItems when > 0
}

// Geometry is the layout of the scrollable window. Extents are in host
// units (pixels, terminal cells); shares and percents are 0..100.
type Geometry struct {
	Container     float64
	Total         float64
	WindowPercent float64 // window size relative to the container
	Extents       []float64
	Shares        []float64 // Extents[i] as a percent of Total
}

// ComputeGeometry derives the window geometry from the container extent and
// the natural item extents. Natural extents are only read when
// opts.AutoWidth is set; otherwise only their count matters.
func ComputeGeometry(container float64, items []float64, opts GeometryOptions) (Geometry, error) {
	n := len(items)
	g := Geometry{
		Container: container,
		Extents:   make([]float64, n),
		Shares:    make([]float64, n),
	}
	if n == 0 {
		return g, nil
	}
	if !(container > 0) || math.IsInf(container, 0) {
		return Geometry{}, fmt.Errorf("%w: container extent %g", ErrInvalidGeometry, container)
	}

	if opts.AutoWidth {
		for i, e := range items {
			if !(e >= 0) || math.IsInf(e, 0) {
				return Geometry{}, fmt.Errorf("%w: item %d extent %g", ErrInvalidGeometry, i, e)
			}
			g.Extents[i] = e
		}
	} else {
		each := container / float64(max(opts.VisibleItems, 1))
		if opts.FixedWidth > 0 {
			each = opts.FixedWidth
		}
		for i := range g.Extents {
			g.Extents[i] = each
		}
	}

	for _, e := range g.Extents {
		g.Total += e
	}
	if !(g.Total > 0) {
		return Geometry{}, fmt.Errorf("%w: total extent %g for %d items", ErrInvalidGeometry, g.Total, n)
	}

	g.WindowPercent = g.Total / container * 100
	for i, e := range g.Extents {
		g.Shares[i] = e / g.Total * 100
	}
	return g, nil
}

// Len returns the number of items.
func (g Geometry) Len() int {
	return len(g.Shares)
}

// OffsetFor returns the translation percent that brings position p to the
// leading edge: the sum of the shares of all items before p.
func (g Geometry) OffsetFor(p int) float64 {
	var sum float64
	for i := 0; i < p && i < len(g.Shares); i++ {
		sum += g.Shares[i]
	}
	return sum
}

// ViewPercent is the container extent as a percent of the window.
func (g Geometry) ViewPercent() float64 {
	if g.Total == 0 {
		return 0
	}
	return g.Container / g.Total * 100
}

// CenteredOffsetFor is OffsetFor adjusted so item p sits in the middle of
// the container.
func (g Geometry) CenteredOffsetFor(p int) float64 {
	if p < 0 || p >= len(g.Shares) {
		return g.OffsetFor(p)
	}
	return g.OffsetFor(p) + g.Shares[p]/2 - g.ViewPercent()/2
}

// Share returns the share of item i, or 0 when i is out of range.
func (g Geometry) Share(i int) float64 {
	if i < 0 || i >= len(g.Shares) {
		return 0
	}
	return g.Shares[i]
}

// Extent returns the extent of item i, or 0 when i is out of range.
func (g Geometry) Extent(i int) float64 {
	if i < 0 || i >= len(g.Extents) {
		return 0
	}
	return g.Extents[i]
}

// LoopClones returns the items duplicated around the window in loop mode:
// the first visible items go after the last one and the last visible
// items go before the first one. percent is the clone strip size relative
// to the window.
func (g Geometry) LoopClones(visible int) (leading, trailing []int, percent float64) {
	n := len(g.Extents)
	visible = min(max(visible, 1), n)
	if visible == 0 {
		return nil, nil, 0
	}
	var width float64
	for i := range visible {
		trailing = append(trailing, i)
		leading = append(leading, n-visible+i)
		width += g.Extents[i] + g.Extents[n-1-i]
	}
	if width > 0 {
		percent = width / g.Total * 100
	}
	return leading, trailing, percent
}
