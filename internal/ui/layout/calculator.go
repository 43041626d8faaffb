// Package layout provides pure functions for carousel dimension calculations.
package layout

import "math"

const (
	// ButtonWidth is the width of the prev/next button columns.
	ButtonWidth = 3

	TitleHeight  = 1
	DotsHeight   = 1
	StatusHeight = 1

	// DotWidth is the space taken by one indicator, separator included.
	DotWidth = 2
)

// Rect is a cell rectangle. Zero width or height means hidden.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cell.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Opts selects the optional regions.
type Opts struct {
	Controls bool
	Dots     bool
	// Height caps the viewport height when > 0.
	Height int
}

// Regions are the areas of a carousel screen, top to bottom: title row,
// viewport flanked by buttons, indicator row, status row.
type Regions struct {
	Title    Rect
	Prev     Rect
	Viewport Rect
	Next     Rect
	Dots     Rect
	Status   Rect
}

// Compute lays out a width×height screen.
func Compute(width, height int, o Opts) Regions {
	width, height = max(width, 0), max(height, 0)

	var r Regions
	r.Title = Rect{X: 0, Y: 0, W: width, H: min(TitleHeight, height)}
	r.Status = Rect{X: 0, Y: max(height-StatusHeight, 0), W: width, H: min(StatusHeight, max(height-TitleHeight, 0))}

	vpHeight := height - TitleHeight - StatusHeight
	if o.Dots {
		vpHeight -= DotsHeight
	}
	vpHeight = max(vpHeight, 0)
	if o.Height > 0 {
		vpHeight = min(vpHeight, o.Height)
	}

	vpX, vpWidth := 0, width
	if o.Controls {
		vpX = min(ButtonWidth, width)
		vpWidth = max(width-2*ButtonWidth, 0)
		r.Prev = Rect{X: 0, Y: TitleHeight, W: vpX, H: vpHeight}
		r.Next = Rect{X: vpX + vpWidth, Y: TitleHeight, W: min(ButtonWidth, width-vpX-vpWidth), H: vpHeight}
	}
	r.Viewport = Rect{X: vpX, Y: TitleHeight, W: vpWidth, H: vpHeight}

	if o.Dots && height >= TitleHeight+StatusHeight+DotsHeight {
		r.Dots = Rect{X: 0, Y: TitleHeight + vpHeight, W: width, H: DotsHeight}
	}
	return r
}

// Widget is the area the pointer counts as "over the carousel": the
// viewport with its buttons and indicators.
func (r Regions) Widget() Rect {
	top := r.Viewport.Y
	bottom := r.Viewport.Y + r.Viewport.H
	if !r.Dots.Empty() {
		bottom = r.Dots.Y + r.Dots.H
	}
	return Rect{X: r.Title.X, Y: top, W: r.Title.W, H: bottom - top}
}

// DotsStart returns the column of the first of count centered indicators.
func DotsStart(r Rect, count int) int {
	strip := count*DotWidth - 1
	return r.X + CenterOffset(r.W, strip)
}

// DotAt returns the indicator under (x, y), or false.
func DotAt(r Rect, count, x, y int) (int, bool) {
	if count <= 0 || !r.Contains(x, y) {
		return 0, false
	}
	rel := x - DotsStart(r, count)
	if rel < 0 || rel%DotWidth != 0 {
		return 0, false
	}
	i := rel / DotWidth
	if i >= count {
		return 0, false
	}
	return i, true
}

// Span is a half-open cell range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of cells in s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Spans rounds consecutive fractional extents onto whole cells. Rounding
// the running sum keeps the spans contiguous and their total within one
// cell of the exact sum.
func Spans(extents []float64) []Span {
	spans := make([]Span, len(extents))
	var sum float64
	prev := 0
	for i, e := range extents {
		sum += e
		end := int(math.Round(sum))
		spans[i] = Span{Start: prev, End: end}
		prev = end
	}
	return spans
}

// SpanAt returns the index of the span containing cell, or -1.
func SpanAt(spans []Span, cell int) int {
	for i, s := range spans {
		if cell >= s.Start && cell < s.End {
			return i
		}
	}
	return -1
}

// CenterOffset returns the offset that centers size cells in avail.
func CenterOffset(avail, size int) int {
	return max((avail-size)/2, 0)
}
