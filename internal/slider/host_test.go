package slider

import (
	"fmt"
	"time"
)

// fakeHost is an in-memory surface that records what the slider sets.
type fakeHost struct {
	container float64
	extents   []float64
	heights   []int

	offset       float64
	offsetAxis   Axis
	window       float64
	items        map[int]float64
	leading      []int
	trailing     []int
	clonePercent float64
	dots         []bool
	disabled     map[Button]bool
	height       int
	transition   bool
	speed        time.Duration
	calls        []string
}

func newFakeHost(container float64, extents ...float64) *fakeHost {
	return &fakeHost{
		container: container,
		extents:   extents,
		items:     make(map[int]float64),
		disabled:  make(map[Button]bool),
	}
}

func uniformHost(container float64, n int) *fakeHost {
	return newFakeHost(container, make([]float64, n)...)
}

func (h *fakeHost) SetOffset(axis Axis, percent float64) {
	h.offsetAxis = axis
	h.offset = percent
	h.calls = append(h.calls, fmt.Sprintf("offset(%g,transition=%t)", percent, h.transition))
}

func (h *fakeHost) SetWindowExtent(percent float64) { h.window = percent }

func (h *fakeHost) SetItemExtent(index int, percent float64) { h.items[index] = percent }

func (h *fakeHost) SetClones(leading, trailing []int, percent float64) {
	h.leading, h.trailing, h.clonePercent = leading, trailing, percent
}

func (h *fakeHost) SetIndicators(count, active int) {
	h.dots = make([]bool, count)
	if active >= 0 && active < count {
		h.dots[active] = true
	}
}

func (h *fakeHost) SetIndicatorActive(index int, active bool) {
	if index >= 0 && index < len(h.dots) {
		h.dots[index] = active
	}
}

func (h *fakeHost) SetButtonDisabled(button Button, disabled bool) {
	h.disabled[button] = disabled
}

func (h *fakeHost) SetHeight(cells int) { h.height = cells }

func (h *fakeHost) SetTransition(enabled bool, speed time.Duration) {
	h.transition, h.speed = enabled, speed
}

func (h *fakeHost) ContainerExtent(Axis) float64 { return h.container }

func (h *fakeHost) ItemExtents(Axis) []float64 { return h.extents }

func (h *fakeHost) ItemHeight(index int) int {
	if index < len(h.heights) {
		return h.heights[index]
	}
	return 0
}

func (h *fakeHost) activeDots() []int {
	var out []int
	for i, on := range h.dots {
		if on {
			out = append(out, i)
		}
	}
	return out
}
