package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/animate"
	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/slider"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/render"
)

// slideFrame is the horizontal space of a slide's border and padding.
const slideFrame = 4

// host is the terminal side of the slider: it measures slides in cells and
// records what the slider asks to display.
type host struct {
	slides []deck.Slide
	axis   slider.Axis
	gutter int
	vp     layout.Rect

	offset     float64 // requested offset, percent of the window
	shown      float64 // offset currently drawn
	transition bool
	speed      time.Duration
	anim       *animate.Animation
	pending    tea.Cmd

	windowPercent     float64
	shares            []float64
	leading, trailing []int
	clonePercent      float64
	dots              []bool
	disabled          [2]bool
	height            int
}

var _ slider.Host = (*host)(nil)

func (h *host) ContainerExtent(axis slider.Axis) float64 {
	if axis == slider.Vertical {
		return float64(h.vp.H)
	}
	return float64(h.vp.W)
}

func (h *host) ItemExtents(axis slider.Axis) []float64 {
	ext := make([]float64, len(h.slides))
	for i, s := range h.slides {
		if axis == slider.Vertical {
			ext[i] = float64(slideHeight(s) + h.gutter)
		} else {
			ext[i] = float64(slideWidth(s) + h.gutter)
		}
	}
	return ext
}

func (h *host) ItemHeight(index int) int {
	if index < 0 || index >= len(h.slides) {
		return 0
	}
	return slideHeight(h.slides[index])
}

// slideWidth is the natural width of a slide box.
func slideWidth(s deck.Slide) int {
	if s.Width > 0 {
		return s.Width
	}
	return max(render.TextWidth(s.Title), render.TextWidth(s.Body)) + slideFrame
}

// slideHeight is the natural height of a slide box: borders, the title and,
// when there is a body, a blank line and the body.
func slideHeight(s deck.Slide) int {
	h := 3
	if n := render.LineCount(s.Body); n > 0 {
		h += 1 + n
	}
	return h
}

// SetOffset animates towards percent while transitions are on and jumps
// there otherwise. A new offset replaces any running animation.
func (h *host) SetOffset(_ slider.Axis, percent float64) {
	h.offset = percent
	if !h.transition || h.speed <= 0 || h.shown == percent {
		h.anim = nil
		h.shown = percent
		return
	}
	h.anim = animate.New(h.shown, percent, h.speed, func(v float64) { h.shown = v })
	h.pending = h.anim.Start()
}

func (h *host) SetWindowExtent(percent float64) {
	h.windowPercent = percent
	// Every item extent follows.
	h.shares = h.shares[:0]
}

func (h *host) SetItemExtent(index int, percent float64) {
	for len(h.shares) <= index {
		h.shares = append(h.shares, 0)
	}
	h.shares[index] = percent
}

func (h *host) SetClones(leading, trailing []int, percent float64) {
	h.leading, h.trailing, h.clonePercent = leading, trailing, percent
}

func (h *host) SetIndicators(count, active int) {
	h.dots = make([]bool, count)
	h.SetIndicatorActive(active, true)
}

func (h *host) SetIndicatorActive(index int, active bool) {
	if index >= 0 && index < len(h.dots) {
		h.dots[index] = active
	}
}

func (h *host) SetButtonDisabled(b slider.Button, disabled bool) {
	if b == slider.ButtonPrev || b == slider.ButtonNext {
		h.disabled[b] = disabled
	}
}

// SetHeight caps the viewport height. Vertical carousels scroll along the
// height, so they keep the full viewport.
func (h *host) SetHeight(cells int) {
	if h.axis == slider.Vertical {
		return
	}
	h.height = cells
}

func (h *host) SetTransition(enabled bool, speed time.Duration) {
	h.transition = enabled
	h.speed = speed
}

// takePending returns the command that starts the latest animation, once.
func (h *host) takePending() tea.Cmd {
	cmd := h.pending
	h.pending = nil
	return cmd
}

// animating reports whether an offset animation is still running.
func (h *host) animating() bool {
	return h.anim != nil && h.anim.Running()
}
