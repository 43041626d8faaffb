package slider

import "time"

// Button identifies a navigation control.
type Button int

const (
	ButtonPrev Button = iota
	ButtonNext
)

// Surface receives the rendering output of the slider.
type Surface interface {
	// SetOffset translates the window by percent of its own extent. The
	// slider always passes zero or a negative value for forward positions.
	SetOffset(axis Axis, percent float64)
	SetWindowExtent(percent float64)
	SetItemExtent(index int, percent float64)
	// SetClones asks for copies of the given items before and after the
	// window, used by loop mode for visual continuity.
	SetClones(leading, trailing []int, percent float64)
	SetIndicators(count, active int)
	SetIndicatorActive(index int, active bool)
	SetButtonDisabled(button Button, disabled bool)
	SetHeight(cells int)
	// SetTransition enables or disables animated offset changes.
	SetTransition(enabled bool, speed time.Duration)
}

// Measurer reports live sizes of the container and its items.
type Measurer interface {
	ContainerExtent(axis Axis) float64
	// ItemExtents returns the natural extent of every item, in order.
	ItemExtents(axis Axis) []float64
	ItemHeight(index int) int
}

// Host is the rendering environment a slider is attached to.
type Host interface {
	Surface
	Measurer
}
