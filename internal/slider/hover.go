package slider

import "time"

// HoverDebounce is the quiet period before a pointer position is recorded.
const HoverDebounce = 120 * time.Millisecond

type point struct {
	x, y float64
}

// Hover is a trailing-debounced record of the last pointer position. Hosts
// call Record on every pointer move, schedule Commit after HoverDebounce
// with the returned version, and only the latest version is kept.
type Hover struct {
	version   uint64
	pending   point
	committed point
	known     bool
}

// Record stores a pending position and returns its version.
func (h *Hover) Record(x, y float64) uint64 {
	h.version++
	h.pending = point{x, y}
	return h.version
}

// Commit makes the pending position current if version is still the latest.
func (h *Hover) Commit(version uint64) bool {
	if version == 0 || version != h.version {
		return false
	}
	h.committed = h.pending
	h.known = true
	return true
}

// Position returns the last committed position.
func (h *Hover) Position() (x, y float64, ok bool) {
	return h.committed.x, h.committed.y, h.known
}

// Inside reports whether the committed position satisfies contains.
func (h *Hover) Inside(contains func(x, y float64) bool) bool {
	if !h.known || contains == nil {
		return false
	}
	return contains(h.committed.x, h.committed.y)
}

// Reset forgets every position and invalidates pending commits.
func (h *Hover) Reset() {
	h.version++
	h.known = false
	h.committed = point{}
}

// Hover returns the slider's pointer tracker.
func (s *Slider) Hover() *Hover {
	return &s.hover
}

// TracksHover reports whether pointer positions matter to this slider.
func (s *Slider) TracksHover() bool {
	return !s.inert && s.cfg.IsAutoplay && s.cfg.IsHoverPause
}
