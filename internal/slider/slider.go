package slider

import (
	"fmt"
	"log/slog"
)

// Slider owns the authoritative position of a carousel and keeps its host
// surface in sync with it. A Slider is not safe for concurrent use: the
// host delivers events one at a time.
type Slider struct {
	host   Host
	cfg    Config
	geo    Geometry
	pos    Position
	log    *slog.Logger
	inert  bool
	drag   *dragSession
	play   autoplay
	hover  Hover
	offset float64 // committed offset magnitude, in percent of the window
}

// Option configures a Slider.
type Option func(*Slider)

// WithLogger sets the logger used for transition and gesture events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Slider) {
		if l != nil {
			s.log = l
		}
	}
}

// New attaches a slider to host. A nil host yields an inert slider and no
// error. Configuration and geometry failures also yield an inert slider,
// together with the error.
func New(host Host, cfg Config, opts ...Option) (*Slider, error) {
	s := &Slider{cfg: cfg, log: slog.Default(), inert: true}
	for _, opt := range opts {
		opt(s)
	}
	if host == nil {
		return s, nil
	}
	if err := cfg.Validate(); err != nil {
		return s, err
	}

	geo, err := measure(host, cfg)
	if err != nil {
		return s, err
	}

	s.host = host
	s.geo = geo
	s.pos = NewPosition(geo.Len(), cfg.StartIndex-1, cfg.wraps())
	s.inert = false
	s.init()
	if cfg.IsAutoplay {
		s.play.start()
	}
	return s, nil
}

func measure(host Host, cfg Config) (Geometry, error) {
	items := host.ItemExtents(cfg.Axis)
	return ComputeGeometry(host.ContainerExtent(cfg.Axis), items, GeometryOptions{
		AutoWidth:    cfg.AutoWidth,
		VisibleItems: cfg.VisibleItems,
		FixedWidth:   cfg.FixedWidth,
	})
}

// Inert reports whether the slider ignores all operations.
func (s *Slider) Inert() bool {
	return s.inert
}

// Config returns the configuration the slider was built with.
func (s *Slider) Config() Config {
	return s.cfg
}

// Geometry returns the current layout.
func (s *Slider) Geometry() Geometry {
	return s.geo
}

// Current returns the zero-based current position.
func (s *Slider) Current() int {
	return s.pos.Current()
}

// Last returns the position held before the latest transition.
func (s *Slider) Last() int {
	return s.pos.Last()
}

// Count returns the number of items.
func (s *Slider) Count() int {
	return s.pos.Count()
}

// Offset returns the committed offset magnitude in percent of the window.
func (s *Slider) Offset() float64 {
	return s.offset
}

// Interacting reports whether a gesture is in progress. Navigation other
// than the gesture's own resolution is suppressed meanwhile.
func (s *Slider) Interacting() bool {
	return s.drag != nil
}

// Stops returns the number of indicator stops.
func (s *Slider) Stops() int {
	n, v := s.pos.Count(), s.cfg.VisibleItems
	if n == 0 || v < 1 {
		return n
	}
	return (n + v - 1) / v
}

// ActiveStop returns the stop containing the current position.
func (s *Slider) ActiveStop() int {
	return s.stopOf(s.pos.Current())
}

func (s *Slider) stopOf(p int) int {
	return p / max(s.cfg.VisibleItems, 1)
}

// Next advances by the configured swipe count.
func (s *Slider) Next() bool {
	return s.NextBy(s.cfg.CountSwipe)
}

// Prev goes back by the configured swipe count.
func (s *Slider) Prev() bool {
	return s.PrevBy(s.cfg.CountSwipe)
}

// NextBy advances by step positions.
func (s *Slider) NextBy(step int) bool {
	return s.GoTo(s.pos.Current() + step)
}

// PrevBy goes back by step positions.
func (s *Slider) PrevBy(step int) bool {
	return s.GoTo(s.pos.Current() - step)
}

// GoTo moves to index. Out-of-range indices wrap in loop and rewind modes
// and are clamped otherwise. It returns false when the slider did not move,
// including while a drag is in progress.
func (s *Slider) GoTo(index int) bool {
	if s.inert || s.drag != nil {
		return false
	}
	return s.goTo(index)
}

// GoToStop moves to the first item of indicator stop.
func (s *Slider) GoToStop(stop int) bool {
	return s.GoTo(stop * max(s.cfg.VisibleItems, 1))
}

func (s *Slider) goTo(index int) bool {
	from := s.pos.Current()
	wrapped, moved := s.pos.Move(index)
	if !moved {
		return false
	}
	s.sync(wrapped)
	s.log.Debug("slider transition",
		"from", from, "to", s.pos.Current(), "wrapped", wrapped, "offset", s.offset)
	return true
}

// Remeasure recomputes the geometry from the host's live measurements and
// re-renders the window. The current position is clamped when the item
// count shrank.
func (s *Slider) Remeasure() error {
	if s.inert {
		return nil
	}
	geo, err := measure(s.host, s.cfg)
	if err != nil {
		return fmt.Errorf("remeasure: %w", err)
	}
	s.CancelDrag()
	s.geo = geo
	s.pos.SetCount(geo.Len())
	s.init()
	s.log.Debug("slider remeasured", "items", geo.Len(), "total", geo.Total)
	return nil
}

// Destroy detaches the slider: autoplay and hover tracking stop, any drag is
// dropped, and every later operation is a no-op.
func (s *Slider) Destroy() {
	if s.inert {
		return
	}
	s.drag = nil
	s.play.stop()
	s.hover.Reset()
	s.inert = true
}
