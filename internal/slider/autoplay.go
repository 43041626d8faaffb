package slider

import "time"

// TickResult tells the host what an autoplay tick did.
type TickResult int

const (
	TickAdvanced      TickResult = iota // Next was issued
	TickNoMove                          // Next was issued but the position did not change
	TickSkippedHover                    // pointer is over the widget
	TickSkippedBusy                     // a gesture is in progress
	TickSkippedPaused                   // autoplay is paused
	TickStale                           // autoplay was stopped; do not reschedule
)

// Reschedule reports whether the host should schedule the next tick.
func (r TickResult) Reschedule() bool {
	return r != TickStale
}

// autoplay holds the timer generation. Every start or stop bumps the
// generation, so ticks scheduled before are recognised as stale.
type autoplay struct {
	gen     uint64
	running bool
	paused  bool
}

func (a *autoplay) start() uint64 {
	a.gen++
	a.running = true
	return a.gen
}

func (a *autoplay) stop() {
	a.gen++
	a.running = false
}

// AutoplayInterval returns the configured tick interval.
func (s *Slider) AutoplayInterval() time.Duration {
	return s.cfg.Autoplay
}

// AutoplayGeneration returns the generation the next tick must carry, or 0
// when autoplay is not running.
func (s *Slider) AutoplayGeneration() uint64 {
	if !s.play.running {
		return 0
	}
	return s.play.gen
}

// StartAutoplay (re)starts autoplay and returns the new generation. It
// returns 0 when the slider is inert or autoplay is not configured.
func (s *Slider) StartAutoplay() uint64 {
	if s.inert || !s.cfg.IsAutoplay {
		return 0
	}
	return s.play.start()
}

// StopAutoplay invalidates every pending tick.
func (s *Slider) StopAutoplay() {
	s.play.stop()
}

// SetAutoplayPaused pauses or resumes autoplay without invalidating the
// timer: paused ticks are skipped and keep their schedule.
func (s *Slider) SetAutoplayPaused(paused bool) {
	s.play.paused = paused
}

// AutoplayPaused reports whether autoplay is paused.
func (s *Slider) AutoplayPaused() bool {
	return s.play.paused
}

// AutoplayRunning reports whether autoplay ticks are live.
func (s *Slider) AutoplayRunning() bool {
	return s.play.running && !s.inert
}

// AutoplayTick handles one autoplay interval. contains tests whether a
// point lies inside the widget; it is only consulted when hover pause is
// enabled.
func (s *Slider) AutoplayTick(gen uint64, contains func(x, y float64) bool) TickResult {
	if s.inert || !s.play.running || gen != s.play.gen {
		return TickStale
	}
	if s.play.paused {
		return TickSkippedPaused
	}
	if s.drag != nil {
		return TickSkippedBusy
	}
	if s.cfg.IsHoverPause && s.hover.Inside(contains) {
		s.log.Debug("slider autoplay skipped", "reason", "hover")
		return TickSkippedHover
	}
	if !s.Next() {
		return TickNoMove
	}
	return TickAdvanced
}
