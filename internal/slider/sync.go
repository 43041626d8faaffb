package slider

// init pushes the full layout to the host surface.
func (s *Slider) init() {
	h := s.host
	h.SetWindowExtent(s.geo.WindowPercent)
	for i, share := range s.geo.Shares {
		h.SetItemExtent(i, share)
	}
	if s.cfg.IsLoop && s.geo.Len() > 0 {
		h.SetClones(s.geo.LoopClones(s.cfg.VisibleItems))
	} else {
		h.SetClones(nil, nil, 0)
	}
	if s.cfg.HasDots {
		h.SetIndicators(s.Stops(), s.ActiveStop())
	}

	// The initial placement is never animated.
	h.SetTransition(false, 0)
	s.updateAutoHeight()
	s.updateButtons()
	s.applyOffset()
	h.SetTransition(true, s.cfg.Speed)
}

// sync reflects an accepted transition on the surface.
func (s *Slider) sync(wrapped bool) {
	s.updateAutoHeight()
	s.updateButtons()
	s.updateIndicators()

	// Loop mode jumps across the seam silently; the clones hide it.
	silent := wrapped && s.cfg.IsLoop
	if silent {
		s.host.SetTransition(false, 0)
	}
	s.applyOffset()
	if silent {
		s.host.SetTransition(true, s.cfg.Speed)
	}
}

func (s *Slider) targetOffset(p int) float64 {
	if s.cfg.IsActiveSlideCenter {
		return s.geo.CenteredOffsetFor(p)
	}
	return s.geo.OffsetFor(p)
}

func (s *Slider) applyOffset() {
	s.offset = s.targetOffset(s.pos.Current())
	s.setOffset(s.offset)
}

// setOffset translates the window in the negative axis direction.
// 0-magnitude keeps position 0 at +0 rather than -0.
func (s *Slider) setOffset(magnitude float64) {
	s.host.SetOffset(s.cfg.Axis, 0-magnitude)
}

func (s *Slider) updateAutoHeight() {
	if !s.cfg.IsAutoHeight || s.pos.Count() == 0 {
		return
	}
	s.host.SetHeight(s.host.ItemHeight(s.pos.Current()))
}

func (s *Slider) updateButtons() {
	if !s.cfg.HasControls {
		return
	}
	if s.cfg.wraps() {
		s.host.SetButtonDisabled(ButtonPrev, false)
		s.host.SetButtonDisabled(ButtonNext, false)
		return
	}
	cur := s.pos.Current()
	s.host.SetButtonDisabled(ButtonPrev, cur == 0)
	s.host.SetButtonDisabled(ButtonNext, cur >= s.pos.Count()-1)
}

func (s *Slider) updateIndicators() {
	if !s.cfg.HasDots {
		return
	}
	from, to := s.stopOf(s.pos.Last()), s.stopOf(s.pos.Current())
	if from == to {
		return
	}
	s.host.SetIndicatorActive(from, false)
	s.host.SetIndicatorActive(to, true)
}
