package slider

// DragResult describes how a drag session ended.
type DragResult int

const (
	DragNone      DragResult = iota // no session was active
	DragCommitted                   // the position changed
	DragSnapBack                    // the committed offset was restored
)

func (r DragResult) String() string {
	switch r {
	case DragCommitted:
		return "commit"
	case DragSnapBack:
		return "snap-back"
	}
	return "none"
}

// dragSession exists only between BeginDrag and EndDrag.
type dragSession struct {
	committed float64 // offset magnitude at drag start
	start     float64 // pointer coordinate along the axis
	item      int     // item under the pointer
	increment float64 // live offset delta, in percent of the window
}

// BeginDrag starts a gesture on item at the given pointer coordinate along
// the slider axis. It returns false when dragging is disabled, a gesture is
// already active, or item is not one of this slider's items.
func (s *Slider) BeginDrag(item int, coord float64) bool {
	if s.inert || !s.cfg.IsMouseDrag || s.drag != nil {
		return false
	}
	if item < 0 || item >= s.geo.Len() || s.geo.Extent(item) <= 0 {
		return false
	}
	s.drag = &dragSession{
		committed: s.offset,
		start:     coord,
		item:      item,
	}
	s.host.SetTransition(false, 0)
	return true
}

// Dragging reports whether a drag session is active.
func (s *Slider) Dragging() bool {
	return s.drag != nil
}

// DragIncrement returns the live increment of the active session.
func (s *Slider) DragIncrement() float64 {
	if s.drag == nil {
		return 0
	}
	return s.drag.increment
}

// DragTo updates the live preview for a pointer at coord.
func (s *Slider) DragTo(coord float64) {
	d := s.drag
	if d == nil {
		return
	}
	dist := d.start - coord
	d.increment = s.geo.Share(d.item) * (dist / s.geo.Extent(d.item))
	s.setOffset(d.committed + d.increment)
}

// EndDrag finishes the gesture. Dragging past half of the dragged item's
// share commits a move to the neighbouring item; anything less snaps back.
func (s *Slider) EndDrag() DragResult {
	d := s.drag
	if d == nil {
		return DragNone
	}
	s.drag = nil
	s.host.SetTransition(true, s.cfg.Speed)

	half := s.geo.Share(d.item) / 2
	result := DragSnapBack
	switch {
	case d.increment >= half:
		if s.goTo(d.item + 1) {
			result = DragCommitted
		}
	case d.increment <= -half:
		if s.goTo(d.item - 1) {
			result = DragCommitted
		}
	}
	if result == DragSnapBack {
		s.setOffset(d.committed)
	}
	s.log.Debug("slider drag end",
		"item", d.item, "increment", d.increment, "result", result.String())
	return result
}

// CancelDrag drops an active session and restores the committed offset.
func (s *Slider) CancelDrag() {
	d := s.drag
	if d == nil {
		return
	}
	s.drag = nil
	s.host.SetTransition(true, s.cfg.Speed)
	s.setOffset(d.committed)
}
