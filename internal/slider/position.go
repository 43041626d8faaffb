package slider

// Position tracks the current and previous item index within [0, count).
// It only resolves proposals; side effects belong to the Slider.
type Position struct {
	current int
	last    int
	count   int
	wrap    bool // wrap out-of-range proposals instead of clamping
}

// NewPosition creates a position over count items starting at start.
// A start outside the item range falls back to 0.
func NewPosition(count, start int, wrap bool) Position {
	if start < 0 || start >= count {
		start = 0
	}
	return Position{current: start, last: start, count: count, wrap: wrap}
}

// Current returns the current index.
func (p Position) Current() int {
	return p.current
}

// Last returns the index held before the latest transition.
func (p Position) Last() int {
	return p.last
}

// Count returns the number of items.
func (p Position) Count() int {
	return p.count
}

// Resolve maps a proposed index into range and reports whether it had to
// wrap around an end to get there.
func (p Position) Resolve(proposal int) (index int, wrapped bool) {
	if p.count <= 0 {
		return 0, false
	}
	if proposal >= 0 && proposal < p.count {
		return proposal, false
	}
	if p.wrap {
		return ((proposal % p.count) + p.count) % p.count, true
	}
	return clamp(proposal, p.count-1), false
}

// Move resolves proposal and, if it lands on a different index, records the
// transition. It returns false when nothing changed.
func (p *Position) Move(proposal int) (wrapped, moved bool) {
	index, wrapped := p.Resolve(proposal)
	if index == p.current {
		return wrapped, false
	}
	p.last = p.current
	p.current = index
	return wrapped, true
}

// SetCount changes the item count and clamps the current index into it.
func (p *Position) SetCount(count int) {
	p.count = count
	if count <= 0 {
		p.current, p.last = 0, 0
		return
	}
	p.current = clamp(p.current, count-1)
	p.last = clamp(p.last, count-1)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
