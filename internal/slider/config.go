// Package slider implements the position engine behind a carousel: layout
// geometry, position transitions, drag gestures, autoplay and the
// synchronization of all of it onto an external rendering surface.
package slider

import (
	"fmt"
	"time"
)

// Axis is the direction items are laid out and translated along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the config spelling of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: unknown axis %q", ErrConfiguration, s)
}

// Config is the immutable slider configuration.
type Config struct {
	Axis         Axis
	VisibleItems int     // items that fit the viewport at once
	CountSwipe   int     // positions moved by Next/Prev
	Gutter       int     // spacing rendered inside each item
	FixedWidth   float64 // 0 means unset
	AutoWidth    bool
	StartIndex   int // 1-based
	Speed        time.Duration
	Autoplay     time.Duration // autoplay interval

	HasControls         bool
	HasDots             bool
	IsLoop              bool
	IsAutoplay          bool
	IsHoverPause        bool
	IsRewind            bool
	IsAutoHeight        bool
	IsMouseDrag         bool
	IsActiveSlideCenter bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Axis:         Horizontal,
		VisibleItems: 1,
		CountSwipe:   1,
		StartIndex:   1,
		Speed:        400 * time.Millisecond,
		Autoplay:     5000 * time.Millisecond,
		HasControls:  true,
		HasDots:      true,
		IsHoverPause: true,
		IsMouseDrag:  true,
	}
}

// Override holds caller-supplied values. Nil fields keep the default.
type Override struct {
	Axis         *Axis
	VisibleItems *int
	CountSwipe   *int
	Gutter       *int
	FixedWidth   *float64
	AutoWidth    *bool
	StartIndex   *int
	Speed        *time.Duration
	Autoplay     *time.Duration

	HasControls         *bool
	HasDots             *bool
	IsLoop              *bool
	IsAutoplay          *bool
	IsHoverPause        *bool
	IsRewind            *bool
	IsAutoHeight        *bool
	IsMouseDrag         *bool
	IsActiveSlideCenter *bool
}

// Merge returns c with every non-nil field of o applied.
func (c Config) Merge(o Override) Config {
	set(&c.Axis, o.Axis)
	set(&c.VisibleItems, o.VisibleItems)
	set(&c.CountSwipe, o.CountSwipe)
	set(&c.Gutter, o.Gutter)
	set(&c.FixedWidth, o.FixedWidth)
	set(&c.AutoWidth, o.AutoWidth)
	set(&c.StartIndex, o.StartIndex)
	set(&c.Speed, o.Speed)
	set(&c.Autoplay, o.Autoplay)
	set(&c.HasControls, o.HasControls)
	set(&c.HasDots, o.HasDots)
	set(&c.IsLoop, o.IsLoop)
	set(&c.IsAutoplay, o.IsAutoplay)
	set(&c.IsHoverPause, o.IsHoverPause)
	set(&c.IsRewind, o.IsRewind)
	set(&c.IsAutoHeight, o.IsAutoHeight)
	set(&c.IsMouseDrag, o.IsMouseDrag)
	set(&c.IsActiveSlideCenter, o.IsActiveSlideCenter)
	return c
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	switch {
	case c.Axis != Horizontal && c.Axis != Vertical:
		return fmt.Errorf("%w: invalid axis %d", ErrConfiguration, c.Axis)
	case c.VisibleItems < 1:
		return fmt.Errorf("%w: visible_items must be >= 1, got %d", ErrConfiguration, c.VisibleItems)
	case c.CountSwipe < 1:
		return fmt.Errorf("%w: count_swipe must be >= 1, got %d", ErrConfiguration, c.CountSwipe)
	case c.StartIndex < 1:
		return fmt.Errorf("%w: start_index is 1-based, got %d", ErrConfiguration, c.StartIndex)
	case c.Gutter < 0:
		return fmt.Errorf("%w: gutter must be >= 0, got %d", ErrConfiguration, c.Gutter)
	case c.FixedWidth < 0:
		return fmt.Errorf("%w: fixed_width must be >= 0, got %g", ErrConfiguration, c.FixedWidth)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed must be >= 0, got %v", ErrConfiguration, c.Speed)
	case c.IsAutoplay && c.Autoplay <= 0:
		return fmt.Errorf("%w: autoplay_timeout must be > 0, got %v", ErrConfiguration, c.Autoplay)
	}
	return nil
}

// wraps reports whether out-of-range proposals wrap instead of clamping.
func (c Config) wraps() bool {
	return c.IsLoop || c.IsRewind
}
