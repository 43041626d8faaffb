// Package animate interpolates a single numeric value over time, one frame
// at a time, through Bubble Tea tick commands.
package animate

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the delay between two animation frames (60 fps).
const FrameInterval = time.Second / 60

// EaseInOutExpo maps elapsed time t over duration d onto [0, 1]: it
// accelerates exponentially through the first half and decelerates
// symmetrically through the second.
func EaseInOutExpo(t, d time.Duration) float64 {
	if t <= 0 {
		return 0
	}
	if d <= 0 || t >= d {
		return 1
	}
	x := float64(t) / (float64(d) / 2)
	if x < 1 {
		return math.Pow(2, 10*(x-1)) / 2
	}
	return (2 - math.Pow(2, -10*(x-1))) / 2
}

// FrameMsg is delivered once per frame to the animation with the same ID.
type FrameMsg struct {
	ID   uint64
	Time time.Time
}

var lastID atomic.Uint64

// Animation drives Draw from From to To over Duration. It has no
// cancellation: a caller that wants to replace an animation starts a new
// one and drops the old one, whose frames then match no animation.
type Animation struct {
	From     float64
	To       float64
	Duration time.Duration
	Draw     func(value float64)

	id      uint64
	start   time.Time
	skip    int
	running bool
}

// New creates an animation with a fresh ID.
func New(from, to float64, duration time.Duration, draw func(float64)) *Animation {
	return &Animation{
		From:     from,
		To:       to,
		Duration: duration,
		Draw:     draw,
		id:       lastID.Add(1),
	}
}

// ID identifies the frames of this animation.
func (a *Animation) ID() uint64 {
	return a.id
}

// Running reports whether frames are still being scheduled.
func (a *Animation) Running() bool {
	return a.running
}

// Value returns the interpolated value after elapsed time.
func (a *Animation) Value(elapsed time.Duration) float64 {
	return a.From + (a.To-a.From)*EaseInOutExpo(elapsed, a.Duration)
}

// Start records the start time and schedules the first frame. Drawing
// begins one frame later so the first paint has settled.
func (a *Animation) Start() tea.Cmd {
	a.start = time.Now()
	a.skip = 1
	a.running = true
	return a.frame()
}

// Update handles a frame of this animation and returns the command for
// the next one, or nil once the end value has been drawn. Messages for
// other animations are ignored.
func (a *Animation) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.ID != a.id || !a.running {
		return nil
	}
	if a.skip > 0 {
		a.skip--
		return a.frame()
	}

	elapsed := f.Time.Sub(a.start)
	if a.Draw != nil {
		a.Draw(a.Value(elapsed))
	}
	if elapsed >= a.Duration {
		a.running = false
		return nil
	}
	return a.frame()
}

func (a *Animation) frame() tea.Cmd {
	id := a.id
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}
