// Package carousel is the terminal carousel component: it hosts a slider,
// renders the deck through it and turns keys, mouse and timers into slider
// operations.
package carousel

import (
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/animate"
	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/slider"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// hoverMsg commits a debounced pointer position.
type hoverMsg struct {
	version uint64
}

// autoplayMsg is one autoplay interval of a given timer generation.
type autoplayMsg struct {
	gen uint64
}

// Model is the carousel component. Copies share the same slider.
type Model struct {
	cfg    slider.Config
	title  string
	host   *host
	slider *slider.Slider
	keys   *keymap.Resolver
	log    *slog.Logger

	width, height int
	status        string
	err           error
}

// New creates a carousel over the slides of d. The slider is attached on
// the first window size, when the viewport can be measured.
func New(cfg slider.Config, d *deck.Deck, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := Model{
		cfg:  cfg,
		host: &host{axis: cfg.Axis, gutter: cfg.Gutter, transition: true},
		keys: keymap.NewResolver(keymap.Bindings),
		log:  log,
	}
	if d != nil {
		m.title = d.Title
		m.host.slides = d.Slides
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Slider returns the attached slider, or nil before the first layout.
func (m Model) Slider() *slider.Slider {
	return m.slider
}

// Err returns the last layout error, cleared by the next successful one.
func (m Model) Err() error {
	return m.err
}

// Title returns the deck title.
func (m Model) Title() string {
	return m.title
}

// SetStatus sets the text of the status row.
func (m *Model) SetStatus(s string) {
	m.status = s
}

// SetDeck replaces the slides and re-measures. The current position is
// kept, clamped to the new slide count.
func (m *Model) SetDeck(d *deck.Deck) tea.Cmd {
	m.title = d.Title
	m.host.slides = d.Slides
	return m.layoutSlider()
}

// CancelGesture drops an unfinished drag and snaps back to the committed
// offset. Used when something else takes the pointer mid-gesture.
func (m *Model) CancelGesture() tea.Cmd {
	if m.slider == nil || !m.slider.Dragging() {
		return nil
	}
	m.slider.CancelDrag()
	return m.host.takePending()
}

// Close stops the slider's timers and gestures.
func (m *Model) Close() {
	if m.slider != nil {
		m.slider.Destroy()
	}
}

// Update handles input, timers and animation frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case animate.FrameMsg:
		if m.host.anim != nil {
			return m, m.host.anim.Update(msg)
		}
	case hoverMsg:
		if m.slider != nil {
			m.slider.Hover().Commit(msg.version)
		}
	case autoplayMsg:
		return m, m.handleAutoplay(msg)
	}
	return m, nil
}

func (m *Model) regions() layout.Regions {
	return layout.Compute(m.width, m.height, layout.Opts{
		Controls: m.cfg.HasControls,
		Dots:     m.cfg.HasDots,
		Height:   m.host.height,
	})
}

func (m *Model) resize(width, height int) tea.Cmd {
	m.width, m.height = width, height
	m.host.vp = m.regions().Viewport
	return m.layoutSlider()
}

// layoutSlider attaches the slider when there is none yet (or the last
// attempt failed) and re-measures it otherwise.
func (m *Model) layoutSlider() tea.Cmd {
	if m.slider == nil || m.slider.Inert() {
		s, err := slider.New(m.host, m.cfg, slider.WithLogger(m.log))
		m.slider = s
		m.err = err
		if err != nil {
			m.log.Warn("slider setup failed", "err", err, "viewport", m.host.vp)
			return nil
		}
		return tea.Batch(m.host.takePending(), m.autoplayCmd(m.slider.AutoplayGeneration()))
	}

	if err := m.slider.Remeasure(); err != nil {
		m.err = err
		m.log.Warn("slider remeasure failed", "err", err, "viewport", m.host.vp)
		return nil
	}
	m.err = nil
	return m.host.takePending()
}

func (m *Model) autoplayCmd(gen uint64) tea.Cmd {
	if gen == 0 {
		return nil
	}
	return tea.Tick(m.slider.AutoplayInterval(), func(time.Time) tea.Msg {
		return autoplayMsg{gen: gen}
	})
}

func (m *Model) handleAutoplay(msg autoplayMsg) tea.Cmd {
	if m.slider == nil {
		return nil
	}
	res := m.slider.AutoplayTick(msg.gen, m.pointerInside)
	if !res.Reschedule() {
		return nil
	}
	return tea.Batch(m.host.takePending(), m.autoplayCmd(msg.gen))
}

func (m *Model) pointerInside(x, y float64) bool {
	return m.regions().Widget().Contains(int(x), int(y))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.slider
	if s == nil {
		return nil
	}
	switch m.keys.ResolveMsg(msg) {
	case keymap.ActionPrev:
		s.Prev()
	case keymap.ActionNext:
		s.Next()
	case keymap.ActionFirst:
		s.GoTo(0)
	case keymap.ActionLast:
		s.GoTo(s.Count() - 1)
	case keymap.ActionGoToStop:
		if stop, ok := keymap.StopDigit(msg.String()); ok && stop < s.Stops() {
			s.GoToStop(stop)
		}
	case keymap.ActionToggleAutoplay:
		if s.AutoplayRunning() {
			s.SetAutoplayPaused(!s.AutoplayPaused())
		}
	default:
		return nil
	}
	return m.host.takePending()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s := m.slider
	if s == nil || s.Inert() {
		return nil
	}
	r := m.regions()
	var cmds []tea.Cmd

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.press(r, msg.X, msg.Y)
	case tea.MouseActionMotion:
		if s.Dragging() {
			s.DragTo(m.axisCoord(msg.X, msg.Y))
		}
		if s.TracksHover() {
			v := s.Hover().Record(float64(msg.X), float64(msg.Y))
			cmds = append(cmds, tea.Tick(slider.HoverDebounce, func(time.Time) tea.Msg {
				return hoverMsg{version: v}
			}))
		}
	case tea.MouseActionRelease:
		if s.Dragging() {
			s.EndDrag()
		}
	}

	cmds = append(cmds, m.host.takePending())
	return tea.Batch(cmds...)
}

func (m *Model) press(r layout.Regions, x, y int) {
	s := m.slider
	switch {
	case r.Prev.Contains(x, y):
		if !m.host.disabled[slider.ButtonPrev] {
			s.Prev()
		}
	case r.Next.Contains(x, y):
		if !m.host.disabled[slider.ButtonNext] {
			s.Next()
		}
	case r.Viewport.Contains(x, y):
		item := m.itemAt(r.Viewport, x, y)
		if item < 0 {
			item = s.Current()
		}
		s.BeginDrag(item, m.axisCoord(x, y))
	default:
		if i, ok := layout.DotAt(r.Dots, len(m.host.dots), x, y); ok {
			s.GoToStop(i)
		}
	}
}

// axisCoord projects a cell onto the slider axis.
func (m *Model) axisCoord(x, y int) float64 {
	if m.cfg.Axis == slider.Vertical {
		return float64(y)
	}
	return float64(x)
}

// shiftCells converts the drawn offset into the first strip cell shown.
func (m *Model) shiftCells() int {
	return int(math.Round(-m.host.shown / 100 * m.slider.Geometry().Total))
}

// itemAt returns the slide under a viewport cell, or -1 over a clone or
// empty space.
func (m *Model) itemAt(vp layout.Rect, x, y int) int {
	cell := x - vp.X
	if m.cfg.Axis == slider.Vertical {
		cell = y - vp.Y
	}
	spans := layout.Spans(m.slider.Geometry().Extents)
	return layout.SpanAt(spans, cell+m.shiftCells())
}
