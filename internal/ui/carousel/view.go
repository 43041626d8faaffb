package carousel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/slider"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the whole screen: title, viewport with buttons, indicators
// and status.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	r := m.regions()

	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderTitle(r.Title.W))
	rows = append(rows, render.JoinColumns(
		m.renderButton(slider.ButtonPrev, r.Prev),
		m.renderViewport(r.Viewport),
		m.renderButton(slider.ButtonNext, r.Next),
	)...)
	if !r.Dots.Empty() {
		rows = append(rows, m.renderDots(r.Dots))
	}
	for len(rows) < r.Status.Y {
		rows = append(rows, render.EmptyLine(m.width))
	}
	if !r.Status.Empty() {
		rows = append(rows, m.renderStatus(r.Status.W))
	}
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderTitle(width int) string {
	t := styles.T()
	title := icons.FormatDeck(render.Truncate(m.title, max(width-12, 0)))
	left := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)

	var right string
	if s := m.slider; s != nil && !s.Inert() && s.Count() > 0 {
		right = fmt.Sprintf("%d/%d", s.Current()+1, s.Count())
		if s.AutoplayRunning() {
			right = icons.Autoplay(s.AutoplayPaused()) + " " + right
		}
		right = t.S().Muted.Render(right)
	}
	return render.Fit(render.Row(left, right, width), width, 1)[0]
}

func (m Model) renderButton(b slider.Button, r layout.Rect) []string {
	if r.Empty() {
		return nil
	}
	vertical := m.cfg.Axis == slider.Vertical
	glyph := icons.Prev(vertical)
	if b == slider.ButtonNext {
		glyph = icons.Next(vertical)
	}
	style := styles.T().S().Button
	if m.host.disabled[b] {
		style = styles.T().S().ButtonDisabled
	}

	lines := render.Blank(r.W, r.H)
	lines[r.H/2] = render.Fit(lipgloss.PlaceHorizontal(r.W, lipgloss.Center, style.Render(glyph)), r.W, 1)[0]
	return lines
}

func (m Model) renderViewport(r layout.Rect) []string {
	if r.Empty() {
		return render.Blank(r.W, r.H)
	}
	s := m.slider
	if s == nil || s.Inert() || s.Count() == 0 {
		return m.renderPlaceholder(r)
	}

	geo := s.Geometry()
	spans := layout.Spans(geo.Extents)
	shift := m.shiftCells()
	cur := s.Current()
	vertical := m.cfg.Axis == slider.Vertical

	block := func(i, size int, active bool) []string {
		if vertical {
			return m.renderSlide(i, r.W, size, active)
		}
		return m.renderSlide(i, size, r.H, active)
	}
	clones := func(indices []int) (blocks [][]string, size int) {
		for _, i := range indices {
			n := int(geo.Extent(i) + 0.5)
			blocks = append(blocks, block(i, n, false))
			size += n
		}
		return blocks, size
	}

	lead, leadSize := clones(m.host.leading)
	trail, _ := clones(m.host.trailing)
	items := make([][]string, len(spans))
	for i, sp := range spans {
		items[i] = block(i, sp.Len(), i == cur)
	}

	if vertical {
		pad := render.Blank(r.W, r.H)
		strip := append([]string{}, pad...)
		for _, b := range lead {
			strip = append(strip, b...)
		}
		for _, b := range items {
			strip = append(strip, b...)
		}
		for _, b := range trail {
			strip = append(strip, b...)
		}
		strip = append(strip, pad...)
		return render.CropRows(strip, r.H+leadSize+shift, r.H, r.W)
	}

	pad := render.Blank(r.W, r.H)
	parts := [][]string{pad}
	parts = append(parts, lead...)
	parts = append(parts, items...)
	parts = append(parts, trail...)
	parts = append(parts, pad)
	strip := render.JoinColumns(parts...)
	return render.CropColumns(strip, r.W+leadSize+shift, r.W)
}

func (m Model) renderPlaceholder(r layout.Rect) []string {
	msg := "no slides"
	style := styles.T().S().Muted
	if m.err != nil {
		msg = errmsg.Format(errmsg.OpSliderLayout, m.err)
		style = styles.T().S().Error
	}
	box := lipgloss.Place(r.W, r.H, lipgloss.Center, lipgloss.Center,
		style.Render(render.Truncate(msg, r.W)))
	return render.Fit(box, r.W, r.H)
}

// renderSlide draws slide i into a width×height block, gutter included.
func (m Model) renderSlide(i, width, height int, active bool) []string {
	gutter := m.host.gutter
	bw, bh := width-gutter, height
	if m.cfg.Axis == slider.Vertical {
		bw, bh = width, height-gutter
	}
	if bw < slideFrame || bh < 3 {
		return render.Blank(width, height)
	}

	s := m.host.slides[i]
	inner := bw - slideFrame
	lines := []string{styles.T().S().SlideTitle.Render(render.Truncate(s.Title, inner))}
	if s.Body != "" {
		lines = append(lines, "")
		for line := range strings.SplitSeq(s.Body, "\n") {
			lines = append(lines, ansi.Truncate(render.Sanitize(line), inner, ""))
		}
	}
	if len(lines) > bh-2 {
		lines = lines[:bh-2]
	}

	box := styles.T().Slide(active).
		Width(bw - 2).
		Height(bh - 2).
		Render(strings.Join(lines, "\n"))
	out := render.Fit(box, bw, bh)

	if m.cfg.Axis == slider.Vertical {
		return append(out, render.Blank(width, gutter)...)
	}
	return render.JoinColumns(out, render.Blank(gutter, height))
}

func (m Model) renderDots(r layout.Rect) string {
	dots := m.host.dots
	if len(dots) == 0 {
		return render.EmptyLine(r.W)
	}
	t := styles.T()
	ramp := styles.Ramp(len(dots), t.Primary, t.Secondary)

	var b strings.Builder
	b.WriteString(render.EmptyLine(layout.DotsStart(r, len(dots)) - r.X))
	for i, active := range dots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if active {
			b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Render(icons.Dot(true)))
		} else {
			b.WriteString(t.S().Subtle.Render(icons.Dot(false)))
		}
	}
	return render.Fit(b.String(), r.W, 1)[0]
}

func (m Model) renderStatus(width int) string {
	text := m.status
	style := styles.T().S().Muted
	if m.err != nil && m.slider != nil && !m.slider.Inert() {
		text = errmsg.Format(errmsg.OpSliderLayout, m.err)
		style = styles.T().S().Error
	}
	return render.Fit(style.Render(render.Truncate(text, width)), width, 1)[0]
}
