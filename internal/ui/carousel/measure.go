package carousel

import (
	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/slider"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Measure computes the geometry the carousel would use for d on a screen
// of width x height cells, without attaching a slider.
func Measure(cfg slider.Config, d *deck.Deck, width, height int) (slider.Geometry, error) {
	h := &host{axis: cfg.Axis, gutter: cfg.Gutter}
	if d != nil {
		h.slides = d.Slides
	}
	h.vp = layout.Compute(width, height, layout.Opts{
		Controls: cfg.HasControls,
		Dots:     cfg.HasDots,
	}).Viewport
	return slider.ComputeGeometry(h.ContainerExtent(cfg.Axis), h.ItemExtents(cfg.Axis), slider.GeometryOptions{
		AutoWidth:    cfg.AutoWidth,
		VisibleItems: cfg.VisibleItems,
		FixedWidth:   cfg.FixedWidth,
	})
}
