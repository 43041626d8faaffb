// Deckcheck loads a deck with the carousel configuration and prints how
// its slides would be laid out on a screen of the given size.
package main

import (
	"flag"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/ui/carousel"
)

func main() {
	var (
		configPath    string
		deckPath      string
		width, height int
	)
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&deckPath, "deck", "", "Deck file or directory (defaults to the configured deck)")
	flag.IntVar(&width, "width", 80, "Screen width in cells")
	flag.IntVar(&height, "height", 24, "Screen height in cells")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if deckPath != "" {
		cfg.Deck = deckPath
	}
	sc, err := cfg.SliderSettings()
	if err != nil {
		log.Fatalf("Invalid slider settings: %v", err)
	}

	d, err := deck.Load(cfg.Deck)
	if err != nil {
		log.Fatalf("Failed to load deck: %v", err)
	}
	log.Printf("Deck %q: %s slides, %s axis", d.Title, humanize.Comma(int64(d.Len())), sc.Axis)

	geo, err := carousel.Measure(sc, d, width, height)
	if err != nil {
		log.Fatalf("Failed to lay out slides on %dx%d: %v", width, height, err)
	}
	log.Printf("Viewport %.0f cells, window %.0f cells (%.1f%% of the viewport)",
		geo.Container, geo.Total, geo.WindowPercent)

	for i, s := range d.Slides {
		log.Printf("  [%d] %-24s extent %5.1f  share %5.1f%%  offset %5.1f%%",
			i+1, s.Title, geo.Extent(i), geo.Share(i), geo.OffsetFor(i))
	}

	stops := (d.Len() + sc.VisibleItems - 1) / sc.VisibleItems
	log.Printf("%s stops of %d visible slide(s)", humanize.Comma(int64(stops)), sc.VisibleItems)
}
