package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/logging"
)

var version = "dev"

func main() {
	var (
		configPath  string
		deckPath    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a config file (overrides the default locations)")
	flag.StringVar(&deckPath, "deck", "", "Deck file (.yaml) or directory of slides")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("carousel", version)
		return
	}
	if deckPath == "" && flag.NArg() > 0 {
		deckPath = flag.Arg(0)
	}

	if err := run(configPath, deckPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, deckPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if deckPath != "" {
		cfg.Deck = deckPath
	}

	log, closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogSetup, cfg.LogFile, err))
	}
	defer closer.Close()

	icons.Init(cfg.Icons)

	sc, err := cfg.SliderSettings()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSliderSetup, err))
	}

	d, err := deck.Load(cfg.Deck)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpDeckLoad, cfg.Deck, err))
	}
	log.Info("deck loaded", "path", cfg.Deck, "slides", d.Len(), "axis", sc.Axis.String())

	var watcher *deck.Watcher
	if cfg.Watch {
		watcher, err = deck.Watch(cfg.Deck, log)
		if err != nil {
			// Not fatal: the deck can still be reloaded by hand.
			log.Warn(errmsg.FormatWith(errmsg.OpDeckWatch, cfg.Deck, err))
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	m := app.New(sc, d, cfg.Deck, watcher, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
