package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/carousel/internal/slider"
)

const appName = "carousel"

type Config struct {
	Deck     string `koanf:"deck"`      // deck file (.yaml) or directory of slides
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"
	LogLevel string `koanf:"log_level"` // "error", "warn", "info", "debug"
	LogFile  string `koanf:"log_file"`
	Watch    bool   `koanf:"watch"` // reload the deck when it changes on disk

	Slider SliderConfig `koanf:"slider"`
}

// SliderConfig mirrors slider.Config. Unset keys keep the slider defaults.
type SliderConfig struct {
	Axis            *string `koanf:"axis"` // "horizontal" or "vertical"
	VisibleItems    *int    `koanf:"visible_items"`
	CountSwipe      *int    `koanf:"count_swipe"`
	Gutter          *int    `koanf:"gutter"`
	FixedWidth      *int    `koanf:"fixed_width"` // cells
	AutoWidth       *bool   `koanf:"auto_width"`
	StartIndex      *int    `koanf:"start_index"`      // 1-based
	Speed           *int    `koanf:"speed"`            // ms
	AutoplayTimeout *int    `koanf:"autoplay_timeout"` // ms

	HasControls           *bool `koanf:"has_controls"`
	HasDots               *bool `koanf:"has_dots"`
	IsLoop                *bool `koanf:"is_loop"`
	IsAutoplay            *bool `koanf:"is_autoplay"`
	IsHoverPause          *bool `koanf:"is_hover_pause"`
	IsRewind              *bool `koanf:"is_rewind"`
	IsAutoHeight          *bool `koanf:"is_auto_height"`
	IsMouseDrag           *bool `koanf:"is_mouse_drag"`
	IsActiveSlideInCenter *bool `koanf:"is_active_slide_in_center"`
}

// sliderKeys lists every key accepted under [slider].
var sliderKeys = []string{
	"axis", "visible_items", "count_swipe", "gutter", "fixed_width",
	"auto_width", "start_index", "speed", "autoplay_timeout",
	"has_controls", "has_dots", "is_loop", "is_autoplay", "is_hover_pause",
	"is_rewind", "is_auto_height", "is_mouse_drag", "is_active_slide_in_center",
}

// ErrUnknownKeys is returned when [slider] contains unrecognized keys.
var ErrUnknownKeys = errors.New("unknown slider config keys")

// Load reads the default config locations, then explicit (when non-empty).
// An explicit path that does not exist is an error; default locations are
// optional.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, err
		}
		paths = append(paths, explicit)
	}
	return loadFrom(paths)
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files win
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := checkSliderKeys(k); err != nil {
		return nil, err
	}

	cfg := &Config{
		Deck:     ".",
		Icons:    "unicode",
		LogLevel: "info",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Deck = expandPath(cfg.Deck)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func checkSliderKeys(k *koanf.Koanf) error {
	var unknown []string
	for _, key := range k.Keys() {
		name, ok := strings.CutPrefix(key, "slider.")
		if !ok {
			continue
		}
		if !slices.Contains(sliderKeys, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(unknown, ", "))
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/carousel/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./carousel.toml (pwd)
		appName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Override converts the file values into a slider override.
func (c SliderConfig) Override() (slider.Override, error) {
	o := slider.Override{
		VisibleItems:        c.VisibleItems,
		CountSwipe:          c.CountSwipe,
		Gutter:              c.Gutter,
		AutoWidth:           c.AutoWidth,
		StartIndex:          c.StartIndex,
		HasControls:         c.HasControls,
		HasDots:             c.HasDots,
		IsLoop:              c.IsLoop,
		IsAutoplay:          c.IsAutoplay,
		IsHoverPause:        c.IsHoverPause,
		IsRewind:            c.IsRewind,
		IsAutoHeight:        c.IsAutoHeight,
		IsMouseDrag:         c.IsMouseDrag,
		IsActiveSlideCenter: c.IsActiveSlideInCenter,
		Speed:               millis(c.Speed),
		Autoplay:            millis(c.AutoplayTimeout),
	}
	if c.Axis != nil {
		axis, err := slider.ParseAxis(*c.Axis)
		if err != nil {
			return slider.Override{}, err
		}
		o.Axis = &axis
	}
	if c.FixedWidth != nil {
		w := float64(*c.FixedWidth)
		o.FixedWidth = &w
	}
	return o, nil
}

func millis(ms *int) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}

// SliderSettings merges the file values over the slider defaults and
// validates the result.
func (c *Config) SliderSettings() (slider.Config, error) {
	o, err := c.Slider.Override()
	if err != nil {
		return slider.Config{}, err
	}
	sc := slider.DefaultConfig().Merge(o)
	if err := sc.Validate(); err != nil {
		return slider.Config{}, err
	}
	return sc, nil
}
