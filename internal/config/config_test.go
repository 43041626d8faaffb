//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/slider"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/decks", filepath.Join(home, "decks")},
		{"absolute path unchanged", "/srv/decks", "/srv/decks"},
		{"relative path unchanged", "decks/talk", "decks/talk"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if paths[1] != "carousel.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "carousel.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != "carousel" {
		t.Errorf("first config path = %q, want it under a carousel directory", paths[0])
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Deck)
	assert.Equal(t, "unicode", cfg.Icons)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "carousel.log", filepath.Base(cfg.LogFile))

	sc, err := cfg.SliderSettings()
	require.NoError(t, err)
	assert.Equal(t, slider.DefaultConfig(), sc)
}

func TestLoadFrom_SliderTable(t *testing.T) {
	path := writeConfig(t, `
deck = "/tmp/talk.yaml"
watch = true

[slider]
axis = "vertical"
visible_items = 2
start_index = 3
speed = 250
autoplay_timeout = 3000
is_autoplay = true
is_rewind = true
has_dots = false
fixed_width = 30
`)
	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/talk.yaml", cfg.Deck)
	assert.True(t, cfg.Watch)

	sc, err := cfg.SliderSettings()
	require.NoError(t, err)
	assert.Equal(t, slider.Vertical, sc.Axis)
	assert.Equal(t, 2, sc.VisibleItems)
	assert.Equal(t, 3, sc.StartIndex)
	assert.Equal(t, 250*time.Millisecond, sc.Speed)
	assert.Equal(t, 3*time.Second, sc.Autoplay)
	assert.True(t, sc.IsAutoplay)
	assert.True(t, sc.IsRewind)
	assert.False(t, sc.HasDots)
	assert.InDelta(t, 30, sc.FixedWidth, 0)

	// Untouched keys keep their defaults.
	assert.True(t, sc.HasControls)
	assert.True(t, sc.IsHoverPause)
	assert.Equal(t, 1, sc.CountSwipe)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, "[slider]\ncount_swipe = 2\nis_loop = true\n")
	second := writeConfig(t, "[slider]\ncount_swipe = 3\n")

	cfg, err := loadFrom([]string{first, second})
	require.NoError(t, err)
	sc, err := cfg.SliderSettings()
	require.NoError(t, err)
	assert.Equal(t, 3, sc.CountSwipe)
	assert.True(t, sc.IsLoop)
}

func TestLoadFrom_UnknownSliderKeys(t *testing.T) {
	path := writeConfig(t, "[slider]\nzoom = 2\nis_loop = true\nautoplay = true\n")

	_, err := loadFrom([]string{path})
	require.ErrorIs(t, err, ErrUnknownKeys)
	assert.Contains(t, err.Error(), "autoplay, zoom")
}

func TestSliderSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad axis", "[slider]\naxis = \"diagonal\"\n"},
		{"zero visible items", "[slider]\nvisible_items = 0\n"},
		{"zero start index", "[slider]\nstart_index = 0\n"},
		{"autoplay without interval", "[slider]\nis_autoplay = true\nautoplay_timeout = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadFrom([]string{writeConfig(t, tt.content)})
			require.NoError(t, err)
			_, err = cfg.SliderSettings()
			require.ErrorIs(t, err, slider.ErrConfiguration)
		})
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
