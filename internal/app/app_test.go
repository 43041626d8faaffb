package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/slider"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

func testDeck() *deck.Deck {
	return &deck.Deck{
		Title: "Talk",
		Slides: []deck.Slide{
			{Title: "Alpha", Body: "first"},
			{Title: "Beta", Body: "second"},
			{Title: "Gamma", Body: "third"},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(slider.DefaultConfig(), testDeck(), "talk.yaml", nil, nil)
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func statusLine(m Model) string {
	lines := strings.Split(testutil.StripANSI(m.View()), "\n")
	return lines[len(lines)-1]
}

func TestUpdate_WindowSizeMsg_AttachesSlider(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 24, m.Height)
	require.NotNil(t, m.Carousel.Slider())
	assert.Equal(t, 3, m.Carousel.Slider().Count())
	assert.Contains(t, statusLine(m), "1st of 3")
	assert.Contains(t, statusLine(m), "? help")
}

func TestUpdate_NavigationUpdatesStatus(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 1, m.Carousel.Slider().Current())
	assert.Contains(t, statusLine(m), "2nd of 3")
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := updateCmd(t, m, key("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_HelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("?"))
	require.True(t, m.ShowHelp)
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "Quit")
	assert.True(t, testutil.ContainsLine(view, "Reload deck"))
	assert.Contains(t, testutil.NormalizeWhitespace(testutil.FindLine(view, "Reload deck")), "r Reload deck")

	// Navigation is swallowed while the overlay is up.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Carousel.Slider().Current())
	m = update(t, m, tea.MouseMsg{X: 78, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, m.Carousel.Slider().Current())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowHelp)
	assert.NotContains(t, testutil.StripANSI(m.View()), "Keys")
}

func TestUpdate_ReloadKeyLoadsDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Talk\nslides:\n  - title: One\n  - title: Two\n"), 0o600))

	m := New(slider.DefaultConfig(), testDeck(), path, nil, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := updateCmd(t, m, key("r"))
	msg, ok := testutil.ExecuteCmd(cmd).(DeckLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)

	m = update(t, m, msg)
	assert.Equal(t, 2, m.Carousel.Slider().Count())
	assert.Contains(t, statusLine(m), "1st of 2")
}

func TestUpdate_DeckLoadedKeepsPosition(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 2, m.Carousel.Slider().Current())

	d := testDeck()
	d.Slides = d.Slides[:2]
	m = update(t, m, DeckLoadedMsg{Deck: d})

	assert.Equal(t, 1, m.Carousel.Slider().Current())
}

func TestUpdate_ReloadErrorShownThenCleared(t *testing.T) {
	m := newTestModel(t)

	m, cmd := updateCmd(t, m, DeckLoadedMsg{Err: errors.New("boom")})
	require.NotNil(t, cmd)
	assert.Equal(t, "Failed to reload deck 'talk.yaml': boom", m.ErrorMsg)
	assert.Contains(t, statusLine(m), "Failed to reload deck")
	assert.Equal(t, 3, m.Carousel.Slider().Count(), "previous deck stays")

	// A clear from an older error is ignored.
	m = update(t, m, ClearErrorMsg{Version: m.errorVersion - 1})
	assert.NotEmpty(t, m.ErrorMsg)

	m = update(t, m, ClearErrorMsg{Version: m.errorVersion})
	assert.Empty(t, m.ErrorMsg)
	assert.Contains(t, statusLine(m), "1st of 3")
}

func TestUpdate_DeckChangedReloads(t *testing.T) {
	m := newTestModel(t)

	_, cmd := updateCmd(t, m, deck.ChangedMsg{Path: "talk.yaml"})
	require.NotNil(t, cmd)

	msg := testutil.ExecuteCmd(cmd)
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if loaded, ok := testutil.ExecuteCmd(c).(DeckLoadedMsg); ok {
				msg = loaded
			}
		}
	}
	loaded, ok := msg.(DeckLoadedMsg)
	require.True(t, ok)
	assert.Error(t, loaded.Err, "talk.yaml does not exist in the test directory")
}

func TestView_EmptyBeforeFirstSize(t *testing.T) {
	m := New(slider.DefaultConfig(), testDeck(), "talk.yaml", nil, nil)
	assert.Empty(t, m.View())
}

func TestStatus_Autoplay(t *testing.T) {
	cfg := slider.DefaultConfig()
	cfg.IsAutoplay = true
	m := New(cfg, testDeck(), "talk.yaml", nil, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, statusLine(m), "autoplay every "+cfg.Autoplay.String())

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Contains(t, statusLine(m), "autoplay paused")
}

func TestUpdate_HelpDuringDragCancelsGesture(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Carousel.Slider().Dragging())

	m = update(t, m, key("?"))
	assert.False(t, m.Carousel.Slider().Dragging(), "opening help drops the drag")

	// The release lands on the overlay and is swallowed.
	m = update(t, m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, key("?"))
	require.False(t, m.ShowHelp)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Carousel.Slider().Current())
	assert.False(t, m.Carousel.Slider().Interacting())
}
