package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "talk.yaml", `
title: Go at the terminal
slides:
  - title: Intro
    body: |
      hello
      world
  - title: Wide
    body: a long line
    width: 40
`)
	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Go at the terminal", d.Title)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, Slide{Title: "Intro", Body: "hello\nworld"}, d.Slides[0])
	assert.Equal(t, 40, d.Slides[1].Width)
}

func TestLoad_YAMLErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"empty deck", "empty.yaml", "title: nothing\n"},
		{"malformed", "bad.yml", "slides: [\n"},
		{"negative width", "neg.yaml", "slides:\n  - title: x\n    width: -1\n"},
		{"wrong extension", "deck.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_EmptyDeckIsErrEmpty(t *testing.T) {
	_, err := Load(writeFile(t, t.TempDir(), "d.yaml", "slides: []\n"))
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "talk")
	require.NoError(t, os.Mkdir(dir, 0o755))
	writeFile(t, dir, "02-details.md", "# Details\n\nmore text\n")
	writeFile(t, dir, "01-intro.txt", "Intro\nfirst slide")
	writeFile(t, dir, "03-untitled.txt", "\nbody only")
	writeFile(t, dir, "notes.pdf", "ignored")
	writeFile(t, dir, ".hidden.md", "ignored")

	d, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "talk", d.Title)
	require.Equal(t, 3, d.Len())
	assert.Equal(t, Slide{Title: "Intro", Body: "first slide"}, d.Slides[0])
	assert.Equal(t, Slide{Title: "Details", Body: "more text"}, d.Slides[1])
	assert.Equal(t, Slide{Title: "03-untitled", Body: "body only"}, d.Slides[2])
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeck_LenNil(t *testing.T) {
	var d *Deck
	assert.Equal(t, 0, d.Len())
}
