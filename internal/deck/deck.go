// Package deck loads the slides shown by the carousel, either from a YAML
// file or from a directory of text files.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a deck has no slides.
var ErrEmpty = errors.New("deck has no slides")

type Slide struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	// Width is the preferred slide width in cells, used when the carousel
	// measures items by their content. Zero means the body width.
	Width int `yaml:"width"`
}

type Deck struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Load reads a deck from path. A .yaml/.yml file is decoded directly; a
// directory yields one slide per .txt/.md file in name order.
func Load(path string) (*Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var d *Deck
	if info.IsDir() {
		d, err = loadDir(path)
	} else {
		d, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return d, nil
}

func loadFile(path string) (*Deck, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%s: unsupported deck file (want .yaml or .yml)", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range d.Slides {
		d.Slides[i].Body = strings.TrimRight(d.Slides[i].Body, "\n")
		if d.Slides[i].Width < 0 {
			return nil, fmt.Errorf("%s: slide %d: negative width", path, i+1)
		}
	}
	return &d, nil
}

func loadDir(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isSlideFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	d := &Deck{Title: filepath.Base(filepath.Clean(dir))}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		d.Slides = append(d.Slides, parseSlide(string(data), name))
	}
	return d, nil
}

func isSlideFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return true
	}
	return false
}

// parseSlide uses the first line as title and the rest as body. A file
// with a blank first line is titled after its name.
func parseSlide(text, name string) Slide {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	first, rest, _ := strings.Cut(text, "\n")
	title := strings.TrimSpace(strings.TrimLeft(first, "#"))
	if title == "" {
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return Slide{
		Title: title,
		Body:  strings.Trim(rest, "\n"),
	}
}
