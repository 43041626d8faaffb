package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Fit forces a rendered block into exactly height lines of exactly width
// cells, cutting or padding as needed. Styled text keeps its escapes.
func Fit(block string, width, height int) []string {
	width, height = max(width, 0), max(height, 0)
	lines := make([]string, height)
	src := strings.Split(block, "\n")
	for i := range lines {
		var line string
		if i < len(src) {
			line = ansi.Truncate(src[i], width, "")
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = line
	}
	return lines
}

// Blank returns height lines of width spaces.
func Blank(width, height int) []string {
	lines := make([]string, max(height, 0))
	for i := range lines {
		lines[i] = EmptyLine(width)
	}
	return lines
}

// JoinColumns concatenates blocks side by side. The result is as tall as
// the tallest block; shorter blocks contribute nothing to the extra lines.
func JoinColumns(blocks ...[]string) []string {
	rows := 0
	for _, block := range blocks {
		rows = max(rows, len(block))
	}
	if rows == 0 {
		return nil
	}
	out := make([]string, rows)
	for i := range out {
		var b strings.Builder
		for _, block := range blocks {
			if i < len(block) {
				b.WriteString(block[i])
			}
		}
		out[i] = b.String()
	}
	return out
}

// CropColumns keeps cells [from, from+width) of every line. Cells outside
// the lines come out as spaces.
func CropColumns(lines []string, from, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		lead := 0
		if from < 0 {
			lead = min(-from, width)
		}
		start := max(from, 0)
		cut := ansi.Cut(line, start, start+width-lead)
		cut = EmptyLine(lead) + cut
		if w := ansi.StringWidth(cut); w < width {
			cut += EmptyLine(width - w)
		}
		out[i] = cut
	}
	return out
}

// CropRows keeps lines [from, from+height), padding with blank lines of
// width cells outside the block.
func CropRows(lines []string, from, height, width int) []string {
	out := make([]string, max(height, 0))
	for i := range out {
		j := from + i
		if j >= 0 && j < len(lines) {
			out[i] = lines[j]
		} else {
			out[i] = EmptyLine(width)
		}
	}
	return out
}
