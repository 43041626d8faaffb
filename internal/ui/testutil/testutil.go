// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

var spaces = regexp.MustCompile(`\s+`)

// NormalizeWhitespace replaces runs of whitespace with a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// MeasureWidth returns the visual width of a string, ignoring escapes.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Column returns the rune at index col of every line, or ' ' past the end.
// Lines must be plain text.
func Column(lines []string, col int) string {
	var b strings.Builder
	for _, line := range lines {
		r := []rune(line)
		if col >= 0 && col < len(r) {
			b.WriteRune(r[col])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
