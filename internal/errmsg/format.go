// Package errmsg provides consistent error formatting for the status line.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	OpConfigLoad   Op = "load config"
	OpDeckLoad     Op = "load deck"
	OpDeckReload   Op = "reload deck"
	OpDeckWatch    Op = "watch deck"
	OpSliderSetup  Op = "set up slider"
	OpSliderLayout Op = "lay out slides"
	OpLogSetup     Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
