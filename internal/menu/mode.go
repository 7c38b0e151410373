package menu

import (
	"fmt"
	"strings"
)

// Mode controls how Space and Enter affect the selection.
type Mode int

const (
	// Simple confirms the highlighted row only. Nothing is ever marked.
	Simple Mode = iota
	// Radio allows at most one marked row.
	Radio
	// Check allows any subset of rows to be marked.
	Check
)

// String returns the lowercase name used on the command line and in menu files.
func (m Mode) String() string {
	switch m {
	case Simple:
		return "simple"
	case Radio:
		return "radio"
	case Check:
		return "check"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name into a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return Simple, nil
	case "radio":
		return Radio, nil
	case "check", "checkbox":
		return Check, nil
	}
	return Simple, fmt.Errorf("unknown selection mode %q (want simple, radio or check)", s)
}

// icon returns the 3-character marker drawn before an option.
func (m Mode) icon(selected bool) string {
	switch m {
	case Check:
		if selected {
			return "[*]"
		}
		return "[ ]"
	case Radio:
		if selected {
			return "(*)"
		}
		return "( )"
	}
	return "   "
}
