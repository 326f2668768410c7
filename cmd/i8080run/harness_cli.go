package main

import (
	"os"

	"golang.org/x/term"
)

// colorScheme wraps PASS/FAIL strings in ANSI color, gated on whether
// stdout is a real terminal — the same term.IsTerminal check
// IntuitionEngine's terminal_host.go uses before touching the TTY,
// narrowed here to read-only detection since this harness has no
// keyboard input to put in raw mode.
type colorScheme struct {
	enabled bool
}

func newColorScheme(mode string) colorScheme {
	switch mode {
	case "always":
		return colorScheme{enabled: true}
	case "never":
		return colorScheme{enabled: false}
	default:
		return colorScheme{enabled: term.IsTerminal(int(os.Stdout.Fd()))}
	}
}

func (c colorScheme) pass(s string) string {
	if !c.enabled {
		return s
	}
	return "\x1b[32m" + s + "\x1b[0m"
}

func (c colorScheme) fail(s string) string {
	if !c.enabled {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
