package cmd

import "strings"

// sanitize replaces control characters (runes < 0x20 or == 0x7F) with '?'
// before error messages reach the terminal, preventing ANSI injection via
// hostile file or class names. Newlines survive: validation errors list
// their detail lines one per line.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return '?'
		}
		return r
	}, s)
}
