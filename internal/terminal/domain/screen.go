package domain

import "unicode/utf8"

// DisplayColumns is the width of the character LCD.
const DisplayColumns = 16

// Screen is the two-line content of the display. Lines never exceed
// DisplayColumns runes.
type Screen struct {
	Line1 string
	Line2 string
}

func NewScreen(line1, line2 string) Screen {
	return Screen{
		Line1: Truncate(line1, DisplayColumns),
		Line2: Truncate(line2, DisplayColumns),
	}
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
