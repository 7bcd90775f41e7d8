package textfit

import (
	"fmt"
	"unicode/utf8"
)

// FixedFace is a monospace face where every rune advances the same width.
type FixedFace struct {
	Advance int
}

// Name implements Face.
func (f FixedFace) Name() string {
	return fmt.Sprintf("fixed-%d", f.Advance)
}

// Measure implements Face.
func (f FixedFace) Measure(s string) int {
	return utf8.RuneCountInString(s) * f.Advance
}

// Prefix implements Face.
func (f FixedFace) Prefix(s string, maxWidth int) string {
	if maxWidth <= 0 || f.Advance <= 0 {
		return ""
	}
	n := maxWidth / f.Advance
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
