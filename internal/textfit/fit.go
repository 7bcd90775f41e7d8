// Package textfit measures text against a width budget and truncates it
// with an ellipsis when it overflows.
package textfit

import "sync"

const (
	// Ellipsis marks truncated text.
	Ellipsis = "…"
	// Spacer separates truncated text from a neighbour sharing its line.
	Spacer = "  "
)

type decorations struct {
	ellipsis int
	spacer   int
}

var (
	memoMu sync.Mutex
	memo   = make(map[string]decorations)
)

// decorationWidths returns the ellipsis and spacer widths for face. They
// depend on the face only, so they are measured once per process.
func decorationWidths(face Face) decorations {
	memoMu.Lock()
	defer memoMu.Unlock()

	d, ok := memo[face.Name()]
	if !ok {
		d = decorations{
			ellipsis: face.Measure(Ellipsis),
			spacer:   face.Measure(Spacer),
		}
		memo[face.Name()] = d
	}
	return d
}

// Fit truncates text to at most maxWidth and marks it with an ellipsis.
// Callers only use it once text is known to overflow, so it never returns
// text unchanged.
//
// With prependSpace the result is spacer+prefix+ellipsis, for text aligned
// to the right of a line; otherwise prefix+ellipsis+spacer. When maxWidth is
// too small for the decorations the spacer is dropped first, then the
// ellipsis.
func Fit(text string, face Face, maxWidth int, prependSpace bool) string {
	if maxWidth <= 0 {
		return ""
	}

	d := decorationWidths(face)
	ellipsis, spacer := Ellipsis, Spacer
	switch {
	case d.ellipsis+d.spacer <= maxWidth:
	case d.ellipsis <= maxWidth:
		spacer, d.spacer = "", 0
	default:
		return ""
	}

	prefix := face.Prefix(text, maxWidth-d.ellipsis-d.spacer)
	if prependSpace {
		return spacer + prefix + ellipsis
	}
	return prefix + ellipsis + spacer
}
