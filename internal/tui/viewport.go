package tui

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/HaiFongPan/kvpage/internal/layout"
	tuiconfig "github.com/HaiFongPan/kvpage/internal/tui/config"
)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (width, height int, err error)

// TerminalSize reads the size of the terminal attached to stdout.
func TerminalSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ResolveViewport fills a zero width or height from the terminal, leaving
// room for the footer. Explicit sizes are used as given.
func ResolveViewport(width, height int, size SizeFunc) layout.Size {
	if width > 0 && height > 0 {
		return layout.Size{W: width, H: height}
	}

	tw, th, err := size()
	if err != nil || tw <= 0 || th <= 0 {
		logrus.WithError(err).Debug("Terminal size unavailable, using fallback")
		tw, th = tuiconfig.FallbackWidth, tuiconfig.FallbackHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = max(th-tuiconfig.FooterHeight, 0)
	}
	return layout.Size{W: width, H: height}
}
