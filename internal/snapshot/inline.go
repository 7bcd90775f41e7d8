package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"io"
	"strings"

	"github.com/BourgeoisBear/rasterm"
)

// Protocol is a terminal graphics protocol.
type Protocol string

const (
	ProtocolKitty Protocol = "kitty"
	ProtocolITerm Protocol = "iterm2"
	ProtocolSixel Protocol = "sixel"
	ProtocolNone  Protocol = "none"
)

// ErrNoGraphics is returned when the terminal cannot show images.
var ErrNoGraphics = errors.New("terminal does not support inline images")

// RenderError wraps a failure to encode for a protocol.
type RenderError struct {
	Protocol Protocol
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("inline render with %s protocol: %v", e.Protocol, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// DetectProtocol picks a graphics protocol from the terminal environment.
func DetectProtocol(getenv func(string) string) Protocol {
	term := strings.ToLower(getenv("TERM"))
	termProgram := strings.ToLower(getenv("TERM_PROGRAM"))

	switch {
	case getenv("KITTY_WINDOW_ID") != "" || strings.Contains(term, "kitty"):
		return ProtocolKitty
	case getenv("GHOSTTY_RESOURCES_DIR") != "" || termProgram == "ghostty" || strings.Contains(term, "ghostty"):
		return ProtocolKitty
	case termProgram == "iterm.app" || termProgram == "wezterm":
		return ProtocolITerm
	}

	for _, sixelTerm := range []string{"xterm-sixel", "mlterm", "yaft", "foot"} {
		if strings.Contains(term, sixelTerm) {
			return ProtocolSixel
		}
	}
	return ProtocolNone
}

// CellSize is the assumed pixel size of one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// TerminalCells returns how many cells an image of w x h pixels covers.
func TerminalCells(w, h int) (cols, rows uint32) {
	cols = uint32(max((w+CellWidth-1)/CellWidth, 1))
	rows = uint32(max((h+CellHeight-1)/CellHeight, 1))
	return cols, rows
}

// WriteInline writes img to w as a terminal image escape sequence.
func WriteInline(w io.Writer, img image.Image, proto Protocol) error {
	var err error
	switch proto {
	case ProtocolKitty:
		cols, rows := TerminalCells(img.Bounds().Dx(), img.Bounds().Dy())
		err = rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{DstCols: cols, DstRows: rows})
	case ProtocolITerm:
		err = rasterm.ItermWriteImage(w, img)
	case ProtocolSixel:
		bounds := img.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
		err = rasterm.SixelWriteImage(w, paletted)
	default:
		return ErrNoGraphics
	}

	if err != nil {
		return &RenderError{Protocol: proto, Err: err}
	}
	_, err = io.WriteString(w, "\n")
	return err
}
