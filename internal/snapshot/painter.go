// Package snapshot paints pager layouts to images.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
)

// Face is the pixel face snapshots are measured and drawn with.
var Face = textfit.NewPixelFace("basic-7x13", basicfont.Face7x13)

// Painter draws layout trees with a pixel face.
type Painter struct {
	Face       *textfit.PixelFace
	Background color.Color
	Ink        map[layout.Role]color.Color
}

// NewPainter returns a painter with a dark theme.
func NewPainter() *Painter {
	return &Painter{
		Face:       Face,
		Background: color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		Ink: map[layout.Role]color.Color{
			layout.RoleKey:   color.NRGBA{0x74, 0xc0, 0xfc, 0xff},
			layout.RoleValue: color.White,
			layout.RoleTitle: color.NRGBA{0x66, 0xd9, 0xe8, 0xff},
			layout.RoleClose: color.NRGBA{0xff, 0x6b, 0x6b, 0xff},
			layout.RoleLabel: color.NRGBA{0xff, 0xd4, 0x3b, 0xff},
			layout.RoleRule:  color.NRGBA{0x80, 0x80, 0x80, 0xff},
		},
	}
}

func (p *Painter) ink(role layout.Role) color.Color {
	if c, ok := p.Ink[role]; ok {
		return c
	}
	return color.White
}

// Paint draws root onto a new size.W x size.H canvas.
func (p *Painter) Paint(root layout.Node, size layout.Size) *image.NRGBA {
	img := imaging.New(size.W, size.H, p.Background)
	if size.W <= 0 || size.H <= 0 {
		return img
	}

	layout.Walk(root, layout.Point{}, func(n layout.Node, r layout.Rect) {
		switch n := n.(type) {
		case layout.Rule:
			if r.W > 0 && r.H > 0 {
				img = imaging.Paste(img, imaging.New(r.W, r.H, p.ink(layout.RoleRule)), image.Pt(r.X, r.Y))
			}
		case layout.Text:
			img = p.text(img, n, r)
		}
	})
	return img
}

// text draws t vertically centered on r. Labels get a background patch so
// the rule under them does not strike through.
func (p *Painter) text(img *image.NRGBA, t layout.Text, r layout.Rect) *image.NRGBA {
	if t.Content == "" {
		return img
	}

	metrics := p.Face.Face().Metrics()
	height := metrics.Height.Ceil()
	top := r.Y + (r.H-height)/2

	if t.Role == layout.RoleLabel {
		img = imaging.Paste(img, imaging.New(r.W+2, height, p.Background), image.Pt(r.X-1, top))
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.ink(t.Role)),
		Face: p.Face.Face(),
		Dot:  fixed.P(r.X, top+metrics.Ascent.Ceil()),
	}
	d.DrawString(t.Content)
	return img
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling so
// glyph edges stay sharp.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}

// Save writes img as PNG to path.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"path":   path,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Info("Snapshot saved")
	return nil
}

// Encode writes img as PNG to w.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
