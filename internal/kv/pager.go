package kv

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
)

// ErrInvalidGeometry is returned when the viewport cannot hold one row and
// the degenerate policy is DegenerateFail.
var ErrInvalidGeometry = errors.New("viewport too small for a single row")

// Degenerate selects what happens when no row fits below the title bar.
type Degenerate string

const (
	// DegenerateClamp shows one entry per page anyway.
	DegenerateClamp Degenerate = "clamp"
	// DegenerateFail makes New return ErrInvalidGeometry.
	DegenerateFail Degenerate = "fail"
)

// Options tune the pager geometry and input handling.
type Options struct {
	ItemHeight int
	Padding    int
	RuleHeight int
	LabelInset int
	Touch      bool
	Degenerate Degenerate
}

// DefaultOptions suit a terminal where one unit is one cell.
func DefaultOptions() Options {
	return Options{
		ItemHeight: 1,
		Padding:    1,
		RuleHeight: 1,
		LabelInset: 1,
		Touch:      true,
		Degenerate: DegenerateClamp,
	}
}

// Host is the environment a pager is displayed in.
type Host interface {
	Redraw(r layout.Rect)
	Dismiss()
}

type noopHost struct{}

func (noopHost) Redraw(layout.Rect) {}
func (noopHost) Dismiss()           {}

// Pager splits entries into pages that fit a fixed viewport and tracks
// navigation between them.
type Pager struct {
	entries []Entry
	geom    Geometry
	face    textfit.Face
	opts    Options
	host    Host

	title *TitleBar
	pg    paginator.Model
	rows  []layout.Node
	hits  []layout.Hit
}

// New builds a pager and materializes page 1. entries is held read-only.
func New(entries []Entry, viewport layout.Size, title string, face textfit.Face, opts Options, host Host) (*Pager, error) {
	if host == nil {
		host = noopHost{}
	}
	viewport.W = max(viewport.W, 0)
	viewport.H = max(viewport.H, 0)

	geom := NewGeometry(viewport, opts.ItemHeight, opts.Padding, opts.RuleHeight)
	perPage := geom.ItemsPerPage()
	if perPage < 1 {
		if opts.Degenerate == DegenerateFail {
			return nil, fmt.Errorf("%dx%d with line height %d: %w",
				viewport.W, viewport.H, geom.LineHeight, ErrInvalidGeometry)
		}
		logrus.WithFields(logrus.Fields{
			"width":       viewport.W,
			"height":      viewport.H,
			"line_height": geom.LineHeight,
		}).Warn("Viewport too small for a single row, showing one entry per page")
		perPage = 1
	}

	p := &Pager{
		entries: entries,
		geom:    geom,
		face:    face,
		opts:    opts,
		host:    host,
	}
	p.title = NewTitleBar(title, geom.ItemWidth, geom.LineHeight, geom.RuleHeight, opts.LabelInset, face, p, opts.Touch)

	p.pg = paginator.New()
	p.pg.PerPage = perPage
	p.pg.SetTotalPages(len(entries))

	logrus.WithFields(logrus.Fields{
		"entries":  len(entries),
		"per_page": perPage,
		"pages":    p.pg.TotalPages,
	}).Debug("Pager created")

	p.materialize()
	return p, nil
}

// Page is the current page, starting at 1.
func (p *Pager) Page() int {
	return p.pg.Page + 1
}

// TotalPages is at least 1, even with no entries.
func (p *Pager) TotalPages() int {
	return p.pg.TotalPages
}

// PerPage is the number of entries on a full page.
func (p *Pager) PerPage() int {
	return p.pg.PerPage
}

// Geometry returns the derived geometry.
func (p *Pager) Geometry() Geometry {
	return p.geom
}

// TitleBar returns the header.
func (p *Pager) TitleBar() *TitleBar {
	return p.title
}

// Rows returns the nodes of the current page.
func (p *Pager) Rows() []layout.Node {
	return p.rows
}

// Slice returns the half-open range of entries on the current page.
func (p *Pager) Slice() (start, end int) {
	return p.pg.GetSliceBounds(len(p.entries))
}

// Rect is the region the pager occupies.
func (p *Pager) Rect() layout.Rect {
	return layout.Rect{W: p.geom.Viewport.W, H: p.geom.Viewport.H}
}

// NextPage moves forward one page. It does nothing on the last page.
func (p *Pager) NextPage() bool {
	if p.pg.OnLastPage() {
		return false
	}
	p.pg.NextPage()
	p.materialize()
	return true
}

// PrevPage moves back one page. It does nothing on the first page.
func (p *Pager) PrevPage() bool {
	if p.pg.OnFirstPage() {
		return false
	}
	p.pg.PrevPage()
	p.materialize()
	return true
}

// Close asks the host to dismiss the pager. It is always handled.
func (p *Pager) Close() bool {
	logrus.Debug("Pager closing")
	p.host.Dismiss()
	return true
}

// Handle dispatches an input event and reports whether it was consumed.
// Horizontal swipes are consumed even when the page cannot move.
func (p *Pager) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case Tap:
		hit, ok := p.HitTest(ev.X, ev.Y)
		if !ok {
			return false
		}
		return hit.On()
	case Swipe:
		switch ev.Dir {
		case West:
			p.NextPage()
			return true
		case East:
			p.PrevPage()
			return true
		}
	}
	return false
}

// HitTest returns the topmost tap target at (x, y).
func (p *Pager) HitTest(x, y int) (layout.Hit, bool) {
	return layout.HitTest(p.hits, x, y)
}

// TapRow activates the n-th tappable row of the page, counting from 1.
func (p *Pager) TapRow(n int) bool {
	for _, hit := range p.hits {
		if hit.Name != HitRow {
			continue
		}
		n--
		if n == 0 {
			return hit.On()
		}
	}
	return false
}

// TappableRows counts the rows on the page that carry an action.
func (p *Pager) TappableRows() int {
	n := 0
	for _, hit := range p.hits {
		if hit.Name == HitRow {
			n++
		}
	}
	return n
}

// View lays out the title bar and the current rows inside the viewport.
func (p *Pager) View() layout.Node {
	return layout.Box{
		Axis: layout.Vertical,
		W:    p.geom.Viewport.W,
		H:    p.geom.Viewport.H,
		Children: []layout.Node{
			layout.Place{X: p.geom.Padding, Child: p.title.Node()},
			layout.Place{X: p.geom.Padding, Child: layout.Box{Axis: layout.Vertical, Children: p.rows}},
		},
	}
}

func (p *Pager) materialize() {
	p.rows = Materialize(p.entries, p.Page(), p.pg.PerPage, p.geom, p.face, p.opts.Touch)
	p.title.SetPageCount(p.Page(), p.TotalPages())
	p.hits = layout.Hits(p.View(), layout.Point{})
	p.host.Redraw(p.Rect())
}
