package kv

import (
	"github.com/charmbracelet/bubbles/paginator"

	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
)

// CloseGlyph is drawn at the right end of the title line.
const CloseGlyph = "×"

// Tap target names.
const (
	HitRow   = "row"
	HitClose = "close"
)

// Closer owns a title bar and is closed by its close glyph.
type Closer interface {
	Close() bool
}

// TitleBar is the header of a page: title and close glyph on one line, a
// rule below, and a page count overlaid near the right end of the rule.
type TitleBar struct {
	title      string
	titleWidth int
	width      int
	lineHeight int
	ruleHeight int
	inset      int
	face       textfit.Face
	owner      Closer
	touch      bool

	label *layout.Place
}

// NewTitleBar builds a title bar width units wide. The title is truncated
// to leave room for the close glyph.
func NewTitleBar(title string, width, lineHeight, ruleHeight, inset int, face textfit.Face, owner Closer, touch bool) *TitleBar {
	room := width - face.Measure(CloseGlyph)
	if face.Measure(title) > room {
		title = textfit.Fit(title, face, room, false)
	}
	return &TitleBar{
		title:      title,
		titleWidth: face.Measure(title),
		width:      width,
		lineHeight: lineHeight,
		ruleHeight: ruleHeight,
		inset:      inset,
		face:       face,
		owner:      owner,
		touch:      touch,
	}
}

// Title returns the title as displayed.
func (t *TitleBar) Title() string {
	return t.title
}

// Height is the line plus the rule.
func (t *TitleBar) Height() int {
	return t.lineHeight + t.ruleHeight
}

// Label returns the page count text, or "" when no count is shown.
func (t *TitleBar) Label() string {
	if t.label == nil {
		return ""
	}
	return t.label.Child.(layout.Text).Content
}

// SetPageCount shows "<current>/<total>". A single page shows no count at
// all. The label is repositioned on every call since its width follows the
// digit count.
func (t *TitleBar) SetPageCount(current, total int) {
	if total == 1 {
		t.label = nil
		return
	}

	p := paginator.New()
	p.TotalPages = total
	p.Page = current - 1
	text := p.View()
	w := t.face.Measure(text)

	t.label = &layout.Place{
		X: max(0, t.width-t.inset-w),
		Child: layout.Text{
			Content: text,
			Width:   w,
			Height:  t.ruleHeight,
			Role:    layout.RoleLabel,
		},
	}
}

// Node returns the layout of the bar.
func (t *TitleBar) Node() layout.Node {
	var glyph layout.Node = layout.Text{
		Content: CloseGlyph,
		Width:   t.face.Measure(CloseGlyph),
		Height:  t.lineHeight,
		Align:   layout.End,
		Role:    layout.RoleClose,
	}
	if t.touch && t.owner != nil {
		glyph = layout.Tappable{Name: HitClose, Child: glyph, On: t.owner.Close}
	}

	head := layout.Box{
		Axis: layout.Overlap,
		W:    t.width,
		H:    t.lineHeight,
		Children: []layout.Node{
			layout.Text{Content: t.title, Width: t.titleWidth, Height: t.lineHeight, Role: layout.RoleTitle},
			glyph,
		},
	}

	rule := layout.Box{
		Axis:     layout.Overlap,
		W:        t.width,
		H:        t.ruleHeight,
		Children: []layout.Node{layout.Rule{W: t.width, H: t.ruleHeight}},
	}
	if t.label != nil {
		rule.Children = append(rule.Children, *t.label)
	}

	return layout.Box{Axis: layout.Vertical, Children: []layout.Node{head, rule}}
}
