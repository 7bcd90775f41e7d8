package kv

import "github.com/HaiFongPan/kvpage/internal/layout"

// Geometry is derived from the viewport once, at construction.
type Geometry struct {
	Viewport    layout.Size
	Padding     int
	ItemWidth   int
	ItemHeight  int
	ItemMargin  int
	LineHeight  int
	RuleHeight  int
	TitleHeight int
}

// NewGeometry derives row geometry for viewport.
func NewGeometry(viewport layout.Size, itemHeight, padding, ruleHeight int) Geometry {
	margin := itemHeight / 4
	line := itemHeight + 2*margin
	return Geometry{
		Viewport:    viewport,
		Padding:     padding,
		ItemWidth:   max(viewport.W-2*padding, 0),
		ItemHeight:  itemHeight,
		ItemMargin:  margin,
		LineHeight:  line,
		RuleHeight:  ruleHeight,
		TitleHeight: line + ruleHeight,
	}
}

// ContentHeight is the height below the title bar.
func (g Geometry) ContentHeight() int {
	return g.Viewport.H - g.TitleHeight
}

// ItemsPerPage is how many entries fit below the title bar. It may be zero
// for a viewport too small to hold a single row.
func (g Geometry) ItemsPerPage() int {
	if g.LineHeight <= 0 || g.ContentHeight() <= 0 {
		return 0
	}
	return g.ContentHeight() / g.LineHeight
}
