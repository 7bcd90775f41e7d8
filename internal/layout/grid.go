package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RuleRune draws Rule nodes on a Grid.
const RuleRune = '─'

type cell struct {
	s    string
	role Role
	ink  bool
	cont bool // right half of a wide rune
}

// Grid paints layout trees onto terminal cells. Later paints overwrite
// earlier ones, which is how Overlap boxes stack.
type Grid struct {
	w, h  int
	cells []cell
	cond  *runewidth.Condition
}

// NewGrid returns a blank w x h grid.
func NewGrid(w, h int) *Grid {
	w, h = max(w, 0), max(h, 0)
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]cell, w*h),
		cond:  &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true},
	}
}

// Paint draws n with its top-left corner at origin. Anything outside the
// grid is clipped.
func (g *Grid) Paint(n Node, origin Point) {
	Walk(n, origin, func(node Node, r Rect) {
		switch node := node.(type) {
		case Text:
			g.text(node, r)
		case Rule:
			g.rule(r)
		}
	})
}

func (g *Grid) text(t Text, r Rect) {
	if r.H <= 0 {
		return
	}
	y := r.Y + (r.H-1)/2
	x := r.X
	last := -1
	for _, ru := range t.Content {
		w := g.cond.RuneWidth(ru)
		if w == 0 {
			if last >= 0 {
				g.cells[last].s += string(ru)
			}
			continue
		}
		if x+w > r.X+r.W || x+w > g.w {
			return
		}
		last = g.set(x, y, string(ru), t.Role)
		if w == 2 {
			g.setCont(x+1, y)
		}
		x += w
	}
}

func (g *Grid) rule(r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.set(x, y, string(RuleRune), RoleRule)
		}
	}
}

// set writes one cell and returns its index, or -1 when clipped.
func (g *Grid) set(x, y int, s string, role Role) int {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return -1
	}
	i := y*g.w + x
	if g.cells[i].cont && x > 0 {
		g.cells[i-1] = cell{}
	}
	if x+1 < g.w && g.cells[i+1].cont {
		g.cells[i+1] = cell{}
	}
	g.cells[i] = cell{s: s, role: role, ink: true}
	return i
}

func (g *Grid) setCont(x, y int) {
	if x <= 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{role: g.cells[y*g.w+x-1].role, ink: true, cont: true}
}

// Lines renders every row, styling inked runs by role. A nil style leaves
// the text plain.
func (g *Grid) Lines(style func(Role) lipgloss.Style) []string {
	lines := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var line, run strings.Builder
		runRole, runInk := Role(-1), false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runInk && style != nil {
				line.WriteString(style(runRole).Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}

		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			if c.ink != runInk || (c.ink && c.role != runRole) {
				flush()
				runRole, runInk = c.role, c.ink
			}
			switch {
			case c.cont:
			case c.ink:
				run.WriteString(c.s)
			default:
				run.WriteByte(' ')
			}
		}
		flush()
		lines[y] = line.String()
	}
	return lines
}

// String renders the grid as plain text.
func (g *Grid) String() string {
	return strings.Join(g.Lines(nil), "\n")
}
