// Package layout is a small box tree the pager composes pages from. It
// knows geometry only; painting is left to a Grid (terminal) or an image
// painter.
package layout

// Axis is the direction a Box stacks its children in.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
	// Overlap draws every child from the box origin, later children on top.
	Overlap
)

// Align positions a child on the cross axis of its box.
type Align int

const (
	Start Align = iota
	End
	Center
)

// Role tells a painter what a Text or Rule represents.
type Role int

const (
	RoleKey Role = iota
	RoleValue
	RoleTitle
	RoleClose
	RoleLabel
	RoleRule
)

// Size is a width and height in face units.
type Size struct {
	W, H int
}

// Point is a position in face units.
type Point struct {
	X, Y int
}

// Rect is a positioned Size.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Node is anything that can be laid out.
type Node interface {
	Size() Size
}

// Aligned is implemented by nodes that pick their own cross-axis alignment
// instead of inheriting the box's.
type Aligned interface {
	Alignment() Align
}

// Box stacks children along Axis. A zero W or H is derived from the
// children.
type Box struct {
	Axis     Axis
	Align    Align
	W, H     int
	Children []Node
}

// Size implements Node.
func (b Box) Size() Size {
	var s Size
	for _, child := range b.Children {
		cs := child.Size()
		switch b.Axis {
		case Vertical:
			s.W = max(s.W, cs.W)
			s.H += cs.H
		case Horizontal:
			s.W += cs.W
			s.H = max(s.H, cs.H)
		default:
			s.W = max(s.W, cs.W)
			s.H = max(s.H, cs.H)
		}
	}
	if b.W > 0 {
		s.W = b.W
	}
	if b.H > 0 {
		s.H = b.H
	}
	return s
}

// Text is a single line of already-fitted text. Width is its measured width.
type Text struct {
	Content string
	Width   int
	Height  int
	Align   Align
	Role    Role
}

// Size implements Node.
func (t Text) Size() Size {
	return Size{W: t.Width, H: t.Height}
}

// Alignment implements Aligned.
func (t Text) Alignment() Align {
	return t.Align
}

// Rule is a thin divider line.
type Rule struct {
	W, H int
}

// Size implements Node.
func (r Rule) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Gap is empty vertical space.
type Gap struct {
	H int
}

// Size implements Node.
func (g Gap) Size() Size {
	return Size{H: g.H}
}

// Place offsets its child from the slot its parent gives it.
type Place struct {
	X, Y  int
	Child Node
}

// Size implements Node.
func (p Place) Size() Size {
	cs := p.Child.Size()
	return Size{W: p.X + cs.W, H: p.Y + cs.H}
}

// Tappable makes the rectangle of its child a tap target. On reports
// whether the tap was consumed.
type Tappable struct {
	Name  string
	Child Node
	On    func() bool
}

// Size implements Node.
func (t Tappable) Size() Size {
	return t.Child.Size()
}

// Alignment implements Aligned by deferring to the child.
func (t Tappable) Alignment() Align {
	if a, ok := t.Child.(Aligned); ok {
		return a.Alignment()
	}
	return Start
}
