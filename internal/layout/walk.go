package layout

// Walk visits n and its descendants in paint order with their absolute
// rectangles, starting at origin.
func Walk(n Node, origin Point, visit func(Node, Rect)) {
	s := n.Size()
	r := Rect{X: origin.X, Y: origin.Y, W: s.W, H: s.H}
	visit(n, r)

	switch n := n.(type) {
	case Box:
		walkBox(n, r, visit)
	case *Box:
		walkBox(*n, r, visit)
	case Place:
		Walk(n.Child, Point{X: r.X + n.X, Y: r.Y + n.Y}, visit)
	case Tappable:
		Walk(n.Child, origin, visit)
	}
}

func walkBox(b Box, r Rect, visit func(Node, Rect)) {
	x, y := r.X, r.Y
	for _, child := range b.Children {
		cs := child.Size()
		align := b.Align
		if a, ok := child.(Aligned); ok {
			align = a.Alignment()
		}

		switch b.Axis {
		case Vertical:
			Walk(child, Point{X: r.X + offset(align, r.W, cs.W), Y: y}, visit)
			y += cs.H
		case Horizontal:
			Walk(child, Point{X: x, Y: r.Y + offset(align, r.H, cs.H)}, visit)
			x += cs.W
		default:
			Walk(child, Point{X: r.X + offset(align, r.W, cs.W), Y: r.Y}, visit)
		}
	}
}

func offset(align Align, room, size int) int {
	switch align {
	case End:
		return room - size
	case Center:
		return (room - size) / 2
	default:
		return 0
	}
}

// Hit is a resolved tap target.
type Hit struct {
	Name string
	Rect Rect
	On   func() bool
}

// Hits collects the tap targets of n in paint order.
func Hits(n Node, origin Point) []Hit {
	var hits []Hit
	Walk(n, origin, func(node Node, r Rect) {
		if t, ok := node.(Tappable); ok && t.On != nil {
			hits = append(hits, Hit{Name: t.Name, Rect: r, On: t.On})
		}
	})
	return hits
}

// HitTest returns the topmost hit containing (x, y).
func HitTest(hits []Hit, x, y int) (Hit, bool) {
	for i := len(hits) - 1; i >= 0; i-- {
		if hits[i].Rect.Contains(x, y) {
			return hits[i], true
		}
	}
	return Hit{}, false
}
