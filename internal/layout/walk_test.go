package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Size(t *testing.T) {
	col := Box{Axis: Vertical, Children: []Node{
		Text{Width: 4, Height: 1},
		Gap{H: 2},
		Rule{W: 10, H: 1},
	}}
	assert.Equal(t, Size{W: 10, H: 4}, col.Size())

	row := Box{Axis: Horizontal, Children: []Node{Text{Width: 4, Height: 1}, Text{Width: 3, Height: 2}}}
	assert.Equal(t, Size{W: 7, H: 2}, row.Size())

	fixed := Box{Axis: Overlap, W: 20, H: 3, Children: []Node{Text{Width: 4, Height: 1}}}
	assert.Equal(t, Size{W: 20, H: 3}, fixed.Size())

	assert.Equal(t, Size{W: 7, H: 3}, Place{X: 2, Y: 2, Child: Text{Width: 5, Height: 1}}.Size())
}

func TestWalk_PositionsChildren(t *testing.T) {
	key := Text{Content: "key", Width: 3, Height: 1, Align: Start}
	value := Text{Content: "value", Width: 5, Height: 1, Align: End}
	root := Box{Axis: Vertical, Children: []Node{
		Gap{H: 1},
		Box{Axis: Overlap, W: 20, H: 1, Children: []Node{key, value}},
		Place{X: 4, Child: Rule{W: 6, H: 1}},
	}}

	got := map[string]Rect{}
	Walk(root, Point{X: 2, Y: 1}, func(n Node, r Rect) {
		switch n := n.(type) {
		case Text:
			got[n.Content] = r
		case Rule:
			got["rule"] = r
		}
	})

	assert.Equal(t, Rect{X: 2, Y: 2, W: 3, H: 1}, got["key"])
	assert.Equal(t, Rect{X: 17, Y: 2, W: 5, H: 1}, got["value"])
	assert.Equal(t, Rect{X: 6, Y: 3, W: 6, H: 1}, got["rule"])
}

func TestHitTest_TopmostWins(t *testing.T) {
	var tapped []string
	tap := func(name string) func() bool {
		return func() bool {
			tapped = append(tapped, name)
			return true
		}
	}

	root := Box{Axis: Overlap, W: 10, H: 1, Children: []Node{
		Tappable{Name: "row", Child: Box{Axis: Overlap, W: 10, H: 1}, On: tap("row")},
		Tappable{Name: "close", Child: Text{Content: "×", Width: 1, Height: 1, Align: End}, On: tap("close")},
	}}

	hits := Hits(root, Point{})
	require.Len(t, hits, 2)
	assert.Equal(t, Rect{X: 9, Y: 0, W: 1, H: 1}, hits[1].Rect)

	hit, ok := HitTest(hits, 9, 0)
	require.True(t, ok)
	assert.Equal(t, "close", hit.Name)
	assert.True(t, hit.On())

	hit, ok = HitTest(hits, 3, 0)
	require.True(t, ok)
	hit.On()

	_, ok = HitTest(hits, 3, 1)
	assert.False(t, ok)
	assert.Equal(t, []string{"close", "row"}, tapped)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 2, H: 2}

	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2, 2))
	assert.False(t, r.Contains(3, 2))
	assert.False(t, r.Contains(0, 1))
}
