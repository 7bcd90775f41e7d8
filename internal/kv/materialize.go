package kv

import (
	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
)

// Materialize builds the nodes of one page. page is 1-based. Iteration
// stops at the end of entries; short pages are not padded and never wrap.
// Ignored entries use a slot but emit nothing, not even their margins.
func Materialize(entries []Entry, page, perPage int, geom Geometry, face textfit.Face, touch bool) []layout.Node {
	if page < 1 || perPage < 1 {
		return nil
	}

	offset := (page - 1) * perPage
	var nodes []layout.Node
	for i := 0; i < perPage; i++ {
		idx := offset + i
		if idx >= len(entries) {
			break
		}

		e := entries[idx]
		switch e.Kind {
		case KindPair:
			nodes = append(nodes,
				layout.Gap{H: geom.ItemMargin},
				BuildRow(face, e.Key, e.Value, geom.ItemWidth, geom.ItemHeight, e.Action, touch),
				layout.Gap{H: geom.ItemMargin},
			)
		case KindSeparator:
			nodes = append(nodes,
				layout.Gap{H: geom.ItemMargin},
				layout.Rule{W: geom.ItemWidth, H: geom.RuleHeight},
				layout.Gap{H: geom.ItemMargin},
			)
		}
	}
	return nodes
}
