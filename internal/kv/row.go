package kv

import (
	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
)

// BuildRow lays out key on the left and value on the right of one line of
// width. When both do not fit, the wider one is truncated to the room the
// other leaves; on a tie the key gives way.
//
// A row with an action on a touch host becomes a tap target over its whole
// rectangle. Without one nothing is registered and taps fall through.
func BuildRow(face textfit.Face, key, value string, width, height int, action Action, touch bool) layout.Node {
	kw, vw := face.Measure(key), face.Measure(value)
	if kw+vw > width {
		keyFirst := kw >= vw
		if keyFirst {
			key = textfit.Fit(key, face, width-vw, false)
			kw = face.Measure(key)
		} else {
			value = textfit.Fit(value, face, width-kw, true)
			vw = face.Measure(value)
		}
		// The untouched side alone is wider than the row.
		if kw+vw > width {
			if keyFirst {
				value = textfit.Fit(value, face, width-kw, true)
				vw = face.Measure(value)
			} else {
				key = textfit.Fit(key, face, width-vw, false)
				kw = face.Measure(key)
			}
		}
	}

	row := layout.Box{
		Axis: layout.Overlap,
		W:    width,
		H:    height,
		Children: []layout.Node{
			layout.Text{Content: key, Width: kw, Height: height, Align: layout.Start, Role: layout.RoleKey},
			layout.Text{Content: value, Width: vw, Height: height, Align: layout.End, Role: layout.RoleValue},
		},
	}
	if action == nil || !touch {
		return row
	}
	return layout.Tappable{
		Name:  HitRow,
		Child: row,
		On: func() bool {
			action()
			return true
		},
	}
}
