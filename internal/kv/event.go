package kv

// Direction of a swipe.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Event is an input event delivered to Pager.Handle.
type Event interface {
	event()
}

// Tap is a press at a point in pager coordinates.
type Tap struct {
	X, Y int
}

// Swipe is a directional gesture.
type Swipe struct {
	Dir Direction
}

func (Tap) event()   {}
func (Swipe) event() {}
