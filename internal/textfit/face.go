package textfit

// Face measures text for layout. Widths are in the face's own units: cells
// for a terminal, pixels for a bitmap font.
type Face interface {
	// Name identifies the face metrics. Two faces with the same name must
	// measure identically, the fitter memoizes per name.
	Name() string
	// Measure returns the width of s.
	Measure(s string) int
	// Prefix returns the longest prefix of s whose width is <= maxWidth.
	Prefix(s string, maxWidth int) string
}
