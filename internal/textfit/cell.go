package textfit

import (
	"sync"

	"github.com/mattn/go-runewidth"
)

// CellFace measures text in terminal cells.
type CellFace struct {
	cond *runewidth.Condition

	mu    sync.RWMutex
	cache map[rune]int
}

// NewCellFace returns a cell face with East Asian ambiguous widths treated
// as narrow, so "…" takes a single cell.
func NewCellFace() *CellFace {
	return &CellFace{
		cond:  &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true},
		cache: make(map[rune]int),
	}
}

// Name implements Face.
func (f *CellFace) Name() string {
	return "cell"
}

// Measure implements Face.
func (f *CellFace) Measure(s string) int {
	width := 0
	for _, r := range s {
		width += f.runeWidth(r)
	}
	return width
}

// Prefix implements Face.
func (f *CellFace) Prefix(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	width := 0
	for i, r := range s {
		w := f.runeWidth(r)
		if width+w > maxWidth {
			return s[:i]
		}
		width += w
	}
	return s
}

func (f *CellFace) runeWidth(r rune) int {
	f.mu.RLock()
	w, ok := f.cache[r]
	f.mu.RUnlock()
	if ok {
		return w
	}

	w = f.cond.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	f.mu.Lock()
	f.cache[r] = w
	f.mu.Unlock()
	return w
}
