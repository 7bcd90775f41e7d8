package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/kvpage/internal/layout"
)

func scenarioA() []Entry {
	return Ingest([]any{
		[2]string{"Period", "00:00:00"},
		"----",
		[2]string{"Page", "5"},
	})
}

func TestMaterialize_PairAndSeparatorShapes(t *testing.T) {
	geom := NewGeometry(layout.Size{W: 180, H: 200}, 16, 10, 1)

	nodes := Materialize(scenarioA(), 1, 2, geom, tenFace, true)
	require.Len(t, nodes, 6)

	assert.Equal(t, layout.Gap{H: 4}, nodes[0])
	key, value := rowTexts(t, nodes[1])
	assert.Equal(t, "Period", key.Content)
	assert.Equal(t, "00:00:00", value.Content)
	assert.Equal(t, layout.Gap{H: 4}, nodes[2])

	assert.Equal(t, layout.Gap{H: 4}, nodes[3])
	assert.Equal(t, layout.Rule{W: 160, H: 1}, nodes[4])
	assert.Equal(t, layout.Gap{H: 4}, nodes[5])
}

func TestMaterialize_TruncatesOverflowingRow(t *testing.T) {
	// item width 100; "Period" 60 + "00:00:00" 80 overflows, the value is wider
	geom := NewGeometry(layout.Size{W: 120, H: 200}, 16, 10, 1)

	nodes := Materialize(scenarioA(), 1, 2, geom, tenFace, true)
	require.Len(t, nodes, 6)

	key, value := rowTexts(t, nodes[1])
	assert.Equal(t, "Period", key.Content)
	assert.Equal(t, "  0…", value.Content)
	assert.LessOrEqual(t, tenFace.Measure(key.Content)+tenFace.Measure(value.Content), geom.ItemWidth)
	assert.Equal(t, layout.Rule{W: 100, H: 1}, nodes[4])
}

func TestMaterialize_LastPageIsNotPadded(t *testing.T) {
	geom := NewGeometry(layout.Size{W: 120, H: 200}, 16, 10, 1)

	nodes := Materialize(scenarioA(), 2, 2, geom, tenFace, true)
	require.Len(t, nodes, 3)
	key, _ := rowTexts(t, nodes[1])
	assert.Equal(t, "Page", key.Content)

	assert.Empty(t, Materialize(scenarioA(), 3, 2, geom, tenFace, true))
}

func TestMaterialize_IgnoredEntriesEmitNothing(t *testing.T) {
	geom := NewGeometry(layout.Size{W: 40, H: 20}, 1, 1, 1)
	entries := Ingest([]any{"note", [2]string{"a", "1"}, 42, [2]string{"b", "2"}})

	page1 := Materialize(entries, 1, 2, geom, cellFace, true)
	require.Len(t, page1, 3, "ignored entry still takes a slot")
	key, _ := rowTexts(t, page1[1])
	assert.Equal(t, "a", key.Content)

	page2 := Materialize(entries, 2, 2, geom, cellFace, true)
	require.Len(t, page2, 3)
	key, _ = rowTexts(t, page2[1])
	assert.Equal(t, "b", key.Content)
}

func TestMaterialize_InvalidArguments(t *testing.T) {
	geom := NewGeometry(layout.Size{W: 40, H: 20}, 1, 1, 1)

	assert.Nil(t, Materialize(scenarioA(), 0, 2, geom, cellFace, true))
	assert.Nil(t, Materialize(scenarioA(), 1, 0, geom, cellFace, true))
	assert.Nil(t, Materialize(nil, 1, 2, geom, cellFace, true))
}
