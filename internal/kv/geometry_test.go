package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HaiFongPan/kvpage/internal/layout"
)

func TestNewGeometry_Derivation(t *testing.T) {
	g := NewGeometry(layout.Size{W: 240, H: 240}, 16, 4, 1)

	assert.Equal(t, 232, g.ItemWidth)
	assert.Equal(t, 4, g.ItemMargin)
	assert.Equal(t, 24, g.LineHeight)
	assert.Equal(t, 25, g.TitleHeight)
	assert.Equal(t, 215, g.ContentHeight())
	assert.Equal(t, 8, g.ItemsPerPage())
}

func TestNewGeometry_TerminalCells(t *testing.T) {
	g := NewGeometry(layout.Size{W: 80, H: 24}, 1, 1, 1)

	assert.Equal(t, 78, g.ItemWidth)
	assert.Equal(t, 0, g.ItemMargin)
	assert.Equal(t, 1, g.LineHeight)
	assert.Equal(t, 2, g.TitleHeight)
	assert.Equal(t, 22, g.ItemsPerPage())
}

func TestGeometry_ItemsPerPageDegenerate(t *testing.T) {
	tests := []struct {
		name string
		geom Geometry
	}{
		{"title fills viewport", NewGeometry(layout.Size{W: 10, H: 2}, 1, 1, 1)},
		{"smaller than title", NewGeometry(layout.Size{W: 10, H: 1}, 1, 1, 1)},
		{"zero item height", NewGeometry(layout.Size{W: 10, H: 10}, 0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, tt.geom.ItemsPerPage())
		})
	}
}

func TestNewGeometry_NarrowViewportClampsWidth(t *testing.T) {
	g := NewGeometry(layout.Size{W: 1, H: 10}, 1, 1, 1)
	assert.Equal(t, 0, g.ItemWidth)
}
