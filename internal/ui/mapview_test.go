package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/nav"
)

func TestMarkerCell(t *testing.T) {
	tests := []struct {
		name string
		pos  catalog.Position
		w, h int
		col  int
		row  int
	}{
		{"origin", catalog.Position{X: 0, Y: 0}, 41, 21, 0, 0},
		{"far corner", catalog.Position{X: 100, Y: 100}, 41, 21, 40, 20},
		{"center", catalog.Position{X: 50, Y: 50}, 41, 21, 20, 10},
		{"rounds to nearest", catalog.Position{X: 45, Y: 30}, 75, 24, 33, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := markerCell(tt.pos, tt.w, tt.h)
			if col != tt.col || row != tt.row {
				t.Fatalf("markerCell(%v) = (%d,%d), want (%d,%d)", tt.pos, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestLocationAt(t *testing.T) {
	locations := []catalog.Location{
		{ID: 1, Position: catalog.Position{X: 50, Y: 50}},
		{ID: 2, Position: catalog.Position{X: 0, Y: 0}},
	}
	const w, h = 41, 21

	tests := []struct {
		name     string
		col, row int
		want     int
		wantOK   bool
	}{
		{"exact", 20, 10, 0, true},
		{"left neighbour", 19, 10, 0, true},
		{"right neighbour", 21, 10, 0, true},
		{"two cells away", 22, 10, -1, false},
		{"other row", 20, 11, -1, false},
		{"corner marker", 0, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := locationAt(locations, tt.col, tt.row, w, h)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Fatalf("locationAt(%d,%d) = %d,%v want %d,%v", tt.col, tt.row, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMapKeys_SelectAndClose(t *testing.T) {
	m := newTestModel(t, nav.Map)
	visible := m.visibleLocations()
	require.Len(t, visible, 6)

	m = send(t, m, press("l"))
	assert.Equal(t, 1, m.mapView.cursor)
	m = send(t, m, press("enter"))
	id, ok := m.mapView.selection.Current()
	require.True(t, ok)
	assert.Equal(t, visible[1].ID, id)
	assert.Contains(t, m.renderMap(), visible[1].Name)

	m = send(t, m, press("x"))
	_, ok = m.mapView.selection.Current()
	assert.False(t, ok)
	assert.Equal(t, nav.Map, m.nav.Current())
}

func TestMapKeys_CursorWraps(t *testing.T) {
	m := newTestModel(t, nav.Map)
	m = send(t, m, press("h"))
	assert.Equal(t, len(m.visibleLocations())-1, m.mapView.cursor)
}

func TestMapEscape(t *testing.T) {
	m := newTestModel(t, nav.Map)
	m = send(t, m, press("enter"))

	// First esc closes the panel, the second leaves the page.
	m = send(t, m, press("esc"))
	assert.Equal(t, nav.Map, m.nav.Current())
	_, ok := m.mapView.selection.Current()
	assert.False(t, ok)

	m = send(t, m, press("esc"))
	assert.Equal(t, nav.Home, m.nav.Current())
}

func TestMapCategoryKeepsSelection(t *testing.T) {
	m := newTestModel(t, nav.Map)
	m = send(t, m, press("l"))
	m = send(t, m, press("enter"))
	selected, _ := m.mapView.selection.Current()

	m = send(t, m, press("c"))
	assert.Equal(t, "Traditional", m.mapView.category)
	assert.Equal(t, 0, m.mapView.cursor)
	assert.Len(t, m.visibleLocations(), 1)

	id, ok := m.mapView.selection.Current()
	require.True(t, ok)
	assert.Equal(t, selected, id)

	m = send(t, m, press("0"))
	assert.Len(t, m.visibleLocations(), 6)
}

func TestClickMap(t *testing.T) {
	m := newTestModel(t, nav.Map)
	w, h := m.mapSize()
	target := m.visibleLocations()[2]
	col, row := markerCell(target.Position, w, h)

	m.clickMap(mapLeftCol+col, mapTopLine+row)
	id, ok := m.mapView.selection.Current()
	require.True(t, ok)
	assert.Equal(t, target.ID, id)
	assert.Equal(t, 2, m.mapView.cursor)
}

func TestClickMap_EmptyAreaKeepsSelection(t *testing.T) {
	m := newTestModel(t, nav.Map)
	m.clickMap(mapLeftCol, mapTopLine)
	_, ok := m.mapView.selection.Current()
	assert.False(t, ok)

	m = send(t, m, press("enter"))
	before, _ := m.mapView.selection.Current()
	m.clickMap(mapLeftCol, mapTopLine)
	m.clickMap(-5, 0)
	after, _ := m.mapView.selection.Current()
	assert.Equal(t, before, after)
}

func TestToggleASCIIMarkers(t *testing.T) {
	m := newTestModel(t, nav.Map)
	m = send(t, m, press("A"))
	assert.True(t, m.prefs.ASCIIMarkers)
	assert.Equal(t, "R", markerSymbol(catalog.KindRestaurant, false, true))
	assert.Equal(t, "M", markerSymbol(catalog.KindMarket, false, true))
	assert.Equal(t, "@", markerSymbol(catalog.KindMarket, true, true))
}
