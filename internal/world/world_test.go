/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import (
	"testing"

	"grid-caster/internal/geom"
)

func solid(n int) Grid {
	g := make(Grid, n)
	for i := range g {
		row := make([]byte, n)
		for j := range row {
			row[j] = '1'
		}
		g[i] = string(row)
	}
	return g
}

func TestNewMapAcceptsStockLevel(t *testing.T) {
	m := Stock()
	if m.Walling.Width() != 45 || m.Walling.Height() != 7 {
		t.Errorf("stock walling is %dx%d, want 45x7", m.Walling.Width(), m.Walling.Height())
	}
}

func TestNewMapRejectsJaggedRows(t *testing.T) {
	walling := Grid{"111", "1001", "111"}
	if _, err := NewMap(solid(3), walling, solid(3)); err == nil {
		t.Error("jagged walling accepted")
	}
}

func TestNewMapRejectsNonDigits(t *testing.T) {
	walling := Grid{"111", "1x1", "111"}
	if _, err := NewMap(solid(3), walling, solid(3)); err == nil {
		t.Error("non-digit walling accepted")
	}
}

func TestNewMapRejectsMismatchedLayers(t *testing.T) {
	if _, err := NewMap(solid(4), solid(3), solid(3)); err == nil {
		t.Error("mismatched ceiling dimensions accepted")
	}
}

func TestNewMapRejectsOpenBorder(t *testing.T) {
	walling := Grid{"111", "101", "110"}
	if _, err := NewMap(solid(3), walling, solid(3)); err == nil {
		t.Error("open walling border accepted")
	}
}

func TestNewMapRejectsEmptyFloorCell(t *testing.T) {
	floring := Grid{"111", "101", "111"}
	if _, err := NewMap(solid(3), Grid{"111", "101", "111"}, floring); err == nil {
		t.Error("empty floring cell accepted")
	}
}

func TestAtTruncatesToCell(t *testing.T) {
	g := Grid{"123", "456", "789"}
	if tile := g.At(geom.Point{X: 1.9, Y: 0.1}); tile != 2 {
		t.Errorf("tile at (1.9, 0.1): got %d, want 2", tile)
	}
	if tile := g.At(geom.Point{X: 2.5, Y: 2.5}); tile != 9 {
		t.Errorf("tile at (2.5, 2.5): got %d, want 9", tile)
	}
}

func TestIn(t *testing.T) {
	g := solid(3)
	cases := []struct {
		p    geom.Point
		want bool
	}{
		{geom.Point{X: 0.5, Y: 0.5}, true},
		{geom.Point{X: 2.9, Y: 2.9}, true},
		{geom.Point{X: 3.0, Y: 1.0}, false},
		{geom.Point{X: -0.1, Y: 1.0}, false},
		{geom.Point{X: 1.0, Y: -0.1}, false},
	}
	for _, c := range cases {
		if got := g.In(c.p); got != c.want {
			t.Errorf("in(%+v): got %v, want %v", c.p, got, c.want)
		}
	}
}
