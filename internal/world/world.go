/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import (
	"fmt"

	"grid-caster/internal/geom"
)

// Grid is a rectangular layer of single-digit tile codes, one row per string.
// '0' is empty/passable; '1'..'9' are tile variants.
type Grid []string

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Height() int {
	return len(g)
}

// In reports whether a falls inside the grid.
func (g Grid) In(a geom.Point) bool {
	x, y := int(a.X), int(a.Y)
	return x >= 0 && y >= 0 && y < len(g) && x < len(g[y]) && a.X >= 0 && a.Y >= 0
}

// At returns the tile code of the cell containing a. The caller guarantees a
// is in bounds; the caster and motion code never sample outside a validated
// map's border.
func (g Grid) At(a geom.Point) int {
	return int(g[int(a.Y)][int(a.X)] - '0')
}

// Map holds the three parallel layers of a level. Immutable for the process
// lifetime once validated.
type Map struct {
	Ceiling Grid
	Walling Grid
	Floring Grid
}

// NewMap validates the three layers once at startup: rectangular, identical
// dimensions, digits only, a fully sealed walling border, and no empty cells
// in the ceiling or floring layers (every non-wall scanline samples one of
// them). Validation failure is a fatal configuration error.
func NewMap(ceiling, walling, floring Grid) (Map, error) {
	if err := validate("walling", walling); err != nil {
		return Map{}, err
	}
	for name, layer := range map[string]Grid{"ceiling": ceiling, "floring": floring} {
		if err := validate(name, layer); err != nil {
			return Map{}, err
		}
		if layer.Width() != walling.Width() || layer.Height() != walling.Height() {
			return Map{}, fmt.Errorf("world: %s layer is %dx%d, walling is %dx%d",
				name, layer.Width(), layer.Height(), walling.Width(), walling.Height())
		}
		for y, row := range layer {
			for x, c := range row {
				if c == '0' {
					return Map{}, fmt.Errorf("world: %s layer has an empty cell at %d,%d", name, x, y)
				}
			}
		}
	}
	if err := sealed(walling); err != nil {
		return Map{}, err
	}
	return Map{Ceiling: ceiling, Walling: walling, Floring: floring}, nil
}

// MustMap is for levels baked into the binary, where a validation failure is
// a programming error.
func MustMap(ceiling, walling, floring Grid) Map {
	m, err := NewMap(ceiling, walling, floring)
	if err != nil {
		panic(err)
	}
	return m
}

func validate(name string, g Grid) error {
	if len(g) < 3 || len(g[0]) < 3 {
		return fmt.Errorf("world: %s layer must be at least 3x3", name)
	}
	for y, row := range g {
		if len(row) != len(g[0]) {
			return fmt.Errorf("world: %s layer row %d has length %d, want %d", name, y, len(row), len(g[0]))
		}
		for x, c := range row {
			if c < '0' || c > '9' {
				return fmt.Errorf("world: %s layer has non-digit %q at %d,%d", name, c, x, y)
			}
		}
	}
	return nil
}

// sealed checks the walling border is solid. An open border lets a ray leave
// the grid, which the caster treats as a fatal invariant violation.
func sealed(g Grid) error {
	for y, row := range g {
		for x, c := range row {
			if c != '0' {
				continue
			}
			if y == 0 || y == len(g)-1 || x == 0 || x == len(row)-1 {
				return fmt.Errorf("world: walling border is open at %d,%d", x, y)
			}
		}
	}
	return nil
}

// Stock returns the built-in level.
func Stock() Map {
	ceiling := Grid{
		"111111111111111111111111111111111111111111111",
		"122223223232232111111111111111222232232322321",
		"122222221111232111111111111111222222211112321",
		"122221221232323232323232323232222212212323231",
		"122222221111232111111111111111222222211112321",
		"122223223232232111111111111111222232232322321",
		"111111111111111111111111111111111111111111111",
	}
	walling := Grid{
		"111111111111111111111111111111111111111111111",
		"100000000000000111111111111111000000000000001",
		"103330001111000111111111111111033300011110001",
		"103000000000000000000000000000030000030000001",
		"103330001111000111111111111111033300011110001",
		"100000000000000111111111111111000000000000001",
		"111111111111111111111111111111111111111111111",
	}
	floring := Grid{
		"111111111111111111111111111111111111111111111",
		"122223223232232111111111111111222232232322321",
		"122222221111232111111111111111222222211112321",
		"122222221232323323232323232323222222212323231",
		"122222221111232111111111111111222222211112321",
		"122223223232232111111111111111222232232322321",
		"111111111111111111111111111111111111111111111",
	}
	return MustMap(ceiling, walling, floring)
}
