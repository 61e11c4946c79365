/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package raycast advances rays across integer grid boundaries until they
// enter a solid tile (grid DDA).
package raycast

import (
	"fmt"
	"math"

	"grid-caster/internal/geom"
	"grid-caster/internal/world"
)

// Hit is the result of a cast: the tile code struck and the exact boundary
// crossing where the ray enters its cell.
type Hit struct {
	Tile  int
	Where geom.Point
}

// stepH advances a to the next integer x boundary along direction b, deriving
// y from the ray's slope. An axis-aligned vertical ray produces an infinite
// candidate here, which loses the distance comparison in Cast.
func stepH(a, b geom.Point) geom.Point {
	var x float64
	if b.X > 0 {
		x = math.Floor(a.X + 1)
	} else {
		x = math.Ceil(a.X - 1)
	}
	return geom.Point{X: x, Y: b.Slope()*(x-a.X) + a.Y}
}

// stepV advances a to the next integer y boundary along direction b, deriving
// x from the inverse slope.
func stepV(a, b geom.Point) geom.Point {
	var y float64
	if b.Y > 0 {
		y = math.Floor(a.Y + 1)
	} else {
		y = math.Ceil(a.Y - 1)
	}
	return geom.Point{X: (y-a.Y)/b.Slope() + a.X, Y: y}
}

// closer picks whichever of b, c lies nearer to a. Equidistant candidates
// coincide at a grid corner, so either serves.
func closer(a, b, c geom.Point) geom.Point {
	if b.Sub(a).Mag() < c.Sub(a).Mag() {
		return b
	}
	return c
}

// nudge pushes a boundary point a small way along the ray so the tile sample
// lands inside the entered cell rather than on its edge. The push is limited
// to whichever axis sits exactly on an integer; a corner crossing gets both.
func nudge(ray, direction geom.Point) geom.Point {
	delta := direction.Mul(0.01)
	switch {
	case geom.Dec(ray.X) == 0 && geom.Dec(ray.Y) == 0:
		return ray.Add(delta)
	case geom.Dec(ray.X) == 0:
		return ray.Add(geom.Point{X: delta.X})
	default:
		return ray.Add(geom.Point{Y: delta.Y})
	}
}

// Cast walks the ray from where along direction until it enters a non-zero
// walling tile, reporting that tile and the boundary crossing point. The walk
// is bounded: a ray that escapes the grid or exceeds the step budget means the
// map's border is not sealed, which is an invariant violation, not a
// recoverable condition.
func Cast(where, direction geom.Point, walling world.Grid) (Hit, error) {
	limit := 2 * (walling.Width() + walling.Height())
	for i := 0; i < limit; i++ {
		ray := closer(where, stepH(where, direction), stepV(where, direction))
		test := nudge(ray, direction)
		if !walling.In(test) {
			return Hit{}, fmt.Errorf("raycast: ray from %+v along %+v escaped the grid", where, direction)
		}
		if tile := walling.At(test); tile != 0 {
			return Hit{Tile: tile, Where: ray}, nil
		}
		where = ray
	}
	return Hit{}, fmt.Errorf("raycast: no wall within %d steps from %+v along %+v", limit, where, direction)
}
