/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package camera projects camera-space wall distances into vertical screen
// spans, and maps non-wall scanlines back onto the floor and ceiling planes.
package camera

import "grid-caster/internal/geom"

// nearDepth bounds the projection divisor so walls touching the camera plane
// do not blow the span up to infinity.
const nearDepth = 1e-2

// Wall is a per-column projection result. Top and Bot are scanline bounds
// clamped to the viewport; Size is the apparent height before clamping and
// parameterizes the floor/ceiling re-projection.
type Wall struct {
	Top  int
	Bot  int
	Size float64
}

// Project converts a camera-space hit displacement into a wall span. The
// caller has already de-rotated the displacement by the hero's heading, so
// corrected.X is the view-angle-independent depth that keeps walls straight.
func Project(xres, yres int, fov geom.Line, corrected geom.Point) Wall {
	depth := corrected.X
	if depth < nearDepth {
		depth = nearDepth
	}
	size := 0.5 * fov.A.X * float64(xres) / depth
	top := int((float64(yres) + size) / 2)
	bot := int((float64(yres) - size) / 2)
	if top > yres {
		top = yres
	}
	if bot < 0 {
		bot = 0
	}
	return Wall{Top: top, Bot: bot, Size: size}
}

// Pcast inverts the projection for a non-wall row: the signed depth at which
// the hero-to-hit trace crosses the floor or ceiling plane on screen row y.
// Floor rows interpolate the trace at -Pcast, ceiling rows at +Pcast; the
// shared numeric form keeps the two sides seamless at the horizon.
func Pcast(size float64, yres, y int) float64 {
	return size / float64(2*(y+1)-yres)
}
