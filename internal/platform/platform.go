/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package platform wraps the presentation surface, input source, and clock
// the renderer depends on. Two backends exist: an SDL window and a terminal.
package platform

import (
	"time"

	"grid-caster/internal/hero"
)

// Display is a locked framebuffer: 32-bit ARGB, one uint32 per pixel, stored
// in the surface's native transposed orientation (the vertical axis is the
// minor index) for cache-friendly column writes. Valid only between Lock and
// Unlock.
type Display struct {
	Pixels []uint32
	Stride int
}

// Put writes one pixel at column x, row y (y grows away from the floor).
func (d Display) Put(x, y int, pixel uint32) {
	d.Pixels[y+x*d.Stride] = pixel
}

// Surface owns the window and framebuffer. Lock grants the renderer exclusive
// use of the pixel buffer; Unlock must be called on every exit path before
// Present.
type Surface interface {
	Size() (xres, yres int)
	Lock() (Display, error)
	Unlock()
	Present()
	Destroy()
}

// Input drains pending events and snapshots the keyboard. Poll reports a quit
// request; it is checked once per frame, never mid-frame.
type Input interface {
	Poll() bool
	Keys() hero.Keys
}

// Clock paces the frame loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Frontend is the full collaborator set a scene runs against.
type Frontend interface {
	Surface
	Input
	Clock
}
