/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package hero holds the player entity and its per-frame motion rules.
package hero

import (
	"grid-caster/internal/geom"
	"grid-caster/internal/world"
)

const (
	// TurnRate is the heading change per frame while a turn key is held.
	TurnRate = 0.1

	defaultFocal = 1.0
	defaultSpeed = 0.10
	defaultAccel = 0.01
)

// Keys is the per-frame input snapshot, sampled once by the platform layer
// before the motion update.
type Keys struct {
	TurnLeft    bool
	TurnRight   bool
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	Quit        bool
}

func (k Keys) moving() bool {
	return k.Forward || k.Backward || k.StrafeLeft || k.StrafeRight
}

// Hero is the player state, advanced by value once per frame: turn, then move.
type Hero struct {
	Fov          geom.Line
	Where        geom.Point
	Velocity     geom.Point
	Speed        float64
	Acceleration float64
	Theta        float64
}

// Viewport is the camera's local-space view-plane segment for a focal length.
func Viewport(focal float64) geom.Line {
	return geom.Line{
		A: geom.Point{X: focal, Y: -1},
		B: geom.Point{X: focal, Y: +1},
	}
}

// Born creates the hero with stock tuning, standing inside the stock level.
func Born() Hero {
	return Hero{
		Fov:          Viewport(defaultFocal),
		Where:        geom.Point{X: 3.5, Y: 3.5},
		Speed:        defaultSpeed,
		Acceleration: defaultAccel,
	}
}

// Spin updates the heading. Theta is unbounded; trigonometric periodicity
// wraps it implicitly.
func (h Hero) Spin(k Keys) Hero {
	if k.TurnLeft {
		h.Theta -= TurnRate
	}
	if k.TurnRight {
		h.Theta += TurnRate
	}
	return h
}

// Move integrates velocity and position for one frame. Directional keys
// accelerate along the heading and its right angle, combining additively on
// diagonals; with no input the velocity decays exponentially. Speed is capped
// along the current direction. A move into a solid walling tile is rejected
// outright: position reverts and velocity zeroes, with no sliding.
func (h Hero) Move(walling world.Grid, k Keys) Hero {
	last := h.Where
	if k.moving() {
		direction := geom.Point{X: 1}.Turn(h.Theta)
		acceleration := direction.Mul(h.Acceleration)
		if k.Forward {
			h.Velocity = h.Velocity.Add(acceleration)
		}
		if k.Backward {
			h.Velocity = h.Velocity.Sub(acceleration)
		}
		if k.StrafeRight {
			h.Velocity = h.Velocity.Add(acceleration.Rag())
		}
		if k.StrafeLeft {
			h.Velocity = h.Velocity.Sub(acceleration.Rag())
		}
	} else {
		h.Velocity = h.Velocity.Mul(1 - h.Acceleration/h.Speed)
	}
	if h.Velocity.Mag() > h.Speed {
		h.Velocity = h.Velocity.Unit().Mul(h.Speed)
	}
	h.Where = h.Where.Add(h.Velocity)
	if walling.At(h.Where) != 0 {
		h.Velocity = geom.Point{}
		h.Where = last
	}
	return h
}
