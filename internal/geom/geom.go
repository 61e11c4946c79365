/*
 * Copyright (C) 2023 by Jason Figge
 */

package geom

import "math"

// Point is a 2D float vector. It doubles as a position, a direction, or a
// displacement depending on context. All operations return new values.
type Point struct {
	X float64
	Y float64
}

func (a Point) Add(b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Point) Sub(b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

func (a Point) Mul(n float64) Point {
	return Point{X: a.X * n, Y: a.Y * n}
}

func (a Point) Div(n float64) Point {
	return Point{X: a.X / n, Y: a.Y / n}
}

func (a Point) Mag() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Unit returns the unit vector of a. A zero vector yields NaN components.
func (a Point) Unit() Point {
	return a.Div(a.Mag())
}

// Slope relies on IEEE division: a vertical direction yields ±Inf, which the
// caster's candidate comparison discards naturally.
func (a Point) Slope() float64 {
	return a.Y / a.X
}

// Turn rotates a by t radians.
func (a Point) Turn(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
	}
}

// Rag is a right-angle rotation, used to derive strafe from forward.
func (a Point) Rag() Point {
	return Point{X: -a.Y, Y: a.X}
}

// Dec returns the fractional part of x.
func Dec(x float64) float64 {
	return x - math.Trunc(x)
}

// Line is an ordered pair of points. It serves both as the camera's local
// view-plane segment and as a traced ray from hero to hit.
type Line struct {
	A Point
	B Point
}

func (l Line) Rotate(t float64) Line {
	return Line{A: l.A.Turn(t), B: l.B.Turn(t)}
}

// Lerp interpolates linearly from A to B.
func (l Line) Lerp(n float64) Point {
	return l.A.Add(l.B.Sub(l.A).Mul(n))
}
