// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math2 implements the 2D vector and shape math used by the
// collision-class world: points, axis-aligned boxes and the geometric
// predicates the shape queries run against.
package math2

import "math"

// Vector2 is a 2D point or direction with X and Y components.
type Vector2 struct {
	X float64
	Y float64
}

// NewVector2 creates and returns a pointer to a new Vector2 with
// the specified x and y components.
func NewVector2(x, y float64) *Vector2 {

	return &Vector2{X: x, Y: y}
}

// Set sets this vector's X and Y components.
// Returns the pointer to this updated vector.
func (v *Vector2) Set(x, y float64) *Vector2 {

	v.X = x
	v.Y = y
	return v
}

// Clone returns a copy of this vector.
func (v *Vector2) Clone() *Vector2 {

	return &Vector2{X: v.X, Y: v.Y}
}

// Add adds other vector to this one.
// Returns the pointer to this updated vector.
func (v *Vector2) Add(other *Vector2) *Vector2 {

	v.X += other.X
	v.Y += other.Y
	return v
}

// AddVectors sets this vector to a + b.
// Returns the pointer to this updated vector.
func (v *Vector2) AddVectors(a, b *Vector2) *Vector2 {

	v.X = a.X + b.X
	v.Y = a.Y + b.Y
	return v
}

// Sub subtracts other vector from this one.
// Returns the pointer to this updated vector.
func (v *Vector2) Sub(other *Vector2) *Vector2 {

	v.X -= other.X
	v.Y -= other.Y
	return v
}

// SubVectors sets this vector to a - b.
// Returns the pointer to this updated vector.
func (v *Vector2) SubVectors(a, b *Vector2) *Vector2 {

	v.X = a.X - b.X
	v.Y = a.Y - b.Y
	return v
}

// MultiplyScalar multiplies each component of this vector by the scalar s.
// Returns the pointer to this updated vector.
func (v *Vector2) MultiplyScalar(s float64) *Vector2 {

	v.X *= s
	v.Y *= s
	return v
}

// Dot returns the dot product of this vector with other.
func (v *Vector2) Dot(other *Vector2) float64 {

	return v.X*other.X + v.Y*other.Y
}

// Cross returns the Z component of the 3D cross product of this vector with other.
func (v *Vector2) Cross(other *Vector2) float64 {

	return v.X*other.Y - v.Y*other.X
}

// LengthSq returns the length squared of this vector.
// LengthSq can be used to compare vectors' lengths without the need to perform a square root.
func (v *Vector2) LengthSq() float64 {

	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of this vector.
func (v *Vector2) Length() float64 {

	return math.Sqrt(v.LengthSq())
}

// DistanceTo returns the distance of this point to other.
func (v *Vector2) DistanceTo(other *Vector2) float64 {

	return math.Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the distance squared of this point to other.
func (v *Vector2) DistanceToSquared(other *Vector2) float64 {

	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Rotated returns a copy of this vector rotated by angle radians.
func (v *Vector2) Rotated(angle float64) *Vector2 {

	s, c := math.Sin(angle), math.Cos(angle)
	return &Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// InTriangle returns whether this vector lies inside the triangle p0,p1,p2.
func (v *Vector2) InTriangle(p0, p1, p2 *Vector2) bool {

	A := 0.5 * (-p1.Y*p2.X + p0.Y*(-p1.X+p2.X) + p0.X*(p1.Y-p2.Y) + p1.X*p2.Y)
	sign := 1.0
	if A < 0 {
		sign = -1.0
	}
	s := (p0.Y*p2.X - p0.X*p2.Y + (p2.Y-p0.Y)*v.X + (p0.X-p2.X)*v.Y) * sign
	t := (p0.X*p1.Y - p0.Y*p1.X + (p0.Y-p1.Y)*v.X + (p1.X-p0.X)*v.Y) * sign

	return s >= 0 && t >= 0 && (s+t) < 2*A*sign
}
