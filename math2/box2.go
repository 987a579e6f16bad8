// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2

import "math"

// Box2 represents an axis-aligned 2D bounding box defined by its
// minimum and maximum coordinates. It is the broad-phase shape every
// ccworld area query starts from.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// NewBox2 creates and returns a pointer to a new Box2 defined
// by its minimum and maximum coordinates.
func NewBox2(min, max Vector2) *Box2 {

	return &Box2{Min: min, Max: max}
}

// NewBox2FromCircle returns the bounding box of a circle centered at (x, y)
// with the given radius.
func NewBox2FromCircle(x, y, r float64) *Box2 {

	return &Box2{
		Min: Vector2{X: x - r, Y: y - r},
		Max: Vector2{X: x + r, Y: y + r},
	}
}

// SetFromPoints sets this bounding box to enclose the specified points.
// Returns the pointer to this updated bounding box.
func (b *Box2) SetFromPoints(points []Vector2) *Box2 {

	b.Min = Vector2{X: math.Inf(1), Y: math.Inf(1)}
	b.Max = Vector2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// ExpandByPoint may expand this bounding box to include the specified point.
// Returns the pointer to this updated bounding box.
func (b *Box2) ExpandByPoint(p Vector2) *Box2 {

	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// ContainsPoint returns whether this bounding box contains the specified point.
func (b *Box2) ContainsPoint(p Vector2) bool {

	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// IsIntersectionBox returns whether other box intersects this one.
func (b *Box2) IsIntersectionBox(other *Box2) bool {

	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y {
		return false
	}
	return true
}

// Center returns the center point of this bounding box.
func (b *Box2) Center() Vector2 {

	return Vector2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}
