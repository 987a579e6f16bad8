// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2

import "math"

// Centroid returns the arithmetic mean of the given points.
func Centroid(points []Vector2) Vector2 {

	if len(points) == 0 {
		return Vector2{}
	}
	var sum Vector2
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return Vector2{X: sum.X / n, Y: sum.Y / n}
}

// MaxDistance returns the largest distance from center to any of points.
func MaxDistance(points []Vector2, center Vector2) float64 {

	max := 0.0
	for _, p := range points {
		d := center.DistanceTo(&p)
		if d > max {
			max = d
		}
	}
	return max
}

// CircleIntersectsCircle returns whether two circles overlap.
func CircleIntersectsCircle(c1 Vector2, r1 float64, c2 Vector2, r2 float64) bool {

	return c1.DistanceTo(&c2) <= r1+r2
}

// IsCircleInside returns whether point p lies within radius r of center.
func IsCircleInside(center Vector2, r float64, p Vector2) bool {

	return center.DistanceToSquared(&p) <= r*r
}

// IsPolygonInside returns whether point p lies inside the polygon described by
// vertices, using the standard ray-casting/crossing-number test. The polygon
// is treated as a closed loop; vertices need not repeat the first point.
func IsPolygonInside(vertices []Vector2, p Vector2) bool {

	inside := false
	n := len(vertices)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		vi := vertices[i]
		vj := vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xIntersect := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// distanceToSegmentSquared returns the squared distance from point p to the
// segment a-b.
func distanceToSegmentSquared(p, a, b Vector2) float64 {

	ab := Vector2{X: b.X - a.X, Y: b.Y - a.Y}
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.DistanceToSquared(&a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Vector2{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return p.DistanceToSquared(&closest)
}

// CircleIntersectsPolygon returns whether a circle centered at center with
// radius r overlaps the polygon described by vertices: either the center is
// inside the polygon, or the circle reaches one of its edges.
func CircleIntersectsPolygon(center Vector2, r float64, vertices []Vector2) bool {

	if IsPolygonInside(vertices, center) {
		return true
	}
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		if distanceToSegmentSquared(center, a, b) <= r*r {
			return true
		}
	}
	return false
}

// SegmentsIntersect returns whether segment p1-p2 intersects segment p3-p4.
func SegmentsIntersect(p1, p2, p3, p4 Vector2) bool {

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func direction(a, b, c Vector2) float64 {

	return (c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y)
}

func onSegment(a, b, p Vector2) bool {

	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// PolygonIntersectsPolygon returns whether two polygons overlap: any vertex
// of either lies inside the other, or any pair of edges crosses. This is
// sufficient (not a full SAT) for the convex, reasonably-sized query shapes
// this package deals with.
func PolygonIntersectsPolygon(a, b []Vector2) bool {

	for _, p := range a {
		if IsPolygonInside(b, p) {
			return true
		}
	}
	for _, p := range b {
		if IsPolygonInside(a, p) {
			return true
		}
	}
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1, b2 := b[j], b[(j+1)%nb]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// RectVertices returns the four corners of the axis-aligned rectangle with
// top-left (x, y) and size (w, h), in winding order.
func RectVertices(x, y, w, h float64) []Vector2 {

	return []Vector2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}
