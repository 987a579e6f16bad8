// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccworld

import (
	"github.com/kestrel2d/ccworld/debugdraw"
	"github.com/kestrel2d/ccworld/internal/engine"
	"github.com/kestrel2d/ccworld/math2"
)

// Filter restricts a shape query to certain collision classes. The zero
// value means every class. Names lists the classes to accept; an empty
// Names means all. Except is subtracted from whichever of the two applies.
type Filter struct {
	Names  []string
	Except []string
}

// FilterAll returns a filter accepting every class except the given names,
// the `{'All', except = {..}}` query surface.
func FilterAll(except ...string) Filter {

	return Filter{Except: except}
}

// FilterClasses returns a filter accepting only the named classes.
func FilterClasses(names ...string) Filter {

	return Filter{Names: names}
}

func (f Filter) passes(class string) bool {

	if len(f.Names) > 0 {
		found := false
		for _, n := range f.Names {
			if n == class {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, n := range f.Except {
		if n == class {
			return false
		}
	}
	return true
}

// QueryCircleArea returns every collider with at least one solid fixture
// overlapping the disk at (x, y) with radius r, whose class passes filter.
func (w *World) QueryCircleArea(x, y, r float64, filter Filter) []*Collider {

	if w.queryDebug {
		w.recordQuery(debugdraw.QueryCircle, []float64{x, y, r})
	}

	center := math2.Vector2{X: x, Y: y}
	bb := math2.NewBox2FromCircle(x, y, r)
	return w.collectQuery(bb, filter, func(f *engine.Fixture) bool {
		switch f.GetShapeKind() {
		case engine.ShapeCircle:
			cx, cy := fixtureCircleCenter(f)
			return math2.CircleIntersectsCircle(center, r, math2.Vector2{X: cx, Y: cy}, f.GetRadius())
		default:
			return math2.CircleIntersectsPolygon(center, r, worldVertices(f))
		}
	})
}

// QueryRectangleArea returns every collider with at least one solid fixture
// overlapping the axis-aligned rectangle with top-left (x, y) and size
// (width, height), whose class passes filter. Edge and chain fixtures are
// not tested, so a collider made only of segments is never returned.
func (w *World) QueryRectangleArea(x, y, width, height float64, filter Filter) []*Collider {

	if w.queryDebug {
		w.recordQuery(debugdraw.QueryRectangle, []float64{x, y, width, height})
	}

	rect := math2.RectVertices(x, y, width, height)
	bb := new(math2.Box2).SetFromPoints(rect)
	return w.collectQuery(bb, filter, func(f *engine.Fixture) bool {
		switch f.GetShapeKind() {
		case engine.ShapeCircle:
			cx, cy := fixtureCircleCenter(f)
			center := math2.Vector2{X: cx, Y: cy}
			return math2.IsPolygonInside(rect, center) ||
				math2.CircleIntersectsPolygon(center, f.GetRadius(), rect)
		case engine.ShapeEdge, engine.ShapeChain:
			// Segment fixtures are not tested by the rectangle and polygon
			// queries (the circle query does test them); see the line query
			// for ray-based picking of edges.
			return false
		default:
			return math2.PolygonIntersectsPolygon(worldVertices(f), rect)
		}
	})
}

// QueryPolygonArea returns every collider with at least one solid fixture
// overlapping the polygon given as flattened world-space x,y pairs, whose
// class passes filter. The broad phase is the square enclosing the
// polygon's bounding circle. Edge and chain fixtures are not tested, so a
// collider made only of segments is never returned.
func (w *World) QueryPolygonArea(points []float64, filter Filter) []*Collider {

	if w.queryDebug {
		w.recordQuery(debugdraw.QueryPolygon, points)
	}

	verts := toVertices(points)
	centroid := math2.Centroid(verts)
	radius := math2.MaxDistance(verts, centroid)
	bb := math2.NewBox2FromCircle(centroid.X, centroid.Y, radius)

	return w.collectQuery(bb, filter,
		func(f *engine.Fixture) bool {
			switch f.GetShapeKind() {
			case engine.ShapeCircle:
				cx, cy := fixtureCircleCenter(f)
				return math2.CircleIntersectsPolygon(math2.Vector2{X: cx, Y: cy}, f.GetRadius(), verts)
			case engine.ShapeEdge, engine.ShapeChain:
				return false
			default:
				return math2.PolygonIntersectsPolygon(worldVertices(f), verts)
			}
		})
}

// QueryLine returns every collider with a solid fixture intersected by the
// segment (x1,y1)-(x2,y2), whose class passes filter.
func (w *World) QueryLine(x1, y1, x2, y2 float64, filter Filter) []*Collider {

	if w.queryDebug {
		w.recordQuery(debugdraw.QueryLine, []float64{x1, y1, x2, y2})
	}

	seen := make(map[*Collider]bool)
	var out []*Collider
	w.engine.RayCast(x1, y1, x2, y2, func(f *engine.Fixture) {
		c := colliderOf(f)
		if c == nil || seen[c] || !filter.passes(c.class) {
			return
		}
		seen[c] = true
		out = append(out, c)
	})
	return out
}

// collectQuery runs the shared broad-phase + precise-test shape of every
// area query: collect candidate non-sensor fixtures in the AABB, group by
// collider, class-filter, then admit a collider on its first fixture that
// passes the precise test.
func (w *World) collectQuery(bb *math2.Box2, filter Filter, overlaps func(*engine.Fixture) bool) []*Collider {

	byCollider := make(map[*Collider][]*engine.Fixture)
	var order []*Collider
	w.engine.QueryBoundingBox(bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y, func(f *engine.Fixture) {
		if f.IsSensor() {
			return
		}
		c := colliderOf(f)
		if c == nil {
			return
		}
		if _, ok := byCollider[c]; !ok {
			order = append(order, c)
		}
		byCollider[c] = append(byCollider[c], f)
	})

	var out []*Collider
	for _, c := range order {
		if !filter.passes(c.class) {
			continue
		}
		for _, f := range byCollider[c] {
			if overlaps(f) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (w *World) recordQuery(kind debugdraw.QueryKind, data []float64) {

	d := make([]float64, len(data))
	copy(d, data)
	w.debugQueries = append(w.debugQueries, debugdraw.Query{Kind: kind, Data: d, Frames: debugdraw.QueryFrames})
}

func fixtureCircleCenter(f *engine.Fixture) (x, y float64) {

	local := f.GetLocalPoints()
	if len(local) < 2 {
		return f.Body().GetPosition()
	}
	return f.Body().GetWorldPoint(local[0], local[1])
}

func worldVertices(f *engine.Fixture) []math2.Vector2 {

	return toVertices(f.GetWorldPoints())
}

func toVertices(flat []float64) []math2.Vector2 {

	out := make([]math2.Vector2, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, math2.Vector2{X: flat[i], Y: flat[i+1]})
	}
	return out
}
