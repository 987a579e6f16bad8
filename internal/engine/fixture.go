// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	cp "github.com/undefinedopcode/cp/v2"
)

// ShapeKind tags the geometry a fixture carries.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
	ShapePolygon
	ShapeEdge
	ShapeChain
)

// Fixture wraps a cp.Shape together with the bookkeeping the collision-class
// layer needs (shape kind + local geometry, for shape queries and debug
// draw, since cp.Shape does not expose a kind tag of its own).
type Fixture struct {
	raw    *cp.Shape
	body   *Body
	kind   ShapeKind
	local  []float64 // flattened local-space x,y pairs; the center offset for circle
	radius float64   // circle radius
	sensor bool
	data   interface{}
}

// NewCircleFixture attaches a circle shape of the given radius, offset from
// the body's center by (ox, oy).
func NewCircleFixture(body *Body, radius, ox, oy float64) *Fixture {

	shape := cp.NewCircle(body.raw, radius, cp.Vector{X: ox, Y: oy})
	return newFixture(body, shape, ShapeCircle, []float64{ox, oy}, radius)
}

// NewRectangleFixture attaches a box shape centered on the body.
func NewRectangleFixture(body *Body, w, h float64) *Fixture {

	shape := cp.NewBox(body.raw, w, h, 0)
	return newFixture(body, shape, ShapeRectangle, rectLocalPoints(w, h), 0)
}

// NewPolygonFixture attaches a convex polygon shape from local-space
// x,y pairs.
func NewPolygonFixture(body *Body, localPoints []float64) *Fixture {

	verts := toVectors(localPoints)
	shape := cp.NewPolyShape(body.raw, verts, cp.NewTransformIdentity(), 0)
	return newFixture(body, shape, ShapePolygon, localPoints, 0)
}

// NewLineFixture attaches a segment (edge) shape between two local-space
// points.
func NewLineFixture(body *Body, x1, y1, x2, y2 float64) *Fixture {

	shape := cp.NewSegment(body.raw, cp.Vector{X: x1, Y: y1}, cp.Vector{X: x2, Y: y2}, 0)
	return newFixture(body, shape, ShapeEdge, []float64{x1, y1, x2, y2}, 0)
}

// NewChainFixture attaches a sequence of segment shapes along the given
// local-space vertices. If loop is true the last vertex connects back to
// the first.
func NewChainFixture(body *Body, localPoints []float64, loop bool) []*Fixture {

	n := len(localPoints) / 2
	segments := n - 1
	if loop {
		segments = n
	}
	out := make([]*Fixture, 0, segments)
	for i := 0; i < segments; i++ {
		x1, y1 := localPoints[i*2], localPoints[i*2+1]
		j := (i + 1) % n
		x2, y2 := localPoints[j*2], localPoints[j*2+1]
		shape := cp.NewSegment(body.raw, cp.Vector{X: x1, Y: y1}, cp.Vector{X: x2, Y: y2}, 0)
		f := newFixture(body, shape, ShapeChain, []float64{x1, y1, x2, y2}, 0)
		out = append(out, f)
	}
	return out
}

func newFixture(body *Body, shape *cp.Shape, kind ShapeKind, local []float64, radius float64) *Fixture {

	f := &Fixture{raw: shape, body: body, kind: kind, local: local, radius: radius}
	shape.UserData = f
	body.world.space.AddShape(shape)
	body.attach(f)
	return f
}

// SetCategory sets the engine-level category bit(s) this fixture belongs to.
func (f *Fixture) SetCategory(categories uint) {

	filter := f.raw.Filter
	filter.Categories = categories
	f.raw.SetFilter(filter)
}

// SetMask sets the engine-level mask of categories this fixture accepts
// contact with.
func (f *Fixture) SetMask(mask uint) {

	filter := f.raw.Filter
	filter.Mask = mask
	f.raw.SetFilter(filter)
}

// SetSensor marks this fixture as a sensor: it reports contacts without
// producing physical response.
func (f *Fixture) SetSensor(sensor bool) {

	f.sensor = sensor
	f.raw.SetSensor(sensor)
}

// IsSensor returns whether this fixture is a sensor.
func (f *Fixture) IsSensor() bool { return f.sensor }

// SetUserData attaches an opaque value to this fixture (used to carry the
// owning collider back to the dispatch callbacks).
func (f *Fixture) SetUserData(v interface{}) { f.data = v }

// GetUserData returns the value set by SetUserData.
func (f *Fixture) GetUserData() interface{} { return f.data }

// GetShapeKind returns this fixture's shape kind.
func (f *Fixture) GetShapeKind() ShapeKind { return f.kind }

// Body returns the body this fixture is attached to.
func (f *Fixture) Body() *Body { return f.body }

// GetRadius returns the circle radius (only meaningful for ShapeCircle).
func (f *Fixture) GetRadius() float64 { return f.radius }

// GetLocalPoints returns the flattened local-space x,y pairs describing a
// polygon/edge/chain fixture.
func (f *Fixture) GetLocalPoints() []float64 {

	out := make([]float64, len(f.local))
	copy(out, f.local)
	return out
}

// GetWorldPoints returns GetLocalPoints transformed into world space.
func (f *Fixture) GetWorldPoints() []float64 {

	return f.body.GetWorldPoints(f.local)
}

// Destroy removes this fixture from the world and detaches it from its body.
func (f *Fixture) Destroy() {

	f.destroyNoDetach()
	fixtures := f.body.fixtures[:0]
	for _, other := range f.body.fixtures {
		if other != f {
			fixtures = append(fixtures, other)
		}
	}
	f.body.fixtures = fixtures
}

func (f *Fixture) destroyNoDetach() {

	f.body.world.space.RemoveShape(f.raw)
}

func fixtureFor(shape *cp.Shape) *Fixture {

	if shape == nil {
		return nil
	}
	if f, ok := shape.UserData.(*Fixture); ok {
		return f
	}
	return nil
}

func rectLocalPoints(w, h float64) []float64 {

	hw, hh := w/2, h/2
	return []float64{-hw, -hh, hw, -hh, hw, hh, -hw, hh}
}

func toVectors(flat []float64) []cp.Vector {

	out := make([]cp.Vector, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, cp.Vector{X: flat[i], Y: flat[i+1]})
	}
	return out
}
