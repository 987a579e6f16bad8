// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	cp "github.com/undefinedopcode/cp/v2"
)

// BodyKind selects between static, dynamic and kinematic bodies.
type BodyKind int

const (
	Static BodyKind = iota
	Dynamic
	Kinematic
)

// Body wraps a cp.Body.
type Body struct {
	raw      *cp.Body
	world    *World
	fixtures []*Fixture
}

// NewBody creates a body of the given kind at (x, y) in world.
func NewBody(world *World, x, y float64, kind BodyKind) *Body {

	var raw *cp.Body
	switch kind {
	case Static:
		raw = cp.NewStaticBody()
	case Kinematic:
		raw = cp.NewKinematicBody()
	default:
		raw = cp.NewBody(1, cp.INFINITY)
	}
	raw.SetPosition(cp.Vector{X: x, Y: y})

	b := &Body{raw: raw, world: world}
	raw.UserData = b
	world.space.AddBody(raw)
	return b
}

// Raw returns the underlying cp.Body.
func (b *Body) Raw() *cp.Body { return b.raw }

// GetPosition returns the body's world position.
func (b *Body) GetPosition() (x, y float64) {

	p := b.raw.Position()
	return p.X, p.Y
}

// GetFixtures returns every fixture (solid and sensor) attached to this body.
func (b *Body) GetFixtures() []*Fixture {

	out := make([]*Fixture, len(b.fixtures))
	copy(out, b.fixtures)
	return out
}

// GetWorldPoint transforms a local-space point into world space.
func (b *Body) GetWorldPoint(localX, localY float64) (x, y float64) {

	p := b.raw.LocalToWorld(cp.Vector{X: localX, Y: localY})
	return p.X, p.Y
}

// GetWorldPoints transforms every local-space point into world space.
func (b *Body) GetWorldPoints(local []float64) []float64 {

	out := make([]float64, len(local))
	for i := 0; i+1 < len(local); i += 2 {
		x, y := b.GetWorldPoint(local[i], local[i+1])
		out[i] = x
		out[i+1] = y
	}
	return out
}

// Destroy removes this body and every attached fixture from the world.
func (b *Body) Destroy() {

	for _, f := range b.fixtures {
		f.destroyNoDetach()
	}
	b.fixtures = nil
	b.world.space.RemoveBody(b.raw)
}

func (b *Body) attach(f *Fixture) {

	b.fixtures = append(b.fixtures, f)
}

func bodyFor(raw *cp.Body) *Body {

	if raw == nil {
		return nil
	}
	if b, ok := raw.UserData.(*Body); ok {
		return b
	}
	return nil
}
