// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events buffers the physics engine's raw per-step callbacks into
// typed, per-collider, per-frame event queues. It knows about fixtures and
// contacts (via internal/engine) and about collision classes (as plain
// strings) but nothing about colliders or the world - those are ccworld's
// job.
package events

import "github.com/kestrel2d/ccworld/internal/engine"

// ContactSource is the subset of *engine.Contact a Snapshot copies from at
// capture time. Expressed as an interface so this package never needs a
// live cp.Arbiter to be exercised in isolation.
type ContactSource interface {
	GetNormal() (x, y float64)
	GetPositions() []float64
	GetFriction() float64
	GetRestitution() float64
	IsEnabled() bool
	IsTouching() bool
}

// Snapshot is an immutable copy of one engine contact, taken at capture time
// because the engine may destroy its own contact object inside or shortly
// after the callback that reported it.
type Snapshot struct {
	fixtureA, fixtureB *engine.Fixture
	normalX, normalY   float64
	positions          []float64
	friction           float64
	restitution        float64
	enabled            bool
	touching           bool
}

// set populates s in place from a live engine contact.
func (s *Snapshot) set(a, b *engine.Fixture, c ContactSource) {

	s.fixtureA = a
	s.fixtureB = b
	s.normalX, s.normalY = c.GetNormal()
	s.positions = append(s.positions[:0], c.GetPositions()...)
	s.friction = c.GetFriction()
	s.restitution = c.GetRestitution()
	s.enabled = c.IsEnabled()
	s.touching = c.IsTouching()
}

// Clone returns a detached copy with no pool membership, for callers that
// need to retain contact data past the current frame.
func (s *Snapshot) Clone() *Snapshot {

	out := &Snapshot{
		fixtureA:    s.fixtureA,
		fixtureB:    s.fixtureB,
		normalX:     s.normalX,
		normalY:     s.normalY,
		friction:    s.friction,
		restitution: s.restitution,
		enabled:     s.enabled,
		touching:    s.touching,
	}
	out.positions = append(out.positions, s.positions...)
	return out
}

// Fixtures returns the two fixtures this contact is between.
func (s *Snapshot) Fixtures() (*engine.Fixture, *engine.Fixture) { return s.fixtureA, s.fixtureB }

// Normal returns the contact normal, pointing from fixture A to fixture B.
func (s *Snapshot) Normal() (x, y float64) { return s.normalX, s.normalY }

// Positions returns the flattened world-space contact points.
func (s *Snapshot) Positions() []float64 {

	out := make([]float64, len(s.positions))
	copy(out, s.positions)
	return out
}

// Friction returns the combined friction coefficient captured at the time.
func (s *Snapshot) Friction() float64 { return s.friction }

// Restitution returns the combined restitution coefficient captured at the
// time.
func (s *Snapshot) Restitution() float64 { return s.restitution }

// Enabled reports whether the collision response was active when captured.
func (s *Snapshot) Enabled() bool { return s.enabled }

// Touching reports whether the two fixtures were touching when captured.
func (s *Snapshot) Touching() bool { return s.touching }

// Pool is a reusable vector of snapshot slots with a cursor. Reset at the
// start of every world update; Capture reuses the slot at the cursor if one
// exists, advancing the cursor only in that case. The first fresh
// allocation suspends the cursor for the rest of the step, so every later
// capture keeps appending instead of circling back over slots already
// handed out this frame - reuse must never clobber a live snapshot.
type Pool struct {
	slots     []Snapshot
	next      int
	suspended bool
}

// Reset rewinds the pool to the start of its reuse stream. Call once per
// world update, before the physics step that will populate new captures.
func (p *Pool) Reset() {

	p.next = 0
	p.suspended = false
}

// Capture records one engine contact into the pool and returns its
// snapshot, reusing a slot when one is available at the cursor.
func (p *Pool) Capture(a, b *engine.Fixture, c ContactSource) *Snapshot {

	if !p.suspended && p.next < len(p.slots) {
		s := &p.slots[p.next]
		s.set(a, b, c)
		p.next++
		return s
	}

	p.suspended = true
	p.slots = append(p.slots, Snapshot{})
	s := &p.slots[len(p.slots)-1]
	s.set(a, b, c)
	return s
}
