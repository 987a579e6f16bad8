// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	cp "github.com/undefinedopcode/cp/v2"
)

// Contact wraps a cp.Arbiter for the duration of one dispatch callback.
// The underlying arbiter is only valid while the engine's Step call that
// produced it is still on the stack; events.Snapshot is what buys the rest
// of the frame.
type Contact struct {
	raw      *cp.Arbiter
	touching bool
	enabled  bool
}

func newContact(arb *cp.Arbiter, touching bool) *Contact {

	return &Contact{raw: arb, touching: touching, enabled: true}
}

// GetFixtures returns the two fixtures this contact is between.
func (c *Contact) GetFixtures() (*Fixture, *Fixture) {

	a, b := c.raw.Shapes()
	return fixtureFor(a), fixtureFor(b)
}

// GetNormal returns the contact normal, pointing from fixture A to fixture B.
func (c *Contact) GetNormal() (x, y float64) {

	n := c.raw.Normal()
	return n.X, n.Y
}

// GetPositions returns every contact point, in world space.
func (c *Contact) GetPositions() []float64 {

	set := c.raw.ContactPointSet()
	out := make([]float64, 0, set.Count*2)
	for i := 0; i < set.Count; i++ {
		out = append(out, set.Points[i].PointA.X, set.Points[i].PointA.Y)
	}
	return out
}

// GetFriction returns the contact's combined friction coefficient.
func (c *Contact) GetFriction() float64 {

	return c.raw.Friction()
}

// GetRestitution returns the contact's combined restitution coefficient.
func (c *Contact) GetRestitution() float64 {

	return c.raw.Restitution()
}

// IsEnabled returns whether this contact will produce a collision response
// this step. Disabling it inside a preSolve callback is how a game cancels
// the response for one step.
func (c *Contact) IsEnabled() bool { return c.enabled }

// SetEnabled enables or disables the collision response for this step. Only
// meaningful when called from a preSolve callback.
func (c *Contact) SetEnabled(enabled bool) { c.enabled = enabled }

// IsTouching returns whether the two fixtures are currently touching.
func (c *Contact) IsTouching() bool { return c.touching }
