// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccworld

import (
	"crypto/rand"
	"fmt"

	"github.com/kestrel2d/ccworld/events"
	"github.com/kestrel2d/ccworld/internal/engine"
)

// Shape is the tagged variant describing one collider shape. Construction
// and the query paths dispatch on the concrete type.
type Shape interface {
	isShape()
}

// Circle is a circle of radius R offset from the body center by (Ox, Oy).
type Circle struct {
	R      float64
	Ox, Oy float64
}

// Rectangle is an axis-aligned box of size WxH centered on the body.
type Rectangle struct {
	W, H float64
}

// BSGRectangle is a rectangle with its corners clipped into an octagon by
// Cut on each side.
type BSGRectangle struct {
	W, H, Cut float64
}

// Polygon is a convex polygon given as flattened local-space x,y pairs.
type Polygon struct {
	Points []float64
}

// Line is a single segment between two local-space points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Chain is a sequence of segments along local-space vertices, optionally
// closed into a loop.
type Chain struct {
	Points []float64
	Loop   bool
}

func (Circle) isShape()       {}
func (Rectangle) isShape()    {}
func (BSGRectangle) isShape() {}
func (Polygon) isShape()      {}
func (Line) isShape()         {}
func (Chain) isShape()        {}

// CollisionData is one entry of the enter/exit/stay data getters: the peer
// collider and the pooled contact snapshot captured when the event fired.
type CollisionData struct {
	Collider *Collider
	Contact  *events.Snapshot
}

// PreSolveCallback runs synchronously inside the physics step, before the
// contact response is computed. Calling contact.SetEnabled(false) cancels
// the response for this step. The engine is locked for the duration: the
// callback must not create or destroy colliders, bodies or joints.
type PreSolveCallback func(self, other *Collider, contact *Contact)

// PostSolveCallback runs synchronously inside the physics step, after the
// contact response. Same engine-locked restriction as PreSolveCallback.
type PostSolveCallback func(self, other *Collider, contact *Contact)

// shapeEntry pairs a named shape's solid fixtures with their sensor twins.
// Solid fixtures carry the class category/mask; sensor fixtures share the
// category but accept every mask bit, so ignored pairs still report overlap
// through the sensor path.
type shapeEntry struct {
	def     Shape
	solids  []*engine.Fixture
	sensors []*engine.Fixture
}

// Collider wraps one body with its named shapes, per-frame event queues and
// solve hooks. Create them through the World's New*Collider constructors.
type Collider struct {
	world *World
	body  *engine.Body
	id    string
	class string

	shapeOrder []string
	shapes     map[string]*shapeEntry

	queue     *events.Queue
	preSolve  PreSolveCallback
	postSolve PostSolveCallback

	object    interface{}
	destroyed bool
}

// NewCircleCollider creates a collider with a single circle shape.
func (w *World) NewCircleCollider(kind BodyKind, x, y, r float64) *Collider {

	c := w.newCollider(kind, x, y)
	c.AddShape("main", Circle{R: r})
	return c
}

// NewRectangleCollider creates a collider with a single box shape.
func (w *World) NewRectangleCollider(kind BodyKind, x, y, width, height float64) *Collider {

	c := w.newCollider(kind, x, y)
	c.AddShape("main", Rectangle{W: width, H: height})
	return c
}

// NewBSGRectangleCollider creates a collider with a rectangle whose corners
// are clipped into an octagon by cut.
func (w *World) NewBSGRectangleCollider(kind BodyKind, x, y, width, height, cut float64) *Collider {

	c := w.newCollider(kind, x, y)
	c.AddShape("main", BSGRectangle{W: width, H: height, Cut: cut})
	return c
}

// NewPolygonCollider creates a collider with a single convex polygon shape
// from flattened local-space x,y pairs.
func (w *World) NewPolygonCollider(kind BodyKind, x, y float64, points []float64) *Collider {

	c := w.newCollider(kind, x, y)
	c.AddShape("main", Polygon{Points: points})
	return c
}

// NewLineCollider creates a collider with a single segment shape.
func (w *World) NewLineCollider(kind BodyKind, x1, y1, x2, y2 float64) *Collider {

	c := w.newCollider(kind, x1, y1)
	c.AddShape("main", Line{X1: 0, Y1: 0, X2: x2 - x1, Y2: y2 - y1})
	return c
}

// NewChainCollider creates a collider with a chain of segments along the
// given world-space vertices, optionally looped.
func (w *World) NewChainCollider(kind BodyKind, points []float64, loop bool) *Collider {

	var x, y float64
	if len(points) >= 2 {
		x, y = points[0], points[1]
	}
	local := make([]float64, len(points))
	for i := 0; i+1 < len(points); i += 2 {
		local[i] = points[i] - x
		local[i+1] = points[i+1] - y
	}
	c := w.newCollider(kind, x, y)
	c.AddShape("main", Chain{Points: local, Loop: loop})
	return c
}

// newCollider freezes the class registry and builds the shared collider
// scaffolding.
func (w *World) newCollider(kind BodyKind, x, y float64) *Collider {

	w.registryState = registryFrozen

	c := &Collider{
		world:  w,
		body:   engine.NewBody(w.engine, x, y, kind),
		id:     newUUID(),
		class:  DefaultClassName,
		shapes: make(map[string]*shapeEntry),
		queue:  events.NewQueue(),
	}
	w.colliders[c] = struct{}{}
	return c
}

// ID returns this collider's stable UUID.
func (c *Collider) ID() string { return c.id }

// CollisionClass returns the name of the class this collider is in.
func (c *Collider) CollisionClass() string { return c.class }

// Body returns the underlying engine body, for position reads and direct
// engine access the façade does not wrap.
func (c *Collider) Body() *engine.Body { return c.body }

// Position returns the collider body's world position.
func (c *Collider) Position() (x, y float64) { return c.body.GetPosition() }

// SetCollisionClass moves this collider into the named class, reapplying
// the compiled category/mask to every solid fixture.
func (c *Collider) SetCollisionClass(name string) error {

	if _, ok := c.world.specs[name]; !ok {
		return &UnknownClassError{Name: name}
	}
	c.class = name
	c.reapplyMasks()
	return nil
}

// AddShape attaches one named shape to this collider. Each shape spawns its
// solid fixture(s) plus paired sensor fixture(s). Names must be unique per
// collider.
func (c *Collider) AddShape(name string, def Shape) error {

	if _, exists := c.shapes[name]; exists {
		return &DuplicateShapeError{Name: name}
	}

	entry := &shapeEntry{def: def}
	entry.solids = buildFixtures(c.body, def)
	entry.sensors = buildFixtures(c.body, def)
	for _, s := range entry.sensors {
		s.SetSensor(true)
	}
	for _, f := range entry.solids {
		f.SetUserData(c)
	}
	for _, f := range entry.sensors {
		f.SetUserData(c)
	}

	c.shapes[name] = entry
	c.shapeOrder = append(c.shapeOrder, name)
	c.reapplyMasks()
	return nil
}

// RemoveShape detaches the named shape and destroys its fixtures. Removing
// a shape that does not exist is a no-op.
func (c *Collider) RemoveShape(name string) {

	entry, ok := c.shapes[name]
	if !ok {
		return
	}
	for _, f := range entry.solids {
		f.Destroy()
	}
	for _, f := range entry.sensors {
		f.Destroy()
	}
	delete(c.shapes, name)
	for i, n := range c.shapeOrder {
		if n == name {
			c.shapeOrder = append(c.shapeOrder[:i], c.shapeOrder[i+1:]...)
			break
		}
	}
}

// ShapeNames returns the names of every shape on this collider, in the
// order they were added.
func (c *Collider) ShapeNames() []string {

	out := make([]string, len(c.shapeOrder))
	copy(out, c.shapeOrder)
	return out
}

// Enter reports whether an enter event against peerClass is in the current
// frame's queue, caching the hit and adding the peer to the stay set.
func (c *Collider) Enter(peerClass string) bool {

	return c.queue.Enter(peerClass)
}

// Exit reports whether an exit event against peerClass is in the current
// frame's queue, removing the matching peer from the stay set.
func (c *Collider) Exit(peerClass string) bool {

	return c.queue.Exit(peerClass)
}

// Stay reports whether any peer of peerClass is currently touching.
func (c *Collider) Stay(peerClass string) bool {

	return c.queue.Stay(peerClass)
}

// GetEnterCollisionData returns the cached last enter hit against peerClass.
// The zero CollisionData is returned when Enter never matched.
func (c *Collider) GetEnterCollisionData(peerClass string) CollisionData {

	e, ok := c.queue.EnterData(peerClass)
	if !ok {
		return CollisionData{}
	}
	return toCollisionData(e)
}

// GetExitCollisionData returns the cached last exit hit against peerClass.
func (c *Collider) GetExitCollisionData(peerClass string) CollisionData {

	e, ok := c.queue.ExitData(peerClass)
	if !ok {
		return CollisionData{}
	}
	return toCollisionData(e)
}

// GetStayCollisionData returns every peer of peerClass currently touching.
func (c *Collider) GetStayCollisionData(peerClass string) []CollisionData {

	entries := c.queue.StayData(peerClass)
	out := make([]CollisionData, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCollisionData(e))
	}
	return out
}

// SetPreSolve installs the pre-solve hook.
func (c *Collider) SetPreSolve(fn PreSolveCallback) { c.preSolve = fn }

// SetPostSolve installs the post-solve hook.
func (c *Collider) SetPostSolve(fn PostSolveCallback) { c.postSolve = fn }

// SetObject attaches an arbitrary user value to this collider.
func (c *Collider) SetObject(v interface{}) { c.object = v }

// GetObject returns the value set by SetObject.
func (c *Collider) GetObject() interface{} { return c.object }

// Destroy detaches user data, destroys every fixture and sensor, and frees
// the body. Destroying an already-destroyed collider is a no-op.
func (c *Collider) Destroy() {

	if c.destroyed {
		return
	}
	c.destroyed = true
	c.object = nil
	c.preSolve = nil
	c.postSolve = nil
	for _, entry := range c.shapes {
		for _, f := range entry.solids {
			f.SetUserData(nil)
		}
		for _, f := range entry.sensors {
			f.SetUserData(nil)
		}
	}
	c.shapes = nil
	c.shapeOrder = nil
	c.body.Destroy()
	delete(c.world.colliders, c)
}

// reapplyMasks pushes the compiled category/mask of this collider's class
// onto every solid fixture. Sensor fixtures share the category but accept
// every bit, so sensor overlap is reported even for ignored pairs.
func (c *Collider) reapplyMasks() {

	cat := c.world.categoryBit(c.class)
	mask := c.world.acceptMask(c.class)
	for _, entry := range c.shapes {
		for _, f := range entry.solids {
			f.SetCategory(cat)
			f.SetMask(mask)
		}
		for _, f := range entry.sensors {
			f.SetCategory(cat)
			f.SetMask(^uint(0))
		}
	}
}

func toCollisionData(e events.DataEntry) CollisionData {

	peer, _ := e.Peer.(*Collider)
	return CollisionData{Collider: peer, Contact: e.Contact}
}

// buildFixtures constructs the engine fixtures for one shape variant.
func buildFixtures(body *engine.Body, def Shape) []*engine.Fixture {

	switch s := def.(type) {
	case Circle:
		return []*engine.Fixture{engine.NewCircleFixture(body, s.R, s.Ox, s.Oy)}
	case Rectangle:
		return []*engine.Fixture{engine.NewRectangleFixture(body, s.W, s.H)}
	case BSGRectangle:
		return []*engine.Fixture{engine.NewPolygonFixture(body, bsgPoints(s.W, s.H, s.Cut))}
	case Polygon:
		return []*engine.Fixture{engine.NewPolygonFixture(body, s.Points)}
	case Line:
		return []*engine.Fixture{engine.NewLineFixture(body, s.X1, s.Y1, s.X2, s.Y2)}
	case Chain:
		return engine.NewChainFixture(body, s.Points, s.Loop)
	}
	return nil
}

// bsgPoints returns the octagon of a WxH rectangle with each corner clipped
// by cut, centered on the body.
func bsgPoints(w, h, cut float64) []float64 {

	hw, hh := w/2, h/2
	return []float64{
		-hw + cut, -hh,
		hw - cut, -hh,
		hw, -hh + cut,
		hw, hh - cut,
		hw - cut, hh,
		-hw + cut, hh,
		-hw, hh - cut,
		-hw, -hh + cut,
	}
}

// newUUID returns a random RFC 4122 version-4 UUID string.
func newUUID() string {

	var b [16]byte
	rand.Read(b[:])
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
