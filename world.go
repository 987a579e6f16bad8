// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ccworld is a collision-class layer over a 2D rigid-body physics
// engine. A game declares named collision classes, states which classes
// ignore which declaratively (with All/except set operators), and receives
// cleanly routed enter/exit/stay events and pre/post-solve callbacks on its
// colliders, plus shape-based spatial queries filtered by class.
package ccworld

import (
	"github.com/kestrel2d/ccworld/classgraph"
	"github.com/kestrel2d/ccworld/debugdraw"
	"github.com/kestrel2d/ccworld/events"
	"github.com/kestrel2d/ccworld/internal/engine"
	"github.com/kestrel2d/ccworld/util/logger"
)

// Contact is the live engine contact handed to PreSolve/PostSolve callbacks.
// It is only valid while the physics step that produced it is on the stack;
// event queues hold events.Snapshot copies instead, which stay readable for
// the rest of the frame.
type Contact = engine.Contact

// Joint is an engine joint created by AddJoint.
type Joint = engine.Joint

// JointKind selects which joint constructor AddJoint forwards to.
type JointKind = engine.JointKind

const (
	DistanceJoint  = engine.DistanceJoint
	FrictionJoint  = engine.FrictionJoint
	GearJoint      = engine.GearJoint
	MouseJoint     = engine.MouseJoint
	PrismaticJoint = engine.PrismaticJoint
	PulleyJoint    = engine.PulleyJoint
	RevoluteJoint  = engine.RevoluteJoint
	RopeJoint      = engine.RopeJoint
	WeldJoint      = engine.WeldJoint
	WheelJoint     = engine.WheelJoint
)

// BodyKind selects the body type a collider constructor creates.
type BodyKind = engine.BodyKind

const (
	Static    = engine.Static
	Dynamic   = engine.Dynamic
	Kinematic = engine.Kinematic
)

var log = logger.New("WORLD", logger.Default)

// World owns the physics world, the collision-class registry, the contact
// pool and every collider created through it. Each World is independent:
// a process may run several at once.
type World struct {
	engine *engine.World
	logger *logger.Logger

	registryState  registryState
	explicit       bool
	order          []string
	specs          map[string]CollisionClass
	assignments    map[string]classgraph.Assignment
	usedCategories uint
	routing        *events.Table

	pool      events.Pool
	colliders map[*Collider]struct{}
	joints    []*Joint

	queryDebug   bool
	debugQueries []debugdraw.Query

	destroyed bool
}

// New creates a physics world with the given gravity and sleep setting,
// installs the four dispatch trampolines and registers the "Default" class.
func New(gx, gy float64, sleepAllowed bool) *World {

	w := &World{
		logger:    log,
		specs:     make(map[string]CollisionClass),
		colliders: make(map[*Collider]struct{}),
	}
	w.engine = engine.NewWorld(gx, gy, sleepAllowed)
	w.engine.OnBegin(w.onBegin)
	w.engine.OnSeparate(w.onSeparate)
	w.engine.OnPreSolve(w.onPreSolve)
	w.engine.OnPostSolve(w.onPostSolve)
	w.routing = events.NewTable(false)
	w.bootstrapDefaultClass()
	w.logger.Debug("world created (gravity %v,%v sleep=%v)", gx, gy, sleepAllowed)
	return w
}

// Update advances the simulation by dt seconds. The contact pool cursor is
// rewound and every collider's per-frame event queue is cleared first, so
// snapshots captured in the previous step become invalid here. Enter/exit
// events arising from the step populate the queues; pre/post callbacks run
// synchronously inside the step, during which the engine is locked and
// world-mutating calls must not be made.
func (w *World) Update(dt float64) {

	if w.destroyed {
		return
	}
	w.pool.Reset()
	for c := range w.colliders {
		c.queue.Clear()
	}
	w.engine.Step(dt)
}

// SetMeter sets the pixel-per-meter scale of the underlying engine.
func (w *World) SetMeter(pixelsPerMeter float64) {

	w.engine.SetMeter(pixelsPerMeter)
}

// Meter returns the current pixel-per-meter scale.
func (w *World) Meter() float64 {

	return w.engine.Meter()
}

// SetQueryDebugDrawing enables recording of query shapes so Draw can overlay
// them for a few frames.
func (w *World) SetQueryDebugDrawing(enabled bool) {

	w.queryDebug = enabled
}

// AddJoint creates a joint of the given kind between two colliders,
// unwrapping them to bodies and forwarding args positionally to the engine's
// joint constructor. It is up to the caller to know each kind's signature.
func (w *World) AddJoint(kind JointKind, a, b *Collider, args ...float64) (*Joint, error) {

	j, err := engine.AddJoint(w.engine, kind, a.body, b.body, args...)
	if err != nil {
		return nil, err
	}
	w.joints = append(w.joints, j)
	return j, nil
}

// RemoveJoint removes a joint previously created by AddJoint.
func (w *World) RemoveJoint(j *Joint) {

	for i, other := range w.joints {
		if other == j {
			w.joints = append(w.joints[:i], w.joints[i+1:]...)
			engine.RemoveJoint(w.engine, j)
			return
		}
	}
}

// Destroy destroys every collider and joint this world owns and tears down
// the underlying engine world. The world must not be used afterwards.
func (w *World) Destroy() {

	if w.destroyed {
		return
	}
	for _, j := range w.joints {
		engine.RemoveJoint(w.engine, j)
	}
	w.joints = nil
	for c := range w.colliders {
		c.Destroy()
	}
	w.colliders = nil
	w.destroyed = true
	w.logger.Debug("world destroyed")
}

// colliderOf recovers the owning collider from a fixture's user data. Nil
// for fixtures created outside this layer.
func colliderOf(f *engine.Fixture) *Collider {

	if f == nil {
		return nil
	}
	c, _ := f.GetUserData().(*Collider)
	return c
}

func (w *World) onBegin(a, b *engine.Fixture, contact *engine.Contact) {

	w.routeTransition(events.Enter, events.EnterEvent, a, b, contact)
}

func (w *World) onSeparate(a, b *engine.Fixture, contact *engine.Contact) {

	w.routeTransition(events.Exit, events.ExitEvent, a, b, contact)
}

// routeTransition captures one pooled snapshot for the raw pair and lets the
// routing table decide which collider queues receive it.
func (w *World) routeTransition(transition events.Transition, kind events.EventKind, a, b *engine.Fixture, contact *engine.Contact) {

	ca, cb := colliderOf(a), colliderOf(b)
	if ca == nil || cb == nil {
		return
	}

	var snap *events.Snapshot
	snapshot := func() *events.Snapshot {
		if snap == nil {
			snap = w.pool.Capture(a, b, contact)
		}
		return snap
	}

	w.routing.Dispatch(transition, ca.class, cb.class, a.IsSensor(), b.IsSensor(),
		func(peer string) { ca.queue.Enqueue(peer, kind, cb, snapshot()) },
		func(peer string) { cb.queue.Enqueue(peer, kind, ca, snapshot()) },
	)
}

func (w *World) onPreSolve(a, b *engine.Fixture, contact *engine.Contact) bool {

	ca, cb := colliderOf(a), colliderOf(b)
	if ca == nil || cb == nil {
		return true
	}

	w.routing.Dispatch(events.Pre, ca.class, cb.class, a.IsSensor(), b.IsSensor(),
		func(string) {
			if ca.preSolve != nil {
				ca.preSolve(ca, cb, contact)
			}
		},
		func(string) {
			if cb.preSolve != nil {
				cb.preSolve(cb, ca, contact)
			}
		},
	)
	return contact.IsEnabled()
}

func (w *World) onPostSolve(a, b *engine.Fixture, contact *engine.Contact) {

	ca, cb := colliderOf(a), colliderOf(b)
	if ca == nil || cb == nil {
		return
	}

	w.routing.Dispatch(events.Post, ca.class, cb.class, a.IsSensor(), b.IsSensor(),
		func(string) {
			if ca.postSolve != nil {
				ca.postSolve(ca, cb, contact)
			}
		},
		func(string) {
			if cb.postSolve != nil {
				cb.postSolve(cb, ca, contact)
			}
		},
	)
}
