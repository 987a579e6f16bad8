// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine adapts github.com/undefinedopcode/cp/v2 (a Chipmunk2D-style
// rigid body engine) behind the vocabulary the collision-class world speaks:
// World/Body/Fixture/Shape/Contact plus the four dispatch callbacks. Nothing
// in this package knows about collision classes, categories or events - it
// only forwards to the engine and translates types.
package engine

import (
	cp "github.com/undefinedopcode/cp/v2"
)

// BeginFunc, PreSolveFunc, PostSolveFunc and SeparateFunc are the four raw
// dispatch callbacks the underlying engine invokes during Step. PreSolveFunc
// returning false disables the contact response for that step.
type (
	BeginFunc     func(a, b *Fixture, contact *Contact)
	PreSolveFunc  func(a, b *Fixture, contact *Contact) bool
	PostSolveFunc func(a, b *Fixture, contact *Contact)
	SeparateFunc  func(a, b *Fixture, contact *Contact)
)

// World wraps a cp.Space.
type World struct {
	space *cp.Space

	meter float64 // pixels per meter, default 32

	onBegin     BeginFunc
	onPreSolve  PreSolveFunc
	onPostSolve PostSolveFunc
	onSeparate  SeparateFunc
}

// NewWorld creates the physics world with the given gravity and sleep
// setting, and wires the default collision handler so every fixture pair
// is reported through Step's dispatch callbacks.
func NewWorld(gx, gy float64, sleepAllowed bool) *World {

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: gx, Y: gy})
	// The engine default (infinite threshold) never sleeps bodies; a finite
	// threshold turns sleeping on.
	if sleepAllowed {
		space.SleepTimeThreshold = 0.5
	}

	w := &World{space: space, meter: 32}

	// Every shape keeps the default collision type, so one handler for the
	// (0, 0) pair sees each contact exactly once. The wildcard route would
	// run the handler once per shape with the arbiter swapped, duplicating
	// every event.
	handler := space.NewCollisionHandler(0, 0)
	handler.BeginFunc = w.dispatchBegin
	handler.PreSolveFunc = w.dispatchPreSolve
	handler.PostSolveFunc = w.dispatchPostSolve
	handler.SeparateFunc = w.dispatchSeparate

	return w
}

// SetMeter records the pixel-per-meter scale reported by Meter. The value
// is stored only; Step and the underlying space do not read it.
func (w *World) SetMeter(pixelsPerMeter float64) {

	w.meter = pixelsPerMeter
}

// Meter returns the current pixel-per-meter scale.
func (w *World) Meter() float64 {

	return w.meter
}

// OnBegin, OnPreSolve, OnPostSolve and OnSeparate register the four raw
// dispatch callbacks. World.Step invokes them synchronously.
func (w *World) OnBegin(fn BeginFunc)         { w.onBegin = fn }
func (w *World) OnPreSolve(fn PreSolveFunc)   { w.onPreSolve = fn }
func (w *World) OnPostSolve(fn PostSolveFunc) { w.onPostSolve = fn }
func (w *World) OnSeparate(fn SeparateFunc)   { w.onSeparate = fn }

// Step advances the simulation by dt seconds. Every enter/exit/pre/post
// callback registered above fires synchronously within this call.
func (w *World) Step(dt float64) {

	w.space.Step(dt)
}

// EachBody calls fn once for every body currently in the world.
func (w *World) EachBody(fn func(*Body)) {

	w.space.EachBody(func(b *cp.Body) {
		fn(bodyFor(b))
	})
}

// Raw returns the underlying cp.Space, for joint construction and anything
// else this package does not wrap.
func (w *World) Raw() *cp.Space {

	return w.space
}

func (w *World) dispatchBegin(arb *cp.Arbiter, space *cp.Space, data interface{}) bool {

	a, b, contact := w.fixturesAndContact(arb, true)
	if w.onBegin != nil {
		w.onBegin(a, b, contact)
	}
	return true
}

func (w *World) dispatchPreSolve(arb *cp.Arbiter, space *cp.Space, data interface{}) bool {

	a, b, contact := w.fixturesAndContact(arb, true)
	if w.onPreSolve != nil {
		return w.onPreSolve(a, b, contact)
	}
	return true
}

func (w *World) dispatchPostSolve(arb *cp.Arbiter, space *cp.Space, data interface{}) {

	a, b, contact := w.fixturesAndContact(arb, true)
	if w.onPostSolve != nil {
		w.onPostSolve(a, b, contact)
	}
}

func (w *World) dispatchSeparate(arb *cp.Arbiter, space *cp.Space, data interface{}) {

	a, b, contact := w.fixturesAndContact(arb, false)
	if w.onSeparate != nil {
		w.onSeparate(a, b, contact)
	}
}

func (w *World) fixturesAndContact(arb *cp.Arbiter, touching bool) (*Fixture, *Fixture, *Contact) {

	shapeA, shapeB := arb.Shapes()
	a := fixtureFor(shapeA)
	b := fixtureFor(shapeB)
	return a, b, newContact(arb, touching)
}
