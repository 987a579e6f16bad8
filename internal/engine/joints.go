// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	cp "github.com/undefinedopcode/cp/v2"
)

// JointKind names one of the ten joint constructors. Each kind is a thin
// wrapper around the matching cp constraint constructor; it is up to the
// caller to pass the right number of arguments in the right order for the
// kind requested - this layer only unwraps collider arguments to bodies,
// it does not validate joint-specific argument shape.
type JointKind string

const (
	DistanceJoint  JointKind = "distance"
	FrictionJoint  JointKind = "friction"
	GearJoint      JointKind = "gear"
	MouseJoint     JointKind = "mouse"
	PrismaticJoint JointKind = "prismatic"
	PulleyJoint    JointKind = "pulley"
	RevoluteJoint  JointKind = "revolute"
	RopeJoint      JointKind = "rope"
	WeldJoint      JointKind = "weld"
	WheelJoint     JointKind = "wheel"
)

// Joint wraps a cp.Constraint.
type Joint struct {
	raw    *cp.Constraint
	kind   JointKind
	bodyA  *Body
	bodyB  *Body
}

// Raw returns the underlying cp.Constraint.
func (j *Joint) Raw() *cp.Constraint { return j.raw }

// Kind returns the joint kind this wrapper was constructed with.
func (j *Joint) Kind() JointKind { return j.kind }

// Bodies returns the two bodies this joint connects.
func (j *Joint) Bodies() (*Body, *Body) { return j.bodyA, j.bodyB }

// AddJoint constructs a joint of the given kind between bodyA and bodyB and
// adds it to world. args is forwarded positionally to the underlying cp
// constructor, after the two anchor/body parameters every cp joint
// constructor takes.
func AddJoint(world *World, kind JointKind, bodyA, bodyB *Body, args ...float64) (*Joint, error) {

	a, b := bodyA.raw, bodyB.raw
	var raw *cp.Constraint

	switch kind {
	case RevoluteJoint:
		raw = cp.NewPivotJoint(a, b, vec(args, 0))
	case DistanceJoint:
		raw = cp.NewPinJoint(a, b, vec(args, 0), vec(args, 2))
	case RopeJoint:
		min, max := at(args, 4), at(args, 5)
		raw = cp.NewSlideJoint(a, b, vec(args, 0), vec(args, 2), min, max)
	case PrismaticJoint:
		groove1, groove2 := vec(args, 0), vec(args, 2)
		anchorB := vec(args, 4)
		raw = cp.NewGrooveJoint(a, b, groove1, groove2, anchorB)
	case PulleyJoint:
		// Modeled as two slide joints sharing ratio bookkeeping is left to
		// the caller; this wrapper only builds the single cp primitive
		// closest to it, a slide joint between the two bodies.
		min, max := at(args, 4), at(args, 5)
		raw = cp.NewSlideJoint(a, b, vec(args, 0), vec(args, 2), min, max)
	case WeldJoint:
		phase, max := at(args, 0), at(args, 1)
		raw = cp.NewRotaryLimitJoint(a, b, phase, phase)
		_ = max
	case WheelJoint:
		anchor := vec(args, 0)
		raw = cp.NewPivotJoint(a, b, anchor)
	case GearJoint:
		phase, ratio := at(args, 0), at(args, 1)
		raw = cp.NewGearJoint(a, b, phase, ratio)
	case MouseJoint:
		raw = cp.NewPivotJoint(a, b, vec(args, 0))
	case FrictionJoint:
		raw = cp.NewPivotJoint(a, b, vec(args, 0))
	default:
		return nil, fmt.Errorf("engine: unknown joint kind %q", kind)
	}

	world.space.AddConstraint(raw)
	return &Joint{raw: raw, kind: kind, bodyA: bodyA, bodyB: bodyB}, nil
}

// RemoveJoint removes a joint from the world.
func RemoveJoint(world *World, j *Joint) {

	world.space.RemoveConstraint(j.raw)
}

func vec(args []float64, i int) cp.Vector {

	return cp.Vector{X: at(args, i), Y: at(args, i+1)}
}

func at(args []float64, i int) float64 {

	if i < 0 || i >= len(args) {
		return 0
	}
	return args[i]
}
