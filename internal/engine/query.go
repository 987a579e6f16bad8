// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	cp "github.com/undefinedopcode/cp/v2"
)

// allCategories is a filter that accepts every category bit, used for the
// broad-phase queries below: class filtering happens afterwards in ccworld.
const allCategories = ^uint(0)

var queryFilter = cp.ShapeFilter{Categories: allCategories, Mask: allCategories}

// QueryBoundingBox collects every fixture whose shape overlaps the given
// axis-aligned box, the broad-phase half of every shape query.
func (w *World) QueryBoundingBox(x1, y1, x2, y2 float64, cb func(*Fixture)) {

	bb := cp.BB{L: x1, B: y1, R: x2, T: y2}
	w.space.BBQuery(bb, queryFilter, func(shape *cp.Shape, _ interface{}) {
		if f := fixtureFor(shape); f != nil {
			cb(f)
		}
	}, nil)
}

// RayCast collects every non-sensor fixture intersected by the segment
// (x1,y1)-(x2,y2).
func (w *World) RayCast(x1, y1, x2, y2 float64, cb func(*Fixture)) {

	start := cp.Vector{X: x1, Y: y1}
	end := cp.Vector{X: x2, Y: y2}
	w.space.SegmentQuery(start, end, 0, queryFilter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		if f := fixtureFor(shape); f != nil && !f.sensor {
			cb(f)
		}
	}, nil)
}
