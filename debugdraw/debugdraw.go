// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugdraw renders an overlay of a world's fixtures, joints and
// recent shape queries onto any Renderer implementation. It is pure
// visualisation: nothing here mutates the world.
package debugdraw

import (
	"github.com/kestrel2d/ccworld/internal/engine"
)

// QueryFrames is how many frames a recorded query shape stays on screen.
const QueryFrames = 10

// Renderer is the rendering collaborator the overlay draws through. The
// getter half exists so drawing can preserve and restore the caller's
// colour and line width.
type Renderer interface {
	Color() (r, g, b, a float64)
	SetColor(r, g, b, a float64)
	LineWidth() float64
	SetLineWidth(width float64)
	Polygon(mode string, points []float64)
	Line(x1, y1, x2, y2 float64)
	Circle(mode string, x, y, radius float64)
	Rectangle(mode string, x, y, width, height float64)
	Triangulate(points []float64) [][]float64
}

// QueryKind tags one recorded query shape.
type QueryKind int

const (
	QueryCircle QueryKind = iota
	QueryRectangle
	QueryPolygon
	QueryLine
)

// Query is one recorded query shape, drawn until Frames reaches zero.
// Data layout by kind: circle x,y,r; rectangle x,y,w,h; polygon flattened
// vertex pairs; line x1,y1,x2,y2.
type Query struct {
	Kind   QueryKind
	Data   []float64
	Frames int
}

// DrawWorld draws every fixture, joint anchor and live query shape, then
// restores the renderer's colour and line width.
func DrawWorld(r Renderer, w *engine.World, joints []*engine.Joint, queries []Query, alpha float64) {

	cr, cg, cb, ca := r.Color()
	lw := r.LineWidth()
	defer func() {
		r.SetColor(cr, cg, cb, ca)
		r.SetLineWidth(lw)
	}()

	r.SetLineWidth(1)

	r.SetColor(0.87, 0.87, 0.87, alpha)
	w.EachBody(func(b *engine.Body) {
		for _, f := range b.GetFixtures() {
			if f.IsSensor() {
				continue
			}
			drawFixture(r, f)
		}
	})

	r.SetColor(0.87, 0.5, 0.25, alpha)
	for _, j := range joints {
		drawJoint(r, j)
	}

	r.SetColor(0.25, 0.87, 0.25, alpha)
	for _, q := range queries {
		drawQuery(r, q)
	}
}

func drawFixture(r Renderer, f *engine.Fixture) {

	switch f.GetShapeKind() {
	case engine.ShapeCircle:
		local := f.GetLocalPoints()
		var x, y float64
		if len(local) >= 2 {
			x, y = f.Body().GetWorldPoint(local[0], local[1])
		} else {
			x, y = f.Body().GetPosition()
		}
		r.Circle("line", x, y, f.GetRadius())
	case engine.ShapeEdge, engine.ShapeChain:
		pts := f.GetWorldPoints()
		for i := 0; i+3 < len(pts); i += 2 {
			r.Line(pts[i], pts[i+1], pts[i+2], pts[i+3])
		}
	default:
		r.Polygon("line", f.GetWorldPoints())
	}
}

// drawJoint marks each body anchor with a small circle and connects them.
func drawJoint(r Renderer, j *engine.Joint) {

	bodyA, bodyB := j.Bodies()
	if bodyA == nil || bodyB == nil {
		return
	}
	x1, y1 := bodyA.GetPosition()
	x2, y2 := bodyB.GetPosition()
	r.Circle("line", x1, y1, 2)
	r.Circle("line", x2, y2, 2)
	r.Line(x1, y1, x2, y2)
}

func drawQuery(r Renderer, q Query) {

	switch q.Kind {
	case QueryCircle:
		if len(q.Data) >= 3 {
			r.Circle("line", q.Data[0], q.Data[1], q.Data[2])
		}
	case QueryRectangle:
		if len(q.Data) >= 4 {
			r.Rectangle("line", q.Data[0], q.Data[1], q.Data[2], q.Data[3])
		}
	case QueryPolygon:
		// Concave query polygons render as their triangulation, since a
		// plain outline cannot show the tested area for self-overlapping
		// input.
		for _, tri := range r.Triangulate(q.Data) {
			r.Polygon("line", tri)
		}
	case QueryLine:
		if len(q.Data) >= 4 {
			r.Line(q.Data[0], q.Data[1], q.Data[2], q.Data[3])
		}
	}
}

// Age decrements every query's frame counter and drops the expired ones,
// returning the survivors in place.
func Age(queries []Query) []Query {

	kept := queries[:0]
	for _, q := range queries {
		q.Frames--
		if q.Frames > 0 {
			kept = append(kept, q)
		}
	}
	return kept
}
