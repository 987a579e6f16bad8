// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package level is a small in-memory level loader: a declarative list of
// collision classes and entities that Build turns into a live world.
package level

import (
	"github.com/kestrel2d/ccworld"
)

// Class pairs a collision-class name with its policy, kept as a slice so
// registration order (and therefore category assignment) is deterministic.
type Class struct {
	Name string
	Spec ccworld.CollisionClass
}

// Entity is one collider to create: its name, class, body kind, shape and
// position. Chain shapes carry their own vertices and ignore X/Y.
type Entity struct {
	Name  string
	Class string
	Kind  ccworld.BodyKind
	Shape ccworld.Shape
	X, Y  float64
}

// Level is a complete declarative level description.
type Level struct {
	Name     string
	Gravity  [2]float64
	Classes  []Class
	Entities []Entity
}

// Build creates the world, registers every class and spawns every entity,
// returning the colliders keyed by entity name. Each collider's user object
// is set to its entity name.
func (l *Level) Build() (*ccworld.World, map[string]*ccworld.Collider, error) {

	w := ccworld.New(l.Gravity[0], l.Gravity[1], true)
	for _, class := range l.Classes {
		if err := w.AddCollisionClass(class.Name, class.Spec); err != nil {
			w.Destroy()
			return nil, nil, err
		}
	}

	colliders := make(map[string]*ccworld.Collider, len(l.Entities))
	for _, e := range l.Entities {
		c := spawn(w, e)
		if e.Class != "" {
			if err := c.SetCollisionClass(e.Class); err != nil {
				w.Destroy()
				return nil, nil, err
			}
		}
		c.SetObject(e.Name)
		colliders[e.Name] = c
	}
	return w, colliders, nil
}

func spawn(w *ccworld.World, e Entity) *ccworld.Collider {

	switch s := e.Shape.(type) {
	case ccworld.Circle:
		return w.NewCircleCollider(e.Kind, e.X, e.Y, s.R)
	case ccworld.Rectangle:
		return w.NewRectangleCollider(e.Kind, e.X, e.Y, s.W, s.H)
	case ccworld.BSGRectangle:
		return w.NewBSGRectangleCollider(e.Kind, e.X, e.Y, s.W, s.H, s.Cut)
	case ccworld.Polygon:
		return w.NewPolygonCollider(e.Kind, e.X, e.Y, s.Points)
	case ccworld.Line:
		return w.NewLineCollider(e.Kind, e.X, e.Y, e.X+s.X2-s.X1, e.Y+s.Y2-s.Y1)
	case ccworld.Chain:
		return w.NewChainCollider(e.Kind, s.Points, s.Loop)
	}
	return w.NewRectangleCollider(e.Kind, e.X, e.Y, 1, 1)
}
