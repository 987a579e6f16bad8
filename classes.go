// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccworld

import (
	"github.com/kestrel2d/ccworld/classgraph"
	"github.com/kestrel2d/ccworld/events"
)

// registryState is the class-registry state machine: Empty -> Populating ->
// Frozen, where Frozen is reached at first collider creation. The world's
// own bootstrap registration of the "Default" class does not by itself
// leave Empty, only a caller's own AddCollisionClass does, so
// SetExplicitCollisionEvents remains callable right after New.
type registryState int

const (
	registryEmpty registryState = iota
	registryPopulating
	registryFrozen
)

// CollisionClass is one class's declared policy: its ignore set and, in
// explicit event mode, its declared enter/exit/pre/post peers. In implicit
// mode (the default) the four peer lists are unused.
type CollisionClass struct {
	Ignores                classgraph.Ignores
	Enter, Exit, Pre, Post []string
}

// DefaultClassName is the class every collider starts in until
// SetCollisionClass moves it elsewhere.
const DefaultClassName = "Default"

// Ignores re-exports the classgraph ignore-set type so callers build class
// specs without importing the compiler package directly.
type Ignores = classgraph.Ignores

// IgnoreAll and IgnoreNames are the two ways to build an ignore set: every
// class minus exceptions, or an explicit name list.
var (
	IgnoreAll   = classgraph.IgnoreAll
	IgnoreNames = classgraph.IgnoreNames
)

func (w *World) bootstrapDefaultClass() {

	w.order = append(w.order, DefaultClassName)
	w.specs[DefaultClassName] = CollisionClass{}
	w.recompile()
}

// AddCollisionClass registers one collision class. Classes must all be
// registered before the first collider exists: fixture masks derived from a
// later registration would be undefined for colliders already built.
func (w *World) AddCollisionClass(name string, spec CollisionClass) error {

	if w.registryState == registryFrozen {
		return registryFrozenError{}
	}
	if _, exists := w.specs[name]; exists {
		return &DuplicateClassError{Name: name}
	}

	w.order = append(w.order, name)
	w.specs[name] = spec
	if err := w.recompile(); err != nil {
		// Roll the registration back so the world stays usable.
		w.order = w.order[:len(w.order)-1]
		delete(w.specs, name)
		w.recompile()
		return err
	}
	if w.registryState == registryEmpty {
		w.registryState = registryPopulating
	}
	w.logger.Info("registered collision class %q", name)
	return nil
}

// AddCollisionClassTable registers many classes at once, in the map
// iteration order; callers that need a deterministic category assignment
// should call AddCollisionClass repeatedly instead.
func (w *World) AddCollisionClassTable(table map[string]CollisionClass) error {

	for name, spec := range table {
		if err := w.AddCollisionClass(name, spec); err != nil {
			return err
		}
	}
	return nil
}

// ClassNames returns every registered class, in registration order.
func (w *World) ClassNames() []string {

	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// SetExplicitCollisionEvents switches the routing table between implicit
// mode (every pair fires every transition) and explicit mode (only
// declared peers fire). Must be called before the first AddCollisionClass;
// the bootstrap Default class does not count.
func (w *World) SetExplicitCollisionEvents(explicit bool) error {

	if w.registryState != registryEmpty {
		return explicitModeLockedError{}
	}
	w.explicit = explicit
	return nil
}

// recompile reruns the ignore-graph compiler, rebuilds the event routing
// table and reapplies every existing collider's fixture masks.
func (w *World) recompile() error {

	ignores := make(map[string]classgraph.Ignores, len(w.order))
	declared := make(map[string]events.ClassSpec, len(w.order))
	for _, name := range w.order {
		spec := w.specs[name]
		ignores[name] = spec.Ignores
		declared[name] = events.ClassSpec{Enter: spec.Enter, Exit: spec.Exit, Pre: spec.Pre, Post: spec.Post}
	}

	assignments, err := classgraph.Compile(w.order, ignores)
	if err != nil {
		w.logger.Error("%v", err)
		return err
	}
	w.assignments = assignments
	w.usedCategories = classgraph.UsedCategories(assignments)

	ignoreRelation := func(a, b string) bool {
		spec, ok := w.specs[a]
		if !ok {
			return false
		}
		expanded := spec.Ignores.Expand(w.order, a)
		return expanded[b]
	}
	w.routing = events.NewTable(w.explicit)
	w.routing.Rebuild(w.order, declared, ignoreRelation)

	for c := range w.colliders {
		c.reapplyMasks()
	}
	return nil
}

func (w *World) acceptMask(class string) uint {

	a := w.assignments[class]
	return classgraph.AcceptMask(a.IgnoreMask, w.usedCategories)
}

func (w *World) categoryBit(class string) uint {

	a, ok := w.assignments[class]
	if !ok {
		return 0
	}
	return uint(1) << (a.Category - 1)
}
