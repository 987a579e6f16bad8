// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccworld

import "fmt"

// DuplicateClassError reports that AddCollisionClass was called with a name
// already present in the registry.
type DuplicateClassError struct {
	Name string
}

func (e *DuplicateClassError) Error() string {

	return fmt.Sprintf("ccworld: collision class %q already registered", e.Name)
}

// UnknownClassError reports that a collider referenced a class name never
// registered with AddCollisionClass.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {

	return fmt.Sprintf("ccworld: collision class %q is not registered", e.Name)
}

// DuplicateShapeError reports that AddShape was called with a name already
// attached to the collider.
type DuplicateShapeError struct {
	Name string
}

func (e *DuplicateShapeError) Error() string {

	return fmt.Sprintf("ccworld: shape %q already attached to this collider", e.Name)
}

// explicitModeLockedError reports SetExplicitCollisionEvents being called
// after the class registry has left its Empty state.
type explicitModeLockedError struct{}

func (explicitModeLockedError) Error() string {

	return "ccworld: SetExplicitCollisionEvents must be called before the first collision class is registered"
}

// registryFrozenError reports AddCollisionClass being called after the
// first collider froze the class registry.
type registryFrozenError struct{}

func (registryFrozenError) Error() string {

	return "ccworld: collision classes must all be registered before the first collider is created"
}
