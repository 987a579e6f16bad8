// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Transition identifies one of the four dispatch moments a routing table
// tracks pairs for.
type Transition int

const (
	Enter Transition = iota
	Exit
	Pre
	Post
)

const numTransitions = 4

// ClassSpec is one class's declared transition peers, used only in explicit
// mode; implicit mode ignores it and seeds every pair itself.
type ClassSpec struct {
	Enter, Exit, Pre, Post []string
}

// pairKey is ordered: (a, b) means "a collider of class a receives events
// about class b". Implicit mode seeds both orientations of every pair, so
// both sides of a contact hear about it; explicit mode seeds only the
// orientations the user declared.
type pairKey struct{ a, b string }

// unorderedKey normalizes a pair for the sensor-classification memo, which
// is direction-free.
func unorderedKey(a, b string) pairKey {

	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type transitionSet struct {
	sensor    map[pairKey]bool
	nonSensor map[pairKey]bool
}

func newTransitionSet() transitionSet {

	return transitionSet{sensor: make(map[pairKey]bool), nonSensor: make(map[pairKey]bool)}
}

// Table holds, per transition, two lists (sensor vs non-sensor) of class
// pairs that should fire that transition. It is rebuilt wholesale whenever
// the class registry changes, the same way classgraph's compiler recomputes
// from scratch rather than patching incrementally.
type Table struct {
	explicit bool
	sets     [numTransitions]transitionSet
}

// NewTable creates a routing table in implicit or explicit mode. Explicit
// mode must be chosen before any class is registered; the caller (the world
// façade's class-registry state machine) is responsible for enforcing that.
func NewTable(explicit bool) *Table {

	t := &Table{explicit: explicit}
	for i := range t.sets {
		t.sets[i] = newTransitionSet()
	}
	return t
}

// Explicit reports whether this table is in explicit event mode.
func (t *Table) Explicit() bool { return t.explicit }

// Rebuild recomputes every transition list from the current class registry.
// order is the full class list in registration order; declared maps a class
// name to its explicit-mode peer lists (ignored in implicit mode).
// ignoreRelation(a, b) reports whether a's ignores set (after sentinel
// expansion) contains b; a pair is "sensor-involving" - and is dispatched
// only once both of its live fixtures are sensors - if the relation holds in
// either direction, memoized per unordered pair.
func (t *Table) Rebuild(order []string, declared map[string]ClassSpec, ignoreRelation func(a, b string) bool) {

	for i := range t.sets {
		t.sets[i] = newTransitionSet()
	}

	sensorCache := make(map[pairKey]bool)
	classify := func(a, b string) bool {
		k := unorderedKey(a, b)
		if v, ok := sensorCache[k]; ok {
			return v
		}
		v := ignoreRelation(a, b) || ignoreRelation(b, a)
		sensorCache[k] = v
		return v
	}

	insert := func(transition Transition, a, b string) {
		k := pairKey{a, b}
		if classify(a, b) {
			t.sets[transition].sensor[k] = true
		} else {
			t.sets[transition].nonSensor[k] = true
		}
	}

	if t.explicit {
		for _, name := range order {
			spec := declared[name]
			for _, peer := range spec.Enter {
				insert(Enter, name, peer)
			}
			for _, peer := range spec.Exit {
				insert(Exit, name, peer)
			}
			for _, peer := range spec.Pre {
				insert(Pre, name, peer)
			}
			for _, peer := range spec.Post {
				insert(Post, name, peer)
			}
		}
		return
	}

	// Implicit mode: every orientation of every pair (including a class
	// against itself) fires every transition.
	for _, a := range order {
		for _, b := range order {
			insert(Enter, a, b)
			insert(Exit, a, b)
			insert(Pre, a, b)
			insert(Post, a, b)
		}
	}
}

// Dispatch decides whether a raw engine callback for (classA, classB) at the
// given transition should produce events, and if so delivers them through
// enqueueA/enqueueB. Mixed sensor/non-sensor fixture pairs never dispatch.
// Collider A receives an event keyed by classB when the orientation
// (classA, classB) is in the applicable list, and collider B receives one
// keyed by classA when (classB, classA) is; for a same-class pair the single
// (C, C) entry is mirrored onto both queues, since otherwise the second
// instance would never learn about the first.
func (t *Table) Dispatch(transition Transition, classA, classB string, sensorA, sensorB bool, enqueueA, enqueueB func(peerClass string)) {

	if sensorA != sensorB {
		return
	}

	set := t.sets[transition].nonSensor
	if sensorA {
		set = t.sets[transition].sensor
	}

	if set[pairKey{classA, classB}] {
		enqueueA(classB)
		if classA == classB {
			enqueueB(classA)
		}
	}
	if classA != classB && set[pairKey{classB, classA}] {
		enqueueB(classA)
	}
}
