// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// EventKind distinguishes the two raw event kinds a Queue mixes together in
// insertion order.
type EventKind int

const (
	EnterEvent EventKind = iota
	ExitEvent
)

type rawEvent struct {
	kind    EventKind
	peer    interface{}
	contact *Snapshot
}

// DataEntry is the `{collider, contact}` pair the getEnter/Exit/Stay
// collision data accessors return. Peer is opaque here (events has no
// notion of a collider type) and holds whatever the caller enqueued.
type DataEntry struct {
	Peer    interface{}
	Contact *Snapshot
}

// Queue is one collider's per-peer-class event bookkeeping: a per-frame
// ordered queue of raw events, a persistent "currently touching" set per
// peer class, and the last enter/exit hit cached per peer class.
type Queue struct {
	events     map[string][]rawEvent
	stay       map[string][]DataEntry
	enterCache map[string]DataEntry
	exitCache  map[string]DataEntry
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {

	return &Queue{
		events:     make(map[string][]rawEvent),
		stay:       make(map[string][]DataEntry),
		enterCache: make(map[string]DataEntry),
		exitCache:  make(map[string]DataEntry),
	}
}

// Clear empties the per-frame event queue at the start of a world update.
// The stay set and enter/exit caches persist across frames: they only
// change in response to polling (Enter/Exit); Enqueue does not touch them.
func (q *Queue) Clear() {

	q.events = make(map[string][]rawEvent)
}

// Enqueue records one raw enter/exit event against peerClass, keyed the way
// the routing table's Dispatch delivers it.
func (q *Queue) Enqueue(peerClass string, kind EventKind, peer interface{}, contact *Snapshot) {

	q.events[peerClass] = append(q.events[peerClass], rawEvent{kind: kind, peer: peer, contact: contact})
}

// Enter reports whether an enter event against peerClass exists in the
// current frame's queue. Polling is intentionally not destructive: it
// returns on the first matching event in insertion order without removing
// anything from the queue, but it does append the touched peer onto the
// stay set and overwrite the cached last hit every time it is called -
// calling Enter repeatedly in the same frame re-appends to stay each time,
// matching the source.
func (q *Queue) Enter(peerClass string) bool {

	for _, e := range q.events[peerClass] {
		if e.kind == EnterEvent {
			entry := DataEntry{Peer: e.peer, Contact: e.contact}
			q.stay[peerClass] = append(q.stay[peerClass], entry)
			q.enterCache[peerClass] = entry
			return true
		}
	}
	return false
}

// Exit reports whether an exit event against peerClass exists in the
// current frame's queue, removing the matching peer from the stay set.
func (q *Queue) Exit(peerClass string) bool {

	for _, e := range q.events[peerClass] {
		if e.kind == ExitEvent {
			entry := DataEntry{Peer: e.peer, Contact: e.contact}
			stay := q.stay[peerClass]
			for i, s := range stay {
				if s.Peer == e.peer {
					stay = append(stay[:i], stay[i+1:]...)
					break
				}
			}
			q.stay[peerClass] = stay
			q.exitCache[peerClass] = entry
			return true
		}
	}
	return false
}

// Stay reports whether any peer of peerClass is currently touching.
func (q *Queue) Stay(peerClass string) bool {

	return len(q.stay[peerClass]) > 0
}

// EnterData returns the cached last enter hit against peerClass.
func (q *Queue) EnterData(peerClass string) (DataEntry, bool) {

	e, ok := q.enterCache[peerClass]
	return e, ok
}

// ExitData returns the cached last exit hit against peerClass.
func (q *Queue) ExitData(peerClass string) (DataEntry, bool) {

	e, ok := q.exitCache[peerClass]
	return e, ok
}

// StayData returns every peer of peerClass currently touching.
func (q *Queue) StayData(peerClass string) []DataEntry {

	out := make([]DataEntry, len(q.stay[peerClass]))
	copy(out, q.stay[peerClass])
	return out
}
