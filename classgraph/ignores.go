// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classgraph compiles a symbolic collision-class ignore graph into
// the per-fixture category/mask bitsets the underlying engine's narrow-phase
// filter understands. It has no notion of bodies, fixtures or events - it
// is pure value computation over class names, recomputed from scratch each
// time the class set changes.
package classgraph

import "sort"

// All is the sentinel meaning "every other registered class".
const All = "All"

// Ignores describes one class's ignore set: either an explicit list of peer
// names, or the All sentinel, optionally with Except subtracted from
// whichever of the two was used.
type Ignores struct {
	UseAll bool
	Names  []string
	Except []string
}

// IgnoreAll returns an Ignores set meaning "every other class", optionally
// excluding the given names.
func IgnoreAll(except ...string) Ignores {

	return Ignores{UseAll: true, Except: except}
}

// IgnoreNames returns an Ignores set listing the peer classes by name.
func IgnoreNames(names ...string) Ignores {

	return Ignores{Names: names}
}

// Expand resolves this Ignores set against the universe of registered class
// names, for the class named self. Self is never included in its own
// expansion.
func (ig Ignores) Expand(universe []string, self string) map[string]bool {

	return ig.expand(universe, self)
}

func (ig Ignores) expand(universe []string, self string) map[string]bool {

	out := make(map[string]bool, len(universe))
	if ig.UseAll {
		for _, name := range universe {
			if !equalFold(name, self) {
				out[name] = true
			}
		}
	} else {
		for _, name := range ig.Names {
			if !equalFold(name, self) {
				out[name] = true
			}
		}
	}
	for _, name := range ig.Except {
		delete(out, name)
		for k := range out {
			if equalFold(k, name) {
				delete(out, k)
			}
		}
	}
	return out
}

func equalFold(a, b string) bool {

	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func sortedFold(names []string) []string {

	out := make([]string, len(names))
	copy(out, names)
	sort.Slice(out, func(i, j int) bool {
		return lessFold(out[i], out[j])
	})
	return out
}

func lessFold(a, b string) bool {

	la, lb := toLower(a), toLower(b)
	return la < lb
}

func toLower(s string) string {

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
