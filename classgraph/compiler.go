// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classgraph

import "strings"

// Assignment is one class's compiled category id and ignore-mask. The
// compiler produces the ignore relation directly, because that is what the
// incoming-signature grouping naturally yields; the engine wiring layer
// (ccworld) complements IgnoreMask against the categories actually in use
// to obtain the fixture's accept-mask.
type Assignment struct {
	Category   uint // engine category id, in [1, MaxCategories]
	IgnoreMask uint // bitset of category ids this class refuses contact with
}

// Compile resolves the ignores relation of every class in order into a
// category id + mask bitset per class: expand sentinels, group by
// "incoming" signature, assign masks. Two classes are filter-equivalent
// exactly when the set of classes refusing to touch them is identical, so
// grouping by the incoming relation minimises category use.
//
// order is the class registration order (stable iteration matters: category
// ids are handed out in first-seen group order). ignores maps class name to
// its ignore set; every name in order must have an entry.
func Compile(order []string, ignores map[string]Ignores) (map[string]Assignment, error) {

	expanded := make(map[string]map[string]bool, len(order))
	for _, name := range order {
		expanded[name] = ignores[name].expand(order, name)
	}

	// incoming(C) = classes that ignore C.
	incoming := make(map[string][]string, len(order))
	for _, name := range order {
		incoming[name] = nil
	}
	for _, from := range order {
		for to := range expanded[from] {
			incoming[to] = append(incoming[to], from)
		}
	}

	// Group by incoming signature, in first-seen order.
	groupID := make(map[string]uint, len(order))
	signatureID := make(map[string]uint)
	var overflow []string
	for _, name := range order {
		key := strings.Join(sortedFold(incoming[name]), "\x00")
		id, ok := signatureID[key]
		if !ok {
			id = uint(len(signatureID)) + 1
			signatureID[key] = id
			if id > MaxCategories {
				overflow = append(overflow, name)
			}
		}
		groupID[name] = id
	}
	if len(overflow) > 0 {
		return nil, &CategoryOverflowError{Classes: overflow}
	}

	out := make(map[string]Assignment, len(order))
	for _, name := range order {
		var ignoreMask uint
		for peer := range expanded[name] {
			// Ignores may name classes that were never registered; they
			// contribute nothing to the mask.
			if id, ok := groupID[peer]; ok {
				ignoreMask |= 1 << (id - 1)
			}
		}
		out[name] = Assignment{Category: groupID[name], IgnoreMask: ignoreMask}
	}
	return out, nil
}

// UsedCategories returns the number of distinct category ids an Assignment
// set actually uses, so a caller can build the "everything" bitset needed to
// complement an IgnoreMask into an accept-mask.
func UsedCategories(assignments map[string]Assignment) uint {

	var max uint
	for _, a := range assignments {
		if a.Category > max {
			max = a.Category
		}
	}
	return max
}

// AcceptMask returns the engine-facing accept-mask for an ignore-mask,
// given the number of categories in use.
func AcceptMask(ignoreMask uint, usedCategories uint) uint {

	var all uint
	if usedCategories >= 64 {
		all = ^uint(0)
	} else {
		all = (uint(1) << usedCategories) - 1
	}
	return all &^ ignoreMask
}
