// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccworld

import "github.com/kestrel2d/ccworld/debugdraw"

// Draw overlays every fixture, joint anchor and recent query shape through
// the given renderer at the given opacity. Recorded query shapes age by one
// frame per call and disappear after a few frames.
func (w *World) Draw(r debugdraw.Renderer, alpha float64) {

	if w.destroyed {
		return
	}
	debugdraw.DrawWorld(r, w.engine, w.joints, w.debugQueries, alpha)
	w.debugQueries = debugdraw.Age(w.debugQueries)
}
