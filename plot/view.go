// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/funcplot/funcplot/math32/minmax"

// View is the pan/zoom override of the configured plot limits.
// It is a two-state machine: unset, where the [Config] limits apply,
// and set, where the explicit override applies. It becomes set on the
// first pan or zoom (seeded from the config limits at that instant) or
// on [View.Reset], stays set across redraws triggered by parameter
// changes, and only returns to unset through [View.HardReset], which
// the orchestrator invokes when the config limits themselves change.
type View struct {
	X minmax.F64
	Y minmax.F64

	set bool
}

// IsSet reports whether the override is active.
func (vw *View) IsSet() bool {
	return vw.set
}

// Init seeds the override from the config limits if it is not already
// set, making it set. Call before the first pan/zoom mutation.
func (vw *View) Init(cf *Config) {
	if vw.set {
		return
	}
	vw.X = cf.XLim
	vw.Y = cf.YLim
	vw.set = true
}

// Set sets the override to the given ranges, making it set.
func (vw *View) Set(x, y minmax.F64) {
	vw.X = x
	vw.Y = y
	vw.set = true
}

// Reset seeds the override from the config limits explicitly.
// The view remains in the set state.
func (vw *View) Reset(cf *Config) {
	vw.X = cf.XLim
	vw.Y = cf.YLim
	vw.set = true
}

// HardReset discards the override entirely, returning to the unset
// state where config limits apply.
func (vw *View) HardReset() {
	*vw = View{}
}

// Current returns the effective data ranges: the override when set,
// the config limits otherwise.
func (vw *View) Current(cf *Config) (x, y minmax.F64) {
	if vw.set {
		return vw.X, vw.Y
	}
	return cf.XLim, cf.YLim
}
