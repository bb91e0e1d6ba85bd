// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Range returns a new [F64] with the given min and max values.
func Range(mn, mx float64) F64 {
	return F64{Min: mn, Max: mx}
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// IsValid returns true if Min <= Max.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max).
func (mr *F64) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns the point halfway between Min and Max.
func (mr *F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// ClipValue clips the given value within the Min / Max range.
// A NaN will remain a NaN.
func (mr *F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// NormValue normalizes the given value to the 0-1 unit range relative
// to the current Min / Max range, without clipping.
func (mr *F64) NormValue(val float64) float64 {
	r := mr.Range()
	if r == 0 {
		return 0
	}
	return (val - mr.Min) / r
}

// ProjValue projects a 0-1 normalized unit value into the current
// Min / Max range (inverse of [F64.NormValue]).
func (mr *F64) ProjValue(val float64) float64 {
	return mr.Min + val*mr.Range()
}

// FitValInRange adjusts Min, Max to fit the given value within the range,
// returning true if an adjustment was made.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Intersect returns the intersection of this range with the other given
// range, and true if they overlap.
func (mr *F64) Intersect(oth F64) (F64, bool) {
	ix := Range(math.Max(mr.Min, oth.Min), math.Min(mr.Max, oth.Max))
	return ix, ix.IsValid()
}

// Sanitize ensures a usable drawing range: swaps Min and Max if reversed,
// replaces non-finite bounds with defaults, and expands a degenerate
// (zero width) range by one unit on each side.
func (mr *F64) Sanitize() {
	if math.IsNaN(mr.Min) || math.IsInf(mr.Min, 0) {
		mr.Min = -10
	}
	if math.IsNaN(mr.Max) || math.IsInf(mr.Max, 0) {
		mr.Max = 10
	}
	if mr.Min > mr.Max {
		mr.Min, mr.Max = mr.Max, mr.Min
	}
	if mr.Min == mr.Max {
		mr.Min--
		mr.Max++
	}
}
