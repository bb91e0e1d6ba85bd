// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funcplot/funcplot/math32"
)

func TestSourceOrder(t *testing.T) {
	var sr Source
	var got []int
	sr.Attach(func(ev *Event) { got = append(got, 1) })
	sr.Attach(func(ev *Event) { got = append(got, 2) })
	sr.Attach(func(ev *Event) { got = append(got, 3) })
	sr.Send(NewMouse(MouseDown, Left, math32.Vec2(1, 2)))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSourceDetach(t *testing.T) {
	var sr Source
	var got []int
	sr.Attach(func(ev *Event) { got = append(got, 1) })
	hd := sr.Attach(func(ev *Event) { got = append(got, 2) })
	sr.Attach(func(ev *Event) { got = append(got, 3) })
	sr.Detach(hd)
	sr.Detach(hd) // repeat is a no-op
	sr.Send(NewMouse(MouseMove, NoButton, math32.Vector2{}))
	assert.Equal(t, []int{1, 3}, got)
}

func TestEventString(t *testing.T) {
	assert.Contains(t, NewScroll(math32.Vec2(1, 2), math32.Vec2(0, 3)).String(), "Scroll")
	assert.Contains(t, NewMagnify(math32.Vec2(1, 2), 1.1).String(), "Magnify")
	assert.Contains(t, NewMouse(MouseUp, Right, math32.Vector2{}).String(), "MouseUp")
}
