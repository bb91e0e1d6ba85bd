// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer and scroll events that drive the
// interaction layer, and the [Source] that fans them out to attached
// handlers. Events are injected by the embedding surface (a windowing
// frontend, a test); nothing here polls a device.
package events

import (
	"fmt"

	"github.com/funcplot/funcplot/math32"
)

// Types is the type of an event.
type Types int32

const (
	// UnknownType is an uninitialized event type.
	UnknownType Types = iota

	// MouseDown is a mouse button press.
	MouseDown

	// MouseUp is a mouse button release.
	MouseUp

	// MouseMove is a mouse movement, with or without a button held.
	MouseMove

	// Scroll is a mouse wheel or trackpad scroll.
	Scroll

	// Magnify is a pinch zoom gesture.
	Magnify
)

var typeNames = map[Types]string{
	UnknownType: "UnknownType",
	MouseDown:   "MouseDown",
	MouseUp:     "MouseUp",
	MouseMove:   "MouseMove",
	Scroll:      "Scroll",
	Magnify:     "Magnify",
}

func (tp Types) String() string {
	if nm, ok := typeNames[tp]; ok {
		return nm
	}
	return fmt.Sprintf("Types(%d)", int32(tp))
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Event is one pointer, scroll, or magnify event, in canvas pixel
// coordinates with Y increasing downward.
type Event struct {

	// Type is the event type.
	Type Types

	// Pos is the pointer position.
	Pos math32.Vector2

	// Button is the mouse button, for MouseDown and MouseUp.
	Button Buttons

	// Delta is the scroll amount, for Scroll events.
	Delta math32.Vector2

	// ScaleDelta is the relative scale change, for Magnify events.
	ScaleDelta float32
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, pos math32.Vector2) *Event {
	return &Event{Type: typ, Button: but, Pos: pos}
}

// NewScroll returns a new [Scroll] event at the given position.
func NewScroll(pos, delta math32.Vector2) *Event {
	return &Event{Type: Scroll, Pos: pos, Delta: delta}
}

// NewMagnify returns a new [Magnify] event at the given position.
// scaleDelta is the relative scale change of the gesture step.
func NewMagnify(pos math32.Vector2, scaleDelta float32) *Event {
	return &Event{Type: Magnify, Pos: pos, ScaleDelta: scaleDelta}
}

func (ev *Event) String() string {
	switch ev.Type {
	case Scroll:
		return fmt.Sprintf("%v{Pos: %v, Delta: %v}", ev.Type, ev.Pos, ev.Delta)
	case Magnify:
		return fmt.Sprintf("%v{Pos: %v, ScaleDelta: %v}", ev.Type, ev.Pos, ev.ScaleDelta)
	}
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Type, ev.Button, ev.Pos)
}
