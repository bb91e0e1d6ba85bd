// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Handle identifies one attached handler, for detaching.
type Handle int64

// Handler is a function attached to a [Source].
type Handler func(ev *Event)

// Source fans events out to attached handlers in attach order. It is
// not safe for concurrent use; the single interaction loop owns it.
type Source struct {
	next     Handle
	order    []Handle
	handlers map[Handle]Handler
}

// Attach adds a handler and returns its handle.
func (sr *Source) Attach(h Handler) Handle {
	if sr.handlers == nil {
		sr.handlers = map[Handle]Handler{}
	}
	sr.next++
	hd := sr.next
	sr.order = append(sr.order, hd)
	sr.handlers[hd] = h
	return hd
}

// Detach removes the handler with the given handle; unknown handles
// are ignored.
func (sr *Source) Detach(hd Handle) {
	if _, ok := sr.handlers[hd]; !ok {
		return
	}
	delete(sr.handlers, hd)
	for i, o := range sr.order {
		if o == hd {
			sr.order = append(sr.order[:i], sr.order[i+1:]...)
			break
		}
	}
}

// Send delivers the event to every attached handler, in attach order.
func (sr *Source) Send(ev *Event) {
	for _, hd := range sr.order {
		if h, ok := sr.handlers[hd]; ok {
			h(ev)
		}
	}
}
