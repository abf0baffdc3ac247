// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Deque is a FIFO queue of input events. The input manager sends
// events onto it from the windowing callbacks, and the host polls it
// once per frame. Polling never blocks: the main loop is responsible
// for pumping OS events before draining the queue.
type Deque struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the back of the queue.
func (q *Deque) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Poll removes and returns the frontmost event. The second return
// value is false if the queue is empty.
func (q *Deque) Poll() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of queued events.
func (q *Deque) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
