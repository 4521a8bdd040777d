// Copyright 2026 The Kestrel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package queue holds the two FIFOs that sit between transports and the
// dispatcher: a single-lane RequestQueue fed by both transports, and a
// dual-lane ResponseQueue that keeps local and cloud responses from
// blocking on each other.
package queue

import (
	"sync"

	"github.com/kestrel-edge/httpcore/transport"
)

// RequestQueue is a thread-safe FIFO of inbound requests, shared by every
// transport a RequestManager drives.
type RequestQueue struct {
	mu    sync.Mutex
	items []transport.Request
}

// NewRequestQueue returns an empty RequestQueue.
func NewRequestQueue() *RequestQueue {
	return &RequestQueue{}
}

// Enqueue appends req. A nil req is silently ignored.
func (q *RequestQueue) Enqueue(req transport.Request) {
	if req == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, req)
}

// Dequeue removes and returns the oldest request. ok is false when the
// queue is empty.
func (q *RequestQueue) Dequeue() (req transport.Request, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	req, q.items[0] = q.items[0], nil
	q.items = q.items[1:]
	return req, true
}

// Len reports the number of requests currently queued.
func (q *RequestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
