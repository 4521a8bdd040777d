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

package queue

import (
	"sync"

	"github.com/kestrel-edge/httpcore/transport"
)

// ResponseQueue holds two independent lanes, one per transport.Source, so a
// slow cloud transport can never starve local responses (or vice versa).
type ResponseQueue struct {
	localMu sync.Mutex
	local   []transport.WireResponse

	cloudMu sync.Mutex
	cloud   []transport.WireResponse
}

// NewResponseQueue returns an empty ResponseQueue.
func NewResponseQueue() *ResponseQueue {
	return &ResponseQueue{}
}

// Enqueue routes resp into the lane named by resp.Source. A response
// carrying an unrecognized Source is silently dropped.
func (q *ResponseQueue) Enqueue(resp transport.WireResponse) {
	switch resp.Source {
	case transport.LocalServer:
		q.localMu.Lock()
		q.local = append(q.local, resp)
		q.localMu.Unlock()
	case transport.CloudServer:
		q.cloudMu.Lock()
		q.cloud = append(q.cloud, resp)
		q.cloudMu.Unlock()
	}
}

// DequeueLocalResponse removes and returns the oldest local-lane response.
func (q *ResponseQueue) DequeueLocalResponse() (transport.WireResponse, bool) {
	q.localMu.Lock()
	defer q.localMu.Unlock()
	return dequeue(&q.local)
}

// DequeueCloudResponse removes and returns the oldest cloud-lane response.
func (q *ResponseQueue) DequeueCloudResponse() (transport.WireResponse, bool) {
	q.cloudMu.Lock()
	defer q.cloudMu.Unlock()
	return dequeue(&q.cloud)
}

func dequeue(items *[]transport.WireResponse) (transport.WireResponse, bool) {
	if len(*items) == 0 {
		return transport.WireResponse{}, false
	}
	resp := (*items)[0]
	*items = (*items)[1:]
	return resp, true
}

// IsEmpty reports whether both lanes are empty.
func (q *ResponseQueue) IsEmpty() bool {
	q.localMu.Lock()
	localEmpty := len(q.local) == 0
	q.localMu.Unlock()

	q.cloudMu.Lock()
	cloudEmpty := len(q.cloud) == 0
	q.cloudMu.Unlock()

	return localEmpty && cloudEmpty
}

// HasItems reports whether either lane has at least one queued response.
func (q *ResponseQueue) HasItems() bool {
	return !q.IsEmpty()
}
