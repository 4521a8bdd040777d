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

// Package memtransport is an in-process transport.Server: no sockets, no
// TLS, no tunneling. Transports are an external collaborator defined only
// by interface; this package gives that interface a runnable implementation
// to drive manager.RequestManager end to end, in tests and in cmd/kestreld.
package memtransport

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/kestrel-edge/httpcore/transport"
)

// Request is the transport.Request implementation memtransport produces;
// Submit builds one from its arguments.
type Request struct {
	method, path, body, id string
	source                 transport.Source
}

// NewRequest builds a Request for the given source. Its RequestID is empty;
// only Submit generates ids.
func NewRequest(method, path, body string, source transport.Source) Request {
	return Request{method: method, path: path, body: body, source: source}
}

func (r Request) Method() string           { return r.method }
func (r Request) Path() string             { return r.path }
func (r Request) Body() string             { return r.body }
func (r Request) RequestID() string        { return r.id }
func (r Request) Source() transport.Source { return r.source }

// Server is a transport.Server backed by a mutex-guarded slice. Submit pushes a request in
// from "outside" (simulating a client); SendMessage's effect is observed
// through Sent (simulating the client receiving a response).
type Server struct {
	id     string
	source transport.Source

	mu      sync.Mutex
	pending []transport.Request
	sent    []SentMessage

	nextID  atomic.Uint64
	started atomic.Bool
	stopped atomic.Bool
}

// SentMessage records one SendMessage call for later inspection by tests or
// by whatever actually owns the other end of this in-process channel.
type SentMessage struct {
	RequestID string
	WireText  string
}

// New builds a Server identified by id, tagging every Submitted request
// with source.
func New(id string, source transport.Source) *Server {
	return &Server{id: id, source: source}
}

// Start marks the transport as accepting traffic. port is unused (no real
// listener); returns true unless already stopped.
func (s *Server) Start(port int) bool {
	if s.stopped.Load() {
		return false
	}
	s.started.Store(true)
	return true
}

// Stop marks the transport as shut down. Idempotent.
func (s *Server) Stop() {
	s.stopped.Store(true)
}

// GetID returns the id this Server was constructed with.
func (s *Server) GetID() string { return s.id }

// Submit enqueues a request as if it had just arrived over this transport.
// If requestID is empty, one is generated. Returns the id used.
func (s *Server) Submit(method, path, body, requestID string) string {
	if requestID == "" {
		requestID = s.generateID()
	}

	req := Request{method: method, path: path, body: body, id: requestID, source: s.source}

	s.mu.Lock()
	s.pending = append(s.pending, req)
	s.mu.Unlock()

	return requestID
}

func (s *Server) generateID() string {
	n := s.nextID.Add(1)
	return s.id + "-" + strconv.FormatUint(n, 10)
}

// ReceiveMessage returns the oldest submitted request, or (nil, false) if
// none is pending. Never blocks.
func (s *Server) ReceiveMessage() (transport.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil, false
	}

	req := s.pending[0]
	s.pending = s.pending[1:]
	return req, true
}

// SendMessage records wireText against requestID and reports success.
// Returns false if the transport has been stopped.
func (s *Server) SendMessage(requestID, wireText string) bool {
	if s.stopped.Load() {
		return false
	}

	s.mu.Lock()
	s.sent = append(s.sent, SentMessage{RequestID: requestID, WireText: wireText})
	s.mu.Unlock()

	return true
}

// Sent returns every message handed to SendMessage so far, in order.
func (s *Server) Sent() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SentMessage, len(s.sent))
	copy(out, s.sent)
	return out
}
