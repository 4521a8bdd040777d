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

// Package transport declares the external collaborators this module treats
// as boundaries rather than implementation: the dual Server transports (one
// local, one cloud), the Request they hand the core, the ThreadPool used to
// poll them concurrently, and the WireResponse the core hands back. Nothing
// in this package reads bytes off a socket — see memtransport for a runnable
// Server, and bring your own for a real LAN/tunnel transport.
package transport

import (
	"fmt"
	"strings"
)

// Source tags which transport a Request arrived on, and therefore which
// transport its Response must be routed back to.
type Source int

const (
	// LocalServer is the on-device/LAN transport.
	LocalServer Source = iota
	// CloudServer is the remote-tunnel transport.
	CloudServer
)

// String renders the Source for logs and the wire response.
func (s Source) String() string {
	switch s {
	case LocalServer:
		return "LocalServer"
	case CloudServer:
		return "CloudServer"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Request is what a transport hands the core for each inbound message. The
// core only ever reads these five fields.
type Request interface {
	Method() string
	Path() string
	Body() string
	RequestID() string
	Source() Source
}

// Server is a transport collaborator: something that can be started,
// stopped, polled for a pending Request, and handed wire text to send back
// for a given request id. Receive is expected to be non-blocking or
// briefly-blocking; a Server that wants to time out a long poll is
// responsible for that itself — the core has no cancellation story for it.
type Server interface {
	// Start begins listening/accepting on port. Returns false on failure.
	Start(port int) bool
	// Stop shuts the transport down. Must be idempotent.
	Stop()
	// ReceiveMessage returns the next pending Request, or (nil, false) if
	// none is currently available.
	ReceiveMessage() (Request, bool)
	// SendMessage delivers wire text for requestID. Returns false on
	// failure; the core treats that as a TransportFailure and continues.
	SendMessage(requestID, wireText string) bool
	// GetID identifies this transport instance (used in logs/metrics).
	GetID() string
}

// ThreadPool submits a task for execution on some worker. The reference
// RequestManager uses golang.org/x/sync/errgroup for its fixed, per-tick
// fan-out instead of a standing pool, but a long-lived ThreadPool
// implementation (e.g. backing dispatch invocation) can still satisfy this
// contract.
type ThreadPool interface {
	Submit(task func())
}

// WireResponse is the serialized artifact handed to a transport's
// SendMessage. Source always equals the Source of the originating request;
// RequestID is empty only if it was unknown at dispatch time.
type WireResponse struct {
	RequestID     string
	Source        Source
	StatusCode    uint
	StatusMessage string
	Headers       map[string]string
	Body          string
}

// ToHTTPString renders w as an HTTP/1.1 response: status line, headers,
// blank line, body. This module never opens a socket itself; this exists so
// a Server implementation (including memtransport) has a ready-made framing
// to hand to whatever actually writes bytes out.
func (w WireResponse) ToHTTPString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", w.StatusCode, w.StatusMessage)
	for name, value := range w.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", name, value)
	}
	b.WriteString("\r\n")
	b.WriteString(w.Body)

	return b.String()
}
