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

// Package response is the handler-facing envelope: a value triple of
// status, headers, and a typed body. Handlers build and return a
// Response[T]; the dispatcher is the only thing that turns one into a
// transport.WireResponse, via ToWireResponse, once it has the Serializer[T]
// the handler was registered with.
//
// Response is a plain value, never a pointer, so there is no aliasing
// hazard between a handler's local copy and whatever the dispatcher does
// with the one it returned.
package response

import "github.com/kestrel-edge/httpcore/status"

// Response is a status/headers/body triple returned by a handler. The zero
// value has status 0 and a nil header map; use one of the factories below
// instead of constructing it directly.
type Response[T any] struct {
	status  status.Status
	headers map[string]string
	body    T
}

// New builds a Response with the given status code and body and no headers.
func New[T any](code status.Status, body T) Response[T] {
	return Response[T]{status: code, body: body}
}

// Status returns the envelope's status.
func (r Response[T]) Status() status.Status { return r.status }

// Headers returns the envelope's header map. Callers must not mutate the
// returned map; use WithHeader/WithHeaders to change it.
func (r Response[T]) Headers() map[string]string { return r.headers }

// Body returns the envelope's body value.
func (r Response[T]) Body() T { return r.body }

// WithStatus returns a copy of r with its status replaced.
func (r Response[T]) WithStatus(code status.Status) Response[T] {
	r.status = code
	return r
}

// WithBody returns a copy of r with its body replaced.
func (r Response[T]) WithBody(body T) Response[T] {
	r.body = body
	return r
}

// WithHeader returns a copy of r with header name set to value, replacing
// any existing value for name.
func (r Response[T]) WithHeader(name, value string) Response[T] {
	r.headers = cloneHeaders(r.headers)
	r.headers[name] = value
	return r
}

// WithHeaders returns a copy of r with every entry of headers merged in,
// replacing any existing values for the same names.
func (r Response[T]) WithHeaders(headers map[string]string) Response[T] {
	r.headers = cloneHeaders(r.headers)
	for name, value := range headers {
		r.headers[name] = value
	}
	return r
}

func cloneHeaders(headers map[string]string) map[string]string {
	clone := make(map[string]string, len(headers)+1)
	for name, value := range headers {
		clone[name] = value
	}
	return clone
}
