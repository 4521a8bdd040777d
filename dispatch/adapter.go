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

// Package dispatch owns the per-method route tables and the Dispatch
// algorithm: trie lookup, handler invocation, error-to-envelope conversion,
// and request-id stamping.
package dispatch

import (
	"github.com/kestrel-edge/httpcore/transport"
)

// HandlerAdapter is what Register closes a typed handler function into: a
// value that, given a raw body and the bound path variables, produces a
// WireResponse. One adapter per (method, pattern); adapters never mutate
// after registration.
type HandlerAdapter interface {
	Invoke(requestID string, source transport.Source, rawBody string, vars map[string]string) (transport.WireResponse, error)
}

// adapterFunc is the function-value flavor of HandlerAdapter, the shape
// Register actually builds and stores.
type adapterFunc func(requestID string, source transport.Source, rawBody string, vars map[string]string) (transport.WireResponse, error)

func (f adapterFunc) Invoke(requestID string, source transport.Source, rawBody string, vars map[string]string) (transport.WireResponse, error) {
	return f(requestID, source, rawBody, vars)
}
