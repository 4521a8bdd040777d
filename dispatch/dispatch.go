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

package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/response"
	"github.com/kestrel-edge/httpcore/status"
	"github.com/kestrel-edge/httpcore/transport"
)

// errorBody is the shape of every JSON error document this module ever
// produces.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var errorSerializer = codec.NewJSON[errorBody]()

// Dispatch runs trie lookup, method-table lookup, handler invocation, and
// uncaught-failure recovery, in that order. It never
// panics back to the caller — a handler panic is recovered and converted
// into an InternalServerError wire response, same as a returned error.
func (d *Dispatcher) Dispatch(request transport.Request) transport.WireResponse {
	start := time.Now()

	var endSpan func(statusCode int)
	if d.tracer != nil {
		endSpan = d.tracer.StartSpan(context.Background(), d.trie.Search(request.Path()).Pattern)
	}

	wire := d.dispatchMatched(request)

	if endSpan != nil {
		endSpan(int(wire.StatusCode))
	}
	if d.metrics != nil {
		d.metrics.Observe(request.Method(), wire.pattern, int(wire.StatusCode), time.Since(start))
	}

	wire.pattern = ""
	return wire.WireResponse
}

// wireResult carries the matched pattern alongside the wire response purely
// for the metrics label above; it's never exposed outside this package.
type wireResult struct {
	transport.WireResponse
	pattern string
}

func (d *Dispatcher) dispatchMatched(request transport.Request) wireResult {
	path := request.Path()
	match := d.trie.Search(path)

	if !match.Found {
		return wireResult{WireResponse: d.notFoundResponse(request, path), pattern: ""}
	}

	table := d.routes[request.Method()]
	adapter, ok := table[match.Pattern]
	if !ok {
		return wireResult{WireResponse: d.unservedMethodResponse(request, match.Pattern), pattern: match.Pattern}
	}

	wire := d.invoke(request, adapter, match.Variables)
	return wireResult{WireResponse: wire, pattern: match.Pattern}
}

func (d *Dispatcher) invoke(request transport.Request, adapter HandlerAdapter, vars map[string]string) (wire transport.WireResponse) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("recovered handler panic",
				slog.String("request_id", request.RequestID()),
				slog.Any("panic", r),
			)
			wire = d.errorResponse(request, status.InternalServerError, "Unknown exception occurred")
		}
	}()

	result, err := adapter.Invoke(request.RequestID(), request.Source(), request.Body(), vars)
	if err != nil {
		d.logger.Error("handler failure",
			slog.String("request_id", request.RequestID()),
			slog.String("path", request.Path()),
			slog.Any("error", err),
		)
		return d.errorResponse(request, status.InternalServerError, "Unknown exception occurred")
	}

	return d.stampRequestID(request, result)
}

func (d *Dispatcher) stampRequestID(request transport.Request, wire transport.WireResponse) transport.WireResponse {
	if wire.RequestID == "" && request.RequestID() != "" {
		wire.RequestID = request.RequestID()
	}
	return wire
}

func (d *Dispatcher) notFoundResponse(request transport.Request, path string) transport.WireResponse {
	body := errorBody{Error: "Not Found", Message: fmt.Sprintf("No pattern matched for URL: %s", path)}
	return d.envelopeToWire(request, response.NotFound(body))
}

func (d *Dispatcher) unservedMethodResponse(request transport.Request, pattern string) transport.WireResponse {
	if len(d.MethodsFor(pattern)) > 0 {
		body := errorBody{Error: "Method Not Allowed", Message: fmt.Sprintf("%s is not supported for %s", request.Method(), pattern)}
		return d.envelopeToWire(request, response.MethodNotAllowed(body))
	}

	body := errorBody{Error: "Not Found", Message: fmt.Sprintf("No pattern matched for URL: %s", request.Path())}
	return d.envelopeToWire(request, response.NotFound(body))
}

func (d *Dispatcher) errorResponse(request transport.Request, code status.Status, detail string) transport.WireResponse {
	body := errorBody{Error: status.ReasonPhrase(code), Message: detail}
	return d.envelopeToWire(request, response.New(code, body))
}

func (d *Dispatcher) envelopeToWire(request transport.Request, envelope response.Response[errorBody]) transport.WireResponse {
	wire, _ := response.ToWireResponse(envelope, errorSerializer, request.RequestID(), request.Source())
	return wire
}
