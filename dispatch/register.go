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
	"fmt"

	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/convert"
	"github.com/kestrel-edge/httpcore/response"
	"github.com/kestrel-edge/httpcore/transport"
)

// Handler is the shape a registered endpoint implements: given the decoded
// request body and the bound path variables, produce a response envelope or
// fail. This is the generic analogue of the source's compile-time-typed
// handler signature — TBody/TResp are fixed at registration time, so there
// is never a runtime type switch over a handler's own body or response type.
type Handler[TBody, TResp any] func(body TBody, vars *convert.Vars) (response.Response[TResp], error)

// Register binds handler to (method, pattern) on d, closing over bodySer
// and respSer so Dispatch never needs to know TBody/TResp. Returns
// ErrDuplicateRoute if (method, pattern) is already registered, and
// trie.ErrInvalidPattern (wrapped) if pattern itself is malformed.
func Register[TBody, TResp any](
	d *Dispatcher,
	method, pattern string,
	handler Handler[TBody, TResp],
	bodySer codec.Serializer[TBody],
	respSer codec.Serializer[TResp],
) error {
	if err := d.addPattern(pattern); err != nil {
		return err
	}

	adapter := adapterFunc(func(requestID string, source transport.Source, rawBody string, vars map[string]string) (transport.WireResponse, error) {
		body, err := bodySer.Deserialize(rawBody)
		if err != nil {
			return transport.WireResponse{}, fmt.Errorf("%w: decoding request body: %w", ErrHandlerFailure, err)
		}

		resp, err := handler(body, convert.NewVars(vars))
		if err != nil {
			return transport.WireResponse{}, fmt.Errorf("%w: %w", ErrHandlerFailure, err)
		}

		wire, err := response.ToWireResponse(resp, respSer, requestID, source)
		if err != nil {
			return transport.WireResponse{}, fmt.Errorf("%w: encoding response body: %w", ErrHandlerFailure, err)
		}

		return wire, nil
	})

	return d.register(method, pattern, adapter)
}
