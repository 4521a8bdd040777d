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

package response

import (
	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/status"
	"github.com/kestrel-edge/httpcore/transport"
)

// ToWireResponse converts r into the wire artifact for the given requestID
// and source, serializing the body through ser. The dispatcher is the only
// caller that needs this: it's the one place that has both a handler's
// Response[T] and the Serializer[T] it was registered with.
func ToWireResponse[T any](r Response[T], ser codec.Serializer[T], requestID string, source transport.Source) (transport.WireResponse, error) {
	body, err := ser.Serialize(r.body)
	if err != nil {
		return transport.WireResponse{}, err
	}

	return transport.WireResponse{
		RequestID:     requestID,
		Source:        source,
		StatusCode:    uint(r.status.Int()),
		StatusMessage: status.ReasonPhrase(r.status),
		Headers:       cloneHeaders(r.headers),
		Body:          body,
	}, nil
}

// CreateOkResponse assembles a 200 OK wire response directly from a value,
// serialized through ser, with a default Content-Type: application/json
// header. This is the convenience path spec'd for handlers that don't need
// to build a full Response[T] just to return a 200.
func CreateOkResponse[T any](value T, ser codec.Serializer[T], requestID string, source transport.Source) (transport.WireResponse, error) {
	wire, err := ToWireResponse(Ok(value).WithHeader("Content-Type", "application/json"), ser, requestID, source)
	if err != nil {
		return transport.WireResponse{}, err
	}
	return wire, nil
}
