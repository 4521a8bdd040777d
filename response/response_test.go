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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/status"
	"github.com/kestrel-edge/httpcore/transport"
)

func TestFactoriesSetStatus(t *testing.T) {
	assert.Equal(t, status.Ok, Ok("hi").Status())
	assert.Equal(t, status.Created, Created("hi").Status())
	assert.Equal(t, status.NotFound, NotFound("hi").Status())
	assert.Equal(t, status.InternalServerError, InternalServerError("hi").Status())
	assert.Equal(t, status.NoContent, NoContent().Status())
}

func TestWithHeaderDoesNotMutateOriginal(t *testing.T) {
	base := Ok("hi")
	withHeader := base.WithHeader("X-Test", "1")

	assert.Nil(t, base.Headers())
	assert.Equal(t, "1", withHeader.Headers()["X-Test"])
}

func TestWithHeadersMerges(t *testing.T) {
	r := Ok("hi").WithHeader("A", "1").WithHeaders(map[string]string{"B": "2", "A": "3"})
	assert.Equal(t, map[string]string{"A": "3", "B": "2"}, r.Headers())
}

func TestWithBodyReplacesValue(t *testing.T) {
	r := Ok(1).WithBody(2)
	assert.Equal(t, 2, r.Body())
}

func TestToWireResponse(t *testing.T) {
	r := Created("Alice").WithHeader("Location", "/api/users/1")
	ser := codec.PrimitiveSerializer[string]()

	wire, err := ToWireResponse(r, ser, "req-1", transport.LocalServer)
	require.NoError(t, err)

	assert.Equal(t, uint(201), wire.StatusCode)
	assert.Equal(t, "Created", wire.StatusMessage)
	assert.Equal(t, "Alice", wire.Body)
	assert.Equal(t, "/api/users/1", wire.Headers["Location"])
	assert.Equal(t, "req-1", wire.RequestID)
	assert.Equal(t, transport.LocalServer, wire.Source)
}

func TestCreateOkResponse(t *testing.T) {
	wire, err := CreateOkResponse(42, codec.PrimitiveSerializer[int](), "req-2", transport.CloudServer)
	require.NoError(t, err)

	assert.Equal(t, uint(200), wire.StatusCode)
	assert.Equal(t, "42", wire.Body)
	assert.Equal(t, "application/json", wire.Headers["Content-Type"])
	assert.Equal(t, transport.CloudServer, wire.Source)
}
