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

package memtransport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-edge/httpcore/transport"
)

func TestSubmitAndReceive(t *testing.T) {
	s := New("local", transport.LocalServer)
	id := s.Submit("GET", "/ping", "", "")
	assert.NotEmpty(t, id)

	req, ok := s.ReceiveMessage()
	require.True(t, ok)
	assert.Equal(t, "GET", req.Method())
	assert.Equal(t, "/ping", req.Path())
	assert.Equal(t, id, req.RequestID())
	assert.Equal(t, transport.LocalServer, req.Source())

	_, ok = s.ReceiveMessage()
	assert.False(t, ok)
}

func TestSendMessageRecordsAndFailsAfterStop(t *testing.T) {
	s := New("cloud", transport.CloudServer)
	require.True(t, s.Start(0))

	ok := s.SendMessage("req-1", "HTTP/1.1 200 OK\r\n\r\n")
	assert.True(t, ok)

	sent := s.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "req-1", sent[0].RequestID)

	s.Stop()
	assert.False(t, s.SendMessage("req-2", "..."))
}

func TestReceiveFIFO(t *testing.T) {
	s := New("local", transport.LocalServer)
	s.Submit("GET", "/a", "", "first")
	s.Submit("GET", "/b", "", "second")

	req, ok := s.ReceiveMessage()
	require.True(t, ok)
	assert.Equal(t, "first", req.RequestID())

	req, ok = s.ReceiveMessage()
	require.True(t, ok)
	assert.Equal(t, "second", req.RequestID())
}
