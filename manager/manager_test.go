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

package manager

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/convert"
	"github.com/kestrel-edge/httpcore/dispatch"
	"github.com/kestrel-edge/httpcore/response"
	"github.com/kestrel-edge/httpcore/transport"
)

type fakeRequest struct {
	method, path, body, id string
	source                 transport.Source
}

func (r fakeRequest) Method() string           { return r.method }
func (r fakeRequest) Path() string             { return r.path }
func (r fakeRequest) Body() string             { return r.body }
func (r fakeRequest) RequestID() string        { return r.id }
func (r fakeRequest) Source() transport.Source { return r.source }

// fakeServer is a minimal transport.Server: a FIFO of pending requests, a log of
// sent (requestID, wireText) pairs, and start/stop bookkeeping.
type fakeServer struct {
	mu      sync.Mutex
	id      string
	pending []transport.Request
	sent    []sentMessage
	started bool
	stopped bool
}

type sentMessage struct {
	requestID, wireText string
}

func newFakeServer(id string) *fakeServer {
	return &fakeServer{id: id}
}

func (s *fakeServer) Start(port int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	return true
}

func (s *fakeServer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

func (s *fakeServer) ReceiveMessage() (transport.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil, false
	}
	req := s.pending[0]
	s.pending = s.pending[1:]
	return req, true
}

func (s *fakeServer) SendMessage(requestID, wireText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMessage{requestID, wireText})
	return true
}

func (s *fakeServer) GetID() string { return s.id }

func (s *fakeServer) enqueue(req transport.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, req)
}

func (s *fakeServer) sentMessages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sentMessage, len(s.sent))
	copy(out, s.sent)
	return out
}

func newTestDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	d := dispatch.New()
	err := dispatch.Register(d, "GET", "/ping",
		func(body codec.Unit, vars *convert.Vars) (response.Response[codec.Unit], error) {
			return response.OkEmpty(), nil
		},
		codec.UnitSerializer(), codec.UnitSerializer(),
	)
	require.NoError(t, err)
	return d
}

func TestStartServerReturnsPrimaryResult(t *testing.T) {
	primary := newFakeServer("local")
	secondary := newFakeServer("cloud")
	m := New(primary, secondary, newTestDispatcher(t))

	ok := m.StartServer(8080)
	assert.True(t, ok)
	assert.True(t, primary.started)
	assert.True(t, secondary.started)
}

func TestStopServerIdempotent(t *testing.T) {
	primary := newFakeServer("local")
	m := New(primary, nil, newTestDispatcher(t))

	m.StopServer()
	m.StopServer()

	assert.True(t, primary.stopped)
}

func TestTickDispatchesAndSendsOnOwningTransport(t *testing.T) {
	primary := newFakeServer("local")
	secondary := newFakeServer("cloud")
	m := New(primary, secondary, newTestDispatcher(t))

	primary.enqueue(fakeRequest{method: "GET", path: "/ping", id: "req-1", source: transport.LocalServer})

	m.tick(context.Background())

	sent := primary.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "req-1", sent[0].requestID)
	assert.Contains(t, sent[0].wireText, "200 OK")
	assert.Empty(t, secondary.sentMessages())
}

func TestTickRoutesCloudResponseToSecondary(t *testing.T) {
	primary := newFakeServer("local")
	secondary := newFakeServer("cloud")
	m := New(primary, secondary, newTestDispatcher(t))

	secondary.enqueue(fakeRequest{method: "GET", path: "/ping", id: "req-2", source: transport.CloudServer})

	m.tick(context.Background())

	assert.Empty(t, primary.sentMessages())
	sent := secondary.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "req-2", sent[0].requestID)
}

func TestRunStopsOnStopServer(t *testing.T) {
	primary := newFakeServer("local")
	m := New(primary, nil, newTestDispatcher(t), WithTickInterval(time.Millisecond))

	done := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(done)
	}()

	m.StopServer()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after StopServer")
	}
}
