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

// Package manager drives the cooperative receive/dispatch/send loop that
// ties the two transports to the dispatcher through the request and
// response queues.
package manager

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kestrel-edge/httpcore/dispatch"
	"github.com/kestrel-edge/httpcore/queue"
	"github.com/kestrel-edge/httpcore/transport"
)

// defaultTickInterval is the delay between ticks; overridable via
// WithTickInterval.
const defaultTickInterval = time.Second

// RequestManager owns the primary (local) and optional secondary (cloud)
// transports, the request/response queues, and the dispatcher, and drives
// the per-tick loop across all of them.
type RequestManager struct {
	primary   transport.Server
	secondary transport.Server

	requests  *queue.RequestQueue
	responses *queue.ResponseQueue
	dispatcher *dispatch.Dispatcher

	logger       *slog.Logger
	tickInterval time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
}

// Option configures a RequestManager at construction time.
type Option func(*RequestManager)

// WithLogger overrides the default slog.Default() logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *RequestManager) { m.logger = logger }
}

// WithTickInterval overrides the default 1-second cooperative delay between
// ticks.
func WithTickInterval(d time.Duration) Option {
	return func(m *RequestManager) { m.tickInterval = d }
}

// New builds a RequestManager. secondary may be nil if only the local
// transport is present.
func New(primary, secondary transport.Server, dispatcher *dispatch.Dispatcher, opts ...Option) *RequestManager {
	m := &RequestManager{
		primary:      primary,
		secondary:    secondary,
		requests:     queue.NewRequestQueue(),
		responses:    queue.NewResponseQueue(),
		dispatcher:   dispatcher,
		logger:       slog.Default(),
		tickInterval: defaultTickInterval,
		stopCh:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartServer starts the primary transport and, if present, the secondary.
// Returns true iff the primary started.
func (m *RequestManager) StartServer(port int) bool {
	ok := m.primary.Start(port)
	if m.secondary != nil {
		if !m.secondary.Start(port) {
			m.logger.Warn("secondary transport failed to start", slog.String("transport_id", m.secondary.GetID()))
		}
	}
	return ok
}

// StopServer stops both transports and the run loop. Idempotent.
func (m *RequestManager) StopServer() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		m.primary.Stop()
		if m.secondary != nil {
			m.secondary.Stop()
		}
	})
}

// Run drives ticks until ctx is canceled or StopServer is called.
func (m *RequestManager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// tick performs one iteration of receive → enqueue → dispatch → enqueue
// response → send, across both transports.
func (m *RequestManager) tick(ctx context.Context) {
	m.receiveAll(ctx)
	m.drainRequests()
	m.drainResponses()
}

// receiveAll polls both transports for a pending request concurrently,
// submitting both Receive operations in the same tick rather than
// serializing them.
func (m *RequestManager) receiveAll(ctx context.Context) {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		m.receiveFrom(m.primary)
		return nil
	})

	if m.secondary != nil {
		g.Go(func() error {
			m.receiveFrom(m.secondary)
			return nil
		})
	}

	_ = g.Wait() // receiveFrom never returns an error; Wait only blocks for completion.
}

func (m *RequestManager) receiveFrom(srv transport.Server) {
	req, ok := srv.ReceiveMessage()
	if !ok {
		return
	}
	m.requests.Enqueue(req)
}

// drainRequests dispatches queued requests until the queue is empty. New
// requests enqueued mid-drain (there are none in this single-consumer
// design) would be dispatched by this same loop.
func (m *RequestManager) drainRequests() {
	for {
		req, ok := m.requests.Dequeue()
		if !ok {
			return
		}
		wire := m.dispatcher.Dispatch(req)
		m.responses.Enqueue(wire)
	}
}

// drainResponses pops every queued response off both lanes and sends each
// over the transport that owns its lane: local lane → primary, cloud lane
// → secondary.
func (m *RequestManager) drainResponses() {
	for {
		resp, ok := m.responses.DequeueLocalResponse()
		if !ok {
			break
		}
		m.send(m.primary, resp)
	}

	if m.secondary == nil {
		return
	}

	for {
		resp, ok := m.responses.DequeueCloudResponse()
		if !ok {
			break
		}
		m.send(m.secondary, resp)
	}
}

func (m *RequestManager) send(srv transport.Server, resp transport.WireResponse) {
	if resp.RequestID == "" {
		m.logger.Warn("discarding response with empty request id", slog.String("transport_id", srv.GetID()))
		return
	}

	if !srv.SendMessage(resp.RequestID, resp.ToHTTPString()) {
		m.logger.Error("transport failure sending response",
			slog.String("transport_id", srv.GetID()),
			slog.String("request_id", resp.RequestID),
		)
	}
}
