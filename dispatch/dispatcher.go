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
	"sort"
	"time"

	"github.com/kestrel-edge/httpcore/trie"
)

// Methods lists the HTTP verbs the dispatcher keeps a separate route table
// for.
var Methods = [...]string{
	"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD", "TRACE", "CONNECT",
}

// metricsRecorder is the subset of metrics.Recorder the dispatcher calls,
// kept as a local interface so dispatch doesn't need metrics.Recorder's
// concrete Prometheus types in its own signature.
type metricsRecorder interface {
	Observe(method, pattern string, statusCode int, duration time.Duration)
}

// spanStarter is the subset of tracing.Tracer the dispatcher calls. Handlers
// in this module never receive a context themselves, so StartSpan only
// needs to hand back the closer, not a derived context.
type spanStarter interface {
	StartSpan(ctx context.Context, pattern string) func(statusCode int)
}

// Dispatcher owns the trie and the per-method route tables, and implements
// the match → invoke → envelope-conversion algorithm. The zero value is not
// usable; use New.
type Dispatcher struct {
	trie    *trie.Trie
	routes  map[string]map[string]HandlerAdapter // method -> pattern -> adapter
	logger  *slog.Logger
	metrics metricsRecorder
	tracer  spanStarter
}

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithLogger overrides the default slog.Default() logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithMetrics attaches a metrics.Recorder-shaped collaborator.
func WithMetrics(recorder metricsRecorder) Option {
	return func(d *Dispatcher) { d.metrics = recorder }
}

// WithTracer attaches a tracing.Tracer-shaped collaborator.
func WithTracer(tracer spanStarter) Option {
	return func(d *Dispatcher) { d.tracer = tracer }
}

// New returns an empty Dispatcher. Register routes onto it with Register
// before serving any requests.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		trie:   trie.New(),
		routes: make(map[string]map[string]HandlerAdapter, len(Methods)),
		logger: slog.Default(),
	}
	for _, m := range Methods {
		d.routes[m] = make(map[string]HandlerAdapter)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) addPattern(pattern string) error {
	return d.trie.Insert(pattern)
}

func (d *Dispatcher) register(method, pattern string, adapter HandlerAdapter) error {
	table, ok := d.routes[method]
	if !ok {
		return fmt.Errorf("dispatch: unsupported method %q", method)
	}
	if _, exists := table[pattern]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, pattern)
	}
	table[pattern] = adapter
	return nil
}

// Routes returns every registered (method, pattern) pair, sorted for
// deterministic diagnostics output.
func (d *Dispatcher) Routes() []string {
	var routes []string
	for method, table := range d.routes {
		for pattern := range table {
			routes = append(routes, method+" "+pattern)
		}
	}
	sort.Strings(routes)
	return routes
}

// MethodsFor returns every method with a handler registered for pattern,
// sorted. Used by the 405-vs-404 decision in Dispatch and exposed for
// diagnostics.
func (d *Dispatcher) MethodsFor(pattern string) []string {
	var methods []string
	for method, table := range d.routes {
		if _, ok := table[pattern]; ok {
			methods = append(methods, method)
		}
	}
	sort.Strings(methods)
	return methods
}
