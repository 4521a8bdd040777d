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

// Package tracing wraps an OpenTelemetry tracer around dispatch, the same
// way router/tracing.go wraps one around request serving — one span per
// matched pattern, standard http.* attributes, status set from the
// resulting wire response code.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts one span per dispatched request.
type Tracer struct {
	tracer         trace.Tracer
	serviceName    string
	serviceVersion string
}

// New wraps tracer for use by dispatch.Dispatcher. serviceName/serviceVersion
// are recorded as span attributes.
func New(tracer trace.Tracer, serviceName, serviceVersion string) *Tracer {
	return &Tracer{tracer: tracer, serviceName: serviceName, serviceVersion: serviceVersion}
}

// StartSpan starts a span named "<pattern>" and returns a closer that sets
// the final status and ends the span. pattern may be empty (no trie match);
// the span is still recorded so unmatched-route tracing is visible.
func (t *Tracer) StartSpan(ctx context.Context, pattern string) func(statusCode int) {
	spanName := pattern
	if spanName == "" {
		spanName = "<unmatched>"
	}

	_, span := t.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindServer))
	span.SetAttributes(
		attribute.String("http.route", pattern),
		attribute.String("service.name", t.serviceName),
		attribute.String("service.version", t.serviceVersion),
	)

	return func(statusCode int) {
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
		if statusCode >= 400 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
