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

package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpanRecordsPatternAndStatus(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tr := New(provider.Tracer("test"), "kestreld", "0.1.0")

	end := tr.StartSpan(context.Background(), "/api/user/{userId}")
	end(200)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "/api/user/{userId}", spans[0].Name())
}

func TestStartSpanUnmatchedPattern(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tr := New(provider.Tracer("test"), "kestreld", "0.1.0")

	end := tr.StartSpan(context.Background(), "")
	end(404)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "<unmatched>", spans[0].Name())
}
