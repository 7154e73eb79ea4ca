// Copyright 2025 The Activeledger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing wraps span creation for the CLI. The default build uses
// a no-op tracer; building with -tags=otel and configuring OpenTelemetry
// environment variables exports spans via OTLP. Either way callers use
// the same API.
package tracing

import "context"

// Span is a single named, timed operation in a trace.
type Span interface {
	// SetAttribute attaches key-value metadata to the span.
	SetAttribute(key string, value interface{})
	// End marks the span as finished.
	End()
}

// Tracer creates spans for named operations.
type Tracer interface {
	// Start begins a span; the returned context carries it for downstream
	// calls and the span must be ended with End.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// noopSpan and noopTracer satisfy the interfaces without doing anything,
// so call sites need no conditionals.
type noopSpan struct{}

func (noopSpan) SetAttribute(string, interface{}) {}
func (noopSpan) End()                             {}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, noopSpan{}
}

var globalTracer Tracer = noopTracer{}

// SetTracer installs the global tracer. Passing nil restores the no-op
// tracer. Typically called once at startup by InitFromEnv.
func SetTracer(t Tracer) {
	if t == nil {
		globalTracer = noopTracer{}
		return
	}
	globalTracer = t
}

// Enabled reports whether a real (non-noop) tracer is installed.
func Enabled() bool {
	_, noop := globalTracer.(noopTracer)
	return !noop
}

// Run wraps fn in a span with the given name and attributes. With no real
// tracer installed, fn runs directly with zero overhead.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}
	ctx, span := globalTracer.Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	return fn(ctx)
}
