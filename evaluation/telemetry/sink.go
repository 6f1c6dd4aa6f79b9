/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package telemetry records evaluator calls as spans. Recording is a side
// channel: it never changes a result, and a failing sink is ignored.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span is one open telemetry record.
type Span interface {
	SetAttribute(key string, value any)
	SetStatus(ok bool, message string)
	End()
}

// Sink opens spans.
type Sink interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Noop returns a sink that records nothing.
func Noop() Sink {
	return noopSink{}
}

type noopSink struct{}

func (noopSink) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) SetAttribute(string, any) {}
func (noopSpan) SetStatus(bool, string)   {}
func (noopSpan) End()                     {}

// TracerName is the instrumentation scope of OpenTelemetry spans.
const TracerName = "listify.evaluation"

// OpenTelemetry returns a sink backed by tp. A nil tp means the global
// tracer provider.
func OpenTelemetry(tp trace.TracerProvider) Sink {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return otelSink{tracer: tp.Tracer(TracerName, trace.WithInstrumentationVersion("1.0.0"))}
}

type otelSink struct {
	tracer trace.Tracer
}

func (s otelSink) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := s.tracer.Start(ctx, name)
	return ctx, otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s otelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func (s otelSpan) SetStatus(ok bool, message string) {
	if ok {
		s.span.SetStatus(codes.Ok, message)
		return
	}
	s.span.SetStatus(codes.Error, message)
}

func (s otelSpan) End() {
	s.span.End()
}

// toAttribute converts value to the closest attribute type. Values with no
// attribute type are recorded as JSON text.
func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	}
	b, err := json.Marshal(value)
	if err != nil {
		return attribute.String(key, fmt.Sprint(value))
	}
	return attribute.String(key, string(b))
}
