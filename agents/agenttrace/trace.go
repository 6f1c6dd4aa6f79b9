/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package agenttrace wraps each model call in an OpenTelemetry span carrying
// the prompt, the model, token usage and the outcome.
package agenttrace

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of model call spans.
const TracerName = "listify.agents.agenttrace"

// maxPromptAttr bounds the prompt copied onto the span.
const maxPromptAttr = 4096

// Trace is one in-flight model call.
type Trace struct {
	ctx  context.Context
	span oteltrace.Span

	mu           sync.Mutex
	start, end   time.Time
	inputTokens  int64
	outputTokens int64
}

// StartTrace opens a span for a call to model through provider. The returned
// trace's Context carries the span.
func StartTrace(ctx context.Context, provider, model, prompt string) *Trace {
	tr := otel.Tracer(TracerName, oteltrace.WithInstrumentationVersion("1.0.0"))

	attrs := []attribute.KeyValue{
		attribute.String("agent.provider", provider),
		attribute.String("model", model),
		attribute.String("agent.prompt", truncate(prompt, maxPromptAttr)),
	}
	execCtx := GetExecutionContext(ctx)
	if execCtx.Metric != "" {
		attrs = append(attrs, attribute.String("evaluation.metric", execCtx.Metric))
	}
	if execCtx.RunID != "" {
		attrs = append(attrs, attribute.String("evaluation.run_id", execCtx.RunID))
	}

	ctx, span := tr.Start(ctx, "agent.execution", oteltrace.WithAttributes(attrs...))
	return &Trace{ctx: ctx, span: span, start: time.Now()}
}

// Context returns the context carrying the call span.
func (t *Trace) Context() context.Context {
	return t.ctx
}

// RecordTokenUsage adds token counts to the span.
func (t *Trace) RecordTokenUsage(inputTokens, outputTokens int64) {
	t.mu.Lock()
	t.inputTokens += inputTokens
	t.outputTokens += outputTokens
	in, out := t.inputTokens, t.outputTokens
	t.mu.Unlock()

	t.span.SetAttributes(
		attribute.Int64("tokens.input", in),
		attribute.Int64("tokens.output", out),
		attribute.Int64("tokens.total", in+out),
	)
}

// Complete records the outcome and ends the span.
func (t *Trace) Complete(err error) {
	t.mu.Lock()
	t.end = time.Now()
	t.mu.Unlock()

	if err != nil {
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, err.Error())
	} else {
		t.span.SetStatus(codes.Ok, "")
	}
	t.span.End()
}

// Duration is the elapsed call time so far, or in total once complete.
func (t *Trace) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.end.IsZero() {
		return time.Since(t.start)
	}
	return t.end.Sub(t.start)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
