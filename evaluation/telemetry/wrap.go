/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package telemetry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/chainguard-dev/clog"
)

// Attribute bounds.
const (
	PreviewLimit     = 200
	ExplanationLimit = 500
	DetailLimit      = 500
)

// SpanPrefix starts the name of every evaluator span.
const SpanPrefix = "listify-agent.evaluation."

type wrapConfig struct {
	model     string
	threshold float64
}

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

// WithModel records the judge model on each span.
func WithModel(model string) WrapOption {
	return func(c *wrapConfig) { c.model = model }
}

// WithThreshold records the pass mark on each span.
func WithThreshold(t float64) WrapOption {
	return func(c *wrapConfig) { c.threshold = t }
}

// Wrap returns an evaluator that records every call of inner on sink. The
// result of inner is returned unchanged.
func Wrap(inner evaluation.Evaluator, sink Sink, opts ...WrapOption) evaluation.Evaluator {
	cfg := wrapConfig{threshold: evaluation.DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &traced{inner: inner, sink: sink, cfg: cfg}
}

type traced struct {
	inner evaluation.Evaluator
	sink  Sink
	cfg   wrapConfig
}

func (t *traced) Metric() evaluation.Metric {
	return t.inner.Metric()
}

func (t *traced) Evaluate(ctx context.Context, in evaluation.Input) evaluation.Result {
	m := t.inner.Metric()
	ctx, span := Start(ctx, t.sink, SpanPrefix+string(m))
	defer span.End()

	span.SetAttribute("openinference.span.kind", "EVALUATOR")
	span.SetAttribute("evaluator.metric_name", string(m))
	span.SetAttribute("evaluator.input_type", string(in.Type))
	span.SetAttribute("evaluator.items_count", len(in.Items))
	span.SetAttribute("evaluator.input_preview", evaluation.Truncate(in.Source, PreviewLimit))
	if t.cfg.model != "" {
		span.SetAttribute("evaluator.model", t.cfg.model)
	}
	span.SetAttribute("evaluator.threshold", t.cfg.threshold)

	r := t.inner.Evaluate(ctx, in)

	span.SetAttribute("evaluator.score", r.Score)
	span.SetAttribute("evaluator.passed", r.Passed)
	span.SetAttribute("evaluator.confidence", r.Confidence)
	span.SetAttribute("evaluator.explanation", evaluation.Truncate(r.Explanation, ExplanationLimit))
	for key, value := range r.Details {
		span.SetAttribute("evaluator.details."+key, detailValue(value))
	}

	verb := "failed"
	if r.Passed {
		verb = "passed"
	}
	span.SetStatus(r.Passed, fmt.Sprintf("%s %s with score %.2f", m, verb, r.Score))
	return r
}

// detailValue keeps scalars and renders collections as bounded JSON text.
func detailValue(v any) any {
	switch v := v.(type) {
	case string:
		return evaluation.Truncate(v, DetailLimit)
	case bool, int, int64, float64:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return evaluation.Truncate(fmt.Sprint(v), DetailLimit)
	}
	return evaluation.Truncate(string(b), DetailLimit)
}

// Start opens a span on sink. A sink that panics is replaced by a no-op
// span, and the returned span never panics.
func Start(ctx context.Context, sink Sink, name string) (out context.Context, span Span) {
	defer func() {
		if r := recover(); r != nil {
			clog.FromContext(ctx).With("span", name).With("panic", r).Warn("Telemetry sink failed, continuing without span")
			out, span = ctx, noopSpan{}
		}
	}()
	spanCtx, s := sink.StartSpan(ctx, name)
	if s == nil {
		return ctx, noopSpan{}
	}
	if spanCtx == nil {
		spanCtx = ctx
	}
	return spanCtx, safeSpan{span: s}
}

// safeSpan drops panics from the wrapped span.
type safeSpan struct {
	span Span
}

func (s safeSpan) SetAttribute(key string, value any) {
	defer func() { _ = recover() }()
	s.span.SetAttribute(key, value)
}

func (s safeSpan) SetStatus(ok bool, message string) {
	defer func() { _ = recover() }()
	s.span.SetStatus(ok, message)
}

func (s safeSpan) End() {
	defer func() { _ = recover() }()
	s.span.End()
}
