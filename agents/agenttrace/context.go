/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// ExecutionContext describes which evaluation a judge call belongs to.
type ExecutionContext struct {
	Metric    string `json:"metric,omitempty"`
	InputType string `json:"input_type,omitempty"`
	RunID     string `json:"run_id,omitempty"`
}

// EnrichAttributes appends the bounded fields to baseAttrs. RunID is left
// to traces, since it is unique per run.
func (e ExecutionContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+2)
	copy(attrs, baseAttrs)
	if e.Metric != "" {
		attrs = append(attrs, attribute.String("metric", e.Metric))
	}
	if e.InputType != "" {
		attrs = append(attrs, attribute.String("input_type", e.InputType))
	}
	return attrs
}

type contextKey struct{}

// WithExecutionContext attaches execCtx to ctx.
func WithExecutionContext(ctx context.Context, execCtx ExecutionContext) context.Context {
	return context.WithValue(ctx, contextKey{}, execCtx)
}

// GetExecutionContext returns the attached context, or the zero value.
func GetExecutionContext(ctx context.Context) ExecutionContext {
	execCtx, _ := ctx.Value(contextKey{}).(ExecutionContext)
	return execCtx
}

// Enricher is a metrics.AttributeEnricher backed by the execution context.
func Enricher(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	return GetExecutionContext(ctx).EnrichAttributes(baseAttrs)
}
