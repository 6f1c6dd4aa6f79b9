/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package telemetry

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/items"
)

// recordingSink keeps every span it opens.
type recordingSink struct {
	mu    sync.Mutex
	spans []*recordingSpan
}

type recordingSpan struct {
	name    string
	attrs   map[string]any
	ok      bool
	message string
	ended   int
}

func (s *recordingSink) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	s.mu.Lock()
	defer s.mu.Unlock()
	span := &recordingSpan{name: name, attrs: map[string]any{}}
	s.spans = append(s.spans, span)
	return ctx, span
}

func (s *recordingSpan) SetAttribute(key string, value any) { s.attrs[key] = value }
func (s *recordingSpan) SetStatus(ok bool, message string)  { s.ok, s.message = ok, message }
func (s *recordingSpan) End()                               { s.ended++ }

type panicSink struct{}

func (panicSink) StartSpan(context.Context, string) (context.Context, Span) {
	panic("collector unreachable")
}

type panicSpanSink struct{}

func (panicSpanSink) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, panicSpan{}
}

type panicSpan struct{}

func (panicSpan) SetAttribute(string, any) { panic("attribute") }
func (panicSpan) SetStatus(bool, string)   { panic("status") }
func (panicSpan) End()                     { panic("end") }

func fixedEvaluator(r evaluation.Result) evaluation.Evaluator {
	return evaluation.Func(evaluation.ContentQuality, func(context.Context, evaluation.Input) evaluation.Result {
		return r
	})
}

func sampleInput() evaluation.Input {
	return evaluation.Input{
		Source: strings.Repeat("x", 300),
		Type:   evaluation.InputImage,
		Items:  []items.Item{items.New("Buy milk", items.Groceries)},
	}
}

func TestWrapRecordsSpan(t *testing.T) {
	want := evaluation.NewResult(0.82, 0.8, 0.7, "useful items", evaluation.Details{
		"relevance_score": 0.9,
		"strengths":       []string{"clear names"},
		"long":            strings.Repeat("y", 900),
	})
	sink := &recordingSink{}

	got := Wrap(fixedEvaluator(want), sink, WithModel("gpt-4o"), WithThreshold(0.7)).
		Evaluate(context.Background(), sampleInput())

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate() changed the result (-want +got):\n%s", diff)
	}
	if len(sink.spans) != 1 {
		t.Fatalf("spans = %d, wanted = 1", len(sink.spans))
	}
	span := sink.spans[0]
	if span.name != "listify-agent.evaluation.content_quality" {
		t.Errorf("name = %q, wanted = %q", span.name, "listify-agent.evaluation.content_quality")
	}
	if span.ended != 1 {
		t.Errorf("ended = %d, wanted = 1", span.ended)
	}
	if !span.ok || span.message != "content_quality passed with score 0.82" {
		t.Errorf("status = (%v, %q), wanted = (true, %q)", span.ok, span.message, "content_quality passed with score 0.82")
	}

	for key, want := range map[string]any{
		"openinference.span.kind":           "EVALUATOR",
		"evaluator.metric_name":             "content_quality",
		"evaluator.input_type":              "image",
		"evaluator.items_count":             1,
		"evaluator.model":                   "gpt-4o",
		"evaluator.threshold":               0.7,
		"evaluator.score":                   0.82,
		"evaluator.passed":                  true,
		"evaluator.confidence":              0.8,
		"evaluator.explanation":             "useful items",
		"evaluator.details.relevance_score": 0.9,
		"evaluator.details.strengths":       `["clear names"]`,
	} {
		if got := span.attrs[key]; got != want {
			t.Errorf("%s = %v, wanted = %v", key, got, want)
		}
	}
	if got := span.attrs["evaluator.input_preview"].(string); len(got) != PreviewLimit {
		t.Errorf("len(input_preview) = %d, wanted = %d", len(got), PreviewLimit)
	}
	if got := span.attrs["evaluator.details.long"].(string); len(got) != DetailLimit {
		t.Errorf("len(details.long) = %d, wanted = %d", len(got), DetailLimit)
	}
}

func TestWrapFailedStatus(t *testing.T) {
	sink := &recordingSink{}
	Wrap(fixedEvaluator(evaluation.NewResult(0.3, 0.5, 0.7, "weak", nil)), sink).
		Evaluate(context.Background(), sampleInput())

	span := sink.spans[0]
	if span.ok {
		t.Error("status ok = true, wanted false")
	}
	if want := "content_quality failed with score 0.30"; span.message != want {
		t.Errorf("message = %q, wanted = %q", span.message, want)
	}
}

func TestWrapEndsSpanOnPanic(t *testing.T) {
	sink := &recordingSink{}
	e := Wrap(evaluation.Func(evaluation.ExtractionAccuracy, func(context.Context, evaluation.Input) evaluation.Result {
		panic("boom")
	}), sink)

	func() {
		defer func() { _ = recover() }()
		e.Evaluate(context.Background(), sampleInput())
	}()
	if got := sink.spans[0].ended; got != 1 {
		t.Errorf("ended = %d, wanted = 1", got)
	}
}

func TestWrapSurvivesBrokenSinks(t *testing.T) {
	want := evaluation.NewResult(0.9, 0.9, 0.7, "fine", nil)
	for name, sink := range map[string]Sink{
		"start panics": panicSink{},
		"span panics":  panicSpanSink{},
		"noop":         Noop(),
	} {
		t.Run(name, func(t *testing.T) {
			got := Wrap(fixedEvaluator(want), sink).Evaluate(context.Background(), sampleInput())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpenTelemetrySink(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	Wrap(fixedEvaluator(evaluation.NewResult(0.2, 0.4, 0.7, "poor", evaluation.Details{
		"all_passed": false,
	})), OpenTelemetry(tp)).Evaluate(context.Background(), sampleInput())

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, wanted = 1", len(spans))
	}
	span := spans[0]
	if span.Status().Code != codes.Error {
		t.Errorf("status = %v, wanted = %v", span.Status().Code, codes.Error)
	}

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["evaluator.score"].AsFloat64(); got != 0.2 {
		t.Errorf("evaluator.score = %v, wanted = 0.2", got)
	}
	if got := attrs["evaluator.items_count"].AsInt64(); got != 1 {
		t.Errorf("evaluator.items_count = %v, wanted = 1", got)
	}
	if got := attrs["evaluator.details.all_passed"].AsBool(); got {
		t.Errorf("evaluator.details.all_passed = %v, wanted = false", got)
	}
}

func TestToAttribute(t *testing.T) {
	tests := []struct {
		value any
		want  attribute.Value
	}{
		{value: "text", want: attribute.StringValue("text")},
		{value: 3, want: attribute.IntValue(3)},
		{value: 0.5, want: attribute.Float64Value(0.5)},
		{value: true, want: attribute.BoolValue(true)},
		{value: []string{"a"}, want: attribute.StringSliceValue([]string{"a"})},
		{value: map[string]int{"groceries": 2}, want: attribute.StringValue(`{"groceries":2}`)},
	}
	for _, tt := range tests {
		if got := toAttribute("k", tt.value).Value; got.Type() != tt.want.Type() || got.Emit() != tt.want.Emit() {
			t.Errorf("toAttribute(%v) = %v, wanted = %v", tt.value, got.Emit(), tt.want.Emit())
		}
	}
}
