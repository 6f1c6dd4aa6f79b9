/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package engine scores an extraction on every metric and aggregates the
// results into one overall verdict.
package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Macrina/Listify-Agent/agents/judge"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/metric"
	"github.com/Macrina/Listify-Agent/evaluation/telemetry"
	"github.com/chainguard-dev/clog"
)

// Results is the engine output, keyed by metric name when serialized.
type Results struct {
	ExtractionAccuracy  evaluation.Result `json:"extraction_accuracy"`
	StructureCompliance evaluation.Result `json:"structure_compliance"`
	ContentQuality      evaluation.Result `json:"content_quality"`
	Overall             evaluation.Result `json:"overall"`
}

// Get returns the result of metric m.
func (r Results) Get(m evaluation.Metric) (evaluation.Result, bool) {
	switch m {
	case evaluation.ExtractionAccuracy:
		return r.ExtractionAccuracy, true
	case evaluation.StructureCompliance:
		return r.StructureCompliance, true
	case evaluation.ContentQuality:
		return r.ContentQuality, true
	case evaluation.Overall:
		return r.Overall, true
	}
	return evaluation.Result{}, false
}

// Engine evaluates extractions. Its configuration is fixed at construction
// and it is safe for concurrent use.
type Engine struct {
	accuracy  evaluation.Evaluator
	structure evaluation.Evaluator
	content   evaluation.Evaluator

	threshold float64
	weights   Weights
	sink      telemetry.Sink
	model     string
}

// New creates an engine from the three metric evaluators.
func New(accuracy, structure, content evaluation.Evaluator, opts ...Option) (*Engine, error) {
	if accuracy == nil || structure == nil || content == nil {
		return nil, errors.New("all three evaluators are required")
	}
	for want, e := range map[evaluation.Metric]evaluation.Evaluator{
		evaluation.ExtractionAccuracy:  accuracy,
		evaluation.StructureCompliance: structure,
		evaluation.ContentQuality:      content,
	} {
		if e.Metric() != want {
			return nil, fmt.Errorf("evaluator for %s reports metric %s", want, e.Metric())
		}
	}

	e := &Engine{
		accuracy:  accuracy,
		structure: structure,
		content:   content,
		threshold: evaluation.DefaultThreshold,
		weights:   DefaultWeights,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// Telemetry records the re-stamped result, so span status and the
	// returned passed flag agree.
	wrap := func(inner evaluation.Evaluator) evaluation.Evaluator {
		stamped := restamp(inner, e.threshold)
		if e.sink == nil {
			return stamped
		}
		return telemetry.Wrap(stamped, e.sink, telemetry.WithModel(e.model), telemetry.WithThreshold(e.threshold))
	}
	e.accuracy, e.structure, e.content = wrap(e.accuracy), wrap(e.structure), wrap(e.content)
	return e, nil
}

// restamp judges every result of inner against threshold.
func restamp(inner evaluation.Evaluator, threshold float64) evaluation.Evaluator {
	return evaluation.Func(inner.Metric(), func(ctx context.Context, in evaluation.Input) evaluation.Result {
		return inner.Evaluate(ctx, in).WithThreshold(threshold)
	})
}

// resolveThreshold applies opts to a scratch engine and returns the pass
// mark they select.
func resolveThreshold(opts []Option) (float64, error) {
	scratch := &Engine{threshold: evaluation.DefaultThreshold}
	for _, opt := range opts {
		if err := opt(scratch); err != nil {
			return 0, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return scratch.threshold, nil
}

// NewFromBackend creates an engine whose evaluators share one judge backend.
// The evaluators use the engine's threshold; metric options such as the
// structure blend are passed through.
func NewFromBackend(b *judge.Backend, metricOpts []metric.Option, opts ...Option) (*Engine, error) {
	threshold, err := resolveThreshold(opts)
	if err != nil {
		return nil, err
	}
	metricOpts = append(slices.Clone(metricOpts), metric.WithThreshold(threshold))

	accuracyJudge, err := metric.NewAccuracyJudge(b)
	if err != nil {
		return nil, err
	}
	structureJudge, err := metric.NewStructureJudge(b)
	if err != nil {
		return nil, err
	}
	contentJudge, err := metric.NewContentJudge(b)
	if err != nil {
		return nil, err
	}

	accuracy, err := metric.NewAccuracy(accuracyJudge, metricOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating accuracy evaluator: %w", err)
	}
	structure, err := metric.NewStructure(structureJudge, metricOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating structure evaluator: %w", err)
	}
	content, err := metric.NewContent(contentJudge, metricOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating content evaluator: %w", err)
	}

	return New(accuracy, structure, content, append([]Option{WithModel(b.Model())}, opts...)...)
}

// Threshold returns the pass mark every result of this engine uses.
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// Evaluate scores in on every metric and aggregates the results. It never
// fails: a metric whose judge failed contributes a zero score.
//
// Metric results are re-stamped with the engine threshold, so every passed
// flag in Results agrees with Threshold.
func (e *Engine) Evaluate(ctx context.Context, in evaluation.Input) Results {
	if norm, err := in.Normalize(); err == nil {
		in = norm
	}

	if e.sink != nil {
		var span telemetry.Span
		ctx, span = telemetry.Start(ctx, e.sink, "listify-agent.evaluation.all_metrics")
		defer span.End()
		span.SetAttribute("input_type", string(in.Type))
		span.SetAttribute("items_count", len(in.Items))
	}

	accuracy := e.accuracy.Evaluate(ctx, in)
	structure := e.structure.Evaluate(ctx, in)
	content := e.content.Evaluate(ctx, in)
	overall := Aggregate(e.threshold, e.weights, accuracy, structure, content)

	clog.FromContext(ctx).
		With("input_type", in.Type).
		With("items", len(in.Items)).
		With("score", overall.Score).
		With("passed", overall.Passed).
		Info("Evaluation complete")

	return Results{
		ExtractionAccuracy:  accuracy,
		StructureCompliance: structure,
		ContentQuality:      content,
		Overall:             overall,
	}
}
