/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Evaluation records metric scores and judge failures.
type Evaluation struct {
	scores   metric.Float64Histogram
	failures metric.Int64Counter
}

// NewEvaluation creates evaluation instruments on the named meter.
func NewEvaluation(meterName string) *Evaluation {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	scores, err := meter.Float64Histogram("evaluation.score",
		metric.WithDescription("Metric scores in [0, 1]"),
		metric.WithExplicitBucketBoundaries(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1))
	if err != nil {
		slog.Warn("Failed to create score histogram, metric will be disabled", "error", err)
		scores = noop.Float64Histogram{}
	}

	return &Evaluation{
		scores: scores,
		failures: counter(meter, "evaluation.judge.failures",
			"Judge calls that ended in a conservative failure result", "{failures}"),
	}
}

// RecordScore records one metric result.
func (e *Evaluation) RecordScore(ctx context.Context, metricName string, score float64, passed bool) {
	e.scores.Record(ctx, score, metric.WithAttributes(
		attribute.String("metric", metricName),
		attribute.Bool("passed", passed),
	))
}

// RecordJudgeFailure counts a judge failure of the given kind.
func (e *Evaluation) RecordJudgeFailure(ctx context.Context, metricName, kind string) {
	e.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("metric", metricName),
		attribute.String("kind", kind),
	))
}
