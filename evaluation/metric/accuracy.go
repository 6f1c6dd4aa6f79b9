/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metric

import (
	"context"
	"errors"

	"github.com/Macrina/Listify-Agent/agents/judge"
	"github.com/Macrina/Listify-Agent/evaluation"
)

// Accuracy scores whether every item in the input was extracted, named
// correctly and categorized sensibly, without invented items.
type Accuracy struct {
	judge judge.Interface[AccuracyRequest, AccuracyVerdict]
	cfg   config
}

var _ evaluation.Evaluator = (*Accuracy)(nil)

// NewAccuracy creates the extraction accuracy evaluator.
func NewAccuracy(j judge.Interface[AccuracyRequest, AccuracyVerdict], opts ...Option) (*Accuracy, error) {
	if j == nil {
		return nil, errors.New("judge cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Accuracy{judge: j, cfg: cfg}, nil
}

// NewAccuracyJudge creates the remote judge for extraction accuracy.
func NewAccuracyJudge(b *judge.Backend) (judge.Interface[AccuracyRequest, AccuracyVerdict], error) {
	return judge.New[AccuracyRequest, AccuracyVerdict](b, accuracyPrompt)
}

// Metric implements evaluation.Evaluator.
func (a *Accuracy) Metric() evaluation.Metric {
	return evaluation.ExtractionAccuracy
}

// Evaluate implements evaluation.Evaluator.
func (a *Accuracy) Evaluate(ctx context.Context, in evaluation.Input) evaluation.Result {
	return judgeOnce(ctx, a.cfg, evaluation.ExtractionAccuracy, in, a.judge, AccuracyRequest{Input: in}, nil,
		func(v AccuracyVerdict) evaluation.Result {
			details := evaluation.Details{
				"completeness": Completeness{
					ItemsFound:     v.Completeness.ItemsFound,
					ItemsMissing:   orEmpty(v.Completeness.ItemsMissing),
					FalsePositives: orEmpty(v.Completeness.FalsePositives),
				},
				"accuracy": AccuracyBreakdown{
					CorrectExtractions:   orEmpty(v.Accuracy.CorrectExtractions),
					IncorrectExtractions: orEmpty(v.Accuracy.IncorrectExtractions),
					CategorizationErrors: orEmpty(v.Accuracy.CategorizationErrors),
				},
				"strengths":       orEmpty(v.Strengths),
				"weaknesses":      orEmpty(v.Weaknesses),
				"extracted_count": len(in.Items),
			}
			if len(in.Expected) > 0 {
				details["expected_count"] = len(in.Expected)
			}
			return evaluation.NewResult(*v.Score, v.confidence(0.8), a.cfg.threshold, v.Explanation, details)
		})
}
