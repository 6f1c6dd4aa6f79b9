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

// subScoreDefault stands in for a sub-score the judge left out.
const subScoreDefault = 0.5

// Content scores relevance, usefulness, explanation quality and
// categorization accuracy of the items.
type Content struct {
	judge judge.Interface[ContentRequest, ContentVerdict]
	cfg   config
}

var _ evaluation.Evaluator = (*Content)(nil)

// NewContent creates the content quality evaluator.
func NewContent(j judge.Interface[ContentRequest, ContentVerdict], opts ...Option) (*Content, error) {
	if j == nil {
		return nil, errors.New("judge cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Content{judge: j, cfg: cfg}, nil
}

// NewContentJudge creates the remote judge for content quality.
func NewContentJudge(b *judge.Backend) (judge.Interface[ContentRequest, ContentVerdict], error) {
	return judge.New[ContentRequest, ContentVerdict](b, contentPrompt)
}

// Metric implements evaluation.Evaluator.
func (c *Content) Metric() evaluation.Metric {
	return evaluation.ContentQuality
}

// Evaluate implements evaluation.Evaluator.
func (c *Content) Evaluate(ctx context.Context, in evaluation.Input) evaluation.Result {
	return judgeOnce(ctx, c.cfg, evaluation.ContentQuality, in, c.judge, ContentRequest{Input: in}, nil,
		func(v ContentVerdict) evaluation.Result {
			analysis := v.QualityAnalysis
			if analysis == nil {
				analysis = map[string]any{}
			}
			details := evaluation.Details{
				"quality_analysis":              analysis,
				"relevance_score":               valueOr(v.RelevanceScore, subScoreDefault),
				"usefulness_score":              valueOr(v.UsefulnessScore, subScoreDefault),
				"explanation_quality_score":     valueOr(v.ExplanationQualityScore, subScoreDefault),
				"categorization_accuracy_score": valueOr(v.CategorizationAccuracyScore, subScoreDefault),
				"strengths":                     orEmpty(v.Strengths),
				"weaknesses":                    orEmpty(v.Weaknesses),
			}
			return evaluation.NewResult(*v.Score, v.confidence(0.8), c.cfg.threshold, v.Explanation, details)
		})
}
