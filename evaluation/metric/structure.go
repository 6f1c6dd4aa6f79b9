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
	"github.com/Macrina/Listify-Agent/evaluation/structure"
)

// Structure scores schema conformance by blending the judge's holistic
// assessment with the deterministic validator.
type Structure struct {
	judge judge.Interface[StructureRequest, StructureVerdict]
	cfg   config
}

var _ evaluation.Evaluator = (*Structure)(nil)

// NewStructure creates the structure compliance evaluator.
func NewStructure(j judge.Interface[StructureRequest, StructureVerdict], opts ...Option) (*Structure, error) {
	if j == nil {
		return nil, errors.New("judge cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Structure{judge: j, cfg: cfg}, nil
}

// NewStructureJudge creates the remote judge for structure compliance.
func NewStructureJudge(b *judge.Backend) (judge.Interface[StructureRequest, StructureVerdict], error) {
	return judge.New[StructureRequest, StructureVerdict](b, structurePrompt)
}

// Metric implements evaluation.Evaluator.
func (s *Structure) Metric() evaluation.Metric {
	return evaluation.StructureCompliance
}

// Evaluate implements evaluation.Evaluator. The validator runs before the
// judge is called, so its diagnostics survive a judge failure.
func (s *Structure) Evaluate(ctx context.Context, in evaluation.Input) evaluation.Result {
	report := structure.Validate(in.Items)
	programmatic := evaluation.Details{
		"programmatic_score": report.Score,
		"structure_issues":   report.Issues,
	}

	return judgeOnce(ctx, s.cfg, evaluation.StructureCompliance, in, s.judge, StructureRequest{Items: in.Items}, programmatic,
		func(v StructureVerdict) evaluation.Result {
			categoryUsage := v.CategoryUsage
			if categoryUsage == nil {
				categoryUsage = map[string]int{}
			}
			summary := v.ComplianceSummary
			if summary == nil {
				summary = map[string]any{}
			}
			details := evaluation.Details{
				"llm_score":          *v.Score,
				"programmatic_score": report.Score,
				"structure_issues":   report.Issues,
				"judge_structure_issues": JudgeIssues{
					MissingItemName: orEmpty(v.StructureIssues.MissingItemName),
					MissingCategory: orEmpty(v.StructureIssues.MissingCategory),
					InvalidCategory: orEmpty(v.StructureIssues.InvalidCategory),
					TypeErrors:      orEmpty(v.StructureIssues.TypeErrors),
					FormatErrors:    orEmpty(v.StructureIssues.FormatErrors),
				},
				"compliance_summary": summary,
				"category_usage":     categoryUsage,
				"strengths":          orEmpty(v.Strengths),
				"weaknesses":         orEmpty(v.Weaknesses),
			}
			score := s.cfg.blend.Combine(*v.Score, report.Score)
			return evaluation.NewResult(score, v.confidence(0.9), s.cfg.threshold, v.Explanation, details)
		})
}
