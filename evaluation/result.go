/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluation

import (
	"fmt"
	"maps"
)

// Metric names one scored dimension. The names double as the keys of the
// engine output.
type Metric string

const (
	ExtractionAccuracy  Metric = "extraction_accuracy"
	StructureCompliance Metric = "structure_compliance"
	ContentQuality      Metric = "content_quality"
	Overall             Metric = "overall"
)

// DefaultThreshold is the pass mark used when none is configured.
const DefaultThreshold = 0.7

// ValidateThreshold checks that t lies in [0, 1].
func ValidateThreshold(t float64) error {
	if t < 0 || t > 1 {
		return fmt.Errorf("threshold must be between 0.0 and 1.0, got %f", t)
	}
	return nil
}

// Details carries metric specific sub-scores and diagnostics.
type Details map[string]any

// Result is the outcome of one metric evaluation.
type Result struct {
	Score       float64 `json:"score"`
	Passed      bool    `json:"passed"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
	Details     Details `json:"details"`
}

// NewResult builds a result, clamping score and confidence into [0, 1] and
// deriving Passed from threshold.
func NewResult(score, confidence, threshold float64, explanation string, details Details) Result {
	if details == nil {
		details = Details{}
	}
	score = clamp(score)
	return Result{
		Score:       score,
		Passed:      score >= threshold,
		Confidence:  clamp(confidence),
		Explanation: explanation,
		Details:     details,
	}
}

// Failure is the conservative result of an evaluation that could not
// complete. details may carry diagnostics gathered before the failure.
func Failure(err error, details Details) Result {
	if details == nil {
		details = Details{}
	}
	return Result{
		Explanation: fmt.Sprintf("Evaluation failed: %v", err),
		Details:     details,
	}
}

// WithThreshold returns a copy of r with Passed derived from threshold.
func (r Result) WithThreshold(threshold float64) Result {
	r.Passed = r.Score >= threshold
	r.Details = maps.Clone(r.Details)
	if r.Details == nil {
		r.Details = Details{}
	}
	return r
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}
