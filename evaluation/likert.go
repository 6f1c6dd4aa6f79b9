/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluation

import (
	"fmt"
	"maps"
)

// Bounds of the 1-5 scale.
const (
	LikertMin     = 1.0
	LikertMax     = 5.0
	LikertNeutral = 3.0
)

// LikertResult is a verdict on the 1-5 scale. It is a distinct type from
// Result so the two scales cannot be combined by accident.
type LikertResult struct {
	Score       float64 `json:"score"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
	Details     Details `json:"details"`
}

// NewLikertResult builds a 1-5 result, clamping score into [1, 5] and
// confidence into [0, 1].
func NewLikertResult(score, confidence float64, explanation string, details Details) LikertResult {
	if details == nil {
		details = Details{}
	}
	return LikertResult{
		Score:       min(max(score, LikertMin), LikertMax),
		Confidence:  clamp(confidence),
		Explanation: explanation,
		Details:     details,
	}
}

// LikertFailure is the neutral midpoint reported when a 1-5 judge fails.
func LikertFailure(err error) LikertResult {
	return LikertResult{
		Score:       LikertNeutral,
		Explanation: fmt.Sprintf("Evaluation failed: %v", err),
		Details:     Details{},
	}
}

// Normalized maps the score onto [0, 1] as (score-1)/4.
func (r LikertResult) Normalized() float64 {
	return (r.Score - LikertMin) / (LikertMax - LikertMin)
}

// ToResult converts to the [0, 1] scale using Normalized.
func (r LikertResult) ToResult(threshold float64) Result {
	details := Details{"likert_score": r.Score}
	maps.Copy(details, r.Details)
	return NewResult(r.Normalized(), r.Confidence, threshold, r.Explanation, details)
}
