/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responsejudge

import (
	"errors"
	"fmt"

	"github.com/Macrina/Listify-Agent/evaluation"
)

// LikertVerdict holds the fields shared by the 1 to 5 verdicts.
type LikertVerdict struct {
	Score       *float64 `json:"score" jsonschema:"required,minimum=1,maximum=5" jsonschema_description:"Rating from 1 (very poor) to 5 (excellent)"`
	Confidence  *float64 `json:"confidence,omitempty" jsonschema:"minimum=0,maximum=1"`
	Explanation string   `json:"explanation" jsonschema:"required"`
}

// Validate requires a score in [1, 5], a confidence in [0, 1] when present,
// and an explanation.
func (v LikertVerdict) Validate() error {
	if v.Score == nil {
		return errors.New("missing required field \"score\"")
	}
	if *v.Score < evaluation.LikertMin || *v.Score > evaluation.LikertMax {
		return fmt.Errorf("score %v is outside [%v, %v]", *v.Score, evaluation.LikertMin, evaluation.LikertMax)
	}
	if err := validConfidence(v.Confidence); err != nil {
		return err
	}
	if v.Explanation == "" {
		return errors.New("missing required field \"explanation\"")
	}
	return nil
}

func (v LikertVerdict) result(details evaluation.Details) evaluation.LikertResult {
	return evaluation.NewLikertResult(*v.Score, confidenceOr(v.Confidence), v.Explanation, details)
}

func validConfidence(c *float64) error {
	if c != nil && (*c < 0 || *c > 1) {
		return fmt.Errorf("confidence %v is outside [0, 1]", *c)
	}
	return nil
}

// defaultConfidence stands in for a confidence the judge left out.
const defaultConfidence = 0.8

func confidenceOr(c *float64) float64 {
	if c == nil {
		return defaultConfidence
	}
	return *c
}

// ToneVerdict rates professionalism, empathy and clarity.
type ToneVerdict struct {
	LikertVerdict
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// CorrectnessVerdict rates factual accuracy and completeness.
type CorrectnessVerdict struct {
	LikertVerdict
	AccuracyIssues     []string `json:"accuracy_issues,omitempty"`
	CompletenessIssues []string `json:"completeness_issues,omitempty"`
}

// ToolCallingVerdict rates tool selection, efficiency and safety.
type ToolCallingVerdict struct {
	LikertVerdict
	ToolIssues     []string `json:"tool_issues,omitempty"`
	SafetyConcerns []string `json:"safety_concerns,omitempty"`
}

// HallucinatedItem is one reference the response invented.
type HallucinatedItem struct {
	Type   string `json:"type" jsonschema:"enum=file_path,enum=command,enum=endpoint,enum=feature"`
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// HallucinationVerdict reports references to files, commands, endpoints or
// features that do not exist.
type HallucinationVerdict struct {
	HasHallucinations *bool              `json:"has_hallucinations" jsonschema:"required"`
	Confidence        *float64           `json:"confidence,omitempty" jsonschema:"minimum=0,maximum=1"`
	Explanation       string             `json:"explanation" jsonschema:"required"`
	HallucinatedItems []HallucinatedItem `json:"hallucinated_items,omitempty"`
}

// Validate requires the verdict flag and an explanation.
func (v HallucinationVerdict) Validate() error {
	if v.HasHallucinations == nil {
		return errors.New("missing required field \"has_hallucinations\"")
	}
	if err := validConfidence(v.Confidence); err != nil {
		return err
	}
	if v.Explanation == "" {
		return errors.New("missing required field \"explanation\"")
	}
	return nil
}
