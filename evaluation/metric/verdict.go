/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metric

import (
	"errors"
	"fmt"
)

// Verdict holds the fields every judge answer shares.
type Verdict struct {
	Score       *float64 `json:"score" jsonschema:"required,minimum=0,maximum=1" jsonschema_description:"Overall score from 0.0 to 1.0"`
	Confidence  *float64 `json:"confidence,omitempty" jsonschema:"minimum=0,maximum=1" jsonschema_description:"Your certainty in the score from 0.0 to 1.0"`
	Explanation string   `json:"explanation" jsonschema:"required" jsonschema_description:"Detailed justification of the score"`
}

// Validate rejects verdicts without a score or explanation, or with values
// outside [0, 1].
func (v Verdict) Validate() error {
	if v.Score == nil {
		return errors.New("missing required field \"score\"")
	}
	if err := unit("score", v.Score); err != nil {
		return err
	}
	if err := unit("confidence", v.Confidence); err != nil {
		return err
	}
	if v.Explanation == "" {
		return errors.New("missing required field \"explanation\"")
	}
	return nil
}

// confidence returns the reported confidence or def.
func (v Verdict) confidence(def float64) float64 {
	return valueOr(v.Confidence, def)
}

func unit(name string, f *float64) error {
	if f != nil && (*f < 0 || *f > 1) {
		return fmt.Errorf("%s %v is outside [0, 1]", name, *f)
	}
	return nil
}

func valueOr(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}

// AccuracyVerdict is the judge's answer for extraction accuracy.
type AccuracyVerdict struct {
	Verdict
	Completeness Completeness      `json:"completeness"`
	Accuracy     AccuracyBreakdown `json:"accuracy"`
	Strengths    []string          `json:"strengths,omitempty"`
	Weaknesses   []string          `json:"weaknesses,omitempty"`
}

// Completeness describes which items were found, missed or invented.
type Completeness struct {
	ItemsFound     int   `json:"items_found"`
	ItemsMissing   []any `json:"items_missing"`
	FalsePositives []any `json:"false_positives"`
}

// AccuracyBreakdown lists correct and incorrect extractions.
type AccuracyBreakdown struct {
	CorrectExtractions   []any `json:"correct_extractions"`
	IncorrectExtractions []any `json:"incorrect_extractions"`
	CategorizationErrors []any `json:"categorization_errors"`
}

// StructureVerdict is the judge's answer for structure compliance.
type StructureVerdict struct {
	Verdict
	StructureIssues   JudgeIssues    `json:"structure_issues"`
	ComplianceSummary map[string]any `json:"compliance_summary,omitempty"`
	CategoryUsage     map[string]int `json:"category_usage,omitempty"`
	Strengths         []string       `json:"strengths,omitempty"`
	Weaknesses        []string       `json:"weaknesses,omitempty"`
}

// JudgeIssues are the structural problems the judge reports. The shapes
// follow the validator diagnostics but are kept loose, since the judge may
// name items instead of indexing them.
type JudgeIssues struct {
	MissingItemName []any `json:"missing_item_name"`
	MissingCategory []any `json:"missing_category"`
	InvalidCategory []any `json:"invalid_category" jsonschema_description:"Entries of the form {item, invalid_category, should_be}"`
	TypeErrors      []any `json:"type_errors" jsonschema_description:"Entries of the form {item, field, issue}"`
	FormatErrors    []any `json:"format_errors"`
}

// ContentVerdict is the judge's answer for content quality.
type ContentVerdict struct {
	Verdict
	QualityAnalysis             map[string]any `json:"quality_analysis,omitempty"`
	RelevanceScore              *float64       `json:"relevance_score" jsonschema:"minimum=0,maximum=1"`
	UsefulnessScore             *float64       `json:"usefulness_score" jsonschema:"minimum=0,maximum=1"`
	ExplanationQualityScore     *float64       `json:"explanation_quality_score" jsonschema:"minimum=0,maximum=1"`
	CategorizationAccuracyScore *float64       `json:"categorization_accuracy_score" jsonschema:"minimum=0,maximum=1"`
	Strengths                   []string       `json:"strengths,omitempty"`
	Weaknesses                  []string       `json:"weaknesses,omitempty"`
}

// Validate also checks the four sub-scores that are present.
func (v ContentVerdict) Validate() error {
	if err := v.Verdict.Validate(); err != nil {
		return err
	}
	for name, f := range map[string]*float64{
		"relevance_score":               v.RelevanceScore,
		"usefulness_score":              v.UsefulnessScore,
		"explanation_quality_score":     v.ExplanationQualityScore,
		"categorization_accuracy_score": v.CategorizationAccuracyScore,
	} {
		if err := unit(name, f); err != nil {
			return err
		}
	}
	return nil
}
