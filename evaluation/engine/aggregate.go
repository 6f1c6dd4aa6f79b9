/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/Macrina/Listify-Agent/evaluation"
)

// Weights are the shares of each metric in the overall score.
type Weights struct {
	ExtractionAccuracy  float64
	StructureCompliance float64
	ContentQuality      float64
}

// DefaultWeights weighs accuracy 0.4 and the other two metrics 0.3 each.
var DefaultWeights = Weights{
	ExtractionAccuracy:  0.4,
	StructureCompliance: 0.3,
	ContentQuality:      0.3,
}

// Validate requires non-negative weights that sum to 1.
func (w Weights) Validate() error {
	if w.ExtractionAccuracy < 0 || w.StructureCompliance < 0 || w.ContentQuality < 0 {
		return errors.New("metric weights cannot be negative")
	}
	if sum := w.ExtractionAccuracy + w.StructureCompliance + w.ContentQuality; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("metric weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Aggregate combines the three metric results. The overall score is the
// weighted sum of the metric scores and passes on threshold alone;
// all_passed records whether every metric passed on its own.
func Aggregate(threshold float64, w Weights, accuracy, structure, content evaluation.Result) evaluation.Result {
	weighted := map[evaluation.Metric]float64{
		evaluation.ExtractionAccuracy:  w.ExtractionAccuracy * accuracy.Score,
		evaluation.StructureCompliance: w.StructureCompliance * structure.Score,
		evaluation.ContentQuality:      w.ContentQuality * content.Score,
	}
	score := weighted[evaluation.ExtractionAccuracy] +
		weighted[evaluation.StructureCompliance] +
		weighted[evaluation.ContentQuality]

	return evaluation.NewResult(
		score,
		(accuracy.Confidence+structure.Confidence+content.Confidence)/3,
		threshold,
		fmt.Sprintf("Overall score: %.2f (weighted average)", score),
		evaluation.Details{
			"weighted_scores": weighted,
			"all_passed":      accuracy.Passed && structure.Passed && content.Passed,
		},
	)
}
