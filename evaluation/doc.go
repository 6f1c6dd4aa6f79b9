/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package evaluation holds the types shared by every list extraction metric:
// the engine input, the per-metric [Result], the [Evaluator] contract and the
// separate 1-5 [LikertResult] used by the response judges.
//
// Results are values. An evaluator builds one with [NewResult] or, when its
// judge call fails, with [Failure], and never changes it afterwards. The pass
// flag is always derived from a threshold:
//
//	r := evaluation.NewResult(0.82, 0.9, evaluation.DefaultThreshold, "good coverage", nil)
//	r.Passed // true
//
// Scores on the two scales are never mixed implicitly. A LikertResult must be
// converted with [LikertResult.Normalized] or [LikertResult.ToResult] before
// it is compared against a [Result].
package evaluation
