/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metric implements the three judge-backed metrics of a list
// extraction: extraction accuracy, structure compliance and content quality.
//
// Each evaluator renders its rubric for one [evaluation.Input], asks a
// [judge.Interface] for a verdict, and turns the verdict into an
// [evaluation.Result]. Structure compliance also runs the deterministic
// validator of package structure and blends both scores.
//
// Evaluators never return errors. A judge failure of any kind becomes a
// result with zero score and confidence whose explanation names the
// failure, so callers always receive three well formed results.
package metric
