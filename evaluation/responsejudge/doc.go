/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package responsejudge grades conversational agent responses rather than
// list extractions: tone, correctness and tool calling on a 1 to 5 scale,
// and a pass/fail hallucination check.
//
// The 1 to 5 checks return [evaluation.LikertResult] and are never mapped
// onto the [0, 1] scale implicitly; use LikertResult.Normalized or
// LikertResult.ToResult when a comparison across scales is needed. On any
// judge failure they return the neutral midpoint 3 with zero confidence.
//
// The hallucination check returns an [evaluation.Result] scored 1 when no
// hallucinations were found and 0 otherwise, failing to 0.
package responsejudge
