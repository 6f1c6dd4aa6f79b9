/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package result decodes the structured JSON a judge model returns.
//
// Models wrap JSON in markdown fences or surround it with prose more often
// than not. [ExtractJSON] recovers the JSON body from such text, and
// [Extract] decodes it into a typed verdict:
//
//	verdict, err := result.Extract[Verdict](responseText)
//	var malformed *result.MalformedError
//	if errors.As(err, &malformed) {
//		// the judge answered, but not in the expected shape
//	}
//
// Verdict types that implement [Validator] are checked after decoding, so
// required keys and numeric ranges are enforced in one place and surface as
// a [MalformedError] like any other shape problem.
package result
