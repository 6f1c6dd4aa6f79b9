/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge is the client for the model that grades list extractions.
//
// # Overview
//
// Evaluators depend only on [Interface], a typed capability:
//
//	type Interface[Request, Verdict] interface {
//		Judge(ctx context.Context, request Request) (Verdict, error)
//	}
//
// so they can be tested against deterministic stubs built with [Func] and
// run in production against a remote model built with [New].
//
// # Backends
//
// A [Backend] holds one provider client, selected by the model name:
//
//   - claude-* models run on Vertex AI through the Anthropic SDK
//   - gemini-* models run on Vertex AI through the Gen AI SDK
//   - gpt-*, chatgpt-* and o* models run on the OpenAI API
//
// Every call requests low temperature sampling and a capped output length
// and is issued once; retries are opt-in through [Config].Retry.
//
// # Failures
//
// Every error a judge returns is a *[Error] whose [Kind] tells timeouts,
// malformed responses and remote errors apart. [Guard] enforces the call
// timeout even when the underlying client ignores its context, and
// recovers panics into remote errors.
//
// # Thread Safety
//
// Judges are stateless after construction and safe for concurrent use.
package judge
