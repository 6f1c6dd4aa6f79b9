/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor sends a bound prompt to a Claude model through the
// Anthropic SDK and decodes the JSON answer into a typed response.
//
// Each Execute call issues one Messages request (plus opt-in retries for
// rate limit and overload errors), records token usage, and wraps the call
// in an agent.execution span:
//
//	client := anthropic.NewClient(vertex.WithGoogleAuth(ctx, region, projectID))
//	exec, err := claudeexecutor.New[*Request, Verdict](client, prompt,
//		claudeexecutor.WithModel[*Request, Verdict]("claude-sonnet-4@20250514"),
//		claudeexecutor.WithMaxTokens[*Request, Verdict](1500),
//	)
//	verdict, err := exec.Execute(ctx, req)
//
// Responses that do not decode into the response type are reported as
// *result.MalformedError.
package claudeexecutor
