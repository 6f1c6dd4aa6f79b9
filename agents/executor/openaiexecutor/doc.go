/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexecutor sends a bound prompt to an OpenAI chat model and
// decodes the JSON answer into a typed response.
//
//	client := openai.NewClient(option.WithAPIKey(key))
//	exec, err := openaiexecutor.New[*Request, Verdict](client, prompt,
//		openaiexecutor.WithModel[*Request, Verdict]("gpt-4o"),
//		openaiexecutor.WithMaxTokens[*Request, Verdict](1500),
//	)
//	verdict, err := exec.Execute(ctx, req)
//
// Requests use JSON object mode, so the model always answers with a single
// JSON document.
package openaiexecutor
