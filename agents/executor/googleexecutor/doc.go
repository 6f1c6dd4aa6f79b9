/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googleexecutor sends a bound prompt to a Gemini model through the
// Google Gen AI SDK and decodes the JSON answer into a typed response.
//
//	client, err := genai.NewClient(ctx, &genai.ClientConfig{
//		Project:  projectID,
//		Location: region,
//		Backend:  genai.BackendVertexAI,
//	})
//	exec, err := googleexecutor.New[*Request, Verdict](client, prompt,
//		googleexecutor.WithModel[*Request, Verdict]("gemini-2.5-flash"),
//	)
//	verdict, err := exec.Execute(ctx, req)
//
// Executors ask for application/json output by default. Rate limit and quota
// errors are retried only when WithRetryConfig is given.
package googleexecutor
