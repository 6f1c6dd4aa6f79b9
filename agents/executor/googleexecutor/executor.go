/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Macrina/Listify-Agent/agents/agenttrace"
	"github.com/Macrina/Listify-Agent/agents/executor/retry"
	"github.com/Macrina/Listify-Agent/agents/metrics"
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/Macrina/Listify-Agent/agents/result"
	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"
)

// Interface runs one prompt against Gemini.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	Execute(ctx context.Context, request Request) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             *genai.Client
	model              string
	prompt             *promptbuilder.Prompt
	systemInstructions *promptbuilder.Prompt
	temperature        float32
	maxOutputTokens    int32
	responseMIMEType   string
	resourceLabels     map[string]string
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.Config
}

// New creates an executor for prompt. Without options it uses Gemini 2.5
// Flash at temperature 0.1 with JSON output and no retries.
func New[Request promptbuilder.Bindable, Response any](
	client *genai.Client,
	prompt *promptbuilder.Prompt,
	options ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt is required")
	}

	exec := &executor[Request, Response]{
		client:           client,
		prompt:           prompt,
		model:            "gemini-2.5-flash",
		temperature:      0.1,
		maxOutputTokens:  8192,
		responseMIMEType: "application/json",
		genaiMetrics:     metrics.NewGenAI(metrics.MeterName),
	}
	for _, opt := range options {
		if err := opt(exec); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return exec, nil
}

// Execute binds request to the prompt, sends it, and decodes the answer.
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request) (resp Response, err error) {
	log := clog.FromContext(ctx).With("model", e.model)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return resp, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return resp, fmt.Errorf("failed to build prompt: %w", err)
	}

	trace := agenttrace.StartTrace(ctx, "google", e.model, prompt)
	ctx = trace.Context()
	defer func() {
		trace.Complete(err)
		e.genaiMetrics.RecordCall(ctx, e.model, outcome(err))
	}()

	config := &genai.GenerateContentConfig{
		Temperature:      ptr(e.temperature),
		MaxOutputTokens:  e.maxOutputTokens,
		ResponseMIMEType: e.responseMIMEType,
		Labels:           e.resourceLabels,
	}
	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return resp, fmt.Errorf("building system prompt: %w", err)
		}
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	log.With("prompt_length", len(prompt)).Debug("Sending Gemini request")

	response, err := retry.Do(ctx, e.retryConfig, "generate_content", isRetryableVertexError,
		func(ctx context.Context) (*genai.GenerateContentResponse, error) {
			return e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), config)
		})
	if err != nil {
		return resp, fmt.Errorf("gemini request failed: %w", err)
	}

	if usage := response.UsageMetadata; usage != nil {
		in, out := int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount)
		e.genaiMetrics.RecordTokens(ctx, e.model, in, out)
		trace.RecordTokenUsage(in, out)
	}

	text := responseText(response)
	if text == "" {
		return resp, &result.MalformedError{Err: errors.New("no text content in Gemini response")}
	}

	resp, err = result.Extract[Response](text)
	if err != nil {
		log.With("response", text).With("error", err).Warn("Failed to parse Gemini response")
		return resp, err
	}
	return resp, nil
}

// responseText joins the non-thought text parts of the first candidate.
func responseText(r *genai.GenerateContentResponse) string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func ptr[T any](v T) *T {
	return &v
}
