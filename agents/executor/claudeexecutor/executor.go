/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

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
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
)

// Interface runs one prompt against Claude.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	Execute(ctx context.Context, request Request) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             anthropic.Client
	modelName          string
	systemInstructions *promptbuilder.Prompt
	prompt             *promptbuilder.Prompt
	maxTokens          int64
	temperature        float64
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.Config
}

// New creates an executor for prompt. Without options it uses Claude Sonnet 4
// at temperature 0.1 and performs no retries.
func New[Request promptbuilder.Bindable, Response any](
	client anthropic.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		modelName:    "claude-sonnet-4@20250514",
		prompt:       prompt,
		maxTokens:    8192,
		temperature:  0.1,
		genaiMetrics: metrics.NewGenAI(metrics.MeterName),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// Execute binds request to the prompt, sends it, and decodes the answer.
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request) (response Response, err error) {
	log := clog.FromContext(ctx).With("model", e.modelName)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	trace := agenttrace.StartTrace(ctx, "anthropic", e.modelName, prompt)
	ctx = trace.Context()
	defer func() {
		trace.Complete(err)
		e.genaiMetrics.RecordCall(ctx, e.modelName, outcome(err))
	}()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)},
		}},
		Temperature: anthropic.Float(e.temperature),
	}
	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	log.With("prompt_length", len(prompt)).Debug("Sending Claude request")

	message, err := retry.Do(ctx, e.retryConfig, "claude_message", retryableJudgeError,
		func(ctx context.Context) (*anthropic.Message, error) {
			return e.client.Messages.New(ctx, params)
		})
	if err != nil {
		return response, fmt.Errorf("claude request failed: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
		trace.RecordTokenUsage(message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return response, &result.MalformedError{Err: errors.New("no text content in Claude response")}
	}

	response, err = result.Extract[Response](text.String())
	if err != nil {
		log.With("response", text.String()).With("error", err).Warn("Failed to parse Claude response")
		return response, err
	}
	return response, nil
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
