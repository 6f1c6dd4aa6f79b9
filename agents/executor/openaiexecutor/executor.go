/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

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
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// Interface runs one prompt against an OpenAI chat model.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	Execute(ctx context.Context, request Request) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             openai.Client
	model              string
	prompt             *promptbuilder.Prompt
	systemInstructions *promptbuilder.Prompt
	temperature        float64
	maxTokens          int64
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.Config
}

// New creates an executor for prompt. Without options it uses gpt-4o at
// temperature 0.1 with a 1500 token cap and no retries.
func New[Request promptbuilder.Bindable, Response any](
	client openai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		model:        "gpt-4o",
		prompt:       prompt,
		temperature:  0.1,
		maxTokens:    1500,
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
	log := clog.FromContext(ctx).With("model", e.model)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	trace := agenttrace.StartTrace(ctx, "openai", e.model, prompt)
	ctx = trace.Context()
	defer func() {
		trace.Complete(err)
		e.genaiMetrics.RecordCall(ctx, e.model, outcome(err))
	}()

	params, err := e.params(prompt)
	if err != nil {
		return response, err
	}

	log.With("prompt_length", len(prompt)).Debug("Sending OpenAI request")

	completion, err := retry.Do(ctx, e.retryConfig, "chat_completion", isRetryableOpenAIError,
		func(ctx context.Context) (*openai.ChatCompletion, error) {
			return e.client.Chat.Completions.New(ctx, params)
		})
	if err != nil {
		return response, fmt.Errorf("openai request failed: %w", err)
	}

	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.model, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
		trace.RecordTokenUsage(completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return response, &result.MalformedError{Err: errors.New("no content in OpenAI response")}
	}
	text := completion.Choices[0].Message.Content

	response, err = result.Extract[Response](text)
	if err != nil {
		log.With("response", text).With("error", err).Warn("Failed to parse OpenAI response")
		return response, err
	}
	return response, nil
}

// params builds the chat request. Reasoning models reject a temperature, so
// it is only sent to the gpt family.
func (e *executor[Request, Response]) params(prompt string) (openai.ChatCompletionNewParams, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(e.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(e.maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	if !reasoningModel(e.model) {
		params.Temperature = openai.Float(e.temperature)
	}
	return params, nil
}

func reasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
