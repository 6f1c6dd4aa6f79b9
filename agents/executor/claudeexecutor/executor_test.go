/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Macrina/Listify-Agent/agents/executor/retry"
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/anthropics/anthropic-sdk-go"
)

type request struct{}

func (request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) { return p, nil }

type verdict struct {
	Score float64 `json:"score"`
}

func TestNewDefaults(t *testing.T) {
	prompt := promptbuilder.MustNewPrompt("judge this")
	got, err := New[request, verdict](anthropic.NewClient(), prompt)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	e := got.(*executor[request, verdict])
	if e.temperature != 0.1 {
		t.Errorf("temperature = %v, wanted = 0.1", e.temperature)
	}
	if e.retryConfig.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, wanted retries disabled", e.retryConfig.MaxRetries)
	}
}

func TestNewOptions(t *testing.T) {
	prompt := promptbuilder.MustNewPrompt("judge this")
	tests := []struct {
		name    string
		opt     Option[request, verdict]
		wantErr bool
	}{
		{"model", WithModel[request, verdict]("claude-opus-4@20250514"), false},
		{"non claude model", WithModel[request, verdict]("gpt-4o"), true},
		{"max tokens", WithMaxTokens[request, verdict](1500), false},
		{"zero max tokens", WithMaxTokens[request, verdict](0), true},
		{"too many tokens", WithMaxTokens[request, verdict](64000), true},
		{"temperature", WithTemperature[request, verdict](0), false},
		{"hot temperature", WithTemperature[request, verdict](1.5), true},
		{"nil system prompt", WithSystemInstructions[request, verdict](nil), true},
		{"retry", WithRetryConfig[request, verdict](retry.QuotaConfig()), false},
		{"bad retry", WithRetryConfig[request, verdict](retry.Config{MaxRetries: -1}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[request, verdict](anthropic.NewClient(), prompt, tt.opt)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}

	if _, err := New[request, verdict](anthropic.NewClient(), nil); err == nil {
		t.Error("New() accepted a nil prompt")
	}
}

func TestRetryableJudgeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limited", err: &anthropic.Error{StatusCode: 429}, want: true},
		{name: "overloaded", err: &anthropic.Error{StatusCode: 529}, want: true},
		{name: "bad gateway", err: &anthropic.Error{StatusCode: 502}, want: true},
		{name: "request timeout", err: &anthropic.Error{StatusCode: 408}, want: true},
		{name: "wrapped", err: fmt.Errorf("claude request failed: %w", &anthropic.Error{StatusCode: 503}), want: true},
		{name: "bad request", err: &anthropic.Error{StatusCode: 400}, want: false},
		{name: "unauthorized", err: &anthropic.Error{StatusCode: 401}, want: false},
		{name: "no status", err: errors.New("429"), want: false},
		{name: "canceled", err: context.Canceled, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableJudgeError(tt.err); got != tt.want {
				t.Errorf("retryableJudgeError() = %v, wanted = %v", got, tt.want)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	if outcome(nil) != "ok" || outcome(errors.New("x")) != "error" {
		t.Error("outcome() labels changed")
	}
}
