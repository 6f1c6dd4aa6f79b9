/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Macrina/Listify-Agent/agents/executor/openaiexecutor"
	"github.com/Macrina/Listify-Agent/agents/executor/retry"
)

// Provider identifies the API family serving a model.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderOpenAI    Provider = "openai"
)

// DefaultModel is the judge model used when none is configured.
const DefaultModel = "gpt-4o"

// ProviderFor selects the provider serving model.
func ProviderFor(model string) (Provider, error) {
	m := strings.ToLower(model)
	switch {
	case strings.HasPrefix(m, "claude-"):
		return ProviderAnthropic, nil
	case strings.HasPrefix(m, "gemini-"):
		return ProviderGoogle, nil
	case openaiexecutor.IsModel(m):
		return ProviderOpenAI, nil
	}
	return "", fmt.Errorf("unsupported model: %s (expected claude-*, gemini-*, gpt-* or o*)", model)
}

// Config describes how judges are reached and sampled.
type Config struct {
	// Model selects both the model and its provider.
	Model string
	// ProjectID and Region locate Vertex AI for claude-* and gemini-* models.
	ProjectID string
	Region    string
	// OpenAIAPIKey and OpenAIBaseURL configure gpt-* and o* models.
	// An empty base URL means the public API.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	// Timeout bounds each judge call. Zero leaves it to the caller's context.
	Timeout time.Duration
	// MaxTokens caps the verdict length.
	MaxTokens int64
	// Temperature should stay low to keep scores stable between runs.
	Temperature float64
	// Retry is disabled by default; a failed call fails its metric.
	Retry retry.Config
}

// DefaultConfig returns gpt-4o at temperature 0.1 with a 1500 token cap and
// a one minute timeout.
func DefaultConfig() Config {
	return Config{
		Model:       DefaultModel,
		Region:      "us-central1",
		Timeout:     time.Minute,
		MaxTokens:   1500,
		Temperature: 0.1,
	}
}

// Validate checks the configuration for the selected provider.
func (c Config) Validate() error {
	p, err := ProviderFor(c.Model)
	if err != nil {
		return err
	}
	switch p {
	case ProviderAnthropic, ProviderGoogle:
		if c.ProjectID == "" {
			return fmt.Errorf("project ID is required for %s models", p)
		}
		if c.Region == "" {
			return fmt.Errorf("region is required for %s models", p)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OpenAI API key is required for OpenAI models")
		}
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", c.Temperature)
	}
	return c.Retry.Validate()
}
