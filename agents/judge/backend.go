/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"

	"github.com/Macrina/Listify-Agent/agents/agenttrace"
	"github.com/Macrina/Listify-Agent/agents/executor/claudeexecutor"
	"github.com/Macrina/Listify-Agent/agents/executor/googleexecutor"
	"github.com/Macrina/Listify-Agent/agents/executor/openaiexecutor"
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

// Backend is a configured provider client that judges of any verdict type
// can share.
type Backend struct {
	cfg      Config
	provider Provider

	anthropic anthropic.Client
	google    *genai.Client
	openai    openai.Client
}

// NewBackend validates cfg and creates the client for its provider. The SDK
// level retries of the Anthropic and OpenAI clients are turned off so that
// cfg.Retry is the only retry policy.
func NewBackend(ctx context.Context, cfg Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid judge config: %w", err)
	}
	provider, _ := ProviderFor(cfg.Model) // checked by Validate

	b := &Backend{cfg: cfg, provider: provider}
	switch provider {
	case ProviderAnthropic:
		b.anthropic = anthropic.NewClient(
			vertex.WithGoogleAuth(ctx, cfg.Region, cfg.ProjectID),
			anthropicoption.WithMaxRetries(0),
		)
	case ProviderGoogle:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			Project:  cfg.ProjectID,
			Location: cfg.Region,
			Backend:  genai.BackendVertexAI,
		})
		if err != nil {
			return nil, fmt.Errorf("creating Gen AI client: %w", err)
		}
		b.google = client
	case ProviderOpenAI:
		opts := []openaioption.RequestOption{
			openaioption.WithAPIKey(cfg.OpenAIAPIKey),
			openaioption.WithMaxRetries(0),
		}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openaioption.WithBaseURL(cfg.OpenAIBaseURL))
		}
		b.openai = openai.NewClient(opts...)
	}

	clog.FromContext(ctx).With("model", cfg.Model).With("provider", provider).Info("Judge backend ready")
	return b, nil
}

// Model returns the configured model name.
func (b *Backend) Model() string {
	return b.cfg.Model
}

// Provider returns the provider serving the model.
func (b *Backend) Provider() Provider {
	return b.provider
}

// resourceLabels tag every Vertex Gemini judge request.
var resourceLabels = map[string]string{"component": "judge"}

// New builds a guarded judge that renders prompt for each request and
// decodes the answer into Verdict.
func New[Request promptbuilder.Bindable, Verdict any](b *Backend, prompt *promptbuilder.Prompt) (Interface[Request, Verdict], error) {
	var (
		inner executor[Request, Verdict]
		err   error
	)
	switch b.provider {
	case ProviderAnthropic:
		inner, err = claudeexecutor.New[Request, Verdict](b.anthropic, prompt,
			claudeexecutor.WithModel[Request, Verdict](b.cfg.Model),
			claudeexecutor.WithMaxTokens[Request, Verdict](b.cfg.MaxTokens),
			claudeexecutor.WithTemperature[Request, Verdict](b.cfg.Temperature),
			claudeexecutor.WithRetryConfig[Request, Verdict](b.cfg.Retry),
			claudeexecutor.WithAttributeEnricher[Request, Verdict](agenttrace.Enricher),
		)
	case ProviderGoogle:
		inner, err = googleexecutor.New[Request, Verdict](b.google, prompt,
			googleexecutor.WithModel[Request, Verdict](b.cfg.Model),
			googleexecutor.WithMaxOutputTokens[Request, Verdict](int32(b.cfg.MaxTokens)),
			googleexecutor.WithTemperature[Request, Verdict](float32(b.cfg.Temperature)),
			googleexecutor.WithRetryConfig[Request, Verdict](b.cfg.Retry),
			googleexecutor.WithAttributeEnricher[Request, Verdict](agenttrace.Enricher),
			googleexecutor.WithResourceLabels[Request, Verdict](resourceLabels),
		)
	case ProviderOpenAI:
		inner, err = openaiexecutor.New[Request, Verdict](b.openai, prompt,
			openaiexecutor.WithModel[Request, Verdict](b.cfg.Model),
			openaiexecutor.WithMaxTokens[Request, Verdict](b.cfg.MaxTokens),
			openaiexecutor.WithTemperature[Request, Verdict](b.cfg.Temperature),
			openaiexecutor.WithRetryConfig[Request, Verdict](b.cfg.Retry),
			openaiexecutor.WithAttributeEnricher[Request, Verdict](agenttrace.Enricher),
		)
	default:
		return nil, fmt.Errorf("unsupported provider %q", b.provider)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s executor: %w", b.provider, err)
	}
	return Guard[Request, Verdict](Func[Request, Verdict](inner.Execute), b.cfg.Timeout), nil
}

// executor is the method set shared by the provider executors.
type executor[Request promptbuilder.Bindable, Verdict any] interface {
	Execute(ctx context.Context, request Request) (Verdict, error)
}
