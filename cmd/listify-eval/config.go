/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/Macrina/Listify-Agent/agents/judge"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	// Model and Timeout override the judge defaults when set.
	Model   string        `env:"JUDGE_MODEL"`
	Timeout time.Duration `env:"JUDGE_TIMEOUT"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// Vertex AI location of claude-* and gemini-* judges. The project
	// falls back to the metadata server on GCP.
	ProjectID string `env:"GOOGLE_CLOUD_PROJECT"`
	Region    string `env:"GOOGLE_CLOUD_REGION,default=us-central1"`

	Threshold   float64 `env:"EVAL_THRESHOLD,default=0.7"`
	Concurrency int     `env:"SUITE_CONCURRENCY,default=4"`
}

// loadDotEnv loads a .env file from the working directory when one exists.
func loadDotEnv(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			clog.FromContext(ctx).Debug("No .env file, using the environment")
			return nil
		}
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// loadConfig reads the process configuration from l, or from the
// environment when l is nil.
func loadConfig(ctx context.Context, l envconfig.Lookuper) (config, error) {
	var cfg config
	if l == nil {
		l = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return cfg, fmt.Errorf("processing config: %w", err)
	}
	if err := evaluation.ValidateThreshold(cfg.Threshold); err != nil {
		return cfg, fmt.Errorf("EVAL_THRESHOLD: %w", err)
	}
	if cfg.Concurrency < 1 {
		return cfg, fmt.Errorf("SUITE_CONCURRENCY must be at least 1, got %d", cfg.Concurrency)
	}
	return cfg, nil
}

// judgeConfig turns the process configuration into a judge configuration
// based on base.
func (c config) judgeConfig(ctx context.Context, base judge.Config) judge.Config {
	jc := base
	if c.Model != "" {
		jc.Model = c.Model
	}
	if c.Timeout > 0 {
		jc.Timeout = c.Timeout
	}
	jc.OpenAIAPIKey = c.OpenAIAPIKey
	jc.OpenAIBaseURL = c.OpenAIBaseURL
	jc.Region = c.Region
	jc.ProjectID = c.ProjectID

	if p, err := judge.ProviderFor(jc.Model); err == nil && p != judge.ProviderOpenAI && jc.ProjectID == "" {
		jc.ProjectID = detectProjectID(ctx)
	}
	return jc
}

func detectProjectID(ctx context.Context) string {
	if !metadata.OnGCE() {
		return ""
	}
	projectID, err := metadata.ProjectIDWithContext(ctx)
	if err != nil {
		clog.FromContext(ctx).With("error", err).Warn("Failed to detect project ID from metadata")
		return ""
	}
	clog.FromContext(ctx).With("project_id", projectID).Info("Detected Google Cloud project")
	return projectID
}
