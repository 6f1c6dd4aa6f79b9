/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements listify-eval, which scores list extractions with
// the evaluation engine. The evaluate command reads one extraction as JSON
// on stdin, suite runs a YAML case file and respond checks an assistant
// response.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Macrina/Listify-Agent/agents/judge"
	"github.com/Macrina/Listify-Agent/evaluation/engine"
	"github.com/Macrina/Listify-Agent/evaluation/responsejudge"
	"github.com/Macrina/Listify-Agent/evaluation/suite"
	"github.com/Macrina/Listify-Agent/evaluation/telemetry"
	"github.com/chainguard-dev/clog"
	_ "github.com/chainguard-dev/clog/gcp/init"
	"github.com/spf13/cobra"
)

// app holds what the commands share. The constructors are fields so tests
// can run the commands without a judge backend.
type app struct {
	cfg config

	newEngine  func(ctx context.Context, threshold float64) (suite.Evaluator, error)
	newChecker func(ctx context.Context) (*responsejudge.Checker, error)
}

func newApp(cfg config) *app {
	a := &app{cfg: cfg}
	a.newEngine = a.backendEngine
	a.newChecker = a.backendChecker
	return a
}

func (a *app) backendEngine(ctx context.Context, threshold float64) (suite.Evaluator, error) {
	b, err := judge.NewBackend(ctx, a.cfg.judgeConfig(ctx, judge.DefaultConfig()))
	if err != nil {
		return nil, err
	}
	return engine.NewFromBackend(b, nil,
		engine.WithThreshold(threshold),
		engine.WithTelemetry(telemetry.OpenTelemetry(nil)),
	)
}

func (a *app) backendChecker(ctx context.Context) (*responsejudge.Checker, error) {
	b, err := judge.NewBackend(ctx, a.cfg.judgeConfig(ctx, responsejudge.DefaultConfig()))
	if err != nil {
		return nil, err
	}
	judges, err := responsejudge.NewJudges(b)
	if err != nil {
		return nil, err
	}
	return responsejudge.New(judges, responsejudge.WithThreshold(a.cfg.Threshold))
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "listify-eval",
		Short: "Score list extractions with an LLM judge",
		Long: `listify-eval scores the items an extraction produced from an image,
text or URL on extraction accuracy, structure compliance and content
quality, and combines them into an overall score.

The judge is configured through the environment (JUDGE_MODEL,
OPENAI_API_KEY, GOOGLE_CLOUD_PROJECT, ...), optionally from a .env file.`,
		SilenceUsage: true,
	}
	root.AddCommand(a.evaluateCmd(), a.suiteCmd(), a.respondCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := loadDotEnv(ctx); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
	cfg, err := loadConfig(ctx, nil)
	if err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}

	if err := newApp(cfg).command().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
