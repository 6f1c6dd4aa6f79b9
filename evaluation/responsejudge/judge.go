/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responsejudge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Macrina/Listify-Agent/agents/agenttrace"
	"github.com/Macrina/Listify-Agent/agents/judge"
	"github.com/Macrina/Listify-Agent/agents/metrics"
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/Macrina/Listify-Agent/agents/result"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/chainguard-dev/clog"
)

// Check names, used in logs and metrics.
const (
	CheckTone          = "tone"
	CheckCorrectness   = "correctness"
	CheckToolCalling   = "tool_calling"
	CheckHallucination = "hallucination"
)

// DefaultConfig is the judge configuration of the response checks: the
// smaller gpt-4o-mini with a 600 token cap.
func DefaultConfig() judge.Config {
	cfg := judge.DefaultConfig()
	cfg.Model = "gpt-4o-mini"
	cfg.MaxTokens = 600
	cfg.Timeout = 30 * time.Second
	return cfg
}

// Judges are the four judges behind a Checker.
type Judges struct {
	Tone          judge.Interface[ToneRequest, ToneVerdict]
	Correctness   judge.Interface[CorrectnessRequest, CorrectnessVerdict]
	ToolCalling   judge.Interface[ToolCallingRequest, ToolCallingVerdict]
	Hallucination judge.Interface[HallucinationRequest, HallucinationVerdict]
}

// NewJudges creates the remote judges on b.
func NewJudges(b *judge.Backend) (Judges, error) {
	var (
		j   Judges
		err error
	)
	if j.Tone, err = judge.New[ToneRequest, ToneVerdict](b, tonePrompt); err != nil {
		return j, err
	}
	if j.Correctness, err = judge.New[CorrectnessRequest, CorrectnessVerdict](b, correctnessPrompt); err != nil {
		return j, err
	}
	if j.ToolCalling, err = judge.New[ToolCallingRequest, ToolCallingVerdict](b, toolCallingPrompt); err != nil {
		return j, err
	}
	if j.Hallucination, err = judge.New[HallucinationRequest, HallucinationVerdict](b, hallucinationPrompt); err != nil {
		return j, err
	}
	return j, nil
}

// Checker runs the response checks.
type Checker struct {
	judges    Judges
	threshold float64
	metrics   *metrics.Evaluation
}

// Option configures a Checker.
type Option func(*Checker) error

// WithThreshold sets the pass mark of the hallucination check.
func WithThreshold(t float64) Option {
	return func(c *Checker) error {
		if err := evaluation.ValidateThreshold(t); err != nil {
			return err
		}
		c.threshold = t
		return nil
	}
}

// WithMetrics records judge failures on m.
func WithMetrics(m *metrics.Evaluation) Option {
	return func(c *Checker) error {
		if m == nil {
			return errors.New("metrics cannot be nil")
		}
		c.metrics = m
		return nil
	}
}

// New creates a Checker. Every judge is required.
func New(j Judges, opts ...Option) (*Checker, error) {
	if j.Tone == nil || j.Correctness == nil || j.ToolCalling == nil || j.Hallucination == nil {
		return nil, errors.New("all four judges are required")
	}
	c := &Checker{judges: j, threshold: evaluation.DefaultThreshold}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if c.metrics == nil {
		c.metrics = metrics.NewEvaluation(metrics.MeterName)
	}
	return c, nil
}

// Tone rates how professional, empathetic and clear response is.
func (c *Checker) Tone(ctx context.Context, query, response string) evaluation.LikertResult {
	v, err := ask(ctx, c, CheckTone, c.judges.Tone, ToneRequest{Query: query, Response: response})
	if err != nil {
		return evaluation.LikertFailure(err)
	}
	return v.result(evaluation.Details{
		"strengths":  nonNil(v.Strengths),
		"weaknesses": nonNil(v.Weaknesses),
	})
}

// Correctness rates how accurate and complete response is. rc may be nil.
func (c *Checker) Correctness(ctx context.Context, query, response string, rc *Context) evaluation.LikertResult {
	v, err := ask(ctx, c, CheckCorrectness, c.judges.Correctness, CorrectnessRequest{Query: query, Response: response, Context: rc})
	if err != nil {
		return evaluation.LikertFailure(err)
	}
	return v.result(evaluation.Details{
		"accuracy_issues":     nonNil(v.AccuracyIssues),
		"completeness_issues": nonNil(v.CompletenessIssues),
	})
}

// ToolCalling rates the tool use described in response against tools.
func (c *Checker) ToolCalling(ctx context.Context, query, response string, tools []string) evaluation.LikertResult {
	v, err := ask(ctx, c, CheckToolCalling, c.judges.ToolCalling, ToolCallingRequest{Query: query, Response: response, Tools: tools})
	if err != nil {
		return evaluation.LikertFailure(err)
	}
	return v.result(evaluation.Details{
		"tool_issues":     nonNil(v.ToolIssues),
		"safety_concerns": nonNil(v.SafetyConcerns),
	})
}

// Hallucinations scores response 1 when it invents nothing and 0 when it
// does. rc may be nil.
func (c *Checker) Hallucinations(ctx context.Context, response string, rc *Context) evaluation.Result {
	v, err := ask(ctx, c, CheckHallucination, c.judges.Hallucination, HallucinationRequest{Response: response, Context: rc})
	if err != nil {
		return evaluation.Failure(err, nil)
	}
	score := 1.0
	if *v.HasHallucinations {
		score = 0
	}
	items := v.HallucinatedItems
	if items == nil {
		items = []HallucinatedItem{}
	}
	return evaluation.NewResult(score, confidenceOr(v.Confidence), c.threshold, v.Explanation, evaluation.Details{
		"hallucinated_items": items,
	})
}

func ask[Request promptbuilder.Bindable, Verdict result.Validator](ctx context.Context, c *Checker, check string, j judge.Interface[Request, Verdict], request Request) (Verdict, error) {
	execCtx := agenttrace.GetExecutionContext(ctx)
	execCtx.Metric = check
	ctx = agenttrace.WithExecutionContext(ctx, execCtx)

	v, err := j.Judge(ctx, request)
	if err == nil {
		if verr := v.Validate(); verr != nil {
			err = &judge.Error{Kind: judge.KindMalformed, Err: verr}
		}
	}
	if err != nil {
		err = judge.Classify(ctx, err)
		kind := judge.KindOf(err)
		clog.FromContext(ctx).With("check", check).With("kind", kind).With("error", err).
			Error("Response judge failed, returning neutral result")
		c.metrics.RecordJudgeFailure(ctx, check, string(kind))
		return v, err
	}
	return v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
