/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Macrina/Listify-Agent/agents/agenttrace"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/engine"
)

// Evaluator is the part of the engine a Runner needs.
type Evaluator interface {
	Evaluate(ctx context.Context, in evaluation.Input) engine.Results
	Threshold() float64
}

// Outcome is the evaluation of one case.
type Outcome struct {
	Case    string         `json:"case"`
	Results engine.Results `json:"results"`
}

// Report is the result of one run.
type Report struct {
	ID        string        `json:"id"`
	Threshold float64       `json:"threshold"`
	Duration  time.Duration `json:"duration"`
	Outcomes  []Outcome     `json:"outcomes"`
}

// Failed returns the names of cases whose overall result did not pass.
func (r *Report) Failed() []string {
	var out []string
	for _, o := range r.Outcomes {
		if !o.Results.Overall.Passed {
			out = append(out, o.Case)
		}
	}
	return out
}

// Runner evaluates cases.
type Runner struct {
	eval        Evaluator
	concurrency int
	namespace   func(evaluation.Metric) Observer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner) error

// WithConcurrency bounds the number of cases evaluated at once. The default
// is 1.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) error {
		if n < 1 {
			return fmt.Errorf("concurrency must be at least 1, got %d", n)
		}
		r.concurrency = n
		return nil
	}
}

// WithObserver reports outcomes to obs.
func WithObserver[T Observer](obs *NamespacedObserver[T]) RunnerOption {
	return func(r *Runner) error {
		if obs == nil {
			return errors.New("observer cannot be nil")
		}
		r.namespace = func(m evaluation.Metric) Observer {
			return obs.Child(string(m))
		}
		return nil
	}
}

// NewRunner creates a runner for eval.
func NewRunner(eval Evaluator, opts ...RunnerOption) (*Runner, error) {
	if eval == nil {
		return nil, errors.New("evaluator cannot be nil")
	}
	r := &Runner{eval: eval, concurrency: 1}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return r, nil
}

// Run evaluates cases and returns their outcomes in case order. It fails
// only when a case cannot be converted to input or ctx ends; judge failures
// are part of the outcomes.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	inputs := make([]evaluation.Input, len(cases))
	for i, c := range cases {
		in, err := c.Input()
		if err != nil {
			return nil, err
		}
		inputs[i] = in
	}

	report := &Report{
		ID:        uuid.NewString(),
		Threshold: r.eval.Threshold(),
		Outcomes:  make([]Outcome, len(cases)),
	}
	log := clog.FromContext(ctx).With("run_id", report.ID)
	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{RunID: report.ID})
	log.With("cases", len(cases)).With("concurrency", r.concurrency).Info("Starting evaluation run")

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, c := range cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results := r.eval.Evaluate(gctx, inputs[i])
			report.Outcomes[i] = Outcome{Case: c.Name, Results: results}
			r.observe(c.Name, results)
			log.With("case", c.Name).With("score", results.Overall.Score).With("passed", results.Overall.Passed).
				Info("Case evaluated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation run %s: %w", report.ID, err)
	}
	report.Duration = time.Since(start)

	log.With("failed", len(report.Failed())).With("duration", report.Duration).Info("Evaluation run complete")
	return report, nil
}

// observe reports every metric of one case to its namespace.
func (r *Runner) observe(name string, results engine.Results) {
	if r.namespace == nil {
		return
	}
	for _, m := range namespaces {
		res, _ := results.Get(m)
		obs := r.namespace(m)
		obs.Increment()
		obs.Grade(res.Score, fmt.Sprintf("%s: %s", name, res.Explanation))
		if !res.Passed {
			obs.Fail(fmt.Sprintf("%s: %s scored %.2f", name, m, res.Score))
		}
	}
}

// namespaces are the observer namespaces, one per metric.
var namespaces = []evaluation.Metric{
	evaluation.ExtractionAccuracy,
	evaluation.StructureCompliance,
	evaluation.ContentQuality,
	evaluation.Overall,
}
