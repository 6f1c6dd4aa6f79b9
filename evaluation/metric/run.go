/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metric

import (
	"context"
	"fmt"

	"github.com/Macrina/Listify-Agent/agents/agenttrace"
	"github.com/Macrina/Listify-Agent/agents/judge"
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/Macrina/Listify-Agent/agents/result"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/chainguard-dev/clog"
)

// judgeOnce runs one judge call for metric m and converts the outcome into
// a result. On failure the result is evaluation.Failure carrying
// failureDetails; on success it is whatever build returns.
func judgeOnce[Request promptbuilder.Bindable, Verdict any](
	ctx context.Context,
	c config,
	m evaluation.Metric,
	in evaluation.Input,
	j judge.Interface[Request, Verdict],
	request Request,
	failureDetails evaluation.Details,
	build func(Verdict) evaluation.Result,
) evaluation.Result {
	log := clog.FromContext(ctx).With("metric", m)

	execCtx := agenttrace.GetExecutionContext(ctx)
	execCtx.Metric = string(m)
	execCtx.InputType = string(in.Type)
	ctx = agenttrace.WithExecutionContext(ctx, execCtx)

	var r evaluation.Result
	if v, err := verdict(ctx, in, j, request); err != nil {
		r = fail(ctx, c, m, err, failureDetails)
	} else {
		r = build(v)
		log.With("score", r.Score).With("passed", r.Passed).Debug("Metric evaluated")
	}

	c.metrics.RecordScore(ctx, string(m), r.Score, r.Passed)
	return r
}

// verdict calls the judge and checks the verdict it returns, so that stub
// and remote judges are held to the same shape.
// A panicking judge is reported as a remote error.
func verdict[Request promptbuilder.Bindable, Verdict any](ctx context.Context, in evaluation.Input, j judge.Interface[Request, Verdict], request Request) (v Verdict, err error) {
	var zero Verdict
	if _, err := in.Normalize(); err != nil {
		return zero, &judge.Error{Kind: judge.KindInvalidRequest, Err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = zero, &judge.Error{Kind: judge.KindRemote, Err: fmt.Errorf("judge panicked: %v", r)}
		}
	}()
	v, err = j.Judge(ctx, request)
	if err != nil {
		return zero, judge.Classify(ctx, err)
	}
	if val, ok := any(v).(result.Validator); ok {
		if err := val.Validate(); err != nil {
			return zero, &judge.Error{Kind: judge.KindMalformed, Err: err}
		}
	}
	return v, nil
}

func fail(ctx context.Context, c config, m evaluation.Metric, err error, details evaluation.Details) evaluation.Result {
	kind := judge.KindOf(err)
	clog.FromContext(ctx).With("metric", m).With("kind", kind).With("error", err).
		Error("Judge failed, returning conservative result")
	c.metrics.RecordJudgeFailure(ctx, string(m), string(kind))
	return evaluation.Failure(err, details)
}

// orEmpty returns s, or an empty list when s is nil, so details always
// serialize lists as arrays.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
