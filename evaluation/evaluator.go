/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluation

import "context"

// Evaluator scores one metric of an extraction. Evaluate never fails: any
// internal error is reported through a conservative Result.
type Evaluator interface {
	Metric() Metric
	Evaluate(ctx context.Context, in Input) Result
}

// Func adapts a function to the Evaluator interface.
func Func(metric Metric, fn func(context.Context, Input) Result) Evaluator {
	return funcEvaluator{metric: metric, fn: fn}
}

type funcEvaluator struct {
	metric Metric
	fn     func(context.Context, Input) Result
}

func (f funcEvaluator) Metric() Metric { return f.metric }

func (f funcEvaluator) Evaluate(ctx context.Context, in Input) Result {
	return f.fn(ctx, in)
}
