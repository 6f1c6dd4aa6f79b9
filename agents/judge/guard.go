/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"
	"time"

	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
)

// Validator is implemented by requests that can be checked before sending.
type Validator interface {
	Validate() error
}

// Guard wraps inner so that every call is validated, bounded by timeout
// (when positive), recovered from panics, and returns only classified
// errors. The call returns at the deadline even if inner does not.
func Guard[Request promptbuilder.Bindable, Verdict any](inner Interface[Request, Verdict], timeout time.Duration) Interface[Request, Verdict] {
	return &guarded[Request, Verdict]{inner: inner, timeout: timeout}
}

type guarded[Request promptbuilder.Bindable, Verdict any] struct {
	inner   Interface[Request, Verdict]
	timeout time.Duration
}

type outcome[Verdict any] struct {
	verdict Verdict
	err     error
}

func (g *guarded[Request, Verdict]) Judge(ctx context.Context, request Request) (Verdict, error) {
	var zero Verdict

	if v, ok := any(request).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, &Error{Kind: KindInvalidRequest, Err: err}
		}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	done := make(chan outcome[Verdict], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[Verdict]{err: fmt.Errorf("judge panicked: %v", r)}
			}
		}()
		v, err := g.inner.Judge(ctx, request)
		done <- outcome[Verdict]{verdict: v, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			return zero, Classify(ctx, o.err)
		}
		return o.verdict, nil
	case <-ctx.Done():
		return zero, Classify(ctx, ctx.Err())
	}
}
