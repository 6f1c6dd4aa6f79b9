/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"

	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
)

// Interface grades a request and returns a typed verdict.
type Interface[Request promptbuilder.Bindable, Verdict any] interface {
	Judge(ctx context.Context, request Request) (Verdict, error)
}

// Func adapts a function to Interface. Tests use it for stub judges.
type Func[Request promptbuilder.Bindable, Verdict any] func(ctx context.Context, request Request) (Verdict, error)

// Judge calls f.
func (f Func[Request, Verdict]) Judge(ctx context.Context, request Request) (Verdict, error) {
	return f(ctx, request)
}
