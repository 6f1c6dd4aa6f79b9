/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Macrina/Listify-Agent/agents/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardSuccess(t *testing.T) {
	inner := Func[gradeRequest, gradeVerdict](func(_ context.Context, r gradeRequest) (gradeVerdict, error) {
		return gradeVerdict{Score: 0.9, Explanation: r.Text}, nil
	})

	got, err := Guard[gradeRequest, gradeVerdict](inner, time.Second).Judge(context.Background(), gradeRequest{Text: "milk"})
	require.NoError(t, err)
	assert.Equal(t, gradeVerdict{Score: 0.9, Explanation: "milk"}, got)
}

func TestGuardInvalidRequest(t *testing.T) {
	called := false
	inner := Func[gradeRequest, gradeVerdict](func(context.Context, gradeRequest) (gradeVerdict, error) {
		called = true
		return gradeVerdict{}, nil
	})

	_, err := Guard[gradeRequest, gradeVerdict](inner, time.Second).Judge(context.Background(), gradeRequest{})
	assert.Equal(t, KindInvalidRequest, KindOf(err))
	assert.False(t, called, "inner judge should not be called for an invalid request")
}

func TestGuardTimeoutIgnoringContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	inner := Func[gradeRequest, gradeVerdict](func(context.Context, gradeRequest) (gradeVerdict, error) {
		<-release
		return gradeVerdict{Score: 1}, nil
	})

	start := time.Now()
	_, err := Guard[gradeRequest, gradeVerdict](inner, 20*time.Millisecond).Judge(context.Background(), gradeRequest{Text: "x"})
	if got := KindOf(err); got != KindTimeout {
		t.Fatalf("KindOf() = %v, wanted = %v", got, KindTimeout)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Judge() returned after %v, wanted it near the deadline", elapsed)
	}
}

func TestGuardCallerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inner := Func[gradeRequest, gradeVerdict](func(ctx context.Context, _ gradeRequest) (gradeVerdict, error) {
		cancel()
		<-ctx.Done()
		return gradeVerdict{}, ctx.Err()
	})

	_, err := Guard[gradeRequest, gradeVerdict](inner, time.Minute).Judge(ctx, gradeRequest{Text: "x"})
	assert.Equal(t, KindCanceled, KindOf(err))
}

func TestGuardMalformed(t *testing.T) {
	inner := Func[gradeRequest, gradeVerdict](func(context.Context, gradeRequest) (gradeVerdict, error) {
		return gradeVerdict{}, &result.MalformedError{Response: "I think it is fine", Err: errors.New("no JSON found")}
	})

	_, err := Guard[gradeRequest, gradeVerdict](inner, 0).Judge(context.Background(), gradeRequest{Text: "x"})
	assert.Equal(t, KindMalformed, KindOf(err))
}

func TestGuardPanic(t *testing.T) {
	inner := Func[gradeRequest, gradeVerdict](func(context.Context, gradeRequest) (gradeVerdict, error) {
		panic("client exploded")
	})

	_, err := Guard[gradeRequest, gradeVerdict](inner, time.Second).Judge(context.Background(), gradeRequest{Text: "x"})
	assert.Equal(t, KindRemote, KindOf(err))
	assert.ErrorContains(t, err, "client exploded")
}
