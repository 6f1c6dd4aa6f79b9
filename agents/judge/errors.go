/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Macrina/Listify-Agent/agents/result"
)

// Kind classifies a judge failure.
type Kind string

const (
	// KindTimeout means the call did not finish before its deadline.
	KindTimeout Kind = "timeout"
	// KindCanceled means the caller abandoned the call.
	KindCanceled Kind = "canceled"
	// KindMalformed means the judge answered outside the expected shape.
	KindMalformed Kind = "malformed_response"
	// KindRemote covers transport, authentication and server errors.
	KindRemote Kind = "remote_error"
	// KindInvalidRequest means the request was rejected before sending.
	KindInvalidRequest Kind = "invalid_request"
)

// Error is a classified judge failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("judge %s: %v", strings.ReplaceAll(string(e.Kind), "_", " "), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps err in an *Error. Errors already classified are returned
// unchanged, so Classify is idempotent. ctx is the context the call ran
// under; its deadline decides between timeout and remote error when the
// client reports an expired deadline in its own terms.
func Classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	var malformed *result.MalformedError
	switch {
	case errors.As(err, &malformed):
		return &Error{Kind: KindMalformed, Err: err}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Err: err}
	case errors.Is(err, context.Canceled), errors.Is(ctx.Err(), context.Canceled):
		return &Error{Kind: KindCanceled, Err: err}
	default:
		return &Error{Kind: KindRemote, Err: err}
	}
}

// KindOf returns the kind of a classified error, or KindRemote for any
// other non-nil error.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindRemote
}
