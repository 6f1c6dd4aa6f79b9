/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// statusOverloaded is the Anthropic "overloaded_error" status.
const statusOverloaded = 529

// retryableJudgeStatus holds the statuses for which a judge call is sent
// again. Anything else, including authentication and bad request errors,
// fails the metric on the first attempt.
var retryableJudgeStatus = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
	statusOverloaded:               true,
}

// retryableJudgeError reports whether err is a transient Vertex Anthropic
// API error. Errors without a status, such as a canceled context, are
// never retried.
func retryableJudgeError(err error) bool {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return retryableJudgeStatus[apiErr.StatusCode]
}
