/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"errors"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/telemetry"
)

// Option configures an Engine.
type Option func(*Engine) error

// WithThreshold sets the pass mark, 0.7 by default.
func WithThreshold(t float64) Option {
	return func(e *Engine) error {
		if err := evaluation.ValidateThreshold(t); err != nil {
			return err
		}
		e.threshold = t
		return nil
	}
}

// WithWeights sets the metric weights, 0.4/0.3/0.3 by default.
func WithWeights(w Weights) Option {
	return func(e *Engine) error {
		if err := w.Validate(); err != nil {
			return err
		}
		e.weights = w
		return nil
	}
}

// WithTelemetry records every metric evaluation on sink.
func WithTelemetry(sink telemetry.Sink) Option {
	return func(e *Engine) error {
		if sink == nil {
			return errors.New("telemetry sink cannot be nil")
		}
		e.sink = sink
		return nil
	}
}

// WithModel names the judge model in telemetry.
func WithModel(model string) Option {
	return func(e *Engine) error {
		e.model = model
		return nil
	}
}
