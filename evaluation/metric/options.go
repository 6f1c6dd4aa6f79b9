/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metric

import (
	"errors"
	"fmt"
	"math"

	"github.com/Macrina/Listify-Agent/agents/metrics"
	"github.com/Macrina/Listify-Agent/evaluation"
)

// Blend weights the judge and programmatic scores of structure compliance.
type Blend struct {
	Judge        float64
	Programmatic float64
}

// DefaultBlend favors the judge 0.7 to 0.3.
var DefaultBlend = Blend{Judge: 0.7, Programmatic: 0.3}

// Validate requires non-negative weights that sum to 1.
func (b Blend) Validate() error {
	if b.Judge < 0 || b.Programmatic < 0 {
		return errors.New("blend weights cannot be negative")
	}
	if math.Abs(b.Judge+b.Programmatic-1) > 1e-9 {
		return fmt.Errorf("blend weights must sum to 1.0, got %v", b.Judge+b.Programmatic)
	}
	return nil
}

// Combine returns the blended score.
func (b Blend) Combine(judgeScore, programmaticScore float64) float64 {
	return b.Judge*judgeScore + b.Programmatic*programmaticScore
}

type config struct {
	threshold float64
	blend     Blend
	metrics   *metrics.Evaluation
}

func newConfig(opts []Option) (config, error) {
	c := config{
		threshold: evaluation.DefaultThreshold,
		blend:     DefaultBlend,
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if c.metrics == nil {
		c.metrics = metrics.NewEvaluation(metrics.MeterName)
	}
	return c, nil
}

// Option configures an evaluator.
type Option func(*config) error

// WithThreshold sets the pass mark, 0.7 by default.
func WithThreshold(t float64) Option {
	return func(c *config) error {
		if err := evaluation.ValidateThreshold(t); err != nil {
			return err
		}
		c.threshold = t
		return nil
	}
}

// WithBlend sets the judge and programmatic weights of structure compliance.
// Other evaluators ignore it.
func WithBlend(b Blend) Option {
	return func(c *config) error {
		if err := b.Validate(); err != nil {
			return err
		}
		c.blend = b
		return nil
	}
}

// WithMetrics records scores and judge failures on m.
func WithMetrics(m *metrics.Evaluation) Option {
	return func(c *config) error {
		if m == nil {
			return errors.New("metrics cannot be nil")
		}
		c.metrics = m
		return nil
	}
}
