/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"sync"
	"sync/atomic"
)

// Grade is a recorded score with its explanation.
type Grade struct {
	Score     float64
	Reasoning string
}

// Collector keeps failures and grades in memory and forwards every call to
// an optional inner observer.
type Collector struct {
	inner    Observer
	total    atomic.Int64
	mu       sync.Mutex
	failures []string
	grades   []Grade
	logs     []string
}

// NewCollector creates a collector. inner may be nil.
func NewCollector(inner Observer) *Collector {
	return &Collector{
		inner:    inner,
		failures: make([]string, 0),
		grades:   make([]Grade, 0),
	}
}

// Fail stores msg and forwards it to the inner observer.
func (c *Collector) Fail(msg string) {
	if c.inner != nil {
		c.inner.Fail(msg)
	}
	c.mu.Lock()
	c.failures = append(c.failures, msg)
	c.mu.Unlock()
}

// Log stores msg and forwards it to the inner observer.
func (c *Collector) Log(msg string) {
	if c.inner != nil {
		c.inner.Log(msg)
	}
	c.mu.Lock()
	c.logs = append(c.logs, msg)
	c.mu.Unlock()
}

// Grade stores the grade and forwards it to the inner observer.
func (c *Collector) Grade(score float64, reasoning string) {
	if c.inner != nil {
		c.inner.Grade(score, reasoning)
	}
	c.mu.Lock()
	c.grades = append(c.grades, Grade{Score: score, Reasoning: reasoning})
	c.mu.Unlock()
}

// Increment counts a case.
func (c *Collector) Increment() {
	if c.inner != nil {
		c.inner.Increment()
	}
	c.total.Add(1)
}

// Total returns the number of cases counted.
func (c *Collector) Total() int64 {
	return c.total.Load()
}

// Failures returns a copy of the failure messages.
func (c *Collector) Failures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.failures...)
}

// Grades returns a copy of the grades.
func (c *Collector) Grades() []Grade {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Grade(nil), c.grades...)
}

// Logs returns a copy of the log messages.
func (c *Collector) Logs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.logs...)
}
