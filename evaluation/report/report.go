/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders suite runs as Markdown tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/suite"
)

const (
	passMark = "✅"
	failMark = "❌"
)

// Cases writes one row per case with the score of every metric. A failed
// metric is marked next to its score.
func Cases(w io.Writer, r *suite.Report) error {
	table := newTable([]string{"Case", "Accuracy", "Structure", "Content", "Overall", "All Passed"}, w)
	for _, o := range r.Outcomes {
		res := o.Results
		allPassed, _ := res.Overall.Details["all_passed"].(bool)
		if err := table.Append([]string{
			o.Case,
			cell(res.ExtractionAccuracy),
			cell(res.StructureCompliance),
			cell(res.ContentQuality),
			cell(res.Overall),
			mark(allPassed),
		}); err != nil {
			return fmt.Errorf("appending row for %s: %w", o.Case, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering case table: %w", err)
	}
	_, err := fmt.Fprintf(w, "\nRun %s: %d/%d cases passed at threshold %.2f\n",
		r.ID, len(r.Outcomes)-len(r.Failed()), len(r.Outcomes), r.Threshold)
	return err
}

// Summary writes one row per observer namespace with its pass rate and
// average score, followed by the failures of each namespace. It reports
// whether any namespace passed less often than threshold or averaged below
// it.
func Summary(w io.Writer, obs *suite.NamespacedObserver[*suite.Collector], threshold float64) (bool, error) {
	table := newTable([]string{"Metric", "Cases", "Pass Rate", "Avg Score", "Status"}, w)
	var (
		below    bool
		failures []string
	)

	var appendErr error
	obs.Walk(func(name string, c *suite.Collector) {
		total := c.Total()
		if total == 0 || appendErr != nil {
			return
		}
		failed := c.Failures()
		passRate := float64(total-int64(len(failed))) / float64(total)

		var avg float64
		grades := c.Grades()
		for _, g := range grades {
			avg += g.Score
		}
		if len(grades) > 0 {
			avg /= float64(len(grades))
		}

		ok := passRate >= threshold && avg >= threshold
		below = below || !ok
		appendErr = table.Append([]string{
			strings.TrimPrefix(name, "/"),
			fmt.Sprintf("%d", total),
			fmt.Sprintf("%.1f%%", passRate*100),
			fmt.Sprintf("%.2f", avg),
			mark(ok),
		})
		for _, f := range failed {
			failures = append(failures, fmt.Sprintf("- %s: %s", strings.TrimPrefix(name, "/"), f))
		}
	})
	if appendErr != nil {
		return below, fmt.Errorf("appending summary row: %w", appendErr)
	}
	if err := table.Render(); err != nil {
		return below, fmt.Errorf("rendering summary table: %w", err)
	}
	if len(failures) > 0 {
		if _, err := fmt.Fprintf(w, "\nFailures:\n%s\n", strings.Join(failures, "\n")); err != nil {
			return below, err
		}
	}
	return below, nil
}

func cell(r evaluation.Result) string {
	if r.Passed {
		return fmt.Sprintf("%.2f", r.Score)
	}
	return fmt.Sprintf("%.2f %s", r.Score, failMark)
}

func mark(ok bool) string {
	if ok {
		return passMark
	}
	return failMark
}
